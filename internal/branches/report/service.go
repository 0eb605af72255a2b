package report

import (
	"context"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/repobranches/internal/repos/discovery"
	"github.com/temirov/repobranches/internal/repos/shared"
	"github.com/temirov/repobranches/internal/utils"
)

const (
	scannerMissingMessageConstant     = "repository scanner not configured"
	resolverMissingMessageConstant    = "branch resolver not configured"
	branchLookupFailedMessageConstant = "branch lookup failed"
	reportCompletedMessageConstant    = "branch report completed"
	logFieldFolderConstant            = "folder"
	logFieldTargetConstant            = "target"
	logFieldRowCountConstant          = "rows"
)

// ErrScannerNotConfigured indicates the service was constructed without a repository scanner.
var ErrScannerNotConfigured = errors.New(scannerMissingMessageConstant)

// ErrResolverNotConfigured indicates the service was constructed without a branch resolver.
var ErrResolverNotConfigured = errors.New(resolverMissingMessageConstant)

// RepositoryScanner lists the repositories directly inside a target directory.
type RepositoryScanner interface {
	Scan(root string) (*discovery.Listing, error)
}

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Scanner        RepositoryScanner
	BranchResolver BranchResolver
	IndexSource    IndexSource
	Logger         *zap.Logger
}

// Options configure a single report run.
type Options struct {
	TargetDirectory   string
	Output            io.Writer
	ColorMode         ColorMode
	FolderColumnWidth int
	BranchColumnWidth int
}

// Service produces the branch report for one target directory.
type Service struct {
	scanner     RepositoryScanner
	resolver    BranchResolver
	indexSource IndexSource
	logger      *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Scanner == nil {
		return nil, ErrScannerNotConfigured
	}
	if dependencies.BranchResolver == nil {
		return nil, ErrResolverNotConfigured
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scanner:     dependencies.Scanner,
		resolver:    dependencies.BranchResolver,
		indexSource: dependencies.IndexSource,
		logger:      logger,
	}, nil
}

// Run lists the target and writes one row per repository in listing order.
// The only returned error is a failure to list the target, in which case
// nothing has been written.
func (service *Service) Run(executionContext context.Context, options Options) error {
	listing, scanError := service.scanner.Scan(options.TargetDirectory)
	if scanError != nil {
		return scanError
	}
	defer listing.Close()

	destination := options.Output
	if destination == nil {
		destination = os.Stdout
	}
	output := utils.NewFlushingWriter(destination)
	table := NewTableReporter(
		shared.NewWriterReporter(output),
		NewPalette(destination, options.ColorMode, service.indexSource),
		options.FolderColumnWidth,
		options.BranchColumnWidth,
	)

	table.WriteHeader()

	rowCount := 0
	for repositoryEntry := range listing.Repositories() {
		branchName, lookupError := service.resolver.CurrentBranch(executionContext, repositoryEntry.Path)
		if lookupError != nil {
			service.logger.Debug(branchLookupFailedMessageConstant, zap.String(logFieldFolderConstant, repositoryEntry.Path), zap.Error(lookupError))
		}
		table.WriteRow(NewFolderReport(repositoryEntry.Name, branchName, lookupError))
		rowCount++
	}

	service.logger.Debug(reportCompletedMessageConstant, zap.String(logFieldTargetConstant, options.TargetDirectory), zap.Int(logFieldRowCountConstant, rowCount))
	return nil
}
