package discovery

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/repobranches/internal/repos/shared"
)

const (
	defaultDirectoryBatchSizeConstant       = 64
	targetUnreadableErrorTemplateConstant   = "error reading directory: %v"
	fileSystemMissingMessageConstant        = "filesystem not configured"
	entrySkippedNotDirectoryMessageConstant = "skipping entry that is not a directory"
	entrySkippedNoMetadataMessageConstant   = "skipping directory without git metadata"
	listingInterruptedMessageConstant       = "directory listing interrupted"
	listingCloseFailedMessageConstant       = "unable to close directory listing"
	logFieldEntryPathConstant               = "entry_path"
	logFieldRootPathConstant                = "root_path"
)

// ErrFileSystemNotConfigured indicates the scanner was constructed without a filesystem.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// TargetUnreadableError reports a scan root that could not be opened or listed.
type TargetUnreadableError struct {
	Path  string
	Cause error
}

func (failure TargetUnreadableError) Error() string {
	return fmt.Sprintf(targetUnreadableErrorTemplateConstant, failure.Cause)
}

func (failure TargetUnreadableError) Unwrap() error {
	return failure.Cause
}

// RepositoryEntry is an immediate child of the scan root that holds git metadata.
type RepositoryEntry struct {
	Name string
	Path string
}

// ImmediateRepositoryScanner finds git checkouts among the direct children of a directory.
// Nested directories are never descended into.
type ImmediateRepositoryScanner struct {
	fileSystem shared.FileSystem
	logger     *zap.Logger
	batchSize  int
}

// NewImmediateRepositoryScanner constructs a scanner over the provided filesystem.
func NewImmediateRepositoryScanner(fileSystem shared.FileSystem, logger *zap.Logger) (*ImmediateRepositoryScanner, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImmediateRepositoryScanner{fileSystem: fileSystem, logger: logger, batchSize: defaultDirectoryBatchSizeConstant}, nil
}

// Scan opens root and reads its first batch of entries. Failures at this point
// are returned as TargetUnreadableError and no Listing is created.
func (scanner *ImmediateRepositoryScanner) Scan(root string) (*Listing, error) {
	directory, openError := scanner.fileSystem.OpenDirectory(root)
	if openError != nil {
		return nil, TargetUnreadableError{Path: root, Cause: openError}
	}

	firstBatch, readError := directory.ReadDir(scanner.batchSize)
	exhausted := false
	if readError != nil {
		if !errors.Is(readError, io.EOF) {
			_ = directory.Close()
			return nil, TargetUnreadableError{Path: root, Cause: readError}
		}
		exhausted = true
	}

	return &Listing{
		scanner:   scanner,
		root:      root,
		directory: directory,
		pending:   firstBatch,
		exhausted: exhausted,
	}, nil
}

// Listing lazily yields the repositories of one scan root in operating system order.
type Listing struct {
	scanner   *ImmediateRepositoryScanner
	root      string
	directory shared.DirectoryReader
	pending   []fs.DirEntry
	exhausted bool
	closed    bool
}

// Repositories yields every qualifying entry once. The underlying directory is
// closed when iteration finishes or the consumer stops early.
func (listing *Listing) Repositories() iter.Seq[RepositoryEntry] {
	return func(yield func(RepositoryEntry) bool) {
		defer listing.Close()

		for {
			for len(listing.pending) > 0 {
				directoryEntry := listing.pending[0]
				listing.pending = listing.pending[1:]

				repositoryEntry, qualifies := listing.inspect(directoryEntry.Name())
				if !qualifies {
					continue
				}
				if !yield(repositoryEntry) {
					return
				}
			}

			if listing.exhausted || listing.closed {
				return
			}

			nextBatch, readError := listing.directory.ReadDir(listing.scanner.batchSize)
			listing.pending = nextBatch
			if readError != nil {
				listing.exhausted = true
				if !errors.Is(readError, io.EOF) {
					listing.scanner.logger.Warn(listingInterruptedMessageConstant, zap.String(logFieldRootPathConstant, listing.root), zap.Error(readError))
					listing.pending = nil
				}
			}
		}
	}
}

// Close releases the directory handle. It is safe to call more than once.
func (listing *Listing) Close() {
	if listing == nil || listing.closed {
		return
	}
	listing.closed = true
	if closeError := listing.directory.Close(); closeError != nil {
		listing.scanner.logger.Debug(listingCloseFailedMessageConstant, zap.String(logFieldRootPathConstant, listing.root), zap.Error(closeError))
	}
}

func (listing *Listing) inspect(entryName string) (RepositoryEntry, bool) {
	entryPath := filepath.Join(listing.root, entryName)
	fileSystem := listing.scanner.fileSystem

	entryInfo, statError := fileSystem.Stat(entryPath)
	if statError != nil || !entryInfo.IsDir() {
		listing.scanner.logger.Debug(entrySkippedNotDirectoryMessageConstant, zap.String(logFieldEntryPathConstant, entryPath))
		return RepositoryEntry{}, false
	}

	if _, metadataError := fileSystem.Stat(filepath.Join(entryPath, shared.GitMetadataDirectoryName)); metadataError != nil {
		listing.scanner.logger.Debug(entrySkippedNoMetadataMessageConstant, zap.String(logFieldEntryPathConstant, entryPath))
		return RepositoryEntry{}, false
	}

	return RepositoryEntry{Name: entryName, Path: entryPath}, true
}
