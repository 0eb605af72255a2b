package report

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repobranches/internal/repos/dependencies"
	"github.com/temirov/repobranches/internal/repos/discovery"
	"github.com/temirov/repobranches/internal/repos/shared"
	flagutils "github.com/temirov/repobranches/internal/utils/flags"
	pathutils "github.com/temirov/repobranches/internal/utils/path"
)

const (
	commandUseNameConstant          = "repo-branches"
	commandUsageTemplateConstant    = commandUseNameConstant + " [path]"
	commandShortDescriptionConstant = "Show the current branch of every git checkout in a directory"
	commandLongDescriptionConstant  = "repo-branches lists the immediate subfolders of the target directory (the current directory by default), keeps those containing a .git entry, and prints each folder with the branch reported by `git rev-parse --abbrev-ref HEAD`. Folders whose lookup fails show \"" + QueryFailedSentinel + "\", and \"" + ToolUnavailableSentinel + "\" is shown when git cannot be started."
	commandExampleConstant          = "repo-branches ~/Development"
	colorFlagNameConstant           = "color"
	colorFlagDescriptionConstant    = "Colorize branch names."
	reportStartedMessageConstant    = "scanning directory for repositories"
	logFieldTargetPathConstant      = "target_path"
	logFieldColorModeConstant       = "color_mode"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the branch report command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitExecutor                  shared.GitExecutor
	FileSystem                   shared.FileSystem
	IndexSource                  IndexSource
	TargetResolver               *pathutils.TargetResolver

	colorFlagValue string
}

// Build constructs the branch report command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}

	command.Flags().StringVar(
		&builder.colorFlagValue,
		colorFlagNameConstant,
		string(ColorModeAlways),
		flagutils.FormatChoiceUsage(string(ColorModeAlways), SupportedColorModes(), colorFlagDescriptionConstant),
	)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	if command.Flags().Changed(colorFlagNameConstant) {
		normalizedColor, choiceError := flagutils.NormalizeChoice(colorFlagNameConstant, builder.colorFlagValue, SupportedColorModes())
		if choiceError != nil {
			return choiceError
		}
		configuration.Color = ColorMode(normalizedColor)
	}

	targetResolver := builder.TargetResolver
	if targetResolver == nil {
		targetResolver = pathutils.NewTargetResolver()
	}
	targetDirectory := targetResolver.Resolve(arguments)

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	branchResolver, resolverError := NewGitBranchResolver(gitExecutor)
	if resolverError != nil {
		return resolverError
	}

	scanner, scannerError := discovery.NewImmediateRepositoryScanner(dependencies.ResolveFileSystem(builder.FileSystem), logger)
	if scannerError != nil {
		return scannerError
	}

	service, serviceError := NewService(ServiceDependencies{
		Scanner:        scanner,
		BranchResolver: branchResolver,
		IndexSource:    builder.IndexSource,
		Logger:         logger,
	})
	if serviceError != nil {
		return serviceError
	}

	logger.Debug(reportStartedMessageConstant, zap.String(logFieldTargetPathConstant, targetDirectory), zap.String(logFieldColorModeConstant, string(configuration.Color)))

	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	return service.Run(executionContext, Options{
		TargetDirectory:   targetDirectory,
		Output:            command.OutOrStdout(),
		ColorMode:         configuration.Color,
		FolderColumnWidth: configuration.FolderColumnWidth,
		BranchColumnWidth: configuration.BranchColumnWidth,
	})
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
