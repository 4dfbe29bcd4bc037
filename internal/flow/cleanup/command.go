package cleanup

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/ui"
	flagutils "github.com/temirov/gitflow/internal/utils/flags"
)

const (
	commandUseConstant              = "cleanup"
	commandShortDescriptionConstant = "Clean merged branches"
	commandLongDescriptionConstant  = "cleanup deletes local and remote branches already merged into the target branch. Runs as a dry run unless --no-dry-run is supplied."
	dryRunFlagNameConstant          = "dry-run"
	dryRunFlagDescriptionConstant   = "Show what would be deleted (default)"
	noDryRunFlagNameConstant        = "no-dry-run"
	noDryRunFlagDescriptionConstant = "Actually delete branches"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the cleanup command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the cleanup command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	var dryRunRequested bool

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, dryRunRequested)
		},
	}

	flagutils.AddToggleFlag(command.Flags(), &dryRunRequested, dryRunFlagNameConstant, "", true, dryRunFlagDescriptionConstant)
	command.Flags().Bool(noDryRunFlagNameConstant, false, noDryRunFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, dryRunRequested bool) error {
	configuration := builder.resolveConfiguration()

	deletionRequested, flagError := command.Flags().GetBool(noDryRunFlagNameConstant)
	if flagError != nil {
		return flagError
	}
	dryRun := dryRunRequested && !deletionRequested

	repositoryPath, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	gitExecutor, executorError := shared.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}
	repositoryManager, managerError := shared.ResolveRepositoryManager(builder.RepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	service, serviceCreationError := NewService(Dependencies{
		RepositoryManager: repositoryManager,
		Reporter:          ui.NewStatusReporter(command.OutOrStdout()),
	})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	_, cleanError := service.Clean(command.Context(), Options{
		RepositoryPath: repositoryPath,
		TargetBranch:   configuration.TargetBranch,
		RemoteName:     configuration.RemoteName,
		DryRun:         dryRun,
	})
	return cleanError
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
