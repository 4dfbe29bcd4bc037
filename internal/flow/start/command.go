package start

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/ui"
)

const (
	featureStartUseConstant              = "start <name>"
	featureStartShortDescriptionConstant = "Start a new feature branch"
	featureStartLongDescriptionConstant  = "start creates a feature branch from an up-to-date base branch and pushes it upstream."
	hotfixUseConstant                    = "hotfix <name>"
	hotfixShortDescriptionConstant       = "Create a hotfix branch"
	hotfixLongDescriptionConstant        = "hotfix creates a hotfix branch from an up-to-date base branch and pushes it upstream."
	baseFlagNameConstant                 = "base"
	baseFlagDescriptionConstant          = "Base branch (default: main)"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the feature start and hotfix commands.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// BuildFeatureStartCommand constructs the feature start subcommand.
func (builder *CommandBuilder) BuildFeatureStartCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   featureStartUseConstant,
		Short: featureStartShortDescriptionConstant,
		Long:  featureStartLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, shared.BranchCategoryFeature)
		},
	}
	command.Flags().String(baseFlagNameConstant, "", baseFlagDescriptionConstant)
	return command, nil
}

// BuildHotfixCommand constructs the hotfix command.
func (builder *CommandBuilder) BuildHotfixCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   hotfixUseConstant,
		Short: hotfixShortDescriptionConstant,
		Long:  hotfixLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, shared.BranchCategoryHotfix)
		},
	}
	command.Flags().String(baseFlagNameConstant, "", baseFlagDescriptionConstant)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, category shared.BranchCategory) error {
	configuration := builder.resolveConfiguration()

	baseBranch := configuration.BaseBranch
	if flagValue, flagError := command.Flags().GetString(baseFlagNameConstant); flagError == nil && len(strings.TrimSpace(flagValue)) > 0 {
		baseBranch = flagValue
	}

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

	_, startError := service.Start(command.Context(), Options{
		RepositoryPath: repositoryPath,
		Category:       category,
		Identifier:     arguments[0],
		BaseBranch:     baseBranch,
		RemoteName:     configuration.RemoteName,
	})
	return startError
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
