package finish

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/hosting"
	"github.com/temirov/gitflow/internal/ui"
	"github.com/temirov/gitflow/internal/utils"
)

const (
	commandUseConstant              = "finish <name>"
	commandShortDescriptionConstant = "Finish a feature branch"
	commandLongDescriptionConstant  = "finish pushes a feature branch and opens a pull request against the target branch."
	targetFlagNameConstant          = "target"
	targetFlagDescriptionConstant   = "Target branch (default: main)"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the feature finish command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	RepositoryManager            shared.GitRepositoryManager
	PullRequestCreator           hosting.PullRequestCreator
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the feature finish command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	command.Flags().String(targetFlagNameConstant, "", targetFlagDescriptionConstant)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	targetBranch := configuration.TargetBranch
	if flagValue, flagError := command.Flags().GetString(targetFlagNameConstant); flagError == nil && len(strings.TrimSpace(flagValue)) > 0 {
		targetBranch = flagValue
	}

	repositoryIdentifier := configuration.Repository
	contextAccessor := utils.NewCommandContextAccessor()
	if contextRepository, exists := contextAccessor.RepositoryIdentifier(command.Context()); exists {
		if len(strings.TrimSpace(contextRepository)) > 0 {
			repositoryIdentifier = contextRepository
		}
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

	pullRequestCreator := builder.PullRequestCreator
	if pullRequestCreator == nil {
		pullRequestCreator = hosting.NewGitHubClient(command.Context(), hosting.TokenFromEnvironment())
	}

	service, serviceCreationError := NewService(Dependencies{
		RepositoryManager:  repositoryManager,
		PullRequestCreator: pullRequestCreator,
		Reporter:           ui.NewStatusReporter(command.OutOrStdout()),
	})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	_, finishError := service.Finish(command.Context(), Options{
		RepositoryPath: repositoryPath,
		Identifier:     arguments[0],
		Repository:     repositoryIdentifier,
		TargetBranch:   targetBranch,
		RemoteName:     configuration.RemoteName,
	})
	return finishError
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
