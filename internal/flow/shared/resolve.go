package shared

import (
	"go.uber.org/zap"

	"github.com/temirov/gitflow/internal/execshell"
	"github.com/temirov/gitflow/internal/gitrepo"
	"github.com/temirov/gitflow/internal/ui"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed one.
func ResolveGitExecutor(candidate GitExecutor, logger *zap.Logger, humanReadableLogging bool) (GitExecutor, error) {
	if candidate != nil {
		return candidate, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	commandRunner := execshell.NewOSCommandRunner()
	if humanReadableLogging {
		eventLogger := ui.NewConsoleCommandEventLogger(logger)
		return execshell.NewShellExecutorWithObserver(logger, commandRunner, eventLogger)
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}

// ResolveRepositoryManager returns the provided manager or constructs one over the executor.
func ResolveRepositoryManager(candidate GitRepositoryManager, executor GitExecutor) (GitRepositoryManager, error) {
	if candidate != nil {
		return candidate, nil
	}
	return gitrepo.NewRepositoryManager(executor)
}
