package shared

import (
	"context"
	"time"

	"github.com/temirov/gitflow/internal/execshell"
	"github.com/temirov/gitflow/internal/gitrepo"
)

const (
	// DefaultRemoteNameConstant identifies the upstream remote used for workflow operations.
	DefaultRemoteNameConstant = "origin"
	// DefaultMainBranchNameConstant identifies the long-lived integration branch.
	DefaultMainBranchNameConstant = "main"
)

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// GitExecutor exposes the subset of shell execution used by workflow services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// GitRepositoryManager exposes the repository operations workflow services orchestrate.
type GitRepositoryManager interface {
	CurrentBranch(executionContext context.Context, workingDirectory string) (string, error)
	Checkout(executionContext context.Context, workingDirectory string, branchName string) error
	CreateBranch(executionContext context.Context, workingDirectory string, branchName string) error
	Pull(executionContext context.Context, workingDirectory string, remoteName string, branchName string) error
	Fetch(executionContext context.Context, workingDirectory string, remoteName string) error
	Push(executionContext context.Context, workingDirectory string, remoteName string, branchName string, setUpstream bool) error
	DeleteRemoteBranch(executionContext context.Context, workingDirectory string, remoteName string, branchName string) error
	DeleteLocalBranch(executionContext context.Context, workingDirectory string, branchName string) error
	ListMergedBranches(executionContext context.Context, workingDirectory string, targetBranchName string) ([]string, error)
	CheckCleanWorktree(executionContext context.Context, workingDirectory string) (bool, error)
	CountCommitsAhead(executionContext context.Context, workingDirectory string, baseReference string) (int, error)
	LastCommitTime(executionContext context.Context, workingDirectory string) (time.Time, error)
	ListTrackedFiles(executionContext context.Context, workingDirectory string) ([]gitrepo.TrackedFile, error)
	RemoteBranchExists(executionContext context.Context, workingDirectory string, remoteName string, branchName string) (bool, error)
	StageAll(executionContext context.Context, workingDirectory string) error
	CreateCommit(executionContext context.Context, workingDirectory string, commitMessage string) error
}
