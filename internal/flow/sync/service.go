package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/ui"
)

const (
	repositoryPathRequiredMessageConstant   = "repository path must be provided"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	fetchFailureTemplateConstant            = "failed to fetch from %s: %w"
	presenceFailureTemplateConstant         = "failed to query remote branch %s/%s: %w"
	pullFailureTemplateConstant             = "failed to pull branch %q: %w"
	pushFailureTemplateConstant             = "failed to push branch %q: %w"
	syncingMessageTemplateConstant          = "Syncing %s with remote..."
	syncedMessageTemplateConstant           = "%s synced with remote"
	missingRemoteMessageTemplateConstant    = "Remote branch %s/%s doesn't exist"
	creatingRemoteMessageConstant           = "Creating remote branch..."
	remoteCreatedMessageConstant            = "Remote branch created and synced"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Dependencies enumerates external collaborators required for remote synchronization.
type Dependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Reporter          *ui.StatusReporter
}

// Options configures a remote synchronization.
type Options struct {
	RepositoryPath string
	BranchName     string
	RemoteName     string
}

// Result captures the observable outcomes of a synchronization.
type Result struct {
	BranchName    string
	RemoteCreated bool
}

// Service synchronizes local branches with their remote counterparts.
type Service struct {
	repositoryManager shared.GitRepositoryManager
	reporter          *ui.StatusReporter
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = ui.NewStatusReporter(nil)
	}
	return &Service{repositoryManager: dependencies.RepositoryManager, reporter: reporter}, nil
}

// Sync fetches the remote and pulls the branch when its remote counterpart
// exists, or publishes the branch upstream when it does not. The branch
// defaults to the currently checked out one.
func (service *Service) Sync(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.DefaultRemoteNameConstant
	}

	branchName := strings.TrimSpace(options.BranchName)
	if len(branchName) == 0 {
		currentBranch, branchError := service.repositoryManager.CurrentBranch(executionContext, trimmedRepositoryPath)
		if branchError != nil || len(strings.TrimSpace(currentBranch)) == 0 {
			// Detached HEAD or an unborn repository has no symbolic branch.
			branchName = shared.DefaultMainBranchNameConstant
		} else {
			branchName = currentBranch
		}
	}

	service.reporter.Statusf(ui.GlyphRefresh, syncingMessageTemplateConstant, branchName)

	if fetchError := service.repositoryManager.Fetch(executionContext, trimmedRepositoryPath, remoteName); fetchError != nil {
		return Result{}, fmt.Errorf(fetchFailureTemplateConstant, remoteName, fetchError)
	}

	remoteExists, presenceError := service.repositoryManager.RemoteBranchExists(executionContext, trimmedRepositoryPath, remoteName, branchName)
	if presenceError != nil {
		return Result{}, fmt.Errorf(presenceFailureTemplateConstant, remoteName, branchName, presenceError)
	}

	if remoteExists {
		if pullError := service.repositoryManager.Pull(executionContext, trimmedRepositoryPath, remoteName, branchName); pullError != nil {
			return Result{}, fmt.Errorf(pullFailureTemplateConstant, branchName, pullError)
		}
		service.reporter.Successf(syncedMessageTemplateConstant, branchName)
		return Result{BranchName: branchName}, nil
	}

	service.reporter.Warningf(missingRemoteMessageTemplateConstant, remoteName, branchName)
	service.reporter.Plainf(creatingRemoteMessageConstant)
	if pushError := service.repositoryManager.Push(executionContext, trimmedRepositoryPath, remoteName, branchName, true); pushError != nil {
		return Result{}, fmt.Errorf(pushFailureTemplateConstant, branchName, pushError)
	}
	service.reporter.Successf(remoteCreatedMessageConstant)
	return Result{BranchName: branchName, RemoteCreated: true}, nil
}
