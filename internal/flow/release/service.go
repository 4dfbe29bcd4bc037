package release

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
	checkoutBaseFailureTemplateConstant     = "failed to checkout base branch %q: %w"
	pullBaseFailureTemplateConstant         = "failed to update base branch %q: %w"
	createBranchFailureTemplateConstant     = "failed to create branch %q: %w"
	stageFailureTemplateConstant            = "failed to stage version changes: %w"
	commitFailureTemplateConstant           = "failed to commit version changes: %w"
	pushBranchFailureTemplateConstant       = "failed to push branch %q: %w"
	creatingBranchMessageTemplateConstant   = "Creating release branch: release/%s"
	updatingMarkerMessageTemplateConstant   = "Updating version in %s"
	markerFailureMessageTemplateConstant    = "Could not update version marker: %v"
	versionCommitMessageTemplateConstant    = "Bump version to %s"
	releaseCreatedMessageTemplateConstant   = "Release branch '%s' created and pushed to remote"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Dependencies enumerates external collaborators required for release branch creation.
type Dependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Reporter          *ui.StatusReporter
}

// Options configures a release branch creation.
type Options struct {
	RepositoryPath string
	Version        string
	BaseBranch     string
	RemoteName     string
}

// Result captures the observable outcomes of a release branch creation.
type Result struct {
	BranchName   string
	UpdatedFiles []string
}

// Service creates release branches and stamps version markers.
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

// Create validates the version, creates the release branch, updates version
// markers, and pushes the branch upstream. Version validation happens before
// any repository mutation.
func (service *Service) Create(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}
	trimmedVersion := strings.TrimSpace(options.Version)
	if validationError := shared.ValidateReleaseVersion(trimmedVersion); validationError != nil {
		return Result{}, validationError
	}

	baseBranch := strings.TrimSpace(options.BaseBranch)
	if len(baseBranch) == 0 {
		baseBranch = shared.DefaultMainBranchNameConstant
	}
	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.DefaultRemoteNameConstant
	}

	reference := shared.BranchReference{Category: shared.BranchCategoryRelease, Identifier: trimmedVersion}
	branchName := reference.QualifiedName()
	service.reporter.Plainf(creatingBranchMessageTemplateConstant, trimmedVersion)

	if checkoutError := service.repositoryManager.Checkout(executionContext, trimmedRepositoryPath, baseBranch); checkoutError != nil {
		return Result{}, fmt.Errorf(checkoutBaseFailureTemplateConstant, baseBranch, checkoutError)
	}
	if pullError := service.repositoryManager.Pull(executionContext, trimmedRepositoryPath, remoteName, baseBranch); pullError != nil {
		return Result{}, fmt.Errorf(pullBaseFailureTemplateConstant, baseBranch, pullError)
	}
	if createError := service.repositoryManager.CreateBranch(executionContext, trimmedRepositoryPath, branchName); createError != nil {
		return Result{}, fmt.Errorf(createBranchFailureTemplateConstant, branchName, createError)
	}

	updatedFiles, updateFailures := updateVersionMarkers(trimmedRepositoryPath, trimmedVersion)
	for _, updatedFile := range updatedFiles {
		service.reporter.Plainf(updatingMarkerMessageTemplateConstant, updatedFile)
	}
	for _, updateFailure := range updateFailures {
		service.reporter.Warningf(markerFailureMessageTemplateConstant, updateFailure)
	}

	if len(updatedFiles) > 0 {
		if stageError := service.repositoryManager.StageAll(executionContext, trimmedRepositoryPath); stageError != nil {
			return Result{}, fmt.Errorf(stageFailureTemplateConstant, stageError)
		}
		commitMessage := fmt.Sprintf(versionCommitMessageTemplateConstant, trimmedVersion)
		if commitError := service.repositoryManager.CreateCommit(executionContext, trimmedRepositoryPath, commitMessage); commitError != nil {
			return Result{}, fmt.Errorf(commitFailureTemplateConstant, commitError)
		}
	}

	if pushError := service.repositoryManager.Push(executionContext, trimmedRepositoryPath, remoteName, branchName, true); pushError != nil {
		return Result{}, fmt.Errorf(pushBranchFailureTemplateConstant, branchName, pushError)
	}

	service.reporter.Statusf(ui.GlyphLaunch, releaseCreatedMessageTemplateConstant, branchName)
	return Result{BranchName: branchName, UpdatedFiles: updatedFiles}, nil
}
