package finish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/hosting"
	"github.com/temirov/gitflow/internal/ui"
)

const (
	repositoryPathRequiredMessageConstant    = "repository path must be provided"
	repositoryManagerMissingMessageConstant  = "repository manager not configured"
	pullRequestCreatorMissingMessageConstant = "pull request creator not configured"
	checkoutFailureTemplateConstant          = "failed to checkout branch %q: %w"
	pushFailureTemplateConstant              = "failed to push branch %q: %w"
	finishingBranchMessageTemplateConstant   = "Finishing feature branch: %s"
	missingRepositoryWarningConstant         = "Repository name not provided. Cannot create pull request automatically."
	manualPullRequestMessageTemplateConstant = "Please create a pull request manually from %s to %s"
	pullRequestTitleTemplateConstant         = "Feature: %s"
	pullRequestCreatedMessageConstant        = "Pull request created successfully!"
	pullRequestReferenceTemplateConstant     = "Pull Request ID: %s"
	pullRequestFailureTemplateConstant       = "Failed to create pull request: %v"
)

const pullRequestDescriptionTemplateConstant = `## Description
%s

## Type of Change
- [ ] Bug fix
- [x] New feature
- [ ] Breaking change
- [ ] Documentation update

## Testing
- [ ] Unit tests pass
- [ ] Integration tests pass
- [ ] Manual testing completed

## Checklist
- [ ] Code follows project style guidelines
- [ ] Self-review completed
- [ ] Documentation updated
- [ ] No sensitive data exposed`

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrPullRequestCreatorNotConfigured indicates the pull request creator dependency was missing.
var ErrPullRequestCreatorNotConfigured = errors.New(pullRequestCreatorMissingMessageConstant)

// Dependencies enumerates external collaborators required to finish a feature.
type Dependencies struct {
	RepositoryManager  shared.GitRepositoryManager
	PullRequestCreator hosting.PullRequestCreator
	Reporter           *ui.StatusReporter
}

// Options configures a feature finish operation.
type Options struct {
	RepositoryPath string
	Identifier     string
	Repository     string
	TargetBranch   string
	RemoteName     string
}

// Result captures the observable outcomes of finishing a feature.
type Result struct {
	BranchName  string
	PullRequest *hosting.PullRequestReference
}

// Service finishes feature branches by pushing them and opening a pull request.
type Service struct {
	repositoryManager  shared.GitRepositoryManager
	pullRequestCreator hosting.PullRequestCreator
	reporter           *ui.StatusReporter
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.PullRequestCreator == nil {
		return nil, ErrPullRequestCreatorNotConfigured
	}
	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = ui.NewStatusReporter(nil)
	}
	return &Service{
		repositoryManager:  dependencies.RepositoryManager,
		pullRequestCreator: dependencies.PullRequestCreator,
		reporter:           reporter,
	}, nil
}

// Finish pushes the feature branch and opens a pull request when a repository is configured.
func (service *Service) Finish(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}
	trimmedIdentifier := strings.TrimSpace(options.Identifier)
	if validationError := shared.ValidateBranchIdentifier(trimmedIdentifier); validationError != nil {
		return Result{}, validationError
	}

	targetBranch := strings.TrimSpace(options.TargetBranch)
	if len(targetBranch) == 0 {
		targetBranch = shared.DefaultMainBranchNameConstant
	}
	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.DefaultRemoteNameConstant
	}

	reference := shared.BranchReference{Category: shared.BranchCategoryFeature, Identifier: trimmedIdentifier}
	branchName := reference.QualifiedName()
	service.reporter.Plainf(finishingBranchMessageTemplateConstant, branchName)

	if checkoutError := service.repositoryManager.Checkout(executionContext, trimmedRepositoryPath, branchName); checkoutError != nil {
		return Result{}, fmt.Errorf(checkoutFailureTemplateConstant, branchName, checkoutError)
	}
	if pushError := service.repositoryManager.Push(executionContext, trimmedRepositoryPath, remoteName, branchName, false); pushError != nil {
		return Result{}, fmt.Errorf(pushFailureTemplateConstant, branchName, pushError)
	}

	repositoryIdentifier := strings.TrimSpace(options.Repository)
	if len(repositoryIdentifier) == 0 {
		service.reporter.Warningf(missingRepositoryWarningConstant)
		service.reporter.Plainf(manualPullRequestMessageTemplateConstant, branchName, targetBranch)
		return Result{BranchName: branchName}, nil
	}

	pullRequestReference, creationError := service.pullRequestCreator.CreatePullRequest(executionContext, hosting.PullRequestDetails{
		Repository:   repositoryIdentifier,
		Title:        fmt.Sprintf(pullRequestTitleTemplateConstant, trimmedIdentifier),
		Description:  fmt.Sprintf(pullRequestDescriptionTemplateConstant, trimmedIdentifier),
		SourceBranch: branchName,
		TargetBranch: targetBranch,
	})
	if creationError != nil {
		service.reporter.Failuref(pullRequestFailureTemplateConstant, creationError)
		return Result{BranchName: branchName}, nil
	}

	service.reporter.Successf(pullRequestCreatedMessageConstant)
	service.reporter.Statusf(ui.GlyphLink, pullRequestReferenceTemplateConstant, pullRequestReference.Identifier)
	return Result{BranchName: branchName, PullRequest: &pullRequestReference}, nil
}
