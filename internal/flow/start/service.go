package start

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
	pushBranchFailureTemplateConstant       = "failed to push branch %q: %w"
	creatingBranchMessageTemplateConstant   = "Creating %s branch: %s"
	featureCreatedMessageTemplateConstant   = "Feature branch '%s' created and pushed to remote"
	hotfixCreatedMessageTemplateConstant    = "Hotfix branch '%s' created and pushed to remote"
	startWorkingMessageConstant             = "You can now start working on your feature!"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Dependencies enumerates external collaborators required for branch creation.
type Dependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Reporter          *ui.StatusReporter
}

// Options configures a branch creation operation.
type Options struct {
	RepositoryPath string
	Category       shared.BranchCategory
	Identifier     string
	BaseBranch     string
	RemoteName     string
}

// Result captures the observable outcomes of a branch creation.
type Result struct {
	BranchName string
	BaseBranch string
}

// Service creates feature and hotfix branches from an up-to-date base branch.
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

// Start creates the requested branch from the base branch and pushes it upstream.
func (service *Service) Start(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}
	if validationError := shared.ValidateBranchIdentifier(strings.TrimSpace(options.Identifier)); validationError != nil {
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

	reference := shared.BranchReference{Category: options.Category, Identifier: strings.TrimSpace(options.Identifier)}
	branchName := reference.QualifiedName()
	service.reporter.Plainf(creatingBranchMessageTemplateConstant, string(options.Category), branchName)

	if checkoutError := service.repositoryManager.Checkout(executionContext, trimmedRepositoryPath, baseBranch); checkoutError != nil {
		return Result{}, fmt.Errorf(checkoutBaseFailureTemplateConstant, baseBranch, checkoutError)
	}
	if pullError := service.repositoryManager.Pull(executionContext, trimmedRepositoryPath, remoteName, baseBranch); pullError != nil {
		return Result{}, fmt.Errorf(pullBaseFailureTemplateConstant, baseBranch, pullError)
	}
	if createError := service.repositoryManager.CreateBranch(executionContext, trimmedRepositoryPath, branchName); createError != nil {
		return Result{}, fmt.Errorf(createBranchFailureTemplateConstant, branchName, createError)
	}
	if pushError := service.repositoryManager.Push(executionContext, trimmedRepositoryPath, remoteName, branchName, true); pushError != nil {
		return Result{}, fmt.Errorf(pushBranchFailureTemplateConstant, branchName, pushError)
	}

	switch options.Category {
	case shared.BranchCategoryHotfix:
		service.reporter.Statusf(ui.GlyphFire, hotfixCreatedMessageTemplateConstant, branchName)
	default:
		service.reporter.Successf(featureCreatedMessageTemplateConstant, branchName)
		service.reporter.Statusf(ui.GlyphLaunch, startWorkingMessageConstant)
	}

	return Result{BranchName: branchName, BaseBranch: baseBranch}, nil
}
