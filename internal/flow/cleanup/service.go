package cleanup

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
	listMergedFailureTemplateConstant       = "failed to list merged branches: %w"
	cleaningMessageConstant                 = "Cleaning up merged branches..."
	nothingToCleanMessageConstant           = "No merged branches to clean up"
	foundBranchesMessageTemplateConstant    = "Found %d merged branches:"
	dryRunNoticeMessageConstant             = "This is a dry run. Use --no-dry-run to actually delete branches."
	deletedLocalMessageTemplateConstant     = "Deleted local branch: %s"
	localFailureMessageTemplateConstant     = "Could not delete local branch: %s"
	deletedRemoteMessageTemplateConstant    = "Deleted remote branch: %s"
	remoteFailureMessageTemplateConstant    = "Could not delete remote branch: %s"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// Dependencies enumerates external collaborators required for branch cleanup.
type Dependencies struct {
	RepositoryManager shared.GitRepositoryManager
	Reporter          *ui.StatusReporter
}

// Options configures a merged branch cleanup.
type Options struct {
	RepositoryPath string
	TargetBranch   string
	RemoteName     string
	DryRun         bool
}

// Result captures the observable outcomes of a cleanup run.
type Result struct {
	Candidates            []string
	DeletedLocalBranches  []string
	DeletedRemoteBranches []string
}

// Service deletes branches already merged into the target branch.
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

// Clean removes merged branches locally and on the remote. Branches whose
// names contain the target branch name are never considered. Individual
// deletion failures are reported and do not stop the run.
func (service *Service) Clean(executionContext context.Context, options Options) (Result, error) {
	trimmedRepositoryPath := strings.TrimSpace(options.RepositoryPath)
	if len(trimmedRepositoryPath) == 0 {
		return Result{}, ErrRepositoryPathRequired
	}

	targetBranch := strings.TrimSpace(options.TargetBranch)
	if len(targetBranch) == 0 {
		targetBranch = shared.DefaultMainBranchNameConstant
	}
	remoteName := strings.TrimSpace(options.RemoteName)
	if len(remoteName) == 0 {
		remoteName = shared.DefaultRemoteNameConstant
	}

	service.reporter.Statusf(ui.GlyphBroom, cleaningMessageConstant)

	mergedBranches, listError := service.repositoryManager.ListMergedBranches(executionContext, trimmedRepositoryPath, targetBranch)
	if listError != nil {
		return Result{}, fmt.Errorf(listMergedFailureTemplateConstant, listError)
	}

	candidates := make([]string, 0, len(mergedBranches))
	for _, branchName := range mergedBranches {
		if strings.Contains(branchName, targetBranch) {
			continue
		}
		candidates = append(candidates, branchName)
	}

	if len(candidates) == 0 {
		service.reporter.Successf(nothingToCleanMessageConstant)
		return Result{}, nil
	}

	service.reporter.Plainf(foundBranchesMessageTemplateConstant, len(candidates))
	for _, branchName := range candidates {
		service.reporter.ListItemf("%s", branchName)
	}

	if options.DryRun {
		service.reporter.Statusf(ui.GlyphMagnifier, dryRunNoticeMessageConstant)
		return Result{Candidates: candidates}, nil
	}

	result := Result{Candidates: candidates}
	for _, branchName := range candidates {
		if deleteError := service.repositoryManager.DeleteLocalBranch(executionContext, trimmedRepositoryPath, branchName); deleteError != nil {
			service.reporter.Warningf(localFailureMessageTemplateConstant, branchName)
			continue
		}
		service.reporter.Successf(deletedLocalMessageTemplateConstant, branchName)
		result.DeletedLocalBranches = append(result.DeletedLocalBranches, branchName)
	}
	for _, branchName := range candidates {
		if deleteError := service.repositoryManager.DeleteRemoteBranch(executionContext, trimmedRepositoryPath, remoteName, branchName); deleteError != nil {
			service.reporter.Warningf(remoteFailureMessageTemplateConstant, branchName)
			continue
		}
		service.reporter.Successf(deletedRemoteMessageTemplateConstant, branchName)
		result.DeletedRemoteBranches = append(result.DeletedRemoteBranches, branchName)
	}

	return result, nil
}
