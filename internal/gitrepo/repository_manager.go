package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/temirov/gitflow/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant        = "git executor not configured"
	currentBranchFailureTemplateConstant        = "failed to determine current branch: %w"
	checkoutFailureTemplateConstant             = "failed to checkout %q: %w"
	branchCreationFailureTemplateConstant       = "failed to create branch %q: %w"
	pullFailureTemplateConstant                 = "failed to pull %q from %q: %w"
	fetchFailureTemplateConstant                = "failed to fetch from %q: %w"
	pushFailureTemplateConstant                 = "failed to push %q to %q: %w"
	remoteDeletionFailureTemplateConstant       = "failed to delete remote branch %q on %q: %w"
	localDeletionFailureTemplateConstant        = "failed to delete local branch %q: %w"
	mergedBranchListingFailureTemplateConstant  = "failed to list branches merged into %q: %w"
	worktreeStatusFailureTemplateConstant       = "failed to read worktree status: %w"
	unpushedCountFailureTemplateConstant        = "failed to count commits ahead of %q: %w"
	commitTimestampFailureTemplateConstant      = "failed to read last commit timestamp: %w"
	commitTimestampParseFailureTemplateConstant = "failed to parse commit timestamp %q: %w"
	trackedFileListingFailureTemplateConstant   = "failed to list tracked files: %w"
	remoteLookupFailureTemplateConstant         = "failed to query %q for branch %q: %w"
	stagingFailureTemplateConstant              = "failed to stage changes: %w"
	commitFailureTemplateConstant               = "failed to create commit: %w"

	gitRevParseSubcommandConstant        = "rev-parse"
	gitAbbreviatedReferenceFlagConstant  = "--abbrev-ref"
	gitHeadReferenceConstant             = "HEAD"
	gitCheckoutSubcommandConstant        = "checkout"
	gitCreateBranchFlagConstant          = "-b"
	gitPullSubcommandConstant            = "pull"
	gitFetchSubcommandConstant           = "fetch"
	gitPushSubcommandConstant            = "push"
	gitSetUpstreamFlagConstant           = "--set-upstream"
	gitDeleteFlagConstant                = "--delete"
	gitBranchSubcommandConstant          = "branch"
	gitMergedFlagConstant                = "--merged"
	gitStatusSubcommandConstant          = "status"
	gitPorcelainFlagConstant             = "--porcelain"
	gitLogSubcommandConstant             = "log"
	gitOneLineFlagConstant               = "--oneline"
	gitCommitRangeTemplateConstant       = "%s..%s"
	gitShowSubcommandConstant            = "show"
	gitSuppressDiffFlagConstant          = "-s"
	gitCommitterDateFormatFlagConstant   = "--format=%cI"
	gitListTreeSubcommandConstant        = "ls-tree"
	gitRecursiveFlagConstant             = "-r"
	gitLongFormatFlagConstant            = "--long"
	gitListRemoteSubcommandConstant      = "ls-remote"
	gitHeadsFlagConstant                 = "--heads"
	gitAddSubcommandConstant             = "add"
	gitAddAllPathSpecConstant            = "."
	gitCommitSubcommandConstant          = "commit"
	gitCommitMessageFlagConstant         = "-m"
	currentBranchMarkerPrefixConstant    = "*"
	treeEntryBlobTypeConstant            = "blob"
	terminalPromptEnvironmentName        = "GIT_TERMINAL_PROMPT"
	terminalPromptEnvironmentDisabledVal = "0"
)

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// GitExecutor exposes the subset of shell execution required for repository operations.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// TrackedFile describes a blob recorded in the current tree along with its object size.
type TrackedFile struct {
	Path      string
	SizeBytes int64
}

// RepositoryManager performs structured git operations through an executor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager when an executor is available.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CurrentBranch reports the abbreviated name of the checked-out branch.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, workingDirectory string) (string, error) {
	executionResult, executionError := manager.executeGit(executionContext, workingDirectory, gitRevParseSubcommandConstant, gitAbbreviatedReferenceFlagConstant, gitHeadReferenceConstant)
	if executionError != nil {
		return "", fmt.Errorf(currentBranchFailureTemplateConstant, executionError)
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// Checkout switches the worktree to the named branch.
func (manager *RepositoryManager) Checkout(executionContext context.Context, workingDirectory string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, workingDirectory, gitCheckoutSubcommandConstant, branchName)
	if executionError != nil {
		return fmt.Errorf(checkoutFailureTemplateConstant, branchName, executionError)
	}
	return nil
}

// CreateBranch creates and checks out a new branch.
func (manager *RepositoryManager) CreateBranch(executionContext context.Context, workingDirectory string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, workingDirectory, gitCheckoutSubcommandConstant, gitCreateBranchFlagConstant, branchName)
	if executionError != nil {
		return fmt.Errorf(branchCreationFailureTemplateConstant, branchName, executionError)
	}
	return nil
}

// Pull integrates the remote counterpart of the named branch.
func (manager *RepositoryManager) Pull(executionContext context.Context, workingDirectory string, remoteName string, branchName string) error {
	_, executionError := manager.executeNetworkGit(executionContext, workingDirectory, gitPullSubcommandConstant, remoteName, branchName)
	if executionError != nil {
		return fmt.Errorf(pullFailureTemplateConstant, branchName, remoteName, executionError)
	}
	return nil
}

// Fetch retrieves updates from the named remote.
func (manager *RepositoryManager) Fetch(executionContext context.Context, workingDirectory string, remoteName string) error {
	_, executionError := manager.executeNetworkGit(executionContext, workingDirectory, gitFetchSubcommandConstant, remoteName)
	if executionError != nil {
		return fmt.Errorf(fetchFailureTemplateConstant, remoteName, executionError)
	}
	return nil
}

// Push publishes the named branch, optionally configuring upstream tracking.
func (manager *RepositoryManager) Push(executionContext context.Context, workingDirectory string, remoteName string, branchName string, setUpstream bool) error {
	pushArguments := []string{gitPushSubcommandConstant}
	if setUpstream {
		pushArguments = append(pushArguments, gitSetUpstreamFlagConstant)
	}
	pushArguments = append(pushArguments, remoteName, branchName)

	_, executionError := manager.executeNetworkGit(executionContext, workingDirectory, pushArguments...)
	if executionError != nil {
		return fmt.Errorf(pushFailureTemplateConstant, branchName, remoteName, executionError)
	}
	return nil
}

// DeleteRemoteBranch removes the remote counterpart of the named branch.
func (manager *RepositoryManager) DeleteRemoteBranch(executionContext context.Context, workingDirectory string, remoteName string, branchName string) error {
	_, executionError := manager.executeNetworkGit(executionContext, workingDirectory, gitPushSubcommandConstant, remoteName, gitDeleteFlagConstant, branchName)
	if executionError != nil {
		return fmt.Errorf(remoteDeletionFailureTemplateConstant, branchName, remoteName, executionError)
	}
	return nil
}

// DeleteLocalBranch removes a fully merged local branch.
func (manager *RepositoryManager) DeleteLocalBranch(executionContext context.Context, workingDirectory string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, workingDirectory, gitBranchSubcommandConstant, gitDeleteFlagConstant, branchName)
	if executionError != nil {
		return fmt.Errorf(localDeletionFailureTemplateConstant, branchName, executionError)
	}
	return nil
}

// ListMergedBranches reports local branches already merged into the named branch.
// The currently checked-out branch is excluded because git marks it rather than listing it plainly.
func (manager *RepositoryManager) ListMergedBranches(executionContext context.Context, workingDirectory string, targetBranchName string) ([]string, error) {
	executionResult, executionError := manager.executeGit(executionContext, workingDirectory, gitBranchSubcommandConstant, gitMergedFlagConstant, targetBranchName)
	if executionError != nil {
		return nil, fmt.Errorf(mergedBranchListingFailureTemplateConstant, targetBranchName, executionError)
	}

	mergedBranchNames := []string{}
	for _, outputLine := range strings.Split(executionResult.StandardOutput, "\n") {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedLine, currentBranchMarkerPrefixConstant) {
			continue
		}
		mergedBranchNames = append(mergedBranchNames, trimmedLine)
	}

	return mergedBranchNames, nil
}

// CheckCleanWorktree reports whether the worktree has no uncommitted changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, workingDirectory string) (bool, error) {
	executionResult, executionError := manager.executeGit(executionContext, workingDirectory, gitStatusSubcommandConstant, gitPorcelainFlagConstant)
	if executionError != nil {
		return false, fmt.Errorf(worktreeStatusFailureTemplateConstant, executionError)
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// CountCommitsAhead reports how many commits HEAD carries beyond the supplied reference.
func (manager *RepositoryManager) CountCommitsAhead(executionContext context.Context, workingDirectory string, baseReference string) (int, error) {
	commitRange := fmt.Sprintf(gitCommitRangeTemplateConstant, baseReference, gitHeadReferenceConstant)
	executionResult, executionError := manager.executeGit(executionContext, workingDirectory, gitLogSubcommandConstant, commitRange, gitOneLineFlagConstant)
	if executionError != nil {
		return 0, fmt.Errorf(unpushedCountFailureTemplateConstant, baseReference, executionError)
	}

	trimmedOutput := strings.TrimSpace(executionResult.StandardOutput)
	if len(trimmedOutput) == 0 {
		return 0, nil
	}
	return len(strings.Split(trimmedOutput, "\n")), nil
}

// LastCommitTime reports the committer timestamp of HEAD.
func (manager *RepositoryManager) LastCommitTime(executionContext context.Context, workingDirectory string) (time.Time, error) {
	executionResult, executionError := manager.executeGit(executionContext, workingDirectory, gitShowSubcommandConstant, gitSuppressDiffFlagConstant, gitCommitterDateFormatFlagConstant, gitHeadReferenceConstant)
	if executionError != nil {
		return time.Time{}, fmt.Errorf(commitTimestampFailureTemplateConstant, executionError)
	}

	trimmedTimestamp := strings.TrimSpace(executionResult.StandardOutput)
	parsedTimestamp, parseError := time.Parse(time.RFC3339, trimmedTimestamp)
	if parseError != nil {
		return time.Time{}, fmt.Errorf(commitTimestampParseFailureTemplateConstant, trimmedTimestamp, parseError)
	}
	return parsedTimestamp, nil
}

// ListTrackedFiles reports every blob in the HEAD tree along with its object size.
func (manager *RepositoryManager) ListTrackedFiles(executionContext context.Context, workingDirectory string) ([]TrackedFile, error) {
	executionResult, executionError := manager.executeGit(executionContext, workingDirectory, gitListTreeSubcommandConstant, gitRecursiveFlagConstant, gitLongFormatFlagConstant, gitHeadReferenceConstant)
	if executionError != nil {
		return nil, fmt.Errorf(trackedFileListingFailureTemplateConstant, executionError)
	}

	trackedFiles := []TrackedFile{}
	for _, outputLine := range strings.Split(executionResult.StandardOutput, "\n") {
		if len(strings.TrimSpace(outputLine)) == 0 {
			continue
		}

		metadataAndPath := strings.SplitN(outputLine, "\t", 2)
		if len(metadataAndPath) != 2 {
			continue
		}

		metadataFields := strings.Fields(metadataAndPath[0])
		if len(metadataFields) != 4 || metadataFields[1] != treeEntryBlobTypeConstant {
			continue
		}

		objectSize, sizeParseError := strconv.ParseInt(metadataFields[3], 10, 64)
		if sizeParseError != nil {
			continue
		}

		trackedFiles = append(trackedFiles, TrackedFile{Path: metadataAndPath[1], SizeBytes: objectSize})
	}

	return trackedFiles, nil
}

// RemoteBranchExists queries the remote for the named branch and reports its presence explicitly.
func (manager *RepositoryManager) RemoteBranchExists(executionContext context.Context, workingDirectory string, remoteName string, branchName string) (bool, error) {
	executionResult, executionError := manager.executeNetworkGit(executionContext, workingDirectory, gitListRemoteSubcommandConstant, gitHeadsFlagConstant, remoteName, branchName)
	if executionError != nil {
		return false, fmt.Errorf(remoteLookupFailureTemplateConstant, remoteName, branchName, executionError)
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) > 0, nil
}

// StageAll stages every pending change in the worktree.
func (manager *RepositoryManager) StageAll(executionContext context.Context, workingDirectory string) error {
	_, executionError := manager.executeGit(executionContext, workingDirectory, gitAddSubcommandConstant, gitAddAllPathSpecConstant)
	if executionError != nil {
		return fmt.Errorf(stagingFailureTemplateConstant, executionError)
	}
	return nil
}

// CreateCommit records staged changes with the supplied message.
func (manager *RepositoryManager) CreateCommit(executionContext context.Context, workingDirectory string, commitMessage string) error {
	_, executionError := manager.executeGit(executionContext, workingDirectory, gitCommitSubcommandConstant, gitCommitMessageFlagConstant, commitMessage)
	if executionError != nil {
		return fmt.Errorf(commitFailureTemplateConstant, executionError)
	}
	return nil
}

func (manager *RepositoryManager) executeGit(executionContext context.Context, workingDirectory string, commandArguments ...string) (execshell.ExecutionResult, error) {
	return manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        commandArguments,
		WorkingDirectory: workingDirectory,
	})
}

func (manager *RepositoryManager) executeNetworkGit(executionContext context.Context, workingDirectory string, commandArguments ...string) (execshell.ExecutionResult, error) {
	return manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        commandArguments,
		WorkingDirectory: workingDirectory,
		EnvironmentVariables: map[string]string{
			terminalPromptEnvironmentName: terminalPromptEnvironmentDisabledVal,
		},
	})
}
