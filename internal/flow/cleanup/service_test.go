package cleanup

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitflow/internal/flow/shared"
	"github.com/temirov/gitflow/internal/ui"
)

type stubRepositoryManager struct {
	shared.GitRepositoryManager

	mergedBranches       []string
	listError            error
	localDeleteFailures  map[string]error
	remoteDeleteFailures map[string]error
	deletedLocal         []string
	deletedRemote        []string
}

func (manager *stubRepositoryManager) ListMergedBranches(_ context.Context, _ string, _ string) ([]string, error) {
	return manager.mergedBranches, manager.listError
}

func (manager *stubRepositoryManager) DeleteLocalBranch(_ context.Context, _ string, branchName string) error {
	if deleteError, exists := manager.localDeleteFailures[branchName]; exists {
		return deleteError
	}
	manager.deletedLocal = append(manager.deletedLocal, branchName)
	return nil
}

func (manager *stubRepositoryManager) DeleteRemoteBranch(_ context.Context, _ string, _ string, branchName string) error {
	if deleteError, exists := manager.remoteDeleteFailures[branchName]; exists {
		return deleteError
	}
	manager.deletedRemote = append(manager.deletedRemote, branchName)
	return nil
}

func TestCleanExcludesProtectedBranches(testInstance *testing.T) {
	manager := &stubRepositoryManager{mergedBranches: []string{"feature/user-auth", "main", "maintenance", "hotfix/critical-bug"}}
	outputBuffer := &bytes.Buffer{}
	service, creationError := NewService(Dependencies{RepositoryManager: manager, Reporter: ui.NewStatusReporter(outputBuffer)})
	require.NoError(testInstance, creationError)

	result, cleanError := service.Clean(context.Background(), Options{RepositoryPath: "/workspace/project", DryRun: true})
	require.NoError(testInstance, cleanError)
	require.Equal(testInstance, []string{"feature/user-auth", "hotfix/critical-bug"}, result.Candidates)
	require.Contains(testInstance, outputBuffer.String(), "🧹 Cleaning up merged branches...")
	require.Contains(testInstance, outputBuffer.String(), "Found 2 merged branches:")
	require.Contains(testInstance, outputBuffer.String(), "  - feature/user-auth")
	require.Contains(testInstance, outputBuffer.String(), "🔍 This is a dry run. Use --no-dry-run to actually delete branches.")
	require.Empty(testInstance, manager.deletedLocal)
	require.Empty(testInstance, manager.deletedRemote)
}

func TestCleanReportsWhenNothingToDelete(testInstance *testing.T) {
	manager := &stubRepositoryManager{mergedBranches: []string{"main", "maintenance"}}
	outputBuffer := &bytes.Buffer{}
	service, creationError := NewService(Dependencies{RepositoryManager: manager, Reporter: ui.NewStatusReporter(outputBuffer)})
	require.NoError(testInstance, creationError)

	result, cleanError := service.Clean(context.Background(), Options{RepositoryPath: "/workspace/project", DryRun: false})
	require.NoError(testInstance, cleanError)
	require.Empty(testInstance, result.Candidates)
	require.Contains(testInstance, outputBuffer.String(), "✅ No merged branches to clean up")
}

func TestCleanDeletesLocalThenRemoteBranches(testInstance *testing.T) {
	manager := &stubRepositoryManager{mergedBranches: []string{"feature/user-auth", "feature/search"}}
	outputBuffer := &bytes.Buffer{}
	service, creationError := NewService(Dependencies{RepositoryManager: manager, Reporter: ui.NewStatusReporter(outputBuffer)})
	require.NoError(testInstance, creationError)

	result, cleanError := service.Clean(context.Background(), Options{RepositoryPath: "/workspace/project", DryRun: false})
	require.NoError(testInstance, cleanError)
	require.Equal(testInstance, []string{"feature/user-auth", "feature/search"}, result.DeletedLocalBranches)
	require.Equal(testInstance, []string{"feature/user-auth", "feature/search"}, result.DeletedRemoteBranches)
	require.Contains(testInstance, outputBuffer.String(), "✅ Deleted local branch: feature/user-auth")
	require.Contains(testInstance, outputBuffer.String(), "✅ Deleted remote branch: feature/search")
}

func TestCleanContinuesPastDeletionFailures(testInstance *testing.T) {
	deletionFailure := errors.New("branch not fully merged")
	manager := &stubRepositoryManager{
		mergedBranches:       []string{"feature/user-auth", "feature/search"},
		localDeleteFailures:  map[string]error{"feature/user-auth": deletionFailure},
		remoteDeleteFailures: map[string]error{"feature/search": deletionFailure},
	}
	outputBuffer := &bytes.Buffer{}
	service, creationError := NewService(Dependencies{RepositoryManager: manager, Reporter: ui.NewStatusReporter(outputBuffer)})
	require.NoError(testInstance, creationError)

	result, cleanError := service.Clean(context.Background(), Options{RepositoryPath: "/workspace/project", DryRun: false})
	require.NoError(testInstance, cleanError)
	require.Equal(testInstance, []string{"feature/search"}, result.DeletedLocalBranches)
	require.Equal(testInstance, []string{"feature/user-auth"}, result.DeletedRemoteBranches)
	require.Contains(testInstance, outputBuffer.String(), "⚠️ Could not delete local branch: feature/user-auth")
	require.Contains(testInstance, outputBuffer.String(), "⚠️ Could not delete remote branch: feature/search")
}

func TestCleanSurfacesListFailure(testInstance *testing.T) {
	listFailure := errors.New("not a git repository")
	manager := &stubRepositoryManager{listError: listFailure}
	service, creationError := NewService(Dependencies{RepositoryManager: manager})
	require.NoError(testInstance, creationError)

	_, cleanError := service.Clean(context.Background(), Options{RepositoryPath: "/workspace/project"})
	require.ErrorContains(testInstance, cleanError, "failed to list merged branches")
	require.ErrorIs(testInstance, cleanError, listFailure)
}

func TestCleanValidatesRepositoryPath(testInstance *testing.T) {
	service, creationError := NewService(Dependencies{RepositoryManager: &stubRepositoryManager{}})
	require.NoError(testInstance, creationError)

	_, cleanError := service.Clean(context.Background(), Options{})
	require.ErrorIs(testInstance, cleanError, ErrRepositoryPathRequired)
}
