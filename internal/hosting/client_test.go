package hosting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testRepositoryIdentifierConstant = "octocat/widgets"
	testPullRequestTitleConstant     = "Feature: login"
	testSourceBranchConstant         = "feature/login"
	testTargetBranchConstant         = "main"
)

func newTestClient(testInstance *testing.T, handler http.Handler) (*GitHubClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	testInstance.Cleanup(server.Close)

	client := NewGitHubClient(context.Background(), "test-token")
	serverURL, parseError := url.Parse(server.URL + "/")
	require.NoError(testInstance, parseError)
	client.apiClient.BaseURL = serverURL

	return client, server
}

func TestCreatePullRequestSendsExpectedPayload(testInstance *testing.T) {
	var receivedPayload struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Head  string `json:"head"`
		Base  string `json:"base"`
	}

	handler := http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		require.Equal(testInstance, http.MethodPost, request.Method)
		require.Equal(testInstance, "/repos/octocat/widgets/pulls", request.URL.Path)
		decodeError := json.NewDecoder(request.Body).Decode(&receivedPayload)
		require.NoError(testInstance, decodeError)

		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.WriteHeader(http.StatusCreated)
		_, _ = responseWriter.Write([]byte(`{"number": 42, "html_url": "https://github.com/octocat/widgets/pull/42"}`))
	})

	client, _ := newTestClient(testInstance, handler)

	pullRequestReference, creationError := client.CreatePullRequest(context.Background(), PullRequestDetails{
		Repository:   testRepositoryIdentifierConstant,
		Title:        testPullRequestTitleConstant,
		Description:  "## Description\nlogin",
		SourceBranch: testSourceBranchConstant,
		TargetBranch: testTargetBranchConstant,
	})

	require.NoError(testInstance, creationError)
	require.Equal(testInstance, "42", pullRequestReference.Identifier)
	require.Equal(testInstance, "https://github.com/octocat/widgets/pull/42", pullRequestReference.URL)
	require.Equal(testInstance, testPullRequestTitleConstant, receivedPayload.Title)
	require.Equal(testInstance, testSourceBranchConstant, receivedPayload.Head)
	require.Equal(testInstance, testTargetBranchConstant, receivedPayload.Base)
}

func TestCreatePullRequestValidatesInputs(testInstance *testing.T) {
	testCases := []struct {
		name          string
		details       PullRequestDetails
		expectedError error
	}{
		{
			name: "missing_title",
			details: PullRequestDetails{
				Repository:   testRepositoryIdentifierConstant,
				SourceBranch: testSourceBranchConstant,
				TargetBranch: testTargetBranchConstant,
			},
			expectedError: ErrTitleRequired,
		},
		{
			name: "missing_source_branch",
			details: PullRequestDetails{
				Repository:   testRepositoryIdentifierConstant,
				Title:        testPullRequestTitleConstant,
				TargetBranch: testTargetBranchConstant,
			},
			expectedError: ErrSourceBranchRequired,
		},
		{
			name: "missing_target_branch",
			details: PullRequestDetails{
				Repository:   testRepositoryIdentifierConstant,
				Title:        testPullRequestTitleConstant,
				SourceBranch: testSourceBranchConstant,
			},
			expectedError: ErrTargetBranchRequired,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			client := NewGitHubClient(context.Background(), "")
			_, creationError := client.CreatePullRequest(context.Background(), testCase.details)
			require.ErrorIs(testInstance, creationError, testCase.expectedError)
		})
	}
}

func TestCreatePullRequestRejectsMalformedRepositoryIdentifiers(testInstance *testing.T) {
	testCases := []struct {
		name                 string
		repositoryIdentifier string
	}{
		{name: "empty", repositoryIdentifier: ""},
		{name: "missing_owner", repositoryIdentifier: "/widgets"},
		{name: "missing_name", repositoryIdentifier: "octocat/"},
		{name: "excess_segments", repositoryIdentifier: "octocat/widgets/extra"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			client := NewGitHubClient(context.Background(), "")
			_, creationError := client.CreatePullRequest(context.Background(), PullRequestDetails{
				Repository:   testCase.repositoryIdentifier,
				Title:        testPullRequestTitleConstant,
				SourceBranch: testSourceBranchConstant,
				TargetBranch: testTargetBranchConstant,
			})
			require.Error(testInstance, creationError)
			require.Contains(testInstance, creationError.Error(), "owner/name")
		})
	}
}
