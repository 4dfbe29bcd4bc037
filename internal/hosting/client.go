package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	repositorySeparatorConstant                   = "/"
	repositorySegmentCountConstant                = 2
	invalidRepositoryMessageTemplateConstant      = "repository identifier %q must use the owner/name form"
	pullRequestCreationFailureTemplateConstant    = "failed to create pull request: %w"
	pullRequestMissingNumberMessageConstant       = "hosting API response did not include a pull request number"
	titleRequiredMessageConstant                  = "pull request title must be provided"
	sourceBranchRequiredMessageConstant           = "pull request source branch must be provided"
	targetBranchRequiredMessageConstant           = "pull request target branch must be provided"
	primaryTokenEnvironmentVariableNameConstant   = "GITHUB_TOKEN"
	secondaryTokenEnvironmentVariableNameConstant = "GH_TOKEN"
)

// ErrPullRequestNumberMissing indicates the hosting API returned no identifier.
var ErrPullRequestNumberMissing = errors.New(pullRequestMissingNumberMessageConstant)

// ErrTitleRequired indicates an empty pull request title.
var ErrTitleRequired = errors.New(titleRequiredMessageConstant)

// ErrSourceBranchRequired indicates an empty source branch reference.
var ErrSourceBranchRequired = errors.New(sourceBranchRequiredMessageConstant)

// ErrTargetBranchRequired indicates an empty target branch reference.
var ErrTargetBranchRequired = errors.New(targetBranchRequiredMessageConstant)

// PullRequestDetails describes a pull request to open against the hosting provider.
type PullRequestDetails struct {
	Repository   string
	Title        string
	Description  string
	SourceBranch string
	TargetBranch string
}

// PullRequestReference identifies a pull request created by the hosting provider.
type PullRequestReference struct {
	Identifier string
	URL        string
}

// PullRequestCreator is the single hosting capability workflow services depend on.
type PullRequestCreator interface {
	CreatePullRequest(executionContext context.Context, details PullRequestDetails) (PullRequestReference, error)
}

// GitHubClient implements PullRequestCreator against the GitHub REST API.
type GitHubClient struct {
	apiClient *github.Client
}

// NewGitHubClient constructs a GitHub-backed client. An empty access token
// yields an unauthenticated client, which GitHub rejects for mutations; token
// resolution is the caller's concern because credentials are environment-ambient.
func NewGitHubClient(executionContext context.Context, accessToken string) *GitHubClient {
	var httpClient *http.Client
	if len(strings.TrimSpace(accessToken)) > 0 {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		httpClient = oauth2.NewClient(executionContext, tokenSource)
	}
	return &GitHubClient{apiClient: github.NewClient(httpClient)}
}

// TokenFromEnvironment resolves the ambient hosting API token.
func TokenFromEnvironment() string {
	for _, environmentVariableName := range []string{primaryTokenEnvironmentVariableNameConstant, secondaryTokenEnvironmentVariableNameConstant} {
		tokenValue := strings.TrimSpace(os.Getenv(environmentVariableName))
		if len(tokenValue) > 0 {
			return tokenValue
		}
	}
	return ""
}

// CreatePullRequest opens a pull request and reports its hosting-side identifier.
func (client *GitHubClient) CreatePullRequest(executionContext context.Context, details PullRequestDetails) (PullRequestReference, error) {
	repositoryOwner, repositoryName, repositoryError := splitRepositoryIdentifier(details.Repository)
	if repositoryError != nil {
		return PullRequestReference{}, repositoryError
	}
	if validationError := validatePullRequestDetails(details); validationError != nil {
		return PullRequestReference{}, validationError
	}

	pullRequestPayload := &github.NewPullRequest{
		Title: github.String(details.Title),
		Head:  github.String(details.SourceBranch),
		Base:  github.String(details.TargetBranch),
	}
	if len(details.Description) > 0 {
		pullRequestPayload.Body = github.String(details.Description)
	}

	createdPullRequest, _, creationError := client.apiClient.PullRequests.Create(executionContext, repositoryOwner, repositoryName, pullRequestPayload)
	if creationError != nil {
		return PullRequestReference{}, fmt.Errorf(pullRequestCreationFailureTemplateConstant, creationError)
	}

	if createdPullRequest == nil || createdPullRequest.Number == nil {
		return PullRequestReference{}, ErrPullRequestNumberMissing
	}

	pullRequestReference := PullRequestReference{Identifier: strconv.Itoa(createdPullRequest.GetNumber())}
	if createdPullRequest.HTMLURL != nil {
		pullRequestReference.URL = createdPullRequest.GetHTMLURL()
	}
	return pullRequestReference, nil
}

func validatePullRequestDetails(details PullRequestDetails) error {
	if len(strings.TrimSpace(details.Title)) == 0 {
		return ErrTitleRequired
	}
	if len(strings.TrimSpace(details.SourceBranch)) == 0 {
		return ErrSourceBranchRequired
	}
	if len(strings.TrimSpace(details.TargetBranch)) == 0 {
		return ErrTargetBranchRequired
	}
	return nil
}

func splitRepositoryIdentifier(repositoryIdentifier string) (string, string, error) {
	repositorySegments := strings.Split(strings.TrimSpace(repositoryIdentifier), repositorySeparatorConstant)
	if len(repositorySegments) != repositorySegmentCountConstant {
		return "", "", fmt.Errorf(invalidRepositoryMessageTemplateConstant, repositoryIdentifier)
	}
	for _, repositorySegment := range repositorySegments {
		if len(strings.TrimSpace(repositorySegment)) == 0 {
			return "", "", fmt.Errorf(invalidRepositoryMessageTemplateConstant, repositoryIdentifier)
		}
	}
	return repositorySegments[0], repositorySegments[1], nil
}
