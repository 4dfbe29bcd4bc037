// Package hosting integrates with the repository hosting provider's API.
//
// It defines the narrow PullRequestCreator capability consumed by workflow
// services and provides a GitHub-backed implementation using the go-github
// client with ambient token credentials.
package hosting
