// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for branch, remote, and status operations built
// on the execshell command layer, consumed by the workflow services that need
// structured Git operations.
package gitrepo
