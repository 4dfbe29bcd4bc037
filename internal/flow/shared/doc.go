// Package shared provides the branch naming model, validation helpers, and
// collaborator interfaces used by the workflow services.
package shared
