// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec behind ShellExecutor with lifecycle logging, exposes
// OSCommandRunner for default process execution, and defines the abstractions
// gitflow uses to run the git client in a testable manner.
package execshell
