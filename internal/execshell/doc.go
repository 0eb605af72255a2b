// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with zap logging and typed errors so
// callers can tell a command that ran and failed apart from a command that
// could not be started. OSCommandRunner is the os/exec backed runner.
package execshell
