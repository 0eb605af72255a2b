// Package cli constructs the repo-branches command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging
// primitives around the branch report.
package cli
