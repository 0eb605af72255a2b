// Package report prints the current branch of every git checkout that sits
// directly inside a target directory.
//
// The pipeline is strictly sequential: the discovery scanner lists the target,
// GitBranchResolver runs `git rev-parse --abbrev-ref HEAD` in each checkout one
// at a time, and TableReporter writes a fixed-width row per checkout with the
// branch text in a randomly chosen palette color. Lookup failures never abort
// the run; they are carried as a BranchQueryError and rendered as sentinel text.
package report
