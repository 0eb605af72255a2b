package report

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/repobranches/internal/execshell"
	"github.com/temirov/repobranches/internal/repos/shared"
)

const (
	gitRevParseSubcommandConstant     = "rev-parse"
	gitAbbrevRefFlagConstant          = "--abbrev-ref"
	gitHeadReferenceConstant          = "HEAD"
	invalidUTF8ReplacementConstant    = "\uFFFD"
	gitExecutorMissingMessageConstant = "git executor not configured"
)

// ErrGitExecutorNotConfigured indicates the resolver was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// BranchResolver names the branch currently checked out in a repository.
type BranchResolver interface {
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
}

// GitBranchResolver resolves branches with `git rev-parse --abbrev-ref HEAD`.
type GitBranchResolver struct {
	executor shared.GitExecutor
}

// NewGitBranchResolver constructs a resolver backed by the provided git executor.
func NewGitBranchResolver(executor shared.GitExecutor) (*GitBranchResolver, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &GitBranchResolver{executor: executor}, nil
}

// CurrentBranch runs git inside repositoryPath. A non-zero exit yields a
// BranchQueryError with QueryFailureExitStatus; a git process that could not be
// started yields QueryFailureToolUnavailable.
func (resolver *GitBranchResolver) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := resolver.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		reason := QueryFailureExitStatus
		var startFailure execshell.CommandExecutionError
		if errors.As(executionError, &startFailure) {
			reason = QueryFailureToolUnavailable
		}
		return "", BranchQueryError{RepositoryPath: repositoryPath, Reason: reason, Cause: executionError}
	}

	return strings.TrimSpace(strings.ToValidUTF8(executionResult.StandardOutput, invalidUTF8ReplacementConstant)), nil
}
