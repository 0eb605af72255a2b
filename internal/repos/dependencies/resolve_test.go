package dependencies_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/repobranches/internal/execshell"
	"github.com/temirov/repobranches/internal/repos/dependencies"
	"github.com/temirov/repobranches/internal/repos/filesystem"
)

type stubGitExecutor struct{}

func (stubGitExecutor) ExecuteGit(context.Context, execshell.CommandDetails) (execshell.ExecutionResult, error) {
	return execshell.ExecutionResult{}, nil
}

func TestResolveFileSystemDefaultsToOperatingSystem(testInstance *testing.T) {
	require.Equal(testInstance, filesystem.OSFileSystem{}, dependencies.ResolveFileSystem(nil))
}

func TestResolveGitExecutor(testInstance *testing.T) {
	existing := stubGitExecutor{}
	resolved, resolveError := dependencies.ResolveGitExecutor(existing, zap.NewNop(), false)
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, existing, resolved)

	for _, humanReadable := range []bool{false, true} {
		resolved, resolveError = dependencies.ResolveGitExecutor(nil, zap.NewNop(), humanReadable)
		require.NoError(testInstance, resolveError)
		require.IsType(testInstance, &execshell.ShellExecutor{}, resolved)
	}

	_, resolveError = dependencies.ResolveGitExecutor(nil, nil, false)
	require.ErrorIs(testInstance, resolveError, execshell.ErrLoggerNotConfigured)
}
