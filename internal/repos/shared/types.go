package shared

import (
	"context"
	"io/fs"

	"github.com/temirov/repobranches/internal/execshell"
)

// GitMetadataDirectoryName names the entry that marks a folder as a git checkout.
// Linked worktrees and submodules carry it as a file rather than a directory.
const GitMetadataDirectoryName = ".git"

// DirectoryReader streams directory entries in operating system order.
type DirectoryReader interface {
	ReadDir(count int) ([]fs.DirEntry, error)
	Close() error
}

// FileSystem exposes the filesystem operations required by repository scanning.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	OpenDirectory(path string) (DirectoryReader, error)
}

// GitExecutor exposes the subset of shell execution used by repository services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}
