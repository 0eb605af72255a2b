package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repobranches/internal/repos/filesystem"
)

func TestOSFileSystemStatFollowsSymbolicLinks(testInstance *testing.T) {
	root := testInstance.TempDir()
	targetDirectory := filepath.Join(root, "checkout")
	require.NoError(testInstance, os.MkdirAll(targetDirectory, 0o755))

	linkPath := filepath.Join(root, "linked")
	if linkError := os.Symlink(targetDirectory, linkPath); linkError != nil {
		testInstance.Skipf("symbolic links unavailable: %v", linkError)
	}

	fileInfo, statError := filesystem.OSFileSystem{}.Stat(linkPath)
	require.NoError(testInstance, statError)
	require.True(testInstance, fileInfo.IsDir())
}

func TestOSFileSystemOpenDirectoryListsEntries(testInstance *testing.T) {
	root := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(root, "alpha"), 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("notes"), 0o644))

	directory, openError := filesystem.OSFileSystem{}.OpenDirectory(root)
	require.NoError(testInstance, openError)
	defer directory.Close()

	entries, readError := directory.ReadDir(-1)
	require.NoError(testInstance, readError)

	entryNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryNames = append(entryNames, entry.Name())
	}
	require.ElementsMatch(testInstance, []string{"alpha", "notes.txt"}, entryNames)
}

func TestOSFileSystemOpenDirectoryReportsMissingPath(testInstance *testing.T) {
	_, openError := filesystem.OSFileSystem{}.OpenDirectory(filepath.Join(testInstance.TempDir(), "missing"))
	require.ErrorIs(testInstance, openError, os.ErrNotExist)
}
