package discovery_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/repobranches/internal/repos/discovery"
	"github.com/temirov/repobranches/internal/repos/filesystem"
)

const (
	gitMetadataDirectoryName       = ".git"
	applicationRepositoryName      = "application"
	serviceRepositoryName          = "service"
	worktreeRepositoryName         = "feature-worktree"
	plainDirectoryName             = "notes"
	nestedRepositoryName           = "nested"
	looseFileName                  = "README.md"
	fileWithGitSuffixName          = "archive"
	linkedRepositoryName           = "linked"
	repositoryDirectoryPermissions = 0o755
	repositoryFilePermissions      = 0o644
	manyRepositoriesCount          = 150
)

func newScanner(testInstance *testing.T) *discovery.ImmediateRepositoryScanner {
	testInstance.Helper()
	scanner, creationError := discovery.NewImmediateRepositoryScanner(filesystem.OSFileSystem{}, zap.NewNop())
	require.NoError(testInstance, creationError)
	return scanner
}

func createRepositoryDirectory(testInstance *testing.T, path string) {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(path, gitMetadataDirectoryName), repositoryDirectoryPermissions))
}

func collectNames(testInstance *testing.T, listing *discovery.Listing) []string {
	testInstance.Helper()
	var names []string
	for repositoryEntry := range listing.Repositories() {
		names = append(names, repositoryEntry.Name)
	}
	sort.Strings(names)
	return names
}

func TestImmediateRepositoryScannerFiltersEntries(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()

	createRepositoryDirectory(testInstance, filepath.Join(rootDirectory, applicationRepositoryName))
	createRepositoryDirectory(testInstance, filepath.Join(rootDirectory, serviceRepositoryName))

	worktreeDirectory := filepath.Join(rootDirectory, worktreeRepositoryName)
	require.NoError(testInstance, os.MkdirAll(worktreeDirectory, repositoryDirectoryPermissions))
	require.NoError(testInstance, os.WriteFile(filepath.Join(worktreeDirectory, gitMetadataDirectoryName), []byte("gitdir: /elsewhere\n"), repositoryFilePermissions))

	plainDirectory := filepath.Join(rootDirectory, plainDirectoryName)
	createRepositoryDirectory(testInstance, filepath.Join(plainDirectory, nestedRepositoryName))

	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, looseFileName), []byte("text"), repositoryFilePermissions))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, fileWithGitSuffixName), []byte("text"), repositoryFilePermissions))

	linkError := os.Symlink(filepath.Join(rootDirectory, applicationRepositoryName), filepath.Join(rootDirectory, linkedRepositoryName))
	expectedNames := []string{applicationRepositoryName, worktreeRepositoryName, serviceRepositoryName}
	if linkError == nil {
		expectedNames = append(expectedNames, linkedRepositoryName)
	}
	sort.Strings(expectedNames)

	listing, scanError := newScanner(testInstance).Scan(rootDirectory)
	require.NoError(testInstance, scanError)

	repositoryEntries := make(map[string]discovery.RepositoryEntry)
	for repositoryEntry := range listing.Repositories() {
		repositoryEntries[repositoryEntry.Name] = repositoryEntry
	}

	actualNames := make([]string, 0, len(repositoryEntries))
	for name, repositoryEntry := range repositoryEntries {
		actualNames = append(actualNames, name)
		require.Equal(testInstance, filepath.Join(rootDirectory, name), repositoryEntry.Path)
	}
	sort.Strings(actualNames)

	require.Equal(testInstance, expectedNames, actualNames)
}

func TestImmediateRepositoryScannerReadsAcrossBatches(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	expectedNames := make([]string, 0, manyRepositoriesCount)
	for repositoryIndex := 0; repositoryIndex < manyRepositoriesCount; repositoryIndex++ {
		repositoryName := fmt.Sprintf("repository-%03d", repositoryIndex)
		createRepositoryDirectory(testInstance, filepath.Join(rootDirectory, repositoryName))
		expectedNames = append(expectedNames, repositoryName)
	}

	listing, scanError := newScanner(testInstance).Scan(rootDirectory)
	require.NoError(testInstance, scanError)
	require.Equal(testInstance, expectedNames, collectNames(testInstance, listing))
}

func TestImmediateRepositoryScannerHandlesEmptyRoot(testInstance *testing.T) {
	listing, scanError := newScanner(testInstance).Scan(testInstance.TempDir())
	require.NoError(testInstance, scanError)
	require.Empty(testInstance, collectNames(testInstance, listing))
}

func TestImmediateRepositoryScannerStopsEarly(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	createRepositoryDirectory(testInstance, filepath.Join(rootDirectory, applicationRepositoryName))
	createRepositoryDirectory(testInstance, filepath.Join(rootDirectory, serviceRepositoryName))

	listing, scanError := newScanner(testInstance).Scan(rootDirectory)
	require.NoError(testInstance, scanError)

	visited := 0
	for range listing.Repositories() {
		visited++
		break
	}
	require.Equal(testInstance, 1, visited)
	require.NotPanics(testInstance, listing.Close)
}

func TestImmediateRepositoryScannerReportsUnreadableRoot(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	regularFilePath := filepath.Join(rootDirectory, looseFileName)
	require.NoError(testInstance, os.WriteFile(regularFilePath, []byte("text"), repositoryFilePermissions))

	testCases := []struct {
		name string
		path string
	}{
		{name: "missing_directory", path: filepath.Join(rootDirectory, "does-not-exist")},
		{name: "regular_file", path: regularFilePath},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			listing, scanError := newScanner(testInstance).Scan(testCase.path)
			require.Nil(testInstance, listing)
			require.Error(testInstance, scanError)

			var unreadableError discovery.TargetUnreadableError
			require.ErrorAs(testInstance, scanError, &unreadableError)
			require.Equal(testInstance, testCase.path, unreadableError.Path)
			require.Contains(testInstance, scanError.Error(), "error reading directory: ")
		})
	}
}

func TestNewImmediateRepositoryScannerRequiresFileSystem(testInstance *testing.T) {
	scanner, creationError := discovery.NewImmediateRepositoryScanner(nil, zap.NewNop())
	require.Nil(testInstance, scanner)
	require.ErrorIs(testInstance, creationError, discovery.ErrFileSystemNotConfigured)
}
