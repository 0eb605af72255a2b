package filesystem

import (
	"io/fs"
	"os"

	"github.com/temirov/repobranches/internal/repos/shared"
)

// OSFileSystem implements shared.FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata, following symbolic links.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// OpenDirectory opens a directory for incremental listing.
func (OSFileSystem) OpenDirectory(path string) (shared.DirectoryReader, error) {
	directory, openError := os.Open(path)
	if openError != nil {
		return nil, openError
	}
	return directory, nil
}
