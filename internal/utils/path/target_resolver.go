package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	currentDirectoryConstant = "."
	homeShortcutConstant     = "~"
	forwardSlashConstant     = "/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// TargetResolver turns the optional positional argument into the directory to scan.
type TargetResolver struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	lookupOnce            sync.Once
}

// NewTargetResolver constructs a TargetResolver using the operating system home lookup.
func NewTargetResolver() *TargetResolver {
	return NewTargetResolverWithProvider(os.UserHomeDir)
}

// NewTargetResolverWithProvider constructs a TargetResolver with a custom home lookup.
func NewTargetResolverWithProvider(provider HomeDirectoryProvider) *TargetResolver {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &TargetResolver{homeDirectoryProvider: provider}
}

// Resolve returns the first argument, or the current directory when none is given.
// A leading "~" is replaced by the home directory; when the home directory is
// unknown the argument is returned untouched and listing reports the failure.
func (resolver *TargetResolver) Resolve(arguments []string) string {
	if len(arguments) == 0 || len(strings.TrimSpace(arguments[0])) == 0 {
		return currentDirectoryConstant
	}
	return resolver.expandHome(arguments[0])
}

func (resolver *TargetResolver) expandHome(candidatePath string) string {
	if resolver == nil || !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}

	remainder := strings.TrimPrefix(candidatePath, homeShortcutConstant)
	if len(remainder) > 0 && !strings.HasPrefix(remainder, forwardSlashConstant) && !strings.HasPrefix(remainder, string(os.PathSeparator)) {
		// ~user forms are not expanded
		return candidatePath
	}

	homeDirectory := resolver.lookupHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}
	if len(remainder) == 0 {
		return homeDirectory
	}
	return filepath.Join(homeDirectory, remainder[1:])
}

func (resolver *TargetResolver) lookupHomeDirectory() string {
	resolver.lookupOnce.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
	})
	if resolver.homeDirectoryError != nil {
		return ""
	}
	return resolver.homeDirectory
}
