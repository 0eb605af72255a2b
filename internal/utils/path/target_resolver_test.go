package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/repobranches/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/tester"

func TestTargetResolverResolve(testInstance *testing.T) {
	testCases := []struct {
		name         string
		arguments    []string
		expectedPath string
	}{
		{name: "no_arguments", arguments: nil, expectedPath: "."},
		{name: "blank_argument", arguments: []string{"  "}, expectedPath: "."},
		{name: "relative_path", arguments: []string{"projects"}, expectedPath: "projects"},
		{name: "absolute_path", arguments: []string{"/srv/code"}, expectedPath: "/srv/code"},
		{name: "home_only", arguments: []string{"~"}, expectedPath: testHomeDirectoryConstant},
		{name: "home_relative", arguments: []string{"~/Development"}, expectedPath: filepath.Join(testHomeDirectoryConstant, "Development")},
		{name: "other_user", arguments: []string{"~alice/code"}, expectedPath: "~alice/code"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolver := pathutils.NewTargetResolverWithProvider(func() (string, error) {
				return testHomeDirectoryConstant, nil
			})
			require.Equal(testInstance, testCase.expectedPath, resolver.Resolve(testCase.arguments))
		})
	}
}

func TestTargetResolverKeepsTildeWhenHomeUnknown(testInstance *testing.T) {
	resolver := pathutils.NewTargetResolverWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})
	require.Equal(testInstance, "~/Development", resolver.Resolve([]string{"~/Development"}))
}

func TestTargetResolverLooksUpHomeOnce(testInstance *testing.T) {
	lookupCount := 0
	resolver := pathutils.NewTargetResolverWithProvider(func() (string, error) {
		lookupCount++
		return testHomeDirectoryConstant, nil
	})

	resolver.Resolve([]string{"~/a"})
	resolver.Resolve([]string{"~/b"})
	resolver.Resolve([]string{"plain"})

	require.Equal(testInstance, 1, lookupCount)
}
