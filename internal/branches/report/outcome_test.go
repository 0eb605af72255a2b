package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repobranches/internal/branches/report"
)

func TestNewFolderReportClassifiesLookupResults(testInstance *testing.T) {
	testCases := []struct {
		name             string
		branchName       string
		lookupError      error
		expectedFailure  report.QueryFailureReason
		expectedBranchUI string
	}{
		{
			name:             "resolved_branch",
			branchName:       "main",
			expectedFailure:  report.QueryFailureNone,
			expectedBranchUI: "main",
		},
		{
			name:             "query_failed",
			lookupError:      report.BranchQueryError{RepositoryPath: "/work/empty", Reason: report.QueryFailureExitStatus, Cause: errors.New("exit 128")},
			expectedFailure:  report.QueryFailureExitStatus,
			expectedBranchUI: report.QueryFailedSentinel,
		},
		{
			name:             "tool_unavailable",
			lookupError:      report.BranchQueryError{RepositoryPath: "/work/app", Reason: report.QueryFailureToolUnavailable, Cause: errors.New("not found")},
			expectedFailure:  report.QueryFailureToolUnavailable,
			expectedBranchUI: report.ToolUnavailableSentinel,
		},
		{
			name:             "foreign_error",
			branchName:       "ignored",
			lookupError:      errors.New("resolver exploded"),
			expectedFailure:  report.QueryFailureExitStatus,
			expectedBranchUI: report.QueryFailedSentinel,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			folderReport := report.NewFolderReport("service", testCase.branchName, testCase.lookupError)
			require.Equal(testInstance, "service", folderReport.FolderName)
			require.Equal(testInstance, testCase.expectedFailure, folderReport.Failure)
			require.Equal(testInstance, testCase.expectedBranchUI, folderReport.BranchText())
		})
	}
}

func TestSentinelTexts(testInstance *testing.T) {
	require.Equal(testInstance, "Error/No Commit", report.QueryFailedSentinel)
	require.Equal(testInstance, "Git missing?", report.ToolUnavailableSentinel)
}

func TestBranchQueryErrorUnwraps(testInstance *testing.T) {
	cause := errors.New("exit status 128")
	queryError := report.BranchQueryError{RepositoryPath: "/work/app", Reason: report.QueryFailureExitStatus, Cause: cause}
	require.ErrorIs(testInstance, queryError, cause)
	require.Equal(testInstance, "branch query failed in /work/app: exit status 128", queryError.Error())
}
