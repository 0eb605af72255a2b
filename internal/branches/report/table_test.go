package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/temirov/repobranches/internal/branches/report"
	"github.com/temirov/repobranches/internal/repos/shared"
)

const (
	expectedHeaderLineConstant    = "Folder                         | Branch"
	expectedSeparatorLineConstant = "------------------------------ | --------------------"
)

func newPlainTable(output *bytes.Buffer, folderColumnWidth int) *report.TableReporter {
	return report.NewTableReporter(
		shared.NewWriterReporter(output),
		report.NewPalette(output, report.ColorModeNever, fixedIndexSource{}),
		folderColumnWidth,
		0,
	)
}

func TestTableReporterWritesHeader(testInstance *testing.T) {
	output := &bytes.Buffer{}
	newPlainTable(output, 0).WriteHeader()

	require.Equal(testInstance, expectedHeaderLineConstant+"\n"+expectedSeparatorLineConstant+"\n", output.String())
}

func TestTableReporterWritesRows(testInstance *testing.T) {
	testCases := []struct {
		name         string
		folderReport report.FolderReport
		expectedRow  string
	}{
		{
			name:         "resolved",
			folderReport: report.FolderReport{FolderName: "api", BranchName: "main"},
			expectedRow:  "api                            | main",
		},
		{
			name:         "query_failed",
			folderReport: report.FolderReport{FolderName: "empty-repo", Failure: report.QueryFailureExitStatus},
			expectedRow:  "empty-repo                     | Error/No Commit",
		},
		{
			name:         "tool_unavailable",
			folderReport: report.FolderReport{FolderName: "web", Failure: report.QueryFailureToolUnavailable},
			expectedRow:  "web                            | Git missing?",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			output := &bytes.Buffer{}
			newPlainTable(output, 0).WriteRow(testCase.folderReport)
			require.Equal(testInstance, testCase.expectedRow+"\n", output.String())
		})
	}
}

func TestTableReporterTruncatesLongFolderNames(testInstance *testing.T) {
	output := &bytes.Buffer{}
	longName := strings.Repeat("very-long-folder-name-", 4)
	newPlainTable(output, 0).WriteRow(report.FolderReport{FolderName: longName, BranchName: "develop"})

	row := strings.TrimSuffix(output.String(), "\n")
	folderCell, branchCell, found := strings.Cut(row, " | ")
	require.True(testInstance, found)
	require.Equal(testInstance, report.DefaultFolderColumnWidth, runewidth.StringWidth(folderCell))
	require.True(testInstance, strings.HasSuffix(folderCell, "…"))
	require.True(testInstance, strings.HasPrefix(longName, strings.TrimSuffix(folderCell, "…")))
	require.Equal(testInstance, "develop", branchCell)
}

func TestTableReporterHonorsCustomWidth(testInstance *testing.T) {
	output := &bytes.Buffer{}
	table := newPlainTable(output, 12)
	table.WriteHeader()
	table.WriteRow(report.FolderReport{FolderName: "tools", BranchName: "main"})

	require.Equal(testInstance,
		"Folder       | Branch\n"+
			"------------ | --------------------\n"+
			"tools        | main\n",
		output.String())
}
