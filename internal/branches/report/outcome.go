package report

import (
	"errors"
	"fmt"
)

const (
	queryFailedDescriptionConstant     = "branch query failed"
	toolUnavailableDescriptionConstant = "git unavailable"
	branchQueryErrorTemplateConstant   = "%s in %s: %v"

	// QueryFailedSentinel is displayed when git ran but could not name the branch.
	QueryFailedSentinel = "Error/No Commit"
	// ToolUnavailableSentinel is displayed when git could not be started.
	ToolUnavailableSentinel = "Git missing?"
)

// QueryFailureReason classifies why a branch lookup produced no branch name.
type QueryFailureReason int

// Failure reasons. QueryFailureNone marks a resolved branch.
const (
	QueryFailureNone QueryFailureReason = iota
	QueryFailureExitStatus
	QueryFailureToolUnavailable
)

func (reason QueryFailureReason) String() string {
	switch reason {
	case QueryFailureExitStatus:
		return queryFailedDescriptionConstant
	case QueryFailureToolUnavailable:
		return toolUnavailableDescriptionConstant
	default:
		return ""
	}
}

// BranchQueryError reports a branch lookup that did not yield a branch name.
type BranchQueryError struct {
	RepositoryPath string
	Reason         QueryFailureReason
	Cause          error
}

func (failure BranchQueryError) Error() string {
	return fmt.Sprintf(branchQueryErrorTemplateConstant, failure.Reason, failure.RepositoryPath, failure.Cause)
}

func (failure BranchQueryError) Unwrap() error {
	return failure.Cause
}

// FolderReport is one row of the report.
type FolderReport struct {
	FolderName string
	BranchName string
	Failure    QueryFailureReason
}

// NewFolderReport builds a row from a lookup result. Errors that are not a
// BranchQueryError are treated as a failed query.
func NewFolderReport(folderName string, branchName string, lookupError error) FolderReport {
	if lookupError == nil {
		return FolderReport{FolderName: folderName, BranchName: branchName, Failure: QueryFailureNone}
	}

	var queryError BranchQueryError
	if errors.As(lookupError, &queryError) && queryError.Reason != QueryFailureNone {
		return FolderReport{FolderName: folderName, Failure: queryError.Reason}
	}
	return FolderReport{FolderName: folderName, Failure: QueryFailureExitStatus}
}

// BranchText returns the text shown in the branch column.
func (folderReport FolderReport) BranchText() string {
	switch folderReport.Failure {
	case QueryFailureExitStatus:
		return QueryFailedSentinel
	case QueryFailureToolUnavailable:
		return ToolUnavailableSentinel
	default:
		return folderReport.BranchName
	}
}
