package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/temirov/repobranches/internal/repos/shared"
)

const (
	folderHeaderLabelConstant = "Folder"
	branchHeaderLabelConstant = "Branch"
	columnSeparatorConstant   = " | "
	separatorRuneConstant     = "-"
	truncationTailConstant    = "…"
	rowTemplateConstant       = "%s%s%s\n"
)

// Default column widths in terminal cells.
const (
	DefaultFolderColumnWidth = 30
	DefaultBranchColumnWidth = 20
)

// TableReporter writes the report as a fixed-width two-column table.
type TableReporter struct {
	reporter          shared.Reporter
	palette           *Palette
	folderColumnWidth int
	branchColumnWidth int
}

// NewTableReporter constructs a table reporter. Non-positive widths fall back to the defaults.
func NewTableReporter(reporter shared.Reporter, palette *Palette, folderColumnWidth int, branchColumnWidth int) *TableReporter {
	if folderColumnWidth <= 0 {
		folderColumnWidth = DefaultFolderColumnWidth
	}
	if branchColumnWidth <= 0 {
		branchColumnWidth = DefaultBranchColumnWidth
	}
	return &TableReporter{
		reporter:          reporter,
		palette:           palette,
		folderColumnWidth: folderColumnWidth,
		branchColumnWidth: branchColumnWidth,
	}
}

// WriteHeader prints the column titles followed by the separator line.
func (table *TableReporter) WriteHeader() {
	table.reporter.Printf(rowTemplateConstant, table.fitFolderCell(folderHeaderLabelConstant), columnSeparatorConstant, branchHeaderLabelConstant)
	table.reporter.Printf(
		rowTemplateConstant,
		strings.Repeat(separatorRuneConstant, table.folderColumnWidth),
		columnSeparatorConstant,
		strings.Repeat(separatorRuneConstant, table.branchColumnWidth),
	)
}

// WriteRow prints one folder with its colorized branch text.
func (table *TableReporter) WriteRow(folderReport FolderReport) {
	table.reporter.Printf(
		rowTemplateConstant,
		table.fitFolderCell(folderReport.FolderName),
		columnSeparatorConstant,
		table.palette.Colorize(folderReport.BranchText()),
	)
}

// fitFolderCell pads text to the folder column width, truncating wider names with an ellipsis.
func (table *TableReporter) fitFolderCell(text string) string {
	fitted := runewidth.Truncate(text, table.folderColumnWidth, truncationTailConstant)
	return runewidth.FillRight(fitted, table.folderColumnWidth)
}
