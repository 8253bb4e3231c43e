package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowStatus controls how a table row is colored
type RowStatus int

const (
	RowPlain RowStatus = iota
	RowFound
	RowMissing
	RowDegraded
)

// Table represents a simple table for displaying data
type Table struct {
	title      string
	headers    []string
	rows       []TableRow
	widths     []int
	hideHeader bool
	minWidth   int
}

// TableRow represents a single row in the table
type TableRow struct {
	cells  []string
	status RowStatus
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// SetTitle sets a title that spans all columns at the top of the table
func (t *Table) SetTitle(title string) {
	t.title = title
}

// HideHeader hides the column header row
func (t *Table) HideHeader() {
	t.hideHeader = true
}

// SetMinWidth sets a minimum width for the table content
func (t *Table) SetMinWidth(width int) {
	t.minWidth = width
}

// AddRow adds an uncolored row to the table
func (t *Table) AddRow(cells ...string) {
	t.AddStatusRow(RowPlain, cells...)
}

// AddStatusRow adds a row colored according to status. Extra cells are
// dropped and missing cells are left blank.
func (t *Table) AddStatusRow(status RowStatus, cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i >= len(cells) {
			continue
		}
		row[i] = cells[i]
		// lipgloss.Width ignores ANSI sequences
		if w := lipgloss.Width(cells[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, TableRow{cells: row, status: status})
}

func (t *Table) cellStyle(i int, status RowStatus) lipgloss.Style {
	style := StyleTableCell.Width(t.widths[i] + 2)
	switch status {
	case RowFound:
		style = style.Foreground(colorSuccess)
	case RowMissing:
		style = style.Foreground(colorError)
	case RowDegraded:
		style = style.Foreground(colorWarning)
	}
	return style
}

// Render returns the rendered table as a string
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	initStyles()

	totalWidth := 0
	for _, w := range t.widths {
		totalWidth += w + 2
	}

	// Pad the last column up to the minimum width
	if t.minWidth > 0 && totalWidth < t.minWidth {
		t.widths[len(t.widths)-1] += t.minWidth - totalWidth
		totalWidth = t.minWidth
	}

	var lines []string

	if t.title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Width(totalWidth).
			Align(lipgloss.Center)
		lines = append(lines, titleStyle.Render(t.title))
		lines = append(lines, StyleMuted.Render(strings.Repeat("─", totalWidth)))
	}

	if !t.hideHeader {
		var header, sep strings.Builder
		for i, h := range t.headers {
			header.WriteString(StyleTableHeader.Width(t.widths[i] + 2).Render(h))
			sep.WriteString(StyleMuted.Render(strings.Repeat("─", t.widths[i]+2)))
		}
		lines = append(lines, header.String(), sep.String())
	}

	for _, row := range t.rows {
		var line strings.Builder
		for i, cell := range row.cells {
			line.WriteString(t.cellStyle(i, row.status).Render(cell))
		}
		lines = append(lines, line.String())
	}

	return StyleTableBorder.Render(strings.Join(lines, "\n"))
}
