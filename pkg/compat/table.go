package compat

import (
	"fmt"
	"io"
	"strings"
)

// tableHeader is the column label row and the alignment row.
var tableHeader = []string{
	"| Plugin | Type | Compatible Core | Version | Active | Status |",
	"|--------|:----:|:--------:|:----------------:|:------:|:------:|",
}

// Markdown formats r as one table row.
func (r Row) Markdown() string {
	return fmt.Sprintf("| [%s](%s) | %s | %s | %s | %s | %s |",
		r.PluginName, r.RepoURL, r.Category, r.CoreVersion, r.PluginVersion,
		r.ActivityBadge, r.BuildBadge)
}

// Table accumulates rows in insertion order. The zero value is an empty
// table ready to use.
type Table struct {
	rows []Row
}

// Append adds r as the last row.
func (t *Table) Append(r Row) { t.rows = append(t.rows, r) }

// Rows returns the rows in insertion order.
func (t *Table) Rows() []Row { return t.rows }

// Len returns the number of rows, excluding the header.
func (t *Table) Len() int { return len(t.rows) }

// Lines returns the header followed by one formatted line per row.
func (t *Table) Lines() []string {
	lines := make([]string, 0, len(tableHeader)+len(t.rows))
	lines = append(lines, tableHeader...)
	for _, r := range t.rows {
		lines = append(lines, r.Markdown())
	}
	return lines
}

// String returns the Markdown document without a trailing newline.
func (t *Table) String() string {
	return strings.Join(t.Lines(), "\n")
}

// WriteTo writes the Markdown document followed by a single newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String()+"\n")
	return int64(n), err
}
