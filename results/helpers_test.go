package results

import (
	"strings"
	"testing"

	"github.com/tsawler/barbell/htmldoc"
)

// rowOf builds a detached row from plain texts.
func rowOf(texts ...string) htmldoc.Row {
	row := htmldoc.Row{Cells: make([]htmldoc.Cell, len(texts))}
	for i, t := range texts {
		row.Cells[i] = htmldoc.NewCell(t)
	}
	return row
}

// spacer returns a merged filler cell.
func spacer() htmldoc.Cell {
	return htmldoc.Cell{Text: " ", RowSpan: 2, ColSpan: 1}
}

// tablesFromHTML parses a page without navigation filtering.
func tablesFromHTML(t *testing.T, src string) []htmldoc.Table {
	t.Helper()
	r, err := htmldoc.OpenReaderWithOptions(strings.NewReader(src), htmldoc.Options{
		NavigationExclusion: htmldoc.NavigationExclusionNone,
	})
	if err != nil {
		t.Fatalf("OpenReaderWithOptions() failed: %v", err)
	}
	defer r.Close()
	return r.Tables()
}

// rowFromHTML parses the inner HTML of a single <tr>.
func rowFromHTML(t *testing.T, inner string) htmldoc.Row {
	t.Helper()
	tables := tablesFromHTML(t, "<html><body><table><tr>"+inner+"</tr></table></body></html>")
	if len(tables) != 1 || len(tables[0].Rows) != 1 {
		t.Fatalf("expected one table with one row, got %d tables", len(tables))
	}
	return tables[0].Rows[0]
}

// cellFromHTML parses the outer HTML of a single <td>.
func cellFromHTML(t *testing.T, td string) *htmldoc.Cell {
	t.Helper()
	row := rowFromHTML(t, td)
	if len(row.Cells) != 1 {
		t.Fatalf("expected one cell, got %d", len(row.Cells))
	}
	return &row.Cells[0]
}
