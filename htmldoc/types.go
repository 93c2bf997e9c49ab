// Package htmldoc provides HTML document parsing.
package htmldoc

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NavigationExclusionMode controls how navigation, headers, and footers are filtered.
type NavigationExclusionMode int

const (
	// NavigationExclusionNone includes all content without filtering.
	NavigationExclusionNone NavigationExclusionMode = iota

	// NavigationExclusionExplicit skips only explicit semantic HTML5 elements:
	// <nav>, <aside>, and ARIA roles (role="navigation", role="complementary").
	// <header> and <footer> are only skipped when they are direct children of <body>
	// or a single top-level wrapper element.
	NavigationExclusionExplicit

	// NavigationExclusionStandard (default) combines explicit element detection with
	// common class/id pattern matching. This catches menu tables and boilerplate
	// even when sites don't use semantic HTML5 elements.
	NavigationExclusionStandard

	// NavigationExclusionAggressive adds link-density heuristics to standard detection.
	// Containers with very high link-to-text ratios are excluded. Result tables whose
	// every cell is a link may be dropped in this mode.
	NavigationExclusionAggressive
)

// Options configures how a page is read.
type Options struct {
	NavigationExclusion NavigationExclusionMode
}

// DefaultOptions returns the options used by Open and OpenReader.
func DefaultOptions() Options {
	return Options{NavigationExclusion: NavigationExclusionStandard}
}

// Table is a <table> element found on a page, in document order.
type Table struct {
	Index int
	Rows  []Row
	Node  *html.Node
}

// Row is a <tr> element.
type Row struct {
	Cells []Cell
	Node  *html.Node
}

// Cell is a <td> or <th> element. Node is kept so callers can inspect
// inline styles and nested markup.
type Cell struct {
	Text     string
	IsHeader bool
	RowSpan  int
	ColSpan  int
	Node     *html.Node
}

// Texts returns the text of every cell in the row.
func (r Row) Texts() []string {
	texts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		texts[i] = c.Text
	}
	return texts
}

// HasLink reports whether the cell contains an <a href> element.
func (c *Cell) HasLink() bool {
	if c == nil || c.Node == nil {
		return false
	}
	return FindFirst(c.Node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.A && GetAttr(n, "href") != ""
	}) != nil
}

// NewCell builds a detached cell with the given text. It is intended for
// tests and for callers that assemble rows from non-HTML sources.
func NewCell(text string) Cell {
	return Cell{Text: NormalizeText(text), RowSpan: 1, ColSpan: 1}
}
