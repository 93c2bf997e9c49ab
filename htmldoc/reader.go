// Package htmldoc provides HTML document parsing.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// Reader provides access to the tables of an HTML page.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	tables   []Table
	opts     Options
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader using DefaultOptions.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithOptions(r, DefaultOptions())
}

// OpenReaderWithOptions parses HTML from an io.Reader.
func OpenReaderWithOptions(r io.Reader, opts Options) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
		tables:   make([]Table, 0),
		opts:     opts,
	}

	// Extract title and metadata from head
	reader.extractHead(doc)

	// Collect result tables from body
	reader.extractBody(doc)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the contents of the <title> element.
func (r *Reader) Title() string {
	return r.title
}

// Meta returns the content of a <meta name=...> or <meta property=...> tag.
func (r *Reader) Meta(name string) string {
	return r.metadata[name]
}

// Tables returns every table found outside navigation chrome, in document order.
func (r *Reader) Tables() []Table {
	return r.tables
}

// RowCount returns the total number of rows across all tables.
func (r *Reader) RowCount() int {
	n := 0
	for _, t := range r.tables {
		n += len(t.Rows)
	}
	return n
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Head {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Title:
				r.title = GetTextContent(c)
			case atom.Meta:
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// extractBody collects tables from the body element.
func (r *Reader) extractBody(n *html.Node) {
	body := findElement(n, atom.Body)
	if body == nil {
		// No body tag, try to extract from root
		body = n
	}

	checker := newExclusionChecker(r.opts.NavigationExclusion, n)
	r.traverseNode(body, checker)
}

// traverseNode recursively looks for tables.
func (r *Reader) traverseNode(n *html.Node, checker *exclusionChecker) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.DataAtom) || checker.shouldExclude(n) {
			return
		}

		if n.DataAtom == atom.Table {
			// A table that wraps other tables is page layout; the
			// results live in the inner ones.
			if containsNestedTable(n) {
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					r.traverseNode(c, checker)
				}
				return
			}

			table := r.parseTable(n)
			if len(table.Rows) > 0 {
				table.Index = len(r.tables)
				r.tables = append(r.tables, table)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.traverseNode(c, checker)
	}
}

// parseTable extracts a table from an HTML table element.
func (r *Reader) parseTable(tableNode *html.Node) Table {
	table := Table{
		Rows: make([]Row, 0),
		Node: tableNode,
	}

	// Find thead, tbody, tfoot, or direct tr children
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Thead:
			r.parseTableRows(c, &table, true)
		case atom.Tbody, atom.Tfoot:
			r.parseTableRows(c, &table, false)
		case atom.Tr:
			table.Rows = append(table.Rows, r.parseTableRow(c, false))
		}
	}

	return table
}

// parseTableRows parses rows within thead or tbody.
func (r *Reader) parseTableRows(section *html.Node, table *Table, isHeader bool) {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Tr {
			table.Rows = append(table.Rows, r.parseTableRow(c, isHeader))
		}
	}
}

// parseTableRow parses a single table row. Rows without cells are kept so
// row counts in diagnostics match the markup.
func (r *Reader) parseTableRow(tr *html.Node, isHeader bool) Row {
	row := Row{
		Cells: make([]Cell, 0),
		Node:  tr,
	}

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		cell := Cell{
			Text:     GetTextContent(c),
			IsHeader: isHeader || c.DataAtom == atom.Th,
			RowSpan:  spanAttr(c, "rowspan"),
			ColSpan:  spanAttr(c, "colspan"),
			Node:     c,
		}
		row.Cells = append(row.Cells, cell)
	}

	return row
}

// spanAttr parses a rowspan/colspan attribute, defaulting to 1.
func spanAttr(n *html.Node, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(GetAttr(n, key)))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// containsNestedTable reports whether a table element has another table below it.
func containsNestedTable(tableNode *html.Node) bool {
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if findElement(c, atom.Table) != nil {
			return true
		}
	}
	return false
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Svg, atom.Math, atom.Iframe, atom.Object, atom.Embed:
		return true
	}
	return false
}

// findElement finds the first element with the given tag.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	return FindFirst(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && c.DataAtom == a
	})
}

// FindFirst returns the first node in n's subtree (n included, depth first)
// for which match returns true.
func FindFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := FindFirst(c, match); result != nil {
			return result
		}
	}
	return nil
}

// GetTextContent extracts the normalized text of a node and its descendants.
func GetTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return NormalizeText(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		// Skip script/style content
		if shouldSkipElement(n.DataAtom) {
			return
		}
		if n.DataAtom == atom.Br {
			result.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
	// Add space after certain block elements
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.P, atom.Div, atom.Li:
			result.WriteString(" ")
		}
	}
}

// NormalizeText applies NFKC (folding non-breaking and full-width spaces and
// digits to ASCII) and collapses runs of whitespace.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

// GetAttr returns the value of an attribute on a node, or empty string if not found.
func GetAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
