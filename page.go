package barbell

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/barbell/format"
	"github.com/tsawler/barbell/htmldoc"
	"github.com/tsawler/barbell/model"
	"github.com/tsawler/barbell/results"
)

// Page provides a fluent interface for parsing one results page.
// Each configuration method returns a new Page instance, making it
// safe for concurrent use and allowing method chaining.
type Page struct {
	// Source: a file name or a caller-owned reader
	filename string
	src      io.Reader

	options PageOptions
}

// clone creates a shallow copy of the Page with a copy of its options.
func (p *Page) clone() *Page {
	return &Page{
		filename: p.filename,
		src:      p.src,
		options:  p.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Page instance)
// ============================================================================

// Competition sets the context copied into every record.
//
// Example:
//
//	records, _, err := barbell.Open("r.html").Competition(model.Competition{Name: "Cup"}).Records()
func (p *Page) Competition(c model.Competition) *Page {
	newPage := p.clone()
	newPage.options.competition = c
	return newPage
}

// Rules replaces the keyword rules. Nil restores the defaults.
func (p *Page) Rules(r *results.Rules) *Page {
	newPage := p.clone()
	newPage.options.rules = r
	return newPage
}

// NavigationExclusion selects how navigation containers are skipped when
// collecting tables.
func (p *Page) NavigationExclusion(mode htmldoc.NavigationExclusionMode) *Page {
	newPage := p.clone()
	newPage.options.navigation = mode
	return newPage
}

// IncludeNavigation keeps tables inside navigation, header and footer
// containers. Equivalent to NavigationExclusion(htmldoc.NavigationExclusionNone).
func (p *Page) IncludeNavigation() *Page {
	return p.NavigationExclusion(htmldoc.NavigationExclusionNone)
}

// ============================================================================
// Terminal Operations
// ============================================================================

// read parses the source into an htmldoc.Reader.
func (p *Page) read() (*htmldoc.Reader, error) {
	if p.src != nil {
		return p.parse(p.src)
	}
	if p.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	f, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open HTML: %w", err)
	}
	defer f.Close()

	return p.parse(f)
}

// parse rejects PDFs and archives before handing the content to htmldoc.
func (p *Page) parse(src io.Reader) (*htmldoc.Reader, error) {
	kind, r, err := format.Peek(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}
	if !kind.Parseable() {
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupported, kind)
	}
	return htmldoc.OpenReaderWithOptions(r, htmldoc.Options{NavigationExclusion: p.options.navigation})
}

// Tables returns the tables found on the page.
func (p *Page) Tables() ([]htmldoc.Table, error) {
	r, err := p.read()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Tables(), nil
}

// Records parses the page into athlete records.
//
// The error is only set when the page cannot be read; a page that yields no
// records is reported through the diagnostics reason instead.
//
// Example:
//
//	records, diag, err := barbell.Open("r.html").Records()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(diag.Reason, len(records))
func (p *Page) Records() ([]model.AthleteResult, model.Diagnostics, error) {
	tables, err := p.Tables()
	if err != nil {
		return nil, model.Diagnostics{
			Competition: p.options.competition.Label(),
			Reason:      model.ReasonParseFailed,
			Detail:      err.Error(),
		}, err
	}

	records, diag := results.NewParser(p.options.rules).ParseTables(tables, p.options.competition)
	return records, diag, nil
}
