// Package barbell extracts athlete results from weightlifting competition
// pages.
//
// Basic usage:
//
//	records, diag, err := barbell.Open("results.html").Records()
//	if err != nil {
//	    // handle error
//	}
//	if diag.Zero() {
//	    log.Println("nothing parsed:", diag.Reason)
//	}
//
// With options:
//
//	records, _, err := barbell.Open("results.html").
//	    Competition(comp).
//	    Rules(rules).
//	    NavigationExclusion(htmldoc.NavigationExclusionAggressive).
//	    Records()
//
// Many pages are parsed in parallel with ParseCompetitions. The lower-level
// htmldoc and results packages are also available.
package barbell

import (
	"io"

	"github.com/tsawler/barbell/model"
)

// Open returns a Page reading the HTML file at filename. Nothing is read
// until a terminal operation such as Records is called.
//
// Example:
//
//	records, diag, err := barbell.Open("results.html").Records()
func Open(filename string) *Page {
	return &Page{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Page reading HTML from r. The caller keeps ownership
// of r.
//
// Example:
//
//	resp, err := http.Get(url)
//	if err != nil {
//	    // handle error
//	}
//	defer resp.Body.Close()
//	records, diag, err := barbell.FromReader(resp.Body).Competition(comp).Records()
func FromReader(r io.Reader) *Page {
	return &Page{
		src:     r,
		options: defaultOptions(),
	}
}

// ParsePage parses one page with the default rules.
func ParsePage(r io.Reader, comp model.Competition) ([]model.AthleteResult, model.Diagnostics, error) {
	return FromReader(r).Competition(comp).Records()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	tables := barbell.Must(barbell.Open("results.html").Tables())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords wraps a call to Records and panics if the error is non-nil. It
// discards the diagnostics.
//
// Example:
//
//	records := barbell.MustRecords(barbell.Open("results.html").Records())
func MustRecords(records []model.AthleteResult, _ model.Diagnostics, err error) []model.AthleteResult {
	if err != nil {
		panic(err)
	}
	return records
}
