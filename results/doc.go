// Package results turns weightlifting result tables into athlete records.
//
// A results page holds one or more tables. Inside a table, banner rows
// announce a weight class (or a team, or a division), header rows name the
// columns, and athlete rows follow. None of this is reliably marked up, so
// the package works from text and a little styling:
//
//   - [Classify] tags each row with an ordered list of rules
//   - [DetectFormat] picks the column layout from a header row
//   - [FilterSpacers] drops merged filler cells without disturbing offsets
//   - [ParseLiftCell] reads one attempt cell into a weight and an outcome
//   - [Assemble] maps a filtered athlete row onto a record via a schema table
//
// [Parser] runs these as a state machine over every row of every table.
// Parsing never fails: rows that cannot be read are skipped, and tables that
// yield nothing show up in the returned [model.Diagnostics].
//
// Basic usage:
//
//	r, err := htmldoc.Open("results.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, diag := results.Parse(r.Tables(), comp)
//	if diag.Zero() {
//	    log.Printf("no records: %d tables, %d rows", diag.TableCount, diag.RowCount)
//	}
//
// A Parser holds no per-call state and may be shared between goroutines.
package results
