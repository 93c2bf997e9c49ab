// Package model provides the record types produced by result-table parsing.
//
// These are the user-facing data structures of barbell. All parsing
// operations ultimately produce these types, making them the primary API for
// consuming extracted results.
//
// # Competitions
//
// A [Competition] is read-only context supplied by whoever discovered the
// results page. It is copied into every record so exported rows are
// self-describing.
//
// # Results
//
// An [AthleteResult] holds one athlete's line of a result table:
//
//   - the active weight class and standing (rank or "DNF")
//   - identity columns: name, nation, club, birth year, bodyweight, group
//   - three snatch and three clean-and-jerk [LiftAttempt] values
//   - total and Sinclair score
//
// Each [LiftAttempt] carries the declared weight as text and a tri-state
// [Outcome]: successful, unsuccessful or no attempt.
//
// # Format variants
//
// A [FormatVariant] names the column layout in effect for a run of athlete
// rows. The concrete column offsets live in the results package.
//
// # Diagnostics
//
// [Diagnostics] summarise one parse (table, row and record counts) together
// with a [ReasonCode] so zero-result competitions can be reported without
// treating them as errors.
package model
