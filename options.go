package barbell

import (
	"log/slog"

	"github.com/tsawler/barbell/htmldoc"
	"github.com/tsawler/barbell/model"
	"github.com/tsawler/barbell/results"
)

// PageOptions holds configuration for parsing a single page.
type PageOptions struct {
	competition model.Competition

	// Rules are shared between clones; they are never modified while parsing.
	rules *results.Rules

	navigation htmldoc.NavigationExclusionMode
}

// defaultOptions returns the default page options.
func defaultOptions() PageOptions {
	return PageOptions{
		rules:      nil, // nil means results.DefaultRules
		navigation: htmldoc.NavigationExclusionStandard,
	}
}

// clone creates a copy of PageOptions.
func (o PageOptions) clone() PageOptions {
	return PageOptions{
		competition: o.competition,
		rules:       o.rules,
		navigation:  o.navigation,
	}
}

// Options configures ParseCompetitions.
type Options struct {
	// Workers bounds the number of pages fetched and parsed at once.
	// Values below 1 mean 1.
	Workers int

	// Rules extends the keyword sets; nil means results.DefaultRules.
	Rules *results.Rules

	// NavigationExclusion selects how menu and footer tables are skipped.
	// The zero value keeps every table; DefaultOptions uses Standard.
	NavigationExclusion htmldoc.NavigationExclusionMode

	// Logger receives one entry per competition; nil means slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Workers:             4,
		NavigationExclusion: htmldoc.NavigationExclusionStandard,
	}
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
