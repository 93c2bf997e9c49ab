package barbell

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/barbell/format"
	"github.com/tsawler/barbell/model"
)

// CompetitionResult is the outcome of parsing one competition page.
type CompetitionResult struct {
	Competition model.Competition
	Records     []model.AthleteResult
	Diagnostics model.Diagnostics
}

// ParseCompetitions fetches and parses every competition, at most
// opts.Workers at a time. Results are returned in input order.
//
// Failures of a single competition (no URL, fetch errors, unreadable HTML)
// are reported in its Diagnostics and never stop the batch. The returned
// error is set only when ctx is cancelled; competitions not started by then
// carry a fetch_failed reason.
func ParseCompetitions(ctx context.Context, f Fetcher, comps []model.Competition, opts Options) ([]CompetitionResult, error) {
	logger := opts.logger()
	runID := uuid.NewString()
	out := make([]CompetitionResult, len(comps))

	logger.Info("batch started", "run_id", runID, "competitions", len(comps), "workers", opts.workers())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, c := range comps {
		i, c := i, c
		g.Go(func() error {
			out[i] = parseCompetition(gctx, f, c, opts)
			out[i].Diagnostics.RunID = runID
			logResult(logger, out[i].Diagnostics)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	if err := ctx.Err(); err != nil {
		logger.Warn("batch cancelled", "run_id", runID, "error", err)
		return out, err
	}

	logger.Info("batch finished", "run_id", runID, "competitions", len(comps))
	return out, nil
}

// parseCompetition fetches and parses a single page.
func parseCompetition(ctx context.Context, f Fetcher, c model.Competition, opts Options) CompetitionResult {
	res := CompetitionResult{Competition: c}
	failed := func(reason model.ReasonCode, err error) CompetitionResult {
		res.Diagnostics = model.Diagnostics{
			Competition: c.Label(),
			Reason:      reason,
			Detail:      err.Error(),
		}
		return res
	}

	if c.URL == "" {
		return failed(model.ReasonNoURL, ErrNoURL)
	}
	if kind := format.Detect(c.URL); !kind.Parseable() {
		return failed(model.ReasonParseFailed, fmt.Errorf("%w: %s", format.ErrUnsupported, kind))
	}
	if err := ctx.Err(); err != nil {
		return failed(model.ReasonFetchFailed, err)
	}

	body, err := f.Fetch(ctx, c.URL)
	if err != nil {
		return failed(model.ReasonFetchFailed, err)
	}
	defer body.Close()

	records, diag, err := FromReader(body).
		Competition(c).
		Rules(opts.Rules).
		NavigationExclusion(opts.NavigationExclusion).
		Records()
	if err != nil {
		return failed(model.ReasonParseFailed, err)
	}

	res.Records = records
	res.Diagnostics = diag
	return res
}

func logResult(logger *slog.Logger, d model.Diagnostics) {
	attrs := []any{
		"run_id", d.RunID,
		"competition", d.Competition,
		"tables", d.TableCount,
		"rows", d.RowCount,
		"records", d.RecordCount,
		"reason", d.Reason,
	}
	if d.Detail != "" {
		attrs = append(attrs, "detail", d.Detail)
	}

	if d.Zero() {
		logger.Warn("competition produced no records", attrs...)
		return
	}
	logger.Info("competition parsed", attrs...)
}
