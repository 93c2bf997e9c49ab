package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/barbell"
	"github.com/tsawler/barbell/config"
	"github.com/tsawler/barbell/model"
)

func newParseCmd(flags *globalFlags) *cobra.Command {
	var compPath string

	cmd := &cobra.Command{
		Use:   "parse <file.html>...",
		Short: "Parse local result pages and print one JSON record per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.LoadRules(flags.rulesPath)
			if err != nil {
				return err
			}
			nav, err := parseNavigation(flags.navigation)
			if err != nil {
				return err
			}
			comp, err := config.LoadCompetition(compPath)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, path := range args {
				c := comp
				if c.URL == "" {
					c.URL = path
				}

				records, diag, err := barbell.Open(path).
					Competition(c).
					Rules(rules).
					NavigationExclusion(nav).
					Records()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				slog.Info("page parsed",
					"file", path,
					"tables", diag.TableCount,
					"rows", diag.RowCount,
					"records", diag.RecordCount,
					"reason", diag.Reason,
				)
				if err := writeRecords(enc, records); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&compPath, "competition", "", "YAML file describing the competition")
	return cmd
}

func newBatchCmd(flags *globalFlags) *cobra.Command {
	var (
		workers     int
		diagnostics bool
	)

	cmd := &cobra.Command{
		Use:   "batch <competitions.yaml>",
		Short: "Parse every page of a competition list",
		Long: "Parse every page of a competition list. URLs are local paths, resolved\n" +
			"relative to the list file, or file:// URLs.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.LoadRules(flags.rulesPath)
			if err != nil {
				return err
			}
			nav, err := parseNavigation(flags.navigation)
			if err != nil {
				return err
			}
			comps, err := config.LoadCompetitions(args[0])
			if err != nil {
				return err
			}

			opts := barbell.DefaultOptions()
			opts.Workers = workers
			opts.Rules = rules
			opts.NavigationExclusion = nav
			opts.Logger = slog.Default()

			fetcher := barbell.FileFetcher{Dir: filepath.Dir(args[0])}
			results, err := barbell.ParseCompetitions(cmd.Context(), fetcher, comps, opts)
			if err != nil {
				return err
			}

			return writeBatch(cmd.OutOrStdout(), results, diagnostics)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", barbell.DefaultOptions().Workers, "pages parsed in parallel")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "print one diagnostics line per competition instead of records")
	return cmd
}

func writeRecords(enc *json.Encoder, records []model.AthleteResult) error {
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	return nil
}

func writeBatch(w io.Writer, results []barbell.CompetitionResult, diagnostics bool) error {
	enc := json.NewEncoder(w)
	for _, res := range results {
		if diagnostics {
			if err := enc.Encode(res.Diagnostics); err != nil {
				return fmt.Errorf("writing diagnostics: %w", err)
			}
			continue
		}
		if err := writeRecords(enc, res.Records); err != nil {
			return err
		}
	}
	return nil
}
