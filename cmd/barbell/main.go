// Command barbell parses weightlifting result pages into JSON lines.
//
//	barbell parse results.html --competition comp.yaml
//	barbell batch competitions.yaml --workers 8
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsawler/barbell/htmldoc"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logFormat  string
	logLevel   string
	rulesPath  string
	navigation string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "barbell",
		Short:         "Extract athlete results from weightlifting competition pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), flags.logFormat, flags.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logFormat, "log-format", "text", "log output format: text or json")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&flags.rulesPath, "config", "", "YAML file extending the keyword rules")
	pf.StringVar(&flags.navigation, "navigation", "standard", "navigation exclusion: none, explicit, standard or aggressive")

	root.AddCommand(newParseCmd(flags), newBatchCmd(flags))
	return root
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}

func parseNavigation(s string) (htmldoc.NavigationExclusionMode, error) {
	switch strings.ToLower(s) {
	case "none":
		return htmldoc.NavigationExclusionNone, nil
	case "explicit":
		return htmldoc.NavigationExclusionExplicit, nil
	case "standard", "":
		return htmldoc.NavigationExclusionStandard, nil
	case "aggressive":
		return htmldoc.NavigationExclusionAggressive, nil
	default:
		return 0, fmt.Errorf("invalid --navigation %q", s)
	}
}
