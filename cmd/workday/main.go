// Package main implements the workday CLI, a one-shot session-time report
// derived from the local OS event log.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codeGROOVE-dev/workday/pkg/eventlog"
	"github.com/codeGROOVE-dev/workday/pkg/lunch"
	"github.com/codeGROOVE-dev/workday/pkg/report"
	"github.com/codeGROOVE-dev/workday/pkg/timeline"
	"github.com/codeGROOVE-dev/workday/pkg/workday"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "v1.0.0"

var (
	full        bool
	showIndex   bool
	deltaDays   int
	fromFlag    int
	toFlag      int
	provider    string
	inputFile   string
	wait        bool
	verbose     bool
	noColor     bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:          "workday",
	Short:        "Report first login, lunch break, and net work time for one day",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&full, "full", false, "print the full annotated event listing before the summary")
	flags.BoolVar(&showIndex, "index", false, "show the original-index column in the full listing")
	flags.IntVar(&deltaDays, "day", 0, "day offset relative to today (e.g. -1 for yesterday)")
	flags.IntVar(&fromFlag, "from", 0, "lower event index bound (inclusive)")
	flags.IntVar(&toFlag, "to", 0, "upper event index bound (inclusive)")
	flags.StringVar(&provider, "provider", "", "event log provider (or set WORKDAY_PROVIDER)")
	flags.StringVar(&inputFile, "input", "", "replay records from a JSON-lines file instead of the system log")
	flags.BoolVar(&wait, "wait", false, "wait for Enter before exiting")
	flags.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&showVersion, "version", false, "show version")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if showVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "workday %s\n", version)
		return nil
	}

	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if noColor {
		color.NoColor = true
	}

	// Env fallback for the provider, then the platform default.
	if provider == "" {
		provider = os.Getenv("WORKDAY_PROVIDER")
	}
	if provider == "" {
		provider = eventlog.DefaultProvider
	}

	now := time.Now()
	day := now.AddDate(0, 0, deltaDays)
	pastDay := deltaDays != 0

	var src eventlog.Source = eventlog.NewSystemSource(logger)
	if inputFile != "" {
		src = &eventlog.FileSource{Path: inputFile, Logger: logger}
	}

	// Bounds count as given only when the flag was set; 0 is a valid bound
	// for --from but not a usable sentinel.
	var from, to *int
	if cmd.Flags().Changed("from") {
		v := fromFlag
		from = &v
	}
	if cmd.Flags().Changed("to") {
		v := toFlag
		to = &v
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The spinner is scoped to the fetch-and-analyze phase: started here,
	// stopped on every exit path before anything else is printed.
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr), spinner.WithColor("cyan"))
	sp.Suffix = " reading event log..."
	sp.Start()
	defer sp.Stop()

	records, err := src.Records(ctx, provider)
	if err != nil {
		return fmt.Errorf("error retrieving events: %w", err)
	}
	logger.Debug("records fetched", "count", len(records), "provider", provider)

	dayEvents := timeline.Build(records, day, provider)
	logger.Debug("day events selected", "count", len(dayEvents), "day", day.Format("2006-01-02"))

	view, err := timeline.Range{From: from, To: to}.Apply(dayEvents)
	if err != nil {
		return err
	}

	lb := lunch.FindLongestBreak(view)
	summary := workday.Summarize(day, view, lb, now, pastDay)

	sp.Stop()

	printer := report.New(os.Stdout, showIndex)
	if full {
		// The unrestricted listing interleaves the provider's unrecognized
		// messages; a sliced listing shows only the selected session events.
		rows := view
		if from == nil && to == nil {
			rows = timeline.BuildListing(records, day, provider)
		}
		printer.Events(rows)
	}
	printer.Summary(summary)

	if wait {
		fmt.Print("\nPress Enter to exit...")
		if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
			logger.Debug("stdin closed before Enter", "error", err)
		}
	}
	return nil
}
