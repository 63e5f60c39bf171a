package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Tiliavir/timecard/internal/config"
	"github.com/Tiliavir/timecard/internal/parser"
	"github.com/Tiliavir/timecard/internal/report"
	"github.com/Tiliavir/timecard/internal/timecalc"
)

var (
	rootFile     string
	rootFormat   string
	rootConfig   string
	rootNoBanner bool
	rootColor    bool
	rootVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "timecard",
	Short: "Total the hours on a pasted timecard",
	Long: `timecard reads date markers (12/4) and clock ranges (1:15-2:45) from
stdin and prints hours per day and a grand total.

Times are on a 12-hour clock without AM/PM; a range whose end is earlier
than its start is taken to cross noon or midnight.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Parse failures are already reported in the timecard's own format.
		var pe *parser.ParseError
		if !errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&rootFile, "file", "f", "", "Read the timecard from a file instead of stdin")
	rootCmd.Flags().StringVar(&rootFormat, "format", "", "Output format: text, json, csv, yaml (default from config, else text)")
	rootCmd.Flags().StringVar(&rootConfig, "config", "", "Config file (default ~/.timecard/config.json)")
	rootCmd.Flags().BoolVar(&rootNoBanner, "no-banner", false, "Do not print the paste prompt")
	rootCmd.Flags().BoolVar(&rootColor, "color", false, "Style the text report with ANSI colors")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// options is the fully resolved configuration for one run.
type options struct {
	format report.Format
	banner bool
	prompt bool
	color  bool
}

func runRoot(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if rootVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(rootConfig)
	if err != nil {
		return err
	}

	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName = rootFormat
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := options{
		format: format,
		banner: cfg.ShowBanner() && !rootNoBanner,
		prompt: rootFile == "",
		color:  rootColor || (cfg.UseColor() && isTerminal(cmd.OutOrStdout())),
	}

	in := cmd.InOrStdin()
	if rootFile != "" {
		f, err := os.Open(rootFile)
		if err != nil {
			return fmt.Errorf("opening timecard: %w", err)
		}
		defer f.Close()
		in = f
	}
	logger.Debug("reading timecard", "file", rootFile, "format", format)

	return run(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, logger)
}

// run reads the whole timecard, parses it and prints the report. Nothing of
// the report is printed unless every line parses.
func run(in io.Reader, out, errOut io.Writer, opts options, logger *slog.Logger) error {
	text := opts.format == report.FormatText
	printer := report.NewPrinter(out, opts.color)

	if text && opts.banner {
		printer.Banner(opts.prompt)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading timecard: %w", err)
	}

	entries, err := parser.Parser{Logger: logger}.Parse(string(data))
	if err != nil {
		if text {
			printer.Failure(err)
		} else {
			fmt.Fprintln(errOut, err)
		}
		return err
	}
	logger.Debug("parsed timecard", "entries", len(entries))

	rep := timecalc.Accumulate(entries)
	if !text {
		return report.Encode(out, opts.format, rep)
	}
	if len(entries) == 0 {
		printer.Empty()
		return nil
	}
	printer.Report(rep)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
