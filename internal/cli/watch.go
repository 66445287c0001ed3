package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gotexlint/internal/logging"
	"github.com/yaklabco/gotexlint/internal/ui/pretty"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	"github.com/yaklabco/gotexlint/pkg/monitor"
	"github.com/yaklabco/gotexlint/pkg/reporter"
	"github.com/yaklabco/gotexlint/pkg/runner"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

type watchFlags struct {
	debounce   time.Duration
	ruleFormat string
	noContext  bool
	clear      bool
	locate     bool
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-lint a LaTeX file whenever it changes",
		Long: `Watch a LaTeX file and re-lint it each time it is saved.

The file is checked once on start. Afterwards, file-system events are
debounced (300ms by default, see watch.debounce in the configuration) and
the file is only re-checked when its text actually changed. A file that
cannot be read is reported and the watch continues.

Examples:
  gotexlint watch paper.tex
  gotexlint watch --debounce 1s paper.tex
  gotexlint watch --locate paper.tex     # Print path:line of the first finding`,
		Args: func(cmd *cobra.Command, args []string) error {
			return withExitCode(ExitInvalidUsage, cobra.ExactArgs(1)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], flags)
		},
	}

	cmd.Flags().DurationVar(&flags.debounce, "debounce", 0,
		"quiet period after the last change before re-linting (default 300ms)")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, label, or combined")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.clear, "clear", false,
		"clear the screen before each report (default: when stdout is a terminal)")
	cmd.Flags().BoolVar(&flags.locate, "locate", false, "print the path:line of the first finding after each report")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, flags *watchFlags) error {
	logger := logging.NewInteractive()
	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		logger.SetLevel(log.DebugLevel)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg := &config.Config{Watch: config.WatchConfig{Debounce: flags.debounce}}
	if cmd.Flags().Changed("rule-format") {
		cliCfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}

	cfg, err := loadConfig(ctx, cmd, workDir, cliCfg, logger)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	debounce := cfg.EffectiveDebounce()
	trigger, err := monitor.NewFileTrigger(absPath, debounce)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("watch %s: %w", path, err))
	}
	defer func() {
		if err := trigger.Close(); err != nil {
			logger.Debug("close watcher", logging.FieldError, err)
		}
	}()
	go logTriggerErrors(ctx, trigger, logger)

	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.FormatText,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	clearBeforeReport := flags.clear
	if !cmd.Flags().Changed("clear") {
		clearBeforeReport = isTerminal(out)
	}

	var sink monitor.NavigationSink
	if flags.locate {
		sink = monitor.NewWriterSink(path, out)
	}

	engine := lint.NewEngine(lint.DefaultRegistry, cfg)
	mon := monitor.New(monitor.NewFileSource(absPath), trigger, engine)

	mon.OnReport = func(ctx context.Context, report *lint.Report) {
		if clearBeforeReport {
			_, _ = io.WriteString(out, clearScreen)
		}
		_, _ = fmt.Fprintln(out, styles.FormatBanner(path, time.Now()))

		result := runner.NewResult(runner.FileOutcome{
			Path:   absPath,
			Report: report,
			Source: mon.Text(),
		})
		if _, err := rep.Report(ctx, result); err != nil {
			logger.Error("report failed", logging.FieldError, err)
			return
		}

		logger.Info("checked",
			logging.FieldPath, path,
			logging.FieldFindingsTotal, report.FindingCount(),
		)

		if sink == nil {
			return
		}
		if line, ok := report.FirstLine(); ok {
			if err := sink.Navigate(ctx, line); err != nil {
				logger.Warn("navigate failed", logging.FieldError, err)
			}
		}
	}

	mon.OnError = func(_ context.Context, err error) {
		logger.Warn("cannot read document", logging.FieldPath, path, logging.FieldError, err)
	}

	logger.Info("watching",
		logging.FieldPath, path,
		logging.FieldDebounce, debounce,
		logging.FieldRules, len(engine.Rules()),
	)

	if err := mon.Run(ctx); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	logger.Info("stopped watching", logging.FieldPath, path)
	return nil
}

// logTriggerErrors reports watcher failures until ctx ends.
func logTriggerErrors(ctx context.Context, trigger *monitor.FileTrigger, logger *log.Logger) {
	errs := trigger.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watcher error", logging.FieldError, err)
		}
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
