package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gotexlint/internal/configloader"
	"github.com/yaklabco/gotexlint/internal/logging"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/lint"
	_ "github.com/yaklabco/gotexlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gotexlint/pkg/monitor"
	"github.com/yaklabco/gotexlint/pkg/reporter"
	"github.com/yaklabco/gotexlint/pkg/runner"
)

type lintFlags struct {
	format     string
	ruleFormat string
	jobs       int
	ignore     []string
	enable     []string
	disable    []string
	strict     bool
	noContext  bool
	compact    bool
	open       bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint LaTeX files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, info)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint LaTeX files for stylistic issues.

By default, lints all .tex and .ltx files in the current directory
and subdirectories. Specify paths to lint specific files or directories.
A file named explicitly is linted when its content looks like LaTeX,
whatever its extension.

Examples:
  gotexlint lint                        # Lint current directory
  gotexlint lint chapters/              # Lint a directory
  gotexlint lint paper.tex              # Lint a single file
  gotexlint lint --format json          # Output as JSON for CI
  gotexlint lint --disable floats       # Skip every float rule
  gotexlint lint --strict               # Fail on any finding
  gotexlint lint --open paper.tex       # Open the first finding in $EDITOR`

// cliConfig builds the configuration layer set by explicit flags.
func (f *lintFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		Ignore:       f.ignore,
		EnableRules:  f.enable,
		DisableRules: f.disable,
		Jobs:         f.jobs,
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if cmd.Flags().Changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
	}
	return cfg
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags, info BuildInfo) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	finalCfg, err := loadConfig(ctx, cmd, workDir, flags.cliConfig(cmd), logger)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	engine := lint.NewEngine(lint.DefaultRegistry, finalCfg)

	runOpts := runner.OptionsFromConfig(finalCfg, args)
	runOpts.WorkingDir = workDir
	runOpts.OnSkip = func(path, language string) {
		logger.Warn("skipping file that is not LaTeX",
			logging.FieldPath, path,
			logging.FieldLanguage, language,
		)
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldRules, len(engine.Rules()),
	)

	result, err := runner.New(engine).Run(ctx, runOpts)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return withExitCode(ExitIOError, err)
		}
		return errors.Join(errors.New("lint run failed"), err)
	}

	logRuleFailures(logger, result)

	logger.Debug("lint run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
		logging.FieldRuleFailures, result.Stats.RuleFailures,
	)

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if flags.open {
		if err := openFirstFinding(ctx, cmd, result, logger); err != nil {
			return err
		}
	}

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitLintErrors:
		return ErrLintIssuesFound
	case ExitIOError:
		return ErrFilesUnreadable
	default:
		return nil
	}
}

// loadConfig resolves the configuration for a command and logs its warnings.
func loadConfig(
	ctx context.Context,
	cmd *cobra.Command,
	workDir string,
	cliCfg *config.Config,
	logger *log.Logger,
) (*config.Config, error) {
	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Registry:     lint.DefaultRegistry,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError,
			errors.Join(errors.New("failed to load configuration"), err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// logRuleFailures reports rules the engine had to drop for a file.
func logRuleFailures(logger *log.Logger, result *runner.Result) {
	for _, file := range result.Files {
		if file.Report == nil {
			continue
		}
		ids := make([]string, 0, len(file.Report.RuleErrors))
		for id := range file.Report.RuleErrors {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			logger.Debug("rule failed",
				logging.FieldPath, file.Path,
				logging.FieldRule, id,
				logging.FieldError, file.Report.RuleErrors[id],
			)
		}
	}
}

// openFirstFinding opens the editor on the first flagged line of the first
// file with findings.
func openFirstFinding(ctx context.Context, cmd *cobra.Command, result *runner.Result, logger *log.Logger) error {
	for _, file := range result.Files {
		line, ok := file.Report.FirstLine()
		if !ok {
			continue
		}

		sink := monitor.NewEditorSink(file.Path)
		sink.Stdin = cmd.InOrStdin()
		sink.Stdout = cmd.OutOrStdout()
		sink.Stderr = cmd.ErrOrStderr()

		logger.Debug("opening editor",
			logging.FieldEditor, sink.Editor,
			logging.FieldPath, file.Path,
			logging.FieldLine, line,
		)

		if err := sink.Navigate(ctx, line); err != nil {
			if errors.Is(err, monitor.ErrNoEditor) {
				logger.Warn("cannot open finding: set $VISUAL or $EDITOR")
				return nil
			}
			return fmt.Errorf("open editor: %w", err)
		}
		return nil
	}
	return nil
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, html")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs, names, labels or tags to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs, names, labels or tags to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on findings of any severity")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, label, or combined")
	cmd.Flags().BoolVar(&flags.open, "open", false, "open the first finding in $VISUAL or $EDITOR")
}
