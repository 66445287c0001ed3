package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotexlint/internal/logging"
	"github.com/yaklabco/gotexlint/pkg/config"
	"github.com/yaklabco/gotexlint/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gotexlint configuration file",
		Long: `Create a new .gotexlint.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable/disable rules,
change severities, and tune rule options such as abbreviation whitelists.

Examples:
  gotexlint init                      Create minimal .gotexlint.yml
  gotexlint init --full               Create full config with every rule and option
  gotexlint init --format json        Create .gotexlint.json instead
  gotexlint init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .gotexlint.yml or .gotexlint.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	if flags.format != "yaml" && flags.format != formatJSON {
		return withExitCode(ExitInvalidUsage,
			fmt.Errorf("invalid format %q: must be yaml or json", flags.format))
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == formatJSON {
			outputPath = ".gotexlint.json"
		} else {
			outputPath = ".gotexlint.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return withExitCode(ExitInvalidUsage,
				fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	written, err := fsutil.WriteAtomicIfChanged(ctx, absPath, content, configFilePermissions)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}
	if !written {
		logger.Info("configuration file already up to date", logging.FieldPath, outputPath)
		return nil
	}

	logger.Info("wrote configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes all rules with their default options")
	}
	if flags.format == formatJSON {
		logger.Info("JSON files are not discovered automatically; pass --config " + outputPath)
	}

	logger.Info("run 'gotexlint rules' to see all available rules")

	return nil
}
