package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslim/internal/configloader"
	"github.com/yaklabco/mdslim/internal/logging"
	"github.com/yaklabco/mdslim/internal/ui/pretty"
	"github.com/yaklabco/mdslim/pkg/analysis"
	"github.com/yaklabco/mdslim/pkg/config"
	"github.com/yaklabco/mdslim/pkg/runner"
	"github.com/yaklabco/mdslim/pkg/slim"
)

// ErrFilesFailed is returned when some files could not be processed.
// It carries no message of its own; per-file errors are reported before
// the command returns.
var ErrFilesFailed = errors.New("some files failed")

type slimFlags struct {
	jobs           int
	ignore         []string
	extensions     []string
	preserveCode   bool
	followSymlinks bool
	format         string
	listFiles      bool
}

func newSlimCommand() *cobra.Command {
	flags := &slimFlags{}

	cmd := &cobra.Command{
		Use:   "slim [source] [dest]",
		Short: "Slim a tree of Markdown files",
		Long:  slimLongDescription,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlim(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0,
		"number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil,
		"glob patterns for files or directories to skip")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"file extensions treated as Markdown (default .md, .markdown)")
	cmd.Flags().BoolVar(&flags.preserveCode, "preserve-code", true,
		"keep fenced code blocks verbatim")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false,
		"traverse directory symlinks")
	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: text, summary, or json")
	cmd.Flags().BoolVar(&flags.listFiles, "list", false,
		"print a per-file reduction table")

	return cmd
}

const slimLongDescription = `Slim every Markdown file under the source root, writing each
size-reduced copy beneath the destination root at the same relative
path. Intermediate directories are created as needed.

A file that fails to read or write is reported and skipped; the rest
of the batch continues.

Examples:
  mdslim slim                      # Slim the current directory into ./slim
  mdslim slim docs docs-slim       # Explicit source and destination roots
  mdslim slim --ignore 'vendor/**' # Skip vendored docs
  mdslim slim --format json        # Emit a machine-readable report
  mdslim slim --preserve-code=false  # Drop code blocks too`

func runSlim(cmd *cobra.Command, args []string, flags *slimFlags) error {
	logger := logging.Default()

	cfg, err := buildConfig(cmd, args, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	logger.Debug("configuration resolved",
		logging.FieldSource, cfg.Source,
		logging.FieldDest, cfg.Dest,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldPreserveCode, cfg.PreserveCode,
		logging.FieldIgnore, cfg.Ignore,
	)

	slimRunner := runner.New(slim.NewPipeline(cfg))
	opts := runner.Options{Config: cfg, WorkingDir: workDir}

	result, err := slimRunner.Run(ctx, opts)
	if err != nil {
		return errors.Join(errors.New("slim run failed"), err)
	}

	logResult(logger, result)

	if err := report(cmd, cfg, flags, result, workDir); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFilesFailed
	}
	return nil
}

// buildConfig resolves the configuration: defaults, then environment,
// then CLI flags, then positional arguments.
func buildConfig(cmd *cobra.Command, args []string, flags *slimFlags) (*config.Config, error) {
	cfg := config.New()

	if err := configloader.LoadFromEnv(cfg); err != nil {
		return nil, errors.Join(errors.New("failed to load configuration from environment"), err)
	}

	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("preserve-code") {
		cfg.PreserveCode = flags.preserveCode
	}
	if cmd.Flags().Changed("follow-symlinks") {
		cfg.FollowSymlinks = flags.followSymlinks
	}
	if cmd.Flags().Changed("format") {
		format := config.OutputFormat(flags.format)
		if !format.IsValid() {
			return nil, fmt.Errorf("invalid output format: %q", flags.format)
		}
		cfg.Format = format
	}

	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if len(args) > 1 {
		cfg.Dest = args[1]
	}

	return cfg, nil
}

// logResult reports per-file failures and debug detail through the
// structured logger, independent of the chosen output format.
func logResult(logger *log.Logger, result *runner.Result) {
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Error("file failed",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
			continue
		}
		if outcome.Result == nil {
			continue
		}
		logger.Debug("file slimmed",
			logging.FieldPath, outcome.Path,
			logging.FieldTitle, outcome.Result.Title,
			logging.FieldBytesIn, outcome.Result.BytesIn,
			logging.FieldBytesOut, outcome.Result.BytesOut,
			logging.FieldCodeBlocks, outcome.Result.CodeBlocks,
			logging.FieldLanguages, outcome.Result.Languages,
		)
	}
}

// report renders the run result in the configured output format.
func report(cmd *cobra.Command, cfg *config.Config, flags *slimFlags, result *runner.Result, workDir string) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		return analysis.Build(result, cfg.Source, cfg.Dest, workDir).WriteJSON(out)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	if flags.listFiles && cfg.Format != config.FormatSummary {
		width := 0
		if f, ok := out.(*os.File); ok {
			width = pretty.TermWidth(f)
		}
		formatter := pretty.NewTableFormatter(styles, width)
		fmt.Fprint(out, formatter.FormatTable(result, workDir))
	}

	if cfg.Format == config.FormatSummary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
		return nil
	}
	fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	return nil
}
