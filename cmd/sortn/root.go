package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/sortn/internal/config"
	"github.com/nao1215/sortn/internal/log"
	"github.com/nao1215/sortn/internal/model"
	"github.com/nao1215/sortn/internal/pipeline"
	"github.com/nao1215/sortn/internal/textio"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command, which sorts its input.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortn [file...]",
		Short: "Sort lines naturally (e.g. '2' before '10')",
		Long: `sortn sorts lines naturally: runs of digits are compared by their numeric
value, so "file2" sorts before "file10". It reads standard input, or the
named files ("-" is standard input), and writes the result to standard output.

Sorting is case-sensitive by default, so uppercase letters sort before
lowercase ones. Whitespace is compared like any other character.

Flag defaults can be set in a YAML file: .sortn in the current directory,
$XDG_CONFIG_HOME/sortn/config.yaml, or .sortn in the home directory.
Run "sortn init" to create one.

Examples:
  # Sort a listing naturally
  ls | sortn

  # Case-insensitive, unique, newest version first
  sortn -i -u -r versions.txt

  # Shuffle non-blank lines
  sortn -n -b playlist.txt`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSortCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Ordering flags
	cmd.Flags().BoolP("reverse", "r", false, "Sort in reverse order")
	cmd.Flags().BoolP("ignore-case", "i", false,
		"Case-insensitive sorting and uniqueness")
	cmd.Flags().BoolP("randomize", "n", false,
		"Randomize output order (ignores --reverse)")
	cmd.Flags().BoolP("skip-blank-lines", "b", false,
		"Remove empty or all-whitespace lines before processing")
	cmd.Flags().BoolP("unique", "u", false,
		"Make results unique (first occurrence in output order kept)")

	// I/O flags
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sortn in current or home directory)")
	cmd.Flags().StringP("output", "o", "",
		"Write result to the specified file instead of standard output")
	cmd.Flags().Int("jobs", config.DefaultReadConcurrency,
		"Number of input files read concurrently")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	// A closed stdout must surface as EPIPE instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// runSortCmd executes the root command.
func runSortCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	return runSort(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// orderingFlags maps each ordering flag to the Config field it sets.
func orderingFlags(cfg *config.Config) []struct {
	name string
	dst  *bool
} {
	return []struct {
		name string
		dst  *bool
	}{
		{name: "reverse", dst: &cfg.Reverse},
		{name: "ignore-case", dst: &cfg.IgnoreCase},
		{name: "randomize", dst: &cfg.Randomize},
		{name: "skip-blank-lines", dst: &cfg.SkipBlankLines},
		{name: "unique", dst: &cfg.Unique},
	}
}

// buildConfig creates a Config from the configuration file and the cobra
// command flags. Flags given on the command line override the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; the default locations
	// are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	for _, f := range orderingFlags(cfg) {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		*f.dst, err = cmd.Flags().GetBool(f.name)
		if err != nil {
			return nil, err
		}
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ReadConcurrency, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Inputs = args

	return cfg, nil
}

// runSort reads every input, runs the pipeline and writes the result.
func runSort(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	names := cfg.Inputs
	if len(names) == 0 {
		names = []string{textio.StdinName}
	}

	loader := textio.NewLoader(
		textio.WithStdin(stdin),
		textio.WithConcurrency(cfg.ReadConcurrency),
		textio.WithLoaderLogger(logger),
	)

	lines, err := loader.Load(ctx, names)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	batch := model.NewBatch(lines)
	p := pipeline.DefaultPipeline(cfg, []pipeline.Option{pipeline.WithLogger(logger)})
	p.Execute(batch)

	logger.Info("lines processed",
		"input", batch.InputCount,
		"output", batch.Len(),
		"blank", batch.BlankDropped,
		"duplicates", batch.DuplicatesDropped,
		"steps", batch.PerformedSteps,
	)

	return writeOutput(cfg, stdout, batch)
}

// writeOutput writes the batch to cfg.OutputFile, or to stdout when no
// output file is configured.
func writeOutput(cfg *config.Config, stdout io.Writer, batch *model.Batch) (err error) {
	if cfg.OutputFile == "" {
		return textio.WriteLines(stdout, batch.Lines)
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // Sorted text is not sensitive
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return textio.WriteLines(f, batch.Lines)
}
