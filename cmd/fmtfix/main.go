package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexbocken/fmtfix/batch"
	"github.com/alexbocken/fmtfix/source"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configURL string
	rootDir   string
	dryRun    bool
	verify    bool
	debug     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fmtfix",
	Short: "Move inline formatCurrency helpers onto the shared formatter module",
	Long: `fmtfix rewrites Svelte components in place: it imports formatCurrency from
$lib/utils/formatters, removes the inline helper definition and normalizes
call sites to pass an explicit currency and locale.

Every edit is applied at most once, running the tool again is a no-op.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Apply all edits: import, definition removal and call normalization",
	RunE: func(cmd *cobra.Command, args []string) error {
		return rewrite(cmd, args, batch.AllStages)
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace [paths...]",
	Short: "Insert the shared import and remove the inline definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		return rewrite(cmd, args, batch.StageDeclarations)
	},
}

var callsCmd = &cobra.Command{
	Use:   "calls [paths...]",
	Short: "Normalize call sites to carry the canonical trailing arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return rewrite(cmd, args, batch.StageCalls)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configURL, "config", "c", "", "YAML config location")
	flags.StringVar(&rootDir, "root", "", "project root for relative paths (detected by default)")
	flags.BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
	flags.BoolVar(&verify, "verify", false, "reject rewrites that break script syntax")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(runCmd, replaceCmd, callsCmd)
}

// rewrite builds the run configuration and processes every target, per-file failures only show in the summary
func rewrite(cmd *cobra.Command, args []string, stages batch.Stage) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fs := afs.New()
	config := batch.DefaultConfig()
	if configURL != "" {
		var err error
		if config, err = batch.LoadConfig(ctx, fs, configURL); err != nil {
			return err
		}
	}
	if len(args) > 0 {
		config.Paths = args
	}
	if rootDir != "" {
		config.Root = rootDir
	}
	config.DryRun = config.DryRun || dryRun
	config.Verify = config.Verify || verify
	if err := config.Validate(); err != nil {
		return err
	}
	paths, err := config.Targets(ctx, source.NewDetector(fs))
	if err != nil {
		return fmt.Errorf("failed to resolve targets: %w", err)
	}
	logger.Debug("resolved targets", zap.Strings("paths", paths), zap.Bool("dryRun", config.DryRun))

	runner := batch.New(config,
		batch.WithLoader(source.NewLoader(fs)),
		batch.WithReporter(batch.NewReporter(cmd.OutOrStdout())),
		batch.WithLogger(logger))
	runner.Run(ctx, paths, stages)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
