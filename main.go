package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := _newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func _newRootCmd() *cobra.Command {
	var (
		configFile string
		cfg        Config
		logger     = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:   "fresh [input]",
		Short: "Count fresh ingredients against merged ID ranges",
		Long: `fresh reads a list of fresh ingredient ID ranges, a blank line, and
the available ingredient IDs (or ID ranges). It prints how many available
IDs are fresh (part 1) and how many IDs the fresh ranges cover (part 2).

Use "-" to read the input from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err = _loadConfig(configFile, cmd.Flags())
			if err != nil {
				return
			}
			config := zap.NewProductionConfig()
			if cfg.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger = zap.New(zapcore.NewCore(
				zapcore.NewJSONEncoder(config.EncoderConfig),
				zapcore.AddSync(cmd.ErrOrStderr()),
				config.Level,
			))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()

			name := _defaultInput
			if len(args) > 0 {
				name = args[0]
			}

			start := time.Now()
			in, err := _loadInput(name)
			if err != nil {
				return errorf("unable to read input file %q: %w", name, err)
			}
			logger.Debug("loaded input",
				zap.String("file", name),
				zap.Int("ranges", len(in.Ranges)),
				zap.Int("queries", len(in.Queries)))

			ans, err := _solve(cmd.Context(), in, cfg, logger)
			if err != nil {
				logger.Debug("solve failed", zap.String("file", name), zap.Error(err))
				return errorf("%s: %w", name, err)
			}
			logger.Debug("solved", zap.Duration("elapsed", time.Since(start)))

			return _writeAnswers(cmd.OutOrStdout(), cfg.Format, ans)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.Int("part", 0, "part to solve: 1, 2, or 0 for both")
	flags.String("merge", _defaultMerge, "merge rule: adjacent or overlapping")
	flags.Int("workers", _defaultWorkers, "goroutines used to count part 1")
	flags.String("format", _defaultFormat, "output format: text or yaml")
	flags.BoolP("verbose", "v", false, "log debug messages")

	return cmd
}
