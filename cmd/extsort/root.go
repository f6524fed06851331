package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"extsort/internal/config"
	"extsort/internal/logging"
	"extsort/internal/preflight"
	"extsort/internal/sorter"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		moveFlag      bool
		verifyFlag    bool
		dryRunFlag    bool
		quietFlag     bool
		noLockFlag    bool
		logLevelFlag  string
		logFormatFlag string
	)

	rootCmd := &cobra.Command{
		Use:   "extsort <source> [destination]",
		Short: "Recursively copy or move files, sorted into folders named by extension",
		Long: strings.TrimSpace(`
extsort walks a source directory and relocates every regular file into a
destination subdirectory named after the file's lowercased extension
(extensionless files land in ` + sorter.NoExtensionBucket + `). Existing files
are never overwritten; clashing names get a numbered " (N)" variant. The
destination defaults to ./dist and is skipped during traversal when it sits
inside the source.`),
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := applyFlagOverrides(cmd, cfg, verifyFlag, noLockFlag, logLevelFlag, logFormatFlag); err != nil {
				return err
			}

			source := args[0]
			destination := cfg.Paths.Destination
			if len(args) == 2 {
				destination = args[1]
			}

			logger, err := buildLogger(cmd, cfg)
			if err != nil {
				return err
			}

			// A dry run writes nothing, so only the source side is checked.
			results := []preflight.Result{preflight.CheckSource(source)}
			if !dryRunFlag {
				results = append(results, preflight.CheckDestination(destination))
			}
			if preflight.Failed(results) {
				return preflightError(results)
			}

			sink := newConsoleSink(cmd.OutOrStdout(), cmd.ErrOrStderr(), quietFlag)
			summary, err := sorter.Run(sorter.Options{
				Source:          source,
				Destination:     destination,
				Move:            moveFlag,
				Verify:          cfg.Placement.VerifyCopies,
				DryRun:          dryRunFlag,
				MaxDepth:        cfg.Placement.MaxDepth,
				LockDestination: cfg.Placement.LockDestination,
			}, logger, sink)
			if err != nil {
				return err
			}
			if summary.Errors > 0 {
				return errPartialFailure
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&moveFlag, "move", false, "Move files instead of copying")
	rootCmd.Flags().BoolVar(&verifyFlag, "verify", false, "Verify copied files with SHA256 checksums")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report placements without writing anything")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress per-file confirmation lines")
	rootCmd.Flags().BoolVar(&noLockFlag, "no-lock", false, "Skip the destination lock file")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Diagnostic log format (console, json)")

	rootCmd.AddCommand(newCheckCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// applyFlagOverrides folds explicit CLI flags into the loaded config so a
// flag always wins over the file for a single run.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, verify, noLock bool, logLevel, logFormat string) error {
	if cmd.Flags().Changed("verify") {
		cfg.Placement.VerifyCopies = verify
	}
	if cmd.Flags().Changed("no-lock") {
		cfg.Placement.LockDestination = !noLock
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	return cfg.Validate()
}

// buildLogger wires structured diagnostics to the configured log file, and to
// stderr as well when the caller asked for a specific level or format. With
// neither, diagnostics are discarded and only the console sink speaks.
func buildLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	var outputs []string
	if cfg.Paths.LogDir != "" {
		outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "extsort.log"))
	}
	if cmd.Flags().Changed("log-level") || cmd.Flags().Changed("log-format") {
		outputs = append(outputs, "stderr")
	}
	if len(outputs) == 0 {
		return logging.NewNop(), nil
	}

	logger, err := logging.New(logging.Options{
		Level:            cfg.Logging.Level,
		Format:           cfg.Logging.Format,
		OutputPaths:      outputs,
		ErrorOutputPaths: outputs,
	})
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String("run_id", uuid.NewString())), nil
}

func preflightError(results []preflight.Result) error {
	var details []string
	for _, result := range results {
		if !result.Passed {
			details = append(details, fmt.Sprintf("%s: %s", strings.ToLower(result.Name), result.Detail))
		}
	}
	return sorter.Wrap(sorter.ErrPrecondition, "preflight", strings.Join(details, "; "), nil)
}
