package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reclaim/internal/catalog"
	"reclaim/internal/config"
	"reclaim/internal/history"
	"reclaim/internal/logging"
	"reclaim/internal/metrics"
	"reclaim/internal/risk"
	"reclaim/internal/scanner"
	"reclaim/internal/session"
	"reclaim/internal/trash"
	"reclaim/internal/units"
)

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	var (
		auto        bool
		dryRun      bool
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "clean [min_size_mb]",
		Short: "Scan for large files and clean them up interactively",
		Long: `Scan the configured locations for files at or above the size
threshold (megabytes, default 100), classify each by deletion risk,
and prompt per file. Press Enter to accept the tier default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				mb, ok := units.ParseThresholdMB(args[0])
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(),
						"warning: invalid threshold %q, using %d MB\n", args[0], mb)
				}
				cfg.MinSizeMB = mb
			}

			return runClean(cfg, auto, dryRun, metricsFile)
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "apply the tier default to every file without prompting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be moved without touching anything")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write run metrics in Prometheus textfile format")

	return cmd
}

func runClean(cfg *config.Config, auto, dryRun bool, metricsFile string) error {
	logger := logging.NewWithConfig(cfg)
	minBytes := cfg.MinSizeBytes()

	fmt.Printf("Scanning %d locations for files over %s...\n",
		len(cfg.Locations), units.Format(minBytes))

	sources := scanner.New(logger).Discover(cfg.Locations, minBytes)
	classifier := risk.NewClassifier(cfg.RuleSet())
	records := catalog.NewBuilder(catalog.OSMetadata{}, classifier, logger).
		WithProgress(!auto).
		Build(sources)

	if len(records) == 0 {
		fmt.Println("No files found over the threshold. Nothing to do.")
		return nil
	}
	fmt.Printf("Found %d files totalling %s.\n",
		len(records), units.Format(catalog.TotalSize(records)))

	primitive := trash.NewCommandPrimitive(cfg.TrashCommand)
	if !primitive.Available() && !dryRun {
		fmt.Printf("note: %q not found, falling back to moves into %s\n",
			primitive.Name(), cfg.TrashDir)
	}
	mover := trash.NewMover(primitive, cfg.TrashDir, logger)

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithDryRun(dryRun),
	}

	db, err := history.Open(cfg.DatabasePath)
	if err != nil {
		logger.Printf("history disabled: %v", err)
	} else {
		defer db.Close()
		opts = append(opts, session.WithRecorder(db))
	}

	var input session.Input = session.AutoInput{}
	if !auto {
		input = session.NewPromptInput(os.Stdin)

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(interrupt)
		opts = append(opts, session.WithInterrupt(interrupt))
	}

	sess := session.New(os.Stdout, input, mover, opts...)
	sum := sess.Run(records)
	sess.Report(sum)

	if metricsFile != "" {
		moveErrors := 0
		for i := range records {
			if records[i].Outcome == catalog.OutcomeMoveFailed {
				moveErrors++
			}
		}
		run := metrics.NewRun()
		run.ObserveSummary(sum, moveErrors)
		if err := run.WriteTextfile(metricsFile); err != nil {
			return fmt.Errorf("write metrics file: %w", err)
		}
	}
	return nil
}
