package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"reclaim/internal/history"
	"reclaim/internal/units"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var (
		recent     int
		largest    int
		action     string
		tier       string
		stats      bool
		days       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Query the cleanup outcome history",
		Long: `Query the local history database of past cleanup decisions. The
history is an audit trail only; restoring files happens through the
system trash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := history.Open(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("open history database: %w", err)
			}
			defer db.Close()

			switch {
			case stats:
				return showStats(db, days, jsonOutput)
			case largest > 0:
				entries, err := db.Largest(largest)
				if err != nil {
					return err
				}
				return showEntries(entries, jsonOutput)
			case action != "":
				entries, err := db.ByAction(action)
				if err != nil {
					return err
				}
				return showEntries(entries, jsonOutput)
			case tier != "":
				entries, err := db.ByTier(tier)
				if err != nil {
					return err
				}
				return showEntries(entries, jsonOutput)
			default:
				if recent == 0 {
					recent = 20
				}
				entries, err := db.Recent(recent)
				if err != nil {
					return err
				}
				return showEntries(entries, jsonOutput)
			}
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "show N most recent outcomes")
	cmd.Flags().IntVar(&largest, "largest", 0, "show N largest moved files")
	cmd.Flags().StringVar(&action, "action", "", "filter by action (MOVE, MOVE_FAILED, KEEP, SKIP, DRY_RUN)")
	cmd.Flags().StringVar(&tier, "tier", "", "filter by risk tier name")
	cmd.Flags().BoolVar(&stats, "stats", false, "show aggregate statistics")
	cmd.Flags().IntVar(&days, "days", 30, "statistics window in days")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}

func showEntries(entries []history.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No matching history entries.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tACTION\tTIER\tSIZE\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.Action,
			e.Tier,
			units.Format(e.Size),
			e.Path,
		)
	}
	return w.Flush()
}

func showStats(db *history.DB, days int, jsonOutput bool) error {
	stats, err := db.StatsSince(days)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("Cleanup statistics (last %d days)\n", days)
	fmt.Printf("  sessions:      %d\n", stats.Sessions)
	fmt.Printf("  moved:         %d (%s freed)\n", stats.Moved, units.Format(stats.BytesFreed))
	fmt.Printf("  move failures: %d\n", stats.MoveFailed)
	fmt.Printf("  kept:          %d\n", stats.Kept)
	fmt.Printf("  skipped:       %d\n", stats.Skipped)
	fmt.Printf("  dry-run:       %d\n", stats.DryRun)
	return nil
}
