package cli

import (
	"os"

	"github.com/spf13/cobra"

	"reclaim/internal/report"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Explain disk-usage discrepancies on this machine",
		Long: `Collect volume usage, diskutil detail, APFS container layout and
hidden-usage figures (local snapshots, purgeable space, device
backups) to explain why coarse disk reporting and per-file accounting
disagree. Reporting tools that are missing simply skip their section.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.NewInspector(report.ExecRunner{}, os.Stdout).Run()
		},
	}
}
