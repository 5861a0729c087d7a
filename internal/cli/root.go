// Package cli wires the subcommands together. Each command builds its
// own collaborators from the loaded configuration; nothing here holds
// global state beyond the persistent flags.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"reclaim/internal/config"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// ErrConfig marks configuration problems so main can map them to the
// invalid-config exit code.
var ErrConfig = errors.New("invalid configuration")

// GlobalFlags holds persistent flag values.
type GlobalFlags struct {
	ConfigFile string
}

var globalFlags GlobalFlags

// NewRootCommand assembles the reclaim command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "reclaim",
		Short: "Interactive large-file cleanup for workstations",
		Long: `reclaim scans configured locations for large files, classifies each
by deletion risk, and walks the operator through an interactive
move-to-trash workflow. Everything it removes stays recoverable from
the trash, and every decision is recorded in a local history database.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/reclaim/config.yaml)",
	)

	root.AddCommand(NewCleanCommand())
	root.AddCommand(NewInspectCommand())
	root.AddCommand(NewHistoryCommand())
	root.AddCommand(NewVersionCommand())

	return root
}

func loadConfig() (*config.Config, error) {
	path := globalFlags.ConfigFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot resolve home directory: %v", ErrConfig, err)
		}
		path = filepath.Join(home, ".config", "reclaim", "config.yaml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return cfg, nil
}
