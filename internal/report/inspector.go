// Package report explains disk-usage discrepancies between coarse
// volume reporting and per-file accounting. The sections are
// presentational: external tools are data sources, and nothing is
// reconciled numerically beyond the statfs percentages.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"reclaim/internal/disk"
)

// Inspector renders the discrepancy report section by section.
type Inspector struct {
	runner Runner
	out    io.Writer
	home   string
}

func NewInspector(runner Runner, out io.Writer) *Inspector {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/"
	}
	return &Inspector{runner: runner, out: out, home: home}
}

// Run emits every section. Tool failures blank out their section
// rather than aborting the report.
func (i *Inspector) Run() error {
	fmt.Fprintln(i.out, "Disk usage discrepancy report")
	fmt.Fprintln(i.out, strings.Repeat("=", 50))

	if err := i.volumeSection(); err != nil {
		return err
	}
	i.diskutilSection()
	i.apfsSection()
	i.hiddenUsageSection()
	i.explanationSection()
	return nil
}

// volumeSection is the only computed section; everything below it is
// tool output passed through.
func (i *Inspector) volumeSection() error {
	u, err := disk.GetUsage("/")
	if err != nil {
		return fmt.Errorf("statfs /: %w", err)
	}
	fmt.Fprintln(i.out, "\nVolume usage (statfs /)")
	fmt.Fprintf(i.out, "  total: %s\n", humanize.IBytes(uint64(u.TotalBytes)))
	fmt.Fprintf(i.out, "  used:  %s (%.1f%%)\n", humanize.IBytes(uint64(u.UsedBytes)), u.UsedPercent)
	fmt.Fprintf(i.out, "  free:  %s\n", humanize.IBytes(uint64(u.FreeBytes)))
	return nil
}

func (i *Inspector) diskutilSection() {
	out, err := i.runner.Run("diskutil", "info", "/")
	if err != nil {
		return
	}
	info := ParseKeyValues(out)
	fmt.Fprintln(i.out, "\ndiskutil detail")
	for _, key := range []string{
		"Device Node", "Volume Name", "Total Size", "Volume Free Space",
		"Volume Used Space", "File System", "APFS Physical Store",
	} {
		if v, ok := info[key]; ok {
			fmt.Fprintf(i.out, "  %s: %s\n", key, v)
		}
	}

	if lines := PurgeableLines(out); len(lines) > 0 {
		fmt.Fprintln(i.out, "\nPurgeable space")
		for _, l := range lines {
			fmt.Fprintf(i.out, "  %s\n", l)
		}
	}
}

func (i *Inspector) apfsSection() {
	out, err := i.runner.Run("diskutil", "apfs", "list")
	if err != nil {
		return
	}
	fmt.Fprintln(i.out, "\nAPFS containers")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		fmt.Fprintf(i.out, "  %s\n", line)
	}
}

func (i *Inspector) hiddenUsageSection() {
	fmt.Fprintln(i.out, "\nHidden usage")

	if out, err := i.runner.Run("tmutil", "listlocalsnapshots", "/"); err == nil {
		snapshots := SnapshotNames(out)
		fmt.Fprintf(i.out, "  Time Machine local snapshots: %d\n", len(snapshots))
		for n, s := range snapshots {
			if n == 3 {
				break
			}
			fmt.Fprintf(i.out, "    - %s\n", s)
		}
	}

	backupDir := filepath.Join(i.home, "Library", "Application Support", "MobileSync", "Backup")
	if _, err := os.Stat(backupDir); err == nil {
		if out, err := i.runner.Run("du", "-sh", backupDir); err == nil {
			if size := DuSize(out); size != "" {
				fmt.Fprintf(i.out, "  iOS device backups: %s\n", size)
			}
		}
	}
}

func (i *Inspector) explanationSection() {
	fmt.Fprintln(i.out, "\nCommon causes of df/Finder disagreement:")
	for _, cause := range []string{
		"Time Machine local snapshots holding deleted data",
		"iOS device backups under ~/Library",
		"system and log files not visible in Finder",
		"APFS space sharing between volumes",
		"purgeable and optimized storage",
	} {
		fmt.Fprintf(i.out, "  - %s\n", cause)
	}
}

// ParseKeyValues splits "Key: Value" lines the way diskutil prints
// them. The first colon wins; lines without one are dropped.
func ParseKeyValues(text string) map[string]string {
	info := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		info[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return info
}

// PurgeableLines extracts the purgeable-space lines from diskutil
// output.
func PurgeableLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), "purgeable") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// SnapshotNames returns the snapshot identifiers from tmutil output,
// dropping the header line and blanks.
func SnapshotNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Snapshots for ") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// DuSize extracts the size column from `du -sh` output.
func DuSize(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
