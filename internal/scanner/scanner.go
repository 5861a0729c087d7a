// Package scanner walks the configured search locations and collects
// paths of regular files at or above the size threshold. It produces
// raw path lists only; classification and metadata enrichment happen
// in the catalog.
package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"reclaim/internal/catalog"
	"reclaim/internal/config"
)

// Scanner discovers large files beneath a set of labeled locations.
type Scanner struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Discover walks each location in order and returns one Source per
// location, preserving configuration order. Locations that do not
// exist yield an empty Source. Unreadable directories are skipped and
// logged; they never abort the walk.
func (s *Scanner) Discover(locations []config.Location, minBytes int64) []catalog.Source {
	sources := make([]catalog.Source, 0, len(locations))
	for _, loc := range locations {
		sources = append(sources, catalog.Source{
			Label: loc.Label,
			Paths: s.walk(loc.Path, minBytes),
		})
	}
	return sources
}

func (s *Scanner) walk(root string, minBytes int64) []string {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) || os.IsNotExist(err) {
				if s.logger != nil && os.IsPermission(err) {
					s.logger.Printf("scan: skipping %s: %v", path, err)
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			// File vanished between readdir and stat; ignore it.
			return nil
		}
		if info.Size() >= minBytes {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil && s.logger != nil {
		s.logger.Printf("scan: walk of %s aborted: %v", root, err)
	}
	return paths
}
