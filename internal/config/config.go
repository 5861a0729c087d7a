package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"reclaim/internal/risk"
	"reclaim/internal/units"
)

// Location is one named search root handed to the scanner. The label is
// carried through to catalog records and the history database.
type Location struct {
	Label string `yaml:"label" json:"label"`
	Path  string `yaml:"path" json:"path"`
}

// ExtraRule appends a pattern to one tier of the built-in risk tables.
// Extras evaluate after the built-ins of their tier.
type ExtraRule struct {
	Tier           string `yaml:"tier" json:"tier"`
	Pattern        string `yaml:"pattern" json:"pattern"`
	Reason         string `yaml:"reason" json:"reason"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
}

type LoggingCfg struct {
	RotationDays int `yaml:"rotation_days" json:"rotation_days"` // Days to keep logs before rotation
}

type Config struct {
	Locations    []Location  `yaml:"locations" json:"locations"`
	MinSizeMB    int         `yaml:"min_size_mb" json:"min_size_mb"`
	TrashDir     string      `yaml:"trash_dir" json:"trash_dir"`
	TrashCommand string      `yaml:"trash_command" json:"trash_command"` // System trash primitive to try first
	DatabasePath string      `yaml:"database_path" json:"database_path"` // SQLite outcome history
	Logging      LoggingCfg  `yaml:"logging" json:"logging"`
	ExtraRules   []ExtraRule `yaml:"extra_rules" json:"extra_rules"`
}

var (
	errInvalidPath    = errors.New("location path must be absolute")
	errEmptyLabel     = errors.New("location label must not be empty")
	errInvalidPattern = errors.New("extra rule pattern must not be empty")
)

// Load reads configuration from path. A missing file is not an error:
// the tool is useful with no configuration at all, so defaults apply.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration equivalent to an empty config file.
func Default() *Config {
	cfg := &Config{}
	// An empty config always validates.
	_ = cfg.validateAndDefault()
	return cfg
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/"
	}

	if len(c.Locations) == 0 {
		c.Locations = defaultLocations(home)
	}
	for i := range c.Locations {
		if strings.TrimSpace(c.Locations[i].Label) == "" {
			return errEmptyLabel
		}
		cp, err := cleanAbsolute(expandHome(c.Locations[i].Path, home))
		if err != nil {
			return fmt.Errorf("location %q: %w", c.Locations[i].Label, err)
		}
		c.Locations[i].Path = cp
	}

	if c.MinSizeMB <= 0 {
		c.MinSizeMB = units.DefaultMinSizeMB
	}

	if c.TrashDir == "" {
		c.TrashDir = filepath.Join(home, ".Trash")
	} else {
		c.TrashDir = expandHome(c.TrashDir, home)
	}

	if c.TrashCommand == "" {
		c.TrashCommand = "trash"
	}

	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(home, "Library", "Application Support", "reclaim", "history.db")
	} else {
		c.DatabasePath = expandHome(c.DatabasePath, home)
	}

	if c.Logging.RotationDays <= 0 {
		c.Logging.RotationDays = 30
	}

	for _, er := range c.ExtraRules {
		if strings.TrimSpace(er.Pattern) == "" {
			return errInvalidPattern
		}
	}

	return nil
}

func defaultLocations(home string) []Location {
	return []Location{
		{Label: "User Home", Path: home},
		{Label: "System Caches", Path: "/Library/Caches"},
		{Label: "System Logs", Path: "/private/var/log"},
		{Label: "Applications", Path: "/Applications"},
	}
}

// MinSizeBytes converts the configured megabyte threshold to bytes.
func (c *Config) MinSizeBytes() int64 {
	return int64(c.MinSizeMB) * 1024 * 1024
}

// RuleSet builds the classification tables: the built-ins plus any
// configured extras, appended in file order after their tier's built-ins.
func (c *Config) RuleSet() *risk.RuleSet {
	rs := risk.DefaultRuleSet()
	for _, er := range c.ExtraRules {
		rs = rs.Extend(risk.ParseTier(er.Tier), risk.Rule{
			Pattern:        strings.ToLower(er.Pattern),
			Reason:         er.Reason,
			Recommendation: er.Recommendation,
		})
	}
	return rs
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}

func cleanAbsolute(p string) (string, error) {
	if p == "" {
		return "", errInvalidPath
	}
	cp := filepath.Clean(p)
	if !filepath.IsAbs(cp) {
		return "", fmt.Errorf("%w: %s", errInvalidPath, p)
	}
	return cp, nil
}
