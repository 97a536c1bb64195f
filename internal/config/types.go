package config

import (
	"strings"

	"github.com/phyten/aliasfix/internal/engine"
	"github.com/phyten/aliasfix/internal/report"
)

type EngineConfig struct {
	Root           *string   `yaml:"root" toml:"root" json:"root"`
	Langs          *[]string `yaml:"langs" toml:"langs" json:"langs"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	PathRegex      *[]string `yaml:"path_regex" toml:"path_regex" json:"path_regex"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Gitignore      *bool     `yaml:"gitignore" toml:"gitignore" json:"gitignore"`
	MaxFileBytes   *int64    `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	BackupDir      *string   `yaml:"backup_dir" toml:"backup_dir" json:"backup_dir"`
	DryRun         *bool     `yaml:"dry_run" toml:"dry_run" json:"dry_run"`
}

type UIConfig struct {
	Report   *string `yaml:"report" toml:"report" json:"report"`
	Output   *string `yaml:"output" toml:"output" json:"output"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Pause    *bool   `yaml:"pause" toml:"pause" json:"pause"`
	Open     *bool   `yaml:"open" toml:"open" json:"open"`
	Progress *bool   `yaml:"progress" toml:"progress" json:"progress"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type EngineSettings struct {
	Root           string
	Langs          []string
	Excludes       []string
	PathRegex      []string
	ExcludeTypical bool
	Gitignore      bool
	MaxFileBytes   int64
	BackupDir      string
	DryRun         bool
}

type UISettings struct {
	Report   string
	Output   string
	Color    string
	Pause    bool
	Open     bool
	Progress bool
}

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Root:           opts.Root,
		Langs:          cloneStrings(opts.Langs),
		Excludes:       cloneStrings(opts.Excludes),
		PathRegex:      cloneStrings(opts.PathRegex),
		ExcludeTypical: opts.ExcludeTypical,
		Gitignore:      opts.Gitignore,
		MaxFileBytes:   opts.MaxFileBytes,
		BackupDir:      opts.BackupDir,
		DryRun:         opts.DryRun,
	}
}

func (s EngineSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	if trimmed := strings.TrimSpace(s.Root); trimmed != "" {
		opts.Root = trimmed
	}
	opts.Langs = cloneStrings(s.Langs)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.PathRegex = cloneStrings(s.PathRegex)
	opts.ExcludeTypical = s.ExcludeTypical
	opts.Gitignore = s.Gitignore
	opts.MaxFileBytes = s.MaxFileBytes
	if trimmed := strings.TrimSpace(s.BackupDir); trimmed != "" {
		opts.BackupDir = trimmed
	}
	opts.DryRun = s.DryRun
}

func DefaultUISettings() UISettings {
	return UISettings{
		Report:   report.DefaultPath,
		Output:   "text",
		Color:    "auto",
		Pause:    false,
		Open:     false,
		Progress: false,
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
