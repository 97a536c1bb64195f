package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/aliasfix/internal/engine/opts"
)

var engineKeyMap = map[string]string{
	"root":            "root",
	"dir":             "root",
	"langs":           "langs",
	"lang":            "langs",
	"languages":       "langs",
	"exclude":         "exclude",
	"excludes":        "exclude",
	"path_regex":      "path_regex",
	"path_regexes":    "path_regex",
	"exclude_typical": "exclude_typical",
	"gitignore":       "gitignore",
	"use_gitignore":   "gitignore",
	"max_file_bytes":  "max_file_bytes",
	"max_bytes":       "max_file_bytes",
	"backup_dir":      "backup_dir",
	"backups":         "backup_dir",
	"dry_run":         "dry_run",
}

var uiKeyMap = map[string]string{
	"report":      "report",
	"report_file": "report",
	"output":      "output",
	"format":      "output",
	"color":       "color",
	"colour":      "color",
	"pause":       "pause",
	"open":        "open",
	"open_report": "open",
	"progress":    "progress",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	engineSection := make(map[string]any)
	uiSection := make(map[string]any)

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "engine":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("engine: %w", err)
			}
			if err := fillSection(engineSection, sub, engineKeyMap, "engine"); err != nil {
				return cfg, err
			}
		case "ui":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("ui: %w", err)
			}
			if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
				return cfg, err
			}
		default:
			if canonical, ok := engineKeyMap[norm]; ok {
				engineSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignEngine(engineSection, &cfg.Engine); err != nil {
		return cfg, fmt.Errorf("engine: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignEngine(section map[string]any, dst *EngineConfig) error {
	for key, value := range section {
		switch key {
		case "root":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Root = &str
		case "langs":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Langs = &list
		case "exclude":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Excludes = &list
		case "path_regex":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.PathRegex = &list
		case "exclude_typical":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.ExcludeTypical = &b
		case "gitignore":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Gitignore = &b
		case "max_file_bytes":
			n, err := expectSize(value, key)
			if err != nil {
				return err
			}
			dst.MaxFileBytes = &n
		case "backup_dir":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.BackupDir = &trimmed
		case "dry_run":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.DryRun = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		switch key {
		case "report":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Report = &trimmed
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "pause":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Pause = &b
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		case "progress":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Progress = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

// expectSize accepts plain integers and strings such as "512K" or "2MiB".
func expectSize(value any, field string) (int64, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		n = int64(v)
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		n = int64(v)
	case string:
		return engineopts.ParseByteSize(v, field)
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be >= 0", field)
	}
	return n, nil
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		parts := engineopts.SplitMulti([]string{v})
		return normalizeList(parts), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
