package opts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/aliasfix/internal/backup"
	"github.com/phyten/aliasfix/internal/detect"
	"github.com/phyten/aliasfix/internal/engine"
	"github.com/phyten/aliasfix/internal/walk"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Output formats accepted by -output.
var outputFormats = map[string]string{
	"text":     "text",
	"txt":      "text",
	"json":     "json",
	"ndjson":   "ndjson",
	"jsonl":    "ndjson",
	"csv":      "csv",
	"markdown": "markdown",
	"md":       "markdown",
}

// Defaults returns the baseline options shared by check and fix.
func Defaults(root string) engine.Options {
	return engine.Options{
		Root:           root,
		Langs:          append([]string(nil), detect.DefaultLangs...),
		Excludes:       nil,
		ExcludeTypical: true,
		PathRegex:      nil,
		Gitignore:      true,
		MaxFileBytes:   0,
		BackupDir:      backup.DefaultDir,
		DryRun:         false,
		Progress:       false,
	}
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	if strings.TrimSpace(o.Root) == "" {
		o.Root = "."
	}
	if strings.TrimSpace(o.BackupDir) == "" {
		o.BackupDir = backup.DefaultDir
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}

	o.Langs = trimSlice(o.Langs)
	if len(o.Langs) == 0 {
		o.Langs = append([]string(nil), detect.DefaultLangs...)
	}
	o.Langs = detect.CanonicalDetectLangs(o.Langs)
	for _, lang := range o.Langs {
		if !detect.KnownLanguage(lang) {
			return fmt.Errorf("unsupported --langs value: %s", lang)
		}
	}

	o.Excludes = trimSlice(o.Excludes)
	if _, err := walk.CompileExcludes(o.Excludes); err != nil {
		return fmt.Errorf("invalid --exclude: %w", err)
	}

	o.PathRegex = trimSlice(o.PathRegex)
	compiled, err := walk.CompilePathRegex(o.PathRegex)
	if err != nil {
		return fmt.Errorf("invalid --path-regex: %w", err)
	}
	o.PathRegexCompiled = compiled

	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// ParseByteSize parses a non-negative byte count. A K, M or G suffix (with an
// optional trailing B or iB) multiplies by powers of 1024.
func ParseByteSize(raw, key string) (int64, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	v = strings.TrimSuffix(strings.TrimSuffix(v, "B"), "I")
	mult := int64(1)
	switch {
	case strings.HasSuffix(v, "K"):
		mult, v = 1<<10, strings.TrimSuffix(v, "K")
	case strings.HasSuffix(v, "M"):
		mult, v = 1<<20, strings.TrimSuffix(v, "M")
	case strings.HasSuffix(v, "G"):
		mult, v = 1<<30, strings.TrimSuffix(v, "G")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || v == "" {
		return 0, fmt.Errorf("invalid size for %s: %q", key, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return n * mult, nil
}

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "text", nil
	}
	if canon, ok := outputFormats[v]; ok {
		return canon, nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
