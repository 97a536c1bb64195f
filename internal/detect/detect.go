package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Info は検出した言語を表します。Name が空なら対象外です。
type Info struct {
	Name string
}

// DefaultLangs is the language set scanned when none is configured.
var DefaultLangs = []string{"csharp"}

// FromPathAndContent detects the language of p, falling back to the shebang
// line of data for extensionless scripts.
func FromPathAndContent(p string, data []byte) Info {
	if name := detectByPath(p); name != "" {
		return Info{Name: name}
	}
	return Info{Name: detectByShebang(data)}
}

// FromPath detects the language from the file name only.
func FromPath(p string) Info {
	return Info{Name: detectByPath(p)}
}

func detectByPath(p string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(p)))
	if ext == "" {
		return ""
	}
	return extensionLanguages[ext]
}

func detectByShebang(data []byte) string {
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for key, lang := range shebangLanguages {
		if strings.Contains(line, key) {
			return lang
		}
	}
	return ""
}

// NormalizeLangName lower-cases name and resolves aliases such as "c#".
func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

// MatchesLang reports whether info is one of allow. An empty allow list
// accepts every detected language.
func MatchesLang(info Info, allow []string) bool {
	detected := NormalizeLangName(info.Name)
	if detected == "" {
		return false
	}
	if len(allow) == 0 {
		return true
	}
	for _, raw := range allow {
		if NormalizeLangName(raw) == detected {
			return true
		}
	}
	return false
}

// KnownLanguage reports whether the scanner understands name.
func KnownLanguage(name string) bool {
	if name == "" {
		return false
	}
	_, ok := languageStyles[NormalizeLangName(name)]
	return ok
}

// CanonicalDetectLangs normalizes values and drops blanks and duplicates.
func CanonicalDetectLangs(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		norm := NormalizeLangName(raw)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

var extensionLanguages = map[string]string{
	".cs":   "csharp",
	".csx":  "csharp",
	".cake": "csharp",
}

var langAliases = map[string]string{
	"c#":     "csharp",
	"cs":     "csharp",
	"csx":    "csharp",
	"cake":   "csharp",
	"dotnet": "csharp",
}

var shebangLanguages = map[string]string{
	"dotnet-script": "csharp",
	"dotnet script": "csharp",
}

// languageStyles lists the languages whose comment, string and directive
// syntax matches the scanner.
var languageStyles = map[string]struct{}{
	"csharp": {},
}
