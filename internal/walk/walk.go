package walk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/phyten/aliasfix/internal/detect"
)

// TypicalDirs are build output, VCS and vendor directories skipped when
// ExcludeTypical is set.
var TypicalDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".vs":          true,
	".idea":        true,
	".vscode":      true,
	"bin":          true,
	"obj":          true,
	"packages":     true,
	"node_modules": true,
	"vendor":       true,
	"TestResults":  true,
}

// Options は走査対象の絞り込み条件です。
type Options struct {
	Root           string
	Langs          []string
	Excludes       []string
	ExcludeTypical bool
	PathRegex      []*regexp.Regexp
	// SkipDirs are directories never descended into. A directory is skipped
	// when its path or its base name equals an entry.
	SkipDirs  []string
	Gitignore bool
}

// Files walks opts.Root in lexical order and returns the matching file paths,
// each joined with Root the way filepath.WalkDir reports them.
func Files(opts Options) ([]string, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walk root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walk root %s: not a directory", root)
	}

	excludes, err := CompileExcludes(opts.Excludes)
	if err != nil {
		return nil, err
	}
	var gi *ignore.GitIgnore
	if opts.Gitignore {
		gi = LoadGitignore(root)
	}
	skip := newSkipSet(opts.SkipDirs)

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if opts.ExcludeTypical && TypicalDirs[d.Name()] {
				return filepath.SkipDir
			}
			if skip.match(path, d.Name()) {
				return filepath.SkipDir
			}
			if matchAny(excludes, rel+"/", d.Name()) {
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if matchAny(excludes, rel, d.Name()) {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if !MatchesPathRegex(path, rel, opts.PathRegex) {
			return nil
		}
		if !detect.MatchesLang(languageOf(path), langsOrDefault(opts.Langs)) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// LoadGitignore loads .gitignore from root if it exists.
func LoadGitignore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		if gi, err := ignore.CompileIgnoreFile(gitignorePath); err == nil {
			return gi
		}
	}
	return nil
}

// CompileExcludes compiles glob patterns using '/' as the separator.
// Patterns without a slash are matched against base names, the rest against
// the slash-separated path relative to the root.
func CompileExcludes(patterns []string) ([]Exclude, error) {
	out := make([]Exclude, 0, len(patterns))
	for _, raw := range patterns {
		p := filepath.ToSlash(strings.TrimSpace(raw))
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}
		out = append(out, Exclude{Pattern: p, glob: g, base: !strings.Contains(p, "/")})
	}
	return out, nil
}

// Exclude is one compiled exclude pattern.
type Exclude struct {
	Pattern string
	glob    glob.Glob
	base    bool
}

func matchAny(excludes []Exclude, rel, name string) bool {
	for _, ex := range excludes {
		if ex.base {
			if ex.glob.Match(name) {
				return true
			}
			continue
		}
		if ex.glob.Match(rel) {
			return true
		}
	}
	return false
}

// CompilePathRegex compiles the non-blank patterns.
func CompilePathRegex(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, raw := range patterns {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		rx, err := regexp.Compile(trimmed)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rx)
	}
	return compiled, nil
}

// MatchesPathRegex reports whether any of rx matches the file, tried against
// the full path and against the root-relative path (both slash-separated).
// No patterns accept everything.
func MatchesPathRegex(path, rel string, rx []*regexp.Regexp) bool {
	if len(rx) == 0 {
		return true
	}
	full := filepath.ToSlash(path)
	for _, r := range rx {
		if r.MatchString(full) || r.MatchString(rel) {
			return true
		}
	}
	return false
}

func langsOrDefault(langs []string) []string {
	if len(langs) == 0 {
		return detect.DefaultLangs
	}
	return langs
}

// languageOf looks at the shebang only for extensionless files.
func languageOf(path string) detect.Info {
	info := detect.FromPath(path)
	if info.Name != "" || filepath.Ext(path) != "" {
		return info
	}
	head, err := readHead(path, 256)
	if err != nil {
		return info
	}
	return detect.FromPathAndContent(path, head)
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}

type skipSet struct {
	paths map[string]bool
	names map[string]bool
}

func newSkipSet(dirs []string) skipSet {
	s := skipSet{paths: map[string]bool{}, names: map[string]bool{}}
	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			s.paths[abs] = true
		}
		s.names[filepath.Base(filepath.Clean(dir))] = true
	}
	return s
}

func (s skipSet) match(path, name string) bool {
	if s.names[name] {
		return true
	}
	if len(s.paths) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	return err == nil && s.paths[abs]
}
