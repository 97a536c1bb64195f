package backup

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDir is where originals are copied before a fix run rewrites them.
const DefaultDir = "./AliasRemoverBackups"

// Manager はバックアップ先ディレクトリへの退避を管理します。
//
// 同じ実行内で同名のファイルを退避した場合は Foo.1.cs のように連番を付けます。
type Manager struct {
	dir   string
	taken map[string]bool
}

func New(dir string) *Manager {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	return &Manager{dir: dir, taken: map[string]bool{}}
}

// Dir returns the backup directory.
func (m *Manager) Dir() string { return m.dir }

// Prepare creates the backup directory if needed.
func (m *Manager) Prepare() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	return nil
}

// Save copies path into the backup directory and returns the copy's path.
func (m *Manager) Save(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	defer func() {
		_ = src.Close()
	}()
	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}

	dest, out, err := m.create(filepath.Base(path), info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	return dest, nil
}

// create opens the first free name, starting with base itself. Names used
// earlier in this run are never reused; files left by earlier runs are
// overwritten.
func (m *Manager) create(base string, perm fs.FileMode) (string, *os.File, error) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 0; ; n++ {
		name := base
		if n > 0 {
			name = stem + "." + strconv.Itoa(n) + ext
		}
		if m.taken[name] {
			continue
		}
		dest := filepath.Join(m.dir, name)
		f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm|0o200)
		if err != nil {
			return "", nil, err
		}
		m.taken[name] = true
		return dest, f, nil
	}
}
