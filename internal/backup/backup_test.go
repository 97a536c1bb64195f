package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveCopiesContent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "Program.cs")
	if err := os.WriteFile(src, []byte("int x;\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := New(filepath.Join(tmp, "backups"))
	if err := m.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	dest, err := m.Save(src)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(tmp, "backups", "Program.cs"); dest != want {
		t.Fatalf("dest=%q want %q", dest, want)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != "int x;\r\n" {
		t.Fatalf("backup content=%q", data)
	}
}

func TestSaveSuffixesCollisions(t *testing.T) {
	tmp := t.TempDir()
	var srcs []string
	for _, dir := range []string{"a", "b", "c"} {
		p := filepath.Join(tmp, dir, "Foo.cs")
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(dir), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		srcs = append(srcs, p)
	}
	m := New(filepath.Join(tmp, "bk"))
	if err := m.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	want := []string{"Foo.cs", "Foo.1.cs", "Foo.2.cs"}
	for i, src := range srcs {
		dest, err := m.Save(src)
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if filepath.Base(dest) != want[i] {
			t.Fatalf("save %d: got %q want %q", i, filepath.Base(dest), want[i])
		}
		data, _ := os.ReadFile(dest)
		if string(data) != filepath.Base(filepath.Dir(src)) {
			t.Fatalf("save %d: content %q", i, data)
		}
	}
}

func TestSaveMissingSource(t *testing.T) {
	m := New(t.TempDir())
	if _, err := m.Save(filepath.Join(t.TempDir(), "nope.cs")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestNewDefaultsDir(t *testing.T) {
	if got := New("  ").Dir(); got != DefaultDir {
		t.Fatalf("Dir()=%q want %q", got, DefaultDir)
	}
}
