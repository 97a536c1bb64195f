package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phyten/aliasfix/internal/model"
	"github.com/phyten/aliasfix/internal/termcolor"
)

func TestFormatEventFile(t *testing.T) {
	got := FormatEvent(Event{Kind: KindFile, File: "./src/a.cs"}, nil)
	if got != "Checking file: ./src/a.cs\n" {
		t.Fatalf("unexpected banner %q", got)
	}
}

func TestFormatEventOccurrenceCaret(t *testing.T) {
	cases := []struct {
		name string
		line string
		occ  model.Occurrence
		want []string
	}{
		{
			name: "plain",
			line: "int x = 5;\n",
			occ:  model.Occurrence{Alias: "int", Canonical: "Int32", Row: 1, Column: 1},
			want: []string{
				"    int -> Int32 at row 1, column 1",
				"    int x = 5;",
				"    ^^^",
			},
		},
		{
			name: "tab",
			line: "\tstring s;\r\n",
			occ:  model.Occurrence{Alias: "string", Canonical: "String", Row: 3, Column: 5},
			want: []string{
				"    string -> String at row 3, column 5",
				"        string s;",
				"        ^^^^^^",
			},
		},
		{
			name: "wide runes before match",
			line: "var 値 = (int)x;",
			occ:  model.Occurrence{Alias: "int", Canonical: "Int32", Row: 2, Column: 10},
			want: []string{
				"    int -> Int32 at row 2, column 10",
				"    var 値 = (int)x;",
				"              ^^^",
			},
		},
		{
			name: "byte order mark",
			line: "\uFEFFint x;\n",
			occ:  model.Occurrence{Alias: "int", Canonical: "Int32", Row: 1, Column: 1},
			want: []string{
				"    int -> Int32 at row 1, column 1",
				"    int x;",
				"    ^^^",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatEvent(Event{Kind: KindOccurrence, Occurrence: tc.occ, Line: tc.line}, nil)
			want := strings.Join(tc.want, "\n") + "\n"
			if got != want {
				t.Fatalf("FormatEvent=\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestFormatEventEnumNote(t *testing.T) {
	got := FormatEvent(Event{
		Kind:       KindOccurrence,
		Occurrence: model.Occurrence{Alias: "byte", Canonical: "Byte", Row: 1, Column: 14, InEnum: true},
	}, nil)
	if !strings.Contains(got, "(enum line, left unchanged by fix)") {
		t.Fatalf("enum occurrences should be flagged: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("no source line means a single line: %q", got)
	}
}

func TestFormatEventChange(t *testing.T) {
	got := FormatEvent(Event{Kind: KindChange, Change: model.Change{Row: 7, Old: "int x;  ", New: "Int32 x;"}}, nil)
	want := "    Changed line 7\n    Old line: 'int x;'\n    New line: 'Int32 x;'\n"
	if got != want {
		t.Fatalf("FormatEvent=%q want %q", got, want)
	}
}

func TestFormatEventErrorAndSummary(t *testing.T) {
	if got := FormatEvent(Event{Kind: KindError, Stage: "read", Message: "permission denied"}, nil); got != "    error: read: permission denied\n" {
		t.Fatalf("error line %q", got)
	}
	cases := []struct {
		s    Summary
		want string
	}{
		{Summary{Mode: "check", Files: 3, Occurrences: 5}, "Found 5 alias(es) in 3 file(s)\n"},
		{Summary{Mode: "fix", Files: 3, Changes: 4, Changed: 2, BackupDir: "bk"}, "Changed 4 line(s) in 2 of 3 file(s); originals saved to bk\n"},
		{Summary{Mode: "fix", Files: 1, Changes: 1, Changed: 1, DryRun: true}, "Changed 1 line(s) in 1 of 1 file(s) (dry run, nothing written)\n"},
		{Summary{Mode: "check", Files: 2, Errors: 1}, "Found 0 alias(es) in 2 file(s); 1 error(s)\n"},
	}
	for _, tc := range cases {
		if got := FormatEvent(Event{Kind: KindSummary, Summary: tc.s}, nil); got != tc.want {
			t.Fatalf("summary %+v = %q want %q", tc.s, got, tc.want)
		}
	}
}

func TestTextWritesConsoleAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("stale contents\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var console bytes.Buffer
	sink, err := NewText(&console, path, TextOptions{Color: true, Scheme: termcolor.SchemeDark, Profile: termcolor.ProfileBasic8})
	if err != nil {
		t.Fatalf("NewText: %v", err)
	}
	events := []Event{
		{Kind: KindFile, File: "a.cs"},
		{Kind: KindOccurrence, Occurrence: model.Occurrence{Alias: "int", Canonical: "Int32", Row: 1, Column: 1}, Line: "int x;\n"},
	}
	for _, ev := range events {
		if err := sink.Emit(ev); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	want := "Checking file: a.cs\n    int -> Int32 at row 1, column 1\n    int x;\n    ^^^\n"
	if string(data) != want {
		t.Fatalf("report file=%q want %q", data, want)
	}
	if !strings.Contains(console.String(), "\x1b[") {
		t.Fatalf("console output should be coloured: %q", console.String())
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Fatal("report file must stay plain")
	}
}

func TestTextWithoutFile(t *testing.T) {
	var console bytes.Buffer
	sink, err := NewText(&console, "", TextOptions{})
	if err != nil {
		t.Fatalf("NewText: %v", err)
	}
	if err := sink.Emit(Event{Kind: KindFile, File: "x.cs"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if console.String() != "Checking file: x.cs\n" {
		t.Fatalf("console=%q", console.String())
	}
}

func TestNewTextBadPath(t *testing.T) {
	if _, err := NewText(nil, filepath.Join(t.TempDir(), "missing", "r.txt"), TextOptions{}); err == nil {
		t.Fatal("expected error for unwritable report path")
	}
}

func TestMultiAndRecorder(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	sink := Multi(a, b, Discard)
	if err := sink.Emit(Event{Kind: KindChange}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(a.OfKind(KindChange)) != 1 || len(b.Events) != 1 || !a.Closed || !b.Closed {
		t.Fatalf("fan-out failed: %+v %+v", a, b)
	}
}
