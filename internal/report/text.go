package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/phyten/aliasfix/internal/termcolor"
	"github.com/phyten/aliasfix/internal/textutil"
)

// DefaultPath is the report file written next to the working directory.
const DefaultPath = "./AliasRemoverReport.txt"

const indent = "    "

// TextOptions controls console styling of the text sink.
type TextOptions struct {
	Color   bool
	Scheme  termcolor.Scheme
	Profile termcolor.Profile
}

// Text は人が読む形式のレポートを書き出します。
//
// コンソールには必要に応じて色付きで、レポートファイルには常にプレーンテキストで
// 同じ内容を書き込みます。どちらも nil を許容します。
type Text struct {
	console io.Writer
	file    *os.File
	buf     *bufio.Writer
	opts    TextOptions
}

// NewText truncates (or creates) the report file at reportPath and returns a
// sink writing to it and to console. An empty reportPath disables the file.
func NewText(console io.Writer, reportPath string, opts TextOptions) (*Text, error) {
	t := &Text{console: console, opts: opts}
	if reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return nil, fmt.Errorf("open report: %w", err)
		}
		t.file = f
		t.buf = bufio.NewWriter(f)
	}
	return t, nil
}

func (t *Text) Emit(ev Event) error {
	plain := FormatEvent(ev, nil)
	if t.buf != nil {
		if _, err := io.WriteString(t.buf, plain); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if t.console != nil {
		out := plain
		if t.opts.Color {
			out = FormatEvent(ev, t.paint)
		}
		if _, err := io.WriteString(t.console, out); err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) Close() error {
	if t.file == nil {
		return nil
	}
	flushErr := t.buf.Flush()
	closeErr := t.file.Close()
	t.file, t.buf = nil, nil
	if flushErr != nil {
		return fmt.Errorf("write report: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close report: %w", closeErr)
	}
	return nil
}

func (t *Text) paint(kind, text string) string {
	var st termcolor.Style
	if kind == "header" {
		st = termcolor.HeaderStyle()
	} else {
		st = termcolor.KindStyle(kind, t.opts.Scheme, t.opts.Profile)
	}
	return st.Wrap(text)
}

// FormatEvent renders ev as report text. paint, when non-nil, decorates the
// parts named "header", "alias", "canonical", "enum" and "error".
func FormatEvent(ev Event, paint func(kind, text string) string) string {
	if paint == nil {
		paint = func(_, text string) string { return text }
	}
	var b strings.Builder
	switch ev.Kind {
	case KindFile:
		b.WriteString(paint("header", "Checking file: "+ev.File))
		b.WriteByte('\n')

	case KindOccurrence:
		o := ev.Occurrence
		fmt.Fprintf(&b, "%s%s -> %s at row %d, column %d",
			indent, paint("alias", o.Alias), paint("canonical", o.Canonical), o.Row, o.Column)
		if o.InEnum {
			b.WriteString(" " + paint("enum", "(enum line, left unchanged by fix)"))
		}
		b.WriteByte('\n')
		if ev.Line != "" {
			// a byte order mark has no column
			raw := strings.TrimPrefix(strings.TrimRight(ev.Line, "\r\n"), "\uFEFF")
			expanded := textutil.ExpandTabs(raw, textutil.TabWidth)
			b.WriteString(indent + expanded + "\n")
			b.WriteString(indent + caret(expanded, o.Column, o.Alias) + "\n")
		}

	case KindChange:
		c := ev.Change
		fmt.Fprintf(&b, "%sChanged line %d\n", indent, c.Row)
		fmt.Fprintf(&b, "%sOld line: '%s'\n", indent, strings.TrimRightFunc(c.Old, isSpace))
		fmt.Fprintf(&b, "%sNew line: '%s'\n", indent, strings.TrimRightFunc(c.New, isSpace))

	case KindError:
		msg := ev.Message
		if ev.Stage != "" {
			msg = ev.Stage + ": " + msg
		}
		b.WriteString(indent + paint("error", "error: "+msg) + "\n")

	case KindSummary:
		b.WriteString(summaryLine(ev.Summary) + "\n")
	}
	return b.String()
}

// caret places one ^ per display cell of alias under the match, whose
// 1-based column counts runes of the expanded line.
func caret(expanded string, column int, alias string) string {
	pad := textutil.PrefixWidth(expanded, column-1)
	n := runewidth.StringWidth(alias)
	if n < 1 {
		n = 1
	}
	return textutil.Spaces(pad) + strings.Repeat("^", n)
}

func summaryLine(s Summary) string {
	var b strings.Builder
	switch s.Mode {
	case "fix":
		fmt.Fprintf(&b, "Changed %d line(s) in %d of %d file(s)", s.Changes, s.Changed, s.Files)
		if s.DryRun {
			b.WriteString(" (dry run, nothing written)")
		} else if s.BackupDir != "" && s.Changed > 0 {
			fmt.Fprintf(&b, "; originals saved to %s", s.BackupDir)
		}
	default:
		fmt.Fprintf(&b, "Found %d alias(es) in %d file(s)", s.Occurrences, s.Files)
	}
	if s.Errors > 0 {
		fmt.Fprintf(&b, "; %d error(s)", s.Errors)
	}
	return b.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
