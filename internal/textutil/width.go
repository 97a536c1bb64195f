package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns terminal display width (wcwidth-based).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	t := StripANSI(s)
	g := uniseg.NewGraphemes(t)
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateByWidth truncates s to fit width w without breaking graphemes.
// If truncation happens and ellipsis is not empty, append it when it fits.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" {
		return ""
	}
	if w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	t := StripANSI(s)
	g := uniseg.NewGraphemes(t)
	segs := make([]string, 0, len(t))
	widths := make([]int, 0, len(t))
	used := 0
	ellW := runewidth.StringWidth(ellipsis)
	for g.Next() {
		seg := g.Str()
		segW := runewidth.StringWidth(seg)
		if used+segW > w {
			if ellipsis == "" {
				return join(segs)
			}
			if ellW > w {
				return join(segs)
			}
			for len(segs) > 0 && used+ellW > w {
				used -= widths[len(widths)-1]
				segs = segs[:len(segs)-1]
				widths = widths[:len(widths)-1]
			}
			if used+ellW > w {
				return join(segs)
			}
			return join(segs) + ellipsis
		}
		segs = append(segs, seg)
		widths = append(widths, segW)
		used += segW
	}
	return join(segs)
}

func join(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg)
	}
	return b.String()
}

// PadRight pads s on the right with spaces so that the visible width equals w.
func PadRight(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + Spaces(pad)
}

// PadLeft pads s on the left with spaces so that the visible width equals w.
func PadLeft(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return Spaces(pad) + s
}

// Spaces returns n spaces.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// TabWidth is the tab stop used when lines are shown or columns counted.
const TabWidth = 4

// ExpandTabs replaces each tab with spaces up to the next multiple of width.
// Columns count runes, so the result has one rune per visual column position.
func ExpandTabs(s string, width int) string {
	if width <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + width*strings.Count(s, "\t"))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			b.WriteString(Spaces(n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// PrefixWidth is the display width of the first n runes of s.
func PrefixWidth(s string, n int) int {
	if n <= 0 {
		return 0
	}
	i := 0
	for pos := range s {
		if i == n {
			return VisibleWidth(s[:pos])
		}
		i++
	}
	return VisibleWidth(s)
}
