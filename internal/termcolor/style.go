package termcolor

import (
	"strconv"
	"strings"
)

// Style is one SGR decoration. At most one foreground colour is emitted,
// preferring FGTrue, then FG256, then FGBasic.
type Style struct {
	Bold      bool
	Underline bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
}

// Wrap surrounds text with the style's escape sequence and a reset.
// Empty text and empty styles are returned unchanged.
func (s Style) Wrap(text string) string {
	params := s.params()
	if text == "" || params == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(params) + 7)
	b.WriteString("\x1b[")
	b.WriteString(params)
	b.WriteByte('m')
	b.WriteString(text)
	b.WriteString("\x1b[0m")
	return b.String()
}

func (s Style) params() string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	switch {
	case s.FGTrue != nil:
		codes = append(codes, "38;2;"+strconv.Itoa(int(s.FGTrue[0]))+";"+strconv.Itoa(int(s.FGTrue[1]))+";"+strconv.Itoa(int(s.FGTrue[2])))
	case s.FG256 != nil:
		codes = append(codes, "38;5;"+strconv.Itoa(*s.FG256))
	case s.FGBasic != nil:
		codes = append(codes, strconv.Itoa(30+*s.FGBasic))
	}
	return strings.Join(codes, ";")
}
