package termcolor

import (
	"strconv"
	"strings"
)

// Scheme is the console background the palette has to stay readable on.
type Scheme int

const (
	SchemeDark Scheme = iota
	SchemeLight
)

// DetectScheme reads the background from COLORFGBG ("fg;bg" or "fg;default;bg",
// where bg 7 and up is light), then falls back to a TERM name containing
// "light". Anything else is treated as dark.
func DetectScheme(env map[string]string) Scheme {
	if bg, ok := colorfgbgBackground(env["COLORFGBG"]); ok {
		if bg >= 7 {
			return SchemeLight
		}
		return SchemeDark
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

func colorfgbgBackground(raw string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ";")
	for i := len(parts) - 1; i >= 1; i-- {
		p := strings.TrimSpace(parts[i])
		if p == "" || p == "default" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
