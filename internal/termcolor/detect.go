package termcolor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// ColorMode は -color フラグ (と設定ファイルの color キー) の値です。
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", v)
}

// Profile is the palette depth the console understands.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// Settings is what the report sink needs to colour console output.
type Settings struct {
	Enabled bool
	Scheme  Scheme
	Profile Profile
}

// Detect resolves the -color setting for output written to out, consulting
// environ (KEY=VALUE entries as returned by os.Environ).
func Detect(setting string, out io.Writer, environ []string) (Settings, error) {
	mode, err := ParseMode(setting)
	if err != nil {
		return Settings{}, err
	}
	env := EnvMap(environ)
	if mode == ModeAuto {
		mode = DetectMode(out, env)
	}
	return Settings{
		Enabled: Enabled(mode, out),
		Scheme:  DetectScheme(env),
		Profile: DetectProfile(env),
	}, nil
}

// EnvMap turns KEY=VALUE entries into a map. Later entries win.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// DetectMode decides auto mode. TERM=dumb, NO_COLOR and CLICOLOR=0 disable
// colour, in that order; CLICOLOR_FORCE or FORCE_COLOR (non-zero) enable it;
// otherwise colour follows whether out is a terminal.
func DetectMode(out io.Writer, env map[string]string) ColorMode {
	if out == nil {
		return ModeNever
	}
	switch {
	case strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb"):
		return ModeNever
	case strings.TrimSpace(env["NO_COLOR"]) != "":
		return ModeNever
	case strings.TrimSpace(env["CLICOLOR"]) == "0":
		return ModeNever
	case forced(env["CLICOLOR_FORCE"]), forced(env["FORCE_COLOR"]):
		return ModeAlways
	}
	if isTerminal(out) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether mode colours output written to out.
func Enabled(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return isTerminal(out)
}

// DetectProfile picks truecolor for COLORTERM=truecolor/24bit and for Windows
// Terminal (WT_SESSION), ANSI256 for *256color TERMs, and basic 8 otherwise.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	switch {
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"), strings.Contains(colorterm, "24-bit"):
		return ProfileTrueColor
	case strings.TrimSpace(env["WT_SESSION"]) != "":
		return ProfileTrueColor
	case strings.Contains(strings.ToLower(env["TERM"]), "256color"):
		return ProfileANSI256
	}
	return ProfileBasic8
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
