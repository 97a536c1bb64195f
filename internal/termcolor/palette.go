package termcolor

import "strings"

var (
	lightBackground = RGB{R: 249, G: 250, B: 251}
	darkBackground  = RGB{R: 30, G: 30, B: 30}
)

type kindColor struct {
	basic int
	rgb   RGB
	bold  bool
}

var kindColors = map[string]kindColor{
	"alias":     {basic: 1, rgb: RGB{R: 239, G: 83, B: 80}, bold: true},
	"canonical": {basic: 2, rgb: RGB{R: 102, G: 187, B: 106}},
	"enum":      {basic: 3, rgb: RGB{R: 255, G: 202, B: 40}},
	"error":     {basic: 1, rgb: RGB{R: 229, G: 57, B: 53}, bold: true},
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// KindStyle returns the style for a report element: alias, canonical, enum or error.
// Truecolor output is adjusted to keep a 4.5:1 contrast against the detected scheme.
func KindStyle(kind string, scheme Scheme, profile Profile) Style {
	kc, ok := kindColors[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return Style{}
	}
	bg := darkBackground
	if scheme == SchemeLight {
		bg = lightBackground
	}
	rgb := readable(kc.rgb, bg, 4.5)
	switch profile {
	case ProfileTrueColor:
		v := rgb.array()
		return Style{Bold: kc.bold, FGTrue: &v}
	case ProfileANSI256:
		idx := rgbToANSI256(rgb.R, rgb.G, rgb.B)
		return Style{Bold: kc.bold, FG256: &idx}
	default:
		color := kc.basic
		return Style{Bold: kc.bold || scheme == SchemeDark, FGBasic: &color}
	}
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
