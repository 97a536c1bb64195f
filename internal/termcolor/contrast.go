package termcolor

import "math"

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) array() [3]uint8 { return [3]uint8{c.R, c.G, c.B} }

func linear(c uint8) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func luminance(c RGB) float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// ContrastRatio is the WCAG contrast ratio between two colours (1 to 21).
func ContrastRatio(fg, bg RGB) float64 {
	l1, l2 := luminance(fg), luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// readable darkens or lightens fg in steps until it reaches minRatio against bg,
// falling back to black or white.
func readable(fg, bg RGB, minRatio float64) RGB {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	towardBlack := luminance(bg) > 0.5
	c := fg
	for i := 0; i < 10; i++ {
		if towardBlack {
			c = RGB{R: darken(c.R), G: darken(c.G), B: darken(c.B)}
		} else {
			c = RGB{R: c.R + (255-c.R)/5, G: c.G + (255-c.G)/5, B: c.B + (255-c.B)/5}
		}
		if ContrastRatio(c, bg) >= minRatio {
			return c
		}
	}
	if towardBlack {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

func darken(v uint8) uint8 { return uint8(int(v) * 8 / 10) }
