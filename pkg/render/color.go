// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds the colors of one arena backdrop.
type ArenaColors struct {
	BackgroundColor color.RGBA
	TileColor       color.RGBA
	LineColor       color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves a color halfway to white.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}

// WithAlpha returns c with its alpha scaled by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// ArenaPalette derives tile and line colors from a background.
func ArenaPalette(background color.RGBA, strokeWidth float32) ArenaColors {
	return ArenaColors{
		BackgroundColor: background,
		TileColor:       LightenColor(DarkenColor(background)),
		LineColor:       DarkenColor(background),
		StrokeWidth:     strokeWidth,
	}
}
