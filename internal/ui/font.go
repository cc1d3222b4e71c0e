// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the one font the HUD uses.
func Face() font.Face {
	return basicfont.Face7x13
}

// TextWidth in pixels for the HUD face.
func TextWidth(s string) int {
	b := text.BoundString(Face(), s)
	return b.Max.X - b.Min.X
}

// DrawText draws s with its baseline at y.
func DrawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, Face(), x, y, c)
}

// DrawCentered draws s centered on cx.
func DrawCentered(screen *ebiten.Image, s string, cx, y int, c color.Color) {
	text.Draw(screen, s, Face(), cx-TextWidth(s)/2, y, c)
}
