// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

func NewButton(x, y, w, h int, label string) Button {
	return Button{Rect: image.Rect(x, y, x+w, y+h), Text: label}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b Button) Draw(screen *ebiten.Image, bg, border color.Color) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, border, false)
	if b.Text != "" {
		cx := b.Rect.Min.X + b.Rect.Dx()/2
		cy := b.Rect.Min.Y + b.Rect.Dy()/2 + config.TextOffsetY
		DrawCentered(screen, b.Text, cx, cy, config.TextLightColor)
	}
}
