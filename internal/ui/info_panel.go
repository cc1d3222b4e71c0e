// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
	"ender-sword/internal/hud"
)

const (
	panelWidth  = 720
	panelHeight = 360
	cardWidth   = 160
	cardHeight  = 200
	cardGap     = 16
	lineHeight  = 16
)

// StorePanel draws the between-wave store and maps clicks onto its cards.
type StorePanel struct {
	X, Y  int
	cards []Button
}

func NewStorePanel() *StorePanel {
	p := &StorePanel{
		X: (config.ScreenWidth - panelWidth) / 2,
		Y: (config.ScreenHeight - panelHeight) / 2,
	}
	startX := p.X + (panelWidth-(4*cardWidth+3*cardGap))/2
	for i := 0; i < 4; i++ {
		p.cards = append(p.cards, NewButton(startX+i*(cardWidth+cardGap), p.Y+70, cardWidth, cardHeight, ""))
	}
	return p
}

// CardAt returns the 1-based card under (x, y), 0 for none.
func (p *StorePanel) CardAt(x, y int) int {
	for i, b := range p.cards {
		if b.Contains(x, y) {
			return i + 1
		}
	}
	return 0
}

func (p *StorePanel) Draw(screen *ebiten.Image, s hud.Snapshot) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), panelWidth, panelHeight, config.PanelColor, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), panelWidth, panelHeight, config.StrokeWidth, config.PanelStrokeColor, false)

	cx := p.X + panelWidth/2
	DrawCentered(screen, "STORE", cx, p.Y+24, config.TextLightColor)
	DrawCentered(screen, s.StoreMessage, cx, p.Y+44, config.WaveBarColor)
	DrawCentered(screen, fmt.Sprintf("Currency: %d", s.Currency), cx, p.Y+60, config.TextLightColor)

	for i, card := range s.Cards {
		if i >= len(p.cards) {
			break
		}
		b := p.cards[i]
		border := config.PanelStrokeColor
		if card.Selected {
			border = config.WaveBarColor
		}
		bg := config.PanelColor
		if !card.Affordable {
			bg = config.LockedColor
		}
		b.Draw(screen, bg, border)

		x := b.Rect.Min.X + 8
		y := b.Rect.Min.Y + 20
		DrawText(screen, fmt.Sprintf("%d. %s", i+1, card.Name), x, y, config.TextLightColor)
		y += lineHeight
		DrawText(screen, fmt.Sprintf("Cost: %d", card.Cost), x, y, config.TextLightColor)
		y += lineHeight
		DrawText(screen, fmt.Sprintf("Level: %d/%d", card.Level, card.MaxLevel), x, y, config.TextLightColor)
		y += lineHeight * 2
		for _, line := range wrap(card.Description, (cardWidth-16)/config.TextCharWidth) {
			DrawText(screen, line, x, y, config.TextLightColor)
			y += lineHeight
		}
	}

	DrawCentered(screen, "1-4 select, Enter buy, M math, Space close", cx, p.Y+panelHeight-16, config.TextLightColor)
}

// wrap splits s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	line := ""
	word := ""
	flush := func() {
		switch {
		case word == "":
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
