// internal/tui/view.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/gate"
	"ender-sword/internal/hud"
)

var (
	styleDefault = tcell.StyleDefault
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleArrow   = tcell.StyleDefault.Foreground(tcell.ColorBeige)
	stylePoison  = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleZone    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Dim(true)
	styleScroll  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleStatus  = tcell.StyleDefault.Reverse(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	GlyphPlayer = '@'
	GlyphArrow  = '*'
	GlyphPoison = 'o'
	GlyphZone   = '~'
	GlyphScroll = '$'
)

// View draws the arena scaled to the terminal. The top row is the status line.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Cell maps an arena point to a terminal cell below the status line.
func (v *View) Cell(x, y float64) (int, int) {
	w, h := v.screen.Size()
	rows := h - 2
	if w < 1 || rows < 1 {
		return 0, 1
	}
	cx := int(x / config.ScreenWidth * float64(w))
	cy := int(y/config.ScreenHeight*float64(rows)) + 1
	return clampInt(cx, 0, w-1), clampInt(cy, 1, rows)
}

func (v *View) Draw(ecs *entity.ECS, s hud.Snapshot) {
	v.screen.Clear()

	for _, id := range ecs.ZoneIDs() {
		pos := ecs.Positions[id]
		zone := ecs.Zones[id]
		v.fillCircle(pos.X, pos.Y, zone.Radius, GlyphZone, styleZone)
	}
	for _, id := range ecs.DropIDs() {
		pos := ecs.Positions[id]
		v.put(pos.X, pos.Y, GlyphScroll, styleScroll)
	}
	for _, id := range ecs.EnemyIDs() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		style := styleEnemy
		if _, flashing := ecs.DamageFlashes[id]; flashing {
			style = styleFlash
		}
		v.put(pos.X, pos.Y, defs.EnemyLibrary[ecs.Enemies[id].Skin].Visuals.Glyph, style)
	}
	for _, id := range ecs.ProjectileIDs() {
		pos := ecs.Positions[id]
		if ecs.Projectiles[id].Kind == component.ProjectilePoison {
			v.put(pos.X, pos.Y, GlyphPoison, stylePoison)
		} else {
			v.put(pos.X, pos.Y, GlyphArrow, styleArrow)
		}
	}
	if pos := ecs.PlayerPosition(); pos != nil {
		v.put(pos.X, pos.Y, GlyphPlayer, stylePlayer)
	}

	v.drawStatus(s)
	v.drawOverlay(s)
	v.screen.Show()
}

// StatusLine is the top row text.
func StatusLine(s hud.Snapshot) string {
	line := fmt.Sprintf(" HP %s | %s %s | %s | Kills %d | Gold %d",
		s.HealthText, s.WaveText, s.ProgressText, s.Clock, s.Kills, s.Currency)
	for _, p := range s.PowerUps {
		if !p.Unlocked {
			continue
		}
		switch {
		case p.Active:
			line += fmt.Sprintf(" | %s!", p.Name)
		case p.Cooldown > 0:
			line += fmt.Sprintf(" | %s %.0fs", p.Name, p.Cooldown)
		case p.Uses >= 0:
			line += fmt.Sprintf(" | %s x%d", p.Name, p.Uses)
		default:
			line += " | " + p.Name
		}
	}
	return line
}

func (v *View) drawStatus(s hud.Snapshot) {
	w, h := v.screen.Size()
	v.text(0, 0, padRight(StatusLine(s), w), styleStatus)
	if s.AwaitingMath && s.Gate == gate.Running.String() {
		v.text(0, h-1, "Attack locked! Press M to answer the math challenge", styleBad)
	}
}

func (v *View) drawOverlay(s hud.Snapshot) {
	var lines []string
	style := styleDefault
	switch s.Gate {
	case gate.StoreOpen.String():
		lines = append(lines, s.StoreMessage, "")
		for i, c := range s.Cards {
			mark := " "
			if c.Selected {
				mark = ">"
			}
			lines = append(lines, fmt.Sprintf("%s%d %s  Lv %d/%d  %d gold", mark, i+1, c.Name, c.Level, c.MaxLevel, c.Cost))
		}
		lines = append(lines, "", "1-4 pick, Enter buy, Space continue, M math")
	case gate.MathOpen.String():
		lines = append(lines, "MATH CHALLENGE", "", s.Question+" = ?", "")
		for i, a := range s.Answers {
			lines = append(lines, fmt.Sprintf("%d) %d", i+1, a))
		}
		if s.Answered {
			lines = append(lines, "", s.Feedback)
			style = styleBad
			if s.FeedbackCorrect {
				style = styleGood
			}
		}
	case gate.VictoryPaused.String():
		lines = []string{s.VictoryText, "", "Press Enter to continue"}
		style = styleGood
	case gate.GameOver.String():
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("Waves survived: %d", s.WavesSurvived),
			fmt.Sprintf("Total kills: %d", s.TotalKills),
			fmt.Sprintf("Time: %s", s.Clock),
			"",
			"Press R to restart, Q to quit",
		}
		style = styleBad
	default:
		return
	}

	w, h := v.screen.Size()
	top := (h - len(lines)) / 2
	for i, line := range lines {
		v.text((w-len(line))/2, top+i, line, style)
	}
}

func (v *View) put(x, y float64, r rune, style tcell.Style) {
	cx, cy := v.Cell(x, y)
	v.screen.SetContent(cx, cy, r, nil, style)
}

func (v *View) fillCircle(x, y, radius float64, r rune, style tcell.Style) {
	x0, y0 := v.Cell(x-radius, y-radius)
	x1, y1 := v.Cell(x+radius, y+radius)
	cx, cy := v.Cell(x, y)
	rx := float64(max(x1-cx, 1))
	ry := float64(max(y1-cy, 1))
	for j := y0; j <= y1; j++ {
		for i := x0; i <= x1; i++ {
			dx := float64(i-cx) / rx
			dy := float64(j-cy) / ry
			if dx*dx+dy*dy <= 1 {
				v.screen.SetContent(i, j, r, nil, style)
			}
		}
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func padRight(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
