// internal/ui/math_panel.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
	"ender-sword/internal/hud"
)

const (
	mathWidth  = 420
	mathHeight = 240
	answerSize = 80
	answerGap  = 16
)

// MathPanel is the quiz overlay.
type MathPanel struct {
	X, Y    int
	answers []Button
}

func NewMathPanel() *MathPanel {
	p := &MathPanel{
		X: (config.ScreenWidth - mathWidth) / 2,
		Y: (config.ScreenHeight - mathHeight) / 2,
	}
	startX := p.X + (mathWidth-(4*answerSize+3*answerGap))/2
	for i := 0; i < config.QuizAnswers; i++ {
		p.answers = append(p.answers, NewButton(startX+i*(answerSize+answerGap), p.Y+80, answerSize, answerSize/2, ""))
	}
	return p
}

// AnswerAt returns the 1-based answer under (x, y), 0 for none.
func (p *MathPanel) AnswerAt(x, y int) int {
	for i, b := range p.answers {
		if b.Contains(x, y) {
			return i + 1
		}
	}
	return 0
}

func (p *MathPanel) Draw(screen *ebiten.Image, s hud.Snapshot) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), mathWidth, mathHeight, config.PanelColor, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), mathWidth, mathHeight, config.StrokeWidth, config.PanelStrokeColor, false)

	cx := p.X + mathWidth/2
	DrawCentered(screen, s.Question, cx, p.Y+48, config.TextLightColor)

	for i, v := range s.Answers {
		if i >= len(p.answers) {
			break
		}
		b := p.answers[i]
		b.Text = strconv.Itoa(i+1) + ")  " + strconv.Itoa(v)
		b.Draw(screen, config.PanelColor, config.PanelStrokeColor)
	}

	if s.Feedback != "" {
		c := config.IncorrectColor
		if s.FeedbackCorrect {
			c = config.CorrectColor
		}
		DrawCentered(screen, s.Feedback, cx, p.Y+170, c)
	}
	DrawCentered(screen, "1-4 answer, M close", cx, p.Y+mathHeight-16, config.TextLightColor)
}
