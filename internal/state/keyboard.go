// internal/state/keyboard.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ender-sword/internal/input"
)

var digitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// PollKeyboard reads WASD/arrows and the action keys from ebiten.
func PollKeyboard() input.Frame {
	f := input.Frame{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),

		Activate:     inpututil.IsKeyJustPressed(ebiten.KeyE),
		MathToggle:   inpututil.IsKeyJustPressed(ebiten.KeyM),
		StoreDismiss: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Continue:     inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Confirm:      inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Restart:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Start:        inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			f.Answer = i + 1
			f.Card = i + 1
		}
	}
	return f
}
