// internal/tui/keys.go
package tui

import (
	"github.com/gdamore/tcell/v2"

	"ender-sword/internal/input"
)

// Terminals report presses only, never releases. A direction counts as held
// for holdWindow seconds after its last press or auto-repeat.
const holdWindow = 0.15

const (
	dirLeft = iota
	dirRight
	dirUp
	dirDown
)

// Keys turns tcell key events into input frames.
type Keys struct {
	held    [4]float64 // time of the last press per direction
	pending input.Frame
	quit    bool
}

func NewKeys() *Keys {
	k := &Keys{}
	for i := range k.held {
		k.held[i] = -holdWindow
	}
	return k
}

// Handle records one key event seen at time now (seconds).
func (k *Keys) Handle(ev *tcell.EventKey, now float64) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyLeft:
		k.held[dirLeft] = now
	case tcell.KeyRight:
		k.held[dirRight] = now
	case tcell.KeyUp:
		k.held[dirUp] = now
	case tcell.KeyDown:
		k.held[dirDown] = now
	case tcell.KeyEnter:
		k.pending.Continue = true
		k.pending.Confirm = true
		k.pending.Start = true
	case tcell.KeyRune:
		k.handleRune(ev.Rune(), now)
	}
}

func (k *Keys) handleRune(r rune, now float64) {
	switch r {
	case 'a', 'A':
		k.held[dirLeft] = now
	case 'd', 'D':
		k.held[dirRight] = now
	case 'w', 'W':
		k.held[dirUp] = now
	case 's', 'S':
		k.held[dirDown] = now
	case 'e', 'E':
		k.pending.Activate = true
	case 'm', 'M':
		k.pending.MathToggle = true
	case 'r', 'R':
		k.pending.Restart = true
	case 'q', 'Q':
		k.quit = true
	case ' ':
		k.pending.StoreDismiss = true
		k.pending.Start = true
	case '1', '2', '3', '4':
		k.pending.Answer = int(r - '0')
		k.pending.Card = int(r - '0')
	}
}

// Frame returns the held directions at time now plus every one-shot key
// pressed since the previous call.
func (k *Keys) Frame(now float64) input.Frame {
	f := k.pending
	k.pending = input.Frame{}
	f.Left = now-k.held[dirLeft] < holdWindow
	f.Right = now-k.held[dirRight] < holdWindow
	f.Up = now-k.held[dirUp] < holdWindow
	f.Down = now-k.held[dirDown] < holdWindow
	return f
}

func (k *Keys) Quit() bool {
	return k.quit
}
