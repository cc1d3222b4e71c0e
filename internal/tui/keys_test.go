package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeysDirectionHeldWithinWindow(t *testing.T) {
	k := NewKeys()
	k.Handle(runeKey('a'), 1.0)
	k.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 1.0)

	f := k.Frame(1.1)
	assert.True(t, f.Left)
	assert.True(t, f.Up)
	assert.False(t, f.Right)

	f = k.Frame(1.2)
	assert.False(t, f.Left, "released once the hold window passes")
}

func TestKeysOneShotsAreDrained(t *testing.T) {
	k := NewKeys()
	k.Handle(runeKey('e'), 0)
	k.Handle(runeKey('m'), 0)
	k.Handle(runeKey('3'), 0)

	f := k.Frame(0)
	assert.True(t, f.Activate)
	assert.True(t, f.MathToggle)
	assert.Equal(t, 3, f.Answer)
	assert.Equal(t, 3, f.Card)

	f = k.Frame(0)
	assert.False(t, f.Activate)
	assert.Zero(t, f.Answer)
}

func TestKeysEnterAndSpace(t *testing.T) {
	k := NewKeys()
	k.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0)
	f := k.Frame(0)
	assert.True(t, f.Continue)
	assert.True(t, f.Confirm)
	assert.False(t, f.StoreDismiss)

	k.Handle(runeKey(' '), 0)
	f = k.Frame(0)
	assert.True(t, f.StoreDismiss)
	assert.False(t, f.Confirm)
}

func TestKeysQuit(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		runeKey('q'),
	} {
		k := NewKeys()
		assert.False(t, k.Quit())
		k.Handle(ev, 0)
		assert.True(t, k.Quit())
	}
}
