// Package gate is the overlay state machine. Exactly one gate is current;
// anything other than Running suspends the simulation.
package gate

import (
	"log/slog"

	"ender-sword/internal/event"
)

type State int

const (
	Running State = iota
	StoreOpen
	MathOpen
	VictoryPaused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case StoreOpen:
		return "store"
	case MathOpen:
		return "math"
	case VictoryPaused:
		return "victory"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Controller owns the current gate. Requests that make no sense in the
// current gate are ignored and report false, so a repeated key press toggles
// at most once and never stacks overlays.
type Controller struct {
	state       State
	storeActive bool // survives a store -> math detour
	dispatcher  *event.Dispatcher
}

func NewController(dispatcher *event.Dispatcher) *Controller {
	return &Controller{state: Running, dispatcher: dispatcher}
}

func (c *Controller) State() State      { return c.state }
func (c *Controller) Running() bool     { return c.state == Running }
func (c *Controller) StoreActive() bool { return c.storeActive }

// OpenStore is the wave-cleared transition.
func (c *Controller) OpenStore() bool {
	if c.state != Running {
		return false
	}
	c.storeActive = true
	c.set(StoreOpen)
	return true
}

// CloseStore resumes play from the store, after a purchase or a dismiss.
func (c *Controller) CloseStore() bool {
	if c.state != StoreOpen {
		return false
	}
	c.storeActive = false
	c.set(Running)
	return true
}

// ToggleMath opens the challenge from Running or the store, or closes it.
func (c *Controller) ToggleMath() bool {
	switch c.state {
	case Running, StoreOpen:
		c.set(MathOpen)
		return true
	case MathOpen:
		return c.CloseMath()
	}
	return false
}

// CloseMath returns to the store when the challenge was opened from it.
func (c *Controller) CloseMath() bool {
	if c.state != MathOpen {
		return false
	}
	if c.storeActive {
		c.set(StoreOpen)
	} else {
		c.set(Running)
	}
	return true
}

func (c *Controller) Victory() bool {
	if c.state != Running {
		return false
	}
	c.set(VictoryPaused)
	return true
}

// Continue leaves the victory screen straight into the store.
func (c *Controller) Continue() bool {
	if c.state != VictoryPaused {
		return false
	}
	c.storeActive = true
	c.set(StoreOpen)
	return true
}

// EndGame is terminal; only a new game leaves it.
func (c *Controller) EndGame() bool {
	if c.state == GameOver {
		return false
	}
	c.storeActive = false
	c.set(GameOver)
	return true
}

func (c *Controller) set(to State) {
	from := c.state
	c.state = to
	slog.Debug("gate changed", "from", from.String(), "to", to.String())
	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{
			Type: event.GateChanged,
			Data: event.GateChangedData{From: from.String(), To: to.String()},
		})
	}
}
