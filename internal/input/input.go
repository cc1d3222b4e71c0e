// Package input describes one frame of player input, independent of the
// device that produced it.
package input

// Frame holds the held directions plus the keys pressed since the last frame.
// Answer and Card are 1-based picks; 0 means nothing was picked.
type Frame struct {
	Left, Right, Up, Down bool

	Activate     bool // power-up
	MathToggle   bool
	StoreDismiss bool
	Continue     bool // victory screen
	Confirm      bool // buy the selected card
	Restart      bool
	Start        bool // intro screen

	Answer int
	Card   int
}

// Axis turns the held directions into -1/0/+1 per axis. Left wins over
// right and up wins over down when both are held.
func (f Frame) Axis() (x, y float64) {
	switch {
	case f.Left:
		x = -1
	case f.Right:
		x = 1
	}
	switch {
	case f.Up:
		y = -1
	case f.Down:
		y = 1
	}
	return x, y
}

// Merge combines two sources, for example keyboard and mouse.
func (f Frame) Merge(o Frame) Frame {
	f.Left = f.Left || o.Left
	f.Right = f.Right || o.Right
	f.Up = f.Up || o.Up
	f.Down = f.Down || o.Down
	f.Activate = f.Activate || o.Activate
	f.MathToggle = f.MathToggle || o.MathToggle
	f.StoreDismiss = f.StoreDismiss || o.StoreDismiss
	f.Continue = f.Continue || o.Continue
	f.Confirm = f.Confirm || o.Confirm
	f.Restart = f.Restart || o.Restart
	f.Start = f.Start || o.Start
	if f.Answer == 0 {
		f.Answer = o.Answer
	}
	if f.Card == 0 {
		f.Card = o.Card
	}
	return f
}
