package hud

import (
	"fmt"

	"ender-sword/internal/config"
	"ender-sword/internal/intent"
)

const blastDuration = 0.3

// FloatingText is a "-N" damage number drifting up while it fades.
type FloatingText struct {
	Text string
	X, Y float64
	Age  float64
}

// Rise is how far above its spawn point the text is drawn.
func (t FloatingText) Rise() float64 {
	return config.DamageNumberRise * t.Age / config.DamageNumberDuration
}

// Alpha goes from 1 to 0 over the text's life.
func (t FloatingText) Alpha() float64 {
	a := 1 - t.Age/config.DamageNumberDuration
	if a < 0 {
		return 0
	}
	return a
}

// Ring is the expanding circle of an ultra blast.
type Ring struct {
	X, Y, Radius float64
	Age          float64
}

// Progress goes from 0 to 1 while the ring expands.
func (r Ring) Progress() float64 {
	p := r.Age / blastDuration
	if p > 1 {
		return 1
	}
	return p
}

// Effects keeps the cosmetic leftovers of intents between frames. It is an
// intent.EffectSink.
type Effects struct {
	texts []FloatingText
	rings []Ring
}

func (e *Effects) Spawn(in intent.Intent) {
	switch in.Kind {
	case intent.DamageNumber:
		e.texts = append(e.texts, FloatingText{Text: fmt.Sprintf("-%d", in.Value), X: in.X, Y: in.Y})
	case intent.BlastFired:
		e.rings = append(e.rings, Ring{X: in.X, Y: in.Y, Radius: in.Radius})
	}
}

// Update ages everything and drops what has run its course.
func (e *Effects) Update(deltaTime float64) {
	texts := e.texts[:0]
	for _, t := range e.texts {
		t.Age += deltaTime
		if t.Age < config.DamageNumberDuration {
			texts = append(texts, t)
		}
	}
	e.texts = texts

	rings := e.rings[:0]
	for _, r := range e.rings {
		r.Age += deltaTime
		if r.Age < blastDuration {
			rings = append(rings, r)
		}
	}
	e.rings = rings
}

func (e *Effects) Texts() []FloatingText { return e.texts }
func (e *Effects) Rings() []Ring         { return e.rings }

func (e *Effects) Clear() {
	e.texts = nil
	e.rings = nil
}
