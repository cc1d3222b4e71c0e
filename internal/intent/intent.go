// Package intent holds the effects a simulation step asks its host to carry
// out. The core never draws or plays anything itself.
package intent

import "ender-sword/internal/types"

type Kind string

const (
	SoundHit          Kind = "sound_hit"
	DamageNumber      Kind = "damage_number"      // X, Y, Value
	ProjectileFired   Kind = "projectile_fired"   // EntityID, X, Y
	ZoneSpawned       Kind = "zone_spawned"       // EntityID, X, Y, Radius
	BlastFired        Kind = "blast_fired"        // X, Y, Radius
	OverlayChanged    Kind = "overlay_changed"    // Text is the gate name
	BackgroundChanged Kind = "background_changed" // Text is the theme
	StoreMessage      Kind = "store_message"      // Text
	MathFeedback      Kind = "math_feedback"      // Text, Value 1 when correct
	WaveAdvanced      Kind = "wave_advanced"      // Value is the new wave
	GameOver          Kind = "game_over"
)

type Intent struct {
	Kind     Kind
	EntityID types.EntityID
	X, Y     float64
	Radius   float64
	Value    int
	Text     string
}

// Buffer collects intents during a step.
type Buffer struct {
	items []Intent
}

func (b *Buffer) Push(in Intent) {
	b.items = append(b.items, in)
}

// Drain returns everything pushed since the last Drain.
func (b *Buffer) Drain() []Intent {
	out := b.items
	b.items = nil
	return out
}

func (b *Buffer) Len() int {
	return len(b.items)
}
