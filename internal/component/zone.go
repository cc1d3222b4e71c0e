package component

import "ender-sword/internal/scheduler"

// EffectZone is a poison cloud damaging enemies inside Radius on every tick.
type EffectZone struct {
	Radius     float64
	TickDamage int
	Ticker     scheduler.Handle
	Expiry     scheduler.Handle
}
