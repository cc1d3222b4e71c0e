// internal/component/projectile.go
package component

import (
	"ender-sword/internal/scheduler"
	"ender-sword/internal/types"
)

type ProjectileKind int

const (
	ProjectileArrow ProjectileKind = iota
	ProjectilePoison
)

// Projectile flies along a direction fixed at launch. TargetID is a weak
// reference: it is resolved against the registry every tick.
type Projectile struct {
	Kind     ProjectileKind
	TargetID types.EntityID
	DirX     float64
	DirY     float64
	Speed    float64
	Damage   int
	Timeout  scheduler.Handle
}
