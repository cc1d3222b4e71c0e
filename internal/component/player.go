// internal/component/player.go
package component

// Player holds the state specific to the player character.
type Player struct {
	Speed            float64
	InvulnTimer      float64 // seconds, damage is ignored while > 0
	LastAttack       float64 // game time of the last arrow
	HasAttacked      bool
	CanAttack        bool
	ShotsFired       int
	RegenAccumulator float64
	FacingLeft       bool
}
