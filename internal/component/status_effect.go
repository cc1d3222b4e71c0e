// internal/component/status_effect.go
package component

type DashState struct {
	Unlocked bool
	Uses     int
	Active   bool
	Timer    float64 // seconds left while Active
}

type RecoveryState struct {
	Unlocked bool
}

type PoisonState struct {
	Unlocked bool
	Cooldown float64
}

type UltraState struct {
	Unlocked bool
	Uses     int
	Cooldown float64
}

// PowerUpState is the runtime side of the power-up catalog. It is rebuilt at
// the start of every wave.
type PowerUpState struct {
	Dash     DashState
	Recovery RecoveryState
	Poison   PoisonState
	Ultra    UltraState
}
