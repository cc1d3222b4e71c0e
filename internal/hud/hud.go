// Package hud is the read-only picture of a game a host draws from.
package hud

import "ender-sword/internal/defs"

// PowerUpIcon is one slot of the ability bar.
type PowerUpIcon struct {
	ID       defs.PowerUpID
	Name     string
	Unlocked bool
	Active   bool
	Cooldown float64 // seconds left, 0 when ready
	Uses     int     // -1 for abilities without a counter
}

type StoreCard struct {
	Name        string
	Description string
	Cost        int
	Level       int
	MaxLevel    int
	Selected    bool
	Affordable  bool
}

// Snapshot is built fresh on every call and owns no game state.
type Snapshot struct {
	Gate string

	Health       int
	MaxHealth    int
	HealthText   string // "h/max"
	Wave         int
	WaveText     string // "Wave N"
	WaveProgress int
	WaveTarget   int
	ProgressText string // "p/target"
	Clock        string // mm:ss
	Kills        int
	TotalKills   int
	Currency     int
	Scrolls      int
	Theme        string
	AwaitingMath bool
	Dashing      bool
	Cooldown     float64 // attack cooldown run so far, 1 is ready

	PowerUps []PowerUpIcon

	StoreMessage string
	Cards        []StoreCard

	Question        string
	Answers         []int
	Answered        bool
	Feedback        string
	FeedbackCorrect bool

	VictoryText   string
	WavesSurvived int
}

// Fraction is v/max clamped to [0, 1], for bars.
func Fraction(v, max int) float64 {
	if max <= 0 || v <= 0 {
		return 0
	}
	if v >= max {
		return 1
	}
	return float64(v) / float64(max)
}
