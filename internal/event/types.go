// internal/event/types.go
package event

import "ender-sword/internal/types"

const (
	EnemyKilled      EventType = "EnemyKilled"      // EnemyKilledData
	DropCollected    EventType = "DropCollected"    // types.EntityID of the drop
	WaveAdvanced     EventType = "WaveAdvanced"     // WaveAdvancedData
	PlayerDamaged    EventType = "PlayerDamaged"    // int, damage taken
	PlayerDied       EventType = "PlayerDied"       // nil
	MathRequired     EventType = "MathRequired"     // string, the reason
	MathAnswered     EventType = "MathAnswered"     // bool, correct or not
	PowerUpPurchased EventType = "PowerUpPurchased" // int, catalog index
	GateChanged      EventType = "GateChanged"      // GateChangedData
)

type EnemyKilledData struct {
	EnemyID types.EntityID
	DropID  types.EntityID
	X, Y    float64
	Source  string
}

type WaveAdvancedData struct {
	Wave    int
	Victory bool
}

// GateChangedData uses plain strings so the gate package can stay a leaf.
type GateChangedData struct {
	From, To string
}
