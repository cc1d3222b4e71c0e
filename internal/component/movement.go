// internal/component/movement.go
package component

// Position is in world pixels
type Position struct {
	X, Y float64
}

// Velocity in pixels per second
type Velocity struct {
	X, Y float64
}
