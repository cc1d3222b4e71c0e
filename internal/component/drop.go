package component

// Drop is a scroll left behind by a killed enemy.
type Drop struct {
	Value int // wave progress granted on pickup
}
