// internal/component/visual.go
package component

// DamageFlash marks an entity that was just hit.
type DamageFlash struct {
	Timer    float64
	Duration float64
}
