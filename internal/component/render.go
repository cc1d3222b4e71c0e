// internal/component/render.go
package component

import "image/color"

// Renderable says how a host should draw the entity
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
