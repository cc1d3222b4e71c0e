package interfaces

import (
	"ender-sword/internal/entity"
	"ender-sword/internal/hud"
	"ender-sword/internal/input"
	"ender-sword/internal/intent"
)

//go:generate mockgen -destination=mock/mock.go -package=interfacesmock ender-sword/internal/interfaces Game,GameContext

// Game is what a host drives once per frame.
type Game interface {
	Step(frame input.Frame, deltaTime float64) []intent.Intent
	HUD() hud.Snapshot
	World() *entity.ECS
}
