// internal/interfaces/game_context.go
package interfaces

// GameContext is the part of the game the state system drives on wave and
// life events.
type GameContext interface {
	ClearEnemies()
	ClearProjectiles()
	ClearEffects()
	ResetPowerUps()
	OpenStore(message string)
	ShowVictory()
	EndGame()
}
