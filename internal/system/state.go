// internal/system/state.go
package system

import (
	"fmt"
	"log/slog"

	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/interfaces"
)

// StateSystem reacts to wave and life events by resetting the field and
// choosing the next overlay.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveAdvanced, ss)
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveAdvanced:
		data, ok := e.Data.(event.WaveAdvancedData)
		if !ok {
			return
		}
		s.EndWave(data.Wave, data.Victory)
	case event.PlayerDied:
		p := s.ecs.Progression
		slog.Info("game over", "wave", p.Wave, "kills", p.TotalKills, "elapsed", p.Elapsed)
		s.gameContext.EndGame()
	}
}

// EndWave clears the field for the new wave and opens its overlay.
func (s *StateSystem) EndWave(wave int, victory bool) {
	s.gameContext.ClearEnemies()
	s.gameContext.ClearProjectiles()
	s.gameContext.ClearEffects()
	s.gameContext.ResetPowerUps()

	if victory {
		s.gameContext.ShowVictory()
		return
	}
	s.gameContext.OpenStore(StoreBanner(wave))
}

// StoreBanner is the "Wave N complete!" text for the store opened before wave.
func StoreBanner(wave int) string {
	return fmt.Sprintf("Wave %d complete! Power up before Wave %d", wave-1, wave)
}
