// internal/system/progression.go
package system

import (
	"log/slog"

	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// ProgressionSystem collects scrolls and moves the game from wave to wave.
type ProgressionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	fx              *intent.Buffer
}

func NewProgressionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, fx *intent.Buffer) *ProgressionSystem {
	return &ProgressionSystem{ecs: ecs, eventDispatcher: eventDispatcher, fx: fx}
}

// Init sets the counters for the first wave.
func (s *ProgressionSystem) Init() {
	p := s.ecs.Progression
	p.WaveTarget = defs.WaveTarget(p.Wave)
	p.Theme = defs.ThemeForWave(p.Wave)
	s.fx.Push(intent.Intent{Kind: intent.BackgroundChanged, Text: string(p.Theme)})
}

// Update picks up every scroll the player is standing on. It stops early
// once a wave advance has cleared the field.
func (s *ProgressionSystem) Update(deltaTime float64) {
	pos := s.ecs.PlayerPosition()
	if pos == nil {
		return
	}
	for _, id := range s.ecs.DropIDs() {
		dp := s.ecs.Positions[id]
		if dp == nil {
			continue
		}
		if utils.Distance(pos.X, pos.Y, dp.X, dp.Y) >= config.DropPickupRadius {
			continue
		}
		if s.Collect(id) {
			return
		}
	}
}

// Collect applies one scroll. Returns true when it finished the wave.
func (s *ProgressionSystem) Collect(dropID types.EntityID) bool {
	drop, ok := s.ecs.Drops[dropID]
	if !ok {
		return false
	}
	value := drop.Value
	s.ecs.RemoveEntity(dropID)

	p := s.ecs.Progression
	p.Scrolls++
	p.WaveProgress += value
	p.KillsThisWave = p.WaveProgress / config.DropWaveProgress
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.DropCollected, Data: dropID})
	}

	return s.checkThresholds("scrolls")
}

// Credit adds wave progress earned without a pickup, a dash kill, and
// applies the same thresholds. Returns true when it finished the wave.
func (s *ProgressionSystem) Credit(value int) bool {
	s.ecs.Progression.WaveProgress += value
	return s.checkThresholds("dash")
}

// checkThresholds: every fifth step of progress locks attacking, the wave
// target advances the wave.
func (s *ProgressionSystem) checkThresholds(reason string) bool {
	p := s.ecs.Progression
	if steps := p.WaveProgress / config.DropWaveProgress; steps > 0 && steps%config.KillsPerQuizGate == 0 {
		RequireMath(s.ecs, s.eventDispatcher, reason)
	}
	if p.WaveProgress >= p.WaveTarget {
		s.AdvanceWave()
		return true
	}
	return false
}

// AdvanceWave bumps the wave and announces it. Clearing the field and
// opening the store or victory gate is left to WaveAdvanced listeners.
func (s *ProgressionSystem) AdvanceWave() {
	p := s.ecs.Progression
	p.Wave++
	p.WaveProgress = 0
	p.KillsThisWave = 0
	p.WaveTarget = defs.WaveTarget(p.Wave)

	p.Theme = defs.ThemeForWave(p.Wave)
	s.fx.Push(intent.Intent{Kind: intent.BackgroundChanged, Text: string(p.Theme)})
	s.fx.Push(intent.Intent{Kind: intent.WaveAdvanced, Value: p.Wave})

	victory := defs.IsVictoryWave(p.Wave)
	slog.Info("wave advanced", "wave", p.Wave, "target", p.WaveTarget, "victory", victory)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveAdvanced,
			Data: event.WaveAdvancedData{Wave: p.Wave, Victory: victory},
		})
	}
}
