// internal/system/wave.go
package system

import (
	"log/slog"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/scheduler"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// WaveSystem is the enemy spawner. It runs on a repeating timer on the
// simulation lane, so it stops whenever an overlay is open.
type WaveSystem struct {
	ecs        *entity.ECS
	scheduler  *scheduler.Scheduler
	rng        *utils.PRNGService
	spawnTimer scheduler.Handle
}

func NewWaveSystem(ecs *entity.ECS, sched *scheduler.Scheduler, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:       ecs,
		scheduler: sched,
		rng:       rng,
	}
}

// Start spawns the opening enemies and arms the spawn timer.
func (s *WaveSystem) Start() {
	for i := 0; i < config.InitialEnemies; i++ {
		s.SpawnEnemy()
	}
	if s.spawnTimer != 0 {
		s.scheduler.Cancel(s.spawnTimer)
	}
	s.spawnTimer = s.scheduler.ScheduleRepeating(
		scheduler.LaneSim,
		config.SpawnInterval,
		scheduler.Forever,
		scheduler.Message{Kind: MsgSpawnTick},
	)
}

// OnSpawnTick spawns up to SpawnCount enemies. Returns how many appeared.
func (s *WaveSystem) OnSpawnTick() int {
	count := defs.SpawnCount(s.ecs.Progression.Wave, len(s.ecs.Enemies))
	spawned := 0
	for i := 0; i < count; i++ {
		if _, ok := s.SpawnEnemy(); ok {
			spawned++
		}
	}
	return spawned
}

// SpawnEnemy places one enemy for the current wave. When no spot passes the
// separation check the spawn is dropped, not retried.
func (s *WaveSystem) SpawnEnemy() (types.EntityID, bool) {
	if len(s.ecs.Enemies) >= config.MaxEnemies {
		return 0, false
	}
	x, y, ok := s.pickSpawnPoint()
	if !ok {
		slog.Debug("spawn skipped, no free spot", "enemies", len(s.ecs.Enemies))
		return 0, false
	}

	wave := s.ecs.Progression.Wave
	def := defs.EnemyForWave(wave)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
		HasStroke: true,
	}

	enemy := &component.Enemy{
		Speed:     defs.EnemySpeed(wave),
		Pattern:   component.PatternDirect,
		ZigzagDir: 1,
		Skin:      def.Skin,
	}
	if s.rng.Chance(config.ZigzagChance) {
		enemy.Pattern = component.PatternZigzag
	}
	angle := s.rng.Angle()
	radius := float64(s.rng.Between(config.OffsetRadiusMin, config.OffsetRadiusMax))
	enemy.OffsetX, enemy.OffsetY = polar(angle, radius)
	s.ecs.Enemies[id] = enemy

	return id, true
}

func (s *WaveSystem) pickSpawnPoint() (float64, float64, bool) {
	for try := 0; try < config.SpawnAttempts; try++ {
		var x, y int
		if s.rng.Chance(config.SpawnEdgeChance) {
			switch s.rng.Between(0, 3) {
			case 0:
				x, y = s.rng.Between(0, config.ScreenWidth), 0
			case 1:
				x, y = config.ScreenWidth, s.rng.Between(0, config.ScreenHeight)
			case 2:
				x, y = s.rng.Between(0, config.ScreenWidth), config.ScreenHeight
			default:
				x, y = 0, s.rng.Between(0, config.ScreenHeight)
			}
		} else {
			m := config.SpawnInteriorMargin
			x = s.rng.Between(m, config.ScreenWidth-m)
			y = s.rng.Between(m, config.ScreenHeight-m)
		}
		if s.farFromEverything(float64(x), float64(y)) {
			return float64(x), float64(y), true
		}
	}
	return 0, 0, false
}

func (s *WaveSystem) farFromEverything(x, y float64) bool {
	if p := s.ecs.PlayerPosition(); p != nil {
		if utils.Distance(p.X, p.Y, x, y) < config.SpawnMinSeparation {
			return false
		}
	}
	for id := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		if pos != nil && utils.Distance(pos.X, pos.Y, x, y) < config.SpawnMinSeparation {
			return false
		}
	}
	return true
}
