// internal/app/game.go
package app

import (
	"log/slog"

	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/errors"
	"ender-sword/internal/event"
	"ender-sword/internal/gate"
	"ender-sword/internal/input"
	"ender-sword/internal/intent"
	"ender-sword/internal/quiz"
	"ender-sword/internal/scheduler"
	"ender-sword/internal/system"
	"ender-sword/internal/utils"
)

// Game holds the main game state and logic. It never draws; a host calls
// Step once per frame and carries out the returned intents.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Scheduler       *scheduler.Scheduler
	Gate            *gate.Controller
	Rng             *utils.PRNGService
	fx              *intent.Buffer

	PlayerSystem       *system.PlayerSystem
	StatusEffectSystem *system.StatusEffectSystem
	PowerUpSystem      *system.PowerUpSystem
	AreaAttackSystem   *system.AreaAttackSystem
	CombatSystem       *system.CombatSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	CollisionSystem    *system.CollisionSystem
	ProgressionSystem  *system.ProgressionSystem
	WaveSystem         *system.WaveSystem
	ZoneSystem         *system.ZoneSystem
	StoreSystem        *system.StoreSystem
	MathSystem         *system.MathSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame builds a fresh run. A zero seed picks one from the clock and a nil
// catalog means the built-in power-ups.
func NewGame(seed int64, catalog []defs.PowerUpDefinition) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	sched := scheduler.New()
	fx := &intent.Buffer{}
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       sched,
		Gate:            gate.NewController(eventDispatcher),
		Rng:             rng,
		fx:              fx,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.AreaAttackSystem = system.NewAreaAttackSystem(ecs, eventDispatcher, fx)
	g.PowerUpSystem = system.NewPowerUpSystem(ecs, sched, g.AreaAttackSystem, fx)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, sched, fx)
	g.MovementSystem = system.NewMovementSystem(ecs, rng)
	g.ZoneSystem = system.NewZoneSystem(ecs, eventDispatcher, sched, fx)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, sched, g.ZoneSystem, fx)
	g.ProgressionSystem = system.NewProgressionSystem(ecs, eventDispatcher, fx)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, g.PlayerSystem, g.ProgressionSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, sched, rng)
	g.StoreSystem = system.NewStoreSystem(ecs, eventDispatcher, fx, catalog)
	g.MathSystem = system.NewMathSystem(ecs, eventDispatcher, sched, g.Gate, quiz.NewGenerator(rng), fx)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GateChanged, listener)
	eventDispatcher.Subscribe(event.PowerUpPurchased, listener)
	eventDispatcher.Subscribe(event.EnemyKilled, listener)

	g.PlayerSystem.Spawn()
	system.ResetPowerUps(ecs)
	g.ProgressionSystem.Init()
	g.WaveSystem.Start()

	slog.Debug("game created", "seed", rng.Seed(), "enemies", len(ecs.Enemies))
	return g
}

// FromOptions validates opts and loads the power-up catalog they name.
func FromOptions(opts config.Options) (*Game, error) {
	catalog, err := LoadCatalog(opts)
	if err != nil {
		return nil, err
	}
	return NewGame(opts.Seed, catalog), nil
}

// LoadCatalog validates opts and returns the catalog they name, nil for the
// built-in one. Hosts call it once and reuse the result on every restart.
func LoadCatalog(opts config.Options) ([]defs.PowerUpDefinition, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.PowerUpsPath == "" {
		return nil, nil
	}
	catalog, err := defs.LoadPowerUps(opts.PowerUpsPath)
	if err != nil {
		return nil, errors.Wrap(err, "load power-ups")
	}
	return catalog, nil
}

func (g *Game) World() *entity.ECS {
	return g.ECS
}

// Step advances the game by deltaTime seconds. Input for the open overlay is
// handled first; the simulation itself only runs while the gate is Running.
func (g *Game) Step(frame input.Frame, deltaTime float64) []intent.Intent {
	deltaTime = utils.Clamp(deltaTime, 0, config.MaxDeltaTime)

	g.handleGateInput(frame)

	running := g.Gate.Running()
	if running {
		g.ECS.GameTime += deltaTime
		g.ECS.Progression.Elapsed = g.ECS.GameTime
	}
	g.Scheduler.Advance(deltaTime, g.onTimer)

	if running && g.Gate.Running() {
		g.tick(frame, deltaTime)
	}
	return g.fx.Drain()
}

func (g *Game) tick(frame input.Frame, deltaTime float64) {
	g.PlayerSystem.Update(deltaTime)
	g.StatusEffectSystem.Update(deltaTime)
	if frame.Activate {
		if ability := g.PowerUpSystem.Activate(); ability != system.AbilityNone {
			slog.Debug("power-up activated", "ability", ability)
		}
	}
	g.PlayerSystem.Move(deltaTime, frame)
	g.CombatSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	if !g.Gate.Running() {
		return
	}
	g.ProgressionSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

func (g *Game) handleGateInput(frame input.Frame) {
	switch g.Gate.State() {
	case gate.Running:
		if frame.MathToggle {
			g.MathSystem.Toggle()
		}
	case gate.StoreOpen:
		switch {
		case frame.MathToggle:
			g.MathSystem.Toggle()
		case frame.StoreDismiss:
			g.Gate.CloseStore()
		case frame.Card > 0:
			g.StoreSystem.Select(frame.Card - 1)
			if frame.Confirm {
				g.confirmPurchase()
			}
		case frame.Confirm:
			g.confirmPurchase()
		}
	case gate.MathOpen:
		switch {
		case frame.MathToggle:
			g.MathSystem.Close()
		case frame.Answer > 0:
			g.MathSystem.Answer(frame.Answer - 1)
		}
	case gate.VictoryPaused:
		if frame.Continue {
			g.Gate.Continue()
		}
	}
}

func (g *Game) confirmPurchase() {
	if err := g.StoreSystem.Confirm(); err != nil {
		slog.Debug("purchase rejected", "code", errors.GetCode(err), "reason", errors.GetMessage(err))
	}
}

// onTimer routes a fired timer to its owner. Handlers look the entity up
// again, so a timer that outlived its entity does nothing.
func (g *Game) onTimer(msg scheduler.Message) {
	switch msg.Kind {
	case system.MsgSpawnTick:
		g.WaveSystem.OnSpawnTick()
	case system.MsgProjectileTimeout:
		g.ProjectileSystem.OnTimeout(msg.EntityID)
	case system.MsgZoneTick:
		g.ZoneSystem.OnTick(msg.EntityID)
	case system.MsgZoneExpire:
		g.ZoneSystem.OnExpire(msg.EntityID)
	case system.MsgFeedbackClose:
		g.MathSystem.OnFeedbackClose()
	default:
		slog.Warn("unhandled timer", "kind", msg.Kind, "entity", msg.EntityID)
	}
}
