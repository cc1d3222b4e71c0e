// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	MaxDeltaTime = 0.06

	PlayerStartX        = 480.0
	PlayerStartY        = 420.0
	PlayerMaxHealth     = 30
	PlayerBaseSpeed     = 200.0
	PlayerDashSpeed     = 300.0
	PlayerRadius        = 14.0
	PlayerInvulnSeconds = 0.7

	BaseRegenRate     = 0.25
	RecoveryRegenRate = 0.5

	AttackCooldown    = 0.5 // seconds between arrows
	AttackRange       = 120.0
	ShotsBeforeQuiz   = 8
	KillsPerQuizGate  = 5
	ArrowSpeed        = 500.0
	ArrowLifetime     = 0.3
	ArrowDamage       = 10
	ArrowHitRadius    = 18.0
	DropPickupRadius  = 24.0
	DropWaveProgress  = 10
	ContactRadius     = 16.0
	CrowdRadius       = 32.0
	ContactDamageStep = 3
	ContactCrowdCap   = 3
	ContactDamageMax  = 6

	EnemyMaxHealth      = 20
	EnemyBaseSpeed      = 100.0
	EnemySpeedPerWave   = 0.04
	EnemyRadius         = 12.0
	MaxEnemies          = 10
	InitialEnemies      = 3
	MaxSpawnPerTick     = 3
	SpawnInterval       = 2.0
	SpawnAttempts       = 10
	SpawnMinSeparation  = 240.0
	SpawnEdgeChance     = 0.7
	SpawnInteriorMargin = 100
	ZigzagChance        = 0.12
	ZigzagForward       = 0.7
	ZigzagLateral       = 0.18
	ZigzagTickStep      = 0.012
	ZigzagFlipAfter     = 1.5
	OffsetRadiusMin     = 40
	OffsetRadiusMax     = 80
	TargetJitter        = 3
	SeparationRadius    = 60.0
	SeparationStrength  = 180.0

	WaveTargetBase    = 50
	WaveTargetPerWave = 30
	VictoryWave       = 7

	DashDuration      = 5.0
	DashUses          = 2
	UltraUses         = 2
	UltraCooldown     = 2.0
	UltraDamage       = 9999
	UltraAreaFraction = 0.7
	PoisonCooldown    = 10.0
	PoisonBallSpeed   = 220.0
	PoisonBallTimeout = 2.0
	PoisonBallRadius  = 20.0
	PoisonZoneRadius  = 90.0
	PoisonTickDamage  = 7
	PoisonTickEvery   = 0.4
	PoisonTickRepeats = 6
	PoisonZoneLife    = 3.2

	QuizReward        = 10
	QuizFeedbackDelay = 1.5
	QuizAnswers       = 4
	QuizFactorMin     = 2
	QuizFactorMax     = 9
	QuizDistractorMin = 4
	QuizDistractorMax = 81

	DamageFlashDuration  = 0.15
	DamageNumberRise     = 30.0
	DamageNumberDuration = 0.7

	CooldownArcRadius = 24.0
	CooldownArcWidth  = 3.0

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundDojo    = color.RGBA{58, 40, 32, 255}
	BackgroundVillage = color.RGBA{46, 74, 44, 255}
	BackgroundGate    = color.RGBA{40, 16, 48, 255}
	PlayerColor       = color.RGBA{90, 200, 255, 255}
	PlayerDashColor   = color.RGBA{90, 200, 255, 90}
	EndermanColor     = color.RGBA{30, 20, 40, 255}
	EndermanEyeColor  = color.RGBA{200, 80, 255, 255}
	SpiderColor       = color.RGBA{80, 60, 50, 255}
	SpiderEyeColor    = color.RGBA{255, 40, 40, 255}
	ArrowColor        = color.RGBA{240, 230, 200, 255}
	PoisonBallColor   = color.RGBA{120, 255, 80, 255}
	PoisonZoneColor   = color.RGBA{80, 200, 60, 90}
	BlastColor        = color.RGBA{255, 220, 120, 120}
	ScrollColor       = color.RGBA{240, 210, 120, 255}
	HealthBarColor    = color.RGBA{220, 60, 60, 255}
	WaveBarColor      = color.RGBA{255, 180, 40, 255}
	BarBackColor      = color.RGBA{30, 30, 30, 200}
	PanelColor        = color.RGBA{0, 17, 34, 230}
	PanelStrokeColor  = color.RGBA{0, 255, 136, 200}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	CorrectColor      = color.RGBA{0, 255, 136, 255}
	IncorrectColor    = color.RGBA{255, 68, 68, 255}
	CooldownColor     = color.RGBA{0, 0, 0, 160}
	CooldownArcColor  = color.RGBA{255, 34, 34, 178}
	LockedColor       = color.RGBA{90, 90, 90, 255}
)

// StrokeWidth is the outline thickness for panels and icons
var StrokeWidth float32 = 2
