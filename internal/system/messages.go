package system

import "ender-sword/internal/scheduler"

// Timer messages. Each carries at most an entity id which the handler
// resolves against the registry when the timer fires.
const (
	MsgSpawnTick         scheduler.MessageKind = "spawn_tick"
	MsgProjectileTimeout scheduler.MessageKind = "projectile_timeout"
	MsgZoneTick          scheduler.MessageKind = "zone_tick"
	MsgZoneExpire        scheduler.MessageKind = "zone_expire"
	MsgFeedbackClose     scheduler.MessageKind = "feedback_close"
)
