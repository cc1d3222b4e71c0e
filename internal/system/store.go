// internal/system/store.go
package system

import (
	"fmt"
	"log/slog"

	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/errors"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
)

const (
	MsgMaxLevel      = "Max level reached!"
	MsgNotEnoughGold = "Not enough currency!"
)

// StoreSystem owns the power-up catalog and the purchase rules.
type StoreSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	fx              *intent.Buffer
	catalog         []defs.PowerUpDefinition
	selected        int // 0-based, -1 when nothing is highlighted
	message         string
}

func NewStoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, fx *intent.Buffer, catalog []defs.PowerUpDefinition) *StoreSystem {
	if catalog == nil {
		catalog = defs.DefaultPowerUps()
	}
	owned := make([]defs.PowerUpDefinition, len(catalog))
	copy(owned, catalog)
	return &StoreSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		catalog:         owned,
		selected:        -1,
	}
}

// Catalog returns a copy of the cards in store order.
func (s *StoreSystem) Catalog() []defs.PowerUpDefinition {
	out := make([]defs.PowerUpDefinition, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *StoreSystem) Selected() int   { return s.selected }
func (s *StoreSystem) Message() string { return s.message }

// SetMessage replaces the banner, for example with the wave-complete text.
func (s *StoreSystem) SetMessage(msg string) {
	s.message = msg
	s.fx.Push(intent.Intent{Kind: intent.StoreMessage, Text: msg})
}

// Select highlights a card. Out-of-range picks are ignored.
func (s *StoreSystem) Select(index int) bool {
	if index < 0 || index >= len(s.catalog) {
		return false
	}
	s.selected = index
	return true
}

// Confirm buys the highlighted card.
func (s *StoreSystem) Confirm() error {
	if s.selected < 0 {
		return errors.FailedPrecondition("no card selected")
	}
	return s.Purchase(s.selected)
}

// Purchase buys card index. A rejected purchase changes nothing except the
// store message.
func (s *StoreSystem) Purchase(index int) error {
	if index < 0 || index >= len(s.catalog) {
		return errors.InvalidArgumentf("power-up index %d out of range", index)
	}
	def := &s.catalog[index]
	progression := s.ecs.Progression

	if def.Maxed() {
		s.SetMessage(MsgMaxLevel)
		return errors.FailedPrecondition(MsgMaxLevel).WithMeta("power_up", string(def.ID))
	}
	if progression.Currency < def.Cost {
		s.SetMessage(MsgNotEnoughGold)
		return errors.FailedPrecondition(MsgNotEnoughGold).
			WithMeta("power_up", string(def.ID)).
			WithMeta("currency", progression.Currency)
	}

	progression.Currency -= def.Cost
	def.Level++
	SyncUnlocked(s.ecs.PowerUps, s.catalog)
	s.selected = -1
	s.SetMessage(fmt.Sprintf("Purchased %s!", def.Name))
	slog.Debug("power-up purchased", "id", def.ID, "cost", def.Cost, "currency", progression.Currency)

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpPurchased, Data: index})
	}
	return nil
}

// ResetLevels sets every card back to level 0 for the new wave.
func (s *StoreSystem) ResetLevels() {
	for i := range s.catalog {
		s.catalog[i].Level = 0
	}
	s.selected = -1
	SyncUnlocked(s.ecs.PowerUps, s.catalog)
}
