package battle

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Event types published on the bus
const (
	EventMoveRecorded  = "arena.move.recorded"
	EventBattleSettled = "arena.battle.settled"
)

// payloadKey is where the typed payload sits in the event context
const payloadKey = "arena.payload"

// MoveRecorded is published once per accepted move, after it is persisted
type MoveRecorded struct {
	BattleID    string              `json:"battle_id"`
	Record      entities.MoveRecord `json:"record"`
	PlayerID    string              `json:"player_id"`
	AutoPlayed  bool                `json:"auto_played"`
	HealthA     int                 `json:"health_a"`
	HealthB     int                 `json:"health_b"`
	Status      entities.Status     `json:"status"`
	RecordedAt  time.Time           `json:"recorded_at"`
	RoundNumber int                 `json:"round_number"`
}

// BattleSettled is published once per battle when settlement finishes
type BattleSettled struct {
	BattleID         string           `json:"battle_id"`
	Winner           entities.Side    `json:"winner"`
	WinnerPlayerID   string           `json:"winner_player_id"`
	LocalPlayerID    string           `json:"local_player_id"`
	LocalWon         bool             `json:"local_won"`
	RewardAmount     int              `json:"reward_amount"`
	ExperienceReward int              `json:"experience_reward"`
	Rounds           int              `json:"rounds"`
	Moves            int              `json:"moves"`
	SettledAt        time.Time        `json:"settled_at"`
	Battle           *entities.Battle `json:"battle"`
}

// MoveRecordedFrom extracts the payload of an EventMoveRecorded event
func MoveRecordedFrom(e events.Event) (*MoveRecorded, bool) {
	return payloadFrom[MoveRecorded](e, EventMoveRecorded)
}

// BattleSettledFrom extracts the payload of an EventBattleSettled event
func BattleSettledFrom(e events.Event) (*BattleSettled, bool) {
	return payloadFrom[BattleSettled](e, EventBattleSettled)
}

func payloadFrom[T any](e events.Event, eventType string) (*T, bool) {
	if e == nil || e.Type() != eventType {
		return nil, false
	}
	v, ok := e.Context().Get(payloadKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*T)
	return p, ok
}

func (o *orchestrator) publishMove(ctx context.Context, b *entities.Battle, record entities.MoveRecord, autoPlayed bool) {
	payload := &MoveRecorded{
		BattleID:    b.ID,
		Record:      record,
		PlayerID:    b.Combatant(record.Side).Player.ID,
		AutoPlayed:  autoPlayed,
		HealthA:     b.SideA.CurrentHealth,
		HealthB:     b.SideB.CurrentHealth,
		Status:      b.Status,
		RecordedAt:  b.UpdatedAt,
		RoundNumber: b.RoundNumber,
	}

	o.publish(ctx, EventMoveRecorded, b, record.Side, payload)
}

func (o *orchestrator) publishSettled(ctx context.Context, b *entities.Battle) {
	payload := &BattleSettled{
		BattleID:         b.ID,
		Winner:           b.Winner,
		WinnerPlayerID:   b.Combatant(b.Winner).Player.ID,
		LocalPlayerID:    b.Local().Player.ID,
		LocalWon:         b.LocalWon(),
		RewardAmount:     b.RewardAmount,
		ExperienceReward: b.ExperienceReward,
		Rounds:           b.RoundNumber,
		Moves:            len(b.History),
		SettledAt:        b.UpdatedAt,
		Battle:           b.Clone(),
	}

	o.publish(ctx, EventBattleSettled, b, b.Winner, payload)
}

// publish never fails the transition; subscribers are observers
func (o *orchestrator) publish(ctx context.Context, eventType string, b *entities.Battle, source entities.Side, payload any) {
	if o.eventBus == nil {
		return
	}

	event := NewEvent(eventType, b, source, payload)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish battle event",
			"event_type", eventType,
			"battle_id", b.ID,
			"error", err,
		)
	}
}

// NewEvent builds a bus event for b with payload attached. A move event
// comes from the combatant on side and targets its opponent. A settled event
// comes from the battle itself and targets the combatant on side.
func NewEvent(eventType string, b *entities.Battle, side entities.Side, payload any) events.Event {
	snapshot := b.Clone()

	var source core.Entity = rpgtoolkit.WrapCombatant(snapshot, side)
	target := rpgtoolkit.WrapCombatant(snapshot, side.Other())
	if eventType == EventBattleSettled {
		source = rpgtoolkit.WrapBattle(snapshot)
		target = rpgtoolkit.WrapCombatant(snapshot, side)
	}

	event := events.NewGameEvent(eventType, source, target)
	event.Context().Set(payloadKey, payload)
	return event
}
