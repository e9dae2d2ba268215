package archive

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
)

// Recorder archives battles as their settlement events arrive
type Recorder struct {
	repo         Repository
	subscription string
}

// NewRecorder creates a recorder writing to repo
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Subscribe attaches the recorder to bus
func (r *Recorder) Subscribe(bus events.EventBus) {
	r.subscription = bus.SubscribeFunc(battle.EventBattleSettled, 50, r.onSettled)
}

// Unsubscribe detaches the recorder
func (r *Recorder) Unsubscribe(bus events.EventBus) error {
	if r.subscription == "" {
		return nil
	}
	if err := bus.Unsubscribe(r.subscription); err != nil {
		return errors.Wrap(err, "failed to unsubscribe archive recorder")
	}
	r.subscription = ""
	return nil
}

func (r *Recorder) onSettled(ctx context.Context, e events.Event) error {
	p, ok := battle.BattleSettledFrom(e)
	if !ok {
		return nil
	}

	entry := EntryFromSettled(p)
	out, err := r.repo.Archive(ctx, &ArchiveInput{Entry: entry})
	if err != nil {
		slog.Error("Failed to archive battle",
			"battle_id", p.BattleID,
			"error", err,
		)
		return nil
	}

	slog.Debug("Archived battle",
		"battle_id", p.BattleID,
		"inserted", out.Inserted,
	)
	return nil
}

// EntryFromSettled converts a settlement payload into an archive entry
func EntryFromSettled(p *battle.BattleSettled) *Entry {
	entry := &Entry{
		BattleID:       p.BattleID,
		LocalPlayerID:  p.LocalPlayerID,
		WinnerPlayerID: p.WinnerPlayerID,
		LocalWon:       p.LocalWon,
		Rounds:         p.Rounds,
		SettledAt:      p.SettledAt,
	}
	if p.LocalWon {
		entry.RewardAmount = p.RewardAmount
	}
	if p.Battle != nil {
		entry.OpponentPlayerID = p.Battle.Opponent().Player.ID
		entry.History = append(entry.History, p.Battle.History...)
	}
	return entry
}
