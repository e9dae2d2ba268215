// Package battle is the battle controller. It creates battles, applies the
// caller's moves, auto-plays the opponent and pays out rewards once a battle
// ends.
//
// Every transition on a battle runs under that battle's lock in a goroutine
// detached from the caller. A caller that stops waiting gets Canceled or
// DeadlineExceeded, but the transition still finishes and is persisted;
// GetBattle shows the outcome.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle Service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/clients/account"
	"github.com/KirkDiggler/rpg-arena/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
)

// Defaults applied when the matching Config field is zero
const (
	DefaultRewardAmount            = 100
	DefaultExperienceReward        = 50
	DefaultMaxAutoTurns            = 64
	DefaultOpponentCharacterID     = "2"
	DefaultJoinOpponentCharacterID = "3"
	DefaultTransitionTimeout       = 30 * time.Second
)

// Service defines the battle operations
type Service interface {
	// CreateBattle starts a battle with the caller on side A, to move first
	CreateBattle(ctx context.Context, input *CreateBattleInput) (*CreateBattleOutput, error)

	// JoinBattle starts a battle under the given ID with the caller on
	// side B. The opponent's opening turn is played before it returns.
	JoinBattle(ctx context.Context, input *JoinBattleInput) (*JoinBattleOutput, error)

	// MakeMove applies the caller's move and then the opponent's replies
	// until it is the caller's turn again or the battle is over
	MakeMove(ctx context.Context, input *MakeMoveInput) (*MakeMoveOutput, error)

	// GetBattle returns a snapshot of a battle
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)

	// SettleBattle retries the reward payout of a completed battle. It is a
	// no-op for a battle that is already settled.
	SettleBattle(ctx context.Context, input *SettleBattleInput) (*SettleBattleOutput, error)

	// ListBattles returns the IDs of the battles a player took part in
	ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error)

	// ListOpponents returns who a battle can be fought against
	ListOpponents(ctx context.Context, input *ListOpponentsInput) (*ListOpponentsOutput, error)

	// GetLastError returns the message of the player's last failed operation
	GetLastError(ctx context.Context, input *GetLastErrorInput) (*GetLastErrorOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	BattleRepo  battles.Repository
	Accounts    account.Service
	Catalog     catalog.Service
	Engine      engine.Engine
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// EventBus is optional; without it nothing is published
	EventBus events.EventBus

	// Confirmer defaults to NoConfirm
	Confirmer Confirmer

	RewardAmount               int
	ExperienceReward           int
	MaxAutoTurns               int
	DefaultOpponentCharacterID string
	JoinOpponentCharacterID    string
	TransitionTimeout          time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.Accounts == nil {
		vb.RequiredField("Accounts")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateNonNegative("RewardAmount", c.RewardAmount, vb)
	errors.ValidateNonNegative("ExperienceReward", c.ExperienceReward, vb)
	errors.ValidateNonNegative("MaxAutoTurns", c.MaxAutoTurns, vb)
	if c.TransitionTimeout < 0 {
		vb.Field("TransitionTimeout", "must be non-negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo      battles.Repository
	accounts  account.Service
	catalog   catalog.Service
	engine    engine.Engine
	idGen     idgen.Generator
	clock     clock.Clock
	eventBus  events.EventBus
	confirmer Confirmer

	rewardAmount            int
	experienceReward        int
	maxAutoTurns            int
	opponentCharacterID     string
	joinOpponentCharacterID string
	transitionTimeout       time.Duration

	locks *battleLocks

	errMu      sync.RWMutex
	lastErrors map[string]string
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:                    cfg.BattleRepo,
		accounts:                cfg.Accounts,
		catalog:                 cfg.Catalog,
		engine:                  cfg.Engine,
		idGen:                   cfg.IDGenerator,
		clock:                   cfg.Clock,
		eventBus:                cfg.EventBus,
		confirmer:               cfg.Confirmer,
		rewardAmount:            cmp.Or(cfg.RewardAmount, DefaultRewardAmount),
		experienceReward:        cmp.Or(cfg.ExperienceReward, DefaultExperienceReward),
		maxAutoTurns:            cmp.Or(cfg.MaxAutoTurns, DefaultMaxAutoTurns),
		opponentCharacterID:     cmp.Or(cfg.DefaultOpponentCharacterID, DefaultOpponentCharacterID),
		joinOpponentCharacterID: cmp.Or(cfg.JoinOpponentCharacterID, DefaultJoinOpponentCharacterID),
		transitionTimeout:       cmp.Or(cfg.TransitionTimeout, DefaultTransitionTimeout),
		locks:                   newBattleLocks(),
		lastErrors:              make(map[string]string),
	}
	if o.confirmer == nil {
		o.confirmer = NoConfirm
	}

	return o, nil
}

// CreateBattle starts a battle with the caller on side A
func (o *orchestrator) CreateBattle(ctx context.Context, input *CreateBattleInput) (_ *CreateBattleOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	defer func() { o.track(input.PlayerID, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("opponent_id", input.OpponentID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battleID := o.idGen.Generate()

	var created *entities.Battle
	err = o.transition(ctx, battleID, func(ctx context.Context) error {
		local, err := o.localCombatant(ctx, input.PlayerID, input.CharacterID)
		if err != nil {
			return err
		}
		opponent, err := o.opponentCombatant(ctx, input.OpponentID,
			cmp.Or(input.OpponentCharacterID, o.opponentCharacterID))
		if err != nil {
			return err
		}

		if err := o.confirmer.Confirm(ctx, Operation{Kind: OpCreate, BattleID: battleID, PlayerID: input.PlayerID}); err != nil {
			return err
		}

		b := o.newBattle(battleID, local, opponent, entities.SideA)
		if _, err := o.repo.Create(ctx, &battles.CreateInput{Battle: b}); err != nil {
			return errors.Wrap(err, "failed to store battle")
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Battle created",
		"battle_id", created.ID,
		"player_id", input.PlayerID,
		"opponent_id", created.SideB.Player.ID,
		"character_id", created.SideA.Character.ID,
		"opponent_character_id", created.SideB.Character.ID,
	)

	return &CreateBattleOutput{Battle: created.Clone()}, nil
}

// JoinBattle starts a battle with the caller on side B and plays the
// opponent's opening turn
func (o *orchestrator) JoinBattle(ctx context.Context, input *JoinBattleInput) (_ *JoinBattleOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	defer func() { o.track(input.PlayerID, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("battle_id", input.BattleID, vb)
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var out *JoinBattleOutput
	err = o.transition(ctx, input.BattleID, func(ctx context.Context) error {
		_, err := o.repo.Get(ctx, &battles.GetInput{BattleID: input.BattleID})
		switch {
		case err == nil:
			return errors.AlreadyExistsf("battle %s already exists", input.BattleID)
		case !errors.IsNotFound(err):
			return errors.Wrap(err, "failed to check battle")
		}

		opponentID := input.OpponentID
		if opponentID == "" {
			opponentID, err = o.firstOpponentID(ctx)
			if err != nil {
				return err
			}
		}

		local, err := o.localCombatant(ctx, input.PlayerID, input.CharacterID)
		if err != nil {
			return err
		}
		opponent, err := o.opponentCombatant(ctx, opponentID,
			cmp.Or(input.OpponentCharacterID, o.joinOpponentCharacterID))
		if err != nil {
			return err
		}

		if err := o.confirmer.Confirm(ctx, Operation{Kind: OpJoin, BattleID: input.BattleID, PlayerID: input.PlayerID}); err != nil {
			return err
		}

		b := o.newBattle(input.BattleID, opponent, local, entities.SideB)
		if _, err := o.repo.Create(ctx, &battles.CreateInput{Battle: b}); err != nil {
			return errors.Wrap(err, "failed to store battle")
		}

		slog.Info("Battle joined",
			"battle_id", b.ID,
			"player_id", input.PlayerID,
			"opponent_id", opponentID,
		)

		replies := o.replyAfterStored(ctx, b)

		out = &JoinBattleOutput{Battle: b.Clone(), OpponentMoves: replies}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// MakeMove applies the caller's move and the opponent's replies
func (o *orchestrator) MakeMove(ctx context.Context, input *MakeMoveInput) (_ *MakeMoveOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	defer func() { o.track(input.PlayerID, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("battle_id", input.BattleID, vb)
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := input.Move.Validate(); err != nil {
		return nil, err
	}

	var out *MakeMoveOutput
	err = o.transition(ctx, input.BattleID, func(ctx context.Context) error {
		b, err := o.load(ctx, input.BattleID)
		if err != nil {
			return err
		}
		if !b.IsActive() {
			return errors.InvalidStatef("battle %s is %s", b.ID, b.Status).
				WithMeta("battle_id", b.ID)
		}
		if b.Local().Player.ID != input.PlayerID {
			return errors.InvalidStatef("player %s does not control battle %s", input.PlayerID, b.ID).
				WithMeta("battle_id", b.ID)
		}

		result := &MakeMoveOutput{}

		// An earlier reply that failed to confirm is still owed
		if !b.LocalTurn() {
			resumed, err := o.autoPlay(ctx, b)
			result.OpponentMoves = append(result.OpponentMoves, resumed...)
			if err != nil {
				return err
			}
			if !b.IsActive() {
				return errors.InvalidStatef("battle %s ended before the move was applied", b.ID).
					WithMeta("battle_id", b.ID)
			}
		}

		if err := o.confirmer.Confirm(ctx, Operation{Kind: OpMove, BattleID: b.ID, PlayerID: input.PlayerID}); err != nil {
			return err
		}

		item := o.resolveItem(ctx, input.PlayerID, input.Move)
		record, err := o.step(ctx, b, input.Move, item, false)
		if err != nil {
			return err
		}
		result.Record = record

		result.OpponentMoves = append(result.OpponentMoves, o.replyAfterStored(ctx, b)...)

		result.Battle = b.Clone()
		out = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetBattle returns a snapshot of a battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	b, err := o.load(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{Battle: b}, nil
}

// SettleBattle retries settlement of a completed battle
func (o *orchestrator) SettleBattle(ctx context.Context, input *SettleBattleInput) (*SettleBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	var out *SettleBattleOutput
	err := o.transition(ctx, input.BattleID, func(ctx context.Context) error {
		b, err := o.load(ctx, input.BattleID)
		if err != nil {
			return err
		}
		if b.IsActive() {
			return errors.InvalidStatef("battle %s is still active", b.ID).
				WithMeta("battle_id", b.ID)
		}

		credited, err := o.settle(ctx, b)
		if err != nil {
			return err
		}

		out = &SettleBattleOutput{Battle: b.Clone(), Credited: credited}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ListBattles returns a player's battle IDs in sorted order
func (o *orchestrator) ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.repo.ListByPlayer(ctx, &battles.ListByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles for player %s", input.PlayerID)
	}

	return &ListBattlesOutput{BattleIDs: out.BattleIDs}, nil
}

// ListOpponents returns the catalog's opponents
func (o *orchestrator) ListOpponents(ctx context.Context, _ *ListOpponentsInput) (*ListOpponentsOutput, error) {
	out, err := o.catalog.ListOpponents(ctx, &catalog.ListOpponentsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list opponents")
	}

	return &ListOpponentsOutput{Opponents: out.Opponents}, nil
}

// GetLastError returns the player's last failure message
func (o *orchestrator) GetLastError(_ context.Context, input *GetLastErrorInput) (*GetLastErrorOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.errMu.RLock()
	defer o.errMu.RUnlock()

	return &GetLastErrorOutput{Message: o.lastErrors[input.PlayerID]}, nil
}

// transition runs fn under the battle's lock, detached from the caller's
// cancellation. The caller stops waiting when ctx ends.
func (o *orchestrator) transition(ctx context.Context, battleID string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext(err)
	}

	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.transitionTimeout)
	done := make(chan error, 1)

	go func() {
		defer cancel()

		unlock := o.locks.lock(battleID)
		defer unlock()

		done <- fn(detached)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		slog.Info("Caller stopped waiting for battle transition",
			"battle_id", battleID,
			"error", ctx.Err(),
		)
		return errors.FromContext(ctx.Err())
	}
}

// autoPlay plays opponent turns until the caller is up or the battle ends
func (o *orchestrator) autoPlay(ctx context.Context, b *entities.Battle) ([]entities.MoveRecord, error) {
	var records []entities.MoveRecord

	for turns := 0; b.IsActive() && !b.LocalTurn(); turns++ {
		if turns >= o.maxAutoTurns {
			return records, errors.Internalf("battle %s: opponent kept the turn for %d moves", b.ID, turns)
		}

		op := Operation{Kind: OpOpponentMove, BattleID: b.ID, PlayerID: b.Opponent().Player.ID}
		if err := o.confirmer.Confirm(ctx, op); err != nil {
			return records, errors.Wrap(err, "opponent move not confirmed")
		}

		choice, err := o.engine.ChooseOpponentMove(ctx, &engine.ChooseOpponentMoveInput{Battle: b.Clone()})
		if err != nil {
			return records, errors.Wrap(err, "failed to choose opponent move")
		}

		record, err := o.step(ctx, b, choice.Move, nil, true)
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}

	return records, nil
}

// replyAfterStored plays the opponent's replies once the caller's change is
// already saved. A failure here must not fail the call: the caller would
// retry a change that has landed. The reply stays owed and the next MakeMove
// resumes it.
func (o *orchestrator) replyAfterStored(ctx context.Context, b *entities.Battle) []entities.MoveRecord {
	replies, err := o.autoPlay(ctx, b)
	if err != nil {
		slog.Warn("Opponent reply deferred",
			"battle_id", b.ID,
			"replies", len(replies),
			"current_turn", b.CurrentTurn,
			"status", b.Status,
			"error", err,
		)
	}
	return replies
}

// step resolves one move for the side whose turn it is, persists the result
// and settles if the battle ended. b is only changed once the save succeeds.
func (o *orchestrator) step(
	ctx context.Context, b *entities.Battle, move entities.Move, item *entities.Item, autoPlayed bool,
) (entities.MoveRecord, error) {
	resolved, err := o.engine.ResolveMove(ctx, &engine.ResolveMoveInput{
		Move:     move,
		Attacker: b.Combatant(b.CurrentTurn).Character,
		Item:     item,
	})
	if err != nil {
		return entities.MoveRecord{}, errors.Wrap(err, "failed to resolve move")
	}

	next := b.Clone()
	record, err := engine.ApplyTurn(next, move, resolved.Damage)
	if err != nil {
		return entities.MoveRecord{}, err
	}
	next.UpdatedAt = o.clock.Now()

	if _, err := o.repo.Update(ctx, &battles.UpdateInput{Battle: next}); err != nil {
		return entities.MoveRecord{}, errors.Wrap(err, "failed to save battle")
	}
	*b = *next

	slog.Debug("Move applied",
		"battle_id", b.ID,
		"round", record.Round,
		"side", record.Side,
		"move", record.Move.String(),
		"damage", record.Damage,
		"missed", resolved.Missed,
		"health_a", b.SideA.CurrentHealth,
		"health_b", b.SideB.CurrentHealth,
	)
	o.publishMove(ctx, b, record, autoPlayed)

	if !b.IsActive() {
		slog.Info("Battle completed",
			"battle_id", b.ID,
			"winner", b.Winner,
			"rounds", b.RoundNumber,
			"moves", len(b.History),
		)
		if _, err := o.settle(ctx, b); err != nil {
			return record, err
		}
	}

	return record, nil
}

// settle pays the local side if it won and marks the battle settled. Credits
// are keyed by battle ID, so a retry after a partial failure cannot pay twice.
func (o *orchestrator) settle(ctx context.Context, b *entities.Battle) (bool, error) {
	if b.IsActive() || b.Settled {
		return false, nil
	}

	next := b.Clone()
	credited := false

	if next.LocalWon() {
		playerID := next.Local().Player.ID

		if next.RewardAmount > 0 {
			out, err := o.accounts.CreditTokens(ctx, &account.CreditInput{
				PlayerID:  playerID,
				Amount:    next.RewardAmount,
				Reference: next.ID,
			})
			if err != nil {
				return false, errors.Wrapf(err, "failed to pay reward for battle %s", next.ID)
			}
			credited = credited || out.Applied
		}

		if next.ExperienceReward > 0 {
			out, err := o.accounts.CreditExperience(ctx, &account.CreditInput{
				PlayerID:  playerID,
				Amount:    next.ExperienceReward,
				Reference: next.ID,
			})
			if err != nil {
				return false, errors.Wrapf(err, "failed to grant experience for battle %s", next.ID)
			}
			credited = credited || out.Applied
		}
	}

	next.Settled = true
	next.UpdatedAt = o.clock.Now()
	if _, err := o.repo.Update(ctx, &battles.UpdateInput{Battle: next}); err != nil {
		return false, errors.Wrap(err, "failed to save settled battle")
	}
	*b = *next

	slog.Info("Battle settled",
		"battle_id", b.ID,
		"local_won", b.LocalWon(),
		"credited", credited,
		"reward", b.RewardAmount,
	)
	o.publishSettled(ctx, b)

	return credited, nil
}

// resolveItem looks up the item for an item move. Anything that does not
// resolve to an owned item yields nil, which the resolver scores as zero.
func (o *orchestrator) resolveItem(ctx context.Context, playerID string, move entities.Move) *entities.Item {
	if move.Kind != entities.MoveItem {
		return nil
	}

	inv, err := o.catalog.ListInventory(ctx, &catalog.ListInventoryInput{PlayerID: playerID})
	if err != nil {
		slog.Warn("Failed to load inventory for item move",
			"player_id", playerID,
			"item_id", move.ItemID,
			"error", err,
		)
		return nil
	}
	if !slices.Contains(inv.Inventory.ItemIDs, move.ItemID) {
		slog.Info("Item move with unowned item",
			"player_id", playerID,
			"item_id", move.ItemID,
		)
		return nil
	}

	out, err := o.catalog.GetItem(ctx, &catalog.GetItemInput{ItemID: move.ItemID})
	if err != nil {
		slog.Warn("Failed to resolve item",
			"item_id", move.ItemID,
			"error", err,
		)
		return nil
	}

	return out.Item
}

func (o *orchestrator) localCombatant(ctx context.Context, playerID, characterID string) (entities.Combatant, error) {
	player, err := o.accounts.GetPlayer(ctx, &account.GetPlayerInput{PlayerID: playerID})
	if err != nil {
		return entities.Combatant{}, errors.Wrapf(err, "failed to get player %s", playerID)
	}

	inv, err := o.catalog.ListInventory(ctx, &catalog.ListInventoryInput{PlayerID: playerID})
	if err != nil {
		return entities.Combatant{}, errors.Wrapf(err, "failed to get inventory for player %s", playerID)
	}

	owned := inv.Inventory.CharacterIDs
	switch {
	case characterID == "" && len(owned) == 0:
		return entities.Combatant{}, errors.InvalidStatef("player %s owns no characters", playerID)
	case characterID == "":
		characterID = owned[0]
	case !slices.Contains(owned, characterID):
		return entities.Combatant{}, errors.InvalidArgumentf("player %s does not own character %s", playerID, characterID)
	}

	character, err := o.character(ctx, characterID)
	if err != nil {
		return entities.Combatant{}, err
	}

	return entities.NewCombatant(*player.Player, character), nil
}

func (o *orchestrator) opponentCombatant(ctx context.Context, opponentID, characterID string) (entities.Combatant, error) {
	out, err := o.catalog.ListOpponents(ctx, &catalog.ListOpponentsInput{})
	if err != nil {
		return entities.Combatant{}, errors.Wrap(err, "failed to list opponents")
	}

	idx := slices.IndexFunc(out.Opponents, func(p *entities.Player) bool { return p.ID == opponentID })
	if idx < 0 {
		return entities.Combatant{}, errors.NotFoundf("opponent %s not found", opponentID)
	}

	character, err := o.character(ctx, characterID)
	if err != nil {
		return entities.Combatant{}, err
	}

	return entities.NewCombatant(*out.Opponents[idx], character), nil
}

func (o *orchestrator) firstOpponentID(ctx context.Context) (string, error) {
	out, err := o.catalog.ListOpponents(ctx, &catalog.ListOpponentsInput{})
	if err != nil {
		return "", errors.Wrap(err, "failed to list opponents")
	}
	if len(out.Opponents) == 0 {
		return "", errors.InvalidState("no opponents available")
	}
	return out.Opponents[0].ID, nil
}

func (o *orchestrator) character(ctx context.Context, characterID string) (entities.Character, error) {
	out, err := o.catalog.GetCharacter(ctx, &catalog.GetCharacterInput{CharacterID: characterID})
	if err != nil {
		return entities.Character{}, errors.Wrapf(err, "failed to get character %s", characterID)
	}
	return *out.Character, nil
}

func (o *orchestrator) load(ctx context.Context, battleID string) (*entities.Battle, error) {
	out, err := o.repo.Get(ctx, &battles.GetInput{BattleID: battleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battle %s", battleID)
	}
	return out.Battle, nil
}

func (o *orchestrator) newBattle(id string, sideA, sideB entities.Combatant, local entities.Side) *entities.Battle {
	now := o.clock.Now()
	return &entities.Battle{
		ID:               id,
		SideA:            sideA,
		SideB:            sideB,
		LocalSide:        local,
		CurrentTurn:      entities.SideA,
		RoundNumber:      1,
		Status:           entities.StatusActive,
		RewardAmount:     o.rewardAmount,
		ExperienceReward: o.experienceReward,
		History:          []entities.MoveRecord{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// track remembers the player's last failure and forgets it on success
func (o *orchestrator) track(playerID string, err error) {
	if playerID == "" {
		return
	}

	o.errMu.Lock()
	defer o.errMu.Unlock()

	if err != nil {
		o.lastErrors[playerID] = err.Error()
		return
	}
	delete(o.lastErrors, playerID)
}
