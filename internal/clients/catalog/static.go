package catalog

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Config holds the records served by the static catalog
type Config struct {
	Characters  []entities.Character          `yaml:"characters"`
	Items       []entities.Item               `yaml:"items"`
	Opponents   []entities.Player             `yaml:"opponents"`
	Inventories map[string]entities.Inventory `yaml:"inventories"`

	// DefaultInventory is used for players without an entry in Inventories
	DefaultInventory entities.Inventory `yaml:"default_inventory"`
}

// Validate checks IDs are present and unique and inventories only reference
// known records
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	characters := make(map[string]bool, len(c.Characters))
	for i, ch := range c.Characters {
		switch {
		case ch.ID == "":
			vb.Fieldf("characters", "entry %d has no id", i)
		case characters[ch.ID]:
			vb.Fieldf("characters", "duplicate id %q", ch.ID)
		}
		if ch.MaxHealth <= 0 {
			vb.Fieldf("characters", "%q must have positive max health", ch.ID)
		}
		characters[ch.ID] = true
	}

	items := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		switch {
		case it.ID == "":
			vb.Fieldf("items", "entry %d has no id", i)
		case items[it.ID]:
			vb.Fieldf("items", "duplicate id %q", it.ID)
		}
		items[it.ID] = true
	}

	opponents := make(map[string]bool, len(c.Opponents))
	for i, p := range c.Opponents {
		switch {
		case p.ID == "":
			vb.Fieldf("opponents", "entry %d has no id", i)
		case opponents[p.ID]:
			vb.Fieldf("opponents", "duplicate id %q", p.ID)
		}
		opponents[p.ID] = true
	}

	checkInventory := func(field string, inv entities.Inventory) {
		for _, id := range inv.CharacterIDs {
			if !characters[id] {
				vb.Fieldf(field, "unknown character %q", id)
			}
		}
		for _, id := range inv.ItemIDs {
			if !items[id] {
				vb.Fieldf(field, "unknown item %q", id)
			}
		}
	}
	checkInventory("default_inventory", c.DefaultInventory)
	for playerID, inv := range c.Inventories {
		checkInventory("inventories."+playerID, inv)
	}

	return vb.Build()
}

// Static is an in-process catalog built from configuration. It is read-only
// after construction.
type Static struct {
	characters       map[string]entities.Character
	items            map[string]entities.Item
	opponents        []entities.Player
	inventories      map[string]entities.Inventory
	defaultInventory entities.Inventory
}

// NewStatic builds a catalog from cfg
func NewStatic(cfg *Config) (*Static, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Static{
		characters:       make(map[string]entities.Character, len(cfg.Characters)),
		items:            make(map[string]entities.Item, len(cfg.Items)),
		opponents:        slices.Clone(cfg.Opponents),
		inventories:      make(map[string]entities.Inventory, len(cfg.Inventories)),
		defaultInventory: cloneInventory(cfg.DefaultInventory),
	}
	for _, ch := range cfg.Characters {
		s.characters[ch.ID] = ch
	}
	for _, it := range cfg.Items {
		s.items[it.ID] = it
	}
	for playerID, inv := range cfg.Inventories {
		s.inventories[playerID] = cloneInventory(inv)
	}

	return s, nil
}

var _ Service = (*Static)(nil)

// GetCharacter returns a character by ID
func (s *Static) GetCharacter(_ context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	ch, ok := s.characters[input.CharacterID]
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterID)
	}
	return &GetCharacterOutput{Character: &ch}, nil
}

// GetItem returns an item by ID
func (s *Static) GetItem(_ context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil || input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	it, ok := s.items[input.ItemID]
	if !ok {
		return nil, errors.NotFoundf("item %s not found", input.ItemID)
	}
	return &GetItemOutput{Item: &it}, nil
}

// ListOpponents returns opponents in configured order
func (s *Static) ListOpponents(_ context.Context, _ *ListOpponentsInput) (*ListOpponentsOutput, error) {
	out := make([]*entities.Player, len(s.opponents))
	for i := range s.opponents {
		p := s.opponents[i]
		out[i] = &p
	}
	return &ListOpponentsOutput{Opponents: out}, nil
}

// ListInventory returns what a player owns
func (s *Static) ListInventory(_ context.Context, input *ListInventoryInput) (*ListInventoryOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	inv, ok := s.inventories[input.PlayerID]
	if !ok {
		inv = s.defaultInventory
	}
	inv = cloneInventory(inv)
	return &ListInventoryOutput{Inventory: &inv}, nil
}

func cloneInventory(inv entities.Inventory) entities.Inventory {
	return entities.Inventory{
		CharacterIDs: slices.Clone(inv.CharacterIDs),
		ItemIDs:      slices.Clone(inv.ItemIDs),
	}
}
