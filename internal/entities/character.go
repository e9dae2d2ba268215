// Package entities holds the arena's plain data types: players, characters,
// items, combatants and battles.
package entities

// Rarity grades characters and items
type Rarity string

// Rarity values
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Character is a catalog entry a player can fight with
type Character struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Rarity    Rarity `json:"rarity" yaml:"rarity"`
	Attack    int    `json:"attack" yaml:"attack"`
	Defense   int    `json:"defense" yaml:"defense"`
	MaxHealth int    `json:"max_health" yaml:"max_health"`
	Speed     int    `json:"speed" yaml:"speed"`

	// Special is flavor text only
	Special string `json:"special" yaml:"special"`
}

// Stat is the attribute an item modifies
type Stat string

// Stat values
const (
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
	StatHealth  Stat = "health"
	StatSpeed   Stat = "speed"
	StatSpecial Stat = "special"
)

// Item is a catalog entry usable as a battle move
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Rarity Rarity `json:"rarity" yaml:"rarity"`
	Stat   Stat   `json:"stat" yaml:"stat"`

	// Bonus is a percentage applied to Stat
	Bonus int `json:"bonus" yaml:"bonus"`
}
