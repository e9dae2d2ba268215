package entities

// Player is an account known to the arena. Address is where rewards are paid.
type Player struct {
	ID         string `json:"id" yaml:"id"`
	Username   string `json:"username" yaml:"username"`
	Address    string `json:"address" yaml:"address"`
	Level      int    `json:"level" yaml:"level"`
	Experience int    `json:"experience" yaml:"experience"`
	Tokens     int    `json:"tokens" yaml:"tokens"`
}

// Inventory lists what a player owns
type Inventory struct {
	CharacterIDs []string `json:"character_ids" yaml:"character_ids"`
	ItemIDs      []string `json:"item_ids" yaml:"item_ids"`
}
