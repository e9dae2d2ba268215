package entities

// Combatant is one side of a battle: who is fighting, with what, and how
// much health is left.
type Combatant struct {
	Player        Player    `json:"player"`
	Character     Character `json:"character"`
	CurrentHealth int       `json:"current_health"`
}

// NewCombatant starts a combatant at full health
func NewCombatant(player Player, character Character) Combatant {
	return Combatant{
		Player:        player,
		Character:     character,
		CurrentHealth: max(0, character.MaxHealth),
	}
}

// ApplyDamage lowers CurrentHealth, never below zero, and returns the new value.
// Negative amounts are treated as zero.
func (c *Combatant) ApplyDamage(amount int) int {
	c.CurrentHealth = max(0, c.CurrentHealth-max(0, amount))
	return c.CurrentHealth
}

// Defeated reports whether the combatant has no health left
func (c *Combatant) Defeated() bool {
	return c.CurrentHealth == 0
}
