package catalog

import "github.com/KirkDiggler/rpg-arena/internal/entities"

// DefaultConfig is the launch catalog: three characters, two items and the
// leaderboard opponents. New players start with Cypher Knight and the
// Ethereum Blade.
func DefaultConfig() *Config {
	return &Config{
		Characters: []entities.Character{
			{
				ID: "1", Name: "Cypher Knight", Type: "warrior", Rarity: entities.RarityRare,
				Attack: 85, Defense: 70, MaxHealth: 100, Speed: 50, Special: "Blockchain Slash",
			},
			{
				ID: "2", Name: "Data Mage", Type: "mage", Rarity: entities.RarityEpic,
				Attack: 95, Defense: 50, MaxHealth: 80, Speed: 75, Special: "Hash Blast",
			},
			{
				ID: "3", Name: "Crypto Archer", Type: "archer", Rarity: entities.RarityUncommon,
				Attack: 75, Defense: 45, MaxHealth: 70, Speed: 90, Special: "Token Arrow",
			},
		},
		Items: []entities.Item{
			{
				ID: "1", Name: "Ethereum Blade", Type: "weapon", Rarity: entities.RarityEpic,
				Stat: entities.StatAttack, Bonus: 20,
			},
			{
				ID: "2", Name: "Blockchain Shield", Type: "armor", Rarity: entities.RarityRare,
				Stat: entities.StatDefense, Bonus: 15,
			},
		},
		Opponents: []entities.Player{
			{ID: "1", Username: "CryptoWarrior", Address: "0x123...789", Level: 10, Experience: 5000, Tokens: 2500},
			{ID: "2", Username: "BlockchainMaster", Address: "0xabc...def", Level: 8, Experience: 4000, Tokens: 1800},
			{ID: "3", Username: "NFTCollector", Address: "0xghi...jkl", Level: 7, Experience: 3500, Tokens: 1500},
		},
		DefaultInventory: entities.Inventory{
			CharacterIDs: []string{"1"},
			ItemIDs:      []string{"1"},
		},
	}
}
