package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Player IDs used by fixtures
const (
	TestPlayerID   = "player1"
	TestOpponentID = "opponent1"
	TestBattleID   = "battle_test_001"
)

// CypherKnight is the balanced starter character
func CypherKnight() entities.Character {
	return entities.Character{
		ID:        "1",
		Name:      "Cypher Knight",
		Type:      "warrior",
		Rarity:    entities.RarityRare,
		Attack:    85,
		Defense:   70,
		MaxHealth: 100,
		Speed:     50,
		Special:   "Blockchain Slash",
	}
}

// DataMage hits hard with little health
func DataMage() entities.Character {
	return entities.Character{
		ID:        "2",
		Name:      "Data Mage",
		Type:      "mage",
		Rarity:    entities.RarityEpic,
		Attack:    95,
		Defense:   50,
		MaxHealth: 80,
		Speed:     75,
		Special:   "Hash Blast",
	}
}

// CryptoArcher is the fast, fragile opponent default for joined battles
func CryptoArcher() entities.Character {
	return entities.Character{
		ID:        "3",
		Name:      "Crypto Archer",
		Type:      "archer",
		Rarity:    entities.RarityUncommon,
		Attack:    75,
		Defense:   45,
		MaxHealth: 70,
		Speed:     90,
		Special:   "Token Arrow",
	}
}

// EthereumBlade is an attack item with a 20% bonus
func EthereumBlade() entities.Item {
	return entities.Item{
		ID:     "1",
		Name:   "Ethereum Blade",
		Type:   "weapon",
		Rarity: entities.RarityEpic,
		Stat:   entities.StatAttack,
		Bonus:  20,
	}
}

// BlockchainShield is a defense item; it deals no damage when used
func BlockchainShield() entities.Item {
	return entities.Item{
		ID:     "2",
		Name:   "Blockchain Shield",
		Type:   "armor",
		Rarity: entities.RarityRare,
		Stat:   entities.StatDefense,
		Bonus:  15,
	}
}

// CreateTestPlayer creates a player with sensible defaults
func CreateTestPlayer(id string) entities.Player {
	return entities.Player{
		ID:       id,
		Username: "tester-" + id,
		Address:  "0x" + id,
		Level:    1,
	}
}

// CreateTestBattle creates an active battle: the local player on side A with
// Cypher Knight against an opponent on side B with Data Mage.
func CreateTestBattle(id string) *entities.Battle {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return &entities.Battle{
		ID:               id,
		SideA:            entities.NewCombatant(CreateTestPlayer(TestPlayerID), CypherKnight()),
		SideB:            entities.NewCombatant(CreateTestPlayer(TestOpponentID), DataMage()),
		LocalSide:        entities.SideA,
		CurrentTurn:      entities.SideA,
		RoundNumber:      1,
		Status:           entities.StatusActive,
		RewardAmount:     100,
		ExperienceReward: 50,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
