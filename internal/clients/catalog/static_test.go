package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type StaticTestSuite struct {
	suite.Suite
	catalog *catalog.Static
	ctx     context.Context
}

func TestStaticSuite(t *testing.T) {
	suite.Run(t, new(StaticTestSuite))
}

func (s *StaticTestSuite) SetupTest() {
	cfg := catalog.DefaultConfig()
	cfg.Inventories = map[string]entities.Inventory{
		"collector": {CharacterIDs: []string{"2", "3"}, ItemIDs: []string{"2"}},
	}

	c, err := catalog.NewStatic(cfg)
	s.Require().NoError(err)
	s.catalog = c
	s.ctx = context.Background()
}

func (s *StaticTestSuite) TestGetCharacter() {
	out, err := s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{CharacterID: "2"})
	s.Require().NoError(err)
	s.Equal("Data Mage", out.Character.Name)
	s.Equal(95, out.Character.Attack)
	s.Equal(80, out.Character.MaxHealth)

	_, err = s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{CharacterID: "99"})
	s.True(errors.IsNotFound(err))

	_, err = s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *StaticTestSuite) TestGetItem() {
	out, err := s.catalog.GetItem(s.ctx, &catalog.GetItemInput{ItemID: "1"})
	s.Require().NoError(err)
	s.Equal(entities.StatAttack, out.Item.Stat)
	s.Equal(20, out.Item.Bonus)

	_, err = s.catalog.GetItem(s.ctx, &catalog.GetItemInput{ItemID: "99"})
	s.True(errors.IsNotFound(err))
}

func (s *StaticTestSuite) TestReturnedRecordsAreCopies() {
	out, err := s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{CharacterID: "1"})
	s.Require().NoError(err)
	out.Character.Attack = 1

	again, err := s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{CharacterID: "1"})
	s.Require().NoError(err)
	s.Equal(85, again.Character.Attack)
}

func (s *StaticTestSuite) TestListOpponentsKeepsOrder() {
	out, err := s.catalog.ListOpponents(s.ctx, &catalog.ListOpponentsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Opponents, 3)
	s.Equal("CryptoWarrior", out.Opponents[0].Username)
	s.Equal("NFTCollector", out.Opponents[2].Username)
}

func (s *StaticTestSuite) TestListInventory() {
	out, err := s.catalog.ListInventory(s.ctx, &catalog.ListInventoryInput{PlayerID: "collector"})
	s.Require().NoError(err)
	s.Equal([]string{"2", "3"}, out.Inventory.CharacterIDs)

	out, err = s.catalog.ListInventory(s.ctx, &catalog.ListInventoryInput{PlayerID: "newcomer"})
	s.Require().NoError(err)
	s.Equal([]string{"1"}, out.Inventory.CharacterIDs)
	s.Equal([]string{"1"}, out.Inventory.ItemIDs)

	out.Inventory.CharacterIDs[0] = "3"
	again, err := s.catalog.ListInventory(s.ctx, &catalog.ListInventoryInput{PlayerID: "newcomer"})
	s.Require().NoError(err)
	s.Equal([]string{"1"}, again.Inventory.CharacterIDs)
}

func (s *StaticTestSuite) TestConfigValidation() {
	testCases := []struct {
		name   string
		mutate func(*catalog.Config)
		expect string
	}{
		{
			name:   "duplicate character",
			mutate: func(c *catalog.Config) { c.Characters = append(c.Characters, c.Characters[0]) },
			expect: `duplicate id "1"`,
		},
		{
			name:   "zero health",
			mutate: func(c *catalog.Config) { c.Characters[1].MaxHealth = 0 },
			expect: "positive max health",
		},
		{
			name:   "inventory references unknown item",
			mutate: func(c *catalog.Config) { c.DefaultInventory.ItemIDs = []string{"42"} },
			expect: `unknown item "42"`,
		},
		{
			name:   "opponent without id",
			mutate: func(c *catalog.Config) { c.Opponents[0].ID = "" },
			expect: "entry 0 has no id",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := catalog.DefaultConfig()
			tc.mutate(cfg)

			_, err := catalog.NewStatic(cfg)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.expect)
		})
	}
}
