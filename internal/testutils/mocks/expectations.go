// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/clients/account"
	accountmock "github.com/KirkDiggler/rpg-arena/internal/clients/account/mock"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// ExpectPlayerLookup expects the ledger to be asked for player once
func ExpectPlayerLookup(mockAccounts *accountmock.MockService, player entities.Player) *gomock.Call {
	return mockAccounts.EXPECT().
		GetPlayer(gomock.Any(), &account.GetPlayerInput{PlayerID: player.ID}).
		Return(&account.GetPlayerOutput{Player: &player}, nil)
}

// SettlementCredits are the ledger calls a winning settlement makes
type SettlementCredits struct {
	Tokens     *gomock.Call
	Experience *gomock.Call
}

// ExpectSettlementCredits expects the reward and experience credits for
// battleID, both referencing the battle. Callers order or chain the
// returned calls as their scenario needs.
func ExpectSettlementCredits(mockAccounts *accountmock.MockService, playerID, battleID string, tokens, experience int) SettlementCredits {
	return SettlementCredits{
		Tokens: mockAccounts.EXPECT().
			CreditTokens(gomock.Any(), &account.CreditInput{PlayerID: playerID, Amount: tokens, Reference: battleID}).
			Return(&account.CreditOutput{Balance: tokens, Applied: true}, nil),
		Experience: mockAccounts.EXPECT().
			CreditExperience(gomock.Any(), &account.CreditInput{PlayerID: playerID, Amount: experience, Reference: battleID}).
			Return(&account.CreditOutput{Balance: experience, Applied: true}, nil),
	}
}

// ExpectCreditFailure expects one token credit for battleID to fail with err
func ExpectCreditFailure(mockAccounts *accountmock.MockService, playerID, battleID string, tokens int, err error) *gomock.Call {
	return mockAccounts.EXPECT().
		CreditTokens(gomock.Any(), &account.CreditInput{PlayerID: playerID, Amount: tokens, Reference: battleID}).
		Return(nil, err)
}
