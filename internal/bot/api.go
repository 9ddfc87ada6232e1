package bot

import "jolly/internal/domain"

// SwapProposal asks to reclaim a table Joker with the named hand card.
type SwapProposal struct {
	MeldIndex  int
	HandCardID int
}

// LayOff asks to add one hand card to an existing table meld.
type LayOff struct {
	MeldIndex int
	CardID    int
}

// Brain decides the CPU seat's moves. Implementations are pure planners:
// they inspect the game but never mutate it, and they only see what a
// player at the table would see (own hand, table melds, discard top and the
// opponent's card count). The orchestrator applies the plan through the
// same rule-checked actions the human uses.
type Brain interface {
	// ChooseDrawSource picks where to draw from at the start of the turn.
	ChooseDrawSource(g *domain.Game) domain.DrawSource
	// PlanMelds returns the card ID groups to lay as new melds, in order.
	PlanMelds(g *domain.Game) [][]int
	// ProposeSwaps returns the Joker swaps worth taking this turn.
	ProposeSwaps(g *domain.Game) []SwapProposal
	// PlanLayOffs returns single-card additions to existing table melds.
	PlanLayOffs(g *domain.Game) []LayOff
	// ChooseDiscard returns the ID of the card to discard, or -1 when the
	// hand is empty.
	ChooseDiscard(g *domain.Game) int
}
