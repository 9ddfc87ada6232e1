package internal

import (
	"testing"

	"jolly/internal/domain"
)

func fourCardSetWithJoker(t *testing.T) domain.Meld {
	t.Helper()
	cards := domain.OrganizeMeld([]domain.Card{
		c(10, domain.RankQueen, domain.SuitHearts),
		c(11, domain.RankQueen, domain.SuitSpades),
		c(12, domain.RankQueen, domain.SuitClubs),
		jk(13),
	})
	return domain.Meld{Cards: cards}
}

func TestDetectSetSwaps(t *testing.T) {
	meld := fourCardSetWithJoker(t)
	// The joker stands in for the queen of diamonds.
	hand := []domain.Card{c(1, domain.RankQueen, domain.SuitDiamonds), c(2, 3, domain.SuitClubs)}

	swaps := DetectSetSwaps(hand, []domain.Meld{meld})
	if len(swaps) != 1 {
		t.Fatalf("swaps = %d, want 1", len(swaps))
	}
	if swaps[0].HandCardID != 1 || swaps[0].JokerID != 13 || swaps[0].MeldIndex != 0 {
		t.Fatalf("swap = %+v", swaps[0])
	}
}

func TestDetectSetSwapsIgnoresThreeCardSets(t *testing.T) {
	cards := domain.OrganizeMeld([]domain.Card{
		c(10, domain.RankQueen, domain.SuitHearts),
		c(11, domain.RankQueen, domain.SuitSpades),
		jk(13),
	})
	hand := []domain.Card{c(1, domain.RankQueen, domain.SuitDiamonds)}

	if swaps := DetectSetSwaps(hand, []domain.Meld{{Cards: cards}}); len(swaps) != 0 {
		t.Fatalf("three-card set produced %d swaps", len(swaps))
	}
}

func TestDetectSetSwapsIgnoresRuns(t *testing.T) {
	cards := domain.OrganizeMeld([]domain.Card{
		c(10, 4, domain.SuitHearts),
		c(11, 5, domain.SuitHearts),
		c(12, 7, domain.SuitHearts),
		jk(13),
	})
	hand := []domain.Card{c(1, 6, domain.SuitHearts)}

	if swaps := DetectSetSwaps(hand, []domain.Meld{{Cards: cards}}); len(swaps) != 0 {
		t.Fatalf("run produced %d swaps", len(swaps))
	}
}

func TestSwapFreesMeldableJoker(t *testing.T) {
	_ = fourCardSetWithJoker(t)
	swap := SetSwap{MeldIndex: 0, HandCardID: 1, JokerID: 13}

	// With a nine pair waiting, the reclaimed joker completes a set and the
	// two of clubs stays back for the discard.
	productive := []domain.Card{
		c(1, domain.RankQueen, domain.SuitDiamonds),
		c(2, 9, domain.SuitHearts),
		c(3, 9, domain.SuitSpades),
		c(4, 2, domain.SuitClubs),
	}
	if !SwapFreesMeldableJoker(productive, swap, true) {
		t.Errorf("expected a productive swap")
	}

	// Without support the joker would just sit in the hand.
	barren := []domain.Card{
		c(1, domain.RankQueen, domain.SuitDiamonds),
		c(2, 9, domain.SuitHearts),
		c(3, 2, domain.SuitSpades),
	}
	if SwapFreesMeldableJoker(barren, swap, true) {
		t.Errorf("swap with no meld for the joker should not be taken")
	}
}

func TestSwapFreesMeldableJokerLeavesADiscard(t *testing.T) {
	_ = fourCardSetWithJoker(t)
	swap := SetSwap{MeldIndex: 0, HandCardID: 1, JokerID: 13}

	// The joker would turn 7-8-9 into a four-card run, but that plan melds
	// every card and a reclaimed joker can never be discarded.
	hand := []domain.Card{
		c(1, domain.RankQueen, domain.SuitDiamonds),
		c(2, 7, domain.SuitHearts),
		c(3, 8, domain.SuitHearts),
		c(4, 9, domain.SuitHearts),
	}
	if SwapFreesMeldableJoker(hand, swap, true) {
		t.Errorf("swap whose plan melds the whole hand should not be taken")
	}
}
