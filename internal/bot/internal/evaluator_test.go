package internal

import (
	"testing"

	"jolly/internal/domain"
)

func TestEvaluateHandProgressWinningHand(t *testing.T) {
	// Opened, with a run and one spare card: meld the run, discard the
	// spare, done. Distance 0.
	hand := []domain.Card{
		c(1, 4, domain.SuitHearts),
		c(2, 5, domain.SuitHearts),
		c(3, 6, domain.SuitHearts),
		c(4, 2, domain.SuitClubs),
	}
	if d := EvaluateHandProgress(hand, nil, true); d != 0 {
		t.Fatalf("distance = %d, want 0", d)
	}
}

func TestEvaluateHandProgressUnopenedPenalty(t *testing.T) {
	// The run is meldable but far from the opening requirement, so the
	// cards stay locked in hand: leftover 1 plus the flat penalty.
	hand := []domain.Card{
		c(1, 4, domain.SuitHearts),
		c(2, 5, domain.SuitHearts),
		c(3, 6, domain.SuitHearts),
		c(4, 2, domain.SuitClubs),
	}
	if d := EvaluateHandProgress(hand, nil, false); d != 3 {
		t.Fatalf("distance = %d, want 3", d)
	}
}

func TestEvaluateHandProgressOpenableHand(t *testing.T) {
	// A 39 point pure run satisfies the opening, so the hand plays out
	// immediately despite not being opened yet.
	hand := []domain.Card{
		c(1, 9, domain.SuitHearts),
		c(2, 10, domain.SuitHearts),
		c(3, domain.RankJack, domain.SuitHearts),
		c(4, domain.RankQueen, domain.SuitHearts),
		c(5, 2, domain.SuitClubs),
	}
	if d := EvaluateHandProgress(hand, nil, false); d != 0 {
		t.Fatalf("distance = %d, want 0", d)
	}
}

func TestEvaluateHandProgressCountsLayOffs(t *testing.T) {
	table := []domain.Meld{{Cards: []domain.Card{
		c(10, 4, domain.SuitHearts),
		c(11, 5, domain.SuitHearts),
		c(12, 6, domain.SuitHearts),
	}}}
	// Both hand cards extend the run in sequence: 7H first, then 8H.
	hand := []domain.Card{
		c(1, 8, domain.SuitHearts),
		c(2, 7, domain.SuitHearts),
		c(3, 2, domain.SuitClubs),
	}
	if d := EvaluateHandProgress(hand, table, true); d != 0 {
		t.Fatalf("distance = %d, want 0", d)
	}
}

func TestEvaluateHandProgressThroughSwap(t *testing.T) {
	// Reclaiming the table joker with the queen of diamonds frees it to
	// complete the nine pair; the whole hand then plays out.
	table := []domain.Meld{{Cards: domain.OrganizeMeld([]domain.Card{
		c(10, domain.RankQueen, domain.SuitHearts),
		c(11, domain.RankQueen, domain.SuitSpades),
		c(12, domain.RankQueen, domain.SuitClubs),
		jk(13),
	})}}
	hand := []domain.Card{
		c(1, domain.RankQueen, domain.SuitDiamonds),
		c(2, 9, domain.SuitHearts),
		c(3, 9, domain.SuitSpades),
		c(4, 2, domain.SuitClubs),
	}

	withSwaps := EvaluateHandProgress(hand, table, true)
	if withSwaps != 0 {
		t.Fatalf("distance = %d, want 0 via the joker swap", withSwaps)
	}
}

func TestEvaluateHandProgressNeverExceedsHandSize(t *testing.T) {
	hand := []domain.Card{
		c(1, 2, domain.SuitHearts),
		c(2, 7, domain.SuitSpades),
		c(3, domain.RankQueen, domain.SuitClubs),
	}
	if d := EvaluateHandProgress(hand, nil, false); d > len(hand) {
		t.Fatalf("distance = %d exceeds hand size %d", d, len(hand))
	}
}
