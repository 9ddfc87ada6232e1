package domain

import "testing"

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()

	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}

	ids := make(map[int]bool, len(deck))
	jokers := 0
	counts := make(map[CardIdentity]int)
	for _, c := range deck {
		if ids[c.ID] {
			t.Fatalf("duplicate card id %d", c.ID)
		}
		ids[c.ID] = true

		if c.IsJoker() {
			jokers++
			continue
		}
		counts[CardIdentity{Rank: c.Rank, Suit: c.Suit}]++
	}

	if jokers != 4 {
		t.Errorf("jokers = %d, want 4", jokers)
	}
	if len(counts) != 52 {
		t.Errorf("distinct identities = %d, want 52", len(counts))
	}
	for id, n := range counts {
		if n != 2 {
			t.Errorf("identity %+v appears %d times, want 2", id, n)
		}
	}
}

func TestSortHandJokersLast(t *testing.T) {
	hand := []Card{
		joker(1),
		card(2, RankAce, SuitSpades),
		card(3, 2, SuitHearts),
		card(4, RankKing, SuitHearts),
	}
	SortHand(hand)

	if !hand[len(hand)-1].IsJoker() {
		t.Fatalf("expected joker last, got %+v", hand[len(hand)-1])
	}
	if hand[0].Suit != SuitHearts || hand[0].Rank != 2 {
		t.Fatalf("expected 2H first, got %+v", hand[0])
	}
}

func TestRemoveByID(t *testing.T) {
	hand := []Card{card(1, 4, SuitHearts), card(2, 5, SuitHearts), card(3, 6, SuitHearts)}

	remaining, removed := RemoveByID(hand, []int{2})
	if len(remaining) != 2 || len(removed) != 1 {
		t.Fatalf("remaining %d removed %d, want 2 and 1", len(remaining), len(removed))
	}
	if removed[0].ID != 2 {
		t.Fatalf("removed id = %d, want 2", removed[0].ID)
	}

	remaining, removed = RemoveByID(hand, []int{99})
	if len(remaining) != 3 || len(removed) != 0 {
		t.Fatalf("missing id should remove nothing, got %d removed", len(removed))
	}
}
