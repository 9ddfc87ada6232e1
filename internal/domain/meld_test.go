package domain

import (
	"math/rand"
	"testing"
)

func card(id int, rank Rank, suit Suit) Card {
	return Card{ID: id, Rank: rank, Suit: suit}
}

func joker(id int) Card {
	return Card{ID: id, Rank: RankJoker, Suit: SuitJoker}
}

func TestValidateMeld(t *testing.T) {
	tests := []struct {
		name   string
		cards  []Card
		valid  bool
		typ    MeldType
		points int
		pure   bool
	}{
		{
			name:  "too few cards",
			cards: []Card{card(1, 7, SuitHearts), card(2, 7, SuitSpades)},
		},
		{
			name:   "set of three",
			cards:  []Card{card(1, RankKing, SuitHearts), card(2, RankKing, SuitSpades), card(3, RankKing, SuitClubs)},
			valid:  true,
			typ:    MeldSet,
			points: 30,
		},
		{
			name: "set of four",
			cards: []Card{
				card(1, 7, SuitHearts), card(2, 7, SuitSpades),
				card(3, 7, SuitClubs), card(4, 7, SuitDiamonds),
			},
			valid:  true,
			typ:    MeldSet,
			points: 28,
		},
		{
			name:  "set with repeated suit",
			cards: []Card{card(1, 7, SuitHearts), card(2, 7, SuitHearts), card(3, 7, SuitClubs)},
		},
		{
			name:   "set with joker",
			cards:  []Card{card(1, RankQueen, SuitHearts), card(2, RankQueen, SuitSpades), joker(3)},
			valid:  true,
			typ:    MeldSet,
			points: 30,
		},
		{
			name: "set of five is illegal",
			cards: []Card{
				card(1, 7, SuitHearts), card(2, 7, SuitSpades),
				card(3, 7, SuitClubs), card(4, 7, SuitDiamonds), joker(5),
			},
		},
		{
			name:   "pure run of three",
			cards:  []Card{card(1, 4, SuitHearts), card(2, 5, SuitHearts), card(3, 6, SuitHearts)},
			valid:  true,
			typ:    MeldRun,
			points: 15,
			pure:   true,
		},
		{
			name:   "run with joker extension",
			cards:  []Card{card(1, 4, SuitHearts), card(2, 5, SuitHearts), joker(3)},
			valid:  true,
			typ:    MeldRun,
			points: 15,
		},
		{
			name:   "run with joker gap",
			cards:  []Card{card(1, 4, SuitHearts), joker(2), card(3, 6, SuitHearts)},
			valid:  true,
			typ:    MeldRun,
			points: 15,
		},
		{
			name:  "mixed suit run",
			cards: []Card{card(1, 4, SuitHearts), card(2, 5, SuitSpades), card(3, 6, SuitHearts)},
		},
		{
			name:   "ace high run",
			cards:  []Card{card(1, RankQueen, SuitSpades), card(2, RankKing, SuitSpades), card(3, RankAce, SuitSpades)},
			valid:  true,
			typ:    MeldRun,
			points: 30,
			pure:   true,
		},
		{
			name:   "ace low run",
			cards:  []Card{card(1, RankAce, SuitHearts), card(2, 2, SuitHearts), card(3, 3, SuitHearts)},
			valid:  true,
			typ:    MeldRun,
			points: 6,
			pure:   true,
		},
		{
			name:  "run does not wrap around the ace",
			cards: []Card{card(1, RankKing, SuitHearts), card(2, RankAce, SuitHearts), card(3, 2, SuitHearts)},
		},
		{
			name:  "gap wider than one rank",
			cards: []Card{card(1, 4, SuitHearts), joker(2), card(3, 7, SuitHearts)},
		},
		{
			name:  "duplicate rank in run",
			cards: []Card{card(1, 4, SuitHearts), card(2, 4, SuitHearts), card(3, 5, SuitHearts)},
		},
		{
			name:  "jokers alone",
			cards: []Card{joker(1), joker(2), joker(3)},
		},
		{
			name: "two jokers exceed run slack",
			cards: []Card{
				card(1, RankQueen, SuitSpades), card(2, RankKing, SuitSpades),
				card(3, RankAce, SuitSpades), joker(4), joker(5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateMeld(tt.cards)
			if res.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v", res.Valid, tt.valid)
			}
			if !tt.valid {
				return
			}
			if res.Type != tt.typ {
				t.Errorf("Type = %s, want %s", res.Type, tt.typ)
			}
			if res.Points != tt.points {
				t.Errorf("Points = %d, want %d", res.Points, tt.points)
			}
			if res.Pure != tt.pure {
				t.Errorf("Pure = %v, want %v", res.Pure, tt.pure)
			}
		})
	}
}

func TestValidateMeldOrderIndependent(t *testing.T) {
	cards := []Card{card(1, 4, SuitHearts), card(2, 5, SuitHearts), joker(3), card(4, 7, SuitHearts)}
	want := ValidateMeld(cards)
	if !want.Valid {
		t.Fatalf("expected valid run")
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]Card{}, cards...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := ValidateMeld(shuffled)
		if got != want {
			t.Fatalf("permutation %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestHandValue(t *testing.T) {
	hand := []Card{
		card(1, RankAce, SuitHearts),  // 10
		card(2, 9, SuitSpades),        // 9
		card(3, RankJack, SuitClubs),  // 10
		joker(4),                      // 25
	}
	if got := HandValue(hand); got != 54 {
		t.Fatalf("HandValue = %d, want 54", got)
	}
}
