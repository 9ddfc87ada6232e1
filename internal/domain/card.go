package domain

import "sort"

// Suit identifies a card suit. Jokers carry SuitJoker and rank 0.
type Suit string

const (
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitSpades   Suit = "S"
	SuitJoker    Suit = "X"
)

// Rank is the face rank of a card: 2..10 for number cards, then
// RankJack..RankAce. Jokers carry RankJoker.
type Rank int

const (
	RankJoker Rank = 0
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
)

// CardIdentity is the concrete (rank, suit) a Joker impersonates inside a meld.
type CardIdentity struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Card is a single card from the two-deck pool. ID is unique across all 108
// cards; duplicate (rank, suit) pairs are distinguished only by ID.
// Selected is transient UI selection state. Rep is only meaningful for
// Jokers and holds the identity the Joker currently stands for.
type Card struct {
	ID       int           `json:"id"`
	Suit     Suit          `json:"suit"`
	Rank     Rank          `json:"rank"`
	Selected bool          `json:"selected"`
	Rep      *CardIdentity `json:"rep,omitempty"`
}

// IsJoker reports whether the card is one of the four Jokers.
func (c Card) IsJoker() bool {
	return c.Suit == SuitJoker
}

// EffectiveIdentity returns the identity the card contributes to a meld:
// the Joker's representation when assigned, otherwise the card's own face.
func (c Card) EffectiveIdentity() CardIdentity {
	if c.IsJoker() && c.Rep != nil {
		return *c.Rep
	}
	return CardIdentity{Rank: c.Rank, Suit: c.Suit}
}

// RankValue returns the meld point value of a rank: number cards count face
// value, J/Q/K/A count 10. Jokers have no intrinsic value.
func RankValue(r Rank) int {
	switch {
	case r >= RankJack:
		return 10
	case r >= 2:
		return int(r)
	default:
		return 0
	}
}

// JokerHandValue is the penalty value of a Joker caught in a losing hand.
const JokerHandValue = 25

// HandValue sums the penalty value of the cards left in a hand when the
// opponent goes out.
func HandValue(cards []Card) int {
	total := 0
	for _, c := range cards {
		if c.IsJoker() {
			total += JokerHandValue
			continue
		}
		total += RankValue(c.Rank)
	}
	return total
}

// suitOrder gives the canonical ordering used for Joker suit assignment and
// display sorting: hearts, diamonds, clubs, spades.
func suitOrder(s Suit) int {
	switch s {
	case SuitHearts:
		return 0
	case SuitDiamonds:
		return 1
	case SuitClubs:
		return 2
	case SuitSpades:
		return 3
	default:
		return 4
	}
}

// CanonicalSuits lists the non-Joker suits in canonical order.
var CanonicalSuits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// SortHand orders a hand by suit then rank, Jokers last. The CPU hand is kept
// in this order; the human hand order is owned by the player.
func SortHand(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.IsJoker() != b.IsJoker() {
			return !a.IsJoker()
		}
		if a.Suit != b.Suit {
			return suitOrder(a.Suit) < suitOrder(b.Suit)
		}
		return a.Rank < b.Rank
	})
}

// FindByID returns the card with the given ID and its index, or ok=false.
func FindByID(cards []Card, id int) (Card, int, bool) {
	for i, c := range cards {
		if c.ID == id {
			return c, i, true
		}
	}
	return Card{}, -1, false
}

// ContainsID reports whether any card in the slice has the given ID.
func ContainsID(cards []Card, id int) bool {
	_, _, ok := FindByID(cards, id)
	return ok
}

// RemoveByID splits cards into those whose IDs are not in ids and those that
// are. Cards not present in ids are left untouched and in order.
func RemoveByID(cards []Card, ids []int) (remaining, removed []Card) {
	idSet := make(map[int]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	remaining = make([]Card, 0, len(cards))
	for _, c := range cards {
		if idSet[c.ID] {
			removed = append(removed, c)
			continue
		}
		remaining = append(remaining, c)
	}
	return remaining, removed
}

// CardIDs extracts the IDs of the given cards in order.
func CardIDs(cards []Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// ClearReps removes Joker representations from the given cards in place.
func ClearReps(cards []Card) {
	for i := range cards {
		cards[i].Rep = nil
	}
}
