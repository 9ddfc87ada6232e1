package domain

// DeckSize is the fixed pool: two 52-card decks plus four Jokers.
const DeckSize = 108

// NewDeck returns the ordered 108-card pool with unique IDs 0..107.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	id := 0
	for copies := 0; copies < 2; copies++ {
		for _, s := range CanonicalSuits {
			for r := Rank(2); r <= RankAce; r++ {
				deck = append(deck, Card{ID: id, Suit: s, Rank: r})
				id++
			}
		}
	}
	for j := 0; j < 4; j++ {
		deck = append(deck, Card{ID: id, Suit: SuitJoker, Rank: RankJoker})
		id++
	}
	return deck
}
