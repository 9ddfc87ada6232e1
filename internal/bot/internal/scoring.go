package internal

import "jolly/internal/domain"

// SynergyWeights tunes how strongly a discard scorer values keeping a card.
type SynergyWeights struct {
	SameRank      float64
	Neighbor      float64
	NeighborRange int
	Value         float64
}

// SynergyScore rates how useful a card is to the rest of the hand. Cards
// pairing by rank or sitting near same-suit neighbors score high and should
// be kept; high point values push a card toward the discard pile.
func SynergyScore(hand []domain.Card, card domain.Card, w SynergyWeights) float64 {
	score := 0.0
	for _, other := range hand {
		if other.ID == card.ID || other.IsJoker() {
			continue
		}
		if other.Rank == card.Rank {
			score += w.SameRank
		}
		if other.Suit == card.Suit {
			diff := int(other.Rank) - int(card.Rank)
			if diff < 0 {
				diff = -diff
			}
			if diff != 0 && diff <= w.NeighborRange {
				score += w.Neighbor
			}
		}
	}
	return score - w.Value*float64(domain.RankValue(card.Rank))
}

// FeedsTableMeld reports whether discarding the card would let the opponent
// lay it straight onto an existing table meld.
func FeedsTableMeld(card domain.Card, melds []domain.Meld) bool {
	if card.IsJoker() {
		return false
	}
	for _, meld := range melds {
		extended := append(append([]domain.Card{}, meld.Cards...), card)
		if res := domain.ValidateMeld(extended); res.Valid {
			return true
		}
	}
	return false
}
