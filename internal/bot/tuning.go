package bot

import "jolly/internal/bot/internal"

// DiscardTuning holds the weights behind the medium and hard discard
// heuristics. Values were settled by self-play; change with care.
type DiscardTuning struct {
	Synergy internal.SynergyWeights

	// SwapChance is the probability the medium brain follows through on a
	// detected Joker swap.
	SwapChance float64

	// FeedPenalty is added to a card's keep score when discarding it would
	// extend a table meld. FeedPenaltyDesperate replaces it once the
	// opponent holds ThreatThreshold cards or fewer.
	FeedPenalty          float64
	FeedPenaltyDesperate float64
	ThreatThreshold      int
}

func DefaultTuning() DiscardTuning {
	return DiscardTuning{
		Synergy: internal.SynergyWeights{
			SameRank:      5,
			Neighbor:      3,
			NeighborRange: 2,
			Value:         0.5,
		},
		SwapChance:           0.5,
		FeedPenalty:          40,
		FeedPenaltyDesperate: 1000,
		ThreatThreshold:      2,
	}
}
