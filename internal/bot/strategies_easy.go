package bot

import (
	"math/rand"

	"jolly/internal/bot/internal"
	"jolly/internal/domain"
)

// easyBrain plays a beginner's game: it always draws from the stock, lays
// at most one meld per turn, never touches table Jokers and discards at
// random.
type easyBrain struct {
	rng *rand.Rand
}

func (b *easyBrain) ChooseDrawSource(g *domain.Game) domain.DrawSource {
	return domain.DrawStock
}

func (b *easyBrain) PlanMelds(g *domain.Game) [][]int {
	hand := g.Hand(domain.SeatCpu)
	if !g.Opened(domain.SeatCpu) {
		// Open only with a single meld that clears the requirement alone.
		for _, cand := range internal.EnumerateMelds(hand) {
			if cand.Result.Pure && cand.Result.Points >= domain.OpeningPoints {
				return [][]int{cand.IDs}
			}
		}
		return nil
	}
	groups := committableMelds(g)
	if len(groups) > 1 {
		groups = groups[:1]
	}
	return groups
}

func (b *easyBrain) ProposeSwaps(g *domain.Game) []SwapProposal {
	return nil
}

func (b *easyBrain) PlanLayOffs(g *domain.Game) []LayOff {
	return nil
}

func (b *easyBrain) ChooseDiscard(g *domain.Game) int {
	return randomDiscard(b.rng, g.Hand(domain.SeatCpu))
}
