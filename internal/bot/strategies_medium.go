package bot

import (
	"math/rand"

	"jolly/internal/bot/internal"
	"jolly/internal/domain"
)

// mediumBrain plays a solid club game: it takes the discard when it fuels a
// meld, lays everything it can, reclaims table Jokers about half the time
// and discards by hand synergy.
type mediumBrain struct {
	rng    *rand.Rand
	tuning DiscardTuning
}

func (b *mediumBrain) ChooseDrawSource(g *domain.Game) domain.DrawSource {
	if wantsDiscardDraw(g) {
		return domain.DrawDiscard
	}
	return domain.DrawStock
}

func (b *mediumBrain) PlanMelds(g *domain.Game) [][]int {
	return committableMelds(g)
}

func (b *mediumBrain) ProposeSwaps(g *domain.Game) []SwapProposal {
	var out []SwapProposal
	for _, swap := range productiveSwaps(g) {
		if b.rng.Float64() >= b.tuning.SwapChance {
			continue
		}
		out = append(out, swap)
	}
	return out
}

func (b *mediumBrain) PlanLayOffs(g *domain.Game) []LayOff {
	return greedyLayOffs(g)
}

func (b *mediumBrain) ChooseDiscard(g *domain.Game) int {
	hand := g.Hand(domain.SeatCpu)
	return lowestKeepScore(hand, func(c domain.Card) float64 {
		if c.IsJoker() {
			return jokerKeepScore
		}
		return internal.SynergyScore(hand, c, b.tuning.Synergy)
	})
}
