package bot

import (
	"math/rand"

	"jolly/internal/bot/internal"
	"jolly/internal/domain"
)

// hardBrain extends the medium game with opponent awareness: it never hands
// the human a card that fits a table meld while they are close to going
// out, always reclaims a usable table Joker, and breaks discard ties by
// which remaining hand sits closest to a win.
type hardBrain struct {
	rng    *rand.Rand
	tuning DiscardTuning
}

func (b *hardBrain) ChooseDrawSource(g *domain.Game) domain.DrawSource {
	if wantsDiscardDraw(g) {
		return domain.DrawDiscard
	}
	return domain.DrawStock
}

func (b *hardBrain) PlanMelds(g *domain.Game) [][]int {
	return committableMelds(g)
}

func (b *hardBrain) ProposeSwaps(g *domain.Game) []SwapProposal {
	return productiveSwaps(g)
}

func (b *hardBrain) PlanLayOffs(g *domain.Game) []LayOff {
	return greedyLayOffs(g)
}

func (b *hardBrain) ChooseDiscard(g *domain.Game) int {
	hand := g.Hand(domain.SeatCpu)
	if len(hand) == 0 {
		return -1
	}
	opened := g.Opened(domain.SeatCpu)
	opponentCards := len(g.Hand(domain.SeatHuman))

	bestID := -1
	bestScore := 0.0
	bestDistance := 0
	for i, c := range hand {
		score := internal.SynergyScore(hand, c, b.tuning.Synergy)
		if c.IsJoker() {
			score = jokerKeepScore
		} else if internal.FeedsTableMeld(c, g.Melds) {
			if opponentCards <= b.tuning.ThreatThreshold {
				score += b.tuning.FeedPenaltyDesperate
			} else {
				score += b.tuning.FeedPenalty
			}
		}

		rest := append(append([]domain.Card{}, hand[:i]...), hand[i+1:]...)
		distance := internal.EvaluateHandProgress(rest, g.Melds, opened)

		if bestID == -1 || score < bestScore ||
			(score == bestScore && distance < bestDistance) {
			bestID = c.ID
			bestScore = score
			bestDistance = distance
		}
	}
	return bestID
}
