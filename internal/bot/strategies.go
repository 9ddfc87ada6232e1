package bot

import (
	"math/rand"

	"jolly/internal/bot/internal"
	"jolly/internal/domain"
)

// jokerKeepScore keeps Jokers out of every discard heuristic unless the
// hand holds nothing else.
const jokerKeepScore = 1e9

// committableMelds plans the meld groups the CPU hand can actually lay this
// turn. An unopened seat gets a plan only when the combined selection
// clears the opening requirement.
func committableMelds(g *domain.Game) [][]int {
	opened := g.Opened(domain.SeatCpu)
	sel := internal.SelectBestMelds(g.Hand(domain.SeatCpu), opened)
	if len(sel.Melds) == 0 {
		return nil
	}
	if !opened && !(sel.HasPureRun && sel.Points >= domain.OpeningPoints) {
		return nil
	}
	groups := make([][]int, 0, len(sel.Melds))
	for _, cand := range sel.Melds {
		groups = append(groups, cand.IDs)
	}
	return groups
}

// wantsDiscardDraw reports whether taking the discard top improves the
// turn: the card must be legal to take and appear in a meld the hand could
// commit after drawing it.
func wantsDiscardDraw(g *domain.Game) bool {
	if g.Round < domain.MeldMinRound {
		return false
	}
	top, ok := g.DiscardTop()
	if !ok {
		return false
	}
	hand := append(append([]domain.Card{}, g.Hand(domain.SeatCpu)...), top)
	opened := g.Opened(domain.SeatCpu)
	sel := internal.SelectBestMelds(hand, opened)
	if !opened && !(sel.HasPureRun && sel.Points >= domain.OpeningPoints) {
		return false
	}
	for _, cand := range sel.Melds {
		if containsInt(cand.IDs, top.ID) {
			return true
		}
	}
	return false
}

// greedyLayOffs finds single-card additions onto the table melds, chaining
// through cards that only fit after an earlier addition.
func greedyLayOffs(g *domain.Game) []LayOff {
	if !g.Opened(domain.SeatCpu) && !openedThisTurn(g) {
		return nil
	}
	hand := append([]domain.Card{}, g.Hand(domain.SeatCpu)...)
	melds := make([]domain.Meld, len(g.Melds))
	copy(melds, g.Melds)

	var out []LayOff
	for progress := true; progress; {
		progress = false
		for i := 0; i < len(hand); i++ {
			placed := false
			for mi, meld := range melds {
				extended := append(append([]domain.Card{}, meld.Cards...), hand[i])
				if res := domain.ValidateMeld(extended); !res.Valid {
					continue
				}
				out = append(out, LayOff{MeldIndex: mi, CardID: hand[i].ID})
				melds[mi] = domain.Meld{Cards: extended}
				hand = append(hand[:i], hand[i+1:]...)
				placed = true
				progress = true
				break
			}
			if placed {
				i--
			}
		}
	}
	return out
}

// productiveSwaps filters detected swaps down to the ones that free a Joker
// the hand can immediately meld.
func productiveSwaps(g *domain.Game) []SwapProposal {
	if !g.Opened(domain.SeatCpu) {
		return nil
	}
	hand := g.Hand(domain.SeatCpu)
	var out []SwapProposal
	for _, swap := range internal.DetectSetSwaps(hand, g.Melds) {
		if !internal.SwapFreesMeldableJoker(hand, swap, true) {
			continue
		}
		out = append(out, SwapProposal{MeldIndex: swap.MeldIndex, HandCardID: swap.HandCardID})
	}
	return out
}

func randomDiscard(rng *rand.Rand, hand []domain.Card) int {
	if len(hand) == 0 {
		return -1
	}
	var naturals []int
	for _, c := range hand {
		if !c.IsJoker() {
			naturals = append(naturals, c.ID)
		}
	}
	if len(naturals) > 0 {
		return naturals[rng.Intn(len(naturals))]
	}
	return hand[rng.Intn(len(hand))].ID
}

// lowestKeepScore returns the ID of the hand card the scorer values least.
func lowestKeepScore(hand []domain.Card, score func(domain.Card) float64) int {
	if len(hand) == 0 {
		return -1
	}
	bestID := hand[0].ID
	bestScore := score(hand[0])
	for _, c := range hand[1:] {
		if s := score(c); s < bestScore {
			bestScore = s
			bestID = c.ID
		}
	}
	return bestID
}

// openedThisTurn reports whether the melds already laid this turn satisfy
// the opening requirement, which unlocks additions before the discard
// commits the opening.
func openedThisTurn(g *domain.Game) bool {
	return len(g.TurnMelds) > 0 && g.TurnPoints >= domain.OpeningPoints && g.TurnMeldHasPureRun()
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
