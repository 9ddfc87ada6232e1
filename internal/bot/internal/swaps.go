package internal

import "jolly/internal/domain"

// SetSwap is a table Joker the hand can reclaim by substituting the natural
// card the Joker stands in for.
type SetSwap struct {
	MeldIndex  int
	HandCardID int
	JokerID    int
}

// DetectSetSwaps finds every Joker the hand could swap out of a table meld.
// Only complete four-card sets qualify; runs and three-card sets keep their
// Jokers.
func DetectSetSwaps(hand []domain.Card, melds []domain.Meld) []SetSwap {
	var out []SetSwap
	for mi, meld := range melds {
		if len(meld.Cards) != 4 {
			continue
		}
		res := domain.ValidateMeld(meld.Cards)
		if !res.Valid || res.Type != domain.MeldSet {
			continue
		}
		for _, c := range meld.Cards {
			if !c.IsJoker() || c.Rep == nil {
				continue
			}
			for _, h := range hand {
				if h.IsJoker() || h.Rank != c.Rep.Rank || h.Suit != c.Rep.Suit {
					continue
				}
				out = append(out, SetSwap{MeldIndex: mi, HandCardID: h.ID, JokerID: c.ID})
				break
			}
		}
	}
	return out
}

// SwapFreesMeldableJoker reports whether reclaiming the Joker of the given
// swap lets the hand lay more cards than it could without swapping. A swap
// that only parks a Joker in the hand feeds the opponent 25 points if the
// game ends, so it is worth taking only when the Joker extends a meld. The
// post-swap plan must also leave a card behind: a reclaimed Joker may not be
// discarded, so a plan that melds the whole hand leaves no legal way to end
// the turn.
func SwapFreesMeldableJoker(hand []domain.Card, swap SetSwap, opened bool) bool {
	after := make([]domain.Card, 0, len(hand))
	for _, c := range hand {
		if c.ID == swap.HandCardID {
			continue
		}
		after = append(after, c)
	}
	after = append(after, domain.Card{ID: swap.JokerID, Suit: domain.SuitJoker, Rank: domain.RankJoker})

	before := SelectBestMelds(hand, opened)
	with := SelectBestMelds(after, opened)
	for _, cand := range with.Melds {
		if domain.ContainsID(cand.Cards, swap.JokerID) {
			return with.CardCount > before.CardCount && with.CardCount < len(after)
		}
	}
	return false
}
