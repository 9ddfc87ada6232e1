package internal

import (
	"encoding/binary"

	"jolly/internal/domain"
)

// EvaluateHandProgress estimates how many hand cards stand between the seat
// and going out, given the current table. Lower is better; 0 means the hand
// can win on its next full turn. The estimate explores every reachable
// Joker-swap state, every compatible meld selection in that state and the
// lay-offs the leftover cards allow, and keeps the minimum.
//
// A hand that cannot open yet pays a flat penalty of two cards on top of its
// leftover count, since its melds stay locked in hand until the opening
// requirement is met.
func EvaluateHandProgress(hand []domain.Card, tableMelds []domain.Meld, opened bool) int {
	best := len(hand)
	seen := make(map[string]bool)

	var explore func(h []domain.Card, melds []domain.Meld)
	explore = func(h []domain.Card, melds []domain.Meld) {
		key := stateKey(h, melds)
		if seen[key] {
			return
		}
		seen[key] = true

		if d := bestDistance(h, melds, opened); d < best {
			best = d
		}
		if !opened {
			return
		}
		for _, swap := range DetectSetSwaps(h, melds) {
			explore(applySwap(h, melds, swap))
		}
	}
	explore(hand, tableMelds)
	return best
}

// selectionInfo is the representative outcome for one set of played hand
// cards. Different meld splits of the same cards only differ in points and
// purity; the leftover cards are identical.
type selectionInfo struct {
	points   int
	openable bool
}

func bestDistance(hand []domain.Card, tableMelds []domain.Meld, opened bool) int {
	candidates := EnumerateMelds(hand)
	index := make(map[int]int, len(hand))
	for i, c := range hand {
		index[c.ID] = i
	}

	selections := map[uint32]selectionInfo{0: {}}
	used := make(map[int]bool)

	var walk func(from int, mask uint32, points int, pure bool)
	walk = func(from int, mask uint32, points int, pure bool) {
		openable := pure && points >= domain.OpeningPoints
		if prev, ok := selections[mask]; !ok {
			selections[mask] = selectionInfo{points: points, openable: openable}
		} else {
			if points > prev.points {
				prev.points = points
			}
			if openable {
				prev.openable = true
			}
			selections[mask] = prev
		}
		for i := from; i < len(candidates); i++ {
			cand := candidates[i]
			if overlaps(used, cand.IDs) {
				continue
			}
			next := mask
			for _, id := range cand.IDs {
				used[id] = true
				next |= 1 << uint(index[id])
			}
			walk(i+1, next, points+cand.Result.Points,
				pure || (cand.Result.Type == domain.MeldRun && cand.Result.Pure))
			for _, id := range cand.IDs {
				delete(used, id)
			}
		}
	}
	walk(0, 0, 0, false)

	best := len(hand)
	layoffMemo := make(map[string]int)
	for mask, info := range selections {
		var leftover []domain.Card
		for i, c := range hand {
			if mask&(1<<uint(i)) == 0 {
				leftover = append(leftover, c)
			}
		}
		canPlay := opened || info.openable
		rem := len(leftover)
		if canPlay {
			rem = maxLayOffs(leftover, tableMelds, layoffMemo)
		}
		d := rem
		if canPlay {
			if rem <= 1 {
				// The last card goes to the discard pile.
				d = 0
			}
		} else {
			d = rem + 2
		}
		if d < best {
			best = d
		}
	}
	return best
}

// maxLayOffs returns the smallest leftover count reachable by laying cards
// onto the table melds, one at a time, in any order.
func maxLayOffs(leftover []domain.Card, melds []domain.Meld, memo map[string]int) int {
	key := stateKey(leftover, melds)
	if v, ok := memo[key]; ok {
		return v
	}
	best := len(leftover)
	for i, c := range leftover {
		for mi, meld := range melds {
			extended := append(append([]domain.Card{}, meld.Cards...), c)
			if res := domain.ValidateMeld(extended); !res.Valid {
				continue
			}
			nextLeft := append(append([]domain.Card{}, leftover[:i]...), leftover[i+1:]...)
			nextMelds := append([]domain.Meld{}, melds...)
			nextMelds[mi] = domain.Meld{Cards: extended}
			if v := maxLayOffs(nextLeft, nextMelds, memo); v < best {
				best = v
			}
		}
	}
	memo[key] = best
	return best
}

func applySwap(hand []domain.Card, melds []domain.Meld, swap SetSwap) ([]domain.Card, []domain.Meld) {
	nextHand := make([]domain.Card, 0, len(hand))
	var natural domain.Card
	for _, c := range hand {
		if c.ID == swap.HandCardID {
			natural = c
			continue
		}
		nextHand = append(nextHand, c)
	}
	nextHand = append(nextHand, domain.Card{ID: swap.JokerID, Suit: domain.SuitJoker, Rank: domain.RankJoker})

	nextMelds := append([]domain.Meld{}, melds...)
	meld := nextMelds[swap.MeldIndex]
	cards := make([]domain.Card, len(meld.Cards))
	copy(cards, meld.Cards)
	for i, c := range cards {
		if c.ID == swap.JokerID {
			cards[i] = natural
			break
		}
	}
	nextMelds[swap.MeldIndex] = domain.Meld{Cards: cards}
	return nextHand, nextMelds
}

// stateKey packs the hand's card-ID bitmask followed by one bitmask per
// meld, in table order. The partition matters: with two decks, identical
// card sets can be split across melds differently.
func stateKey(hand []domain.Card, melds []domain.Meld) string {
	buf := make([]byte, 0, 16*(1+len(melds)))
	appendMask := func(m cardMask) {
		buf = binary.LittleEndian.AppendUint64(buf, m[0])
		buf = binary.LittleEndian.AppendUint64(buf, m[1])
	}
	appendMask(maskOf(hand))
	for _, m := range melds {
		appendMask(maskOf(m.Cards))
	}
	return string(buf)
}
