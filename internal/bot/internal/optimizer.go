package internal

import "jolly/internal/domain"

// Selection is a compatible subset of candidate melds.
type Selection struct {
	Melds      []Candidate
	CardCount  int
	Points     int
	HasPureRun bool
	MaxMeldLen int
}

// SelectBestMelds picks the compatible combination of candidates that plays
// the most cards from the hand. Ties break toward combinations containing a
// pure run when the seat has not opened yet, then toward the longest single
// meld, then toward the higher point total.
func SelectBestMelds(hand []domain.Card, opened bool) Selection {
	candidates := EnumerateMelds(hand)
	if len(candidates) == 0 {
		return Selection{}
	}

	used := make(map[int]bool)
	var best Selection
	var current []Candidate

	var walk func(from, cards, points int, pure bool, maxLen int)
	walk = func(from, cards, points int, pure bool, maxLen int) {
		sel := Selection{CardCount: cards, Points: points, HasPureRun: pure, MaxMeldLen: maxLen}
		if betterSelection(sel, best, !opened) {
			best = Selection{
				Melds:      append([]Candidate{}, current...),
				CardCount:  cards,
				Points:     points,
				HasPureRun: pure,
				MaxMeldLen: maxLen,
			}
		}
		for i := from; i < len(candidates); i++ {
			cand := candidates[i]
			if overlaps(used, cand.IDs) {
				continue
			}
			for _, id := range cand.IDs {
				used[id] = true
			}
			current = append(current, cand)
			length := len(cand.Cards)
			nextMax := maxLen
			if length > nextMax {
				nextMax = length
			}
			walk(i+1, cards+length, points+cand.Result.Points,
				pure || (cand.Result.Type == domain.MeldRun && cand.Result.Pure), nextMax)
			current = current[:len(current)-1]
			for _, id := range cand.IDs {
				delete(used, id)
			}
		}
	}
	walk(0, 0, 0, false, 0)
	return best
}

func betterSelection(a, b Selection, unopenedPreferPure bool) bool {
	if a.CardCount != b.CardCount {
		return a.CardCount > b.CardCount
	}
	if unopenedPreferPure && a.HasPureRun != b.HasPureRun {
		return a.HasPureRun
	}
	if a.MaxMeldLen != b.MaxMeldLen {
		return a.MaxMeldLen > b.MaxMeldLen
	}
	return a.Points > b.Points
}

func overlaps(used map[int]bool, ids []int) bool {
	for _, id := range ids {
		if used[id] {
			return true
		}
	}
	return false
}
