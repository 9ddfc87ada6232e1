package internal

import "jolly/internal/domain"

// cardMask is a bitmask over the deck's card IDs, the canonical key for a
// set of cards regardless of order.
type cardMask [2]uint64

func maskOf(cards []domain.Card) cardMask {
	var m cardMask
	for _, c := range cards {
		m[c.ID>>6] |= 1 << uint(c.ID&63)
	}
	return m
}

// Candidate is a validated meld the hand could lay.
type Candidate struct {
	Cards  []domain.Card
	IDs    []int
	Result domain.MeldResult
}

// EnumerateMelds generates every candidate meld the solver considers: all
// 3- and 4-card same-rank sets, Joker-augmented pairs and triples, all
// contiguous same-suit run windows of length 3-5, and single-Joker windows
// with one missing rank (a gap or an end extension). Multi-Joker runs are
// deliberately not searched; this is a bounded heuristic, not a full
// enumeration.
func EnumerateMelds(hand []domain.Card) []Candidate {
	var naturals, jokers []domain.Card
	for _, c := range hand {
		if c.IsJoker() {
			jokers = append(jokers, c)
			continue
		}
		naturals = append(naturals, c)
	}

	seen := make(map[cardMask]bool)
	var out []Candidate
	add := func(cards []domain.Card) {
		key := maskOf(cards)
		if seen[key] {
			return
		}
		stripped := make([]domain.Card, len(cards))
		copy(stripped, cards)
		domain.ClearReps(stripped)
		res := domain.ValidateMeld(stripped)
		if !res.Valid {
			return
		}
		seen[key] = true
		out = append(out, Candidate{Cards: stripped, IDs: domain.CardIDs(stripped), Result: res})
	}

	enumerateSets(naturals, jokers, add)
	enumerateRuns(naturals, jokers, add)
	return out
}

func enumerateSets(naturals, jokers []domain.Card, add func([]domain.Card)) {
	byRank := make(map[domain.Rank][]domain.Card)
	for _, c := range naturals {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	for _, group := range byRank {
		n := len(group)
		// 3- and 4-card natural combinations.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					add([]domain.Card{group[i], group[j], group[k]})
					for l := k + 1; l < n; l++ {
						add([]domain.Card{group[i], group[j], group[k], group[l]})
					}
				}
			}
		}
		// One Joker on top of a pair or triple.
		for _, joker := range jokers {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					add([]domain.Card{group[i], group[j], joker})
					for k := j + 1; k < n; k++ {
						add([]domain.Card{group[i], group[j], group[k], joker})
					}
				}
			}
		}
	}
}

func enumerateRuns(naturals, jokers []domain.Card, add func([]domain.Card)) {
	bySuit := make(map[domain.Suit]map[int]domain.Card)
	for _, c := range naturals {
		if bySuit[c.Suit] == nil {
			bySuit[c.Suit] = make(map[int]domain.Card)
		}
		// One card per rank position; duplicates from the second deck do
		// not open new windows. The Ace anchors both ends of the order.
		if _, ok := bySuit[c.Suit][int(c.Rank)]; !ok {
			bySuit[c.Suit][int(c.Rank)] = c
		}
		if c.Rank == domain.RankAce {
			if _, ok := bySuit[c.Suit][1]; !ok {
				bySuit[c.Suit][1] = c
			}
		}
	}

	for _, positions := range bySuit {
		for length := 3; length <= 5; length++ {
			for start := 1; start+length-1 <= int(domain.RankAce); start++ {
				var window []domain.Card
				missing := 0
				usedIDs := make(map[int]bool)
				ok := true
				for o := start; o < start+length; o++ {
					c, present := positions[o]
					if present && !usedIDs[c.ID] {
						usedIDs[c.ID] = true
						window = append(window, c)
						continue
					}
					missing++
					if missing > 1 {
						ok = false
						break
					}
				}
				if !ok || len(window) < 2 {
					continue
				}
				if missing == 0 {
					add(window)
					continue
				}
				for _, joker := range jokers {
					add(append(append([]domain.Card{}, window...), joker))
				}
			}
		}
	}
}
