package domain

import "sort"

// OrganizeMeld assigns or repairs Joker representations and returns the meld
// in canonical display order. Non-Joker cards are never modified. The
// operation is deterministic and idempotent on an already organized, still
// valid meld. An invalid selection is returned unchanged.
func OrganizeMeld(cards []Card) []Card {
	res := ValidateMeld(cards)
	if !res.Valid {
		out := make([]Card, len(cards))
		copy(out, cards)
		return out
	}

	naturals, jokers := splitJokers(cards)

	// Drop representations that now collide with a real card in the meld.
	for i := range jokers {
		if jokers[i].Rep == nil {
			continue
		}
		for _, n := range naturals {
			if n.Rank == jokers[i].Rep.Rank && n.Suit == jokers[i].Rep.Suit {
				jokers[i].Rep = nil
				break
			}
		}
	}

	if res.Type == MeldSet {
		return organizeSet(naturals, jokers)
	}
	return organizeRun(naturals, jokers)
}

func organizeSet(naturals, jokers []Card) []Card {
	rank := naturals[0].Rank

	used := make(map[Suit]bool, 4)
	for _, n := range naturals {
		used[n.Suit] = true
	}
	for i := range jokers {
		if jokers[i].Rep != nil && jokers[i].Rep.Rank != rank {
			jokers[i].Rep = nil
		}
		if jokers[i].Rep != nil {
			used[jokers[i].Rep.Suit] = true
		}
	}

	// Each unassigned Joker takes the lowest unused suit in canonical order.
	for i := range jokers {
		if jokers[i].Rep != nil {
			continue
		}
		for _, s := range CanonicalSuits {
			if !used[s] {
				jokers[i].Rep = &CardIdentity{Rank: rank, Suit: s}
				used[s] = true
				break
			}
		}
	}

	out := append(append([]Card{}, naturals...), jokers...)
	sort.SliceStable(out, func(i, j int) bool {
		return suitOrder(out[i].EffectiveIdentity().Suit) < suitOrder(out[j].EffectiveIdentity().Suit)
	})
	return out
}

func organizeRun(naturals, jokers []Card) []Card {
	suit := naturals[0].Suit
	layout, ok := solveRunLayout(naturals, len(jokers), false)
	if !ok {
		layout, _ = solveRunLayout(naturals, len(jokers), true)
	}

	sorted := make([]Card, len(naturals))
	copy(sorted, naturals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderOf(sorted[i].Rank, layout.aceLow) < orderOf(sorted[j].Rank, layout.aceLow)
	})

	// Runs are re-derived from scratch: slot assignment depends only on the
	// natural cards, so recomputing keeps the result stable across calls.
	jokerQueue := make([]Card, len(jokers))
	copy(jokerQueue, jokers)
	takeJoker := func(order int) Card {
		j := jokerQueue[0]
		jokerQueue = jokerQueue[1:]
		j.Rep = &CardIdentity{Rank: rankAtOrder(order), Suit: suit}
		return j
	}

	out := make([]Card, 0, len(naturals)+len(jokers))
	for i, n := range sorted {
		if i > 0 {
			prev := orderOf(sorted[i-1].Rank, layout.aceLow)
			for o := prev + 1; o < orderOf(n.Rank, layout.aceLow); o++ {
				out = append(out, takeJoker(o))
			}
		}
		n.Rep = nil
		out = append(out, n)
	}

	if layout.extHigh > 0 {
		out = append(out, takeJoker(layout.highOrder()))
	}
	if layout.extLow > 0 {
		out = append([]Card{takeJoker(layout.lowOrder())}, out...)
	}
	return out
}
