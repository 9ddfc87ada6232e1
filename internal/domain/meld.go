package domain

import "sort"

// MeldType distinguishes the two legal meld shapes.
type MeldType string

const (
	MeldSet MeldType = "set"
	MeldRun MeldType = "run"
)

// MeldResult is the outcome of validating a card selection as a meld.
type MeldResult struct {
	Valid  bool
	Type   MeldType
	Points int
	// Pure is true for a run containing no Jokers.
	Pure bool
}

// Meld is a validated Set or Run laid on the table. The slice order is the
// canonical display order produced by OrganizeMeld. A meld's index in
// Game.Melds is stable for its lifetime.
type Meld struct {
	Cards []Card `json:"cards"`
}

// JokerCount returns the number of Jokers in the meld.
func (m Meld) JokerCount() int {
	n := 0
	for _, c := range m.Cards {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// Points re-validates the meld and returns its point value.
func (m Meld) Points() int {
	return ValidateMeld(m.Cards).Points
}

// ValidateMeld checks whether the cards form a legal Set or Run and computes
// the meld's point value. The result is independent of card order.
//
// A Set is 3-4 cards of one rank with pairwise distinct suits among the
// non-Jokers. A Run is 3+ same-suit consecutive cards where each Joker
// stands for exactly one missing or extending rank; the Ace is tried high
// (after King) first, then low (before 2) when a low anchor (2..5) is
// present.
func ValidateMeld(cards []Card) MeldResult {
	if len(cards) < 3 {
		return MeldResult{}
	}

	naturals, jokers := splitJokers(cards)
	if len(naturals) == 0 {
		// A meld of Jokers alone has no rank or suit anchor.
		return MeldResult{}
	}

	if res, ok := validateSet(naturals, len(cards)); ok {
		return res
	}
	return validateRun(naturals, len(jokers))
}

func splitJokers(cards []Card) (naturals, jokers []Card) {
	for _, c := range cards {
		if c.IsJoker() {
			jokers = append(jokers, c)
			continue
		}
		naturals = append(naturals, c)
	}
	return naturals, jokers
}

func validateSet(naturals []Card, total int) (MeldResult, bool) {
	if total > 4 {
		return MeldResult{}, false
	}
	rank := naturals[0].Rank
	seen := make(map[Suit]bool, len(naturals))
	for _, c := range naturals {
		if c.Rank != rank {
			return MeldResult{}, false
		}
		if seen[c.Suit] {
			// A repeated suit invalidates the set.
			return MeldResult{}, false
		}
		seen[c.Suit] = true
	}
	return MeldResult{
		Valid:  true,
		Type:   MeldSet,
		Points: RankValue(rank) * total,
	}, true
}

// runLayout captures a concrete interpretation of a run: the sorted rank
// orders of the natural cards, the orders Jokers must fill, and how many
// leftover Jokers extend past each end.
type runLayout struct {
	aceLow  bool
	orders  []int // natural card orders, ascending
	gaps    []int // missing internal orders, ascending
	extLow  int   // 0 or 1
	extHigh int   // 0 or 1
}

// lowOrder/highOrder give the full span covered by the run.
func (l runLayout) lowOrder() int  { return l.orders[0] - l.extLow }
func (l runLayout) highOrder() int { return l.orders[len(l.orders)-1] + l.extHigh }

// orderOf maps a rank to its position in the run order space. With the Ace
// low it sits at 1, before the 2; high it sits at 14, after the King.
func orderOf(r Rank, aceLow bool) int {
	if r == RankAce && aceLow {
		return 1
	}
	return int(r)
}

// rankAtOrder is the inverse: position 1 and 14 are both the Ace.
func rankAtOrder(order int) Rank {
	if order == 1 {
		return RankAce
	}
	return Rank(order)
}

// pointsAtOrder scores one run position. The low Ace counts 1, everything
// from the Jack up counts 10.
func pointsAtOrder(order int) int {
	switch {
	case order == 1:
		return 1
	case order >= int(RankJack):
		return 10
	default:
		return order
	}
}

func validateRun(naturals []Card, jokerCount int) MeldResult {
	suit := naturals[0].Suit
	hasLowAnchor := false
	for _, c := range naturals {
		if c.Suit != suit {
			return MeldResult{}
		}
		if c.Rank >= 2 && c.Rank <= 5 {
			hasLowAnchor = true
		}
	}

	// Ace-high is preferred; Ace-low is only tried when the run holds a
	// rank in 2..5 that could anchor it.
	if layout, ok := solveRunLayout(naturals, jokerCount, false); ok {
		return runResult(layout, jokerCount)
	}
	if hasLowAnchor {
		if layout, ok := solveRunLayout(naturals, jokerCount, true); ok {
			return runResult(layout, jokerCount)
		}
	}
	return MeldResult{}
}

func runResult(layout runLayout, jokerCount int) MeldResult {
	points := 0
	for o := layout.lowOrder(); o <= layout.highOrder(); o++ {
		points += pointsAtOrder(o)
	}
	return MeldResult{
		Valid:  true,
		Type:   MeldRun,
		Points: points,
		Pure:   jokerCount == 0,
	}
}

// solveRunLayout attempts to place the naturals and Jokers under one Ace
// interpretation. Each internal gap may be at most one rank wide (a Joker
// stands for a single card) and leftover Jokers extend at most one card
// past each end, inside the 2..Ace bound.
func solveRunLayout(naturals []Card, jokerCount int, aceLow bool) (runLayout, bool) {
	orders := make([]int, len(naturals))
	for i, c := range naturals {
		orders[i] = orderOf(c.Rank, aceLow)
	}
	sort.Ints(orders)

	var gaps []int
	for i := 1; i < len(orders); i++ {
		d := orders[i] - orders[i-1]
		if d <= 0 {
			// Duplicate rank inside one run.
			return runLayout{}, false
		}
		if d-1 > 1 {
			// More than one missing rank between neighbors.
			return runLayout{}, false
		}
		if d == 2 {
			gaps = append(gaps, orders[i]-1)
		}
	}
	if len(gaps) > jokerCount {
		return runLayout{}, false
	}

	leftover := jokerCount - len(gaps)
	lowBound, highBound := 2, int(RankAce)
	if aceLow {
		lowBound, highBound = 1, int(RankKing)
	}

	highRoom := 0
	if orders[len(orders)-1] < highBound {
		highRoom = 1
	}
	lowRoom := 0
	if orders[0] > lowBound {
		lowRoom = 1
	}
	if leftover > highRoom+lowRoom {
		return runLayout{}, false
	}

	// Leftover Jokers go past the high end first, then the low end.
	extHigh := leftover
	if extHigh > highRoom {
		extHigh = highRoom
	}
	extLow := leftover - extHigh

	return runLayout{
		aceLow:  aceLow,
		orders:  orders,
		gaps:    gaps,
		extLow:  extLow,
		extHigh: extHigh,
	}, true
}
