package domain

// Seat identifies the acting side. Jolly is fixed at one human against the
// house CPU.
type Seat string

const (
	SeatHuman Seat = "human"
	SeatCpu   Seat = "cpu"
)

// Opponent returns the other side.
func (s Seat) Opponent() Seat {
	if s == SeatHuman {
		return SeatCpu
	}
	return SeatHuman
}

// TurnPhase is the stage within one turn: a draw (or Jolly call) followed by
// the action phase that ends with a discard.
type TurnPhase string

const (
	PhaseDraw   TurnPhase = "draw"
	PhaseAction TurnPhase = "action"
)

// DrawSource selects where a draw takes its card from.
type DrawSource string

const (
	DrawStock   DrawSource = "stock"
	DrawDiscard DrawSource = "discard"
)

// Difficulty selects the CPU strategy tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MeldAddition records cards laid onto a pre-existing meld during the current
// turn so the addition can be reverted before the turn commits.
type MeldAddition struct {
	MeldIndex int
	CardIDs   []int
}

// Game is the authoritative state for one Jolly session. It is created once
// by InitGame and mutated in place by the action operations; the caller owns
// it exclusively.
type Game struct {
	ID string `json:"id"`

	Stock       []Card `json:"-"`
	HumanHand   []Card `json:"-"`
	CpuHand     []Card `json:"-"`
	Melds       []Meld `json:"melds"`
	DiscardPile []Card `json:"discard_pile"`
	Bottom      *Card  `json:"-"`

	Turn       Seat       `json:"turn"`
	Phase      TurnPhase  `json:"phase"`
	Round      int        `json:"round"`
	Difficulty Difficulty `json:"difficulty"`

	HumanOpened  bool `json:"human_opened"`
	CpuOpened    bool `json:"cpu_opened"`
	HumanPureRun bool `json:"human_pure_run"`
	CpuPureRun   bool `json:"cpu_pure_run"`

	// Turn-scoped fields, reset on every turn flip.
	TurnMelds          []int          `json:"-"`
	TurnPoints         int            `json:"-"`
	TurnAdditions      []MeldAddition `json:"-"`
	DrawnFromDiscardID int            `json:"-"` // -1 when no discard draw happened
	DiscardCardUsed    bool           `json:"-"`
	SwappedJokerIDs    []int          `json:"-"`
	JollyTurn          bool           `json:"-"`
}

// Hand returns the hand of the given seat.
func (g *Game) Hand(s Seat) []Card {
	if s == SeatHuman {
		return g.HumanHand
	}
	return g.CpuHand
}

// SetHand replaces the hand of the given seat.
func (g *Game) SetHand(s Seat, cards []Card) {
	if s == SeatHuman {
		g.HumanHand = cards
		return
	}
	g.CpuHand = cards
}

// Opened reports whether the seat has committed its opening.
func (g *Game) Opened(s Seat) bool {
	if s == SeatHuman {
		return g.HumanOpened
	}
	return g.CpuOpened
}

// SetOpened marks the seat's opening as committed.
func (g *Game) SetOpened(s Seat) {
	if s == SeatHuman {
		g.HumanOpened = true
		g.HumanPureRun = true
		return
	}
	g.CpuOpened = true
	g.CpuPureRun = true
}

// ResetTurnState clears all turn-scoped fields. Called on every turn flip and
// at game start.
func (g *Game) ResetTurnState() {
	g.TurnMelds = nil
	g.TurnPoints = 0
	g.TurnAdditions = nil
	g.DrawnFromDiscardID = -1
	g.DiscardCardUsed = false
	g.SwappedJokerIDs = nil
	g.JollyTurn = false
}

// CardCount sums every container. It must always equal DeckSize.
func (g *Game) CardCount() int {
	n := len(g.Stock) + len(g.HumanHand) + len(g.CpuHand) + len(g.DiscardPile)
	for _, m := range g.Melds {
		n += len(m.Cards)
	}
	if g.Bottom != nil {
		n++
	}
	return n
}

// DiscardTop returns the top discard card, if any.
func (g *Game) DiscardTop() (Card, bool) {
	if len(g.DiscardPile) == 0 {
		return Card{}, false
	}
	return g.DiscardPile[len(g.DiscardPile)-1], true
}

// TurnMeldHasPureRun reports whether any meld created this turn is a pure run.
func (g *Game) TurnMeldHasPureRun() bool {
	for _, idx := range g.TurnMelds {
		if idx < 0 || idx >= len(g.Melds) {
			continue
		}
		res := ValidateMeld(g.Melds[idx].Cards)
		if res.Valid && res.Pure {
			return true
		}
	}
	return false
}

// IsTurnMeld reports whether the meld at idx was created during this turn.
func (g *Game) IsTurnMeld(idx int) bool {
	for _, i := range g.TurnMelds {
		if i == idx {
			return true
		}
	}
	return false
}

// LabelPayload is the advertised match label for lobby listing.
type LabelPayload struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
	Round int    `json:"round"`
}

// ComputeLabel derives the advertised label from game state. A nil game means
// the match is still open in the lobby.
func ComputeLabel(g *Game) LabelPayload {
	label := LabelPayload{Open: g == nil, Game: "jolly"}
	if g != nil {
		label.Phase = string(g.Phase)
		label.Round = g.Round
	}
	return label
}
