package app

import (
	"math/rand"
	"time"

	"jolly/internal/domain"

	"github.com/google/uuid"
)

// Service contains the Jolly use-cases operating on domain state. Every
// action takes the *domain.Game it mutates; rule violations are reported as
// result values, never as errors, and a rejected action leaves the game
// unchanged.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// ActionResult is the outcome of a turn action. Winner is set when the
// action ended the game; Score is the winner's score from the opponent's
// remaining hand.
type ActionResult struct {
	Success bool        `json:"success"`
	Msg     string      `json:"msg,omitempty"`
	Winner  domain.Seat `json:"winner,omitempty"`
	Score   int         `json:"score,omitempty"`
}

func fail(msg string) ActionResult {
	return ActionResult{Msg: msg}
}

// DrawResult is the outcome of a draw action.
type DrawResult struct {
	Success bool         `json:"success"`
	Msg     string       `json:"msg,omitempty"`
	Card    *domain.Card `json:"card,omitempty"`
}

// InitGame builds and shuffles the 108-card deck, applies the bottom-three
// Joker cut, deals 13 cards to the human and 12 to the CPU and sets one
// bottom card aside. Turn 1 starts in the action phase: the human opens the
// discard pile with their first discard instead of drawing.
//
// With debug set, the top of the stock is stacked so the human is dealt a
// ready-made opening; used for manual testing only.
func (s *Service) InitGame(difficulty domain.Difficulty, debug bool) (*domain.Game, []Event) {
	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	if debug {
		stackDebugDeal(deck)
	}

	g := &domain.Game{
		ID:         uuid.NewString(),
		Stock:      deck,
		Turn:       domain.SeatHuman,
		Phase:      domain.PhaseAction,
		Round:      1,
		Difficulty: difficulty,
	}
	g.ResetTurnState()

	// Bottom-three Joker cut: the bottom three cards are inspected, any
	// Jokers among them go straight to the human hand, the bottommost
	// remaining card becomes the face-up cut card.
	cut := g.Stock[:3]
	g.Stock = g.Stock[3:]
	var kept []domain.Card
	for _, c := range cut {
		if c.IsJoker() {
			g.HumanHand = append(g.HumanHand, c)
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) > 0 {
		bottom := kept[0]
		g.Bottom = &bottom
		g.Stock = append(append([]domain.Card{}, kept[1:]...), g.Stock...)
	}

	for len(g.HumanHand) < domain.HumanDeal {
		g.HumanHand = append(g.HumanHand, s.drawTop(g))
	}
	for len(g.CpuHand) < domain.CpuDeal {
		g.CpuHand = append(g.CpuHand, s.drawTop(g))
	}
	domain.SortHand(g.CpuHand)

	events := []Event{
		{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: domain.SeatHuman, Hand: g.HumanHand},
			Recipients: []string{string(domain.SeatHuman)},
		},
		{
			Kind:    EventGameStarted,
			Payload: GameStartedPayload{GameID: g.ID, Difficulty: g.Difficulty},
		},
	}
	return g, events
}

// drawTop pops the top card of the stock. The stock top is the slice end.
func (s *Service) drawTop(g *domain.Game) domain.Card {
	c := g.Stock[len(g.Stock)-1]
	g.Stock = g.Stock[:len(g.Stock)-1]
	return c
}

// stackDebugDeal moves a ready opening (a pure run and a high set) to the
// cards the human will be dealt.
func stackDebugDeal(deck []domain.Card) {
	wanted := []domain.CardIdentity{
		{Rank: 9, Suit: domain.SuitHearts},
		{Rank: 10, Suit: domain.SuitHearts},
		{Rank: domain.RankJack, Suit: domain.SuitHearts},
		{Rank: domain.RankQueen, Suit: domain.SuitHearts},
		{Rank: domain.RankKing, Suit: domain.SuitSpades},
		{Rank: domain.RankKing, Suit: domain.SuitClubs},
		{Rank: domain.RankKing, Suit: domain.SuitDiamonds},
	}
	slot := len(deck) - 1
	for _, id := range wanted {
		for i := slot; i >= 0; i-- {
			if deck[i].Rank == id.Rank && deck[i].Suit == id.Suit {
				deck[i], deck[slot] = deck[slot], deck[i]
				slot--
				break
			}
		}
	}
}
