package app

import (
	"jolly/internal/bot"
	"jolly/internal/domain"
)

// CpuTurnResult summarizes what the CPU did with its turn so the transport
// layer can narrate it to the human.
type CpuTurnResult struct {
	Winner        domain.Seat       `json:"winner,omitempty"`
	Score         int               `json:"score,omitempty"`
	DrawSource    domain.DrawSource `json:"draw_source"`
	MeldsPlayed   int               `json:"melds_played"`
	DiscardedCard *domain.Card      `json:"discarded_card,omitempty"`
}

// ProcessCpuTurn plays one full CPU turn: draw, Joker swaps, melds, lay-offs
// and the closing discard. The brain only plans; every move goes through the
// same rule-checked actions the human uses, and a move the rules refuse is
// silently dropped. The turn always terminates: if the planned discard is
// refused the orchestrator walks the hand, then cancels the turn's melds and
// walks it again.
func (s *Service) ProcessCpuTurn(g *domain.Game) (CpuTurnResult, []Event) {
	var result CpuTurnResult
	if g.Turn != domain.SeatCpu || g.Phase != domain.PhaseDraw {
		return result, nil
	}

	brain := bot.NewBrain(g.Difficulty, s.rng)

	result.DrawSource = brain.ChooseDrawSource(g)
	if dr := s.DrawCard(g, result.DrawSource); !dr.Success {
		result.DrawSource = domain.DrawStock
		if dr := s.DrawCard(g, domain.DrawStock); !dr.Success {
			// Stock and discard pile are both empty; play on with the
			// current hand.
			g.Phase = domain.PhaseAction
		}
	}

	for _, swap := range brain.ProposeSwaps(g) {
		s.AttemptJokerSwap(g, swap.MeldIndex, swap.HandCardID)
	}

	for _, group := range brain.PlanMelds(g) {
		if len(group) == len(g.Hand(domain.SeatCpu)) {
			// A meld must never empty the hand; the last card belongs to
			// the discard pile or a lay-off.
			continue
		}
		if res := s.AttemptMeld(g, group); res.Success {
			result.MeldsPlayed++
		}
	}

	for _, lo := range brain.PlanLayOffs(g) {
		res := s.AddToExistingMeld(g, lo.MeldIndex, []int{lo.CardID})
		if res.Winner != "" {
			result.Winner = res.Winner
			result.Score = res.Score
			return result, s.endEvents(result)
		}
	}

	if res, ok := s.cpuDiscard(g, brain.ChooseDiscard(g)); ok {
		if res.Winner != "" {
			result.Winner = res.Winner
			result.Score = res.Score
		}
		top, _ := g.DiscardTop()
		if result.Winner == "" {
			result.DiscardedCard = &top
		}
		return result, s.endEvents(result)
	}

	// Every discard was refused; back out of the turn's melds and try the
	// restored hand, undoing a blocking discard draw if needed.
	s.CancelTurnMelds(g)
	result.MeldsPlayed = 0
	if _, ok := s.cpuDiscard(g, -1); ok {
		top, _ := g.DiscardTop()
		result.DiscardedCard = &top
		return result, s.endEvents(result)
	}
	if s.UndoDraw(g).Success {
		s.DrawCard(g, domain.DrawStock)
		if _, ok := s.cpuDiscard(g, -1); ok {
			top, _ := g.DiscardTop()
			result.DiscardedCard = &top
		}
	}
	return result, s.endEvents(result)
}

// cpuDiscard tries the preferred card first, then every other hand card.
func (s *Service) cpuDiscard(g *domain.Game, preferredID int) (ActionResult, bool) {
	if preferredID >= 0 {
		if res := s.AttemptDiscard(g, preferredID); res.Success {
			return res, true
		}
	}
	for _, c := range append([]domain.Card{}, g.Hand(domain.SeatCpu)...) {
		if c.ID == preferredID {
			continue
		}
		if res := s.AttemptDiscard(g, c.ID); res.Success {
			return res, true
		}
	}
	return ActionResult{}, false
}

func (s *Service) endEvents(result CpuTurnResult) []Event {
	events := []Event{{
		Kind: EventCpuTurn,
		Payload: CpuTurnPayload{
			DrawSource:    result.DrawSource,
			MeldsPlayed:   result.MeldsPlayed,
			DiscardedCard: result.DiscardedCard,
		},
	}}
	if result.Winner != "" {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: result.Winner, Score: result.Score},
		})
	}
	return events
}
