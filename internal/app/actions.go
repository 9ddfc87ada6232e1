package app

import (
	"fmt"

	"jolly/internal/domain"
)

// DrawCard takes a card from the stock or the discard pile into the acting
// hand and moves the turn to the action phase. Discard draws unlock in round
// 3 and create a must-meld obligation on the drawn card. An empty stock is
// refilled by reshuffling the discard pile; when both are empty the draw
// fails.
func (s *Service) DrawCard(g *domain.Game, source domain.DrawSource) DrawResult {
	if g.Phase != domain.PhaseDraw {
		return DrawResult{Msg: "you can only draw at the start of your turn"}
	}

	var card domain.Card
	switch source {
	case domain.DrawStock:
		if len(g.Stock) == 0 {
			if len(g.DiscardPile) == 0 {
				return DrawResult{Msg: "both the stock and the discard pile are empty"}
			}
			g.Stock = g.DiscardPile
			g.DiscardPile = nil
			s.rng.Shuffle(len(g.Stock), func(i, j int) { g.Stock[i], g.Stock[j] = g.Stock[j], g.Stock[i] })
		}
		card = s.drawTop(g)
	case domain.DrawDiscard:
		if g.Round < domain.MeldMinRound {
			return DrawResult{Msg: fmt.Sprintf("the discard pile can only be drawn from round %d", domain.MeldMinRound)}
		}
		top, ok := g.DiscardTop()
		if !ok {
			return DrawResult{Msg: "the discard pile is empty"}
		}
		g.DiscardPile = g.DiscardPile[:len(g.DiscardPile)-1]
		card = top
		g.DrawnFromDiscardID = card.ID
	default:
		return DrawResult{Msg: "unknown draw source"}
	}

	hand := append(g.Hand(g.Turn), card)
	if g.Turn == domain.SeatCpu {
		domain.SortHand(hand)
	}
	g.SetHand(g.Turn, hand)
	g.Phase = domain.PhaseAction

	drawn := card
	return DrawResult{Success: true, Card: &drawn}
}

// UndoDraw reverts a discard draw before anything else happened this turn:
// the card goes back on top of the pile, the obligation is cleared and the
// turn returns to the draw phase.
func (s *Service) UndoDraw(g *domain.Game) ActionResult {
	if g.Phase != domain.PhaseAction {
		return fail("there is no draw to undo")
	}
	if g.DrawnFromDiscardID < 0 {
		return fail("you did not draw from the discard pile this turn")
	}
	if len(g.TurnMelds) > 0 || len(g.TurnAdditions) > 0 || len(g.SwappedJokerIDs) > 0 {
		return fail("the draw can no longer be undone after melding")
	}

	hand := g.Hand(g.Turn)
	card, _, ok := domain.FindByID(hand, g.DrawnFromDiscardID)
	if !ok {
		return fail("the drawn card is no longer in your hand")
	}
	remaining, _ := domain.RemoveByID(hand, []int{card.ID})
	g.SetHand(g.Turn, remaining)
	card.Selected = false
	g.DiscardPile = append(g.DiscardPile, card)
	g.DrawnFromDiscardID = -1
	g.Phase = domain.PhaseDraw
	return ActionResult{Success: true}
}

// AttemptMeld validates the selected hand cards as a new Set or Run and lays
// them on the table. New melds unlock in round 3. The meld is tracked as a
// turn meld and counts toward the opening points until the turn commits.
func (s *Service) AttemptMeld(g *domain.Game, cardIDs []int) ActionResult {
	if g.Phase != domain.PhaseAction {
		return fail("melds can only be played in the action phase")
	}
	if g.Round < domain.MeldMinRound {
		return fail(fmt.Sprintf("melding is not allowed before round %d", domain.MeldMinRound))
	}

	hand := g.Hand(g.Turn)
	remaining, selection := domain.RemoveByID(hand, cardIDs)
	if len(selection) != len(cardIDs) {
		return fail("some of the selected cards are not in your hand")
	}

	// Stale representations from a cancelled meld must not bias validation.
	domain.ClearReps(selection)
	res := domain.ValidateMeld(selection)
	if !res.Valid {
		return fail("the selected cards are not a valid set or run")
	}

	organized := domain.OrganizeMeld(selection)
	for i := range organized {
		organized[i].Selected = false
	}
	g.Melds = append(g.Melds, domain.Meld{Cards: organized})
	g.TurnMelds = append(g.TurnMelds, len(g.Melds)-1)
	g.SetHand(g.Turn, remaining)

	if g.DrawnFromDiscardID >= 0 && containsInt(cardIDs, g.DrawnFromDiscardID) {
		g.DiscardCardUsed = true
	}
	s.recomputeTurnPoints(g)
	return ActionResult{Success: true}
}

// AddToExistingMeld lays selected hand cards onto the meld at the given
// index. Additions to melds that predate this turn require the opening
// condition (36 points with a pure run, possibly satisfied within this same
// turn) and are recorded so they can be reverted until the turn commits.
// Going out through an addition wins the game.
func (s *Service) AddToExistingMeld(g *domain.Game, meldIndex int, cardIDs []int) ActionResult {
	if g.Phase != domain.PhaseAction {
		return fail("cards can only be added in the action phase")
	}
	if meldIndex < 0 || meldIndex >= len(g.Melds) {
		return fail("no such meld on the table")
	}
	if len(cardIDs) == 0 {
		return fail("no cards selected")
	}

	hand := g.Hand(g.Turn)
	remaining, selection := domain.RemoveByID(hand, cardIDs)
	if len(selection) != len(cardIDs) {
		return fail("some of the selected cards are not in your hand")
	}

	preExisting := !g.IsTurnMeld(meldIndex)
	if preExisting && !g.Opened(g.Turn) {
		if g.TurnPoints < domain.OpeningPoints || !g.TurnMeldHasPureRun() {
			return fail(fmt.Sprintf("you need %d points and a pure run on the table before extending other melds", domain.OpeningPoints))
		}
	}

	combined := append(append([]domain.Card{}, g.Melds[meldIndex].Cards...), selection...)
	res := domain.ValidateMeld(combined)
	if !res.Valid {
		clearHandReps(g, cardIDs)
		return fail("those cards do not fit that meld")
	}

	organized := domain.OrganizeMeld(combined)
	for i := range organized {
		organized[i].Selected = false
	}
	g.Melds[meldIndex].Cards = organized
	g.SetHand(g.Turn, remaining)

	if preExisting {
		g.TurnAdditions = append(g.TurnAdditions, domain.MeldAddition{MeldIndex: meldIndex, CardIDs: cardIDs})
	}
	if g.DrawnFromDiscardID >= 0 && containsInt(cardIDs, g.DrawnFromDiscardID) {
		g.DiscardCardUsed = true
	}
	s.recomputeTurnPoints(g)

	if len(remaining) == 0 {
		if !s.openingSatisfied(g) {
			// Roll the addition back rather than strand an unwinnable state.
			s.revertAddition(g, meldIndex, cardIDs)
			return fail("you cannot go out before opening")
		}
		return s.declareWin(g)
	}
	return ActionResult{Success: true}
}

// AttemptJokerSwap exchanges a meld's Joker for the hand card matching its
// represented identity. Only an opened player may swap; a Set must be
// complete (four cards) before its Joker can be taken. The freed Joker
// returns to the hand and must be melded before the turn ends.
func (s *Service) AttemptJokerSwap(g *domain.Game, meldIndex, handCardID int) ActionResult {
	if g.Phase != domain.PhaseAction {
		return fail("Joker swaps are only allowed in the action phase")
	}
	if !g.Opened(g.Turn) {
		return fail("you must open before swapping Jokers")
	}
	if meldIndex < 0 || meldIndex >= len(g.Melds) {
		return fail("no such meld on the table")
	}

	hand := g.Hand(g.Turn)
	handCard, _, ok := domain.FindByID(hand, handCardID)
	if !ok {
		return fail("that card is not in your hand")
	}

	meld := g.Melds[meldIndex]
	res := domain.ValidateMeld(meld.Cards)
	if res.Type == domain.MeldSet && len(meld.Cards) < 4 {
		return fail("a Joker can only be swapped out of a complete four-card set")
	}

	jokerIdx := -1
	for i, c := range meld.Cards {
		if c.IsJoker() && c.Rep != nil && c.Rep.Rank == handCard.Rank && c.Rep.Suit == handCard.Suit {
			jokerIdx = i
			break
		}
	}
	if jokerIdx < 0 {
		return fail("that meld has no Joker representing this card")
	}

	joker := meld.Cards[jokerIdx]
	swapped := append(append([]domain.Card{}, meld.Cards[:jokerIdx]...), meld.Cards[jokerIdx+1:]...)
	handCard.Selected = false
	swapped = append(swapped, handCard)
	if !domain.ValidateMeld(swapped).Valid {
		return fail("the swap would break that meld")
	}
	g.Melds[meldIndex].Cards = domain.OrganizeMeld(swapped)

	remaining, _ := domain.RemoveByID(hand, []int{handCardID})
	joker.Rep = nil
	joker.Selected = false
	remaining = append(remaining, joker)
	if g.Turn == domain.SeatCpu {
		domain.SortHand(remaining)
	}
	g.SetHand(g.Turn, remaining)
	g.SwappedJokerIDs = append(g.SwappedJokerIDs, joker.ID)
	return ActionResult{Success: true}
}

// CancelTurnMelds reverts, in reverse order, every addition and meld made
// this turn, returning the cards to the acting hand with cleared Joker
// representations. Intended for backing out of an uncommitted opening.
func (s *Service) CancelTurnMelds(g *domain.Game) {
	hand := g.Hand(g.Turn)

	for i := len(g.TurnAdditions) - 1; i >= 0; i-- {
		add := g.TurnAdditions[i]
		meldCards, removed := domain.RemoveByID(g.Melds[add.MeldIndex].Cards, add.CardIDs)
		g.Melds[add.MeldIndex].Cards = domain.OrganizeMeld(meldCards)
		domain.ClearReps(removed)
		hand = append(hand, removed...)
	}

	for i := len(g.TurnMelds) - 1; i >= 0; i-- {
		idx := g.TurnMelds[i]
		cards := g.Melds[idx].Cards
		domain.ClearReps(cards)
		hand = append(hand, cards...)
		g.Melds = append(g.Melds[:idx], g.Melds[idx+1:]...)
	}

	if g.Turn == domain.SeatCpu {
		domain.SortHand(hand)
	}
	g.SetHand(g.Turn, hand)
	g.TurnMelds = nil
	g.TurnPoints = 0
	g.TurnAdditions = nil
	g.DiscardCardUsed = false
}

// AttemptDiscard moves a hand card to the discard pile and ends the turn.
// Discarding commits the opening when this turn's melds satisfy it, and is
// refused while any must-meld obligation (discard draw, swapped Joker,
// Jolly turn) is outstanding. A discard that would empty an unopened hand
// is rolled back.
func (s *Service) AttemptDiscard(g *domain.Game, cardID int) ActionResult {
	if g.Phase != domain.PhaseAction {
		return fail("you can only discard in the action phase")
	}

	hand := g.Hand(g.Turn)
	card, _, ok := domain.FindByID(hand, cardID)
	if !ok {
		return fail("that card is not in your hand")
	}

	if g.JollyTurn && len(hand) > 1 {
		return fail("a Jolly Hand must meld every card before the final discard")
	}

	opening := false
	if !g.Opened(g.Turn) && len(g.TurnMelds) > 0 {
		if g.TurnPoints < domain.OpeningPoints || !g.TurnMeldHasPureRun() {
			return fail(fmt.Sprintf("opening requires at least %d points including a pure run", domain.OpeningPoints))
		}
		opening = true
	}
	if g.DrawnFromDiscardID >= 0 && !g.DiscardCardUsed {
		return fail("the card taken from the discard pile must be melded this turn")
	}
	for _, id := range g.SwappedJokerIDs {
		if id == cardID {
			return fail("a swapped Joker must be melded, not discarded")
		}
		if domain.ContainsID(hand, id) {
			return fail("a swapped Joker is still waiting to be melded")
		}
	}

	remaining, _ := domain.RemoveByID(hand, []int{cardID})
	g.SetHand(g.Turn, remaining)
	card.Selected = false
	card.Rep = nil
	g.DiscardPile = append(g.DiscardPile, card)

	if len(remaining) == 0 {
		if !g.Opened(g.Turn) && !opening {
			// Restore the card where it was; the hand cannot empty
			// before the opening is down.
			g.DiscardPile = g.DiscardPile[:len(g.DiscardPile)-1]
			g.SetHand(g.Turn, []domain.Card{card})
			return fail("you cannot go out before opening")
		}
		if opening {
			g.SetOpened(g.Turn)
		}
		return s.declareWin(g)
	}

	if opening {
		g.SetOpened(g.Turn)
	}
	g.Turn = g.Turn.Opponent()
	g.Phase = domain.PhaseDraw
	if g.Turn == domain.SeatHuman {
		g.Round++
	}
	g.ResetTurnState()
	return ActionResult{Success: true}
}

// AttemptJollyHand takes the bottom card in place of a draw. It is only
// open to an unopened player in round 3+ holding exactly twelve cards, and
// obliges them to meld the entire hand this turn.
func (s *Service) AttemptJollyHand(g *domain.Game) ActionResult {
	if g.Phase != domain.PhaseDraw {
		return fail("a Jolly Hand replaces your draw")
	}
	if g.Round < domain.MeldMinRound {
		return fail(fmt.Sprintf("a Jolly Hand can only be called from round %d", domain.MeldMinRound))
	}
	if g.Opened(g.Turn) {
		return fail("a Jolly Hand is only open to a player who has not opened")
	}
	hand := g.Hand(g.Turn)
	if len(hand) != domain.JollyHandSize {
		return fail("a Jolly Hand needs exactly twelve cards in hand")
	}
	if g.Bottom == nil {
		return fail("the bottom card is gone")
	}

	g.SetHand(g.Turn, append(hand, *g.Bottom))
	g.Bottom = nil
	g.Phase = domain.PhaseAction
	g.JollyTurn = true
	return ActionResult{Success: true}
}

// UndoJolly reverts a Jolly Hand call before anything was melded: the taken
// card becomes the bottom card again and the turn returns to the draw phase.
func (s *Service) UndoJolly(g *domain.Game) ActionResult {
	if g.Phase != domain.PhaseAction || !g.JollyTurn {
		return fail("there is no Jolly Hand to undo")
	}
	if len(g.TurnMelds) > 0 || len(g.TurnAdditions) > 0 || len(g.SwappedJokerIDs) > 0 {
		return fail("the Jolly Hand can no longer be undone after melding")
	}

	hand := g.Hand(g.Turn)
	bottom := hand[len(hand)-1]
	bottom.Selected = false
	g.SetHand(g.Turn, hand[:len(hand)-1])
	g.Bottom = &bottom
	g.Phase = domain.PhaseDraw
	g.JollyTurn = false
	return ActionResult{Success: true}
}

// openingSatisfied reports whether the acting side is opened or has an
// opening-worthy set of turn melds down.
func (s *Service) openingSatisfied(g *domain.Game) bool {
	if g.Opened(g.Turn) {
		return true
	}
	return len(g.TurnMelds) > 0 && g.TurnPoints >= domain.OpeningPoints && g.TurnMeldHasPureRun()
}

func (s *Service) declareWin(g *domain.Game) ActionResult {
	if !g.Opened(g.Turn) {
		g.SetOpened(g.Turn)
	}
	score := domain.HandValue(g.Hand(g.Turn.Opponent()))
	return ActionResult{Success: true, Winner: g.Turn, Score: score}
}

// revertAddition undoes the most recent AddToExistingMeld call.
func (s *Service) revertAddition(g *domain.Game, meldIndex int, cardIDs []int) {
	meldCards, removed := domain.RemoveByID(g.Melds[meldIndex].Cards, cardIDs)
	g.Melds[meldIndex].Cards = domain.OrganizeMeld(meldCards)
	domain.ClearReps(removed)
	g.SetHand(g.Turn, append(g.Hand(g.Turn), removed...))
	if len(g.TurnAdditions) > 0 {
		last := g.TurnAdditions[len(g.TurnAdditions)-1]
		if last.MeldIndex == meldIndex {
			g.TurnAdditions = g.TurnAdditions[:len(g.TurnAdditions)-1]
		}
	}
	if g.DrawnFromDiscardID >= 0 && containsInt(cardIDs, g.DrawnFromDiscardID) {
		g.DiscardCardUsed = false
	}
	s.recomputeTurnPoints(g)
}

// recomputeTurnPoints rebuilds the running opening total: full meld points
// for this turn's melds plus the per-card value of this turn's additions.
func (s *Service) recomputeTurnPoints(g *domain.Game) {
	points := 0
	for _, idx := range g.TurnMelds {
		points += g.Melds[idx].Points()
	}
	for _, add := range g.TurnAdditions {
		for _, id := range add.CardIDs {
			if c, _, ok := domain.FindByID(g.Melds[add.MeldIndex].Cards, id); ok {
				points += domain.RankValue(c.EffectiveIdentity().Rank)
			}
		}
	}
	g.TurnPoints = points
}

// clearHandReps drops Joker representations on the given hand cards after a
// rejected addition.
func clearHandReps(g *domain.Game, cardIDs []int) {
	hand := g.Hand(g.Turn)
	for i := range hand {
		if containsInt(cardIDs, hand[i].ID) {
			hand[i].Rep = nil
		}
	}
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
