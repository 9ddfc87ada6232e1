package app

import "jolly/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCpuTurn     EventKind = "cpu_turn"
	EventGameEnded   EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // seat names; empty means broadcast
}

type GameStartedPayload struct {
	GameID     string            `json:"game_id"`
	Difficulty domain.Difficulty `json:"difficulty"`
}

type HandDealtPayload struct {
	Seat domain.Seat   `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type CpuTurnPayload struct {
	DrawSource    domain.DrawSource `json:"draw_source"`
	MeldsPlayed   int               `json:"melds_played"`
	DiscardedCard *domain.Card      `json:"discarded_card,omitempty"`
}

type GameEndedPayload struct {
	Winner domain.Seat `json:"winner"`
	Score  int         `json:"score"`
}
