package app

import (
	"math/rand"
	"testing"

	"jolly/internal/domain"
)

func TestInitGameDeal(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	for seed := int64(0); seed < 20; seed++ {
		svc = NewService(rand.New(rand.NewSource(seed)))
		g, events := svc.InitGame(domain.DifficultyMedium, false)

		if len(g.HumanHand) != domain.HumanDeal {
			t.Fatalf("seed %d: human hand = %d, want %d", seed, len(g.HumanHand), domain.HumanDeal)
		}
		if len(g.CpuHand) != domain.CpuDeal {
			t.Fatalf("seed %d: cpu hand = %d, want %d", seed, len(g.CpuHand), domain.CpuDeal)
		}
		if g.CardCount() != domain.DeckSize {
			t.Fatalf("seed %d: card count = %d, want %d", seed, g.CardCount(), domain.DeckSize)
		}
		if g.Round != 1 || g.Turn != domain.SeatHuman || g.Phase != domain.PhaseAction {
			t.Fatalf("seed %d: opening state = round %d turn %s phase %s", seed, g.Round, g.Turn, g.Phase)
		}

		// Any Joker cut from the bottom three goes to the human hand.
		if g.Bottom != nil && g.Bottom.IsJoker() {
			t.Fatalf("seed %d: bottom card is a Joker", seed)
		}

		if len(events) != 2 {
			t.Fatalf("seed %d: events = %d, want 2", seed, len(events))
		}
		if events[0].Kind != EventHandDealt || len(events[0].Recipients) != 1 {
			t.Fatalf("seed %d: first event = %+v", seed, events[0])
		}
		if events[1].Kind != EventGameStarted {
			t.Fatalf("seed %d: second event = %+v", seed, events[1])
		}
	}
}

func TestInitGameDebugDeal(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(3)))
	g, _ := svc.InitGame(domain.DifficultyEasy, true)

	want := map[domain.CardIdentity]bool{
		{Rank: 9, Suit: domain.SuitHearts}:               false,
		{Rank: 10, Suit: domain.SuitHearts}:              false,
		{Rank: domain.RankJack, Suit: domain.SuitHearts}: false,
	}
	for _, c := range g.HumanHand {
		id := domain.CardIdentity{Rank: c.Rank, Suit: c.Suit}
		if _, ok := want[id]; ok {
			want[id] = true
		}
	}
	for id, found := range want {
		if !found {
			t.Errorf("debug deal missing %+v in human hand", id)
		}
	}
}
