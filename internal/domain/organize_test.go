package domain

import "testing"

func TestOrganizeMeldRunAssignsJokerRep(t *testing.T) {
	cards := []Card{joker(3), card(1, 5, SuitHearts), card(2, 4, SuitHearts)}
	out := OrganizeMeld(cards)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	wantRanks := []Rank{4, 5, RankJoker}
	for i, r := range wantRanks {
		if out[i].Rank != r {
			t.Fatalf("position %d rank = %d, want %d", i, out[i].Rank, r)
		}
	}
	rep := out[2].Rep
	if rep == nil || rep.Rank != 6 || rep.Suit != SuitHearts {
		t.Fatalf("joker rep = %+v, want 6H", rep)
	}
}

func TestOrganizeMeldRunFillsGap(t *testing.T) {
	cards := []Card{card(1, 9, SuitSpades), card(2, 7, SuitSpades), joker(3)}
	out := OrganizeMeld(cards)

	if !out[1].IsJoker() {
		t.Fatalf("expected joker in the middle, got %+v", out[1])
	}
	rep := out[1].Rep
	if rep == nil || rep.Rank != 8 || rep.Suit != SuitSpades {
		t.Fatalf("joker rep = %+v, want 8S", rep)
	}
}

func TestOrganizeMeldSetAssignsLowestFreeSuit(t *testing.T) {
	cards := []Card{card(1, RankKing, SuitClubs), card(2, RankKing, SuitSpades), joker(3)}
	out := OrganizeMeld(cards)

	if !out[0].IsJoker() {
		t.Fatalf("expected joker first in canonical suit order, got %+v", out[0])
	}
	rep := out[0].Rep
	if rep == nil || rep.Rank != RankKing || rep.Suit != SuitHearts {
		t.Fatalf("joker rep = %+v, want KH", rep)
	}
}

func TestOrganizeMeldIdempotent(t *testing.T) {
	cards := []Card{card(1, 4, SuitHearts), card(2, 5, SuitHearts), joker(3)}
	once := OrganizeMeld(cards)
	twice := OrganizeMeld(once)

	if len(once) != len(twice) {
		t.Fatalf("lengths differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("position %d: id %d vs %d", i, once[i].ID, twice[i].ID)
		}
		a, b := once[i].Rep, twice[i].Rep
		if (a == nil) != (b == nil) || (a != nil && *a != *b) {
			t.Fatalf("position %d: rep changed across calls", i)
		}
	}
}

func TestOrganizeMeldInvalidUnchanged(t *testing.T) {
	cards := []Card{card(1, 4, SuitHearts), card(2, 9, SuitHearts), card(3, RankKing, SuitSpades)}
	out := OrganizeMeld(cards)

	if len(out) != len(cards) {
		t.Fatalf("len = %d, want %d", len(out), len(cards))
	}
	for i := range cards {
		if out[i].ID != cards[i].ID {
			t.Fatalf("position %d reordered", i)
		}
	}
}

func TestOrganizeMeldClearsCollidingRep(t *testing.T) {
	j := joker(3)
	j.Rep = &CardIdentity{Rank: 5, Suit: SuitHearts}
	cards := []Card{card(1, 4, SuitHearts), card(2, 5, SuitHearts), j}
	out := OrganizeMeld(cards)

	for _, c := range out {
		if c.IsJoker() {
			if c.Rep == nil || (c.Rep.Rank == 5 && c.Rep.Suit == SuitHearts) {
				t.Fatalf("joker rep = %+v, want a fresh non-colliding identity", c.Rep)
			}
		}
	}
}
