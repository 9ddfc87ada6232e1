package onboarding

import (
	"context"
	"errors"
	"testing"
)

type fakeAccount struct {
	displayName string
	err         error
}

func (f *fakeAccount) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	f.displayName = displayName
	return f.err
}

type fakeBonus struct {
	amount  int64
	granted bool
	err     error
}

func (f *fakeBonus) GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	f.amount = amount
	return f.granted, f.err
}

func TestOnboardNewUser(t *testing.T) {
	account := &fakeAccount{}
	bonus := &fakeBonus{granted: true}
	svc := NewService(account, bonus, 0)

	res, err := svc.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser: %v", err)
	}
	if !res.WelcomeBonusGranted {
		t.Errorf("bonus not granted")
	}
	if bonus.amount != defaultWelcomeBonus {
		t.Errorf("bonus amount = %d, want %d", bonus.amount, defaultWelcomeBonus)
	}
	if account.displayName != defaultDisplayName {
		t.Errorf("display name = %q", account.displayName)
	}
}

func TestOnboardNewUserRequiresID(t *testing.T) {
	svc := NewService(&fakeAccount{}, &fakeBonus{}, 0)
	if _, err := svc.OnboardNewUser(context.Background(), ""); err == nil {
		t.Fatal("expected an error for a missing user id")
	}
}

func TestOnboardNewUserProfileErrorIsNonFatal(t *testing.T) {
	account := &fakeAccount{err: errors.New("profile unavailable")}
	bonus := &fakeBonus{granted: true}
	svc := NewService(account, bonus, 250)

	res, err := svc.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("profile failure must not fail onboarding: %v", err)
	}
	if res.ProfileUpdateErr == nil {
		t.Errorf("profile error not surfaced")
	}
	if bonus.amount != 250 {
		t.Errorf("bonus amount = %d, want 250", bonus.amount)
	}
}

func TestOnboardNewUserBonusAlreadyGranted(t *testing.T) {
	svc := NewService(&fakeAccount{}, &fakeBonus{granted: false}, 0)

	res, err := svc.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser: %v", err)
	}
	if res.WelcomeBonusGranted {
		t.Errorf("bonus reported granted twice")
	}
}
