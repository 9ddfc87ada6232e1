package onboarding

import (
	"context"
	"fmt"

	"jolly/internal/ports"
)

const (
	defaultWelcomeBonus = 500
	defaultDisplayName  = "Jolly Player"
)

// Service prepares a freshly created account: a starter display name and a
// one-time coin bonus so the player can sit at a table right away.
type Service struct {
	account ports.AccountPort
	bonus   ports.WelcomeBonusPort
	amount  int64
}

// NewService builds the onboarding service. A non-positive bonusAmount
// falls back to the default.
func NewService(account ports.AccountPort, bonus ports.WelcomeBonusPort, bonusAmount int64) *Service {
	if bonusAmount <= 0 {
		bonusAmount = defaultWelcomeBonus
	}
	return &Service{account: account, bonus: bonus, amount: bonusAmount}
}

// Result reports what onboarding managed to do. A profile update failure is
// non-fatal and surfaced separately.
type Result struct {
	ProfileUpdateErr    error
	WelcomeBonusGranted bool
}

// OnboardNewUser sets the starter profile and grants the welcome bonus at
// most once.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	var res Result
	if userID == "" {
		return res, fmt.Errorf("userID is required")
	}

	if s.account != nil {
		res.ProfileUpdateErr = s.account.UpdateProfile(ctx, userID, "", defaultDisplayName)
	}

	if s.bonus == nil {
		return res, nil
	}
	granted, err := s.bonus.GrantWelcomeBonusOnce(ctx, userID, s.amount, map[string]interface{}{
		"reason": "welcome_bonus",
	})
	if err != nil {
		return res, fmt.Errorf("failed to grant welcome bonus: %w", err)
	}
	res.WelcomeBonusGranted = granted
	return res, nil
}
