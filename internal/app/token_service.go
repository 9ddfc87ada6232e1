package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// InviteTokenService issues signed match invite tokens that a client can
// hand to a friend to join a specific match.
type InviteTokenService struct {
	secret string
	issuer string
}

const inviteTokenTTL = 24 * time.Hour

func NewInviteTokenService(secret, issuer string) *InviteTokenService {
	return &InviteTokenService{secret: secret, issuer: issuer}
}

// GenerateToken signs an invite for the given match on behalf of a user.
func (s *InviteTokenService) GenerateToken(userID, matchID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("invite token service is nil")
	}
	if userID == "" {
		return "", fmt.Errorf("user is required")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("invite token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": userID,
		"exp": time.Now().Add(inviteTokenTTL).Unix(),
		"mid": matchID,
		"jti": fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseMatchID verifies an invite token and returns the match it grants
// access to.
func (s *InviteTokenService) ParseMatchID(tokenString string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("invite token service is nil")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid invite token: %w", err)
	}

	matchID, _ := claims["mid"].(string)
	if matchID == "" {
		return "", fmt.Errorf("invite token has no match id")
	}
	return matchID, nil
}
