package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"

	"jolly/internal/domain"
)

// Identity is one CPU persona from the configured pool. Each persona is
// pinned to a difficulty so lobby opponents feel consistent across games.
type Identity struct {
	DeviceID    string            `json:"device_id"`
	UserID      string            `json:"user_id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"display_name"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	AvatarIndex int               `json:"avatar_index"`
}

var (
	identities    []Identity
	identityByID  map[string]Identity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the CPU persona pool from the given JSON file.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		identityByID = make(map[string]Identity)
		for _, id := range identities {
			if id.UserID != "" {
				identityByID[id.UserID] = id
			}
		}
	})
	return loadErr
}

// ProvisionBots ensures the persona accounts exist in the Nakama database
// and carry the is_bot metadata.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		for i := range identities {
			identity := &identities[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"difficulty":   string(identity.Difficulty),
				"avatar_index": identity.AvatarIndex,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, err)
			}

			identityByID[identity.UserID] = *identity
			logger.Info("ProvisionBots: bot %s (%s) ready, difficulty %s", identity.DisplayName, userID, identity.Difficulty)
		}
	})
	return nil
}

// GetIdentity returns the persona for a provisioned bot user ID.
func GetIdentity(userID string) (Identity, bool) {
	id, ok := identityByID[userID]
	return id, ok
}

// IsBot reports whether the user ID belongs to the persona pool.
func IsBot(userID string) bool {
	_, ok := identityByID[userID]
	return ok
}

// IdentityForDifficulty picks a persona of the given tier, falling back to
// a synthetic one when the pool has no match.
func IdentityForDifficulty(difficulty domain.Difficulty, rng *rand.Rand) Identity {
	var matching []Identity
	for _, id := range identities {
		if id.Difficulty == difficulty {
			matching = append(matching, id)
		}
	}
	if len(matching) == 0 {
		return Identity{
			UserID:      fmt.Sprintf("bot-%s", difficulty),
			Username:    fmt.Sprintf("jolly_%s", difficulty),
			DisplayName: "House Player",
			Difficulty:  difficulty,
		}
	}
	return matching[rng.Intn(len(matching))]
}
