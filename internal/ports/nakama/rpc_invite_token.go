package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"jolly/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// tokenService builds the invite token service from runtime env credentials.
func tokenService(ctx context.Context, logger runtime.Logger) *app.InviteTokenService {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["jolly_token_secret"]
	issuer := env["jolly_token_issuer"]
	if secret == "" || issuer == "" {
		secret = "test-secret"
		issuer = "jolly-test"
		logger.Warn("Token credentials missing from env, using test defaults.")
	}
	return app.NewInviteTokenService(secret, issuer)
}

// rpcInviteToken signs a token that lets the caller resume their match from
// another device.
// Payload: {"match_id": "..."}
func rpcInviteToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req struct {
		MatchID string `json:"match_id"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
	}
	if req.MatchID == "" {
		return "", runtime.NewError("match_id required", 3)
	}

	token, err := tokenService(ctx, logger).GenerateToken(userID, req.MatchID)
	if err != nil {
		logger.Error("Failed to generate token: %v", err)
		return "", runtime.NewError("internal error", 13) // INTERNAL
	}

	b, _ := json.Marshal(map[string]string{"token": token})
	return string(b), nil
}

// rpcJoinByToken verifies a token and returns the match it grants access to.
// Payload: {"token": "..."}
func rpcJoinByToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("invalid payload", 3)
	}

	matchID, err := tokenService(ctx, logger).ParseMatchID(req.Token)
	if err != nil {
		return "", runtime.NewError("invalid token", 3)
	}

	b, _ := json.Marshal(map[string]string{"match_id": matchID})
	return string(b), nil
}
