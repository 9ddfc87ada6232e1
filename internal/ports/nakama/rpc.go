package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"jolly/internal/config"
	"jolly/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a table.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcInviteToken, rpcInviteToken); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcJoinByToken, rpcJoinByToken)
}

// rpcQuickMatch returns a table for the caller. Every Jolly table seats one
// human against the house, so an open table is only reused when the caller
// already owns it; otherwise a fresh match is created with the requested
// difficulty.
func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	difficulty := domain.Difficulty(req.Difficulty)
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	case "":
		difficulty = config.GetDefaultDifficulty()
	default:
		return "", runtime.NewError("unknown difficulty", 3)
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameJolly, map[string]interface{}{
		"difficulty": string(difficulty),
	})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
