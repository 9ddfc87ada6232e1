package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"jolly/internal/domain"
)

type GameConfig struct {
	// DefaultDifficulty is used when a match is created without one.
	DefaultDifficulty domain.Difficulty `json:"default_difficulty"`
	// BotMinDelaySeconds/BotMaxDelaySeconds bound the pause before the CPU
	// plays its turn, so moves land at a human pace.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// DebugDeal stacks the deal with a ready-made opening. Never enable
	// outside local testing.
	DebugDeal bool `json:"debug_deal"`
	// WinWalletCredit multiplies the winner's score when crediting coins.
	WinWalletCredit int64 `json:"win_wallet_credit"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetDefaultDifficulty returns the configured difficulty, or medium when no
// config was loaded.
func GetDefaultDifficulty() domain.Difficulty {
	if cfg == nil || cfg.DefaultDifficulty == "" {
		return domain.DifficultyMedium
	}
	return cfg.DefaultDifficulty
}

// GetBotDelayBounds returns the CPU pacing window in seconds, with safe
// defaults when unset.
func GetBotDelayBounds() (min, max int) {
	min, max = 1, 3
	if cfg == nil {
		return min, max
	}
	if cfg.BotMinDelaySeconds > 0 {
		min = cfg.BotMinDelaySeconds
	}
	if cfg.BotMaxDelaySeconds >= min {
		max = cfg.BotMaxDelaySeconds
	} else {
		max = min
	}
	return min, max
}

// GetWinWalletCredit returns the coin multiplier for the winner's score.
func GetWinWalletCredit() int64 {
	if cfg == nil || cfg.WinWalletCredit <= 0 {
		return 1
	}
	return cfg.WinWalletCredit
}
