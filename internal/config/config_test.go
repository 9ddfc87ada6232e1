package config

import (
	"os"
	"path/filepath"
	"testing"

	"jolly/internal/domain"
)

func TestDefaultsWithoutConfig(t *testing.T) {
	if got := GetDefaultDifficulty(); got != domain.DifficultyMedium {
		t.Errorf("default difficulty = %s, want medium", got)
	}
	min, max := GetBotDelayBounds()
	if min != 1 || max != 3 {
		t.Errorf("delay bounds = %d..%d, want 1..3", min, max)
	}
	if got := GetWinWalletCredit(); got != 1 {
		t.Errorf("win credit = %d, want 1", got)
	}
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	data := `{
		"default_difficulty": "hard",
		"bot_min_delay_seconds": 2,
		"bot_max_delay_seconds": 5,
		"debug_deal": true,
		"win_wallet_credit": 10
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadGameConfig(path); err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	// The loader runs once per process; later calls return the first result.
	if err := LoadGameConfig("does-not-exist.json"); err != nil {
		t.Fatalf("second load reported an error: %v", err)
	}

	cfg := GetGameConfig()
	if cfg == nil {
		t.Fatal("config not loaded")
	}
	if cfg.DefaultDifficulty != domain.DifficultyHard || !cfg.DebugDeal {
		t.Errorf("config = %+v", cfg)
	}
	if got := GetDefaultDifficulty(); got != domain.DifficultyHard {
		t.Errorf("default difficulty = %s, want hard", got)
	}
	min, max := GetBotDelayBounds()
	if min != 2 || max != 5 {
		t.Errorf("delay bounds = %d..%d, want 2..5", min, max)
	}
	if got := GetWinWalletCredit(); got != 10 {
		t.Errorf("win credit = %d, want 10", got)
	}
}
