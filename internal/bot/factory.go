package bot

import (
	"math/rand"
	"time"

	"jolly/internal/domain"
)

// NewBrain constructs the strategy for a difficulty tier. Unknown tiers
// fall back to medium so the CPU seat always has a playable brain.
func NewBrain(difficulty domain.Difficulty, rng *rand.Rand) Brain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch difficulty {
	case domain.DifficultyEasy:
		return &easyBrain{rng: rng}
	case domain.DifficultyHard:
		return &hardBrain{rng: rng, tuning: DefaultTuning()}
	default:
		return &mediumBrain{rng: rng, tuning: DefaultTuning()}
	}
}
