package types

import (
	"time"

	"github.com/pkg/errors"
)

// Default tuning
const (
	DefaultWidth  = 100.0
	DefaultHeight = 100.0

	DefaultPlayerStartRadius = 1.5
	DefaultPlayerMaxRadius   = 6.0
	DefaultGrowthRate        = 0.12

	DefaultFoodChance       = 0.15
	DefaultSpawnInterval    = 15 // Frames between enemy spawns
	DefaultMaxEnemies       = 12
	DefaultCollisionEpsilon = 0.1 // Slack so fast movers don't tunnel between frames
	DefaultCullMargin       = 6.0

	DefaultFrameInterval = 30 * time.Millisecond
)

// PastelPalette is the cosmetic enemy colour set
var PastelPalette = []string{
	"#FFB3BA", "#FFDFBA", "#FFFFBA",
	"#BAFFC9", "#BAE1FF", "#E6BAFF",
}

// Config holds every tunable of a run. It is loaded once at startup and never
// mutated after the engine is built.
type Config struct {
	Arena Arena

	PlayerStartRadius float64
	PlayerMaxRadius   float64
	GrowthRate        float64

	FoodSize     Range
	BigEnemySize Range
	FoodChance   float64
	EnemySpeed   Range
	Drift        Range

	SpawnInterval    int
	MaxEnemies       int
	CollisionEpsilon float64
	CullMargin       float64

	Palette       []string
	FrameInterval time.Duration
}

// DefaultConfig returns the stock arcade tuning.
func DefaultConfig() Config {
	return Config{
		Arena:             Arena{Width: DefaultWidth, Height: DefaultHeight},
		PlayerStartRadius: DefaultPlayerStartRadius,
		PlayerMaxRadius:   DefaultPlayerMaxRadius,
		GrowthRate:        DefaultGrowthRate,
		FoodSize:          Range{Min: 0.8, Max: 3.0},
		BigEnemySize:      Range{Min: 2.5, Max: 6.0},
		FoodChance:        DefaultFoodChance,
		EnemySpeed:        Range{Min: 0.25, Max: 0.6},
		Drift:             Range{Min: -0.4, Max: 0.4},
		SpawnInterval:     DefaultSpawnInterval,
		MaxEnemies:        DefaultMaxEnemies,
		CollisionEpsilon:  DefaultCollisionEpsilon,
		CullMargin:        DefaultCullMargin,
		Palette:           append([]string(nil), PastelPalette...),
		FrameInterval:     DefaultFrameInterval,
	}
}

// InitialEnemies is the roster size a fresh session starts with
func (c Config) InitialEnemies() int {
	return c.MaxEnemies / 2
}

// Validate checks the tuning for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return errors.Errorf("arena must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.PlayerStartRadius <= 0 {
		return errors.Errorf("player start radius must be positive, got %g", c.PlayerStartRadius)
	}
	if c.PlayerMaxRadius < c.PlayerStartRadius {
		return errors.Errorf("player max radius %g is below start radius %g", c.PlayerMaxRadius, c.PlayerStartRadius)
	}
	if c.GrowthRate < 0 {
		return errors.Errorf("growth rate must not be negative, got %g", c.GrowthRate)
	}
	if err := validateRange(c.FoodSize, true); err != nil {
		return errors.Wrap(err, "food size")
	}
	if err := validateRange(c.BigEnemySize, true); err != nil {
		return errors.Wrap(err, "big enemy size")
	}
	if err := validateRange(c.EnemySpeed, true); err != nil {
		return errors.Wrap(err, "enemy speed")
	}
	if err := validateRange(c.Drift, false); err != nil {
		return errors.Wrap(err, "drift")
	}
	if c.Drift.Min != -c.Drift.Max {
		return errors.Errorf("drift must be symmetric, got [%g, %g]", c.Drift.Min, c.Drift.Max)
	}
	if c.FoodChance < 0 || c.FoodChance > 1 {
		return errors.Errorf("food chance must be within [0, 1], got %g", c.FoodChance)
	}
	if c.SpawnInterval <= 0 {
		return errors.Errorf("spawn interval must be positive, got %d", c.SpawnInterval)
	}
	if c.MaxEnemies < 1 {
		return errors.Errorf("max enemies must be at least 1, got %d", c.MaxEnemies)
	}
	if c.CollisionEpsilon < 0 {
		return errors.Errorf("collision epsilon must not be negative, got %g", c.CollisionEpsilon)
	}
	if c.CullMargin < 0 {
		return errors.Errorf("cull margin must not be negative, got %g", c.CullMargin)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette is empty")
	}
	if c.FrameInterval <= 0 {
		return errors.Errorf("frame interval must be positive, got %s", c.FrameInterval)
	}
	return nil
}

func validateRange(r Range, positive bool) error {
	if r.Min > r.Max {
		return errors.Errorf("range is inverted: [%g, %g]", r.Min, r.Max)
	}
	if positive && r.Min <= 0 {
		return errors.Errorf("range must be positive: [%g, %g]", r.Min, r.Max)
	}
	return nil
}
