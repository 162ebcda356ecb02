package config

import (
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"blob-game/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment overrides for the default tuning
const (
	EnvWidth             = "BLOB_WIDTH"
	EnvHeight            = "BLOB_HEIGHT"
	EnvPlayerStartRadius = "BLOB_PLAYER_START_RADIUS"
	EnvPlayerMaxRadius   = "BLOB_PLAYER_MAX_RADIUS"
	EnvGrowthRate        = "BLOB_GROWTH_RATE"
	EnvFoodChance        = "BLOB_FOOD_CHANCE"
	EnvSpawnInterval     = "BLOB_SPAWN_INTERVAL"
	EnvMaxEnemies        = "BLOB_MAX_ENEMIES"
	EnvCollisionEpsilon  = "BLOB_COLLISION_EPSILON"
	EnvFrameInterval     = "BLOB_FRAME_INTERVAL"
)

// Load builds the run configuration: defaults, then envFile (if present),
// then the process environment. The result is validated.
func Load(envFile string) (types.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return types.Config{}, errors.Wrapf(err, "load %s", envFile)
			}
		} else {
			log.Printf("Loaded environment from %s", envFile)
		}
	}

	cfg := types.DefaultConfig()
	if err := applyOverrides(&cfg); err != nil {
		return types.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", errors.New("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", errors.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

func applyOverrides(cfg *types.Config) error {
	floats := []struct {
		name string
		dst  *float64
	}{
		{EnvWidth, &cfg.Arena.Width},
		{EnvHeight, &cfg.Arena.Height},
		{EnvPlayerStartRadius, &cfg.PlayerStartRadius},
		{EnvPlayerMaxRadius, &cfg.PlayerMaxRadius},
		{EnvGrowthRate, &cfg.GrowthRate},
		{EnvFoodChance, &cfg.FoodChance},
		{EnvCollisionEpsilon, &cfg.CollisionEpsilon},
	}
	for _, f := range floats {
		raw, err := GetEnvVariable(f.name)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %s", f.name)
		}
		*f.dst = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvSpawnInterval, &cfg.SpawnInterval},
		{EnvMaxEnemies, &cfg.MaxEnemies},
	}
	for _, i := range ints {
		raw, err := GetEnvVariable(i.name)
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "parse %s", i.name)
		}
		*i.dst = v
	}

	if raw, err := GetEnvVariable(EnvFrameInterval); err == nil {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvFrameInterval)
		}
		cfg.FrameInterval = d
	}

	return nil
}
