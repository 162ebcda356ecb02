package types

import (
	"strings"
	"testing"
)

func TestArenaClamp(t *testing.T) {
	a := Arena{Width: 100, Height: 100}

	cases := []struct {
		in, want Point
	}{
		{Point{X: -5, Y: 50}, Point{X: 0, Y: 50}},
		{Point{X: 150, Y: -1}, Point{X: 100, Y: 0}},
		{Point{X: 30, Y: 200}, Point{X: 30, Y: 100}},
		{Point{X: 42, Y: 17}, Point{X: 42, Y: 17}},
	}
	for _, c := range cases {
		if got := a.Clamp(c.in); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestArenaContainsIsExclusive(t *testing.T) {
	a := Arena{Width: 100, Height: 100}
	if !a.Contains(Point{X: -5.9, Y: 105.9}, 6) {
		t.Fatalf("expected point just inside the margin to be contained")
	}
	if a.Contains(Point{X: -6, Y: 50}, 6) {
		t.Fatalf("expected point on the margin edge to be outside")
	}
	if a.Contains(Point{X: 50, Y: 106}, 6) {
		t.Fatalf("expected point on the far margin edge to be outside")
	}
}

func TestLifecycleString(t *testing.T) {
	if Waiting.String() != "waiting" || Playing.String() != "playing" || GameOver.String() != "game-over" {
		t.Fatalf("unexpected lifecycle names: %s %s %s", Waiting, Playing, GameOver)
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.InitialEnemies() != 6 {
		t.Fatalf("initial enemies = %d, want 6", cfg.InitialEnemies())
	}
}

func TestValidateRejectsBadTuning(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"arena", func(c *Config) { c.Arena.Width = 0 }, "arena"},
		{"start radius", func(c *Config) { c.PlayerStartRadius = -1 }, "start radius"},
		{"max below start", func(c *Config) { c.PlayerMaxRadius = 1 }, "max radius"},
		{"food size", func(c *Config) { c.FoodSize = Range{Min: 3, Max: 1} }, "food size"},
		{"enemy size", func(c *Config) { c.BigEnemySize = Range{Min: 0, Max: 1} }, "big enemy size"},
		{"speed", func(c *Config) { c.EnemySpeed = Range{Min: 1, Max: 0.5} }, "enemy speed"},
		{"drift", func(c *Config) { c.Drift = Range{Min: -0.2, Max: 0.4} }, "drift"},
		{"food chance", func(c *Config) { c.FoodChance = 1.5 }, "food chance"},
		{"spawn interval", func(c *Config) { c.SpawnInterval = 0 }, "spawn interval"},
		{"max enemies", func(c *Config) { c.MaxEnemies = 0 }, "max enemies"},
		{"epsilon", func(c *Config) { c.CollisionEpsilon = -0.1 }, "epsilon"},
		{"palette", func(c *Config) { c.Palette = nil }, "palette"},
		{"frame interval", func(c *Config) { c.FrameInterval = 0 }, "frame interval"},
	}

	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}
