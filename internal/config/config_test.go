package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsMatchEngine(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got, want := cfg.ToSettings(), snake.DefaultSettings(); got != want {
		t.Errorf("ToSettings() = %+v, expected %+v", got, want)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeEmbeddedFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake() = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeCustomPathMerges(t *testing.T) {
	path := writeFile(t, t.TempDir(), "snake.yaml", `
grid:
  size: 30
speed:
  min_ms: 50
`)

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Size != 30 || cfg.Speed.MinMS != 50 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Speed.InitialMS != 150 || cfg.Grid.Origin != (OriginConfig{X: 10, Y: 10}) || cfg.Input.CellSize != 20 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
	if s := cfg.ToSettings(); s.MinSpeed != 50*time.Millisecond || s.GridSize != 30 {
		t.Errorf("ToSettings() = %+v", s)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, filepath.Join(".vjsnake", "configs", "snake.yaml"), "difficulty: hard\n")

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Difficulty != DifficultyHard || cfg.Speed.InitialMS != 110 {
		t.Errorf("user config not used: %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "grid: [1, 2"), "failed to parse"},
		{"invalid values", writeFile(t, dir, "invalid.yaml", "grid:\n  size: 1\n"), "grid size"},
		{"unknown difficulty", writeFile(t, dir, "diff.yaml", "difficulty: insane\n"), "unknown difficulty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSnake(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
	}{
		{"grid too small", func(c *SnakeConfig) { c.Grid.Size = 1 }},
		{"origin outside grid", func(c *SnakeConfig) { c.Grid.Origin.X = 20 }},
		{"negative origin", func(c *SnakeConfig) { c.Grid.Origin.Y = -1 }},
		{"zero min speed", func(c *SnakeConfig) { c.Speed.MinMS = 0 }},
		{"min above initial", func(c *SnakeConfig) { c.Speed.MinMS = 200 }},
		{"negative decrease", func(c *SnakeConfig) { c.Speed.DecreaseMS = -1 }},
		{"negative threshold", func(c *SnakeConfig) { c.Input.SwipeThreshold = -5 }},
		{"zero cell size", func(c *SnakeConfig) { c.Input.CellSize = 0 }},
		{"bad difficulty", func(c *SnakeConfig) { c.Difficulty = "extreme" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Input.CellSize = 0
	cfg.Speed.MinMS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "cell_size") || !strings.Contains(err.Error(), "min speed") {
		t.Errorf("error should list both problems, got %q", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset                 DifficultyPreset
		initial, decrease, min int
	}{
		{DifficultyEasy, 200, 6, 90},
		{DifficultyNormal, 150, 8, 60},
		{DifficultyHard, 110, 10, 40},
		{DifficultyFixed, 150, 0, 150},
		{"", 150, 8, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplyPreset(&cfg, tc.preset)

			got := cfg.Speed
			if got.InitialMS != tc.initial || got.DecreaseMS != tc.decrease || got.MinMS != tc.min {
				t.Errorf("speed = %+v, expected %d/%d/%d", got, tc.initial, tc.decrease, tc.min)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDifficulty("Hard"); err == nil {
		t.Error("ParseDifficulty should be case-sensitive")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Size = 25
	ApplyPreset(&cfg, DifficultyEasy)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	path := writeFile(t, t.TempDir(), "out.yaml", string(data))

	loaded, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, expected %+v", loaded, cfg)
	}
}
