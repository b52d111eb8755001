package config

// speedPreset holds the speed section a difficulty preset applies.
type speedPreset struct {
	initial, decrease, min int
}

var speedPresets = map[DifficultyPreset]speedPreset{
	DifficultyEasy:   {initial: 200, decrease: 6, min: 90},
	DifficultyNormal: {initial: 150, decrease: 8, min: 60},
	DifficultyHard:   {initial: 110, decrease: 10, min: 40},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed keeps the configured initial speed and disables speed-up;
// an empty preset leaves the speed section untouched.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if preset == DifficultyFixed {
		cfg.Speed.DecreaseMS = 0
		cfg.Speed.MinMS = cfg.Speed.InitialMS
		return
	}

	p, ok := speedPresets[preset]
	if !ok {
		return
	}
	cfg.Speed = SpeedConfig{
		InitialMS:  p.initial,
		DecreaseMS: p.decrease,
		MinMS:      p.min,
	}
}
