package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultConfigYAML []byte

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultConfig returns the built-in configuration: the classic 800x600
// field, 3 lives, and the 11x4 brick grid.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  8,
		},
		Paddle: PaddleConfig{
			Width:        60,
			Height:       20,
			Speed:        8,
			BottomOffset: 50,
		},
		Bricks: BrickConfig{
			Columns:     11,
			Rows:        4,
			Width:       60,
			Height:      20,
			Spacing:     3,
			OffsetX:     22,
			StartColumn: 1,
			StartRow:    2,
		},
	}
}

// DefaultTheme returns the built-in theme used when no theme file can
// be loaded.
func DefaultTheme() Theme {
	return Theme{
		Glyphs: ThemeGlyphs{
			Fill: "█",
			Ball: "●",
		},
		Text: ThemeText{
			Color: "#ffffff",
		},
	}
}
