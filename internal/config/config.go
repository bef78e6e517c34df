// Package config provides YAML-based configuration loading for the
// game. Defaults match the classic rules, so a zero-config run plays
// the original game.
package config

import "fmt"

// Config contains all tunable game parameters.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BrickConfig    `yaml:"bricks"`
}

// FieldConfig defines the logical play-field dimensions. All entity
// positions and the bound-collision math live in these units; the
// terminal renderer scales them to cells.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig defines round parameters.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// PaddleConfig defines paddle parameters. BottomOffset is the distance
// from the paddle center to the bottom of the field.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// BrickConfig defines the brick grid. StartColumn and StartRow offset
// the grid inside the field; Spacing is the gap between bricks; OffsetX
// shifts the whole grid right.
type BrickConfig struct {
	Columns     int     `yaml:"columns"`
	Rows        int     `yaml:"rows"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Spacing     float64 `yaml:"spacing"`
	OffsetX     float64 `yaml:"offset_x"`
	StartColumn int     `yaml:"start_column"`
	StartRow    int     `yaml:"start_row"`
}

// Validate checks the invariants the simulation depends on.
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball radius must be positive, got %g", c.Ball.Radius)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("config: paddle dimensions must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		return fmt.Errorf("config: brick dimensions must be positive, got %gx%g", c.Bricks.Width, c.Bricks.Height)
	}
	if c.Bricks.Columns < 1 || c.Bricks.Rows < 1 {
		return fmt.Errorf("config: brick grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Gameplay.Lives)
	}
	return nil
}

// Theme defines the glyphs and text color used by the terminal
// renderer. It is the terminal analog of a font asset: loading can
// fail without stopping the game, which then falls back to the
// built-in theme.
type Theme struct {
	Glyphs ThemeGlyphs `yaml:"glyphs"`
	Text   ThemeText   `yaml:"text"`
}

// ThemeGlyphs defines the fill characters for shapes.
type ThemeGlyphs struct {
	Fill string `yaml:"fill"` // rectangles (paddle, bricks)
	Ball string `yaml:"ball"` // circles
}

// ThemeText defines text styling.
type ThemeText struct {
	Color string `yaml:"color"` // hex color for HUD and status text
}

// FillRune returns the rect fill glyph as a rune.
func (t Theme) FillRune() rune {
	return firstRune(t.Glyphs.Fill, '█')
}

// BallRune returns the ball glyph as a rune.
func (t Theme) BallRune() rune {
	return firstRune(t.Glyphs.Ball, '●')
}

// firstRune returns the first rune of s, or fallback if s is empty.
func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
