package msdf

import "math"

// MaxDimension is the largest accepted bitmap width or height.
const MaxDimension = 16384

// Config holds the parameters of one MSDF rasterization.
type Config struct {
	// Width and Height of the output bitmap in pixels.
	// Default: 48x48
	Width, Height int

	// Range is the distance, in shape units, mapped onto the full 0-255
	// output range: -Range encodes as 255, 0 as 127, +Range as 0.
	// Default: 4.0
	Range float64

	// AngleThreshold is the corner threshold in radians used by the edge
	// colorer. Generate itself does not color; see Bake.
	// Default: 3.0
	AngleThreshold float64

	// Translate and Scale map shape space to pixel space:
	// pixel = shape*Scale + Translate.
	// Default: no translation, scale 1
	Translate Vec2
	Scale     float64

	// Workers bounds the number of rows rasterized concurrently.
	// Zero means GOMAXPROCS. The output does not depend on it.
	Workers int
}

// DefaultConfig returns the default rasterization configuration.
func DefaultConfig() Config {
	return Config{
		Width:          48,
		Height:         48,
		Range:          4.0,
		AngleThreshold: DefaultAngleThreshold,
		Scale:          1,
	}
}

// Validate checks if the configuration is valid and returns a *ConfigError
// if not.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return &ConfigError{Field: "Width/Height", Reason: "must be at least 1"}
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return &ConfigError{Field: "Width/Height", Reason: "must be at most 16384"}
	}
	if !(c.Range > 0) || math.IsInf(c.Range, 0) {
		return &ConfigError{Field: "Range", Reason: "must be positive and finite"}
	}
	if !(c.AngleThreshold > 0) || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return &ConfigError{Field: "Scale", Reason: "must be positive and finite"}
	}
	if !isFinite(c.Translate.X) || !isFinite(c.Translate.Y) {
		return &ConfigError{Field: "Translate", Reason: "must be finite"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	return nil
}

// pixelToShape maps the center of pixel (x, y) into shape space.
func (c *Config) pixelToShape(x, y int) Vec2 {
	return Vec2{
		X: (float64(x) + 0.5 - c.Translate.X) / c.Scale,
		Y: (float64(y) + 0.5 - c.Translate.Y) / c.Scale,
	}
}
