package msdf

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Width != 48 || cfg.Height != 48 || cfg.Range != 4 || cfg.Scale != 1 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.AngleThreshold != DefaultAngleThreshold {
		t.Errorf("AngleThreshold = %v, want %v", cfg.AngleThreshold, DefaultAngleThreshold)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "Width/Height"},
		{"negative height", func(c *Config) { c.Height = -3 }, "Width/Height"},
		{"too wide", func(c *Config) { c.Width = MaxDimension + 1 }, "Width/Height"},
		{"zero range", func(c *Config) { c.Range = 0 }, "Range"},
		{"nan range", func(c *Config) { c.Range = math.NaN() }, "Range"},
		{"inf range", func(c *Config) { c.Range = math.Inf(1) }, "Range"},
		{"zero threshold", func(c *Config) { c.AngleThreshold = 0 }, "AngleThreshold"},
		{"threshold over pi", func(c *Config) { c.AngleThreshold = 4 }, "AngleThreshold"},
		{"negative scale", func(c *Config) { c.Scale = -1 }, "Scale"},
		{"nan translate", func(c *Config) { c.Translate.Y = math.NaN() }, "Translate"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "Workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("Validate() field = %v, want %q", ce, tt.field)
			}
		})
	}
}

func TestConfigPixelToShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 2
	cfg.Translate = V2(8, 4)

	tests := []struct {
		x, y int
		want Vec2
	}{
		{0, 0, V2(-3.75, -1.75)},
		{7, 3, V2(-0.25, -0.25)},
		{8, 4, V2(0.25, 0.25)},
	}

	for _, tt := range tests {
		if got := cfg.pixelToShape(tt.x, tt.y); !got.Approx(tt.want, 1e-12) {
			t.Errorf("pixelToShape(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
