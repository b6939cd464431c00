package door

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Configuration
// ============================================================

// Color is an RGBA color: channels on a 0-255 scale, alpha in 0-1.
type Color struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// Config holds the physical constants shared by every door a builder
// produces. Zero values are not defaults; start from DefaultConfig.
type Config struct {
	Height         float64 `yaml:"height"`
	Thickness      float64 `yaml:"thickness"`
	GroundClear    float64 `yaml:"ground_clearance"`
	CollideBitmask uint16  `yaml:"collide_bitmask"`
	Color          Color   `yaml:"color"`
}

// DefaultConfig возвращает значения по умолчанию: 2.5 м высота,
// 3 см толщина, маска столкновений 0x02 и полупрозрачный сине-зеленый цвет.
func DefaultConfig() Config {
	return Config{
		Height:         2.5,
		Thickness:      0.03,
		GroundClear:    0.01,
		CollideBitmask: 0x02,
		Color:          Color{R: 128, G: 192, B: 210, A: 0.6},
	}
}

// LoadConfig читает YAML поверх DefaultConfig. Пустой путь дает значения по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read door config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse door config: %w", err)
	}
	return cfg, nil
}
