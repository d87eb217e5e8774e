// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// ViewerConfig holds camera and model settings.
type ViewerConfig struct {
	PixelScale     float32 `yaml:"pixel_scale"`     // Pixels per object unit at zoom 1
	CameraDistance float32 `yaml:"camera_distance"` // Eye distance for perspective
	InitialZoom    float32 `yaml:"initial_zoom"`
	MinZoom        float32 `yaml:"min_zoom"`
	MaxZoom        float32 `yaml:"max_zoom"`
	ZoomStep       float32 `yaml:"zoom_step"`    // Fraction of zoom per + or - press
	RotateSpeed    float32 `yaml:"rotate_speed"` // Radians per dragged pixel
	Ortho          bool    `yaml:"ortho"`

	Model         string        `yaml:"model"` // Loaded at startup
	Watch         bool          `yaml:"watch"` // Reload the model when its file changes
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	MaxFrames int `yaml:"max_frames"` // Stop after this many frames; 0 runs until closed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "wireview (3d model renderer)",
			Width:  500,
			Height: 500,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			PixelScale:     100,
			CameraDistance: 3,
			InitialZoom:    5,
			MinZoom:        0.5,
			MaxZoom:        10,
			ZoomStep:       0.1,
			RotateSpeed:    0.01,
			Ortho:          false,
			Watch:          true,
			WatchDebounce:  200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
