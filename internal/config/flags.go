package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagModel       = flag.String("model", "", "Model file to open at startup")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagOrtho       = flag.Bool("ortho", false, "Start in orthographic projection")
	flagNoWatch     = flag.Bool("no-watch", false, "Do not reload the model when its file changes")
	flagHeadless    = flag.Bool("headless", false, "Run without a window")
	flagFrames      = flag.Int("frames", 0, "Stop after this many frames")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagScreenshot  = flag.String("screenshot", "", "Headless only: save the last frame as a PNG file, or into a directory")
	flagSaveConfig  = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Headless reports whether --headless was given.
func Headless() bool {
	return *flagHeadless
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// ScreenshotPath returns the --screenshot destination, if any.
func ScreenshotPath() string {
	return *flagScreenshot
}

// SaveConfig reports whether --save-config was given.
func SaveConfig() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Viewer.Model = *flagModel
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagOrtho {
		cfg.Viewer.Ortho = true
	}
	if *flagNoWatch {
		cfg.Viewer.Watch = false
	}
	if *flagFrames > 0 {
		cfg.Viewer.MaxFrames = *flagFrames
	}
}
