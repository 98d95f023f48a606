package domain

// Config is the optional tool configuration loaded from the helper's YAML
// config file. It tunes the helper itself; it is not wizard-state
// persistence.
type Config struct {
	Renderer RendererConfig
	Defaults WizardDefaults
}

type RendererConfig struct {
	// Path overrides renderer discovery (binary dir, then $PATH).
	Path string

	// SavePath is where the review step writes the command line.
	SavePath string

	// AssetsDir is passed through as --assets-dir when set.
	AssetsDir string

	// Properties are passed through as repeated --set-property entries.
	Properties []string
}

// WizardDefaults seed the numeric prompts.
type WizardDefaults struct {
	FPS             int
	Volume          int
	ScreenshotDelay int
}

// DefaultConfig provides sane defaults if the config file is absent or
// partially filled.
func DefaultConfig() Config {
	return Config{
		Renderer: RendererConfig{
			SavePath: "wallpaper-command.txt",
		},
		Defaults: WizardDefaults{
			FPS:             DefaultFPS,
			Volume:          DefaultVolume,
			ScreenshotDelay: DefaultScreenshotDelay,
		},
	}
}
