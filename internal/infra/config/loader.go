// Package config loads the optional helper configuration file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

// FileName is looked up under the user config dir and next to the binary.
const FileName = "wengine-helper.yaml"

// Load finds and parses the first config file among the default candidate
// locations. A missing file is not an error: defaults apply.
func Load() (domain.Config, error) {
	for _, path := range candidatePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFrom(path)
	}
	return domain.DefaultConfig(), nil
}

// LoadFrom parses one specific config file, overlaying its values on the
// defaults. Set-but-empty fields keep their default.
func LoadFrom(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Renderer.Path != "" {
		cfg.Renderer.Path = y.Renderer.Path
	}
	if y.Renderer.SavePath != "" {
		cfg.Renderer.SavePath = y.Renderer.SavePath
	}
	if y.Renderer.AssetsDir != "" {
		cfg.Renderer.AssetsDir = y.Renderer.AssetsDir
	}
	if len(y.Renderer.Properties) > 0 {
		cfg.Renderer.Properties = y.Renderer.Properties
	}
	if y.Defaults.FPS != nil {
		cfg.Defaults.FPS = *y.Defaults.FPS
	}
	if y.Defaults.Volume != nil {
		cfg.Defaults.Volume = *y.Defaults.Volume
	}
	if y.Defaults.ScreenshotDelay != nil {
		cfg.Defaults.ScreenshotDelay = *y.Defaults.ScreenshotDelay
	}

	return cfg, nil
}

func candidatePaths() []string {
	var paths []string

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "wengine-helper", FileName))
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), FileName))
	}

	return paths
}

type yamlConfig struct {
	Renderer struct {
		Path       string   `yaml:"path"`
		SavePath   string   `yaml:"save_path"`
		AssetsDir  string   `yaml:"assets_dir"`
		Properties []string `yaml:"properties"`
	} `yaml:"renderer"`

	Defaults struct {
		FPS             *int `yaml:"fps"`
		Volume          *int `yaml:"volume"`
		ScreenshotDelay *int `yaml:"screenshot_delay"`
	} `yaml:"defaults"`
}
