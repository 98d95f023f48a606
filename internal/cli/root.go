package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/buildinfo"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/infra/cmdfile"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/infra/config"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/infra/hyprctl"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/infra/launcher"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/infra/logger"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/infra/xrandr"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ui/tui"
)

const rendererName = "linux-wallpaperengine"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "wengine-helper",
		Short:        "Interactive launcher builder for linux-wallpaperengine",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{
				Dir:   logDir(),
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := config.Load()
			if err != nil {
				// A broken config file falls back to defaults; say so in
				// the log rather than refusing to start.
				logger.L().Warn("config.load_failed", "err", err)
			}

			exe, err := resolveRenderer(cfg)
			if err != nil {
				return fmt.Errorf("%s not found: install it or set renderer.path in %s", rendererName, config.FileName)
			}
			logger.L().Info("renderer.resolved", "path", exe)

			deps := tui.Deps{
				Listers: []ports.DisplayLister{
					xrandr.New(),
					hyprctl.New(),
				},
				Launcher:    launcher.New(launcher.WithLogger(logger.L())),
				Writer:      cmdfile.New(),
				RendererExe: exe,
				Config:      cfg,
				Logger:      logger.L(),
				Debug:       debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the helper log file")
	return cmd
}

// resolveRenderer finds the renderer executable: explicit config path, then
// next to this binary, then $PATH.
func resolveRenderer(cfg domain.Config) (string, error) {
	if p := cfg.Renderer.Path; p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", &domain.OpError{
				Op:   "cli.resolve_renderer",
				Kind: domain.KindNotFound,
				Path: p,
				Err:  err,
			}
		}
		return p, nil
	}

	if self, err := os.Executable(); err == nil {
		cand := filepath.Join(filepath.Dir(self), rendererName)
		if _, err := os.Stat(cand); err == nil {
			return cand, nil
		}
	}

	if p, err := exec.LookPath(rendererName); err == nil {
		return p, nil
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_renderer",
		Kind: domain.KindNotFound,
		Err:  domain.ErrRendererNotFound,
	}
}

func logDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "wengine-helper", "logs")
}
