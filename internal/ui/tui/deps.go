package tui

import (
	"log/slog"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

type Deps struct {
	Listers  []ports.DisplayLister
	Launcher ports.RendererLauncher
	Writer   ports.CommandWriter

	// RendererExe is the resolved renderer path, verified by the CLI
	// before the program starts.
	RendererExe string

	Config domain.Config
	Logger *slog.Logger
	Debug  bool
}
