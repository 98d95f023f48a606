package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/usecase"
)

const (
	detectTimeout   = 10 * time.Second
	dispatchTimeout = 30 * time.Second
)

// cmdDetectDisplays runs the display listers once at startup. The result is
// cached in the model; going back to mode selection never re-detects.
func cmdDetectDisplays(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
		defer cancel()

		uc := usecase.NewDetectDisplays(deps.Listers...)
		displays, err := uc.Execute(ctx)
		if err != nil {
			deps.Logger.Warn("detect.failed", "err", err)
		} else {
			deps.Logger.Info("detect.ok", "displays", len(displays))
		}
		return displaysDetectedMsg{displays: displays, err: err}
	}
}

// cmdDispatch performs the review action: save, execute, or both (save
// first so the artifact survives a launch failure).
func cmdDispatch(deps Deps, action usecase.ReviewAction, cmd domain.CommandLine) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		uc := usecase.NewDispatch(deps.Launcher, deps.Writer, deps.Config.Renderer.SavePath)
		res := uc.Execute(ctx, action, cmd)

		if res.SaveErr != nil {
			deps.Logger.Error("dispatch.save_failed", "path", res.SavePath, "err", res.SaveErr)
		} else if res.Saved {
			deps.Logger.Info("dispatch.saved", "path", res.SavePath)
		}
		if res.LaunchErr != nil {
			deps.Logger.Error("dispatch.launch_failed", "err", res.LaunchErr)
		} else if res.Launched {
			deps.Logger.Info("dispatch.launched", "exe", cmd[0])
		}

		return dispatchDoneMsg{result: res}
	}
}
