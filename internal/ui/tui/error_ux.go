package tui

import (
	"errors"
	"os"
	"strings"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

// userMessage turns an internal error into a short, actionable line for the
// terminal. Full detail always goes to the log, never to the screen.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindDetection:
			return "Display detection unavailable"

		case domain.KindLaunch:
			if errors.Is(err, os.ErrNotExist) || strings.Contains(err.Error(), "executable file not found") {
				return "Renderer executable not found"
			}
			return "Could not start the wallpaper engine: " + rootCause(err)

		case domain.KindWrite:
			return "Could not write " + oe.Path + ": " + rootCause(err)

		case domain.KindInvalidConfig:
			return "Invalid configuration (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

// rootCause surfaces the underlying OS error text without the Op chain.
func rootCause(err error) string {
	for {
		u := errors.Unwrap(err)
		if u == nil {
			return err.Error()
		}
		err = u
	}
}
