package usecase

import (
	"context"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

// DetectDisplays runs the configured listers in order and returns the first
// usable result. X11 sessions answer via xrandr, Wayland sessions via
// hyprctl; having both registered makes detection session-agnostic.
type DetectDisplays struct {
	listers []ports.DisplayLister
}

func NewDetectDisplays(listers ...ports.DisplayLister) *DetectDisplays {
	return &DetectDisplays{listers: listers}
}

// Execute returns the first non-empty success. Listers that error or answer
// empty are skipped in favor of the next one: an xrandr shim on Wayland can
// succeed with zero outputs while hyprctl knows the real monitors. When every
// lister answered empty that is a valid empty result (it disables multi mode
// upstream); only all-failed surfaces a detection error.
func (uc *DetectDisplays) Execute(ctx context.Context) ([]domain.DisplayInfo, error) {
	var (
		lastErr  error
		answered bool
	)

	for _, l := range uc.listers {
		displays, err := l.List(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if len(displays) > 0 {
			return displays, nil
		}
		answered = true
	}

	if answered || lastErr == nil {
		return nil, nil
	}
	return nil, &domain.OpError{
		Op:   "usecase.detect_displays",
		Kind: domain.KindDetection,
		Err:  lastErr,
	}
}
