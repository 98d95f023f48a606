// Package hyprctl detects connected displays on Hyprland/Wayland sessions,
// where xrandr is unavailable, by decoding `hyprctl monitors -j`.
package hyprctl

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

// RunCommand executes an external command and returns its stdout.
type RunCommand func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type Detector struct {
	run RunCommand
}

type Option func(*Detector)

func WithRunner(run RunCommand) Option {
	return func(d *Detector) { d.run = run }
}

func New(opts ...Option) *Detector {
	d := &Detector{run: defaultRun}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ ports.DisplayLister = (*Detector)(nil)

type monitorJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Disabled    bool   `json:"disabled"`
}

func (d *Detector) List(ctx context.Context) ([]domain.DisplayInfo, error) {
	out, err := d.run(ctx, "hyprctl", "monitors", "-j")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "hyprctl.list",
			Kind: domain.KindDetection,
			Err:  err,
		}
	}

	var monitors []monitorJSON
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, &domain.OpError{
			Op:   "hyprctl.list",
			Kind: domain.KindDetection,
			Err:  err,
		}
	}

	var displays []domain.DisplayInfo
	for _, m := range monitors {
		if m.Name == "" || m.Disabled {
			continue
		}

		var resolution string
		if m.Width > 0 && m.Height > 0 {
			resolution = fmt.Sprintf("%dx%d", m.Width, m.Height)
		}

		displays = append(displays, domain.DisplayInfo{
			Connector:  m.Name,
			Name:       m.Description,
			Resolution: resolution,
			Recognized: domain.KnownConnector(m.Name),
		})
	}

	return displays, nil
}
