// Package launcher starts the renderer as a detached subprocess.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

type Exec struct {
	log *slog.Logger
}

type Option func(*Exec)

func WithLogger(log *slog.Logger) Option {
	return func(e *Exec) { e.log = log }
}

func New(opts ...Option) *Exec {
	e := &Exec{log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.RendererLauncher = (*Exec)(nil)

// Launch starts the renderer and releases it. The wallpaper process is meant
// to outlive the helper, so the context only gates the start: the child is
// never killed by this tool. Only a failure to start is an error.
func (e *Exec) Launch(ctx context.Context, cmd domain.CommandLine) error {
	if len(cmd) == 0 {
		return &domain.OpError{
			Op:   "launcher.launch",
			Kind: domain.KindLaunch,
			Err:  fmt.Errorf("empty command"),
		}
	}
	if err := ctx.Err(); err != nil {
		return &domain.OpError{
			Op:   "launcher.launch",
			Kind: domain.KindLaunch,
			Path: cmd[0],
			Err:  err,
		}
	}

	proc := exec.Command(cmd[0], cmd[1:]...)
	if err := proc.Start(); err != nil {
		return &domain.OpError{
			Op:   "launcher.launch",
			Kind: domain.KindLaunch,
			Path: cmd[0],
			Err:  err,
		}
	}

	pid := proc.Process.Pid
	if err := proc.Process.Release(); err != nil {
		e.log.Warn("launcher.release_failed", "pid", pid, "err", err)
	}
	e.log.Info("launcher.started", "exe", cmd[0], "pid", pid, "args", len(cmd)-1)

	return nil
}
