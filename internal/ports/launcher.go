package ports

import (
	"context"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

// RendererLauncher starts the renderer process with the compiled argument
// vector. It only distinguishes "failed to launch" from "launched"; the
// renderer's own exit status is not this tool's concern.
type RendererLauncher interface {
	Launch(ctx context.Context, cmd domain.CommandLine) error
}
