package usecase

import (
	"context"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

// ReviewAction is what the user picked on the review screen.
type ReviewAction int

const (
	ActionExecute ReviewAction = iota
	ActionSave
	ActionExecuteAndSave
)

// DispatchResult reports the outcome of each side effect independently.
// Save and launch failures do not mask each other.
type DispatchResult struct {
	Saved     bool
	SavePath  string
	SaveErr   error
	Launched  bool
	LaunchErr error
}

// Failed reports whether any attempted action errored.
func (r DispatchResult) Failed() bool {
	return r.SaveErr != nil || r.LaunchErr != nil
}

// Dispatch performs the terminal actions of the wizard: launching the
// renderer, saving the command file, or both. "Both" saves first so the
// artifact exists even if the launch fails.
type Dispatch struct {
	launcher ports.RendererLauncher
	writer   ports.CommandWriter
	savePath string
}

func NewDispatch(launcher ports.RendererLauncher, writer ports.CommandWriter, savePath string) *Dispatch {
	return &Dispatch{
		launcher: launcher,
		writer:   writer,
		savePath: savePath,
	}
}

func (uc *Dispatch) Execute(ctx context.Context, action ReviewAction, cmd domain.CommandLine) DispatchResult {
	var res DispatchResult

	if action == ActionSave || action == ActionExecuteAndSave {
		res.SavePath = uc.savePath
		res.SaveErr = uc.writer.Write(cmd, uc.savePath)
		res.Saved = res.SaveErr == nil
	}

	if action == ActionExecute || action == ActionExecuteAndSave {
		res.LaunchErr = uc.launcher.Launch(ctx, cmd)
		res.Launched = res.LaunchErr == nil
	}

	return res
}
