// Package cmdfile persists compiled command lines as shell-invocable text.
package cmdfile

import (
	"os"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

type Writer struct{}

func New() *Writer { return &Writer{} }

var _ ports.CommandWriter = (*Writer)(nil)

// Write stores the quoted command as a single UTF-8 line. Re-running the
// saved text reproduces the identical renderer invocation.
func (w *Writer) Write(cmd domain.CommandLine, path string) error {
	if err := os.WriteFile(path, []byte(cmd.String()+"\n"), 0o644); err != nil {
		return &domain.OpError{
			Op:   "cmdfile.write",
			Kind: domain.KindWrite,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
