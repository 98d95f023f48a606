package ports

import "github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"

// CommandWriter persists a compiled command line for reproducibility.
type CommandWriter interface {
	Write(cmd domain.CommandLine, path string) error
}
