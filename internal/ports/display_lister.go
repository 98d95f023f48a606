package ports

import (
	"context"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

// DisplayLister queries the system for connected outputs. An empty result
// with a nil error is valid and means "no displays detected"; an error means
// the listing utility was unavailable or produced unusable output.
type DisplayLister interface {
	List(ctx context.Context) ([]domain.DisplayInfo, error)
}
