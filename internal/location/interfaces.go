package location

import (
	"context"

	"skycast/internal/types"
)

// Source is a platform position provider. Run starts continuous delivery and
// returns a channel carrying batches of zero or more fixes, most recent last.
// The channel is closed when the source has nothing further to deliver or when
// ctx is cancelled.
type Source interface {
	Run(ctx context.Context) <-chan []types.Coords
}
