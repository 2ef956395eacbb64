package repo

import (
	"context"

	"github.com/hamed0406/ecommailer/internal/domain"
)

// RunStore keeps finished probe runs for the status API.
type RunStore interface {
	Record(ctx context.Context, r *domain.ProbeRun) error
	// Latest returns nil, nil before the first run is recorded.
	Latest(ctx context.Context) (*domain.ProbeRun, error)
}
