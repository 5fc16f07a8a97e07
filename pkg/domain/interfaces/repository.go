package interfaces

import (
	"context"

	"github.com/tp-labs/pulsedash/pkg/domain/model"
)

// Repository defines read access to the generated dataset. The dataset
// is immutable after construction, so there are no write operations.
type Repository interface {
	// ListRecords returns copies of the records matching the filter,
	// preserving insertion order. A nil filter matches everything.
	ListRecords(ctx context.Context, filter *model.FilterSpec) ([]*model.Record, error)

	// Info returns metadata about the generated dataset
	Info(ctx context.Context) (*model.DatasetInfo, error)

	// Close closes the repository
	Close() error
}
