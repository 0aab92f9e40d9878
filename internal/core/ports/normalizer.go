package ports

import (
	"context"
	"time"
)

// TimestampNormalizer rewrites file timestamps for reproducible packaging.
//
//go:generate go run go.uber.org/mock/mockgen -source=normalizer.go -destination=mocks/mock_normalizer.go -package=mocks
type TimestampNormalizer interface {
	// Normalize sets access and modification time of every entry under root,
	// directories included, to the instant at. It returns the number of
	// entries rewritten.
	Normalize(ctx context.Context, root string, at time.Time) (int, error)
}
