package rawdata

import "context"

// Repository keeps the latest payload per Key. Writing a payload whose hash
// matches the stored one is a no-op.
type Repository interface {
	UpsertMany(ctx context.Context, items []Payload) error
}
