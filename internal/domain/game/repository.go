package game

import (
	"context"
	"time"
)

// Repository stores normalized game snapshots.
type Repository interface {
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListByDate(ctx context.Context, day time.Time) ([]Game, error)
	UpsertMany(ctx context.Context, items []Game) error
}
