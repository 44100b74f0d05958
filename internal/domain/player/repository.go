package player

import "context"

// Repository stores the last normalized snapshot of each player.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	UpsertMany(ctx context.Context, items []Player) error
}
