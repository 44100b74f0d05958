package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	qb "github.com/riskibarqy/hoops-feed/internal/platform/querybuilder"
)

var gameSelectColumns = []string{
	"id",
	"starts_at",
	"status",
	"home_team_id",
	"away_team_id",
	"snapshot::text AS snapshot",
	"updated_at",
	"created_at",
}

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("games").
		Where(qb.Eq("id", gameID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game by id query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("select game by id: %w", err)
	}

	item, err := decodeSnapshot[game.Game](row.Snapshot)
	if err != nil {
		return game.Game{}, false, fmt.Errorf("game %s: %w", gameID, err)
	}
	return item, true, nil
}

func (r *GameRepository) ListByDate(ctx context.Context, day time.Time) ([]game.Game, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	query, args, err := qb.Select(gameSelectColumns...).From("games").
		Where(
			qb.Gte("starts_at", from),
			qb.Lt("starts_at", from.AddDate(0, 0, 1)),
		).
		OrderBy("starts_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by date query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games by date: %w", err)
	}

	return decodeRows[gameTableModel, game.Game](rows, func(row gameTableModel) string { return row.Snapshot })
}

func (r *GameRepository) UpsertMany(ctx context.Context, items []game.Game) error {
	items = lastByKey(items, func(item game.Game) string { return item.ID })
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]gameTableModel, 0, len(items))
	for _, item := range items {
		snapshot, err := encodeSnapshot(item)
		if err != nil {
			return fmt.Errorf("game %s: %w", item.ID, err)
		}
		rows = append(rows, gameTableModel{
			ID:         item.ID,
			StartsAt:   item.StartsAt(),
			Status:     string(item.Status),
			HomeTeamID: item.HomeTeam.ID,
			AwayTeamID: item.AwayTeam.ID,
			Snapshot:   snapshot,
			UpdatedAt:  now,
		})
	}

	builder, err := qb.UpsertModels("games", rows, "id")
	if err != nil {
		return fmt.Errorf("build upsert games query: %w", err)
	}
	query, args, err := builder.UpdateWhen("snapshot").ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert games query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert games: %w", err)
	}

	return nil
}
