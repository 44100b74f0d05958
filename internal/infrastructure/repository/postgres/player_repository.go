package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	qb "github.com/riskibarqy/hoops-feed/internal/platform/querybuilder"
)

var playerSelectColumns = []string{
	"id",
	"team_id",
	"name",
	"position",
	"snapshot::text AS snapshot",
	"updated_at",
	"created_at",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	item, err := decodeSnapshot[player.Player](row.Snapshot)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("player %s: %w", playerID, err)
	}
	return item, true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	return decodeRows[playerTableModel, player.Player](rows, func(row playerTableModel) string { return row.Snapshot })
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, items []player.Player) error {
	items = lastByKey(items, func(item player.Player) string { return item.ID })
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]playerTableModel, 0, len(items))
	for _, item := range items {
		snapshot, err := encodeSnapshot(item)
		if err != nil {
			return fmt.Errorf("player %s: %w", item.ID, err)
		}
		rows = append(rows, playerTableModel{
			ID:        item.ID,
			TeamID:    item.Team.ID,
			Name:      item.Name,
			Position:  item.Position,
			Snapshot:  snapshot,
			UpdatedAt: now,
		})
	}

	builder, err := qb.UpsertModels("players", rows, "id")
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}
	query, args, err := builder.UpdateWhen("snapshot").ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}

	return nil
}
