package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	qb "github.com/riskibarqy/hoops-feed/internal/platform/querybuilder"
)

var teamSelectColumns = []string{
	"id",
	"name",
	"abbreviation",
	"conference",
	"snapshot::text AS snapshot",
	"updated_at",
	"created_at",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	return decodeRows[teamTableModel, team.Team](rows, func(row teamTableModel) string { return row.Snapshot })
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	item, err := decodeSnapshot[team.Team](row.Snapshot)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("team %s: %w", teamID, err)
	}
	return item, true, nil
}

func (r *TeamRepository) UpsertMany(ctx context.Context, items []team.Team) error {
	items = lastByKey(items, func(item team.Team) string { return item.ID })
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]teamTableModel, 0, len(items))
	for _, item := range items {
		snapshot, err := encodeSnapshot(item)
		if err != nil {
			return fmt.Errorf("team %s: %w", item.ID, err)
		}
		rows = append(rows, teamTableModel{
			ID:           item.ID,
			Name:         item.Name,
			Abbreviation: item.Abbreviation,
			Conference:   nullString(item.Conference),
			Snapshot:     snapshot,
			UpdatedAt:    now,
		})
	}

	builder, err := qb.UpsertModels("teams", rows, "id")
	if err != nil {
		return fmt.Errorf("build upsert teams query: %w", err)
	}
	query, args, err := builder.UpdateWhen("snapshot").ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert teams query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}

	return nil
}
