package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	qb "github.com/riskibarqy/hoops-feed/internal/platform/querybuilder"
)

type RawDataRepository struct {
	db *sqlx.DB
}

func NewRawDataRepository(db *sqlx.DB) *RawDataRepository {
	return &RawDataRepository{db: db}
}

// UpsertMany keeps the latest payload per (source, endpoint, entity_key).
// Rows whose hash did not change are left untouched.
func (r *RawDataRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	items = lastByKey(items, rawdata.Payload.Key)
	if len(items) == 0 {
		return nil
	}

	rows := make([]rawDataPayloadModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, rawDataPayloadModel{
			Source:      item.Source,
			Endpoint:    item.Endpoint,
			EntityKey:   item.EntityKey,
			GameID:      nullableString(item.GameID),
			TeamID:      nullableString(item.TeamID),
			PlayerID:    nullableString(item.PlayerID),
			Payload:     item.PayloadJSON,
			PayloadHash: item.PayloadHash,
			FetchedAt:   item.FetchedAt,
		})
	}

	builder, err := qb.UpsertModels("raw_data_payloads", rows, "source", "endpoint", "entity_key")
	if err != nil {
		return fmt.Errorf("build upsert raw payloads query: %w", err)
	}
	query, args, err := builder.UpdateWhen("payload_hash").ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert raw payloads query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert raw payloads count=%d: %w", len(rows), err)
	}

	return nil
}
