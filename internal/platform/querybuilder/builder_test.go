package querybuilder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	from := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	query, args, err := Select("id", "snapshot").
		From("games").
		Where(Gte("starts_at", from), Lt("starts_at", from.AddDate(0, 0, 1)), Eq("status", "closed")).
		OrderBy("starts_at", "id").
		Limit(10).
		ToSQL()
	require.NoError(t, err)

	require.Equal(t,
		"SELECT id, snapshot FROM games WHERE starts_at >= $1 AND starts_at < $2 AND status = $3 ORDER BY starts_at, id LIMIT 10",
		query,
	)
	require.Len(t, args, 3)
	require.Equal(t, "closed", args[2])
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	_, _, err := Select("id").ToSQL()
	require.Error(t, err)
}

func TestInsertBuilder_Upsert(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("id", "name", "snapshot").
		Values("h1", "Lunar Owls", "{}").
		Values("a1", "Rose", "{}").
		OnConflict("id").
		ToSQL()
	require.NoError(t, err)

	require.Equal(t,
		"INSERT INTO teams (id, name, snapshot) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, snapshot = EXCLUDED.snapshot",
		query,
	)
	require.Len(t, args, 6)
	require.Equal(t, "a1", args[3])
}

func TestInsertBuilder_UpdateWhenChanged(t *testing.T) {
	query, _, err := InsertInto("raw_data_payloads").
		Columns("source", "endpoint", "payload_hash").
		Values("sportradar", "boxscore", "abc").
		OnConflict("source", "endpoint").
		UpdateWhen("payload_hash").
		ToSQL()
	require.NoError(t, err)

	require.Equal(t,
		"INSERT INTO raw_data_payloads (source, endpoint, payload_hash) VALUES ($1, $2, $3) ON CONFLICT (source, endpoint) DO UPDATE SET payload_hash = EXCLUDED.payload_hash WHERE raw_data_payloads.payload_hash IS DISTINCT FROM EXCLUDED.payload_hash",
		query,
	)
}

func TestInsertBuilder_KeyOnlyDoesNothing(t *testing.T) {
	query, _, err := InsertInto("teams").Columns("id").Values("h1").OnConflict("id").ToSQL()
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO teams (id) VALUES ($1) ON CONFLICT (id) DO NOTHING", query)
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("id", "name").Values("h1").ToSQL()
	require.Error(t, err)
}

type playerRow struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at,readonly"`
	internal  string
}

func TestUpsertModels(t *testing.T) {
	builder, err := UpsertModels("players", []playerRow{{ID: "p1", TeamID: "h1"}, {ID: "p2", TeamID: "a1"}}, "id")
	require.NoError(t, err)

	query, args, err := builder.ToSQL()
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO players (id, team_id) VALUES ($1, $2), ($3, $4) ON CONFLICT (id) DO UPDATE SET team_id = EXCLUDED.team_id",
		query,
	)
	require.Equal(t, []any{"p1", "h1", "p2", "a1"}, args)
}

func TestUpsertModels_Empty(t *testing.T) {
	_, err := UpsertModels[playerRow]("players", nil, "id")
	require.Error(t, err)
}
