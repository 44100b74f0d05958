package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Abbreviation string         `db:"abbreviation"`
	Conference   sql.NullString `db:"conference"`
	Snapshot     string         `db:"snapshot"`
	UpdatedAt    time.Time      `db:"updated_at"`
	CreatedAt    time.Time      `db:"created_at,readonly"`
}

type gameTableModel struct {
	ID         string    `db:"id"`
	StartsAt   time.Time `db:"starts_at"`
	Status     string    `db:"status"`
	HomeTeamID string    `db:"home_team_id"`
	AwayTeamID string    `db:"away_team_id"`
	Snapshot   string    `db:"snapshot"`
	UpdatedAt  time.Time `db:"updated_at"`
	CreatedAt  time.Time `db:"created_at,readonly"`
}

type playerTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Name      string    `db:"name"`
	Position  string    `db:"position"`
	Snapshot  string    `db:"snapshot"`
	UpdatedAt time.Time `db:"updated_at"`
	CreatedAt time.Time `db:"created_at,readonly"`
}

type rawDataPayloadModel struct {
	Source      string    `db:"source"`
	Endpoint    string    `db:"endpoint"`
	EntityKey   string    `db:"entity_key"`
	GameID      *string   `db:"game_id"`
	TeamID      *string   `db:"team_id"`
	PlayerID    *string   `db:"player_id"`
	Payload     string    `db:"payload"`
	PayloadHash string    `db:"payload_hash"`
	FetchedAt   time.Time `db:"fetched_at"`
}
