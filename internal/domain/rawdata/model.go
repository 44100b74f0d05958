package rawdata

import "time"

// Payload is one captured provider response kept for audit and replay.
type Payload struct {
	Source      string
	Endpoint    string
	EntityKey   string
	GameID      string
	TeamID      string
	PlayerID    string
	PayloadJSON string
	PayloadHash string
	FetchedAt   time.Time
}

// Key identifies the stored slot a payload replaces.
func (p Payload) Key() string {
	return p.Source + "|" + p.Endpoint + "|" + p.EntityKey
}
