package normalize

import (
	"testing"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

var fixedNow = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	return NewMapper(MapperConfig{
		Logger: logging.NewNop(),
		Now:    func() time.Time { return fixedNow },
	})
}

func knownTeams() map[string]team.Team {
	return team.Index([]team.Team{
		{ID: "h1", Name: "Lunar Owls", Abbreviation: "LUN"},
		{ID: "a1", Name: "Rose", Abbreviation: "ROS"},
		{ID: "h2", Name: "Vinyl", Abbreviation: "VIN"},
		{ID: "a2", Name: "Laces", Abbreviation: "LAC"},
	})
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
