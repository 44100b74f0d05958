package game

import (
	"fmt"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

// DateLayout is the canonical game date format: UTC with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Game is one normalized matchup between two teams.
type Game struct {
	ID               string    `json:"id" validate:"required"`
	HomeTeam         team.Team `json:"homeTeam"`
	AwayTeam         team.Team `json:"awayTeam"`
	Date             string    `json:"date" validate:"required"`
	Status           Status    `json:"status" validate:"required,oneof=scheduled live finished postponed cancelled"`
	BoxScore         *BoxScore `json:"boxScore,omitempty"`
	Venue            *string   `json:"venue,omitempty"`
	League           *string   `json:"league,omitempty"`
	BroadcastNetwork *string   `json:"broadcastNetwork,omitempty"`
	TimeZone         *string   `json:"timeZone,omitempty"`
}

// BoxScore holds final or running totals for both sides.
type BoxScore struct {
	HomeScore   int            `json:"homeScore"`
	AwayScore   int            `json:"awayScore"`
	HomeStats   TeamStats      `json:"homeStats"`
	AwayStats   TeamStats      `json:"awayStats"`
	Quarters    []QuarterScore `json:"quarters,omitempty"`
	LastUpdated *string        `json:"lastUpdated,omitempty"`
}

type TeamStats struct {
	Points               int      `json:"points"`
	Rebounds             int      `json:"rebounds"`
	Assists              int      `json:"assists"`
	Steals               *int     `json:"steals,omitempty"`
	Blocks               *int     `json:"blocks,omitempty"`
	Turnovers            *int     `json:"turnovers,omitempty"`
	FieldGoalPercentage  *float64 `json:"fieldGoalPercentage,omitempty"`
	ThreePointPercentage *float64 `json:"threePointPercentage,omitempty"`
	FreeThrowPercentage  *float64 `json:"freeThrowPercentage,omitempty"`
	Fouls                *int     `json:"fouls,omitempty"`
}

type QuarterScore struct {
	ID            string `json:"id"`
	HomeScore     int    `json:"homeScore"`
	AwayScore     int    `json:"awayScore"`
	QuarterNumber int    `json:"quarterNumber"`
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.Status == StatusFinished && g.BoxScore == nil {
		return fmt.Errorf("finished game %s has no box score", g.ID)
	}
	if _, err := time.Parse(DateLayout, g.Date); err != nil {
		return fmt.Errorf("game %s date %q: %w", g.ID, g.Date, err)
	}

	return nil
}

// StartsAt parses the canonical date. The zero time is returned on failure.
func (g Game) StartsAt() time.Time {
	parsed, err := time.Parse(DateLayout, g.Date)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
