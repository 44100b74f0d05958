package injury

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDayToDay     Status = "Day To Day"
	StatusOut          Status = "Out"
	StatusOutForSeason Status = "Out For Season"
	StatusQuestionable Status = "Questionable"
	StatusProbable     Status = "Probable"
	StatusResolved     Status = "Resolved"
)

var severity = map[Status]int{
	StatusResolved:     0,
	StatusProbable:     1,
	StatusQuestionable: 2,
	StatusDayToDay:     3,
	StatusOut:          4,
	StatusOutForSeason: 5,
}

// ParseStatus accepts only the exact labels the provider documents.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if _, ok := severity[status]; !ok {
		return "", fmt.Errorf("unknown injury status %q", raw)
	}
	return status, nil
}

// Severity ranks statuses from resolved (0) to out for season (5).
func (s Status) Severity() int {
	return severity[s]
}

func (s Status) IsActive() bool {
	return s != StatusResolved
}

type Injury struct {
	ID          string     `json:"id"`
	Comment     *string    `json:"comment,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      Status     `json:"status"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	UpdateDate  *time.Time `json:"updateDate,omitempty"`
}

type PlayerInjuries struct {
	PlayerID        string   `json:"playerId"`
	FullName        string   `json:"fullName"`
	Position        *string  `json:"position,omitempty"`
	PrimaryPosition *string  `json:"primaryPosition,omitempty"`
	JerseyNumber    *string  `json:"jerseyNumber,omitempty"`
	Injuries        []Injury `json:"injuries"`
}

// WorstStatus returns the most severe status among the player's injuries.
func (p PlayerInjuries) WorstStatus() (Status, bool) {
	var (
		worst Status
		found bool
	)
	for _, item := range p.Injuries {
		if !found || item.Status.Severity() > worst.Severity() {
			worst = item.Status
			found = true
		}
	}
	return worst, found
}

type TeamInjuries struct {
	TeamID   string           `json:"teamId"`
	TeamName string           `json:"teamName"`
	Players  []PlayerInjuries `json:"players"`
}

type LeagueInjuries struct {
	LeagueID    string         `json:"leagueId"`
	LeagueName  string         `json:"leagueName"`
	LeagueAlias *string        `json:"leagueAlias,omitempty"`
	Teams       []TeamInjuries `json:"teams"`
}

// ActiveCount counts players whose worst injury is not resolved.
func (l LeagueInjuries) ActiveCount() int {
	total := 0
	for _, t := range l.Teams {
		for _, p := range t.Players {
			if status, ok := p.WorstStatus(); ok && status.IsActive() {
				total++
			}
		}
	}
	return total
}
