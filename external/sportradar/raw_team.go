package sportradar

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
)

type League struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Alias *string `json:"alias"`
}

type Venue struct {
	ID       *string   `json:"id"`
	Name     *string   `json:"name"`
	Capacity *int      `json:"capacity"`
	Address  *string   `json:"address"`
	City     *string   `json:"city"`
	State    *string   `json:"state"`
	Zip      *string   `json:"zip"`
	Country  *string   `json:"country"`
	Location *Location `json:"location"`
}

type Location struct {
	Lat *string `json:"lat"`
	Lng *string `json:"lng"`
}

// Team is the team shape used by the teams list and standings. Its keys
// are camelCase, unlike most other shapes.
type Team struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Alias         *string `json:"alias"`
	Market        *string `json:"market"`
	Conference    *string `json:"conference"`
	Division      *string `json:"division"`
	Wins          *int    `json:"wins"`
	Losses        *int    `json:"losses"`
	WinPercentage *Number `json:"winPercentage"`
	Logo          *string `json:"logo"`
	Founded       *int    `json:"founded"`
	Venue         *Venue  `json:"venue"`
}

type TeamRef struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Alias *string `json:"alias"`
}

type TeamsResponse struct {
	League  *League `json:"league"`
	Teams   []Team  `json:"teams"`
	Comment *string `json:"_comment"`
}

type Standings struct {
	Season *string        `json:"season"`
	Teams  []TeamStanding `json:"teams"`
}

// TeamStanding accepts both camelCase and snake_case keys for the fields
// the provider has shipped in either form.
type TeamStanding struct {
	Team               *Team   `json:"team"`
	TeamID             *string `json:"teamId"`
	TeamIDSnake        *string `json:"team_id"`
	Wins               *int    `json:"wins"`
	Losses             *int    `json:"losses"`
	WinPercentage      *Number `json:"winPercentage"`
	WinPercentageSnake *Number `json:"win_percentage"`
	Conference         *string `json:"conference"`
	Division           *string `json:"division"`
	Rank               *int    `json:"rank"`
}

func (s TeamStanding) ResolvedWinPercentage() *float64 {
	if s.WinPercentage != nil && s.WinPercentage.Set {
		return s.WinPercentage.Float()
	}
	if s.WinPercentageSnake != nil && s.WinPercentageSnake.Set {
		return s.WinPercentageSnake.Float()
	}
	return nil
}

func (s TeamStanding) ResolvedTeamID() *string {
	if s.TeamID != nil {
		return s.TeamID
	}
	return s.TeamIDSnake
}

type Hierarchy struct {
	League      *League      `json:"league"`
	Conferences []Conference `json:"conferences"`
}

type Conference struct {
	ID    *string         `json:"id"`
	Name  *string         `json:"name"`
	Alias *string         `json:"alias"`
	Teams []HierarchyTeam `json:"teams"`
}

type HierarchyTeam struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Alias       *string `json:"alias"`
	FranchiseID *string `json:"franchise_id"`
	Founded     *int    `json:"founded"`
	Sponsor     *string `json:"sponsor"`
	Venue       *Venue  `json:"venue"`
}

// Roster is the team roster/profile shape. The provider returns either a
// bare array of players or a team object carrying a players list.
type Roster struct {
	ID      *string  `json:"id"`
	Name    *string  `json:"name"`
	Alias   *string  `json:"alias"`
	Market  *string  `json:"market"`
	Players []Player `json:"players"`
}

func (r *Roster) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var players []Player
		if err := sonic.Unmarshal(trimmed, &players); err != nil {
			return err
		}
		*r = Roster{Players: players}
		return nil
	}

	type alias Roster
	var direct alias
	if err := sonic.Unmarshal(trimmed, &direct); err != nil {
		return err
	}
	*r = Roster(direct)
	return nil
}
