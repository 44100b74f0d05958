package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/injury"
)

const unknownLeague = "Unknown League"

// MapInjuries maps the league injuries report. An unknown status fails the
// whole report since it cannot be ranked.
func (m *Mapper) MapInjuries(src sportradar.InjuriesResponse) (injury.LeagueInjuries, error) {
	if src.League == nil {
		return injury.LeagueInjuries{}, MissingRequiredField("league", "injuries response")
	}

	out := injury.LeagueInjuries{
		LeagueID:    strOr(src.League.ID, ""),
		LeagueName:  strOr(src.League.Name, unknownLeague),
		LeagueAlias: src.League.Alias,
		Teams:       make([]injury.TeamInjuries, 0, len(src.Teams)),
	}
	for _, srcTeam := range src.Teams {
		mappedTeam := injury.TeamInjuries{
			TeamID:   srcTeam.ID,
			TeamName: srcTeam.Name,
			Players:  make([]injury.PlayerInjuries, 0, len(srcTeam.Players)),
		}
		for _, srcPlayer := range srcTeam.Players {
			mappedPlayer := injury.PlayerInjuries{
				PlayerID:        srcPlayer.ID,
				FullName:        srcPlayer.FullName,
				Position:        srcPlayer.Position,
				PrimaryPosition: srcPlayer.PrimaryPosition,
				JerseyNumber:    srcPlayer.JerseyNumber.Ptr(),
				Injuries:        make([]injury.Injury, 0, len(srcPlayer.Injuries)),
			}
			for _, srcInjury := range srcPlayer.Injuries {
				status, err := injury.ParseStatus(srcInjury.Status)
				if err != nil {
					mapped := InvalidStatus(srcInjury.Status, fmt.Sprintf("injury '%s'", srcInjury.ID))
					mapped.Cause = err
					return injury.LeagueInjuries{}, mapped
				}
				mappedPlayer.Injuries = append(mappedPlayer.Injuries, injury.Injury{
					ID:          srcInjury.ID,
					Comment:     srcInjury.Comment,
					Description: srcInjury.Desc,
					Status:      status,
					StartDate:   parseDay(srcInjury.StartDate),
					UpdateDate:  parseDay(srcInjury.UpdateDate),
				})
			}
			mappedTeam.Players = append(mappedTeam.Players, mappedPlayer)
		}
		out.Teams = append(out.Teams, mappedTeam)
	}
	return out, nil
}

// parseDay reads a YYYY-MM-DD date. Unparseable values are dropped.
func parseDay(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	parsed, err := time.Parse(dayLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	return &parsed
}
