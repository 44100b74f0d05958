package normalize

import (
	"context"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

const allTeams = "all teams"

func (m *Mapper) MapTeam(src sportradar.Team) (team.Team, error) {
	out := team.Team{
		ID:           src.ID,
		Name:         src.Name,
		Abbreviation: team.Abbreviation(src.Alias, src.Name),
		LogoURL:      src.Logo,
		City:         src.Market,
		Conference:   src.Conference,
		Division:     src.Division,
		Wins:         src.Wins,
		Losses:       src.Losses,
	}
	if src.WinPercentage != nil {
		out.WinPercentage = src.WinPercentage.Float()
	}
	if err := m.check(out, "team"); err != nil {
		return team.Team{}, TeamMappingFailed(src.ID, err)
	}
	return out, nil
}

// MapTeams maps the teams list. Teams that fail are logged and skipped.
func (m *Mapper) MapTeams(ctx context.Context, src sportradar.TeamsResponse) ([]team.Team, error) {
	result := collect(m.pool, src.Teams,
		func(t sportradar.Team) string { return t.ID },
		m.MapTeam,
	)
	if result.AllFailed() {
		return nil, TeamMappingFailed(allTeams, joinFailures(result.Failures))
	}
	m.logFailures(ctx, "team", result.Failures)
	return result.Items, nil
}

// MapStandings merges standings records onto teams. Values carried by the
// standing entry win over the embedded or known team. Entries that resolve
// to no team are skipped.
func (m *Mapper) MapStandings(ctx context.Context, src sportradar.Standings, teams map[string]team.Team) []team.Team {
	out := make([]team.Team, 0, len(src.Teams))
	for _, entry := range src.Teams {
		base, ok := m.standingTeam(entry, teams)
		if !ok {
			m.logger.DebugContext(ctx, "skipping standing without team", "team_id", strOr(entry.ResolvedTeamID(), ""))
			continue
		}
		if entry.Wins != nil {
			base.Wins = entry.Wins
		}
		if entry.Losses != nil {
			base.Losses = entry.Losses
		}
		if pct := entry.ResolvedWinPercentage(); pct != nil {
			base.WinPercentage = pct
		}
		if entry.Conference != nil {
			base.Conference = entry.Conference
		}
		if entry.Division != nil {
			base.Division = entry.Division
		}
		out = append(out, base)
	}
	return out
}

func (m *Mapper) standingTeam(entry sportradar.TeamStanding, teams map[string]team.Team) (team.Team, bool) {
	if entry.Team != nil {
		mapped, err := m.MapTeam(*entry.Team)
		if err == nil {
			return mapped, true
		}
	}
	if id := entry.ResolvedTeamID(); id != nil {
		known, ok := teams[*id]
		return known, ok
	}
	return team.Team{}, false
}

// MapHierarchy flattens conferences into teams tagged with their
// conference name.
func (m *Mapper) MapHierarchy(ctx context.Context, src sportradar.Hierarchy) []team.Team {
	var out []team.Team
	for _, conference := range src.Conferences {
		for _, item := range conference.Teams {
			mapped := team.Team{
				ID:           item.ID,
				Name:         item.Name,
				Abbreviation: team.Abbreviation(item.Alias, item.Name),
				Conference:   conference.Name,
			}
			if item.Venue != nil {
				mapped.City = item.Venue.City
			}
			if err := m.check(mapped, "hierarchy team"); err != nil {
				m.logger.WarnContext(ctx, "skipping unmappable hierarchy team", "team_id", item.ID, "error", err)
				continue
			}
			out = append(out, mapped)
		}
	}
	return out
}
