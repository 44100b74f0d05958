package normalize

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/leader"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/statistic"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

// MapLeagueLeaders flattens every category's ranks into entries. Ranks with
// no player, no known team or no player id are skipped.
func (m *Mapper) MapLeagueLeaders(ctx context.Context, src sportradar.LeagueLeaders, teams map[string]team.Team) []leader.Entry {
	var out []leader.Entry
	for _, category := range src.Categories {
		if category.Name == nil {
			continue
		}
		name := *category.Name
		canonical := Classify(name)
		unit, display := UnitAndDisplayName(canonical, name)

		for _, rank := range category.Ranks {
			entry, err := m.leaderEntry(rank, name, canonical, unit, display, teams)
			if err != nil {
				m.logger.DebugContext(ctx, "skipping leader rank", "category", name, "rank", intOr(rank.Rank), "error", err)
				continue
			}
			out = append(out, entry)
		}
	}
	if out == nil {
		out = []leader.Entry{}
	}
	return out
}

func (m *Mapper) leaderEntry(
	rank sportradar.LeaderRank,
	categoryName string,
	canonical statistic.Category,
	unit *statistic.Unit,
	display string,
	teams map[string]team.Team,
) (leader.Entry, error) {
	where := fmt.Sprintf("leaders category '%s'", categoryName)
	if rank.Player == nil || rank.Player.ID == nil {
		return leader.Entry{}, MissingPlayer(fmt.Sprintf("rank %d", intOr(rank.Rank)), where)
	}
	playerID := *rank.Player.ID
	if len(rank.Teams) == 0 || rank.Teams[0].ID == nil {
		return leader.Entry{}, MissingRequiredField("teams[0].id", where)
	}
	known, ok := teams[*rank.Teams[0].ID]
	if !ok {
		return leader.Entry{}, MissingTeam(*rank.Teams[0].ID, where)
	}

	var value float64
	switch {
	case rank.Average != nil:
		value = ExtractValue(categoryName, rank.Average)
	case rank.Score != nil:
		value = *rank.Score
	}

	stat := statistic.Statistic{
		ID:       fmt.Sprintf("%s_%s_leader", playerID, categoryName),
		Name:     display,
		Value:    value,
		Category: canonical,
		Unit:     unit,
	}
	if rank.Total != nil {
		stat.GamesPlayed = rank.Total.GamesPlayed
	}

	mapped := player.Player{
		ID:           playerID,
		Name:         displayName(rank.Player.FullName, rank.Player.FirstName, rank.Player.LastName),
		Position:     strOr(rank.Player.Position, player.UnknownPosition),
		JerseyNumber: rank.Player.JerseyNumber.Int(),
		Team:         known,
		Statistics:   []statistic.Statistic{stat},
	}
	if err := m.check(mapped, "leader"); err != nil {
		return leader.Entry{}, err
	}
	return leader.Entry{Category: categoryName, Player: mapped}, nil
}
