package normalize

import (
	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
)

const pointsLeaderKey = "points-leader"

// leaderSet keeps unique leaders in insertion order.
type leaderSet struct {
	keys  []string
	items map[string]sportradar.PlayerLeader
}

func newLeaderSet() *leaderSet {
	return &leaderSet{items: make(map[string]sportradar.PlayerLeader, 3)}
}

func (s *leaderSet) add(key string, item sportradar.PlayerLeader) bool {
	if _, ok := s.items[key]; ok {
		return false
	}
	s.keys = append(s.keys, key)
	s.items[key] = item
	return true
}

func (s *leaderSet) each(fn func(sportradar.PlayerLeader)) {
	for _, key := range s.keys {
		fn(s.items[key])
	}
}

// AggregateLeaders approximates team totals from the top points, rebounds
// and assists leaders, counting each player once.
func AggregateLeaders(leaders *sportradar.Leaders, points int) game.TeamStats {
	stats := game.TeamStats{Points: points}
	if leaders == nil {
		return stats
	}

	set := newLeaderSet()
	if len(leaders.Points) > 0 {
		first := leaders.Points[0]
		key := pointsLeaderKey
		if first.ID != nil {
			key = *first.ID
		}
		set.add(key, first)
	}
	for _, list := range [][]sportradar.PlayerLeader{leaders.Rebounds, leaders.Assists} {
		if len(list) == 0 || list[0].ID == nil {
			continue
		}
		set.add(*list[0].ID, list[0])
	}

	var steals, blocks, turnovers, fouls int
	set.each(func(item sportradar.PlayerLeader) {
		if item.Statistics == nil {
			return
		}
		stats.Rebounds += intOr(item.Statistics.Rebounds)
		stats.Assists += intOr(item.Statistics.Assists)
		steals += intOr(item.Statistics.Steals)
		blocks += intOr(item.Statistics.Blocks)
		turnovers += intOr(item.Statistics.Turnovers)
		fouls += intOr(item.Statistics.PersonalFouls)
	})
	stats.Steals = positive(steals)
	stats.Blocks = positive(blocks)
	stats.Turnovers = positive(turnovers)
	stats.Fouls = positive(fouls)

	if len(leaders.Points) > 0 && leaders.Points[0].Statistics != nil {
		top := leaders.Points[0].Statistics
		stats.FieldGoalPercentage = top.FieldGoalsPct
		stats.ThreePointPercentage = top.ThreePointsPct
		stats.FreeThrowPercentage = top.FreeThrowsPct
	}
	return stats
}

// TeamStatsFromSummary converts a full team statistics block.
func TeamStatsFromSummary(src *sportradar.TeamGameStatistics, points int) game.TeamStats {
	if src == nil {
		return game.TeamStats{Points: points}
	}

	rebounds := intOr(src.OffensiveRebounds) + intOr(src.DefensiveRebounds)
	switch {
	case src.Rebounds != nil:
		rebounds = *src.Rebounds
	case src.PersonalRebounds != nil:
		rebounds = *src.PersonalRebounds
	}

	turnovers := src.TotalTurnovers
	if turnovers == nil {
		turnovers = src.PlayerTurnovers
	}
	fouls := src.TotalFouls
	if fouls == nil {
		fouls = src.PersonalFouls
	}

	return game.TeamStats{
		Points:               points,
		Rebounds:             rebounds,
		Assists:              intOr(src.Assists),
		Steals:               src.Steals,
		Blocks:               src.Blocks,
		Turnovers:            turnovers,
		FieldGoalPercentage:  src.FieldGoalsPct,
		ThreePointPercentage: src.ThreePointsPct,
		FreeThrowPercentage:  src.FreeThrowsPct,
		Fouls:                fouls,
	}
}

// TeamStatsFromLegacy converts the camelCase statistics block carried by
// older schedule payloads. Points come from the enclosing score.
func TeamStatsFromLegacy(src *sportradar.LegacyTeamStatistics, points int) game.TeamStats {
	if src == nil {
		return game.TeamStats{Points: points}
	}
	return game.TeamStats{
		Points:               points,
		Rebounds:             intOr(src.Rebounds),
		Assists:              intOr(src.Assists),
		Steals:               src.Steals,
		Blocks:               src.Blocks,
		Turnovers:            src.Turnovers,
		FieldGoalPercentage:  src.FieldGoalPercentage,
		ThreePointPercentage: src.ThreePointPercentage,
		FreeThrowPercentage:  src.FreeThrowPercentage,
		Fouls:                src.Fouls,
	}
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
