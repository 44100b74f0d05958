package normalize

import (
	"context"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

const allGames = "all games"

// MapScheduleGames maps a daily schedule. Games that fail are logged and
// skipped; the call fails only when every game in a non-empty schedule
// failed.
func (m *Mapper) MapScheduleGames(ctx context.Context, src sportradar.Schedule, teams map[string]team.Team) ([]game.Game, error) {
	result := collect(m.pool, src.Games,
		func(g sportradar.ScheduleGame) string { return g.ID },
		func(g sportradar.ScheduleGame) (game.Game, error) { return m.MapScheduleGame(ctx, g, teams) },
	)
	return m.finishGames(ctx, result)
}

// MapGames applies the same batch policy to a list of game summaries.
func (m *Mapper) MapGames(ctx context.Context, src []sportradar.GameSummary, teams map[string]team.Team) ([]game.Game, error) {
	result := collect(m.pool, src,
		func(g sportradar.GameSummary) string { return g.ID },
		func(g sportradar.GameSummary) (game.Game, error) { return m.MapGameSummary(ctx, g, teams) },
	)
	return m.finishGames(ctx, result)
}

func (m *Mapper) finishGames(ctx context.Context, result Result[game.Game]) ([]game.Game, error) {
	if result.AllFailed() {
		err := GameMappingFailed(allGames, failureSummary(result.Failures))
		err.Cause = firstCause(result.Failures)
		return nil, err
	}
	m.logFailures(ctx, "game", result.Failures)
	return result.Items, nil
}
