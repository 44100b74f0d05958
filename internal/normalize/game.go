package normalize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

const (
	unknownDate = "unknown"
	unknownID   = "unknown"
)

// parseGameDate accepts ISO-8601 timestamps with or without fractional
// seconds.
func parseGameDate(raw *string, context string) (time.Time, error) {
	if raw == nil {
		return time.Time{}, InvalidDate(unknownDate, context)
	}
	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(*raw))
	if err != nil {
		return time.Time{}, InvalidDate(*raw, context)
	}
	return parsed, nil
}

func resolveTeams(homeID, awayID *string, teams map[string]team.Team, gameID, context string) (team.Team, team.Team, error) {
	if homeID == nil || awayID == nil {
		return team.Team{}, team.Team{}, MissingRequiredField("Home or away team ID", context)
	}
	home, ok := teams[*homeID]
	if !ok {
		return team.Team{}, team.Team{}, MissingTeam(*homeID, gameID)
	}
	away, ok := teams[*awayID]
	if !ok {
		return team.Team{}, team.Team{}, MissingTeam(*awayID, gameID)
	}
	return home, away, nil
}

// MapGameSummary maps the game summary endpoint. Summary games always carry
// a box score built from the full team statistics block.
func (m *Mapper) MapGameSummary(ctx context.Context, src sportradar.GameSummary, teams map[string]team.Team) (game.Game, error) {
	label := fmt.Sprintf("game summary '%s'", src.ID)

	var homeID, awayID *string
	if src.Home != nil {
		homeID = src.Home.ID
	}
	if src.Away != nil {
		awayID = src.Away.ID
	}
	homeTeam, awayTeam, err := resolveTeams(homeID, awayID, teams, src.ID, label)
	if err != nil {
		return game.Game{}, err
	}

	startsAt, err := parseGameDate(src.Scheduled, label)
	if err != nil {
		return game.Game{}, err
	}

	home := summarySide(src.Home)
	away := summarySide(src.Away)
	status, homeScore, awayScore := m.reconcileScore(ctx, src.ID, ClassifyStatus(src.Status), startsAt, home, away)

	box := &game.BoxScore{
		HomeScore:   homeScore,
		AwayScore:   awayScore,
		HomeStats:   TeamStatsFromSummary(home.Stats, homeScore),
		AwayStats:   TeamStatsFromSummary(away.Stats, awayScore),
		Quarters:    AlignQuarters(home.Scoring, away.Scoring),
		LastUpdated: src.Scheduled,
	}

	out := game.Game{
		ID:       src.ID,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
		Date:     game.FormatDate(startsAt),
		Status:   status,
		BoxScore: box,
	}
	if src.Venue != nil {
		out.Venue = src.Venue.Name
	}
	if src.Season != nil {
		out.League = src.Season.Name
	}
	if len(src.Broadcasts) > 0 {
		out.BroadcastNetwork = src.Broadcasts[0].Network
		out.TimeZone = src.Broadcasts[0].Locale
	}

	if err := m.check(out, label); err != nil {
		return game.Game{}, wrapGameError(src.ID, err)
	}
	return out, nil
}

// reconcileScore resolves both sides through the score chain, infers the
// status from the result and re-attempts a finished 0-0 game.
func (m *Mapper) reconcileScore(ctx context.Context, gameID string, status game.Status, startsAt time.Time, home, away sideScore) (game.Status, int, int) {
	homeScore, _ := resolveScore(home)
	awayScore, _ := resolveScore(away)

	status = InferStatus(status, startsAt, m.now(), homeScore, awayScore)
	if status == game.StatusFinished && homeScore == 0 && awayScore == 0 {
		m.logger.WarnContext(ctx, "finished game resolved to zero score, reattempting", "game_id", gameID)
		homeScore = reattemptScore(home)
		awayScore = reattemptScore(away)
	}
	return status, homeScore, awayScore
}

func summarySide(src *sportradar.TeamGameSummary) sideScore {
	if src == nil {
		return sideScore{}
	}
	return sideScore{Points: src.Points, Stats: src.Statistics, Scoring: src.Scoring}
}

// MapScheduleGame maps one entry of the daily schedule. The box score comes
// from the embedded boxscore, then the legacy scoring block.
func (m *Mapper) MapScheduleGame(ctx context.Context, src sportradar.ScheduleGame, teams map[string]team.Team) (game.Game, error) {
	label := fmt.Sprintf("game '%s'", src.ID)

	homeTeam, awayTeam, err := resolveTeams(src.HomeTeamID(), src.AwayTeamID(), teams, src.ID, label)
	if err != nil {
		return game.Game{}, err
	}
	startsAt, err := parseGameDate(src.Scheduled, label)
	if err != nil {
		return game.Game{}, err
	}

	var box *game.BoxScore
	status := ClassifyStatus(src.Status)
	switch {
	case src.Boxscore != nil:
		home, away := boxscoreSide(src.Boxscore.Home), boxscoreSide(src.Boxscore.Away)
		var homeScore, awayScore int
		status, homeScore, awayScore = m.reconcileScore(ctx, src.ID, status, startsAt, home, away)
		mapped := boxscoreFromLeaders(*src.Boxscore, homeScore, awayScore)
		box = &mapped
	case src.Scoring != nil:
		home, away := legacySide(src.Scoring.Home), legacySide(src.Scoring.Away)
		var homeScore, awayScore int
		status, homeScore, awayScore = m.reconcileScore(ctx, src.ID, status, startsAt, home, away)
		mapped := boxscoreFromLegacy(*src.Scoring, homeScore, awayScore)
		box = &mapped
	}
	if status == game.StatusFinished && box == nil {
		m.logger.WarnContext(ctx, "finished game has no box score, building an empty one", "game_id", src.ID)
		box = &game.BoxScore{LastUpdated: src.Scheduled}
	}

	out := game.Game{
		ID:               src.ID,
		HomeTeam:         homeTeam,
		AwayTeam:         awayTeam,
		Date:             game.FormatDate(startsAt),
		Status:           status,
		BoxScore:         box,
		BroadcastNetwork: broadcastNetwork(src.Broadcasts),
		League:           src.League,
	}
	if src.Venue != nil {
		out.Venue = src.Venue.Name
	}
	if src.Season != nil && src.Season.Name != nil {
		out.League = src.Season.Name
	}
	if src.TimeZones != nil {
		out.TimeZone = src.TimeZones.Venue
		if out.TimeZone == nil {
			out.TimeZone = src.TimeZones.Home
		}
	}

	if err := m.check(out, label); err != nil {
		return game.Game{}, wrapGameError(src.ID, err)
	}
	return out, nil
}

// broadcastNetwork prefers the first TV broadcast.
func broadcastNetwork(items []sportradar.Broadcast) *string {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		if item.Type != nil && strings.ToLower(*item.Type) == "tv" {
			return item.Network
		}
	}
	return items[0].Network
}

// MapBoxscore maps the boxscore endpoint. Team statistics are approximated
// from the per-team leaders.
func (m *Mapper) MapBoxscore(src sportradar.Boxscore) (game.BoxScore, error) {
	home, away := boxscoreSide(src.Home), boxscoreSide(src.Away)
	homeScore, _ := resolveScore(home)
	awayScore, _ := resolveScore(away)
	if ClassifyStatus(src.Status) == game.StatusFinished && homeScore == 0 && awayScore == 0 {
		homeScore, awayScore = reattemptScore(home), reattemptScore(away)
	}

	out := boxscoreFromLeaders(src, homeScore, awayScore)
	if err := m.check(out, "boxscore"); err != nil {
		return game.BoxScore{}, BoxscoreMappingFailed(strOr(src.ID, unknownID), err)
	}
	return out, nil
}

func boxscoreSide(src *sportradar.TeamBoxscore) sideScore {
	if src == nil {
		return sideScore{}
	}
	return sideScore{Points: src.Points, Scoring: src.Scoring}
}

func legacySide(src *sportradar.LegacyTeamScore) sideScore {
	if src == nil {
		return sideScore{}
	}
	return sideScore{Points: src.Points}
}

func boxscoreFromLeaders(src sportradar.Boxscore, homeScore, awayScore int) game.BoxScore {
	var (
		homeLeaders, awayLeaders *sportradar.Leaders
		homeScoring, awayScoring []sportradar.ScoringPeriod
	)
	if src.Home != nil {
		homeLeaders = src.Home.Leaders
		homeScoring = src.Home.Scoring
	}
	if src.Away != nil {
		awayLeaders = src.Away.Leaders
		awayScoring = src.Away.Scoring
	}

	return game.BoxScore{
		HomeScore:   homeScore,
		AwayScore:   awayScore,
		HomeStats:   AggregateLeaders(homeLeaders, homeScore),
		AwayStats:   AggregateLeaders(awayLeaders, awayScore),
		Quarters:    AlignQuarters(homeScoring, awayScoring),
		LastUpdated: src.Scheduled,
	}
}

func boxscoreFromLegacy(src sportradar.LegacyScoring, homeScore, awayScore int) game.BoxScore {
	out := game.BoxScore{HomeScore: homeScore, AwayScore: awayScore}
	if src.Home != nil {
		out.HomeStats = TeamStatsFromLegacy(src.Home.Statistics, homeScore)
	}
	if src.Away != nil {
		out.AwayStats = TeamStatsFromLegacy(src.Away.Statistics, awayScore)
	}
	return out
}
