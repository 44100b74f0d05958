package normalize

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/statistic"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

const (
	allPlayers        = "all players"
	unknownStatName   = "Unknown"
	unknownTeamAlias  = "UNK"
	regularSeasonType = "REG"
	dayLayout         = "2006-01-02"
)

func displayName(fullName, firstName, lastName *string) string {
	if fullName != nil {
		return *fullName
	}
	return strings.TrimSpace(strOr(firstName, "") + " " + strOr(lastName, ""))
}

func statID(ownerID, key string) string {
	return fmt.Sprintf("%s_%s", ownerID, key)
}

// teamFromRef resolves a player's team through the known teams, falling
// back to a minimal team built from the reference itself.
func teamFromRef(id *string, ref *sportradar.TeamRef, teams map[string]team.Team) team.Team {
	if id != nil {
		if known, ok := teams[*id]; ok {
			return known
		}
	}
	out := team.Unknown()
	if id != nil {
		out.ID = *id
	}
	if ref != nil {
		out.Name = strOr(ref.Name, out.Name)
		out.Abbreviation = strOr(ref.Alias, unknownTeamAlias)
	}
	return out
}

// MapPlayer maps a roster player. Statistics come from the named list when
// present, otherwise from the per-game averages block.
func (m *Mapper) MapPlayer(src sportradar.Player, teams map[string]team.Team) (player.Player, error) {
	teamID := src.TeamID
	if teamID == nil && src.Team != nil {
		teamID = src.Team.ID
	}

	out := player.Player{
		ID:           src.ID,
		Name:         displayName(src.FullName, src.FirstName, src.LastName),
		Position:     strOr(src.Position, player.UnknownPosition),
		JerseyNumber: src.JerseyNumber.Int(),
		Height:       src.Height.Ptr(),
		Weight:       src.Weight.Int(),
		Age:          src.Age.Int(),
		College:      src.College,
		PhotoURL:     src.Photo,
		Team:         teamFromRef(teamID, src.Team, teams),
	}
	switch {
	case len(src.Statistics) > 0:
		out.Statistics = rosterStatistics(src.ID, src.Statistics)
	case src.Averages != nil:
		out.Statistics = averageStatistics(src.ID, *src.Averages)
	default:
		out.Statistics = []statistic.Statistic{}
	}

	if err := m.check(out, "player"); err != nil {
		return player.Player{}, PlayerMappingFailed(src.ID, err)
	}
	return out, nil
}

func rosterStatistics(playerID string, items []sportradar.Statistic) []statistic.Statistic {
	out := make([]statistic.Statistic, 0, len(items))
	for i, item := range items {
		stat := statistic.Statistic{
			ID:          statID(playerID, fmt.Sprintf("stat%d", i)),
			Name:        strOr(item.Name, unknownStatName),
			Category:    CategoryFor(strOr(item.Category, "other")),
			Season:      item.Season,
			GamesPlayed: item.GamesPlayed,
		}
		if item.Value != nil {
			stat.Value = item.Value.Value
		}
		if item.Unit != nil {
			stat.Unit = statistic.UnitPtr(statistic.Unit(*item.Unit))
		}
		out = append(out, stat)
	}
	return out
}

type averageField struct {
	key      string
	name     string
	category statistic.Category
	unit     statistic.Unit
	get      func(sportradar.Averages) *float64
}

var averageFields = []averageField{
	{"ppg", "Points Per Game", statistic.CategoryScoring, statistic.UnitPoints, func(a sportradar.Averages) *float64 { return a.Points }},
	{"rpg", "Rebounds Per Game", statistic.CategoryRebounding, statistic.UnitRebounds, func(a sportradar.Averages) *float64 { return a.Rebounds }},
	{"apg", "Assists Per Game", statistic.CategoryAssists, statistic.UnitAssists, func(a sportradar.Averages) *float64 { return a.Assists }},
	{"spg", "Steals Per Game", statistic.CategoryDefense, statistic.UnitSteals, func(a sportradar.Averages) *float64 { return a.Steals }},
	{"bpg", "Blocks Per Game", statistic.CategoryDefense, statistic.UnitBlocks, func(a sportradar.Averages) *float64 { return a.Blocks }},
	{"fg_pct", "Field Goal Percentage", statistic.CategoryShooting, statistic.UnitPercentage, func(a sportradar.Averages) *float64 { return a.FieldGoalPercentage }},
	{"three_pct", "Three Point Percentage", statistic.CategoryShooting, statistic.UnitPercentage, func(a sportradar.Averages) *float64 { return a.ThreePointPercentage }},
	{"ft_pct", "Free Throw Percentage", statistic.CategoryShooting, statistic.UnitPercentage, func(a sportradar.Averages) *float64 { return a.FreeThrowPercentage }},
}

func averageStatistics(playerID string, src sportradar.Averages) []statistic.Statistic {
	out := make([]statistic.Statistic, 0, len(averageFields))
	for _, field := range averageFields {
		value := field.get(src)
		if value == nil {
			continue
		}
		out = append(out, statistic.Statistic{
			ID:          statID(playerID, field.key),
			Name:        field.name,
			Value:       *value,
			Category:    field.category,
			Unit:        statistic.UnitPtr(field.unit),
			GamesPlayed: src.GamesPlayed,
		})
	}
	return out
}

// MapPlayers maps a team roster. Players that fail are logged and skipped.
func (m *Mapper) MapPlayers(ctx context.Context, src sportradar.Roster, teams map[string]team.Team) ([]player.Player, error) {
	result := collect(m.pool, src.Players,
		func(p sportradar.Player) string { return p.ID },
		func(p sportradar.Player) (player.Player, error) {
			if p.TeamID == nil && p.Team == nil && src.ID != nil {
				p.TeamID = src.ID
			}
			return m.MapPlayer(p, teams)
		},
	)
	if result.AllFailed() {
		return nil, PlayerMappingFailed(allPlayers, joinFailures(result.Failures))
	}
	m.logFailures(ctx, "player", result.Failures)
	return result.Items, nil
}

// MapPlayerProfile maps a player profile. Per-game statistics come from the
// most recent regular season, or the most recent season of any type.
func (m *Mapper) MapPlayerProfile(src sportradar.PlayerProfile, given *team.Team) (player.Player, error) {
	age, err := ageOn(src.Birthdate, m.now())
	if err != nil {
		m.logger.Warn("dropping player age", "player_id", src.ID, "error", err)
	}
	out := player.Player{
		ID:           src.ID,
		Name:         displayName(src.FullName, src.FirstName, src.LastName),
		Position:     strOr(src.Position, player.UnknownPosition),
		JerseyNumber: src.JerseyNumber.Int(),
		Height:       formatHeight(src.Height),
		Weight:       src.Weight.Int(),
		Age:          age,
		College:      src.College,
		Statistics:   profileStatistics(src.ID, src.Seasons),
	}
	switch {
	case given != nil:
		out.Team = *given
	case src.Team != nil:
		out.Team = teamFromRef(src.Team.ID, src.Team, nil)
	default:
		out.Team = team.Unknown()
	}

	if err := m.check(out, "player profile"); err != nil {
		return player.Player{}, PlayerMappingFailed(src.ID, err)
	}
	return out, nil
}

// formatHeight renders inches as feet and inches, e.g. 73 as 6'1".
func formatHeight(inches sportradar.Number) *string {
	total := inches.Int()
	if total == nil {
		return nil
	}
	out := fmt.Sprintf("%d'%d\"", *total/12, *total%12)
	return &out
}

// ageOn returns nil for a missing birthdate and an InvalidFormat error for
// one that is not YYYY-MM-DD.
func ageOn(birthdate *string, now time.Time) (*int, error) {
	if birthdate == nil {
		return nil, nil
	}
	born, err := time.Parse(dayLayout, strings.TrimSpace(*birthdate))
	if err != nil {
		return nil, InvalidFormat(*birthdate, "birthdate")
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return &age, nil
}

func latestSeason(seasons []sportradar.PlayerSeason) (sportradar.PlayerSeason, bool) {
	if len(seasons) == 0 {
		return sportradar.PlayerSeason{}, false
	}
	sorted := append([]sportradar.PlayerSeason(nil), seasons...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return intOr(sorted[i].Year) > intOr(sorted[j].Year)
	})
	for _, season := range sorted {
		if strOr(season.Type, "") == regularSeasonType {
			return season, true
		}
	}
	return sorted[0], true
}

func profileStatistics(playerID string, seasons []sportradar.PlayerSeason) []statistic.Statistic {
	season, ok := latestSeason(seasons)
	if !ok || len(season.Teams) == 0 {
		return []statistic.Statistic{}
	}
	first := season.Teams[0]
	label := fmt.Sprintf("%d %s", intOr(season.Year), strOr(season.Type, ""))
	gamesPlayed := first.Total.GamesPlayed

	stat := func(key, name string, value float64, category statistic.Category, unit statistic.Unit) statistic.Statistic {
		return statistic.Statistic{
			ID:          statID(playerID, key+"_"+strings.ReplaceAll(label, " ", "_")),
			Name:        name,
			Value:       value,
			Category:    category,
			Unit:        statistic.UnitPtr(unit),
			Season:      &label,
			GamesPlayed: &gamesPlayed,
		}
	}

	avg := first.Average
	out := []statistic.Statistic{
		stat("ppg", "Points Per Game", avg.Points, statistic.CategoryScoring, statistic.UnitPoints),
		stat("rpg", "Rebounds Per Game", avg.Rebounds, statistic.CategoryRebounding, statistic.UnitRebounds),
		stat("apg", "Assists Per Game", avg.Assists, statistic.CategoryAssists, statistic.UnitAssists),
		stat("spg", "Steals Per Game", avg.Steals, statistic.CategoryDefense, statistic.UnitSteals),
		stat("bpg", "Blocks Per Game", avg.Blocks, statistic.CategoryDefense, statistic.UnitBlocks),
	}

	total := first.Total
	if total.FieldGoalsAtt > 0 {
		out = append(out, stat("fg_pct", "Field Goal Percentage", total.FieldGoalsPct*100, statistic.CategoryShooting, statistic.UnitPercentage))
	}
	if total.ThreePointsAtt > 0 {
		out = append(out, stat("three_pct", "Three Point Percentage", total.ThreePointsPct*100, statistic.CategoryShooting, statistic.UnitPercentage))
	}
	if total.FreeThrowsAtt > 0 {
		out = append(out, stat("ft_pct", "Free Throw Percentage", total.FreeThrowsPct*100, statistic.CategoryShooting, statistic.UnitPercentage))
	}
	return out
}

// MapGamePlayers maps both sides' player lines from a game summary. Each
// player carries that game's box score line as statistics.
func (m *Mapper) MapGamePlayers(ctx context.Context, src sportradar.GameSummary, teams map[string]team.Team) ([]player.Player, error) {
	var out []player.Player
	for _, side := range []*sportradar.TeamGameSummary{src.Home, src.Away} {
		if side == nil {
			continue
		}
		sideTeam := teamFromRef(side.ID, &sportradar.TeamRef{ID: side.ID, Name: side.Name, Alias: side.Alias}, teams)
		for _, line := range side.Players {
			if line.ID == nil {
				m.logger.DebugContext(ctx, "skipping game player without id", "game_id", src.ID)
				continue
			}
			mapped := player.Player{
				ID:           *line.ID,
				Name:         displayName(line.FullName, line.FirstName, line.LastName),
				Position:     strOr(line.Position, player.UnknownPosition),
				JerseyNumber: line.JerseyNumber.Int(),
				Team:         sideTeam,
				Statistics:   gameLineStatistics(src.ID, *line.ID, line.Statistics),
			}
			if err := m.check(mapped, "game player"); err != nil {
				m.logger.WarnContext(ctx, "skipping unmappable game player", "game_id", src.ID, "player_id", *line.ID, "error", err)
				continue
			}
			out = append(out, mapped)
		}
	}
	if out == nil {
		out = []player.Player{}
	}
	return out, nil
}

func gameLineStatistics(gameID, playerID string, src *sportradar.PlayerStatistics) []statistic.Statistic {
	if src == nil {
		return []statistic.Statistic{}
	}
	season := "game " + gameID
	line := func(key, name string, value *int, category statistic.Category, unit statistic.Unit) statistic.Statistic {
		return statistic.Statistic{
			ID:       statID(playerID, gameID+"_"+key),
			Name:     name,
			Value:    float64(intOr(value)),
			Category: category,
			Unit:     statistic.UnitPtr(unit),
			Season:   &season,
		}
	}
	out := []statistic.Statistic{
		line("pts", "Points", src.Points, statistic.CategoryScoring, statistic.UnitPoints),
		line("reb", "Rebounds", src.Rebounds, statistic.CategoryRebounding, statistic.UnitRebounds),
		line("ast", "Assists", src.Assists, statistic.CategoryAssists, statistic.UnitAssists),
		line("stl", "Steals", src.Steals, statistic.CategoryDefense, statistic.UnitSteals),
		line("blk", "Blocks", src.Blocks, statistic.CategoryDefense, statistic.UnitBlocks),
	}
	if src.FieldGoalsPct != nil {
		out = append(out, statistic.Statistic{
			ID:       statID(playerID, gameID+"_fg_pct"),
			Name:     "Field Goal Percentage",
			Value:    *src.FieldGoalsPct,
			Category: statistic.CategoryShooting,
			Unit:     statistic.UnitPtr(statistic.UnitPercentage),
			Season:   &season,
		})
	}
	return out
}
