package sportradar

import sonic "github.com/bytedance/sonic"

type Broadcast struct {
	Type    *string `json:"type"`
	Locale  *string `json:"locale"`
	Network *string `json:"network"`
	Channel *string `json:"channel"`
}

type TimeZones struct {
	Venue *string `json:"venue"`
	Home  *string `json:"home"`
	Away  *string `json:"away"`
}

type Season struct {
	ID   *string `json:"id"`
	Year *int    `json:"year"`
	Type *string `json:"type"`
	Name *string `json:"name"`
}

// ScoringPeriod is one period line; type is "quarter" or an overtime
// variant such as "elam".
type ScoringPeriod struct {
	Type     *string `json:"type"`
	Number   *int    `json:"number"`
	Sequence *int    `json:"sequence"`
	Points   *int    `json:"points"`
}

type MostUnanswered struct {
	Points   *int `json:"points"`
	OwnScore *int `json:"own_score"`
	OppScore *int `json:"opp_score"`
}

// TeamGameStatistics is the full team statistics block of a game summary.
type TeamGameStatistics struct {
	Minutes              *string         `json:"minutes"`
	FieldGoalsMade       *int            `json:"field_goals_made"`
	FieldGoalsAtt        *int            `json:"field_goals_att"`
	FieldGoalsPct        *float64        `json:"field_goals_pct"`
	ThreePointsMade      *int            `json:"three_points_made"`
	ThreePointsAtt       *int            `json:"three_points_att"`
	ThreePointsPct       *float64        `json:"three_points_pct"`
	TwoPointsMade        *int            `json:"two_points_made"`
	TwoPointsAtt         *int            `json:"two_points_att"`
	TwoPointsPct         *float64        `json:"two_points_pct"`
	BlockedAtt           *int            `json:"blocked_att"`
	FreeThrowsMade       *int            `json:"free_throws_made"`
	FreeThrowsAtt        *int            `json:"free_throws_att"`
	FreeThrowsPct        *float64        `json:"free_throws_pct"`
	OffensiveRebounds    *int            `json:"offensive_rebounds"`
	DefensiveRebounds    *int            `json:"defensive_rebounds"`
	Rebounds             *int            `json:"rebounds"`
	Assists              *int            `json:"assists"`
	Steals               *int            `json:"steals"`
	Blocks               *int            `json:"blocks"`
	AssistsTurnoverRatio *float64        `json:"assists_turnover_ratio"`
	PersonalFouls        *int            `json:"personal_fouls"`
	Ejections            *int            `json:"ejections"`
	Foulouts             *int            `json:"foulouts"`
	Points               *int            `json:"points"`
	FastBreakPts         *int            `json:"fast_break_pts"`
	SecondChancePts      *int            `json:"second_chance_pts"`
	TeamTurnovers        *int            `json:"team_turnovers"`
	PointsOffTurnovers   *int            `json:"points_off_turnovers"`
	TeamRebounds         *int            `json:"team_rebounds"`
	FlagrantFouls        *int            `json:"flagrant_fouls"`
	TeamPoints           *int            `json:"team_points"`
	TotalPoints          *int            `json:"total_points"`
	FreeThrowPoints      *int            `json:"free_throw_points"`
	PointsInPaint        *int            `json:"points_in_paint"`
	TotalRebounds        *int            `json:"total_rebounds"`
	TotalTurnovers       *int            `json:"total_turnovers"`
	PersonalRebounds     *int            `json:"personal_rebounds"`
	PlayerTurnovers      *int            `json:"player_turnovers"`
	BenchPoints          *int            `json:"bench_points"`
	BiggestLead          *int            `json:"biggest_lead"`
	EffectiveFgPct       *float64        `json:"effective_fg_pct"`
	Efficiency           *int            `json:"efficiency"`
	FoulsDrawn           *int            `json:"fouls_drawn"`
	OffensiveFouls       *int            `json:"offensive_fouls"`
	TotalFouls           *int            `json:"total_fouls"`
	TrueShootingPct      *float64        `json:"true_shooting_pct"`
	MostUnanswered       *MostUnanswered `json:"most_unanswered"`
}

// PeriodStatistics is a per-period statistics line. Rebounds are derived
// from the offensive and defensive split when the provider omits them.
type PeriodStatistics struct {
	Type              *string  `json:"type"`
	ID                *string  `json:"id"`
	Number            *int     `json:"number"`
	Sequence          *int     `json:"sequence"`
	Minutes           *string  `json:"minutes"`
	FieldGoalsMade    *int     `json:"field_goals_made"`
	FieldGoalsAtt     *int     `json:"field_goals_att"`
	FieldGoalsPct     *float64 `json:"field_goals_pct"`
	ThreePointsMade   *int     `json:"three_points_made"`
	ThreePointsAtt    *int     `json:"three_points_att"`
	ThreePointsPct    *float64 `json:"three_points_pct"`
	FreeThrowsMade    *int     `json:"free_throws_made"`
	FreeThrowsAtt     *int     `json:"free_throws_att"`
	FreeThrowsPct     *float64 `json:"free_throws_pct"`
	OffensiveRebounds *int     `json:"offensive_rebounds"`
	DefensiveRebounds *int     `json:"defensive_rebounds"`
	Rebounds          *int     `json:"rebounds"`
	Assists           *int     `json:"assists"`
	Turnovers         *int     `json:"turnovers"`
	Steals            *int     `json:"steals"`
	Blocks            *int     `json:"blocks"`
	PersonalFouls     *int     `json:"personal_fouls"`
	Points            *int     `json:"points"`
	Efficiency        *int     `json:"efficiency"`
}

func (p *PeriodStatistics) UnmarshalJSON(data []byte) error {
	type alias PeriodStatistics
	var direct alias
	if err := sonic.Unmarshal(data, &direct); err != nil {
		return err
	}
	*p = PeriodStatistics(direct)
	if p.Rebounds == nil && (p.OffensiveRebounds != nil || p.DefensiveRebounds != nil) {
		total := intOr(p.OffensiveRebounds) + intOr(p.DefensiveRebounds)
		p.Rebounds = &total
	}
	return nil
}

// PlayerStatistics is one player's line for a single game.
type PlayerStatistics struct {
	Minutes              *string  `json:"minutes"`
	FieldGoalsMade       *int     `json:"field_goals_made"`
	FieldGoalsAtt        *int     `json:"field_goals_att"`
	FieldGoalsPct        *float64 `json:"field_goals_pct"`
	ThreePointsMade      *int     `json:"three_points_made"`
	ThreePointsAtt       *int     `json:"three_points_att"`
	ThreePointsPct       *float64 `json:"three_points_pct"`
	TwoPointsMade        *int     `json:"two_points_made"`
	TwoPointsAtt         *int     `json:"two_points_att"`
	TwoPointsPct         *float64 `json:"two_points_pct"`
	BlockedAtt           *int     `json:"blocked_att"`
	FreeThrowsMade       *int     `json:"free_throws_made"`
	FreeThrowsAtt        *int     `json:"free_throws_att"`
	FreeThrowsPct        *float64 `json:"free_throws_pct"`
	OffensiveRebounds    *int     `json:"offensive_rebounds"`
	DefensiveRebounds    *int     `json:"defensive_rebounds"`
	Rebounds             *int     `json:"rebounds"`
	Assists              *int     `json:"assists"`
	Turnovers            *int     `json:"turnovers"`
	Steals               *int     `json:"steals"`
	Blocks               *int     `json:"blocks"`
	AssistsTurnoverRatio *float64 `json:"assists_turnover_ratio"`
	PersonalFouls        *int     `json:"personal_fouls"`
	TechFouls            *int     `json:"tech_fouls"`
	FlagrantFouls        *int     `json:"flagrant_fouls"`
	PlsMin               *int     `json:"pls_min"`
	Points               *int     `json:"points"`
	DoubleDouble         *bool    `json:"double_double"`
	TripleDouble         *bool    `json:"triple_double"`
	EffectiveFgPct       *float64 `json:"effective_fg_pct"`
	Efficiency           *int     `json:"efficiency"`
	FoulsDrawn           *int     `json:"fouls_drawn"`
	OffensiveFouls       *int     `json:"offensive_fouls"`
	PointsInPaint        *int     `json:"points_in_paint"`
	PointsOffTurnovers   *int     `json:"points_off_turnovers"`
	TrueShootingPct      *float64 `json:"true_shooting_pct"`
	SecondChancePts      *int     `json:"second_chance_pts"`
}

type PlayerLeader struct {
	ID              *string           `json:"id"`
	FullName        *string           `json:"full_name"`
	JerseyNumber    Text              `json:"jersey_number"`
	Position        *string           `json:"position"`
	PrimaryPosition *string           `json:"primary_position"`
	Statistics      *PlayerStatistics `json:"statistics"`
}

// Leaders holds the per-team game leaders used by the boxscore endpoint.
type Leaders struct {
	Points   []PlayerLeader `json:"points"`
	Rebounds []PlayerLeader `json:"rebounds"`
	Assists  []PlayerLeader `json:"assists"`
}

type Person struct {
	ID        *string `json:"id"`
	FullName  *string `json:"full_name"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Position  *string `json:"position"`
}

type PlayerGameSummary struct {
	ID              *string            `json:"id"`
	FullName        *string            `json:"full_name"`
	FirstName       *string            `json:"first_name"`
	LastName        *string            `json:"last_name"`
	JerseyNumber    Text               `json:"jersey_number"`
	Position        *string            `json:"position"`
	PrimaryPosition *string            `json:"primary_position"`
	Played          *bool              `json:"played"`
	Active          *bool              `json:"active"`
	Starter         *bool              `json:"starter"`
	OnCourt         *bool              `json:"on_court"`
	Statistics      *PlayerStatistics  `json:"statistics"`
	Periods         []PeriodStatistics `json:"periods"`
}

type TeamGameSummary struct {
	ID                *string             `json:"id"`
	Name              *string             `json:"name"`
	Alias             *string             `json:"alias"`
	Points            *int                `json:"points"`
	RemainingTimeouts *int                `json:"remaining_timeouts"`
	Scoring           []ScoringPeriod     `json:"scoring"`
	Statistics        *TeamGameStatistics `json:"statistics"`
	Periods           []PeriodStatistics  `json:"periods"`
	Coaches           []Person            `json:"coaches"`
	Players           []PlayerGameSummary `json:"players"`
}

type GameSummary struct {
	ID              string           `json:"id"`
	Status          *string          `json:"status"`
	Coverage        *string          `json:"coverage"`
	Scheduled       *string          `json:"scheduled"`
	LeadChanges     *int             `json:"lead_changes"`
	TimesTied       *int             `json:"times_tied"`
	Clock           *string          `json:"clock"`
	Quarter         *int             `json:"quarter"`
	PossessionArrow *string          `json:"possession_arrow"`
	TrackOnCourt    *bool            `json:"track_on_court"`
	EntryMode       *string          `json:"entry_mode"`
	ClockDecimal    *string          `json:"clock_decimal"`
	Broadcasts      []Broadcast      `json:"broadcasts"`
	TimeZones       *TimeZones       `json:"time_zones"`
	Season          *Season          `json:"season"`
	Venue           *Venue           `json:"venue"`
	Home            *TeamGameSummary `json:"home"`
	Away            *TeamGameSummary `json:"away"`
	Officials       []Person         `json:"officials"`
}

type TeamBoxscore struct {
	ID                *string         `json:"id"`
	Name              *string         `json:"name"`
	Alias             *string         `json:"alias"`
	Points            *int            `json:"points"`
	RemainingTimeouts *int            `json:"remaining_timeouts"`
	Scoring           []ScoringPeriod `json:"scoring"`
	Leaders           *Leaders        `json:"leaders"`
}

// Boxscore is the boxscore endpoint shape. It is also embedded in
// schedule games when the provider includes live scoring.
type Boxscore struct {
	ID              *string       `json:"id"`
	Status          *string       `json:"status"`
	Coverage        *string       `json:"coverage"`
	Scheduled       *string       `json:"scheduled"`
	LeadChanges     *int          `json:"lead_changes"`
	TimesTied       *int          `json:"times_tied"`
	Clock           *string       `json:"clock"`
	Quarter         *int          `json:"quarter"`
	PossessionArrow *string       `json:"possession_arrow"`
	TrackOnCourt    *bool         `json:"track_on_court"`
	EntryMode       *string       `json:"entry_mode"`
	ClockDecimal    *string       `json:"clock_decimal"`
	Broadcasts      []Broadcast   `json:"broadcasts"`
	TimeZones       *TimeZones    `json:"time_zones"`
	Season          *Season       `json:"season"`
	Home            *TeamBoxscore `json:"home"`
	Away            *TeamBoxscore `json:"away"`
}

// LegacyTeamStatistics is the older camelCase statistics block found under
// a schedule game's scoring object.
type LegacyTeamStatistics struct {
	Rebounds               *int     `json:"rebounds"`
	Assists                *int     `json:"assists"`
	Steals                 *int     `json:"steals"`
	Blocks                 *int     `json:"blocks"`
	Turnovers              *int     `json:"turnovers"`
	FieldGoalsMade         *int     `json:"fieldGoalsMade"`
	FieldGoalsAttempted    *int     `json:"fieldGoalsAttempted"`
	FieldGoalPercentage    *float64 `json:"fieldGoalPercentage"`
	ThreePointersMade      *int     `json:"threePointersMade"`
	ThreePointersAttempted *int     `json:"threePointersAttempted"`
	ThreePointPercentage   *float64 `json:"threePointPercentage"`
	FreeThrowsMade         *int     `json:"freeThrowsMade"`
	FreeThrowsAttempted    *int     `json:"freeThrowsAttempted"`
	FreeThrowPercentage    *float64 `json:"freeThrowPercentage"`
	Fouls                  *int     `json:"fouls"`
}

type LegacyTeamScore struct {
	Points     *int                  `json:"points"`
	Statistics *LegacyTeamStatistics `json:"statistics"`
}

type LegacyScoring struct {
	Home *LegacyTeamScore `json:"home"`
	Away *LegacyTeamScore `json:"away"`
}

type ScheduleGame struct {
	ID           string         `json:"id"`
	Status       *string        `json:"status"`
	Coverage     *string        `json:"coverage"`
	Scheduled    *string        `json:"scheduled"`
	TrackOnCourt *bool          `json:"track_on_court"`
	TimeZones    *TimeZones     `json:"time_zones"`
	Season       *Season        `json:"season"`
	Venue        *Venue         `json:"venue"`
	Broadcasts   []Broadcast    `json:"broadcasts"`
	Home         *TeamRef       `json:"home"`
	Away         *TeamRef       `json:"away"`
	HomeID       *string        `json:"home_id"`
	AwayID       *string        `json:"away_id"`
	League       *string        `json:"league"`
	Boxscore     *Boxscore      `json:"boxscore"`
	Scoring      *LegacyScoring `json:"scoring"`
}

// HomeTeamID prefers the nested team reference over the flat legacy key.
func (g ScheduleGame) HomeTeamID() *string {
	if g.Home != nil && g.Home.ID != nil {
		return g.Home.ID
	}
	return g.HomeID
}

func (g ScheduleGame) AwayTeamID() *string {
	if g.Away != nil && g.Away.ID != nil {
		return g.Away.ID
	}
	return g.AwayID
}

type Schedule struct {
	Date   *string        `json:"date"`
	League *League        `json:"league"`
	Games  []ScheduleGame `json:"games"`
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
