package sportradar

type LeagueLeaders struct {
	Season     *Season          `json:"season"`
	ID         *string          `json:"id"`
	Name       *string          `json:"name"`
	Alias      *string          `json:"alias"`
	Type       *string          `json:"type"`
	Categories []LeaderCategory `json:"categories"`
}

type LeaderCategory struct {
	Name  *string      `json:"name"`
	Type  *string      `json:"type"`
	Ranks []LeaderRank `json:"ranks"`
}

type LeaderRank struct {
	Rank    *int           `json:"rank"`
	Tied    *bool          `json:"tied"`
	Score   *float64       `json:"score"`
	Player  *LeaderPlayer  `json:"player"`
	Teams   []TeamRef      `json:"teams"`
	Total   *LeaderTotal   `json:"total"`
	Average *LeaderAverage `json:"average"`
}

type LeaderPlayer struct {
	ID              *string `json:"id"`
	FullName        *string `json:"full_name"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Position        *string `json:"position"`
	PrimaryPosition *string `json:"primary_position"`
	JerseyNumber    Text    `json:"jersey_number"`
}

// LeaderTotal is a season total block inside a leaders rank.
type LeaderTotal struct {
	GamesPlayed          *int     `json:"games_played"`
	GamesStarted         *int     `json:"games_started"`
	Minutes              *int     `json:"minutes"`
	FieldGoalsMade       *int     `json:"field_goals_made"`
	FieldGoalsAtt        *int     `json:"field_goals_att"`
	FieldGoalsPct        *float64 `json:"field_goals_pct"`
	TwoPointsMade        *int     `json:"two_points_made"`
	TwoPointsAtt         *int     `json:"two_points_att"`
	TwoPointsPct         *float64 `json:"two_points_pct"`
	ThreePointsMade      *int     `json:"three_points_made"`
	ThreePointsAtt       *int     `json:"three_points_att"`
	ThreePointsPct       *float64 `json:"three_points_pct"`
	BlockedAtt           *int     `json:"blocked_att"`
	FreeThrowsMade       *int     `json:"free_throws_made"`
	FreeThrowsAtt        *int     `json:"free_throws_att"`
	FreeThrowsPct        *float64 `json:"free_throws_pct"`
	OffensiveRebounds    *int     `json:"offensive_rebounds"`
	DefensiveRebounds    *int     `json:"defensive_rebounds"`
	Rebounds             *int     `json:"rebounds"`
	Assists              *int     `json:"assists"`
	Turnovers            *int     `json:"turnovers"`
	AssistsTurnoverRatio *float64 `json:"assists_turnover_ratio"`
	Steals               *int     `json:"steals"`
	Blocks               *int     `json:"blocks"`
	PersonalFouls        *int     `json:"personal_fouls"`
	TechFouls            *int     `json:"tech_fouls"`
	Points               *int     `json:"points"`
	FlagrantFouls        *int     `json:"flagrant_fouls"`
	TrueShootingPct      *float64 `json:"true_shooting_pct"`
	Efficiency           *int     `json:"efficiency"`
	DoubleDoubles        *int     `json:"double_doubles"`
	TripleDoubles        *int     `json:"triple_doubles"`
}

// LeaderAverage is the per-game block a leaderboard value is read from.
type LeaderAverage struct {
	Minutes            *float64 `json:"minutes"`
	Points             *float64 `json:"points"`
	OffRebounds        *float64 `json:"off_rebounds"`
	DefRebounds        *float64 `json:"def_rebounds"`
	Rebounds           *float64 `json:"rebounds"`
	Assists            *float64 `json:"assists"`
	Steals             *float64 `json:"steals"`
	Blocks             *float64 `json:"blocks"`
	Turnovers          *float64 `json:"turnovers"`
	PersonalFouls      *float64 `json:"personal_fouls"`
	FlagrantFouls      *float64 `json:"flagrant_fouls"`
	BlockedAtt         *float64 `json:"blocked_att"`
	FieldGoalsMade     *float64 `json:"field_goals_made"`
	FieldGoalsAtt      *float64 `json:"field_goals_att"`
	ThreePointsMade    *float64 `json:"three_points_made"`
	ThreePointsAtt     *float64 `json:"three_points_att"`
	FreeThrowsMade     *float64 `json:"free_throws_made"`
	FreeThrowsAtt      *float64 `json:"free_throws_att"`
	TwoPointsMade      *float64 `json:"two_points_made"`
	TwoPointsAtt       *float64 `json:"two_points_att"`
	Efficiency         *float64 `json:"efficiency"`
	TrueShootingAtt    *float64 `json:"true_shooting_att"`
	FastBreakAtt       *float64 `json:"fast_break_att"`
	FastBreakMade      *float64 `json:"fast_break_made"`
	FastBreakPts       *float64 `json:"fast_break_pts"`
	FoulsDrawn         *float64 `json:"fouls_drawn"`
	OffensiveFouls     *float64 `json:"offensive_fouls"`
	PointsInPaint      *float64 `json:"points_in_paint"`
	PointsInPaintAtt   *float64 `json:"points_in_paint_att"`
	PointsInPaintMade  *float64 `json:"points_in_paint_made"`
	PointsOffTurnovers *float64 `json:"points_off_turnovers"`
	SecondChanceAtt    *float64 `json:"second_chance_att"`
	SecondChanceMade   *float64 `json:"second_chance_made"`
	SecondChancePts    *float64 `json:"second_chance_pts"`
}
