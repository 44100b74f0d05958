package sportradar

import sonic "github.com/bytedance/sonic"

// SeasonStatistics is a season total or average block. Core counting stats
// default to zero when absent; advanced metrics stay optional.
type SeasonStatistics struct {
	GamesPlayed          int
	GamesStarted         int
	Minutes              float64
	FieldGoalsMade       float64
	FieldGoalsAtt        float64
	FieldGoalsPct        float64
	TwoPointsMade        float64
	TwoPointsAtt         float64
	TwoPointsPct         float64
	ThreePointsMade      float64
	ThreePointsAtt       float64
	ThreePointsPct       float64
	BlockedAtt           float64
	FreeThrowsMade       float64
	FreeThrowsAtt        float64
	FreeThrowsPct        float64
	OffensiveRebounds    float64
	DefensiveRebounds    float64
	Rebounds             float64
	Assists              float64
	Turnovers            float64
	AssistsTurnoverRatio float64
	Steals               float64
	Blocks               float64
	PersonalFouls        float64
	Points               float64

	TechFouls          *float64
	FlagrantFouls      *float64
	Ejections          *float64
	Foulouts           *float64
	TrueShootingAtt    *float64
	TrueShootingPct    *float64
	Efficiency         *float64
	EffectiveFgPct     *float64
	UsagePct           *float64
	DoubleDoubles      *float64
	TripleDoubles      *float64
	FastBreakPts       *float64
	PointsInPaint      *float64
	PointsOffTurnovers *float64
	SecondChancePts    *float64
	FoulsDrawn         *float64
	OffensiveFouls     *float64
	Plus               *float64
	Minus              *float64
}

type seasonStatisticsWire struct {
	GamesPlayed          *Number  `json:"games_played"`
	GamesStarted         *Number  `json:"games_started"`
	Minutes              *float64 `json:"minutes"`
	FieldGoalsMade       *float64 `json:"field_goals_made"`
	FieldGoalsAtt        *float64 `json:"field_goals_att"`
	FieldGoalsPct        *float64 `json:"field_goals_pct"`
	TwoPointsMade        *float64 `json:"two_points_made"`
	TwoPointsAtt         *float64 `json:"two_points_att"`
	TwoPointsPct         *float64 `json:"two_points_pct"`
	ThreePointsMade      *float64 `json:"three_points_made"`
	ThreePointsAtt       *float64 `json:"three_points_att"`
	ThreePointsPct       *float64 `json:"three_points_pct"`
	BlockedAtt           *float64 `json:"blocked_att"`
	FreeThrowsMade       *float64 `json:"free_throws_made"`
	FreeThrowsAtt        *float64 `json:"free_throws_att"`
	FreeThrowsPct        *float64 `json:"free_throws_pct"`
	OffensiveRebounds    *float64 `json:"offensive_rebounds"`
	DefensiveRebounds    *float64 `json:"defensive_rebounds"`
	OffRebounds          *float64 `json:"off_rebounds"`
	DefRebounds          *float64 `json:"def_rebounds"`
	Rebounds             *float64 `json:"rebounds"`
	Assists              *float64 `json:"assists"`
	Turnovers            *float64 `json:"turnovers"`
	AssistsTurnoverRatio *float64 `json:"assists_turnover_ratio"`
	Steals               *float64 `json:"steals"`
	Blocks               *float64 `json:"blocks"`
	PersonalFouls        *float64 `json:"personal_fouls"`
	Points               *float64 `json:"points"`

	TechFouls          *float64 `json:"tech_fouls"`
	FlagrantFouls      *float64 `json:"flagrant_fouls"`
	Ejections          *float64 `json:"ejections"`
	Foulouts           *float64 `json:"foulouts"`
	TrueShootingAtt    *float64 `json:"true_shooting_att"`
	TrueShootingPct    *float64 `json:"true_shooting_pct"`
	Efficiency         *float64 `json:"efficiency"`
	EffectiveFgPct     *float64 `json:"effective_fg_pct"`
	UsagePct           *float64 `json:"usage_pct"`
	DoubleDoubles      *float64 `json:"double_doubles"`
	TripleDoubles      *float64 `json:"triple_doubles"`
	FastBreakPts       *float64 `json:"fast_break_pts"`
	PointsInPaint      *float64 `json:"points_in_paint"`
	PointsOffTurnovers *float64 `json:"points_off_turnovers"`
	SecondChancePts    *float64 `json:"second_chance_pts"`
	FoulsDrawn         *float64 `json:"fouls_drawn"`
	OffensiveFouls     *float64 `json:"offensive_fouls"`
	Plus               *float64 `json:"plus"`
	Minus              *float64 `json:"minus"`
}

func (s *SeasonStatistics) UnmarshalJSON(data []byte) error {
	var wire seasonStatisticsWire
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return err
	}

	offensive := firstFloat(wire.OffensiveRebounds, wire.OffRebounds)
	defensive := firstFloat(wire.DefensiveRebounds, wire.DefRebounds)
	rebounds := offensive + defensive
	if wire.Rebounds != nil {
		rebounds = *wire.Rebounds
	}

	*s = SeasonStatistics{
		GamesPlayed:          numberInt(wire.GamesPlayed),
		GamesStarted:         numberInt(wire.GamesStarted),
		Minutes:              floatOr(wire.Minutes),
		FieldGoalsMade:       floatOr(wire.FieldGoalsMade),
		FieldGoalsAtt:        floatOr(wire.FieldGoalsAtt),
		FieldGoalsPct:        floatOr(wire.FieldGoalsPct),
		TwoPointsMade:        floatOr(wire.TwoPointsMade),
		TwoPointsAtt:         floatOr(wire.TwoPointsAtt),
		TwoPointsPct:         floatOr(wire.TwoPointsPct),
		ThreePointsMade:      floatOr(wire.ThreePointsMade),
		ThreePointsAtt:       floatOr(wire.ThreePointsAtt),
		ThreePointsPct:       floatOr(wire.ThreePointsPct),
		BlockedAtt:           floatOr(wire.BlockedAtt),
		FreeThrowsMade:       floatOr(wire.FreeThrowsMade),
		FreeThrowsAtt:        floatOr(wire.FreeThrowsAtt),
		FreeThrowsPct:        floatOr(wire.FreeThrowsPct),
		OffensiveRebounds:    offensive,
		DefensiveRebounds:    defensive,
		Rebounds:             rebounds,
		Assists:              floatOr(wire.Assists),
		Turnovers:            floatOr(wire.Turnovers),
		AssistsTurnoverRatio: floatOr(wire.AssistsTurnoverRatio),
		Steals:               floatOr(wire.Steals),
		Blocks:               floatOr(wire.Blocks),
		PersonalFouls:        floatOr(wire.PersonalFouls),
		Points:               floatOr(wire.Points),
		TechFouls:            wire.TechFouls,
		FlagrantFouls:        wire.FlagrantFouls,
		Ejections:            wire.Ejections,
		Foulouts:             wire.Foulouts,
		TrueShootingAtt:      wire.TrueShootingAtt,
		TrueShootingPct:      wire.TrueShootingPct,
		Efficiency:           wire.Efficiency,
		EffectiveFgPct:       wire.EffectiveFgPct,
		UsagePct:             wire.UsagePct,
		DoubleDoubles:        wire.DoubleDoubles,
		TripleDoubles:        wire.TripleDoubles,
		FastBreakPts:         wire.FastBreakPts,
		PointsInPaint:        wire.PointsInPaint,
		PointsOffTurnovers:   wire.PointsOffTurnovers,
		SecondChancePts:      wire.SecondChancePts,
		FoulsDrawn:           wire.FoulsDrawn,
		OffensiveFouls:       wire.OffensiveFouls,
		Plus:                 wire.Plus,
		Minus:                wire.Minus,
	}
	return nil
}

func floatOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func numberInt(n *Number) int {
	if n == nil {
		return 0
	}
	if v := n.Int(); v != nil {
		return *v
	}
	return 0
}
