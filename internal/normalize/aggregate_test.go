package normalize

import (
	"testing"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
)

func TestAggregateLeaders_CountsEachPlayerOnce(t *testing.T) {
	t.Parallel()

	star := sportradar.PlayerLeader{
		ID: strPtr("p1"),
		Statistics: &sportradar.PlayerStatistics{
			Rebounds: intPtr(8), Assists: intPtr(5), Steals: intPtr(2),
			FieldGoalsPct: floatPtr(55.5), ThreePointsPct: floatPtr(40), FreeThrowsPct: floatPtr(90),
		},
	}
	bigs := sportradar.PlayerLeader{
		ID:         strPtr("p2"),
		Statistics: &sportradar.PlayerStatistics{Rebounds: intPtr(12), Assists: intPtr(1), Blocks: intPtr(3)},
	}
	leaders := &sportradar.Leaders{
		Points:   []sportradar.PlayerLeader{star},
		Rebounds: []sportradar.PlayerLeader{bigs},
		Assists:  []sportradar.PlayerLeader{star},
	}

	got := AggregateLeaders(leaders, 80)
	if got.Points != 80 {
		t.Fatalf("expected points=80, got=%d", got.Points)
	}
	if got.Rebounds != 20 || got.Assists != 6 {
		t.Fatalf("expected rebounds=20 assists=6, got=%d/%d", got.Rebounds, got.Assists)
	}
	if got.Steals == nil || *got.Steals != 2 || got.Blocks == nil || *got.Blocks != 3 {
		t.Fatalf("unexpected defensive totals: %+v", got)
	}
	if got.Turnovers != nil || got.Fouls != nil {
		t.Fatalf("expected zero totals to be absent, got turnovers=%v fouls=%v", got.Turnovers, got.Fouls)
	}
	if got.FieldGoalPercentage == nil || *got.FieldGoalPercentage != 55.5 {
		t.Fatalf("expected points leader shooting, got=%v", got.FieldGoalPercentage)
	}
}

func TestAggregateLeaders_NilLeaders(t *testing.T) {
	t.Parallel()

	got := AggregateLeaders(nil, 12)
	if got.Points != 12 || got.Rebounds != 0 || got.Steals != nil {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestTeamStatsFromSummary_ReboundFallbacks(t *testing.T) {
	t.Parallel()

	got := TeamStatsFromSummary(&sportradar.TeamGameStatistics{
		OffensiveRebounds: intPtr(10),
		DefensiveRebounds: intPtr(25),
		PlayerTurnovers:   intPtr(11),
		PersonalFouls:     intPtr(14),
	}, 88)
	if got.Rebounds != 35 {
		t.Fatalf("expected off+def rebounds, got=%d", got.Rebounds)
	}
	if got.Turnovers == nil || *got.Turnovers != 11 || got.Fouls == nil || *got.Fouls != 14 {
		t.Fatalf("unexpected fallbacks: %+v", got)
	}

	got = TeamStatsFromSummary(&sportradar.TeamGameStatistics{
		Rebounds: intPtr(40), PersonalRebounds: intPtr(38), TotalTurnovers: intPtr(9), PlayerTurnovers: intPtr(7),
	}, 88)
	if got.Rebounds != 40 || *got.Turnovers != 9 {
		t.Fatalf("expected direct fields to win, got=%+v", got)
	}
}
