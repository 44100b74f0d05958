package sportradar

import (
	"errors"
	"testing"
)

func TestDecodeSchedule_MixedTeamReferences(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"date": "2026-01-16",
		"league": {"id": "lg", "name": "Unrivaled", "alias": "UNR"},
		"games": [
			{"id": "g1", "status": "closed", "scheduled": "2026-01-16T00:30:00Z",
			 "home": {"id": "h1", "name": "Lunar Owls"}, "away": {"id": "a1"},
			 "time_zones": {"home": "US/Eastern"},
			 "broadcasts": [{"type": "Internet", "network": "Max"}, {"type": "TV", "network": "TNT"}]},
			{"id": "g2", "status": "scheduled", "home_id": "h2", "away_id": "a2", "league": "Unrivaled"}
		]
	}`)

	schedule, err := DecodeSchedule(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schedule.Games) != 2 {
		t.Fatalf("expected 2 games, got=%d", len(schedule.Games))
	}
	if got := schedule.Games[0].HomeTeamID(); got == nil || *got != "h1" {
		t.Fatalf("expected nested home id, got=%v", got)
	}
	if got := schedule.Games[1].AwayTeamID(); got == nil || *got != "a2" {
		t.Fatalf("expected flat away id, got=%v", got)
	}
}

func TestDecodeSchedule_MissingGameID(t *testing.T) {
	t.Parallel()

	_, err := DecodeSchedule([]byte(`{"games":[{"id":"ok"},{"status":"closed"}]}`))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got=%v", err)
	}
	if decodeErr.Field != "games[1].id" {
		t.Fatalf("expected field games[1].id, got=%s", decodeErr.Field)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got=%v", err)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Decode(EndpointGameSummary, []byte(`{"id": "g1", "home": `))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got=%v", err)
	}
	if decodeErr.Endpoint != EndpointGameSummary {
		t.Fatalf("expected endpoint game_summary, got=%s", decodeErr.Endpoint)
	}
}

func TestDecode_DispatchesOnRequestedEndpoint(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"date":"2026-01-16","teams":["t1"],"players":["p1","p2"],"games":[]}`)
	out, err := Decode(EndpointDailyChanges, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	changes, ok := out.(DailyChanges)
	if !ok {
		t.Fatalf("expected DailyChanges, got=%T", out)
	}
	if len(changes.Players) != 2 {
		t.Fatalf("expected 2 players, got=%d", len(changes.Players))
	}

	if _, err := Decode(Endpoint("pbp"), raw); err == nil {
		t.Fatalf("expected unknown endpoint error")
	}
}

func TestDecodeRoster_ArrayOrObject(t *testing.T) {
	t.Parallel()

	arr, err := DecodeRoster(EndpointRoster, []byte(`[{"id":"p1","full_name":"A B","jersey_number":"5"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arr.Players) != 1 || arr.ID != nil {
		t.Fatalf("unexpected array roster: %+v", arr)
	}

	obj, err := DecodeRoster(EndpointRoster, []byte(`{"id":"t1","name":"Vinyl","players":[{"id":"p1","jersey_number":5,"weight":"165"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.ID == nil || *obj.ID != "t1" || len(obj.Players) != 1 {
		t.Fatalf("unexpected object roster: %+v", obj)
	}
	if got := obj.Players[0].JerseyNumber.Int(); got == nil || *got != 5 {
		t.Fatalf("expected jersey 5, got=%v", got)
	}
	if got := obj.Players[0].Weight.Int(); got == nil || *got != 165 {
		t.Fatalf("expected weight 165, got=%v", got)
	}
}

func TestDecodePlayerProfile_SeasonStatisticsDefaults(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"id": "p1", "full_name": "Jane Doe", "height": 74, "weight": "170", "birthdate": "1998-03-02",
		"seasons": [{"year": 2025, "type": "REG", "teams": [{
			"id": "t1",
			"total": {"games_played": 14, "points": 280, "offensive_rebounds": 20, "defensive_rebounds": 60,
			          "field_goals_att": 200, "field_goals_pct": 0.48},
			"average": {"points": 20.0, "off_rebounds": 1.4, "def_rebounds": 4.3, "usage_pct": 27.5}
		}]}]
	}`)

	profile, err := DecodePlayerProfile(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := profile.Height.Int(); got == nil || *got != 74 {
		t.Fatalf("expected height 74, got=%v", got)
	}
	if got := profile.Weight.Int(); got == nil || *got != 170 {
		t.Fatalf("expected weight 170, got=%v", got)
	}

	team := profile.Seasons[0].Teams[0]
	if team.Total.Rebounds != 80 {
		t.Fatalf("expected derived total rebounds=80, got=%v", team.Total.Rebounds)
	}
	if team.Total.Assists != 0 {
		t.Fatalf("expected missing assists to default to 0, got=%v", team.Total.Assists)
	}
	if team.Average.OffensiveRebounds != 1.4 || team.Average.DefensiveRebounds != 4.3 {
		t.Fatalf("expected alias rebounds, got off=%v def=%v", team.Average.OffensiveRebounds, team.Average.DefensiveRebounds)
	}
	if team.Average.UsagePct == nil || *team.Average.UsagePct != 27.5 {
		t.Fatalf("expected optional usage pct, got=%v", team.Average.UsagePct)
	}
	if team.Total.Efficiency != nil {
		t.Fatalf("expected missing advanced stat to stay nil")
	}
}

func TestDecodeStandings_SnakeCaseAlternates(t *testing.T) {
	t.Parallel()

	standings, err := DecodeStandings([]byte(`{"teams":[{"team_id":"t1","win_percentage":"0.625","wins":5}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := standings.Teams[0]
	if got := entry.ResolvedTeamID(); got == nil || *got != "t1" {
		t.Fatalf("expected team_id t1, got=%v", got)
	}
	if got := entry.ResolvedWinPercentage(); got == nil || *got != 0.625 {
		t.Fatalf("expected win pct 0.625, got=%v", got)
	}
}

func TestDecodePeriodStatistics_DerivesRebounds(t *testing.T) {
	t.Parallel()

	summary, err := DecodeGameSummary([]byte(`{"id":"g1","home":{"id":"h","periods":[{"type":"quarter","number":1,"offensive_rebounds":2,"defensive_rebounds":7}]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	period := summary.Home.Periods[0]
	if period.Rebounds == nil || *period.Rebounds != 9 {
		t.Fatalf("expected derived rebounds=9, got=%v", period.Rebounds)
	}
}

func TestDecodeInjuries_RequiresInjuryIDs(t *testing.T) {
	t.Parallel()

	_, err := DecodeInjuries(EndpointInjuries, []byte(`{"teams":[{"id":"t","name":"T","players":[{"id":"p","full_name":"P","injuries":[{"status":"Out"}]}]}]}`))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Field != "teams[0].players[0].injuries[0].id" {
		t.Fatalf("expected missing injury id, got=%v", err)
	}
}
