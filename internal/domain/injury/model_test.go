package injury

import "testing"

func TestParseStatus_StrictLabels(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Day To Day", "Out", "Out For Season", "Questionable", "Probable", "Resolved"} {
		if _, err := ParseStatus(raw); err != nil {
			t.Fatalf("expected %q to parse, got err=%v", raw, err)
		}
	}
	for _, raw := range []string{"out", "Doubtful", "", "Day-To-Day"} {
		if _, err := ParseStatus(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestStatusSeverityOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Status{StatusResolved, StatusProbable, StatusQuestionable, StatusDayToDay, StatusOut, StatusOutForSeason}
	for i, status := range ordered {
		if status.Severity() != i {
			t.Fatalf("expected severity(%s)=%d, got=%d", status, i, status.Severity())
		}
	}
}

func TestLeagueInjuries_ActiveCount(t *testing.T) {
	t.Parallel()

	league := LeagueInjuries{
		Teams: []TeamInjuries{{
			Players: []PlayerInjuries{
				{PlayerID: "a", Injuries: []Injury{{Status: StatusResolved}, {Status: StatusOut}}},
				{PlayerID: "b", Injuries: []Injury{{Status: StatusResolved}}},
				{PlayerID: "c"},
			},
		}},
	}
	if got := league.ActiveCount(); got != 1 {
		t.Fatalf("expected active=1, got=%d", got)
	}
}
