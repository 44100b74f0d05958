package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

var errNotStubbed = errors.New("provider call not stubbed")

var testNow = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

type stubProvider struct {
	teams        func() (sportradar.TeamsResponse, error)
	roster       func(teamID string) (sportradar.Roster, error)
	profile      func(playerID string) (sportradar.PlayerProfile, error)
	summary      func(gameID string) (sportradar.GameSummary, error)
	boxscore     func(gameID string) (sportradar.Boxscore, error)
	schedule     func(day time.Time) (sportradar.Schedule, error)
	leaders      func(year int, seasonType string) (sportradar.LeagueLeaders, error)
	standings    func() (sportradar.Standings, error)
	hierarchy    func() (sportradar.Hierarchy, error)
	injuries     func() (sportradar.InjuriesResponse, error)
	dailyChanges func(day time.Time) (sportradar.DailyChanges, error)
}

func payloadFor(endpoint sportradar.Endpoint, key string) rawdata.Payload {
	return rawdata.Payload{
		Source:      sportradar.SourceName,
		Endpoint:    string(endpoint),
		EntityKey:   key,
		PayloadJSON: "{}",
		PayloadHash: "hash-" + key,
		FetchedAt:   testNow,
	}
}

func call[T any](fn func() (T, error), endpoint sportradar.Endpoint, key string) (T, rawdata.Payload, error) {
	var zero T
	if fn == nil {
		return zero, rawdata.Payload{}, errNotStubbed
	}
	out, err := fn()
	if err != nil {
		return zero, rawdata.Payload{}, err
	}
	return out, payloadFor(endpoint, key), nil
}

func (p *stubProvider) FetchTeams(context.Context) (sportradar.TeamsResponse, rawdata.Payload, error) {
	return call(p.teams, sportradar.EndpointTeams, "teams")
}

func (p *stubProvider) FetchRoster(_ context.Context, teamID string) (sportradar.Roster, rawdata.Payload, error) {
	if p.roster == nil {
		return call[sportradar.Roster](nil, sportradar.EndpointRoster, teamID)
	}
	return call(func() (sportradar.Roster, error) { return p.roster(teamID) }, sportradar.EndpointRoster, teamID)
}

func (p *stubProvider) FetchPlayerProfile(_ context.Context, playerID string) (sportradar.PlayerProfile, rawdata.Payload, error) {
	if p.profile == nil {
		return call[sportradar.PlayerProfile](nil, sportradar.EndpointPlayerProfile, playerID)
	}
	return call(func() (sportradar.PlayerProfile, error) { return p.profile(playerID) }, sportradar.EndpointPlayerProfile, playerID)
}

func (p *stubProvider) FetchGameSummary(_ context.Context, gameID string) (sportradar.GameSummary, rawdata.Payload, error) {
	if p.summary == nil {
		return call[sportradar.GameSummary](nil, sportradar.EndpointGameSummary, gameID)
	}
	return call(func() (sportradar.GameSummary, error) { return p.summary(gameID) }, sportradar.EndpointGameSummary, gameID)
}

func (p *stubProvider) FetchBoxscore(_ context.Context, gameID string) (sportradar.Boxscore, rawdata.Payload, error) {
	if p.boxscore == nil {
		return call[sportradar.Boxscore](nil, sportradar.EndpointBoxscore, gameID)
	}
	return call(func() (sportradar.Boxscore, error) { return p.boxscore(gameID) }, sportradar.EndpointBoxscore, gameID)
}

func (p *stubProvider) FetchSchedule(_ context.Context, day time.Time) (sportradar.Schedule, rawdata.Payload, error) {
	if p.schedule == nil {
		return call[sportradar.Schedule](nil, sportradar.EndpointSchedule, "")
	}
	return call(func() (sportradar.Schedule, error) { return p.schedule(day) }, sportradar.EndpointSchedule, day.Format(time.DateOnly))
}

func (p *stubProvider) FetchLeagueLeaders(_ context.Context, year int, seasonType string) (sportradar.LeagueLeaders, rawdata.Payload, error) {
	if p.leaders == nil {
		return call[sportradar.LeagueLeaders](nil, sportradar.EndpointLeaders, "")
	}
	return call(func() (sportradar.LeagueLeaders, error) { return p.leaders(year, seasonType) }, sportradar.EndpointLeaders, seasonType)
}

func (p *stubProvider) FetchStandings(context.Context) (sportradar.Standings, rawdata.Payload, error) {
	return call(p.standings, sportradar.EndpointStandings, "standings")
}

func (p *stubProvider) FetchHierarchy(context.Context) (sportradar.Hierarchy, rawdata.Payload, error) {
	return call(p.hierarchy, sportradar.EndpointHierarchy, "hierarchy")
}

func (p *stubProvider) FetchInjuries(context.Context) (sportradar.InjuriesResponse, rawdata.Payload, error) {
	return call(p.injuries, sportradar.EndpointInjuries, "injuries")
}

func (p *stubProvider) FetchDailyChanges(_ context.Context, day time.Time) (sportradar.DailyChanges, rawdata.Payload, error) {
	if p.dailyChanges == nil {
		return call[sportradar.DailyChanges](nil, sportradar.EndpointDailyChanges, "")
	}
	return call(func() (sportradar.DailyChanges, error) { return p.dailyChanges(day) }, sportradar.EndpointDailyChanges, day.Format(time.DateOnly))
}

func newTestMapper() *normalize.Mapper {
	return normalize.NewMapper(normalize.MapperConfig{
		Logger: logging.NewNop(),
		Now:    func() time.Time { return testNow },
	})
}

func knownTeams() []team.Team {
	return []team.Team{
		{ID: "h1", Name: "Lunar Owls", Abbreviation: "LUN"},
		{ID: "a1", Name: "Rose", Abbreviation: "ROS"},
	}
}

func mustDecode[T any](t *testing.T, decode func([]byte) (T, error), raw string) T {
	t.Helper()
	out, err := decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}

func unavailable() error {
	return errors.Join(sportradar.ErrUnavailable, errors.New("status=503"))
}
