package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/injury"
	"github.com/riskibarqy/hoops-feed/internal/domain/leader"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/riskibarqy/hoops-feed/internal/usecase"
	"github.com/stretchr/testify/require"
)

var owls = team.Team{ID: "h1", Name: "Lunar Owls", Abbreviation: "LUN"}

type fakeTeams struct{ err error }

func (f fakeTeams) ListTeams(context.Context) ([]team.Team, error) { return []team.Team{owls}, f.err }
func (f fakeTeams) Standings(context.Context) ([]team.Team, error) { return []team.Team{owls}, f.err }
func (f fakeTeams) Hierarchy(context.Context) ([]team.Team, error) { return []team.Team{owls}, f.err }

type fakeGames struct {
	gotDay time.Time
}

func (f *fakeGames) Schedule(_ context.Context, day time.Time) ([]game.Game, error) {
	f.gotDay = day
	return []game.Game{{ID: "g1", HomeTeam: owls, AwayTeam: owls}}, nil
}

func (f *fakeGames) Game(_ context.Context, gameID string) (game.Game, error) {
	switch gameID {
	case "g1":
		return game.Game{ID: "g1", HomeTeam: owls, AwayTeam: owls}, nil
	case "broken":
		return game.Game{}, fmt.Errorf("map game summary: %w", usecase.ErrMappingFailed)
	case "slow":
		return game.Game{}, fmt.Errorf("fetch game summary: %w", usecase.ErrDependencyUnavailable)
	default:
		return game.Game{}, fmt.Errorf("%w: game=%s", usecase.ErrNotFound, gameID)
	}
}

func (f *fakeGames) Boxscore(context.Context, string) (game.BoxScore, error) {
	return game.BoxScore{HomeScore: 101, AwayScore: 99}, nil
}

func (f *fakeGames) Players(context.Context, string) ([]player.Player, error) {
	return nil, errors.New("database exploded")
}

type fakePlayers struct{}

func (fakePlayers) Roster(_ context.Context, teamID string) ([]player.Player, error) {
	return []player.Player{{ID: "p1", Name: "Ada Hoop", Position: "G", Team: owls}}, nil
}

func (fakePlayers) Profile(_ context.Context, playerID string) (player.Player, error) {
	return player.Player{ID: playerID, Name: "Ada Hoop", Position: "G", Team: owls}, nil
}

type fakeLeague struct {
	gotSeason int
	gotType   string
}

func (f *fakeLeague) Leaders(_ context.Context, seasonYear int, seasonType string) ([]leader.Entry, error) {
	f.gotSeason, f.gotType = seasonYear, seasonType
	return []leader.Entry{{Category: "points"}}, nil
}

func (f *fakeLeague) Injuries(context.Context) (injury.LeagueInjuries, error) {
	return injury.LeagueInjuries{LeagueID: "nba", LeagueName: "NBA"}, nil
}

type fakeSync struct {
	gotDay time.Time
}

func (f *fakeSync) Sync(_ context.Context, day time.Time) (usecase.SyncResult, error) {
	f.gotDay = day
	return usecase.SyncResult{RunID: "sync_1", Date: day.Format(time.DateOnly)}, nil
}

type routerFixture struct {
	router http.Handler
	games  *fakeGames
	league *fakeLeague
	sync   *fakeSync
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	f := routerFixture{games: &fakeGames{}, league: &fakeLeague{}, sync: &fakeSync{}}
	handler := NewHandler(Services{
		Teams:   fakeTeams{},
		Games:   f.games,
		Players: fakePlayers{},
		League:  f.league,
		Sync:    f.sync,
	}, logging.NewNop())
	handler.now = func() time.Time { return time.Date(2026, 1, 16, 22, 0, 0, 0, time.UTC) }
	f.router = NewRouter(handler, logging.NewNop(), []string{"*"}, "job-token")
	return f
}

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

func serve(t *testing.T, router http.Handler, req *http.Request) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	paths := []string{
		"/healthz",
		"/v1/teams",
		"/v1/standings",
		"/v1/hierarchy",
		"/v1/teams/h1/roster",
		"/v1/schedule?date=2026-01-16",
		"/v1/games/g1",
		"/v1/games/g1/boxscore",
		"/v1/players/p1",
		"/v1/leaders",
		"/v1/injuries",
	}
	for _, path := range paths {
		code, body := serve(t, f.router, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, code, path)
		require.Equal(t, "2.0", body.APIVersion, path)
		require.NotNil(t, body.Data, path)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	tests := []struct {
		path   string
		code   int
		status string
	}{
		{path: "/v1/games/unknown", code: http.StatusNotFound, status: "NOT_FOUND"},
		{path: "/v1/games/broken", code: http.StatusBadGateway, status: "FAILED_PRECONDITION"},
		{path: "/v1/games/slow", code: http.StatusServiceUnavailable, status: "UNAVAILABLE"},
		{path: "/v1/games/g1/players", code: http.StatusInternalServerError, status: "INTERNAL"},
		{path: "/v1/schedule", code: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
		{path: "/v1/schedule?date=16-01-2026", code: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
		{path: "/v1/leaders?season=abc", code: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
		{path: "/v1/leaders?type=ALLSTAR", code: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
	}
	for _, tc := range tests {
		code, body := serve(t, f.router, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, tc.code, code, tc.path)
		require.Equal(t, tc.status, body.Error["status"], tc.path)
	}
}

func TestRouter_InternalErrorHidesCause(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games/g1/players", nil))
	require.NotContains(t, rec.Body.String(), "database exploded")
}

func TestRouter_QueryParameters(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	serve(t, f.router, httptest.NewRequest(http.MethodGet, "/v1/schedule?date=2026-01-16", nil))
	require.Equal(t, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), f.games.gotDay)

	serve(t, f.router, httptest.NewRequest(http.MethodGet, "/v1/leaders?season=2024&type=pst", nil))
	require.Equal(t, 2024, f.league.gotSeason)
	require.Equal(t, "PST", f.league.gotType)
}

func TestRouter_SyncRequiresToken(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)

	code, _ := serve(t, f.router, httptest.NewRequest(http.MethodPost, "/v1/internal/sync", nil))
	require.Equal(t, http.StatusUnauthorized, code)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/sync", nil)
	req.Header.Set("X-Internal-Job-Token", "job-token")
	code, body := serve(t, f.router, req)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), f.sync.gotDay)
	require.Equal(t, "sync_1", body.Data.(map[string]any)["run_id"])

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/sync?date=2026-01-10", nil)
	req.Header.Set("X-Internal-Job-Token", "job-token")
	code, _ = serve(t, f.router, req)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), f.sync.gotDay)
}

func TestRouter_SyncWithoutConfiguredToken(t *testing.T) {
	t.Parallel()

	handler := NewHandler(Services{Sync: &fakeSync{}}, logging.NewNop())
	router := NewRouter(handler, logging.NewNop(), []string{"*"}, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/sync", nil)
	req.Header.Set("X-Internal-Job-Token", "anything")
	code, _ := serve(t, router, req)
	require.Equal(t, http.StatusServiceUnavailable, code)
}

func TestResolveClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	req.RemoteAddr = "10.0.0.9:5123"
	require.Equal(t, "10.0.0.9", resolveClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", resolveClientIP(req))
}
