package sportradar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Endpoint names a provider response shape. Decoding always dispatches on
// the endpoint the caller requested, never on the payload content.
type Endpoint string

const (
	EndpointTeams         Endpoint = "teams"
	EndpointRoster        Endpoint = "roster"
	EndpointPlayerProfile Endpoint = "player_profile"
	EndpointGameSummary   Endpoint = "game_summary"
	EndpointBoxscore      Endpoint = "boxscore"
	EndpointSchedule      Endpoint = "schedule"
	EndpointLeaders       Endpoint = "leaders"
	EndpointStandings     Endpoint = "standings"
	EndpointHierarchy     Endpoint = "hierarchy"
	EndpointInjuries      Endpoint = "injuries"
	EndpointDailyChanges  Endpoint = "daily_changes"
)

type AccessLevel string

const (
	AccessTrial      AccessLevel = "trial"
	AccessProduction AccessLevel = "production"
)

func ParseAccessLevel(raw string) (AccessLevel, error) {
	switch AccessLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case "", AccessTrial:
		return AccessTrial, nil
	case AccessProduction:
		return AccessProduction, nil
	default:
		return "", fmt.Errorf("unsupported access level %q", raw)
	}
}

const (
	resourceLeague  = "league"
	resourceTeams   = "teams"
	resourcePlayers = "players"
	resourceGames   = "games"
	resourceSeasons = "seasons"
)

// Route is the resource, path and file triple an endpoint resolves to.
type Route struct {
	Endpoint Endpoint
	Resource string
	Segments []string
	File     string
}

// Path renders {access}/{version}/{lang}/{resource}/{segments...}/{file}.
func (r Route) Path(access AccessLevel, version, language string) string {
	parts := make([]string, 0, len(r.Segments)+5)
	parts = append(parts, string(access), version, language, r.Resource)
	parts = append(parts, r.Segments...)
	parts = append(parts, r.File)
	return "/" + strings.Join(parts, "/")
}

// Key identifies the route independently of access level and language.
func (r Route) Key() string {
	parts := append([]string{r.Resource}, r.Segments...)
	return strings.Join(append(parts, r.File), "/")
}

func datePath(day time.Time) string {
	return day.UTC().Format("2006/01/02")
}

func TeamsRoute() Route {
	return Route{Endpoint: EndpointTeams, Resource: resourceLeague, File: "teams.json"}
}

func RosterRoute(teamID string) Route {
	return Route{Endpoint: EndpointRoster, Resource: resourceTeams, Segments: []string{teamID}, File: "roster.json"}
}

func PlayerProfileRoute(playerID string) Route {
	return Route{Endpoint: EndpointPlayerProfile, Resource: resourcePlayers, Segments: []string{playerID}, File: "profile.json"}
}

func GameSummaryRoute(gameID string) Route {
	return Route{Endpoint: EndpointGameSummary, Resource: resourceGames, Segments: []string{gameID}, File: "summary.json"}
}

func BoxscoreRoute(gameID string) Route {
	return Route{Endpoint: EndpointBoxscore, Resource: resourceGames, Segments: []string{gameID}, File: "boxscore.json"}
}

func ScheduleRoute(day time.Time) Route {
	return Route{Endpoint: EndpointSchedule, Resource: resourceGames, Segments: []string{datePath(day)}, File: "schedule.json"}
}

func LeadersRoute(seasonYear int, seasonType string) Route {
	return Route{
		Endpoint: EndpointLeaders,
		Resource: resourceSeasons,
		Segments: []string{strconv.Itoa(seasonYear), strings.ToUpper(strings.TrimSpace(seasonType))},
		File:     "leaders.json",
	}
}

func StandingsRoute() Route {
	return Route{Endpoint: EndpointStandings, Resource: resourceLeague, File: "standings.json"}
}

func HierarchyRoute() Route {
	return Route{Endpoint: EndpointHierarchy, Resource: resourceLeague, File: "hierarchy.json"}
}

func InjuriesRoute() Route {
	return Route{Endpoint: EndpointInjuries, Resource: resourceLeague, File: "injuries.json"}
}

func DailyChangesRoute(day time.Time) Route {
	return Route{Endpoint: EndpointDailyChanges, Resource: resourceLeague, Segments: []string{datePath(day)}, File: "changes.json"}
}
