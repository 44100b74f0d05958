package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetTeamRoster)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/hierarchy", handler.ListHierarchy)
	mux.HandleFunc("GET /v1/schedule", handler.ListSchedule)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("GET /v1/games/{gameID}/boxscore", handler.GetGameBoxscore)
	mux.HandleFunc("GET /v1/games/{gameID}/players", handler.ListGamePlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/leaders", handler.ListLeaders)
	mux.HandleFunc("GET /v1/injuries", handler.ListInjuries)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSync)))
}
