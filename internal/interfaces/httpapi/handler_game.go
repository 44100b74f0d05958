package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	day, err := h.parseScheduleDate(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.games.Schedule(ctx, day)
	if err != nil {
		h.logger.WarnContext(ctx, "list schedule failed", "date", day.Format(time.DateOnly), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	item, err := h.games.Game(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetGameBoxscore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameBoxscore")
	defer span.End()

	gameID := r.PathValue("gameID")
	box, err := h.games.Boxscore(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game boxscore failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, box)
}

func (h *Handler) ListGamePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGamePlayers")
	defer span.End()

	gameID := r.PathValue("gameID")
	items, err := h.games.Players(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "list game players failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
