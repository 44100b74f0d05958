package httpapi

import "net/http"

func (h *Handler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaders")
	defer span.End()

	q, err := h.parseLeadersQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.league.Leaders(ctx, q.Season, q.Type)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaders failed", "season", q.Season, "type", q.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListInjuries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListInjuries")
	defer span.End()

	report, err := h.league.Injuries(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list injuries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
