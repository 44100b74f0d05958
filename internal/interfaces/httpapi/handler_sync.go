package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/usecase"
)

func (h *Handler) RunSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSync")
	defer span.End()

	if h.sync == nil {
		writeError(ctx, w, fmt.Errorf("%w: sync is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	day, err := h.parseSyncDate(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.sync.Sync(ctx, day)
	if err != nil {
		h.logger.WarnContext(ctx, "run sync failed", "date", day.Format(time.DateOnly), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
