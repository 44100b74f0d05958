package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/usecase"
)

type scheduleQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type leadersQuery struct {
	Season int    `validate:"omitempty,gte=1900,lte=2100"`
	Type   string `validate:"omitempty,oneof=PRE REG PST PIT"`
}

type syncQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) parseScheduleDate(ctx context.Context, r *http.Request) (time.Time, error) {
	q := scheduleQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validateRequest(ctx, q); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.DateOnly, q.Date)
}

func (h *Handler) parseLeadersQuery(ctx context.Context, r *http.Request) (leadersQuery, error) {
	values := r.URL.Query()
	q := leadersQuery{Type: strings.ToUpper(strings.TrimSpace(values.Get("type")))}
	if raw := strings.TrimSpace(values.Get("season")); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			return leadersQuery{}, fmt.Errorf("%w: season must be a year", usecase.ErrInvalidInput)
		}
		q.Season = season
	}
	if err := h.validateRequest(ctx, q); err != nil {
		return leadersQuery{}, err
	}
	return q, nil
}

// parseSyncDate defaults to the current UTC day.
func (h *Handler) parseSyncDate(ctx context.Context, r *http.Request) (time.Time, error) {
	q := syncQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validateRequest(ctx, q); err != nil {
		return time.Time{}, err
	}
	if q.Date == "" {
		now := h.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.DateOnly, q.Date)
}
