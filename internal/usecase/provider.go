package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

// Provider is the raw data source. *sportradar.Client satisfies it.
type Provider interface {
	FetchTeams(ctx context.Context) (sportradar.TeamsResponse, rawdata.Payload, error)
	FetchRoster(ctx context.Context, teamID string) (sportradar.Roster, rawdata.Payload, error)
	FetchPlayerProfile(ctx context.Context, playerID string) (sportradar.PlayerProfile, rawdata.Payload, error)
	FetchGameSummary(ctx context.Context, gameID string) (sportradar.GameSummary, rawdata.Payload, error)
	FetchBoxscore(ctx context.Context, gameID string) (sportradar.Boxscore, rawdata.Payload, error)
	FetchSchedule(ctx context.Context, day time.Time) (sportradar.Schedule, rawdata.Payload, error)
	FetchLeagueLeaders(ctx context.Context, seasonYear int, seasonType string) (sportradar.LeagueLeaders, rawdata.Payload, error)
	FetchStandings(ctx context.Context) (sportradar.Standings, rawdata.Payload, error)
	FetchHierarchy(ctx context.Context) (sportradar.Hierarchy, rawdata.Payload, error)
	FetchInjuries(ctx context.Context) (sportradar.InjuriesResponse, rawdata.Payload, error)
	FetchDailyChanges(ctx context.Context, day time.Time) (sportradar.DailyChanges, rawdata.Payload, error)
}

var _ Provider = (*sportradar.Client)(nil)

// providerError maps provider and normalizer failures onto use-case sentinels.
func providerError(op string, err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *sportradar.DecodeError
	var mappingErr *normalize.MappingError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, sportradar.ErrNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	case errors.Is(err, sportradar.ErrUnavailable):
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
	case errors.As(err, &decodeErr), errors.As(err, &mappingErr):
		return fmt.Errorf("%w: %s: %w", ErrMappingFailed, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// payloadRecorder persists captured provider responses without failing the caller.
type payloadRecorder struct {
	repo   rawdata.Repository
	logger *logging.Logger
}

func (r payloadRecorder) record(ctx context.Context, items ...rawdata.Payload) {
	if r.repo == nil {
		return
	}
	kept := make([]rawdata.Payload, 0, len(items))
	for _, item := range items {
		if item.PayloadHash != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return
	}
	if err := r.repo.UpsertMany(ctx, kept); err != nil {
		r.logger.WarnContext(ctx, "persist raw payload failed", "count", len(kept), "error", err)
	}
}
