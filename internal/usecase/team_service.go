package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

type TeamService struct {
	provider Provider
	mapper   *normalize.Mapper
	teamRepo team.Repository
	raw      payloadRecorder
	logger   *logging.Logger
}

func NewTeamService(
	provider Provider,
	mapper *normalize.Mapper,
	teamRepo team.Repository,
	rawRepo rawdata.Repository,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		provider: provider,
		mapper:   mapper,
		teamRepo: teamRepo,
		raw:      payloadRecorder{repo: rawRepo, logger: logger},
		logger:   logger,
	}
}

// ListTeams refreshes the league's teams from the provider. When the provider
// is unavailable the last stored snapshot is served instead.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	src, payload, err := s.provider.FetchTeams(ctx)
	if err != nil {
		if stored, ok := s.storedTeams(ctx, err); ok {
			return stored, nil
		}
		return nil, providerError("fetch teams", err)
	}
	s.raw.record(ctx, payload)

	items, err := s.mapper.MapTeams(ctx, src)
	if err != nil {
		return nil, providerError("map teams", err)
	}
	if err := s.teamRepo.UpsertMany(ctx, items); err != nil {
		return nil, fmt.Errorf("upsert teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if exists {
		return item, nil
	}

	index, err := s.Index(ctx)
	if err != nil {
		return team.Team{}, err
	}
	item, exists = index[teamID]
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// Index returns the known teams keyed by id, loading them from the provider
// on first use.
func (s *TeamService) Index(ctx context.Context) (map[string]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if len(items) > 0 {
		return team.Index(items), nil
	}

	items, err = s.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	return team.Index(items), nil
}

// Standings overlays standing records onto the known teams and stores the result.
func (s *TeamService) Standings(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Standings")
	defer span.End()

	index, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}

	src, payload, err := s.provider.FetchStandings(ctx)
	if err != nil {
		return nil, providerError("fetch standings", err)
	}
	s.raw.record(ctx, payload)

	items := s.mapper.MapStandings(ctx, src, index)
	if len(items) > 0 {
		if err := s.teamRepo.UpsertMany(ctx, items); err != nil {
			return nil, fmt.Errorf("upsert standings: %w", err)
		}
	}

	return items, nil
}

func (s *TeamService) Hierarchy(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Hierarchy")
	defer span.End()

	src, payload, err := s.provider.FetchHierarchy(ctx)
	if err != nil {
		return nil, providerError("fetch hierarchy", err)
	}
	s.raw.record(ctx, payload)

	return s.mapper.MapHierarchy(ctx, src), nil
}

func (s *TeamService) storedTeams(ctx context.Context, cause error) ([]team.Team, bool) {
	if !errors.Is(cause, sportradar.ErrUnavailable) {
		return nil, false
	}
	items, err := s.teamRepo.List(ctx)
	if err != nil || len(items) == 0 {
		return nil, false
	}

	s.logger.WarnContext(ctx, "provider unavailable, serving stored teams", "count", len(items), "error", cause)
	return items, true
}
