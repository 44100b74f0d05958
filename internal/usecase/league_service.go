package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/injury"
	"github.com/riskibarqy/hoops-feed/internal/domain/leader"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

var seasonTypes = map[string]struct{}{
	"PRE": {},
	"REG": {},
	"PST": {},
	"PIT": {},
}

type SeasonConfig struct {
	Year int
	Type string
}

// LeagueService serves league-wide boards: leaders and injuries.
type LeagueService struct {
	provider Provider
	mapper   *normalize.Mapper
	teams    *TeamService
	season   SeasonConfig
	raw      payloadRecorder
}

func NewLeagueService(
	provider Provider,
	mapper *normalize.Mapper,
	teams *TeamService,
	rawRepo rawdata.Repository,
	season SeasonConfig,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		provider: provider,
		mapper:   mapper,
		teams:    teams,
		season:   season,
		raw:      payloadRecorder{repo: rawRepo, logger: logger},
	}
}

// Leaders returns the leaderboard for a season. Zero values fall back to the
// configured season.
func (s *LeagueService) Leaders(ctx context.Context, seasonYear int, seasonType string) ([]leader.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Leaders")
	defer span.End()

	if seasonYear == 0 {
		seasonYear = s.season.Year
	}
	seasonType = strings.ToUpper(strings.TrimSpace(seasonType))
	if seasonType == "" {
		seasonType = s.season.Type
	}
	if seasonYear < 1900 {
		return nil, fmt.Errorf("%w: season year=%d", ErrInvalidInput, seasonYear)
	}
	if _, ok := seasonTypes[seasonType]; !ok {
		return nil, fmt.Errorf("%w: season type=%q", ErrInvalidInput, seasonType)
	}

	src, index, payload, err := withTeams(ctx, s.teams, func(ctx context.Context) (sportradar.LeagueLeaders, rawdata.Payload, error) {
		return s.provider.FetchLeagueLeaders(ctx, seasonYear, seasonType)
	})
	if err != nil {
		return nil, providerError("fetch league leaders", err)
	}
	s.raw.record(ctx, payload)

	return s.mapper.MapLeagueLeaders(ctx, src, index), nil
}

func (s *LeagueService) Injuries(ctx context.Context) (injury.LeagueInjuries, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Injuries")
	defer span.End()

	src, payload, err := s.provider.FetchInjuries(ctx)
	if err != nil {
		return injury.LeagueInjuries{}, providerError("fetch injuries", err)
	}
	s.raw.record(ctx, payload)

	out, err := s.mapper.MapInjuries(src)
	if err != nil {
		return injury.LeagueInjuries{}, providerError("map injuries", err)
	}
	return out, nil
}
