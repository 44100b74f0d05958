package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

type PlayerService struct {
	provider   Provider
	mapper     *normalize.Mapper
	teams      *TeamService
	playerRepo player.Repository
	raw        payloadRecorder
	logger     *logging.Logger
}

func NewPlayerService(
	provider Provider,
	mapper *normalize.Mapper,
	teams *TeamService,
	playerRepo player.Repository,
	rawRepo rawdata.Repository,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		provider:   provider,
		mapper:     mapper,
		teams:      teams,
		playerRepo: playerRepo,
		raw:        payloadRecorder{repo: rawRepo, logger: logger},
		logger:     logger,
	}
}

// Roster returns a team's players with their season averages.
func (s *PlayerService) Roster(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Roster")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	src, index, payload, err := withTeams(ctx, s.teams, func(ctx context.Context) (sportradar.Roster, rawdata.Payload, error) {
		return s.provider.FetchRoster(ctx, teamID)
	})
	if err != nil {
		if stored, ok := s.storedRoster(ctx, teamID, err); ok {
			return stored, nil
		}
		return nil, providerError("fetch roster", err)
	}
	s.raw.record(ctx, payload)

	items, err := s.mapper.MapPlayers(ctx, src, index)
	if err != nil {
		return nil, providerError("map roster", err)
	}
	if err := s.playerRepo.UpsertMany(ctx, items); err != nil {
		return nil, fmt.Errorf("upsert roster: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Profile(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	src, payload, err := s.provider.FetchPlayerProfile(ctx, playerID)
	if err != nil {
		if stored, ok := s.storedPlayer(ctx, playerID, err); ok {
			return stored, nil
		}
		return player.Player{}, providerError("fetch player profile", err)
	}
	s.raw.record(ctx, payload)

	item, err := s.mapper.MapPlayerProfile(src, s.profileTeam(ctx, src))
	if err != nil {
		return player.Player{}, providerError("map player profile", err)
	}
	if err := s.playerRepo.UpsertMany(ctx, []player.Player{item}); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}

	return item, nil
}

// profileTeam prefers the stored team so the profile carries market and
// alias. A nil result lets the mapper fall back to the profile's own ref.
func (s *PlayerService) profileTeam(ctx context.Context, src sportradar.PlayerProfile) *team.Team {
	if src.Team == nil || src.Team.ID == nil || *src.Team.ID == "" {
		return nil
	}
	teamID := *src.Team.ID
	item, exists, err := s.teams.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "lookup profile team failed", "team_id", teamID, "error", err)
		return nil
	}
	if !exists {
		return nil
	}
	return &item
}

func (s *PlayerService) storedRoster(ctx context.Context, teamID string, cause error) ([]player.Player, bool) {
	if !errors.Is(cause, sportradar.ErrUnavailable) {
		return nil, false
	}
	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil || len(items) == 0 {
		return nil, false
	}

	s.logger.WarnContext(ctx, "provider unavailable, serving stored roster", "team_id", teamID, "count", len(items), "error", cause)
	return items, true
}

func (s *PlayerService) storedPlayer(ctx context.Context, playerID string, cause error) (player.Player, bool) {
	if !errors.Is(cause, sportradar.ErrUnavailable) {
		return player.Player{}, false
	}
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil || !exists {
		return player.Player{}, false
	}

	s.logger.WarnContext(ctx, "provider unavailable, serving stored player", "player_id", playerID, "error", cause)
	return item, true
}
