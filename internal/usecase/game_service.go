package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type GameService struct {
	provider Provider
	mapper   *normalize.Mapper
	teams    *TeamService
	gameRepo game.Repository
	raw      payloadRecorder
	logger   *logging.Logger
}

func NewGameService(
	provider Provider,
	mapper *normalize.Mapper,
	teams *TeamService,
	gameRepo game.Repository,
	rawRepo rawdata.Repository,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		provider: provider,
		mapper:   mapper,
		teams:    teams,
		gameRepo: gameRepo,
		raw:      payloadRecorder{repo: rawRepo, logger: logger},
		logger:   logger,
	}
}

// withTeams runs fetch alongside the team index lookup. Either failure
// cancels the other.
func withTeams[T any](
	ctx context.Context,
	teams *TeamService,
	fetch func(context.Context) (T, rawdata.Payload, error),
) (T, map[string]team.Team, rawdata.Payload, error) {
	var (
		src     T
		index   map[string]team.Team
		payload rawdata.Payload
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		index, err = teams.Index(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		src, payload, err = fetch(ctx)
		return err
	})
	err := p.Wait()

	return src, index, payload, err
}

func (s *GameService) Schedule(ctx context.Context, day time.Time) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Schedule")
	defer span.End()

	if day.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	src, index, payload, err := withTeams(ctx, s.teams, func(ctx context.Context) (sportradar.Schedule, rawdata.Payload, error) {
		return s.provider.FetchSchedule(ctx, day)
	})
	if err != nil {
		if stored, ok := s.storedSchedule(ctx, day, err); ok {
			return stored, nil
		}
		return nil, providerError("fetch schedule", err)
	}
	s.raw.record(ctx, payload)

	items, err := s.mapper.MapScheduleGames(ctx, src, index)
	if err != nil {
		return nil, providerError("map schedule", err)
	}
	if err := s.gameRepo.UpsertMany(ctx, items); err != nil {
		return nil, fmt.Errorf("upsert schedule games: %w", err)
	}

	return items, nil
}

// Game returns the summary view of one game.
func (s *GameService) Game(ctx context.Context, gameID string) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Game")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	src, index, payload, err := withTeams(ctx, s.teams, func(ctx context.Context) (sportradar.GameSummary, rawdata.Payload, error) {
		return s.provider.FetchGameSummary(ctx, gameID)
	})
	if err != nil {
		if stored, ok := s.storedGame(ctx, gameID, err); ok {
			return stored, nil
		}
		return game.Game{}, providerError("fetch game summary", err)
	}
	s.raw.record(ctx, payload)

	item, err := s.mapper.MapGameSummary(ctx, src, index)
	if err != nil {
		return game.Game{}, providerError("map game summary", err)
	}
	if err := s.gameRepo.UpsertMany(ctx, []game.Game{item}); err != nil {
		return game.Game{}, fmt.Errorf("upsert game: %w", err)
	}

	return item, nil
}

func (s *GameService) Boxscore(ctx context.Context, gameID string) (game.BoxScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Boxscore")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.BoxScore{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	src, payload, err := s.provider.FetchBoxscore(ctx, gameID)
	if err != nil {
		return game.BoxScore{}, providerError("fetch boxscore", err)
	}
	s.raw.record(ctx, payload)

	box, err := s.mapper.MapBoxscore(src)
	if err != nil {
		return game.BoxScore{}, providerError("map boxscore", err)
	}
	return box, nil
}

// Players returns both rosters of a game with their per-game lines.
func (s *GameService) Players(ctx context.Context, gameID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Players")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	src, index, payload, err := withTeams(ctx, s.teams, func(ctx context.Context) (sportradar.GameSummary, rawdata.Payload, error) {
		return s.provider.FetchGameSummary(ctx, gameID)
	})
	if err != nil {
		return nil, providerError("fetch game summary", err)
	}
	s.raw.record(ctx, payload)

	items, err := s.mapper.MapGamePlayers(ctx, src, index)
	if err != nil {
		return nil, providerError("map game players", err)
	}
	return items, nil
}

func (s *GameService) storedSchedule(ctx context.Context, day time.Time, cause error) ([]game.Game, bool) {
	if !errors.Is(cause, sportradar.ErrUnavailable) {
		return nil, false
	}
	items, err := s.gameRepo.ListByDate(ctx, day)
	if err != nil || len(items) == 0 {
		return nil, false
	}

	s.logger.WarnContext(ctx, "provider unavailable, serving stored schedule", "date", day.Format(time.DateOnly), "count", len(items), "error", cause)
	return items, true
}

func (s *GameService) storedGame(ctx context.Context, gameID string, cause error) (game.Game, bool) {
	if !errors.Is(cause, sportradar.ErrUnavailable) {
		return game.Game{}, false
	}
	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil || !exists {
		return game.Game{}, false
	}

	s.logger.WarnContext(ctx, "provider unavailable, serving stored game", "game_id", gameID, "error", cause)
	return item, true
}
