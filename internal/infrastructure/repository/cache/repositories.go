package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	basecache "github.com/riskibarqy/hoops-feed/internal/platform/cache"
)

const (
	teamListKey      = "team:list"
	teamPrefix       = "team:"
	gamePrefix       = "game:"
	playerPrefix     = "player:"
	playerTeamPrefix = "player:team:"
)

func teamByIDKey(teamID string) string {
	return "team:id:" + teamID
}

func gameByIDKey(gameID string) string {
	return "game:id:" + gameID
}

func gameByDateKey(day time.Time) string {
	return "game:date:" + day.UTC().Format(time.DateOnly)
}

func playerByIDKey(playerID string) string {
	return "player:id:" + playerID
}

func playerByTeamKey(teamID string) string {
	return playerTeamPrefix + teamID
}

type TeamRepository struct {
	next  team.Repository
	cache basecache.Cache
}

func NewTeamRepository(next team.Repository, cache basecache.Cache) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return basecache.Load(ctx, r.cache, teamListKey, r.next.List)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, teamByIDKey(teamID), func(ctx context.Context) (basecache.Lookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return basecache.Lookup[team.Team]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *TeamRepository) UpsertMany(ctx context.Context, items []team.Team) error {
	if err := r.next.UpsertMany(ctx, items); err != nil {
		return err
	}
	// Player and game snapshots embed teams.
	_ = r.cache.DeletePrefix(ctx, teamPrefix)
	_ = r.cache.DeletePrefix(ctx, playerPrefix)
	_ = r.cache.DeletePrefix(ctx, gamePrefix)
	return nil
}

type GameRepository struct {
	next  game.Repository
	cache basecache.Cache
}

func NewGameRepository(next game.Repository, cache basecache.Cache) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, gameByIDKey(gameID), func(ctx context.Context) (basecache.Lookup[game.Game], error) {
		item, exists, err := r.next.GetByID(ctx, gameID)
		return basecache.Lookup[game.Game]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return game.Game{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *GameRepository) ListByDate(ctx context.Context, day time.Time) ([]game.Game, error) {
	return basecache.Load(ctx, r.cache, gameByDateKey(day), func(ctx context.Context) ([]game.Game, error) {
		return r.next.ListByDate(ctx, day)
	})
}

func (r *GameRepository) UpsertMany(ctx context.Context, items []game.Game) error {
	if err := r.next.UpsertMany(ctx, items); err != nil {
		return err
	}
	for _, item := range items {
		_ = r.cache.Delete(ctx, gameByIDKey(item.ID))
		if startsAt := item.StartsAt(); !startsAt.IsZero() {
			_ = r.cache.Delete(ctx, gameByDateKey(startsAt))
		}
	}
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache basecache.Cache
}

func NewPlayerRepository(next player.Repository, cache basecache.Cache) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, playerByIDKey(playerID), func(ctx context.Context) (basecache.Lookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return basecache.Lookup[player.Player]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return basecache.Load(ctx, r.cache, playerByTeamKey(teamID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
}

func (r *PlayerRepository) UpsertMany(ctx context.Context, items []player.Player) error {
	if err := r.next.UpsertMany(ctx, items); err != nil {
		return err
	}
	for _, item := range items {
		_ = r.cache.Delete(ctx, playerByIDKey(item.ID))
	}
	// A player may have changed teams; roster lists are cheap to rebuild.
	_ = r.cache.DeletePrefix(ctx, playerTeamPrefix)
	return nil
}
