package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/config"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	cacherepo "github.com/riskibarqy/hoops-feed/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hoops-feed/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoops-feed/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hoops-feed/internal/interfaces/httpapi"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	basecache "github.com/riskibarqy/hoops-feed/internal/platform/cache"
	idgen "github.com/riskibarqy/hoops-feed/internal/platform/id"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/riskibarqy/hoops-feed/internal/platform/resilience"
	"github.com/riskibarqy/hoops-feed/internal/usecase"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	games   game.Repository
	raw     rawdata.Repository
}

// App owns every long-lived dependency of the API process.
type App struct {
	Server *http.Server

	cfg    config.Config
	logger *logging.Logger
	sync   *usecase.SyncService
	db     *sqlx.DB
	pool   *ants.Pool
	closer func() error

	loopWG sync.WaitGroup
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}
	ok := false
	defer func() {
		if !ok {
			_ = a.Close()
		}
	}()

	pool, err := ants.NewPool(cfg.NormalizerPoolSize)
	if err != nil {
		return nil, fmt.Errorf("create normalizer pool: %w", err)
	}
	a.pool = pool

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.wrapCache(ctx, &repos); err != nil {
		return nil, err
	}

	access, err := sportradar.ParseAccessLevel(cfg.SportradarAccessLevel)
	if err != nil {
		return nil, err
	}
	provider := sportradar.NewClient(sportradar.ClientConfig{
		BaseURL:      cfg.SportradarBaseURL,
		APIKey:       cfg.SportradarAPIKey,
		AccessLevel:  access,
		Version:      cfg.SportradarVersion,
		Language:     cfg.SportradarLanguage,
		Timeout:      cfg.SportradarTimeout,
		MaxRetries:   cfg.SportradarMaxRetries,
		RetryBackoff: cfg.SportradarRetryBackoff,
		Logger:       logger.With("component", "sportradar"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportradarCircuitEnabled,
			FailureThreshold: cfg.SportradarCircuitFailureCount,
			OpenTimeout:      cfg.SportradarCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportradarCircuitHalfOpenMaxReq,
		},
	})
	mapper := normalize.NewMapper(normalize.MapperConfig{
		Logger: logger.With("component", "normalize"),
		Pool:   pool,
	})

	teamSvc := usecase.NewTeamService(provider, mapper, repos.teams, repos.raw, logger)
	playerSvc := usecase.NewPlayerService(provider, mapper, teamSvc, repos.players, repos.raw, logger)
	gameSvc := usecase.NewGameService(provider, mapper, teamSvc, repos.games, repos.raw, logger)
	leagueSvc := usecase.NewLeagueService(provider, mapper, teamSvc, repos.raw, usecase.SeasonConfig{
		Year: cfg.SeasonYear,
		Type: cfg.SeasonType,
	}, logger)
	a.sync = usecase.NewSyncService(
		provider,
		mapper,
		teamSvc,
		playerSvc,
		repos.games,
		repos.raw,
		idgen.NewPrefixedGenerator("sync"),
		usecase.SyncConfig{Workers: cfg.SyncWorkers},
		logger.With("component", "sync"),
	)

	handler := httpapi.NewHandler(httpapi.Services{
		Teams:   teamSvc,
		Games:   gameSvc,
		Players: playerSvc,
		League:  leagueSvc,
		Sync:    a.sync,
	}, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ok = true
	return a, nil
}

func (a *App) buildRepositories(ctx context.Context) (repositories, error) {
	switch a.cfg.StorageBackend {
	case config.StoragePostgres:
		db, err := openDB(ctx, a.cfg)
		if err != nil {
			return repositories{}, err
		}
		a.db = db
		a.logger.Info("storage ready", "backend", config.StoragePostgres, "db_name", dbNameFromURL(a.cfg.DBURL))
		return repositories{
			teams:   postgres.NewTeamRepository(db),
			players: postgres.NewPlayerRepository(db),
			games:   postgres.NewGameRepository(db),
			raw:     postgres.NewRawDataRepository(db),
		}, nil
	default:
		a.logger.Info("storage ready", "backend", config.StorageMemory)
		return repositories{
			teams:   memory.NewTeamRepository(nil),
			players: memory.NewPlayerRepository(nil),
			games:   memory.NewGameRepository(),
			raw:     memory.NewRawDataRepository(),
		}, nil
	}
}

func (a *App) wrapCache(ctx context.Context, repos *repositories) error {
	if !a.cfg.CacheEnabled {
		return nil
	}

	var store basecache.Cache
	switch a.cfg.CacheBackend {
	case config.CacheRedis:
		redisStore, err := basecache.NewRedisStore(ctx, basecache.RedisConfig{
			URL:            a.cfg.RedisURL,
			KeyPrefix:      a.cfg.RedisKeyPrefix,
			TTL:            a.cfg.CacheTTL,
			CircuitBreaker: resilience.DefaultCircuitBreakerConfig(),
			Logger:         a.logger.With("component", "redis_cache"),
		})
		if err != nil {
			return err
		}
		a.closer = redisStore.Close
		store = redisStore
	default:
		store = basecache.NewStore(a.cfg.CacheTTL)
	}

	repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	repos.games = cacherepo.NewGameRepository(repos.games, store)
	a.logger.Info("snapshot cache enabled", "backend", a.cfg.CacheBackend, "ttl", a.cfg.CacheTTL.String())
	return nil
}

// StartSyncLoop runs a sync for the current UTC day every SyncInterval until
// ctx is cancelled. It is a no-op when the interval is zero.
func (a *App) StartSyncLoop(ctx context.Context) {
	interval := a.cfg.SyncInterval
	if interval <= 0 || a.sync == nil {
		return
	}

	a.loopWG.Add(1)
	go func() {
		defer a.loopWG.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		a.logger.Info("sync loop started", "interval", interval.String())
		for {
			select {
			case <-ctx.Done():
				a.logger.Info("sync loop stopped")
				return
			case <-ticker.C:
				a.runScheduledSync(ctx)
			}
		}
	}()
}

func (a *App) runScheduledSync(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, a.cfg.SyncInterval)
	defer cancel()

	day := time.Now().UTC()
	result, err := a.sync.Sync(runCtx, day)
	if err != nil {
		a.logger.ErrorContext(ctx, "scheduled sync failed", "date", day.Format(time.DateOnly), "error", err)
		return
	}
	a.logger.InfoContext(ctx, "scheduled sync finished",
		"run_id", result.RunID,
		"task_count", result.TaskCount,
		"failed_count", result.FailedCount,
		"duration_ms", result.DurationMs,
	)
}

// Close waits for the sync loop and releases pools and connections. The
// loop's context must already be cancelled.
func (a *App) Close() error {
	a.loopWG.Wait()

	var errs []error
	if a.pool != nil {
		a.pool.Release()
	}
	if a.closer != nil {
		if err := a.closer(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close postgres: %w", err))
		}
	}
	return errors.Join(errs...)
}
