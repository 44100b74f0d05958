package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/changes"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/normalize"
	"github.com/riskibarqy/hoops-feed/internal/platform/id"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

const (
	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"

	syncKindGame   = "game"
	syncKindPlayer = "player"

	defaultSyncWorkers = 4
	maxSyncWorkers     = 32
)

type SyncConfig struct {
	Workers int
}

type SyncResult struct {
	RunID        string           `json:"run_id"`
	Date         string           `json:"date"`
	TeamsChanged int              `json:"teams_changed"`
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	DurationMs   int64            `json:"duration_ms"`
	Tasks        []SyncTaskResult `json:"tasks"`
}

type SyncTaskResult struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type syncTask struct {
	kind string
	id   string
}

// SyncService refreshes every entity the provider reports as changed on a day.
type SyncService struct {
	provider Provider
	mapper   *normalize.Mapper
	teams    *TeamService
	players  *PlayerService
	gameRepo game.Repository
	raw      payloadRecorder
	ids      id.Generator
	cfg      SyncConfig
	logger   *logging.Logger
}

func NewSyncService(
	provider Provider,
	mapper *normalize.Mapper,
	teams *TeamService,
	players *PlayerService,
	gameRepo game.Repository,
	rawRepo rawdata.Repository,
	ids id.Generator,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewPrefixedGenerator("sync")
	}

	return &SyncService{
		provider: provider,
		mapper:   mapper,
		teams:    teams,
		players:  players,
		gameRepo: gameRepo,
		raw:      payloadRecorder{repo: rawRepo, logger: logger},
		ids:      ids,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *SyncService) Sync(ctx context.Context, day time.Time) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Sync")
	defer span.End()

	if day.IsZero() {
		return SyncResult{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start := time.Now()
	runID, err := s.ids.NewID()
	if err != nil {
		return SyncResult{}, fmt.Errorf("generate sync run id: %w", err)
	}
	logger := s.logger.With("run_id", runID, "date", day.Format(time.DateOnly))

	src, payload, err := s.provider.FetchDailyChanges(ctx, day)
	if err != nil {
		return SyncResult{}, providerError("fetch daily changes", err)
	}
	s.raw.record(ctx, payload)

	changed := s.mapper.MapDailyChanges(src)
	result := SyncResult{
		RunID:        runID,
		Date:         day.Format(time.DateOnly),
		TeamsChanged: len(changed.TeamIDs),
		Tasks:        []SyncTaskResult{},
	}
	if changed.Empty() {
		logger.InfoContext(ctx, "daily changes empty, nothing to sync")
		result.DurationMs = time.Since(start).Milliseconds()
		return result, nil
	}

	// Teams are refreshed as one list call so games map against fresh names.
	if len(changed.TeamIDs) > 0 {
		if _, err := s.teams.ListTeams(ctx); err != nil {
			return SyncResult{}, err
		}
	}
	index, err := s.teams.Index(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	tasks := syncTasks(changed)
	result.TaskCount = len(tasks)
	result.WorkerCount = normalizeSyncWorkerCount(s.cfg.Workers, len(tasks))
	if len(tasks) == 0 {
		result.DurationMs = time.Since(start).Milliseconds()
		return result, nil
	}

	rows, games, err := s.runTasks(ctx, tasks, index, result.WorkerCount)
	if err != nil {
		return SyncResult{}, err
	}
	if len(games) > 0 {
		if err := s.gameRepo.UpsertMany(ctx, games); err != nil {
			return SyncResult{}, fmt.Errorf("upsert synced games: %w", err)
		}
	}

	for _, row := range rows {
		if row.Status == syncStatusSuccess {
			result.SuccessCount++
			continue
		}
		result.FailedCount++
	}
	result.Tasks = rows
	result.DurationMs = time.Since(start).Milliseconds()

	logger.InfoContext(ctx, "daily sync finished",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

// runTasks fetches every changed entity on a bounded pool, then maps the
// fetched game summaries as one batch.
func (s *SyncService) runTasks(
	ctx context.Context,
	tasks []syncTask,
	index map[string]team.Team,
	workerCount int,
) ([]SyncTaskResult, []game.Game, error) {
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]SyncTaskResult, len(tasks))
	fetched := make([]*sportradar.GameSummary, len(tasks))

	err = submitAll(pool, len(tasks), func(i int) {
		task := tasks[i]
		begin := time.Now()
		row := SyncTaskResult{Kind: task.kind, ID: task.id, Status: syncStatusSuccess}
		src, err := s.runTask(ctx, task)
		if err != nil {
			row.Status = syncStatusFailed
			row.Message = err.Error()
			s.logger.WarnContext(ctx, "sync task failed", "kind", task.kind, "id", task.id, "error", err)
		}
		fetched[i] = src
		row.DurationMs = time.Since(begin).Milliseconds()
		rows[i] = row
	})
	if err != nil {
		return nil, nil, fmt.Errorf("submit task to worker pool: %w", err)
	}

	games := s.mapFetchedGames(ctx, rows, fetched, index)

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind < rows[j].Kind
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, games, nil
}

// submitAll runs fn for every index on pool. A failed submit still waits for
// the jobs already handed to the pool before returning.
func submitAll(pool *ants.Pool, n int, fn func(i int)) error {
	var workers sync.WaitGroup
	for i := 0; i < n; i++ {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			fn(i)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return err
		}
	}
	workers.Wait()
	return nil
}

// mapFetchedGames maps the fetched summaries in one batch and marks the rows
// of summaries that did not map as failed.
func (s *SyncService) mapFetchedGames(
	ctx context.Context,
	rows []SyncTaskResult,
	fetched []*sportradar.GameSummary,
	index map[string]team.Team,
) []game.Game {
	summaries := make([]sportradar.GameSummary, 0, len(fetched))
	for _, src := range fetched {
		if src != nil {
			summaries = append(summaries, *src)
		}
	}
	if len(summaries) == 0 {
		return nil
	}

	games, err := s.mapper.MapGames(ctx, summaries, index)
	message := "map game summary: skipped, see mapper log"
	if err != nil {
		message = providerError("map game summaries", err).Error()
	}
	mappedIDs := make(map[string]struct{}, len(games))
	for _, item := range games {
		mappedIDs[item.ID] = struct{}{}
	}
	for i, src := range fetched {
		if src == nil {
			continue
		}
		if _, ok := mappedIDs[src.ID]; !ok {
			rows[i].Status = syncStatusFailed
			rows[i].Message = message
		}
	}
	return games
}

// runTask fetches one changed entity. Games return their summary for batch
// mapping; players are refreshed through the player service.
func (s *SyncService) runTask(ctx context.Context, task syncTask) (*sportradar.GameSummary, error) {
	switch task.kind {
	case syncKindGame:
		src, payload, err := s.provider.FetchGameSummary(ctx, task.id)
		if err != nil {
			return nil, providerError("fetch game summary", err)
		}
		s.raw.record(ctx, payload)
		return &src, nil
	case syncKindPlayer:
		_, err := s.players.Profile(ctx, task.id)
		return nil, err
	default:
		return nil, fmt.Errorf("%w: unknown sync kind %q", ErrInvalidInput, task.kind)
	}
}

func syncTasks(changed changes.Daily) []syncTask {
	tasks := make([]syncTask, 0, len(changed.GameIDs)+len(changed.PlayerIDs))
	seen := make(map[syncTask]struct{}, cap(tasks))
	add := func(kind string, ids []string) {
		for _, entityID := range ids {
			task := syncTask{kind: kind, id: entityID}
			if _, dup := seen[task]; dup || entityID == "" {
				continue
			}
			seen[task] = struct{}{}
			tasks = append(tasks, task)
		}
	}
	add(syncKindGame, changed.GameIDs)
	add(syncKindPlayer, changed.PlayerIDs)
	return tasks
}

func normalizeSyncWorkerCount(requested, taskCount int) int {
	workers := requested
	if workers <= 0 {
		workers = defaultSyncWorkers
	}
	if workers > maxSyncWorkers {
		workers = maxSyncWorkers
	}
	if taskCount > 0 && workers > taskCount {
		workers = taskCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
