package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	games map[string]game.Game
}

func NewGameRepository() *GameRepository {
	return &GameRepository{games: make(map[string]game.Game)}
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.games[gameID]
	return item, ok, nil
}

// ListByDate returns games whose UTC start falls on day, ordered by start time.
func (r *GameRepository) ListByDate(_ context.Context, day time.Time) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	out := make([]game.Game, 0)
	for _, item := range r.games {
		startsAt := item.StartsAt()
		if startsAt.Before(from) || !startsAt.Before(to) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *GameRepository) UpsertMany(_ context.Context, items []game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		gameID := strings.TrimSpace(item.ID)
		if gameID == "" {
			continue
		}
		r.games[gameID] = item
	}

	return nil
}
