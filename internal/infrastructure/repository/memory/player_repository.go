package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/statistic"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
	byTeam  map[string]map[string]struct{}
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		players: make(map[string]player.Player, len(players)),
		byTeam:  make(map[string]map[string]struct{}),
	}
	_ = repo.UpsertMany(context.Background(), players)
	return repo
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byTeam[teamID]
	out := make([]player.Player, 0, len(ids))
	for playerID := range ids {
		out = append(out, clonePlayer(r.players[playerID]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *PlayerRepository) UpsertMany(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		playerID := strings.TrimSpace(item.ID)
		if playerID == "" {
			continue
		}
		if prev, ok := r.players[playerID]; ok {
			delete(r.byTeam[prev.Team.ID], playerID)
		}
		r.players[playerID] = clonePlayer(item)

		members, ok := r.byTeam[item.Team.ID]
		if !ok {
			members = make(map[string]struct{})
			r.byTeam[item.Team.ID] = members
		}
		members[playerID] = struct{}{}
	}

	return nil
}

func clonePlayer(item player.Player) player.Player {
	item.Statistics = append([]statistic.Statistic(nil), item.Statistics...)
	return item
}
