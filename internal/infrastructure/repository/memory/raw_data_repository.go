package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
)

// RawDataRepository keeps the latest payload per (source, endpoint, entity key).
type RawDataRepository struct {
	mu    sync.RWMutex
	items map[string]rawdata.Payload
}

func NewRawDataRepository() *RawDataRepository {
	return &RawDataRepository{items: make(map[string]rawdata.Payload)}
}

func (r *RawDataRepository) UpsertMany(_ context.Context, items []rawdata.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		key := item.Key()
		if prev, ok := r.items[key]; ok && prev.PayloadHash == item.PayloadHash {
			continue
		}
		r.items[key] = item
	}
	return nil
}

func (r *RawDataRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
