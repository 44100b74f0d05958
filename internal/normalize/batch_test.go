package normalize

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

func newPooledMapper(t *testing.T, size int) *Mapper {
	t.Helper()
	cfg := MapperConfig{
		Logger: logging.NewNop(),
		Now:    func() time.Time { return fixedNow },
	}
	if size > 0 {
		pool, err := ants.NewPool(size)
		if err != nil {
			t.Fatalf("new pool: %v", err)
		}
		t.Cleanup(pool.Release)
		cfg.Pool = pool
	}
	return NewMapper(cfg)
}

func summaries(ids ...string) []sportradar.GameSummary {
	out := make([]sportradar.GameSummary, 0, len(ids))
	for i, id := range ids {
		homeID := "h1"
		if id == "bad" {
			homeID = "nope"
		}
		out = append(out, sportradar.GameSummary{
			ID:        id,
			Status:    strPtr("closed"),
			Scheduled: strPtr("2026-01-16T00:30:00Z"),
			Home:      &sportradar.TeamGameSummary{ID: strPtr(homeID), Points: intPtr(70 + i)},
			Away:      &sportradar.TeamGameSummary{ID: strPtr("a1"), Points: intPtr(60)},
		})
	}
	return out
}

func TestMapGames_PoolSizes(t *testing.T) {
	t.Parallel()

	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, "g"+strconv.Itoa(i))
	}

	cases := []struct {
		name     string
		pool     int
		input    []string
		wantIDs  []string
		wantFail string
	}{
		{name: "inline keeps order", pool: 0, input: ids, wantIDs: ids},
		{name: "single worker keeps order", pool: 1, input: ids, wantIDs: ids},
		{name: "pool keeps order", pool: 4, input: ids, wantIDs: ids},
		{name: "partial failure keeps successes", pool: 4, input: []string{"g0", "bad", "g2", "bad"}, wantIDs: []string{"g0", "g2"}},
		{name: "all failed", pool: 4, input: []string{"bad", "bad", "bad"}, wantFail: "Failed to map game 'all games': 3 mapping error(s) occurred"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := newPooledMapper(t, tc.pool).MapGames(context.Background(), summaries(tc.input...), knownTeams())
			if tc.wantFail != "" {
				if !errors.Is(err, ErrGameMappingFailed) || err.Error() != tc.wantFail {
					t.Fatalf("expected %q, got=%v", tc.wantFail, err)
				}
				if !errors.Is(err, ErrMissingTeam) {
					t.Fatalf("expected first cause kept, got=%v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d games, got=%d", len(tc.wantIDs), len(got))
			}
			for i, want := range tc.wantIDs {
				if got[i].ID != want {
					t.Fatalf("order broken at %d: expected=%s got=%s", i, want, got[i].ID)
				}
			}
		})
	}
}

func TestMapScheduleGames_Pooled(t *testing.T) {
	t.Parallel()

	schedule := sportradar.Schedule{}
	for i := 0; i < 8; i++ {
		away := "a1"
		if i%3 == 0 {
			away = "nope"
		}
		schedule.Games = append(schedule.Games, sportradar.ScheduleGame{
			ID:        fmt.Sprintf("g%d", i),
			Scheduled: strPtr("2026-03-01T00:00:00Z"),
			HomeID:    strPtr("h1"),
			AwayID:    strPtr(away),
		})
	}

	got, err := newPooledMapper(t, 3).MapScheduleGames(context.Background(), schedule, knownTeams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"g1", "g2", "g4", "g5", "g7"}
	if len(got) != len(want) {
		t.Fatalf("expected %d games, got=%d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order broken at %d: expected=%s got=%s", i, id, got[i].ID)
		}
	}
}

func TestCollect_FallsBackInlineWhenPoolRejects(t *testing.T) {
	t.Parallel()

	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer pool.Release()

	block := make(chan struct{})
	if err := pool.Submit(func() { <-block }); err != nil {
		t.Fatalf("occupy pool: %v", err)
	}
	defer close(block)

	items := []int{1, 2, 3}
	got := collect(pool, items, strconv.Itoa, func(v int) (int, error) {
		if v == 2 {
			return 0, errors.New("boom")
		}
		return v * 10, nil
	})
	if len(got.Items) != 2 || got.Items[0] != 10 || got.Items[1] != 30 {
		t.Fatalf("unexpected items: %v", got.Items)
	}
	if len(got.Failures) != 1 || got.Failures[0].ID != "2" || got.AllFailed() {
		t.Fatalf("unexpected failures: %+v", got.Failures)
	}
}
