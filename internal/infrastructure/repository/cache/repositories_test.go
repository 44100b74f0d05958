package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	gamemock "github.com/riskibarqy/hoops-feed/internal/mocks/domain/game"
	playermock "github.com/riskibarqy/hoops-feed/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/hoops-feed/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/hoops-feed/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestTeamRepository_CachesListUntilUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]team.Team{{ID: "h1", Name: "Lunar Owls"}}, nil).Twice()
	next.On("UpsertMany", mock.Anything, mock.Anything).Return(nil).Once()

	for i := 0; i < 3; i++ {
		got, err := repo.List(ctx)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected list: got=%v err=%v", got, err)
		}
	}
	if err := repo.UpsertMany(ctx, []team.Team{{ID: "h1", Name: "Owls"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("list after upsert: %v", err)
	}
}

func TestGameRepository_CachesMissesByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := gamemock.NewRepository(t)
	repo := NewGameRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, "missing").Return(game.Game{}, false, nil).Once()

	for i := 0; i < 2; i++ {
		_, exists, err := repo.GetByID(ctx, "missing")
		if err != nil || exists {
			t.Fatalf("expected cached miss, got exists=%v err=%v", exists, err)
		}
	}
}

func TestGameRepository_UpsertInvalidatesDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	next := gamemock.NewRepository(t)
	repo := NewGameRepository(next, basecache.NewStore(time.Minute))

	next.On("ListByDate", mock.Anything, day).Return([]game.Game{}, nil).Once()
	next.On("UpsertMany", mock.Anything, mock.Anything).Return(nil).Once()
	next.On("ListByDate", mock.Anything, day).Return([]game.Game{{ID: "g1", Date: "2026-01-16T00:30:00.000Z"}}, nil).Once()

	_, _ = repo.ListByDate(ctx, day)
	_ = repo.UpsertMany(ctx, []game.Game{{ID: "g1", Date: "2026-01-16T00:30:00.000Z"}})

	got, err := repo.ListByDate(ctx, day)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected refreshed date listing, got=%v err=%v", got, err)
	}
}

func TestPlayerRepository_UpsertInvalidatesRosters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	roster := []player.Player{{ID: "p1", Name: "Ada Guard", Position: "G", Team: team.Team{ID: "h1"}}}
	next.On("ListByTeam", mock.Anything, "h1").Return(roster, nil).Twice()
	next.On("GetByID", mock.Anything, "p1").Return(roster[0], true, nil).Twice()
	next.On("UpsertMany", mock.Anything, mock.Anything).Return(nil).Once()

	for i := 0; i < 2; i++ {
		got, err := repo.ListByTeam(ctx, "h1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected roster: got=%v err=%v", got, err)
		}
		if _, ok, err := repo.GetByID(ctx, "p1"); err != nil || !ok {
			t.Fatalf("unexpected lookup: ok=%v err=%v", ok, err)
		}
	}

	// p1 moves teams; both the id key and every roster list are dropped.
	moved := roster[0]
	moved.Team = team.Team{ID: "a1"}
	if err := repo.UpsertMany(ctx, []player.Player{moved}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := repo.ListByTeam(ctx, "h1"); err != nil {
		t.Fatalf("roster after upsert: %v", err)
	}
	if _, _, err := repo.GetByID(ctx, "p1"); err != nil {
		t.Fatalf("lookup after upsert: %v", err)
	}
}
