package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
	"github.com/riskibarqy/hoops-feed/internal/domain/injury"
	"github.com/riskibarqy/hoops-feed/internal/domain/leader"
	"github.com/riskibarqy/hoops-feed/internal/domain/player"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/riskibarqy/hoops-feed/internal/usecase"
)

type TeamReader interface {
	ListTeams(ctx context.Context) ([]team.Team, error)
	Standings(ctx context.Context) ([]team.Team, error)
	Hierarchy(ctx context.Context) ([]team.Team, error)
}

type GameReader interface {
	Schedule(ctx context.Context, day time.Time) ([]game.Game, error)
	Game(ctx context.Context, gameID string) (game.Game, error)
	Boxscore(ctx context.Context, gameID string) (game.BoxScore, error)
	Players(ctx context.Context, gameID string) ([]player.Player, error)
}

type PlayerReader interface {
	Roster(ctx context.Context, teamID string) ([]player.Player, error)
	Profile(ctx context.Context, playerID string) (player.Player, error)
}

type LeagueReader interface {
	Leaders(ctx context.Context, seasonYear int, seasonType string) ([]leader.Entry, error)
	Injuries(ctx context.Context) (injury.LeagueInjuries, error)
}

type Syncer interface {
	Sync(ctx context.Context, day time.Time) (usecase.SyncResult, error)
}

var (
	_ TeamReader   = (*usecase.TeamService)(nil)
	_ GameReader   = (*usecase.GameService)(nil)
	_ PlayerReader = (*usecase.PlayerService)(nil)
	_ LeagueReader = (*usecase.LeagueService)(nil)
	_ Syncer       = (*usecase.SyncService)(nil)
)

// Services groups the read and sync use cases the handler serves.
type Services struct {
	Teams   TeamReader
	Games   GameReader
	Players PlayerReader
	League  LeagueReader
	Sync    Syncer
}

type Handler struct {
	teams     TeamReader
	games     GameReader
	players   PlayerReader
	league    LeagueReader
	sync      Syncer
	logger    *logging.Logger
	validator *validator.Validate
	now       func() time.Time
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teams:     services.Teams,
		games:     services.Games,
		players:   services.Players,
		league:    services.League,
		sync:      services.Sync,
		logger:    logger,
		validator: validator.New(),
		now:       time.Now,
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
