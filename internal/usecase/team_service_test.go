package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
	rawdatamock "github.com/riskibarqy/hoops-feed/internal/mocks/domain/rawdata"
	teammock "github.com/riskibarqy/hoops-feed/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

const teamsFixture = `{"teams": [
	{"id": "h1", "name": "Lunar Owls", "alias": "LUN", "market": "Miami"},
	{"id": "a1", "name": "Rose"}
]}`

func TestTeamService_ListTeams_StoresMappedTeamsAndPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	rawRepo := rawdatamock.NewRepository(t)
	provider := &stubProvider{teams: func() (sportradar.TeamsResponse, error) {
		return mustDecode(t, sportradar.DecodeTeams, teamsFixture), nil
	}}

	teamRepo.
		On("UpsertMany", mock.Anything, mock.MatchedBy(func(items []team.Team) bool {
			return len(items) == 2 && items[1].Abbreviation == "ROS"
		})).
		Return(nil).
		Once()
	rawRepo.
		On("UpsertMany", mock.Anything, mock.MatchedBy(func(items []rawdata.Payload) bool {
			return len(items) == 1 && items[0].Endpoint == string(sportradar.EndpointTeams)
		})).
		Return(nil).
		Once()

	service := NewTeamService(provider, newTestMapper(), teamRepo, rawRepo, nil)
	got, err := service.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 2 || got[0].City == nil || *got[0].City != "Miami" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestTeamService_ListTeams_ServesStoredTeamsWhenProviderDown(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	provider := &stubProvider{teams: func() (sportradar.TeamsResponse, error) {
		return sportradar.TeamsResponse{}, unavailable()
	}}
	teamRepo.On("List", mock.Anything).Return(knownTeams(), nil).Once()

	service := NewTeamService(provider, newTestMapper(), teamRepo, nil, nil)
	got, err := service.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("expected stored fallback, got err=%v", err)
	}
	if len(got) != len(knownTeams()) {
		t.Fatalf("unexpected team count: got=%d want=%d", len(got), len(knownTeams()))
	}
}

func TestTeamService_ListTeams_ErrorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		stored  bool
		wantErr error
	}{
		{name: "unavailable without snapshot", err: unavailable(), stored: true, wantErr: ErrDependencyUnavailable},
		{name: "not found", err: sportradar.ErrNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			teamRepo := teammock.NewRepository(t)
			if tt.stored {
				teamRepo.On("List", mock.Anything).Return([]team.Team{}, nil).Once()
			}
			provider := &stubProvider{teams: func() (sportradar.TeamsResponse, error) {
				return sportradar.TeamsResponse{}, tt.err
			}}

			_, err := NewTeamService(provider, newTestMapper(), teamRepo, nil, nil).ListTeams(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	teamRepo.On("GetByID", mock.Anything, "zz").Return(team.Team{}, false, nil).Once()
	teamRepo.On("List", mock.Anything).Return(knownTeams(), nil).Once()

	service := NewTeamService(&stubProvider{}, newTestMapper(), teamRepo, nil, nil)

	if _, err := service.GetTeam(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.GetTeam(context.Background(), "zz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Standings_OverlaysKnownTeams(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	teamRepo.On("List", mock.Anything).Return(knownTeams(), nil).Once()
	teamRepo.
		On("UpsertMany", mock.Anything, mock.MatchedBy(func(items []team.Team) bool { return len(items) == 1 })).
		Return(nil).
		Once()

	provider := &stubProvider{standings: func() (sportradar.Standings, error) {
		return mustDecode(t, sportradar.DecodeStandings, `{"teams": [
			{"team_id": "h1", "wins": 7, "losses": 3},
			{"team_id": "ghost", "wins": 1}
		]}`), nil
	}}

	got, err := NewTeamService(provider, newTestMapper(), teamRepo, nil, nil).Standings(context.Background())
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(got) != 1 || got[0].Wins == nil || *got[0].Wins != 7 {
		t.Fatalf("unexpected standings: %+v", got)
	}
}
