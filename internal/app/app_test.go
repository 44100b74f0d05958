package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/config"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                "dev",
		ServiceName:           "hoops-feed-api",
		HTTPAddr:              ":0",
		ReadTimeout:           time.Second,
		WriteTimeout:          time.Second,
		StorageBackend:        config.StorageMemory,
		CacheEnabled:          true,
		CacheBackend:          config.CacheMemory,
		CacheTTL:              time.Minute,
		SportradarBaseURL:     "http://127.0.0.1:1",
		SportradarAccessLevel: "trial",
		SportradarTimeout:     time.Second,
		SeasonYear:            2025,
		SeasonType:            "REG",
		NormalizerPoolSize:    2,
		SyncWorkers:           1,
		CORSAllowedOrigins:    []string{"*"},
	}
}

func TestNew_MemoryBackendServesHealthz(t *testing.T) {
	application, err := New(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, application.Close()) })

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, ":0", application.Server.Addr)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Run("empty addr", func(t *testing.T) {
		cfg := testConfig()
		cfg.HTTPAddr = " "
		_, err := New(context.Background(), cfg, logging.NewNop())
		require.Error(t, err)
	})

	t.Run("unknown access level", func(t *testing.T) {
		cfg := testConfig()
		cfg.SportradarAccessLevel = "gold"
		_, err := New(context.Background(), cfg, logging.NewNop())
		require.Error(t, err)
	})
}

func TestStartSyncLoop_DisabledWithoutInterval(t *testing.T) {
	application, err := New(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	application.StartSyncLoop(ctx)
	cancel()

	done := make(chan error, 1)
	go func() { done <- application.Close() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("close blocked with the sync loop disabled")
	}
}
