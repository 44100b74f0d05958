package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "} {
		require.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/teams", "/v1/schedule", "/v1/games/g1/boxscore", "/"} {
		require.True(t, shouldTraceRequest(path), path)
	}
}

func TestRequestLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{status: http.StatusNotFound, wantLevel: `"level":"WARN"`},
		{status: http.StatusBadGateway, wantLevel: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewJSONWriter(&buf, logging.LevelDebug)
			handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/games/g1", nil))
			_ = logger.Sync()

			require.Contains(t, buf.String(), tt.wantLevel)
			require.Contains(t, buf.String(), `"path":"/v1/games/g1"`)
		})
	}
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil snapshot")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "nil snapshot")
}
