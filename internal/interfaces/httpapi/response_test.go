package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-feed/internal/usecase"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()
	var body googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, googleAPIVersion, body.APIVersion)
	return body
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Data)
	require.Nil(t, body.Error)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{err: fmt.Errorf("%w: bad date", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{err: usecase.ErrNotFound, wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{err: usecase.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantReason: "unauthorized"},
		{err: usecase.ErrDependencyUnavailable, wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{err: fmt.Errorf("boxscore g1: %w", usecase.ErrMappingFailed), wantStatus: http.StatusBadGateway, wantReason: "upstreamDataInvalid"},
		{err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantReason: "deadlineExceeded"},
		{err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantReason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.wantReason, func(t *testing.T) {
			got := mapError(tt.err)
			require.Equal(t, tt.wantStatus, got.HTTPStatus)
			require.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestWriteError_ClientErrorCarriesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	require.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
	require.Contains(t, body.Error.Message, "YYYY-MM-DD")
	require.Equal(t, errorDomain, body.Error.Errors[0].Domain)
}

func TestWriteError_InternalHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")
	require.Equal(t, "INTERNAL", decodeEnvelope(t, rec).Error.Status)
}
