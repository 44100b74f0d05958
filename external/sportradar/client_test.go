package sportradar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:   server.Client(),
		BaseURL:      server.URL + "/unrivaled",
		APIKey:       "secret-key",
		AccessLevel:  AccessTrial,
		Version:      "v8",
		Language:     "en",
		MaxRetries:   retries,
		RetryBackoff: time.Millisecond,
		Now:          func() time.Time { return time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC) },
	})
}

func TestClient_FetchScheduleBuildsProviderPath(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(`{"date":"2026-01-16","games":[{"id":"g1","status":"scheduled"}]}`))
	}, 0)

	schedule, payload, err := client.FetchSchedule(context.Background(), time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/unrivaled/trial/v8/en/games/2026/01/16/schedule.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "secret-key" {
		t.Fatalf("expected api key query param, got=%q", gotKey)
	}
	if len(schedule.Games) != 1 || schedule.Games[0].ID != "g1" {
		t.Fatalf("unexpected schedule: %+v", schedule)
	}
	if payload.Source != SourceName || payload.Endpoint != string(EndpointSchedule) {
		t.Fatalf("unexpected payload metadata: %+v", payload)
	}
	if payload.EntityKey != "games/2026/01/16/schedule.json" {
		t.Fatalf("unexpected entity key: %s", payload.EntityKey)
	}
	if len(payload.PayloadHash) != 64 {
		t.Fatalf("expected sha256 hex hash, got=%q", payload.PayloadHash)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":"game-1","status":"closed"}`))
	}, 2)

	summary, payload, err := client.FetchGameSummary(context.Background(), "game-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got=%d", calls.Load())
	}
	if summary.ID != "game-1" {
		t.Fatalf("expected summary id game-1, got=%s", summary.ID)
	}
	if payload.GameID != "game-1" {
		t.Fatalf("expected payload game id, got=%s", payload.GameID)
	}
}

func TestClient_NotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, 3)

	_, _, err := client.FetchPlayerProfile(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one attempt, got=%d", calls.Load())
	}
}

func TestClient_ExhaustedRetriesAreUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}, 1)

	_, _, err := client.FetchStandings(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got=%v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestClient_DecodeErrorSurfacesEndpoint(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"teams":[{"name":"No Id"}]}`))
	}, 0)

	_, _, err := client.FetchTeams(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got=%v", err)
	}
	if decodeErr.Endpoint != EndpointTeams || decodeErr.Field != "teams[0].id" {
		t.Fatalf("unexpected decode error: %+v", decodeErr)
	}
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "k",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, _, err := client.FetchHierarchy(context.Background()); err == nil {
			t.Fatalf("expected failure on attempt %d", i)
		}
	}
	_, _, err := client.FetchHierarchy(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected circuit rejection, got=%v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected breaker to short circuit third call, got calls=%d", calls.Load())
	}
}

func TestRedactAPIURL(t *testing.T) {
	t.Parallel()

	got := redactAPIURL("https://api.sportradar.com/unrivaled/trial/v8/en/league/teams.json?api_key=abc123")
	if strings.Contains(got, "abc123") || !strings.Contains(got, "api_key=REDACTED") {
		t.Fatalf("expected api key redacted, got=%s", got)
	}
	if got := sanitizeSensitiveText(`Get "https://x/y?api_key=abc123": dial tcp`, "abc123"); strings.Contains(got, "abc123") {
		t.Fatalf("expected sanitized text, got=%s", got)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestAPIKeyTransport_AddsKeyToClone(t *testing.T) {
	t.Parallel()

	var sent string
	transport := apiKeyTransport{key: "secret-key", next: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		sent = r.URL.String()
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})}

	req := httptest.NewRequest(http.MethodGet, "https://api.sportradar.com/unrivaled/trial/v8/en/league/teams.json", nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()

	if !strings.Contains(sent, "api_key=secret-key") {
		t.Fatalf("expected key on outgoing request, got=%s", sent)
	}
	if req.URL.RawQuery != "" {
		t.Fatalf("expected caller request untouched, got query=%q", req.URL.RawQuery)
	}
}

func TestClient_OversizedBodyIsRejected(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"id":"g1","pad":"`))
		_, _ = w.Write([]byte(strings.Repeat("x", maxResponseBytes)))
		_, _ = w.Write([]byte(`"}`))
	}, 2)

	_, _, err := client.FetchGameSummary(context.Background(), "g1")
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got=%v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected no retry for oversized body, calls=%d", calls.Load())
	}
}

func TestReadBody_AcceptsExactLimit(t *testing.T) {
	t.Parallel()

	raw, err := readBody(strings.NewReader(strings.Repeat("x", maxResponseBytes)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != maxResponseBytes {
		t.Fatalf("expected %d bytes, got=%d", maxResponseBytes, len(raw))
	}

	if _, err := readBody(strings.NewReader(strings.Repeat("x", maxResponseBytes+1))); !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got=%v", err)
	}
}
