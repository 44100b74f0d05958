package sportradar

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-feed/internal/domain/rawdata"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/riskibarqy/hoops-feed/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	SourceName       = "sportradar"
	defaultBaseURL   = "https://api.sportradar.com/unrivaled"
	defaultVersion   = "v8"
	defaultLanguage  = "en"
	maxResponseBytes = 6 << 20
)

var (
	// ErrUnavailable marks failures a caller may retry later: transport
	// errors, 429/5xx responses and an open circuit.
	ErrUnavailable = crerr.New("sport data provider unavailable")
	ErrNotFound    = crerr.New("sport data provider resource not found")

	// ErrResponseTooLarge is returned for bodies over maxResponseBytes. It is
	// not retried.
	ErrResponseTooLarge = crerr.New("sport data provider response too large")
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errSportradarTransient = crerr.Wrap(ErrUnavailable, "sportradar transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	AccessLevel    AccessLevel
	Version        string
	Language       string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Now            func() time.Time
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	access       AccessLevel
	version      string
	language     string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.Flight[[]byte]
	now          func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	// The key is added below the otel transport so spans never record it.
	httpClient.Transport = otelhttp.NewTransport(
		apiKeyTransport{key: strings.TrimSpace(cfg.APIKey), next: base},
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "sportradar " + r.Method
		}),
	)

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	access := cfg.AccessLevel
	if access == "" {
		access = AccessTrial
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	breakerCfg := cfg.CircuitBreaker
	breakerCfg.Name = SourceName
	breakerCfg.OnStateChange = func(name string, from, to resilience.CircuitState) {
		logger.Warn("provider circuit breaker state changed", "breaker", name, "from", from, "to", to)
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		access:       access,
		version:      firstNonEmpty(cfg.Version, defaultVersion),
		language:     firstNonEmpty(cfg.Language, defaultLanguage),
		maxRetries:   maxInt(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(breakerCfg),
		now:          now,
	}
}

// URL returns the full request URL for route without the api key.
func (c *Client) URL(route Route) string {
	return c.baseURL + route.Path(c.access, c.version, c.language)
}

func (c *Client) FetchTeams(ctx context.Context) (TeamsResponse, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, TeamsRoute(), DecodeTeams)
}

func (c *Client) FetchRoster(ctx context.Context, teamID string) (Roster, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, RosterRoute(teamID), func(raw []byte) (Roster, error) {
		return DecodeRoster(EndpointRoster, raw)
	})
}

func (c *Client) FetchPlayerProfile(ctx context.Context, playerID string) (PlayerProfile, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, PlayerProfileRoute(playerID), DecodePlayerProfile)
}

func (c *Client) FetchGameSummary(ctx context.Context, gameID string) (GameSummary, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, GameSummaryRoute(gameID), DecodeGameSummary)
}

func (c *Client) FetchBoxscore(ctx context.Context, gameID string) (Boxscore, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, BoxscoreRoute(gameID), DecodeBoxscore)
}

func (c *Client) FetchSchedule(ctx context.Context, day time.Time) (Schedule, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, ScheduleRoute(day), DecodeSchedule)
}

func (c *Client) FetchLeagueLeaders(ctx context.Context, seasonYear int, seasonType string) (LeagueLeaders, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, LeadersRoute(seasonYear, seasonType), DecodeLeagueLeaders)
}

func (c *Client) FetchStandings(ctx context.Context) (Standings, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, StandingsRoute(), DecodeStandings)
}

func (c *Client) FetchHierarchy(ctx context.Context) (Hierarchy, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, HierarchyRoute(), DecodeHierarchy)
}

func (c *Client) FetchInjuries(ctx context.Context) (InjuriesResponse, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, InjuriesRoute(), func(raw []byte) (InjuriesResponse, error) {
		return DecodeInjuries(EndpointInjuries, raw)
	})
}

func (c *Client) FetchDailyChanges(ctx context.Context, day time.Time) (DailyChanges, rawdata.Payload, error) {
	return fetchDecoded(ctx, c, DailyChangesRoute(day), DecodeDailyChanges)
}

func fetchDecoded[T any](ctx context.Context, c *Client, route Route, decode func([]byte) (T, error)) (T, rawdata.Payload, error) {
	var zero T
	raw, err := c.fetch(ctx, route)
	if err != nil {
		return zero, rawdata.Payload{}, fmt.Errorf("fetch %s: %w", route.Key(), err)
	}
	out, err := decode(raw)
	if err != nil {
		return zero, rawdata.Payload{}, err
	}
	return out, c.buildAPIPayload(route, raw), nil
}

func (c *Client) fetch(ctx context.Context, route Route) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "sportradar circuit breaker rejected request", "route", route.Key(), "state", c.breaker.State())
		return nil, fmt.Errorf("%w: circuit open", ErrUnavailable)
	}

	fullURL := c.URL(route)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("sportradar.endpoint", string(route.Endpoint)),
			attribute.String("sportradar.route", route.Key()),
		)
	}

	raw, _, err := c.flight.Do(ctx, route.Key(), func() ([]byte, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if reqErr != nil && isSportradarCircuitFailure(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSportradarTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case crerr.Is(readErr, ErrResponseTooLarge):
				return nil, readErr
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSportradarTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				if len(raw) == 0 {
					return nil, fmt.Errorf("provider returned an empty response")
				}
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: provider status=%d", ErrNotFound, resp.StatusCode)
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d (%s) body=%s", errSportradarTransient, resp.StatusCode, failureReason(resp.StatusCode), abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d (%s) body=%s", resp.StatusCode, failureReason(resp.StatusCode), abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sportradar request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

type apiKeyTransport struct {
	key  string
	next http.RoundTripper
}

func (t apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.key == "" {
		return t.next.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	query := clone.URL.Query()
	query.Set("api_key", t.key)
	clone.URL.RawQuery = query.Encode()
	return t.next.RoundTrip(clone)
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes+1)); err != nil {
		return nil, err
	}
	if buf.Len() > maxResponseBytes {
		return nil, crerr.Wrapf(ErrResponseTooLarge, "body exceeds %d bytes", maxResponseBytes)
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func (c *Client) buildAPIPayload(route Route, raw []byte) rawdata.Payload {
	sum := sha256.Sum256(raw)
	payload := rawdata.Payload{
		Source:      SourceName,
		Endpoint:    string(route.Endpoint),
		EntityKey:   route.Key(),
		PayloadJSON: string(raw),
		PayloadHash: hex.EncodeToString(sum[:]),
		FetchedAt:   c.now().UTC(),
	}
	switch route.Endpoint {
	case EndpointGameSummary, EndpointBoxscore:
		payload.GameID = firstSegment(route)
	case EndpointRoster:
		payload.TeamID = firstSegment(route)
	case EndpointPlayerProfile:
		payload.PlayerID = firstSegment(route)
	}
	return payload
}

func firstSegment(route Route) string {
	if len(route.Segments) == 0 {
		return ""
	}
	return route.Segments[0]
}

func failureReason(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "invalid api key"
	case status == http.StatusForbidden:
		return "access forbidden for this package"
	case status == http.StatusNotFound:
		return "resource not found"
	case status == http.StatusTooManyRequests:
		return "rate limit exceeded"
	case status >= http.StatusInternalServerError:
		return "provider server error"
	default:
		return "unexpected status"
	}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func isSportradarCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSportradarTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
