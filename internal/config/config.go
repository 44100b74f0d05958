package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level

	StorageBackend string
	DBURL          string

	CacheEnabled   bool
	CacheBackend   string
	CacheTTL       time.Duration
	RedisURL       string
	RedisKeyPrefix string

	SportradarBaseURL               string
	SportradarAccessLevel           string
	SportradarVersion               string
	SportradarLanguage              string
	SportradarAPIKey                string
	SportradarTimeout               time.Duration
	SportradarMaxRetries            int
	SportradarRetryBackoff          time.Duration
	SportradarCircuitEnabled        bool
	SportradarCircuitFailureCount   int
	SportradarCircuitOpenTimeout    time.Duration
	SportradarCircuitHalfOpenMaxReq int
	SeasonYear                      int
	SeasonType                      string

	NormalizerPoolSize int
	SyncWorkers        int
	SyncInterval       time.Duration
	InternalJobToken   string

	CORSAllowedOrigins []string

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}
	logLevel, err := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "hoops-feed-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		LogLevel:           logLevel,
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		RedisURL:           strings.TrimSpace(getEnv("REDIS_URL", "")),
		RedisKeyPrefix:     getEnv("REDIS_KEY_PREFIX", "hoops-feed:"),
		SportradarBaseURL:  strings.TrimSpace(getEnv("SPORTRADAR_BASE_URL", "https://api.sportradar.com/nba")),
		SportradarVersion:  strings.TrimSpace(getEnv("SPORTRADAR_VERSION", "v8")),
		SportradarLanguage: strings.TrimSpace(getEnv("SPORTRADAR_LANGUAGE", "en")),
		SportradarAPIKey:   strings.TrimSpace(getEnv("SPORTRADAR_API_KEY", "")),
		InternalJobToken:   strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeAuthToken: strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
	}
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if err := loadStorage(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadSportradar(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadWorkers(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadStorage(cfg *Config) error {
	storage := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", "")))
	if storage == "" {
		storage = StorageMemory
		if cfg.DBURL != "" {
			storage = StoragePostgres
		}
	}
	switch storage {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBURL == "" {
			return fmt.Errorf("DB_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: valid values are %s, %s", storage, StorageMemory, StoragePostgres)
	}
	cfg.StorageBackend = storage

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cfg.CacheEnabled = cacheEnabled

	cacheTTL, err := getEnvAsDuration("CACHE_TTL", 60*time.Second)
	if err != nil {
		return err
	}
	cfg.CacheTTL = cacheTTL

	backend := strings.ToLower(strings.TrimSpace(getEnv("CACHE_BACKEND", CacheMemory)))
	switch backend {
	case CacheMemory:
	case CacheRedis:
		if cacheEnabled && cfg.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("invalid CACHE_BACKEND %q: valid values are %s, %s", backend, CacheMemory, CacheRedis)
	}
	cfg.CacheBackend = backend

	return nil
}

func loadSportradar(cfg *Config) error {
	access := strings.ToLower(strings.TrimSpace(getEnv("SPORTRADAR_ACCESS_LEVEL", "trial")))
	if access != "trial" && access != "production" {
		return fmt.Errorf("invalid SPORTRADAR_ACCESS_LEVEL %q: valid values are trial, production", access)
	}
	cfg.SportradarAccessLevel = access
	if cfg.AppEnv != EnvDev && cfg.SportradarAPIKey == "" {
		return fmt.Errorf("SPORTRADAR_API_KEY is required when APP_ENV=%s", cfg.AppEnv)
	}

	var err error
	if cfg.SportradarTimeout, err = getEnvAsDuration("SPORTRADAR_TIMEOUT", 20*time.Second); err != nil {
		return err
	}
	if cfg.SportradarRetryBackoff, err = getEnvAsDuration("SPORTRADAR_RETRY_BACKOFF", time.Second); err != nil {
		return err
	}
	if cfg.SportradarMaxRetries, err = getEnvAsInt("SPORTRADAR_MAX_RETRIES", 2); err != nil {
		return fmt.Errorf("parse SPORTRADAR_MAX_RETRIES: %w", err)
	}
	if cfg.SportradarMaxRetries < 0 {
		return fmt.Errorf("SPORTRADAR_MAX_RETRIES must be >= 0")
	}

	if cfg.SportradarCircuitEnabled, err = strconv.ParseBool(getEnv("SPORTRADAR_CIRCUIT_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse SPORTRADAR_CIRCUIT_ENABLED: %w", err)
	}
	if cfg.SportradarCircuitFailureCount, err = getEnvAsInt("SPORTRADAR_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return fmt.Errorf("parse SPORTRADAR_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.SportradarCircuitFailureCount < 1 {
		return fmt.Errorf("SPORTRADAR_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.SportradarCircuitOpenTimeout, err = getEnvAsDuration("SPORTRADAR_CIRCUIT_OPEN_TIMEOUT", 15*time.Second); err != nil {
		return err
	}
	if cfg.SportradarCircuitHalfOpenMaxReq, err = getEnvAsInt("SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return fmt.Errorf("parse SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.SportradarCircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	if cfg.SeasonYear, err = getEnvAsInt("SEASON_YEAR", defaultSeasonYear(time.Now())); err != nil {
		return fmt.Errorf("parse SEASON_YEAR: %w", err)
	}
	if cfg.SeasonYear < 1900 {
		return fmt.Errorf("SEASON_YEAR must be >= 1900")
	}
	cfg.SeasonType = strings.ToUpper(strings.TrimSpace(getEnv("SEASON_TYPE", "REG")))
	switch cfg.SeasonType {
	case "PRE", "REG", "PST", "PIT":
	default:
		return fmt.Errorf("invalid SEASON_TYPE %q: valid values are PRE, REG, PST, PIT", cfg.SeasonType)
	}

	return nil
}

func loadWorkers(cfg *Config) error {
	var err error
	if cfg.NormalizerPoolSize, err = getEnvAsInt("NORMALIZER_POOL_SIZE", 8); err != nil {
		return fmt.Errorf("parse NORMALIZER_POOL_SIZE: %w", err)
	}
	if cfg.NormalizerPoolSize < 0 {
		return fmt.Errorf("NORMALIZER_POOL_SIZE must be >= 0")
	}
	if cfg.SyncWorkers, err = getEnvAsInt("SYNC_WORKERS", 4); err != nil {
		return fmt.Errorf("parse SYNC_WORKERS: %w", err)
	}
	if cfg.SyncWorkers < 1 {
		return fmt.Errorf("SYNC_WORKERS must be >= 1")
	}
	// Zero disables the background loop; POST /v1/internal/sync still works.
	if cfg.SyncInterval, err = getEnvAsDuration("SYNC_INTERVAL", 0); err != nil {
		return err
	}
	if cfg.SyncInterval > 0 && cfg.SyncInterval < time.Minute {
		return fmt.Errorf("SYNC_INTERVAL must be >= 1m when set")
	}
	return nil
}

func loadObservability(cfg *Config) error {
	var err error
	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true")); err != nil {
		return fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}

	return nil
}

// defaultSeasonYear follows the league calendar: a season is named after
// the year it starts, and starts in October.
func defaultSeasonYear(now time.Time) int {
	if now.Month() >= time.October {
		return now.Year()
	}
	return now.Year() - 1
}

func parseLogLevel(v string) (logging.Level, error) {
	return logging.ParseLevel(v)
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// getEnvAsDuration rejects negative values. Zero is only returned when it is
// the fallback or set explicitly.
func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	if out == 0 && fallback > 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
