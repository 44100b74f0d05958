package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
	"github.com/riskibarqy/hoops-feed/internal/platform/resilience"
)

const scanBatchSize = 200

type RedisConfig struct {
	URL            string
	KeyPrefix      string
	TTL            time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	Logger         *logging.Logger
}

// RedisStore is the shared Cache used when several API replicas serve the
// same snapshots. Redis failures degrade to calling the loader.
type RedisStore struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	flight  resilience.Flight[[]byte]
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

// NewRedisStore connects using a redis:// URL and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "parse REDIS_URL")
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, crerr.Wrap(err, "ping redis")
	}

	return NewRedisStoreFromClient(client, cfg), nil
}

func NewRedisStoreFromClient(client redis.UniversalClient, cfg RedisConfig) *RedisStore {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = "redis"
	}
	if breakerCfg.OnStateChange == nil {
		breakerCfg.OnStateChange = func(name string, from, to resilience.CircuitState) {
			logger.Warn("cache circuit breaker state changed", "breaker", name, "from", from, "to", to)
		}
	}

	return &RedisStore{
		client:  client,
		prefix:  cfg.KeyPrefix,
		ttl:     cfg.TTL,
		breaker: resilience.NewCircuitBreaker(breakerCfg),
		logger:  logger,
	}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func countsAsFailure(err error) bool {
	return !errors.Is(err, redis.Nil)
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	var raw []byte
	err := s.breaker.Execute(func() error {
		var getErr error
		raw, getErr = s.client.Get(ctx, s.key(key)).Bytes()
		return getErr
	}, countsAsFailure)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return nil
	}
	err := s.breaker.Execute(func() error {
		return s.client.Set(ctx, s.key(key), value, s.ttl).Err()
	}, nil)
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	if prefix == "" {
		return nil
	}

	iter := s.client.Scan(ctx, 0, s.key(prefix)+"*", scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("redis del prefix %s: %w", prefix, err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan prefix %s: %w", prefix, err)
	}
	if len(batch) > 0 {
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis del prefix %s: %w", prefix, err)
		}
	}
	return nil
}

func (s *RedisStore) GetOrLoad(ctx context.Context, key string, loader func(context.Context) ([]byte, error)) ([]byte, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	cached, ok, err := s.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "redis cache read failed, loading from source", "key", key, "error", err)
	}
	if ok {
		return cached, nil
	}

	value, _, err := s.flight.Do(ctx, key, func() ([]byte, error) {
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		if setErr := s.Set(ctx, key, loaded); setErr != nil {
			s.logger.WarnContext(ctx, "redis cache write failed", "key", key, "error", setErr)
		}
		return loaded, nil
	})
	return value, err
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
