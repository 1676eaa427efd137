package redis

import (
	"context"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

var (
	ErrCacheMiss        = errors.New(errors.ErrCodeCacheMiss, "cache miss")
	ErrCacheUnavailable = errors.New(errors.ErrCodeCacheError, "cache unavailable")
)

// FigureCache stores serialised figures keyed by dataset digest and chart
// options.  Values are opaque bytes.
type FigureCache struct {
	client     *Client
	logger     logging.Logger
	prefix     string
	defaultTTL time.Duration
	jitter     float64
	group      singleflight.Group
}

type CacheOption func(*FigureCache)

func WithPrefix(prefix string) CacheOption {
	return func(c *FigureCache) { c.prefix = prefix }
}

func WithDefaultTTL(ttl time.Duration) CacheOption {
	return func(c *FigureCache) { c.defaultTTL = ttl }
}

// WithJitter spreads expiry by ±fraction of the TTL so replicas started
// together do not all rebuild at the same moment.  0 disables it.
func WithJitter(fraction float64) CacheOption {
	return func(c *FigureCache) { c.jitter = fraction }
}

func NewFigureCache(client *Client, log logging.Logger, opts ...CacheOption) *FigureCache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	c := &FigureCache{
		client:     client,
		logger:     log,
		prefix:     "pgd:",
		defaultTTL: 24 * time.Hour,
		jitter:     0.1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *FigureCache) fullKey(key string) string {
	return c.prefix + "figure:" + key
}

func (c *FigureCache) ttl(ttl time.Duration) time.Duration {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if c.jitter <= 0 {
		return ttl
	}
	j := float64(ttl) * c.jitter * (rand.Float64()*2 - 1)
	return ttl + time.Duration(j)
}

// Name identifies the cache in metrics.
func (c *FigureCache) Name() string { return "redis" }

// Get returns the cached bytes for key, or ErrCacheMiss.
func (c *FigureCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss.WithDetail(key)
	}
	if err != nil {
		return nil, ErrCacheUnavailable.WithCause(err)
	}
	return data, nil
}

// Set stores data under key.  A zero ttl uses the default TTL.
func (c *FigureCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.fullKey(key), data, c.ttl(ttl)).Err(); err != nil {
		return ErrCacheUnavailable.WithCause(err)
	}
	return nil
}

// GetOrBuild returns the cached value for key or calls build, stores its
// result and returns it.  Concurrent callers for the same key share one
// build.  Redis failures degrade to building locally; only build errors are
// returned.  hit reports whether the value came from Redis.
func (c *FigureCache) GetOrBuild(ctx context.Context, key string, ttl time.Duration,
	build func(ctx context.Context) ([]byte, error)) (data []byte, hit bool, err error) {

	type result struct {
		data []byte
		hit  bool
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		cached, getErr := c.Get(ctx, key)
		if getErr == nil {
			return result{data: cached, hit: true}, nil
		}
		if !errors.IsCode(getErr, errors.ErrCodeCacheMiss) {
			c.logger.Warn("figure cache read failed, building locally",
				logging.String("key", key), logging.Err(getErr))
		}

		built, buildErr := build(ctx)
		if buildErr != nil {
			return nil, buildErr
		}
		if setErr := c.Set(ctx, key, built, ttl); setErr != nil {
			c.logger.Warn("figure cache write failed",
				logging.String("key", key), logging.Err(setErr))
		}
		return result{data: built}, nil
	})
	if err != nil {
		return nil, false, err
	}
	r := v.(result)
	return r.data, r.hit, nil
}

//Personal.AI order the ending
