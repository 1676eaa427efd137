package dashboard

import (
	"context"
	"time"
)

// FigureCache is a cache-aside store for serialised figures.
// *redis.FigureCache satisfies it.
type FigureCache interface {
	Name() string
	GetOrBuild(ctx context.Context, key string, ttl time.Duration,
		build func(ctx context.Context) ([]byte, error)) (data []byte, hit bool, err error)
}

// NoCache always builds.  Used when Redis is disabled.
type NoCache struct{}

func (NoCache) Name() string { return "none" }

func (NoCache) GetOrBuild(ctx context.Context, _ string, _ time.Duration,
	build func(ctx context.Context) ([]byte, error)) ([]byte, bool, error) {
	data, err := build(ctx)
	return data, false, err
}

//Personal.AI order the ending
