package directory

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// RateLimitConfig bounds how often Search may reach the wrapped directory.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig allows 5 searches a second with bursts of 10.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

// RateLimited wraps a Directory so that Search fails fast with ErrRateLimit
// instead of queueing once the budget is spent. All and Lookup are not limited.
type RateLimited struct {
	inner   Directory
	limiter *rate.Limiter
}

// NewRateLimited wraps inner with a token-bucket limiter built from cfg.
func NewRateLimited(inner Directory, cfg RateLimitConfig) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

func (d *RateLimited) All() []domain.Location {
	return d.inner.All()
}

func (d *RateLimited) Search(ctx context.Context, query string) ([]domain.Location, error) {
	if !d.limiter.Allow() {
		return nil, ErrRateLimit
	}
	return d.inner.Search(ctx, query)
}

func (d *RateLimited) Lookup(ctx context.Context, id string) (domain.Location, error) {
	return d.inner.Lookup(ctx, id)
}
