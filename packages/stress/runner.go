package stress

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// CallFunc performs one complete request.
type CallFunc func() error

// ProgressFunc is invoked after every call with the running count.
type ProgressFunc func(done int64, err error)

// Run calls fn sequentially until cfg's request count or duration is
// reached or ctx is cancelled. Pacing uses a token bucket with burst 1.
func Run(ctx context.Context, cfg *Config, fn CallFunc, progress ProgressFunc) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	metrics := NewMetrics()
	metrics.Start()
	for n := int64(0); cfg.Requests == 0 || n < int64(cfg.Requests); n++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		} else if ctx.Err() != nil {
			break
		}

		start := time.Now()
		err := fn()
		metrics.Record(time.Since(start), err)
		if progress != nil {
			progress(n+1, err)
		}
	}
	metrics.Stop()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return metrics.GetSummary(), err
	}
	return metrics.GetSummary(), nil
}
