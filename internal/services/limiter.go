package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer gates successive LLM calls within a single request.
type Pacer interface {
	Wait(ctx context.Context) error
}

// intervalPacer spaces calls by a fixed interval using a token bucket with
// burst 1: the first call goes through immediately, each following call
// waits for the bucket to refill.
type intervalPacer struct {
	limiter *rate.Limiter
}

func NewIntervalPacer(interval time.Duration) Pacer {
	if interval <= 0 {
		return nopPacer{}
	}
	return &intervalPacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

type nopPacer struct{}

func (nopPacer) Wait(context.Context) error { return nil }
