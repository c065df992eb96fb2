package widget

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Pacer draws the artificial typing delay before a canned reply.
type Pacer struct {
	min, max time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPacer returns a Pacer drawing uniformly from [min, max]. A nil rnd uses
// a randomly seeded source.
func NewPacer(min, max time.Duration, rnd *rand.Rand) *Pacer {
	if max < min {
		max = min
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Pacer{min: min, max: max, rnd: rnd}
}

// Next returns the next delay.
func (p *Pacer) Next() time.Duration {
	if p.max <= p.min {
		return p.min
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.min + time.Duration(p.rnd.Int64N(int64(p.max-p.min)+1))
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
