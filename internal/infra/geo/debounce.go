package geo

import (
	"context"
	"sync"
	"time"

	"mechmobile/internal/pkg/errs"
)

// ErrSuperseded reports that a newer address arrived inside the debounce
// window and this resolution was abandoned.
var ErrSuperseded = errs.New("distance request superseded")

// Debouncer coalesces rapid successive resolutions, as happens while a
// customer types an address. Each call waits out the window; if a newer call
// arrives meanwhile, the older one returns ErrSuperseded and only the latest
// hits the network.
type Debouncer struct {
	inner  Resolver
	window time.Duration

	mu  sync.Mutex
	gen uint64
}

func NewDebouncer(inner Resolver, window time.Duration) *Debouncer {
	return &Debouncer{inner: inner, window: window}
}

func (d *Debouncer) Resolve(ctx context.Context, address string) (Distance, error) {
	d.mu.Lock()
	d.gen++
	myGen := d.gen
	d.mu.Unlock()

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Distance{}, errs.Wrap(ctx.Err(), "distance resolution cancelled")
	case <-timer.C:
	}

	d.mu.Lock()
	latest := d.gen == myGen
	d.mu.Unlock()
	if !latest {
		return Distance{}, ErrSuperseded
	}

	return d.inner.Resolve(ctx, address)
}
