package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation does not fit the budget.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits. Zero values mean unlimited, except
// MaxConcurrentLoads which defaults to 1.
type Config struct {
	MemoryLimitBytes   int64
	MaxConcurrentLoads int64
	IOLimitBytesPerSec int64
}

// Stats is a point-in-time view of a Controller.
type Stats struct {
	MemoryUsed  int64
	MemoryLimit int64
	ActiveLoads int64
}

// Controller bounds memory, load concurrency and read throughput.
// A nil *Controller imposes no limits.
type Controller struct {
	limit   int64
	memSem  *semaphore.Weighted // nil when unlimited
	memUsed atomic.Int64

	loadSem *semaphore.Weighted
	active  atomic.Int64

	io *rate.Limiter
}

// NewController creates a Controller for cfg.
func NewController(cfg Config) *Controller {
	c := &Controller{
		limit:   max(cfg.MemoryLimitBytes, 0),
		loadSem: semaphore.NewWeighted(max(cfg.MaxConcurrentLoads, 1)),
	}
	if c.limit > 0 {
		c.memSem = semaphore.NewWeighted(c.limit)
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.io = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}
	return c
}

// Stats returns current usage.
func (c *Controller) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		MemoryUsed:  c.memUsed.Load(),
		MemoryLimit: c.limit,
		ActiveLoads: c.active.Load(),
	}
}

// AcquireMemory reserves bytes without blocking. It fails with
// ErrMemoryLimitExceeded when the budget cannot hold them.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return ErrMemoryLimitExceeded
	}
	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory returns bytes to the budget.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// Reserve starts a Reservation holding bytes.
func (c *Controller) Reserve(bytes int64) (*Reservation, error) {
	r := &Reservation{c: c}
	if err := r.Grow(bytes); err != nil {
		return nil, err
	}
	return r, nil
}

// Reservation is the memory one load holds against the budget. It grows as
// the load learns more about its input and is released in one call.
type Reservation struct {
	c     *Controller
	bytes int64
}

// Grow adds bytes to the reservation. On failure the reservation is unchanged.
func (r *Reservation) Grow(bytes int64) error {
	if err := r.c.AcquireMemory(bytes); err != nil {
		return err
	}
	r.bytes += max(bytes, 0)
	return nil
}

// Bytes returns the reserved size.
func (r *Reservation) Bytes() int64 { return r.bytes }

// Release returns everything reserved. It may be called more than once.
func (r *Reservation) Release() {
	r.c.ReleaseMemory(r.bytes)
	r.bytes = 0
}

// AcquireLoad takes a load slot, waiting while all slots are busy.
func (c *Controller) AcquireLoad(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.loadSem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.active.Add(1)
	return nil
}

// TryAcquireLoad takes a load slot if one is free.
func (c *Controller) TryAcquireLoad() bool {
	if c == nil {
		return true
	}
	if !c.loadSem.TryAcquire(1) {
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseLoad frees a load slot.
func (c *Controller) ReleaseLoad() {
	if c == nil {
		return
	}
	c.active.Add(-1)
	c.loadSem.Release(1)
}

// AcquireIO waits until the rate limit admits bytes. Requests larger than
// the burst are split into burst-sized waits.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.io == nil {
		return nil
	}
	burst := c.io.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.io.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
