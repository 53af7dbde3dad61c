package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the memory limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for vector buffers reserved through
	// this controller. If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// DumpBytesPerSec caps the throughput of diagnostic dumps.
	// If 0, unlimited.
	DumpBytesPerSec int64
}

// Controller accounts buffer memory across every vector that shares it.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	dumpLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.DumpBytesPerSec > 0 {
		c.dumpLimiter = rate.NewLimiter(rate.Limit(cfg.DumpBytesPerSec), int(cfg.DumpBytesPerSec))
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
// Non-blocking - callers decide what a refusal means.
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

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AcquireDump waits until the dump limit allows n more bytes.
// Requests larger than one second of budget are split into bursts.
func (c *Controller) AcquireDump(ctx context.Context, n int) error {
	if c == nil || c.dumpLimiter == nil {
		return nil
	}
	burst := c.dumpLimiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := c.dumpLimiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// TryAcquireDump attempts to take n dump bytes without blocking.
func (c *Controller) TryAcquireDump(n int) bool {
	if c == nil || c.dumpLimiter == nil {
		return true
	}
	return c.dumpLimiter.AllowN(time.Now(), n)
}
