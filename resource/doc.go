// Package resource implements a Controller for limits shared between vectors.
//
// It governs two resources:
//
//   - Memory: every buffer a vector allocates is reserved first (non-blocking, fail-fast)
//   - Dump IO: diagnostic dumps can be throttled with a token bucket
//
// # Memory Management
//
// A weighted semaphore enforces the hard limit and an atomic counter tracks
// usage. AcquireMemory never blocks; it returns ErrMemoryLimitExceeded
// immediately when the reservation does not fit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 20, // 1MB for all vectors sharing rc
//	})
//
//	v, err := intvec.New(16, intvec.WithResourceController(rc))
//
// A vector reserves its buffer on Init and on every growth, and gives the
// memory back on Cleanup.
//
// # Dump Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    DumpBytesPerSec: 64 * 1024,
//	})
//	w := resource.NewRateLimitedWriter(ctx, os.Stderr, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limits without nil checks everywhere.
package resource
