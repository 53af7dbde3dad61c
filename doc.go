// Package intvec provides a resizable array of int32 elements with explicit
// capacity management.
//
// A Vector tracks its allocated capacity separately from its logical length.
// Inserts into a full buffer reallocate it to twice the capacity (a
// zero-capacity vector grows to one slot), so appends are amortized O(1).
// Inserts and deletes at arbitrary positions shift the following elements.
//
// # Quick Start
//
//	var v intvec.Vector
//	if err := v.Init(16); err != nil {
//	    return err
//	}
//	defer v.Cleanup()
//
//	_ = v.Insert(0, 10)      // [10]
//	_ = v.Append(30)         // [10 30]
//	_ = v.Insert(1, 20)      // [10 20 30]
//	x, err := v.Get(1)       // 20
//	_ = v.Delete(0)          // [20 30]
//	v.Print()
//
// # Lifecycle
//
// The zero Vector is uninitialized. Init allocates the buffer and makes the
// vector active; Cleanup releases it. Operations on an inactive vector return
// ErrNotInitialized, and Init on an active vector returns
// ErrAlreadyInitialized.
//
// # Errors
//
// Locations outside the accepted range yield a *BoundsError, which matches
// ErrOutOfBounds. Insert accepts [0, Len()]; Get and Delete accept
// [0, Len()). A failed operation never modifies the vector.
//
// Buffer allocation is checked for size overflow and, when a
// resource.Controller is configured, against its memory limit. Refusals
// yield an *AllocationError matching ErrAllocationFailed.
//
// # Observability
//
// Allocations are logged through a slog-based Logger (WithLogger) and
// per-operation latencies are reported to a MetricsCollector
// (WithMetricsCollector).
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Callers must serialize access.
package intvec
