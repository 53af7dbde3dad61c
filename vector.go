package intvec

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/intvec/internal/conv"
	"github.com/hupe1980/intvec/internal/mem"
	"github.com/hupe1980/intvec/resource"
)

// Element is the fixed element kind stored in a Vector.
type Element = int32

const (
	// ElementSize is the size of one Element in bytes.
	ElementSize = 4

	// MinGrowCapacity is the capacity a full, zero-capacity vector grows to.
	// Every other growth doubles the capacity.
	MinGrowCapacity = 1
)

// Vector is a resizable array of Elements with explicit capacity management.
//
// The zero value is an uninitialized vector; call Init before use. Vector is
// not safe for concurrent use. Slices of the internal buffer are never handed
// out, so a reallocation cannot leave callers holding stale storage.
type Vector struct {
	buf      []Element
	capacity int
	length   int
	active   bool
	opts     options
}

// New allocates a Vector and initializes it with startCapacity slots.
func New(startCapacity int, opts ...Option) (*Vector, error) {
	v := &Vector{}
	if err := v.Init(startCapacity, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// Init allocates a buffer of exactly startCapacity slots and sets the length
// to 0. It is only valid on an uninitialized or cleaned up vector.
func (v *Vector) Init(startCapacity int, opts ...Option) error {
	if v.active {
		return ErrAlreadyInitialized
	}
	if startCapacity < 0 {
		return &CapacityError{Capacity: startCapacity}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx := context.Background()
	if err := reserve(o.rc, startCapacity); err != nil {
		err = &AllocationError{Capacity: startCapacity, cause: err}
		o.logger.LogInit(ctx, startCapacity, err)
		return err
	}

	v.buf = mem.AllocAlignedInt32(startCapacity)
	v.capacity = startCapacity
	v.length = 0
	v.opts = o
	v.active = true

	o.logger.LogInit(ctx, startCapacity, nil)
	return nil
}

// Insert writes value at location, shifting the elements at [location, Len())
// one slot up. location == Len() appends. A full buffer is reallocated to
// twice its capacity first.
//
// It returns a *BoundsError when location is outside [0, Len()], and an
// *AllocationError when growth fails. The vector is unchanged on error.
func (v *Vector) Insert(location int, value Element) (err error) {
	if !v.active {
		return ErrNotInitialized
	}

	start := time.Now()
	defer func() {
		v.opts.metricsCollector.RecordInsert(time.Since(start), err)
	}()

	if location < 0 || location > v.length {
		return &BoundsError{Op: "insert", Location: location, Length: v.length}
	}

	if v.length == v.capacity {
		if err := v.grow(); err != nil {
			return err
		}
	}

	copy(v.buf[location+1:v.length+1], v.buf[location:v.length])
	v.buf[location] = value
	v.length++

	return nil
}

// Append inserts value at the end of the vector.
func (v *Vector) Append(value Element) error {
	return v.Insert(v.length, value)
}

// Get returns the element at location.
// It returns a *BoundsError when location is outside [0, Len()).
func (v *Vector) Get(location int) (value Element, err error) {
	if !v.active {
		return 0, ErrNotInitialized
	}

	start := time.Now()
	defer func() {
		v.opts.metricsCollector.RecordGet(time.Since(start), err)
	}()

	if location < 0 || location >= v.length {
		return 0, &BoundsError{Op: "get", Location: location, Length: v.length}
	}

	return v.buf[location], nil
}

// Delete removes the element at location, shifting the elements after it one
// slot down. Capacity is never reduced.
// It returns a *BoundsError when location is outside [0, Len()).
func (v *Vector) Delete(location int) (err error) {
	if !v.active {
		return ErrNotInitialized
	}

	start := time.Now()
	defer func() {
		v.opts.metricsCollector.RecordDelete(time.Since(start), err)
	}()

	if location < 0 || location >= v.length {
		return &BoundsError{Op: "delete", Location: location, Length: v.length}
	}

	copy(v.buf[location:v.length-1], v.buf[location+1:v.length])
	v.length--
	v.buf[v.length] = 0

	return nil
}

// Cleanup releases the buffer and its memory reservation. The vector must be
// re-initialized before further use. Cleanup on an inactive vector is a no-op.
func (v *Vector) Cleanup() {
	if !v.active {
		return
	}

	release(v.opts.rc, v.capacity)
	v.opts.logger.LogCleanup(context.Background(), v.capacity, v.length)

	*v = Vector{}
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int { return v.capacity }

// Active reports whether the vector has been initialized and not cleaned up.
func (v *Vector) Active() bool { return v.active }

// String renders the elements in order, e.g. "[10 20 30]".
// An inactive vector renders as "<released>".
func (v *Vector) String() string {
	var sb strings.Builder
	_ = v.render(&sb)
	return sb.String()
}

// Print writes the rendering of the vector to standard output.
func (v *Vector) Print() {
	_ = v.Dump(context.Background(), os.Stdout)
}

// Dump writes the rendering of the vector followed by a newline to w,
// throttled by the dump limit of the configured resource controller.
func (v *Vector) Dump(ctx context.Context, w io.Writer) error {
	bw := bufio.NewWriter(resource.NewRateLimitedWriter(ctx, w, v.opts.rc))
	if err := v.render(bw); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func (v *Vector) render(w io.StringWriter) error {
	if !v.active {
		_, err := w.WriteString("<released>")
		return err
	}

	if _, err := w.WriteString("["); err != nil {
		return err
	}

	for i, e := range v.buf[:v.length] {
		if i > 0 {
			if _, err := w.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.FormatInt(int64(e), 10)); err != nil {
			return err
		}
	}

	_, err := w.WriteString("]")
	return err
}

// grow moves the elements into a buffer of twice the capacity.
func (v *Vector) grow() error {
	ctx := context.Background()

	newCap, err := conv.GrowCapacity(v.capacity, MinGrowCapacity)
	if err != nil {
		newCap = v.capacity
	} else {
		err = reserve(v.opts.rc, newCap)
	}
	if err != nil {
		err = &AllocationError{Capacity: newCap, cause: err}
		v.opts.logger.LogGrow(ctx, v.capacity, newCap, v.length, err)
		return err
	}

	buf := mem.AllocAlignedInt32(newCap)
	copy(buf, v.buf[:v.length])
	release(v.opts.rc, v.capacity)

	oldCap := v.capacity
	v.buf = buf
	v.capacity = newCap

	v.opts.logger.LogGrow(ctx, oldCap, newCap, v.length, nil)
	v.opts.metricsCollector.RecordGrow(oldCap, newCap)

	return nil
}

func reserve(rc *resource.Controller, capacity int) error {
	bytes, err := conv.ByteSize(capacity, ElementSize)
	if err != nil {
		return err
	}
	return rc.AcquireMemory(bytes)
}

func release(rc *resource.Controller, capacity int) {
	// capacity was reserved successfully, so the size cannot overflow.
	bytes, _ := conv.ByteSize(capacity, ElementSize)
	rc.ReleaseMemory(bytes)
}
