package intvec

import (
	"errors"
	"testing"

	"github.com/hupe1980/intvec/resource"
	"github.com/stretchr/testify/assert"
)

func TestBoundsError(t *testing.T) {
	err := error(&BoundsError{Op: "get", Location: 3, Length: 2})

	assert.EqualError(t, err, "get: location 3 out of bounds for length 2")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.NotErrorIs(t, err, ErrAllocationFailed)
}

func TestCapacityError(t *testing.T) {
	err := error(&CapacityError{Capacity: -4})
	assert.EqualError(t, err, "invalid capacity: -4")
}

func TestAllocationError(t *testing.T) {
	err := error(&AllocationError{Capacity: 8, cause: resource.ErrMemoryLimitExceeded})

	assert.EqualError(t, err, "allocation of 8 elements failed: memory limit exceeded")
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.False(t, errors.Is(err, ErrOutOfBounds))

	var ae *AllocationError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, 8, ae.Capacity)
}
