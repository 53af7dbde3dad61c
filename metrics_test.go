package intvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	v, err := New(1, WithMetricsCollector(metrics))
	require.NoError(t, err)
	defer v.Cleanup()

	for i := range 5 {
		require.NoError(t, v.Append(Element(i)))
	}
	require.Error(t, v.Insert(9, 1))

	_, err = v.Get(0)
	require.NoError(t, err)
	_, err = v.Get(5)
	require.Error(t, err)

	require.NoError(t, v.Delete(0))
	require.Error(t, v.Delete(-1))

	stats := metrics.GetStats()
	assert.Equal(t, int64(6), stats.InsertCount)
	assert.Equal(t, int64(1), stats.InsertErrors)
	assert.Equal(t, int64(2), stats.GetCount)
	assert.Equal(t, int64(1), stats.GetErrors)
	assert.Equal(t, int64(2), stats.DeleteCount)
	assert.Equal(t, int64(1), stats.DeleteErrors)
	assert.Equal(t, int64(3), stats.GrowCount) // 1 -> 2 -> 4 -> 8
	assert.Equal(t, int64(8), stats.PeakCapacity)
	assert.GreaterOrEqual(t, stats.InsertAvgNanos, int64(0))
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	assert.Equal(t, BasicMetricsStats{}, metrics.GetStats())
}

func TestNoopMetricsCollector(t *testing.T) {
	v, err := New(0, WithMetricsCollector(nil))
	require.NoError(t, err)
	defer v.Cleanup()

	require.NoError(t, v.Append(1))
	assert.Equal(t, 1, v.Len())
}
