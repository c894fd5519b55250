package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena(AlignedBuffer(100, 8), 4)

	assert.Equal(t, ArenaMetrics{Capacity: 100, Remaining: 100, Alignment: 4}, a.Metrics())

	_, err := a.Allocate(10)
	require.NoError(t, err)
	_, err = a.Allocate(13)
	require.NoError(t, err)

	m := a.Metrics()
	assert.Equal(t, 25, m.SizeInUse, "includes alignment padding")
	assert.Equal(t, 100, m.Capacity)
	assert.Equal(t, 75, m.Remaining)
	assert.Equal(t, 25, m.Peak)
	assert.InDelta(t, 0.25, m.Utilization, 1e-9)
}

func TestArenaPeak(t *testing.T) {
	a := NewArena(AlignedBuffer(64, 8), 0)

	_, err := a.Allocate(40)
	require.NoError(t, err)
	a.Reset()
	_, err = a.Allocate(8)
	require.NoError(t, err)

	assert.Equal(t, 8, a.SizeInUse())
	assert.Equal(t, 40, a.Peak(), "Reset does not lower the peak")

	a.Bind(AlignedBuffer(64, 8))
	assert.Equal(t, 0, a.Peak(), "Bind clears the peak")
}

func TestArenaMetricsUnbound(t *testing.T) {
	var a Arena
	m := a.Metrics()
	assert.Equal(t, 0, m.Capacity)
	assert.Equal(t, 0.0, m.Utilization)
	assert.Equal(t, DefaultAlignment, m.Alignment)
}
