package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalPacer_FirstCallImmediate(t *testing.T) {
	pacer := NewIntervalPacer(time.Second)

	start := time.Now()
	require.NoError(t, pacer.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestIntervalPacer_SecondCallWaits(t *testing.T) {
	pacer := NewIntervalPacer(50 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, pacer.Wait(ctx))

	start := time.Now()
	require.NoError(t, pacer.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestIntervalPacer_ZeroIntervalNeverBlocks(t *testing.T) {
	pacer := NewIntervalPacer(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, pacer.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestIntervalPacer_CancelledContext(t *testing.T) {
	pacer := NewIntervalPacer(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, pacer.Wait(ctx))

	cancel()
	assert.Error(t, pacer.Wait(ctx))
}
