package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowConsumesBurst(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("k", 3, 0), "burst token %d", i+1)
	}
	assert.False(t, l.Allow("k", 3, 0), "bucket exhausted")
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	assert.True(t, l.Allow("a", 1, 0))
	assert.False(t, l.Allow("a", 1, 0))
	assert.True(t, l.Allow("b", 1, 0))
}

func TestAllowRefills(t *testing.T) {
	l := New()

	require.True(t, l.Allow("k", 1, 100))
	require.False(t, l.Allow("k", 1, 100))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("k", 1, 100), "refill at 100/s restores a token")
}

func TestWaitHonorsContext(t *testing.T) {
	l := New()
	require.True(t, l.Allow("k", 1, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx, "k", 1, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitReturnsWhenTokenFrees(t *testing.T) {
	l := New()
	require.True(t, l.Allow("k", 1, 50))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, l.Wait(ctx, "k", 1, 50))
}
