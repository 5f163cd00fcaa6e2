package ews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	tests := []struct {
		name string
		cfg  RateLimitConfig
	}{
		{name: "default", cfg: DefaultRateLimit},
		{name: "custom", cfg: RateLimitConfig{RequestsPerSecond: 5, BurstSize: 10}},
		{name: "zero falls back to default", cfg: RateLimitConfig{}},
		{name: "zero burst", cfg: RateLimitConfig{RequestsPerSecond: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.cfg)
			require.NotNil(t, rl)
			assert.NotNil(t, rl.limiter)
			assert.GreaterOrEqual(t, rl.limiter.Burst(), 1)
		})
	}
}

func TestRateLimiter_Wait(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)
	assert.NoError(t, rl.Wait(context.Background()))
}

func TestRateLimiter_Wait_ContextCancelled(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, rl.Wait(ctx), context.Canceled)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(), "request %d should be allowed", i)
	}
}

func TestRateLimiter_RecordBackOff(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	rl.RecordBackOff(time.Second)

	assert.False(t, rl.Allow())
	assert.True(t, rl.RetryAt().After(time.Now()))
}

func TestRateLimiter_RecordBackOff_NeverShortens(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	rl.RecordBackOff(time.Minute)
	long := rl.RetryAt()
	rl.RecordBackOff(time.Millisecond)

	assert.Equal(t, long, rl.RetryAt())
}

func TestRateLimiter_RecordBackOff_IgnoresNonPositive(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)

	rl.RecordBackOff(0)
	rl.RecordBackOff(-time.Second)

	assert.True(t, rl.RetryAt().IsZero())
	assert.True(t, rl.Allow())
}

func TestRateLimiter_Wait_BackOffHonoursContext(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)
	rl.RecordBackOff(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := rl.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRateLimiter_Wait_AfterShortBackOff(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimit)
	rl.RecordBackOff(30 * time.Millisecond)

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}
