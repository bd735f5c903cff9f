package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyedLimiterSweepsIdleKeys(t *testing.T) {
	kl := newKeyedLimiter(RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	start := time.Now()

	ok, _ := kl.reserve("a", start)
	require.True(t, ok)
	ok, _ = kl.reserve("b", start)
	require.True(t, ok)
	require.Equal(t, 2, kl.size())

	ok, delay := kl.reserve("a", start.Add(time.Second))
	require.False(t, ok)
	require.Greater(t, delay, time.Duration(0))

	// "b" has been idle past the TTL, "a" is touched by this call.
	kl.reserve("a", start.Add(limiterIdleTTL+time.Second))
	require.Equal(t, 1, kl.size())
}
