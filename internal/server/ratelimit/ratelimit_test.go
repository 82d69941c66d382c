package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	})
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := newTestLimiter([]EndpointConfig{
		{Path: "/render", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/render", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 60, info.Limit)
	}
}

func TestLimiter_DeniesAfterBurstExhausted(t *testing.T) {
	// A tiny refill rate keeps the bucket empty for the duration of the test.
	l := newTestLimiter([]EndpointConfig{
		{Path: "/render/pdf", Method: "POST", Limit: 1, Window: time.Hour, Burst: 2},
	})
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/render/pdf", "POST")
		require.True(t, allowed, "request %d", i)
	}

	allowed, info := l.Allow("1.2.3.4", "/render/pdf", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_BucketsAreKeyedPerClient(t *testing.T) {
	l := newTestLimiter([]EndpointConfig{
		{Path: "/render", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/render", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/render", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket.
	allowed, _ = l.Allow("5.6.7.8", "/render", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:   true,
		Whitelist: map[string]bool{"10.0.0.1": true},
		Blacklist: make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/render", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
		},
	})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/render", "POST")
		assert.True(t, allowed, "request %d", i)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:   true,
		Whitelist: make(map[string]bool),
		Blacklist: map[string]bool{"6.6.6.6": true},
	})
	defer l.Stop()

	allowed, info := l.Allow("6.6.6.6", "/health", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/render/pdf", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthNeverLimited(t *testing.T) {
	l := newTestLimiter(DefaultEndpointConfigs())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed, "request %d", i)
	}
}

func TestMatchEndpoint_ExactWinsOverPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/documents/", Method: "PUT", Limit: 100},
		{Path: "/render", Method: "POST", Limit: 60},
	}

	ec := MatchEndpoint("/render", "POST", configs)
	require.NotNil(t, ec)
	assert.Equal(t, 60, ec.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/documents/", Method: "PUT", Limit: 100},
	}

	ec := MatchEndpoint("/documents/0a1b2c", "PUT", configs)
	require.NotNil(t, ec)
	assert.Equal(t, 100, ec.Limit)

	assert.Nil(t, MatchEndpoint("/documents/0a1b2c", "GET", configs))
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/unknown", "GET", DefaultEndpointConfigs()))
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	ec := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, ec)
	assert.LessOrEqual(t, ec.Limit, 0)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_WHITELIST", "")
	t.Setenv("RATE_LIMIT_BLACKLIST", "")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_ParsesLists(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_BLACKLIST", "6.6.6.6")

	cfg := LoadConfig()

	assert.True(t, cfg.Whitelist["10.0.0.1"])
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.True(t, cfg.Blacklist["6.6.6.6"])
}
