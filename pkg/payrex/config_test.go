package payrex_test

import (
	"testing"
	"time"

	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := payrex.NewConfig("sk_test_abc123").Build()
	require.NoError(t, err)

	assert.Equal(t, "sk_test_abc123", cfg.APIKey)
	assert.Equal(t, "https://api.payrexhq.com/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 30*time.Second, cfg.RetryWaitMax)
	assert.False(t, cfg.TestMode)
	assert.False(t, cfg.Debug)
}

func TestConfigBuilder_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := payrex.NewConfig("sk_test_abc123").
		WithBaseURL("https://sandbox.payrexhq.com/v1/").
		WithTimeout(5 * time.Second).
		WithMaxRetries(1).
		WithRetryDelay(100 * time.Millisecond).
		WithRetryWaitMax(2 * time.Second).
		WithUserAgent("acme-shop/1.0").
		WithTestMode(true).
		WithDebug(true).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "https://sandbox.payrexhq.com/v1", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 2*time.Second, cfg.RetryWaitMax)
	assert.Equal(t, "acme-shop/1.0", cfg.UserAgent)
	assert.True(t, cfg.TestMode)
	assert.True(t, cfg.Debug)
}

func TestConfigBuilder_ValueReceiverIsReusable(t *testing.T) {
	t.Parallel()

	base := payrex.NewConfig("sk_test_abc123").WithTimeout(5 * time.Second)

	first, err := base.WithMaxRetries(0).Build()
	require.NoError(t, err)

	second, err := base.WithMaxRetries(5).Build()
	require.NoError(t, err)

	assert.Equal(t, 0, first.MaxRetries)
	assert.Equal(t, 5, second.MaxRetries)
	assert.Equal(t, 5*time.Second, first.Timeout)
	assert.Equal(t, 5*time.Second, second.Timeout)
}

func TestConfigBuilder_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder payrex.ConfigBuilder
		wantMsg string
	}{
		{
			name:    "empty API key",
			builder: payrex.NewConfig(""),
			wantMsg: "API key is required",
		},
		{
			name:    "non-positive timeout",
			builder: payrex.NewConfig("sk_test_abc123").WithTimeout(0),
			wantMsg: "timeout must be greater than zero",
		},
		{
			name:    "negative max retries",
			builder: payrex.NewConfig("sk_test_abc123").WithMaxRetries(-1),
			wantMsg: "max retries must be between 0 and 10",
		},
		{
			name:    "excessive max retries",
			builder: payrex.NewConfig("sk_test_abc123").WithMaxRetries(11),
			wantMsg: "max retries must be between 0 and 10",
		},
		{
			name:    "non-positive retry delay",
			builder: payrex.NewConfig("sk_test_abc123").WithRetryDelay(0),
			wantMsg: "retry delay must be greater than zero",
		},
		{
			name:    "invalid base URL",
			builder: payrex.NewConfig("sk_test_abc123").WithBaseURL("not a url"),
			wantMsg: "base URL is invalid",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := tt.builder.Build()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, payrex.IsConfiguration(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConfigBuilder_EnumeratesAllProblems(t *testing.T) {
	t.Parallel()

	_, err := payrex.NewConfig("").
		WithTimeout(-1 * time.Second).
		WithMaxRetries(99).
		WithRetryDelay(0).
		WithBaseURL("://bad").
		Build()
	require.Error(t, err)
	assert.True(t, payrex.IsConfiguration(err))

	for _, msg := range []string{
		"API key is required",
		"timeout must be greater than zero",
		"max retries must be between 0 and 10",
		"retry delay must be greater than zero",
		"base URL is invalid",
	} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestConfigBuilder_ErrorNeverContainsCredential(t *testing.T) {
	t.Parallel()

	_, err := payrex.NewConfig("sk_live_supersecret").WithTimeout(0).Build()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "sk_live_supersecret")
}
