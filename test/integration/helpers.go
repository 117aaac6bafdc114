//go:build integration
// +build integration

package integration

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/payrex-community/payrex-go/pkg/payrexclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey  string
	BaseURL string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("PAYREX_API_KEY"),
		BaseURL: os.Getenv("PAYREX_BASE_URL"),
		Verbose: os.Getenv("PAYREX_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no API key is configured.
// Integration tests only run against a test-mode account.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIKey == "" {
		t.Skip("PAYREX_API_KEY not set, skipping integration test")
	}

	if !strings.HasPrefix(c.APIKey, "sk_test_") {
		t.Skip("refusing to run integration tests against a live-mode key")
	}
}

// NewClient builds an SDK client from the test configuration.
func (c *TestConfig) NewClient(t *testing.T) payrex.Client {
	t.Helper()

	builder := payrex.NewConfig(c.APIKey)
	if c.BaseURL != "" {
		builder = builder.WithBaseURL(c.BaseURL)
	}

	if c.Verbose {
		builder = builder.WithDebug(true)
	}

	config, err := builder.Build()
	if err != nil {
		t.Fatalf("building config: %v", err)
	}

	client, err := payrexclient.New(config)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique name so parallel runs never collide.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
