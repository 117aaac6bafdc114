// Package payrexclient provides the main entry point for creating PayRex API clients
package payrexclient

import (
	"fmt"
	"strings"

	"github.com/payrex-community/payrex-go/internal/client"
	"github.com/payrex-community/payrex-go/internal/constants"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// New creates a new PayRex API client from the given configuration.
func New(config *payrex.Config) (payrex.Client, error) {
	if config == nil {
		return nil, payrex.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, payrex.ErrAPIKeyRequired
	}

	// Normalize the base URL into a copy; the caller's Config stays untouched.
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	normalized := *config
	normalized.BaseURL = baseURL

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client against the production API using only a
// secret API key and default settings.
func NewWithAPIKey(apiKey string) (payrex.Client, error) {
	config, err := payrex.NewConfig(apiKey).Build()
	if err != nil {
		return nil, err
	}

	return New(config)
}
