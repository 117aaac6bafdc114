package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/payrex-community/payrex-go/pkg/payrexclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired   = errors.New("API key is required (use --api-key, PAYREX_API_KEY, or 'payrex login')")
	ErrAmountRequired   = errors.New("amount is required (--amount)")
	ErrCurrencyRequired = errors.New("currency is required (--currency)")
	ErrNotLoggedIn      = errors.New("not logged in")
)

// createClient builds an API client from the CLI configuration.
func createClient() (payrex.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	builder := payrex.NewConfig(apiKey)

	if baseURL := viper.GetString("base_url"); baseURL != "" {
		builder = builder.WithBaseURL(baseURL)
	}

	config, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building configuration: %w", err)
	}

	client, err := payrexclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// outputJSON renders the value as indented JSON on stdout.
func outputJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

// outputYAML renders the value as YAML on stdout.
func outputYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(value)
}

// renderStructured writes the value as JSON or YAML when the configured
// output format asks for it. The boolean reports whether it rendered.
func renderStructured(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, outputJSON(value)
	case OutputFormatYAML:
		return true, outputYAML(value)
	default:
		return false, nil
	}
}

// formatAmount renders a centavo amount as a decimal money string, e.g.
// 150000 -> "1500.00".
func formatAmount(amount int64, currency payrex.Currency) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency)
}

// formatTimestamp renders a Unix-second timestamp for table output.
func formatTimestamp(ts payrex.Timestamp) string {
	if ts == 0 {
		return ""
	}

	return ts.Time().UTC().Format("2006-01-02 15:04:05")
}

// formatMetadata flattens metadata for table output.
func formatMetadata(metadata payrex.Metadata) string {
	if len(metadata) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(metadata))
	for key, value := range metadata {
		pairs = append(pairs, key+"="+value)
	}

	return strings.Join(pairs, ", ")
}

// maskAPIKey hides all but the key prefix and last four characters.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}

	if len(apiKey) <= 12 {
		return Masked
	}

	return apiKey[:8] + Masked + apiKey[len(apiKey)-4:]
}

// parseMetadataFlags turns repeated key=value flags into metadata.
func parseMetadataFlags(pairs []string) (payrex.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := make(payrex.Metadata, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid metadata %q: expected key=value", pair)
		}

		metadata[key] = value
	}

	return metadata, nil
}
