package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints.
const (
	// DefaultBaseURL is the production PayRex API endpoint.
	DefaultBaseURL = "https://api.payrexhq.com/v1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry and backoff limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// MaxRetryLimit is the highest retry count a configuration may request.
	MaxRetryLimit = 10

	// DefaultRetryWaitMin is the initial backoff between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Amount limits in centavos, per the provider's documentation.
const (
	// MinAmount is the smallest chargeable amount (PHP 20.00).
	MinAmount = 2000

	// MaxAmount is the largest chargeable amount (PHP 59,999,999.99).
	MaxAmount = 5999999999
)

// Pagination limits.
const (
	// MinPageLimit is the smallest page size a list call may request.
	MinPageLimit = 1

	// MaxPageLimit is the largest page size a list call may request.
	MaxPageLimit = 100
)
