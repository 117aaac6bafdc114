package payrex

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/payrex-community/payrex-go/internal/constants"
)

// Config holds validated, immutable client settings. Build one through
// ConfigBuilder; a Config is never mutated after construction and is safe to
// share across concurrent calls.
type Config struct {
	// APIKey is the secret key used to authenticate every request. It is
	// transmitted as the username of an HTTP Basic Authorization header and
	// is never logged or persisted by the SDK.
	APIKey string

	// BaseURL is the API endpoint. Defaults to the production endpoint;
	// override it for sandbox or test routing.
	BaseURL string

	// Timeout bounds each physical HTTP attempt.
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt, so a call
	// performs at most MaxRetries+1 physical requests.
	MaxRetries int

	// RetryDelay is the initial backoff interval; it doubles per retry.
	RetryDelay time.Duration

	// RetryWaitMax caps the computed backoff.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// TestMode marks the client as operating against test-mode resources.
	TestMode bool

	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool

	// Logger receives structured log output from the HTTP layer. Optional.
	Logger Logger
}

// ConfigBuilder assembles a Config through chained calls. Each setter
// returns an updated builder value, so partially applied builders can be
// reused without shared mutable state. Validation happens only in Build.
type ConfigBuilder struct {
	apiKey       string
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryDelay   time.Duration
	retryWaitMax time.Duration
	userAgent    string
	testMode     bool
	debug        bool
	logger       Logger
}

// NewConfig returns a builder seeded with the default endpoint, timeout and
// retry policy.
func NewConfig(apiKey string) ConfigBuilder {
	return ConfigBuilder{
		apiKey:       apiKey,
		baseURL:      constants.DefaultBaseURL,
		timeout:      constants.DefaultHTTPTimeout,
		maxRetries:   constants.DefaultRetryMax,
		retryDelay:   constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}
}

// WithBaseURL overrides the API endpoint.
func (b ConfigBuilder) WithBaseURL(baseURL string) ConfigBuilder {
	b.baseURL = baseURL

	return b
}

// WithTimeout sets the per-attempt request timeout.
func (b ConfigBuilder) WithTimeout(timeout time.Duration) ConfigBuilder {
	b.timeout = timeout

	return b
}

// WithMaxRetries sets the retry budget (0 disables retries).
func (b ConfigBuilder) WithMaxRetries(maxRetries int) ConfigBuilder {
	b.maxRetries = maxRetries

	return b
}

// WithRetryDelay sets the initial backoff interval.
func (b ConfigBuilder) WithRetryDelay(delay time.Duration) ConfigBuilder {
	b.retryDelay = delay

	return b
}

// WithRetryWaitMax caps the backoff interval.
func (b ConfigBuilder) WithRetryWaitMax(cap time.Duration) ConfigBuilder {
	b.retryWaitMax = cap

	return b
}

// WithUserAgent overrides the User-Agent header.
func (b ConfigBuilder) WithUserAgent(userAgent string) ConfigBuilder {
	b.userAgent = userAgent

	return b
}

// WithTestMode toggles test mode.
func (b ConfigBuilder) WithTestMode(enabled bool) ConfigBuilder {
	b.testMode = enabled

	return b
}

// WithDebug toggles verbose HTTP logging.
func (b ConfigBuilder) WithDebug(enabled bool) ConfigBuilder {
	b.debug = enabled

	return b
}

// WithLogger sets the structured logger used by the HTTP layer.
func (b ConfigBuilder) WithLogger(logger Logger) ConfigBuilder {
	b.logger = logger

	return b
}

// Build validates every field and returns the immutable Config. On failure
// it returns a single configuration_error naming all invalid fields. Build
// performs no network I/O.
func (b ConfigBuilder) Build() (*Config, error) {
	var problems []string

	if b.apiKey == "" {
		problems = append(problems, ErrAPIKeyRequired.Error())
	}

	if b.timeout <= 0 {
		problems = append(problems, ErrTimeoutNotPositive.Error())
	}

	if b.maxRetries < 0 || b.maxRetries > constants.MaxRetryLimit {
		problems = append(problems, ErrMaxRetriesOutOfRange.Error())
	}

	if b.retryDelay <= 0 {
		problems = append(problems, ErrRetryDelayNotPositive.Error())
	}

	if parsed, err := url.Parse(b.baseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("%s: %q", ErrBaseURLInvalid.Error(), b.baseURL))
	}

	if len(problems) > 0 {
		return nil, NewError(ErrorKindConfiguration, strings.Join(problems, "; "))
	}

	retryWaitMax := b.retryWaitMax
	if retryWaitMax <= 0 {
		retryWaitMax = constants.DefaultRetryWaitMax
	}

	return &Config{
		APIKey:       b.apiKey,
		BaseURL:      strings.TrimRight(b.baseURL, "/"),
		Timeout:      b.timeout,
		MaxRetries:   b.maxRetries,
		RetryDelay:   b.retryDelay,
		RetryWaitMax: retryWaitMax,
		UserAgent:    b.userAgent,
		TestMode:     b.testMode,
		Debug:        b.debug,
		Logger:       b.logger,
	}, nil
}
