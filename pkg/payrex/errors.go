package payrex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorKind identifies one member of the closed error taxonomy. Every error
// the SDK returns to a caller carries exactly one kind.
type ErrorKind string

const (
	// ErrorKindConfiguration indicates invalid client setup; raised before any
	// network activity.
	ErrorKindConfiguration ErrorKind = "configuration_error"

	// ErrorKindTimeout indicates the configured request timeout elapsed.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindConnectionFailed indicates the transport could not reach the
	// provider (connection refused, DNS failure).
	ErrorKindConnectionFailed ErrorKind = "connection_failed"

	// ErrorKindTLSFailed indicates the TLS handshake with the provider failed.
	ErrorKindTLSFailed ErrorKind = "tls_failed"

	// ErrorKindAuthentication indicates a bad, expired, or under-privileged
	// credential (HTTP 401/403).
	ErrorKindAuthentication ErrorKind = "authentication_error"

	// ErrorKindValidation indicates the provider rejected the request as
	// malformed (HTTP 400/422).
	ErrorKindValidation ErrorKind = "validation_error"

	// ErrorKindNotFound indicates the referenced resource does not exist (HTTP 404).
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindRateLimit indicates the provider throttled the request (HTTP 429).
	ErrorKindRateLimit ErrorKind = "rate_limit"

	// ErrorKindServer indicates a provider-side fault (HTTP 5xx).
	ErrorKindServer ErrorKind = "server_error"

	// ErrorKindDecoding indicates a 2xx response body did not match the
	// expected schema.
	ErrorKindDecoding ErrorKind = "decoding_error"

	// ErrorKindUnknown is the conservative fallback for unrecognized statuses.
	ErrorKindUnknown ErrorKind = "unknown_error"
)

// Retryable reports whether an error of this kind may be retried.
func (k ErrorKind) Retryable() bool {
	switch k {
	case ErrorKindTimeout, ErrorKindConnectionFailed, ErrorKindTLSFailed,
		ErrorKindRateLimit, ErrorKindServer:
		return true
	default:
		return false
	}
}

// Error is the single error type returned by the SDK. Message is always set;
// the remaining fields are populated when the provider supplied them.
type Error struct {
	Kind       ErrorKind
	Message    string
	Code       string
	Param      string
	StatusCode int
	RequestID  string
	RetryAfter time.Duration
	cause      error
}

// NewError creates an Error of the given kind. Message is mandatory; an empty
// message is replaced by the kind name so no error ever surfaces without one.
func NewError(kind ErrorKind, message string) *Error {
	if message == "" {
		message = string(kind)
	}

	return &Error{Kind: kind, Message: message}
}

// WrapError creates an Error of the given kind wrapping an underlying cause.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	err := NewError(kind, message)
	err.cause = cause

	return err
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Code != "" {
		fmt.Fprintf(&b, " (code: %s)", e.Code)
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status: %d)", e.StatusCode)
	}

	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request id: %s)", e.RequestID)
	}

	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the dispatcher may retry the failed attempt.
func (e *Error) Retryable() bool {
	return e.Kind.Retryable()
}

// APIError is one entry of the provider's structured error body.
type APIError struct {
	Code      string `json:"code"`
	Detail    string `json:"detail"`
	Parameter string `json:"parameter,omitempty"`
}

// ResponseError is the provider's error envelope. Some endpoints return a
// flat {code, message} object instead; ParseErrorBody handles both.
type ResponseError struct {
	Errors []APIError `json:"errors"`
}

// FirstError returns the first error of the envelope or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// KindFromStatus maps an HTTP status code to an error kind. Body-derived
// refinement happens afterwards; status is always classified first.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrorKindValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrorKindAuthentication
	case status == http.StatusNotFound:
		return ErrorKindNotFound
	case status == http.StatusTooManyRequests:
		return ErrorKindRateLimit
	case status >= 500 && status <= 599:
		return ErrorKindServer
	default:
		return ErrorKindUnknown
	}
}

// ParseErrorBody builds an Error from a non-2xx response. The status code
// decides the kind; a parseable body refines the message, provider code and
// parameter. Absent or malformed bodies degrade to status-only classification.
func ParseErrorBody(status int, body []byte) *Error {
	err := NewError(KindFromStatus(status), http.StatusText(status))
	err.StatusCode = status

	if len(body) == 0 {
		return err
	}

	var envelope ResponseError
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil {
		if first := envelope.FirstError(); first != nil {
			if first.Detail != "" {
				err.Message = first.Detail
			}

			err.Code = first.Code
			err.Param = first.Parameter

			return err
		}
	}

	// Flat {code, message} shape.
	var flat struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	if jsonErr := json.Unmarshal(body, &flat); jsonErr == nil && (flat.Code != "" || flat.Message != "") {
		if flat.Message != "" {
			err.Message = flat.Message
		}

		err.Code = flat.Code
	}

	return err
}

// Common static errors that can be wrapped with context.
var (
	ErrAPIKeyRequired        = errors.New("API key is required")
	ErrTimeoutNotPositive    = errors.New("timeout must be greater than zero")
	ErrRetryDelayNotPositive = errors.New("retry delay must be greater than zero")
	ErrMaxRetriesOutOfRange  = errors.New("max retries must be between 0 and 10")
	ErrBaseURLInvalid        = errors.New("base URL is invalid")
	ErrConfigRequired        = errors.New("config is required")
)

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return isKind(err, ErrorKindAuthentication)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return isKind(err, ErrorKindValidation)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return isKind(err, ErrorKindNotFound)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	return isKind(err, ErrorKindRateLimit)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	return isKind(err, ErrorKindTimeout)
}

// IsDecoding checks if the error is a response decoding error.
func IsDecoding(err error) bool {
	return isKind(err, ErrorKindDecoding)
}

// IsConfiguration checks if the error is a configuration error.
func IsConfiguration(err error) bool {
	return isKind(err, ErrorKindConfiguration)
}

// IsRetryable reports whether the error (or any wrapped Error) is
// retry-eligible per the dispatcher's policy.
func IsRetryable(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	return false
}

func isKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
