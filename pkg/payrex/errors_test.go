package payrex

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "kind and message only",
			err:      NewError(ErrorKindValidation, "amount is too small"),
			expected: "validation_error: amount is too small",
		},
		{
			name: "all fields",
			err: &Error{
				Kind:       ErrorKindNotFound,
				Message:    "No such payment_intent",
				Code:       "resource_missing",
				StatusCode: 404,
				RequestID:  "req_123",
			},
			expected: "not_found: No such payment_intent (code: resource_missing) (status: 404) (request id: req_123)",
		},
		{
			name:     "empty message falls back to kind",
			err:      NewError(ErrorKindServer, ""),
			expected: "server_error: server_error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := WrapError(ErrorKindConnectionFailed, "dialing api.payrexhq.com", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorKindConnectionFailed, err.Kind)
}

func TestErrorKind_Retryable(t *testing.T) {
	t.Parallel()

	retryable := []ErrorKind{
		ErrorKindTimeout,
		ErrorKindConnectionFailed,
		ErrorKindTLSFailed,
		ErrorKindRateLimit,
		ErrorKindServer,
	}
	for _, kind := range retryable {
		assert.True(t, kind.Retryable(), "expected %s to be retryable", kind)
	}

	terminal := []ErrorKind{
		ErrorKindConfiguration,
		ErrorKindAuthentication,
		ErrorKindValidation,
		ErrorKindNotFound,
		ErrorKindDecoding,
		ErrorKindUnknown,
	}
	for _, kind := range terminal {
		assert.False(t, kind.Retryable(), "expected %s not to be retryable", kind)
	}
}

func TestKindFromStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		expected ErrorKind
	}{
		{http.StatusBadRequest, ErrorKindValidation},
		{http.StatusUnprocessableEntity, ErrorKindValidation},
		{http.StatusUnauthorized, ErrorKindAuthentication},
		{http.StatusForbidden, ErrorKindAuthentication},
		{http.StatusNotFound, ErrorKindNotFound},
		{http.StatusTooManyRequests, ErrorKindRateLimit},
		{http.StatusInternalServerError, ErrorKindServer},
		{http.StatusBadGateway, ErrorKindServer},
		{http.StatusServiceUnavailable, ErrorKindServer},
		{http.StatusTeapot, ErrorKindUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, KindFromStatus(tt.status))
		})
	}
}

func TestParseErrorBody(t *testing.T) {
	t.Parallel()

	t.Run("structured envelope", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors":[{"code":"parameter_invalid","detail":"Amount is below the minimum.","parameter":"amount"}]}`)

		err := ParseErrorBody(http.StatusBadRequest, body)
		assert.Equal(t, ErrorKindValidation, err.Kind)
		assert.Equal(t, "Amount is below the minimum.", err.Message)
		assert.Equal(t, "parameter_invalid", err.Code)
		assert.Equal(t, "amount", err.Param)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	})

	t.Run("flat code and message", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"code":"authentication_failed","message":"Invalid API key provided."}`)

		err := ParseErrorBody(http.StatusUnauthorized, body)
		assert.Equal(t, ErrorKindAuthentication, err.Kind)
		assert.Equal(t, "Invalid API key provided.", err.Message)
		assert.Equal(t, "authentication_failed", err.Code)
	})

	t.Run("empty body degrades to status text", func(t *testing.T) {
		t.Parallel()

		err := ParseErrorBody(http.StatusServiceUnavailable, nil)
		assert.Equal(t, ErrorKindServer, err.Kind)
		assert.Equal(t, "Service Unavailable", err.Message)
	})

	t.Run("malformed body keeps status classification", func(t *testing.T) {
		t.Parallel()

		err := ParseErrorBody(http.StatusNotFound, []byte("<html>nope</html>"))
		assert.Equal(t, ErrorKindNotFound, err.Kind)
		assert.Equal(t, "Not Found", err.Message)
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		predicate func(error) bool
		err       error
		expected  bool
	}{
		{"authentication match", IsAuthentication, NewError(ErrorKindAuthentication, "bad key"), true},
		{"authentication mismatch", IsAuthentication, NewError(ErrorKindValidation, "bad param"), false},
		{"validation match", IsValidation, NewError(ErrorKindValidation, "bad param"), true},
		{"not found match", IsNotFound, NewError(ErrorKindNotFound, "missing"), true},
		{"rate limit match", IsRateLimit, NewError(ErrorKindRateLimit, "slow down"), true},
		{"timeout match", IsTimeout, NewError(ErrorKindTimeout, "deadline"), true},
		{"decoding match", IsDecoding, NewError(ErrorKindDecoding, "bad json"), true},
		{"configuration match", IsConfiguration, NewError(ErrorKindConfiguration, "no key"), true},
		{"wrapped error still matches", IsNotFound, fmt.Errorf("getting customer: %w", NewError(ErrorKindNotFound, "missing")), true},
		{"plain error never matches", IsValidation, errors.New("boom"), false},
		{"nil never matches", IsValidation, nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.predicate(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(NewError(ErrorKindServer, "boom")))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", NewError(ErrorKindRateLimit, "throttled"))))
	assert.False(t, IsRetryable(NewError(ErrorKindValidation, "bad")))
	assert.False(t, IsRetryable(errors.New("not ours")))
}

func TestResponseError_FirstError(t *testing.T) {
	t.Parallel()

	t.Run("with errors", func(t *testing.T) {
		t.Parallel()

		response := &ResponseError{
			Errors: []APIError{
				{Code: "parameter_invalid", Detail: "Amount too small", Parameter: "amount"},
				{Code: "parameter_missing", Detail: "Currency required", Parameter: "currency"},
			},
		}

		first := response.FirstError()
		require.NotNil(t, first)
		assert.Equal(t, "parameter_invalid", first.Code)
	})

	t.Run("without errors", func(t *testing.T) {
		t.Parallel()

		response := &ResponseError{}
		assert.Nil(t, response.FirstError())
	})
}
