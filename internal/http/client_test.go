package http_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func fastRetries(max int) payrexhttp.Option {
	return payrexhttp.WithRetryConfig(max, 5*time.Millisecond, 50*time.Millisecond)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/payment_intents/pi_123", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "sk_test_abc", username)
			assert.Empty(t, password)

			writer.Header().Set("X-Request-Id", "req_42")
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "pi_123"})
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc")

		resp, err := client.Do(context.Background(), &payrexhttp.Request{
			Method: "GET",
			Path:   "/payment_intents/pi_123",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "req_42", resp.RequestID)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "pi_123", result["id"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers", request.URL.Path)
			assert.Equal(t, "limit=10", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc")

		resp, err := client.Do(context.Background(), &payrexhttp.Request{
			Method: "GET",
			Path:   "/customers",
			Query:  url.Values{"limit": []string{"10"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request body is form encoded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "10000", request.PostForm.Get("amount"))
			assert.Equal(t, "PHP", request.PostForm.Get("currency"))
			assert.Equal(t, "12345", request.PostForm.Get("metadata[order_id]"))
			assert.Equal(t, "card", request.PostForm.Get("payment_methods[0]"))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc")

		resp, err := client.Post(context.Background(), "/payment_intents",
			payrex.NewPaymentIntentCreate(10000, payrex.CurrencyPHP, payrex.PaymentMethodCard).
				WithMetadata(payrex.Metadata{"order_id": "12345"}))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response is classified", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Request-Id", "req_err")
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"errors":[{"code":"resource_missing","detail":"No such payment_intent"}]}`))
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc")

		resp, err := client.Get(context.Background(), "/payment_intents/pi_nope", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.True(t, payrex.IsNotFound(err))

		apiErr := &payrex.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "No such payment_intent", apiErr.Message)
		assert.Equal(t, "resource_missing", apiErr.Code)
		assert.Equal(t, "req_err", apiErr.RequestID)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc")

		resp, err := client.Do(context.Background(), &payrexhttp.Request{
			Method: "GET",
			Path:   "/customers",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := payrexhttp.NewClient(server.URL, "sk_test_secret",
			payrexhttp.WithLogger(logger), payrexhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/customers", nil)
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		// The credential must never reach the logs, plain or encoded.
		encoded := base64.StdEncoding.EncodeToString([]byte("sk_test_secret:"))
		raw, err := json.Marshal(logger.logs)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "sk_test_secret")
		assert.NotContains(t, string(raw), encoded)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*payrexhttp.Client, context.Context) (*payrexhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *payrexhttp.Client, ctx context.Context) (*payrexhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *payrexhttp.Client, ctx context.Context) (*payrexhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *payrexhttp.Client, ctx context.Context) (*payrexhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *payrexhttp.Client, ctx context.Context) (*payrexhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *payrexhttp.Client, ctx context.Context) (*payrexhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := payrexhttp.NewClient(server.URL, "sk_test_abc")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(3))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(3))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	})

	t.Run("backoff doubles between attempts", func(t *testing.T) {
		t.Parallel()

		var (
			mu      sync.Mutex
			arrived []time.Time
		)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			arrived = append(arrived, time.Now())
			mu.Unlock()

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		waitMin := 40 * time.Millisecond
		client := payrexhttp.NewClient(server.URL, "sk_test_abc",
			payrexhttp.WithRetryConfig(3, waitMin, time.Second))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		require.Len(t, arrived, 4)

		// DefaultBackoff sleeps waitMin * 2^n before retry n.
		gaps := []time.Duration{
			arrived[1].Sub(arrived[0]),
			arrived[2].Sub(arrived[1]),
			arrived[3].Sub(arrived[2]),
		}

		for i, gap := range gaps {
			assert.GreaterOrEqual(t, gap, waitMin<<i, "gap %d shorter than the doubled floor", i)
		}

		assert.Greater(t, gaps[1], gaps[0])
		assert.Greater(t, gaps[2], gaps[1])
	})

	t.Run("respects Retry-After hint", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		start := time.Now()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				writer.Header().Set("Retry-After", "1")
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(1))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.GreaterOrEqual(t, time.Since(start), time.Second, "hint overrides the computed backoff")
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(3))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.True(t, payrex.IsValidation(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("does not retry on authentication errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(3))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.True(t, payrex.IsAuthentication(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("exhausted retries surface the last classified error", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(2))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)

		apiErr := &payrex.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, payrex.ErrorKindServer, apiErr.Kind)
		assert.Equal(t, 503, apiErr.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts), "max retries plus the initial attempt")
	})

	t.Run("zero retries performs a single attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(0))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("connection failures map to connection_failed", func(t *testing.T) {
		t.Parallel()

		// Grab an address nothing listens on.
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		addr := server.URL
		server.Close()

		client := payrexhttp.NewClient(addr, "sk_test_abc", fastRetries(1))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)

		apiErr := &payrex.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, payrex.ErrorKindConnectionFailed, apiErr.Kind)
	})

	t.Run("idempotency key is stable across attempts", func(t *testing.T) {
		t.Parallel()

		var keys []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			keys = append(keys, request.Header.Get("Idempotency-Key"))
			if len(keys) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(3))

		_, err := client.Post(context.Background(), "/payment_intents", map[string]string{"k": "v"})
		require.NoError(t, err)

		require.Len(t, keys, 3)
		assert.NotEmpty(t, keys[0])
		assert.Equal(t, keys[0], keys[1])
		assert.Equal(t, keys[1], keys[2])
	})

	t.Run("separate logical requests use distinct idempotency keys", func(t *testing.T) {
		t.Parallel()

		var keys []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			keys = append(keys, request.Header.Get("Idempotency-Key"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc")

		_, err := client.Post(context.Background(), "/payment_intents", map[string]string{"k": "v"})
		require.NoError(t, err)
		_, err = client.Post(context.Background(), "/payment_intents", map[string]string{"k": "v"})
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("caller-pinned key wins over the generated one", func(t *testing.T) {
		t.Parallel()

		var keys []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			keys = append(keys, request.Header.Get("Idempotency-Key"))
			if len(keys) < 2 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc", fastRetries(3))

		body := payrex.NewCustomerCreate().
			WithName("Juan dela Cruz").
			WithIdempotencyKey("cust-signup-7f3a")

		_, err := client.Post(context.Background(), "/customers", body)
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.Equal(t, "cust-signup-7f3a", keys[0])
		assert.Equal(t, "cust-signup-7f3a", keys[1])
	})
}

func TestClient_ContextHandling(t *testing.T) {
	t.Parallel()

	t.Run("cancellation wins over retries", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())

		client := payrexhttp.NewClient(server.URL, "sk_test_abc",
			payrexhttp.WithRetryConfig(5, 200*time.Millisecond, time.Second))

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		_, err := client.Get(ctx, "/test", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, atomic.LoadInt32(&attempts), int32(6), "cancellation stops the retry loop early")
	})

	t.Run("per-attempt timeout maps to timeout kind", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(300 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := payrexhttp.NewClient(server.URL, "sk_test_abc",
			payrexhttp.WithTimeout(50*time.Millisecond), fastRetries(0))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.True(t, payrex.IsTimeout(err))
	})
}
