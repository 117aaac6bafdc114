package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundsClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/refunds", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "pay_abc123", r.PostForm.Get("payment_id"))
		assert.Equal(t, "50000", r.PostForm.Get("amount"))
		assert.Equal(t, "requested_by_customer", r.PostForm.Get("reason"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         "ref_abc123",
			"payment_id": "pay_abc123",
			"amount":     50000,
			"currency":   "PHP",
			"status":     "succeeded",
			"reason":     "requested_by_customer",
		})
	})

	refund, err := client.Refunds().Create(context.Background(),
		payrex.NewRefundCreate("pay_abc123", 50000, payrex.CurrencyPHP, payrex.RefundReasonRequestedByCustomer))
	require.NoError(t, err)
	assert.Equal(t, "ref_abc123", refund.ID)
	assert.Equal(t, payrex.RefundStatusSucceeded, refund.Status)
}

func TestRefundsClient_Create_Invalid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	refund, err := client.Refunds().Create(context.Background(),
		payrex.NewRefundCreate("", 50000, payrex.CurrencyPHP, payrex.RefundReasonRequestedByCustomer))
	assert.Nil(t, refund)
	require.Error(t, err)
	assert.True(t, payrex.IsValidation(err))
}

func TestRefundsClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/refunds/ref_abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "ref_abc123",
			"status": "succeeded",
		})
	})

	refund, err := client.Refunds().Get(context.Background(), "ref_abc123")
	require.NoError(t, err)
	assert.Equal(t, "ref_abc123", refund.ID)
}

func TestRefundsClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/refunds/ref_abc123", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "tx_99", r.PostForm.Get("metadata[ticket]"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "ref_abc123",
			"metadata": map[string]string{"ticket": "tx_99"},
		})
	})

	refund, err := client.Refunds().Update(context.Background(), "ref_abc123",
		payrex.NewRefundUpdate().WithMetadata(payrex.Metadata{"ticket": "tx_99"}))
	require.NoError(t, err)
	assert.Equal(t, "tx_99", refund.Metadata["ticket"])
}
