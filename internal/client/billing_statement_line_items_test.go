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

func TestBillingStatementLineItemsClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/billing_statement_line_items", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "bstm_abc123", r.PostForm.Get("billing_statement_id"))
		assert.Equal(t, "Consulting", r.PostForm.Get("description"))
		assert.Equal(t, "15000", r.PostForm.Get("unit_price"))
		assert.Equal(t, "2", r.PostForm.Get("quantity"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":                   "bstm_li_1",
			"description":          "Consulting",
			"unit_price":           15000,
			"quantity":             2,
			"billing_statement_id": "bstm_abc123",
			"livemode":             false,
			"created_at":           1704067200,
		})
	})

	request := payrex.NewBillingStatementLineItemCreate("bstm_abc123", "Consulting", 15000, 2)

	item, err := client.BillingStatementLineItems().Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "bstm_li_1", item.ID)
	assert.Equal(t, int64(15000), item.UnitPrice)
	assert.Equal(t, "bstm_abc123", item.BillingStatementID)
}

func TestBillingStatementLineItemsClient_Create_Invalid(t *testing.T) {
	called := false

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name    string
		request *payrex.BillingStatementLineItemCreateRequest
	}{
		{"missing statement", payrex.NewBillingStatementLineItemCreate("", "Consulting", 15000, 2)},
		{"missing description", payrex.NewBillingStatementLineItemCreate("bstm_abc123", "", 15000, 2)},
		{"zero unit price", payrex.NewBillingStatementLineItemCreate("bstm_abc123", "Consulting", 0, 2)},
		{"zero quantity", payrex.NewBillingStatementLineItemCreate("bstm_abc123", "Consulting", 15000, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.BillingStatementLineItems().Create(context.Background(), tc.request)
			require.Error(t, err)
			assert.True(t, payrex.IsValidation(err))
		})
	}

	assert.False(t, called, "invalid requests must not reach the API")
}

func TestBillingStatementLineItemsClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/billing_statement_line_items/bstm_li_1", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "18000", r.PostForm.Get("unit_price"))
		assert.Equal(t, "3", r.PostForm.Get("quantity"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         "bstm_li_1",
			"unit_price": 18000,
			"quantity":   3,
		})
	})

	request := payrex.NewBillingStatementLineItemUpdate().
		WithUnitPrice(18000).
		WithQuantity(3)

	item, err := client.BillingStatementLineItems().Update(context.Background(), "bstm_li_1", request)
	require.NoError(t, err)
	assert.Equal(t, int64(18000), item.UnitPrice)
	assert.Equal(t, int64(3), item.Quantity)
}

func TestBillingStatementLineItemsClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/billing_statement_line_items/bstm_li_1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	err := client.BillingStatementLineItems().Delete(context.Background(), "bstm_li_1")
	require.NoError(t, err)
}
