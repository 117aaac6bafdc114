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

func TestBillingStatementsClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/billing_statements", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cus_abc123", r.PostForm.Get("customer_id"))
		assert.Equal(t, "PHP", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_settings[payment_methods][0]"))
		assert.Equal(t, "gcash", r.PostForm.Get("payment_settings[payment_methods][1]"))
		assert.Equal(t, "Consulting services", r.PostForm.Get("description"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "bstm_abc123",
			"amount":      0,
			"currency":    "PHP",
			"customer_id": "cus_abc123",
			"status":      "draft",
			"payment_settings": map[string]interface{}{
				"payment_methods": []string{"card", "gcash"},
			},
			"livemode":   false,
			"created_at": 1704067200,
			"updated_at": 1704067200,
		})
	})

	request := payrex.NewBillingStatementCreate("cus_abc123", payrex.CurrencyPHP).
		WithPaymentSettings(payrex.PaymentSettings{
			PaymentMethods: []payrex.PaymentMethodType{payrex.PaymentMethodCard, payrex.PaymentMethodGCash},
		}).
		WithDescription("Consulting services")

	statement, err := client.BillingStatements().Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "bstm_abc123", statement.ID)
	assert.Equal(t, payrex.BillingStatementStatusDraft, statement.Status)
	assert.Equal(t, "cus_abc123", statement.CustomerID)
}

func TestBillingStatementsClient_Create_RequiresCustomer(t *testing.T) {
	called := false

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	request := payrex.NewBillingStatementCreate("", payrex.CurrencyPHP)

	_, err := client.BillingStatements().Create(context.Background(), request)
	require.Error(t, err)
	assert.True(t, payrex.IsValidation(err))
	assert.False(t, called, "invalid request must not reach the API")
}

func TestBillingStatementsClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/billing_statements/bstm_abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":                    "bstm_abc123",
			"amount":                30000,
			"currency":              "PHP",
			"customer_id":           "cus_abc123",
			"status":                "open",
			"billing_statement_url": "https://pay.payrexhq.com/bstm_abc123",
			"line_items": []map[string]interface{}{
				{
					"id":                   "bstm_li_1",
					"description":          "Consulting",
					"unit_price":           15000,
					"quantity":             2,
					"billing_statement_id": "bstm_abc123",
				},
			},
			"payment_settings": map[string]interface{}{
				"payment_methods": []string{"card"},
			},
		})
	})

	statement, err := client.BillingStatements().Get(context.Background(), "bstm_abc123")
	require.NoError(t, err)
	assert.Equal(t, payrex.BillingStatementStatusOpen, statement.Status)
	assert.Equal(t, "https://pay.payrexhq.com/bstm_abc123", statement.URL)
	require.Len(t, statement.LineItems, 1)
	assert.Equal(t, int64(15000), statement.LineItems[0].UnitPrice)
	assert.Equal(t, int64(2), statement.LineItems[0].Quantity)
}

func TestBillingStatementsClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/billing_statements/bstm_abc123", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Updated invoice", r.PostForm.Get("description"))
		assert.Equal(t, "1706745600", r.PostForm.Get("due_at"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "bstm_abc123",
			"description": "Updated invoice",
			"due_at":      1706745600,
			"status":      "draft",
		})
	})

	request := payrex.NewBillingStatementUpdate().
		WithDescription("Updated invoice").
		WithDueAt(payrex.Timestamp(1706745600))

	statement, err := client.BillingStatements().Update(context.Background(), "bstm_abc123", request)
	require.NoError(t, err)
	assert.Equal(t, "Updated invoice", statement.Description)
	require.NotNil(t, statement.DueAt)
	assert.Equal(t, payrex.Timestamp(1706745600), *statement.DueAt)
}

func TestBillingStatementsClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/billing_statements", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"object": "list",
			"data": []map[string]interface{}{
				{"id": "bstm_1", "status": "open"},
				{"id": "bstm_2", "status": "paid"},
			},
			"has_more": false,
		})
	})

	params := &payrex.ListParams{Limit: 5}

	list, err := client.BillingStatements().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "bstm_1", list.Data[0].ID)
	assert.False(t, list.HasMore)
}

func TestBillingStatementsClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/billing_statements/bstm_abc123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	err := client.BillingStatements().Delete(context.Background(), "bstm_abc123")
	require.NoError(t, err)
}

func TestBillingStatementsClient_LifecycleActions(t *testing.T) {
	actions := []struct {
		name   string
		path   string
		status payrex.BillingStatementStatus
		call   func(client *Client) (*payrex.BillingStatement, error)
	}{
		{
			name:   "finalize",
			path:   "/billing_statements/bstm_abc123/finalize",
			status: payrex.BillingStatementStatusOpen,
			call: func(client *Client) (*payrex.BillingStatement, error) {
				return client.BillingStatements().Finalize(context.Background(), "bstm_abc123")
			},
		},
		{
			name:   "send",
			path:   "/billing_statements/bstm_abc123/send",
			status: payrex.BillingStatementStatusOpen,
			call: func(client *Client) (*payrex.BillingStatement, error) {
				return client.BillingStatements().Send(context.Background(), "bstm_abc123")
			},
		},
		{
			name:   "void",
			path:   "/billing_statements/bstm_abc123/void",
			status: payrex.BillingStatementStatusVoid,
			call: func(client *Client) (*payrex.BillingStatement, error) {
				return client.BillingStatements().Void(context.Background(), "bstm_abc123")
			},
		},
		{
			name:   "mark uncollectible",
			path:   "/billing_statements/bstm_abc123/mark_uncollectible",
			status: payrex.BillingStatementStatusUncollectible,
			call: func(client *Client) (*payrex.BillingStatement, error) {
				return client.BillingStatements().MarkUncollectible(context.Background(), "bstm_abc123")
			},
		},
	}

	for _, action := range actions {
		t.Run(action.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, action.path, r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"id":     "bstm_abc123",
					"status": string(action.status),
				})
			})

			statement, err := action.call(client)
			require.NoError(t, err)
			assert.Equal(t, action.status, statement.Status)
		})
	}
}
