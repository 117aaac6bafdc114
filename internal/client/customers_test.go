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

func TestCustomersClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/customers", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Juan dela Cruz", r.PostForm.Get("name"))
		assert.Equal(t, "juan@example.com", r.PostForm.Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         "cus_abc123",
			"name":       "Juan dela Cruz",
			"email":      "juan@example.com",
			"currency":   "PHP",
			"livemode":   false,
			"created_at": 1704067200,
		})
	})

	customer, err := client.Customers().Create(context.Background(),
		payrex.NewCustomerCreate().WithName("Juan dela Cruz").WithEmail("juan@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "cus_abc123", customer.ID)
	assert.Equal(t, "Juan dela Cruz", customer.Name)
}

func TestCustomersClient_Create_RequiresNameOrEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	customer, err := client.Customers().Create(context.Background(), payrex.NewCustomerCreate())
	assert.Nil(t, customer)
	require.Error(t, err)
	assert.True(t, payrex.IsValidation(err))
}

func TestCustomersClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/customers/cus_abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   "cus_abc123",
			"name": "Juan dela Cruz",
		})
	})

	customer, err := client.Customers().Get(context.Background(), "cus_abc123")
	require.NoError(t, err)
	assert.Equal(t, "cus_abc123", customer.ID)
}

func TestCustomersClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/customers/cus_abc123", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "maria@example.com", r.PostForm.Get("email"))
		assert.Empty(t, r.PostForm.Get("name"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "cus_abc123",
			"email": "maria@example.com",
		})
	})

	customer, err := client.Customers().Update(context.Background(), "cus_abc123",
		payrex.NewCustomerUpdate().WithEmail("maria@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", customer.Email)
}

func TestCustomersClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "juan@example.com", r.URL.Query().Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"object":   "list",
			"data":     []map[string]interface{}{{"id": "cus_abc123"}},
			"has_more": false,
		})
	})

	params := &payrex.CustomerListParams{Email: "juan@example.com"}
	params.Limit = 10

	list, err := client.Customers().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "cus_abc123", list.Data[0].ID)
	assert.False(t, list.HasMore)
}

func TestCustomersClient_List_InvalidLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	params := &payrex.CustomerListParams{}
	params.Limit = 101

	list, err := client.Customers().List(context.Background(), params)
	assert.Nil(t, list)
	require.Error(t, err)
	assert.True(t, payrex.IsValidation(err))
}

func TestCustomersClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/customers/cus_abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cus_abc123","deleted":true}`))
	})

	err := client.Customers().Delete(context.Background(), "cus_abc123")
	require.NoError(t, err)
}
