package client

import (
	"context"
	"fmt"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// BillingStatementLineItemsClient implements payrex.BillingStatementLineItemsClient.
type BillingStatementLineItemsClient struct {
	httpClient *payrexhttp.Client
}

// NewBillingStatementLineItemsClient creates a new billing statement line
// items client.
func NewBillingStatementLineItemsClient(httpClient *payrexhttp.Client) *BillingStatementLineItemsClient {
	return &BillingStatementLineItemsClient{httpClient: httpClient}
}

// Create implements payrex.BillingStatementLineItemsClient.Create.
func (c *BillingStatementLineItemsClient) Create(ctx context.Context, request *payrex.BillingStatementLineItemCreateRequest) (*payrex.BillingStatementLineItem, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	item, err := createResource[payrex.BillingStatementLineItem](ctx, c.httpClient, "/billing_statement_line_items", request)
	if err != nil {
		return nil, fmt.Errorf("creating billing statement line item: %w", err)
	}

	return item, nil
}

// Update implements payrex.BillingStatementLineItemsClient.Update.
func (c *BillingStatementLineItemsClient) Update(ctx context.Context, id string, request *payrex.BillingStatementLineItemUpdateRequest) (*payrex.BillingStatementLineItem, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "update request is required")
	}

	item, err := putResource[payrex.BillingStatementLineItem](ctx, c.httpClient, "/billing_statement_line_items/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating billing statement line item: %w", err)
	}

	return item, nil
}

// Delete implements payrex.BillingStatementLineItemsClient.Delete.
func (c *BillingStatementLineItemsClient) Delete(ctx context.Context, id string) error {
	if err := deleteResource(ctx, c.httpClient, "/billing_statement_line_items/"+id); err != nil {
		return fmt.Errorf("deleting billing statement line item: %w", err)
	}

	return nil
}
