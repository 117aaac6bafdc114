package client

import (
	"context"
	"fmt"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// BillingStatementsClient implements payrex.BillingStatementsClient.
type BillingStatementsClient struct {
	httpClient *payrexhttp.Client
}

// NewBillingStatementsClient creates a new billing statements client.
func NewBillingStatementsClient(httpClient *payrexhttp.Client) *BillingStatementsClient {
	return &BillingStatementsClient{httpClient: httpClient}
}

// Create implements payrex.BillingStatementsClient.Create.
func (c *BillingStatementsClient) Create(ctx context.Context, request *payrex.BillingStatementCreateRequest) (*payrex.BillingStatement, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	statement, err := createResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements", request)
	if err != nil {
		return nil, fmt.Errorf("creating billing statement: %w", err)
	}

	return statement, nil
}

// Get implements payrex.BillingStatementsClient.Get.
func (c *BillingStatementsClient) Get(ctx context.Context, id string) (*payrex.BillingStatement, error) {
	statement, err := getResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting billing statement: %w", err)
	}

	return statement, nil
}

// Update implements payrex.BillingStatementsClient.Update.
func (c *BillingStatementsClient) Update(ctx context.Context, id string, request *payrex.BillingStatementUpdateRequest) (*payrex.BillingStatement, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "update request is required")
	}

	statement, err := putResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating billing statement: %w", err)
	}

	return statement, nil
}

// List implements payrex.BillingStatementsClient.List.
func (c *BillingStatementsClient) List(ctx context.Context, params *payrex.ListParams) (*payrex.List[payrex.BillingStatement], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements", query)
	if err != nil {
		return nil, fmt.Errorf("listing billing statements: %w", err)
	}

	return list, nil
}

// Delete implements payrex.BillingStatementsClient.Delete. Only draft
// statements can be deleted.
func (c *BillingStatementsClient) Delete(ctx context.Context, id string) error {
	if err := deleteResource(ctx, c.httpClient, "/billing_statements/"+id); err != nil {
		return fmt.Errorf("deleting billing statement: %w", err)
	}

	return nil
}

// Finalize implements payrex.BillingStatementsClient.Finalize. It moves a
// draft statement to open so the customer can pay it.
func (c *BillingStatementsClient) Finalize(ctx context.Context, id string) (*payrex.BillingStatement, error) {
	statement, err := createResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements/"+id+"/finalize", nil)
	if err != nil {
		return nil, fmt.Errorf("finalizing billing statement: %w", err)
	}

	return statement, nil
}

// Send implements payrex.BillingStatementsClient.Send. It emails the
// statement to the customer.
func (c *BillingStatementsClient) Send(ctx context.Context, id string) (*payrex.BillingStatement, error) {
	statement, err := createResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements/"+id+"/send", nil)
	if err != nil {
		return nil, fmt.Errorf("sending billing statement: %w", err)
	}

	return statement, nil
}

// Void implements payrex.BillingStatementsClient.Void.
func (c *BillingStatementsClient) Void(ctx context.Context, id string) (*payrex.BillingStatement, error) {
	statement, err := createResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements/"+id+"/void", nil)
	if err != nil {
		return nil, fmt.Errorf("voiding billing statement: %w", err)
	}

	return statement, nil
}

// MarkUncollectible implements payrex.BillingStatementsClient.MarkUncollectible.
func (c *BillingStatementsClient) MarkUncollectible(ctx context.Context, id string) (*payrex.BillingStatement, error) {
	statement, err := createResource[payrex.BillingStatement](ctx, c.httpClient, "/billing_statements/"+id+"/mark_uncollectible", nil)
	if err != nil {
		return nil, fmt.Errorf("marking billing statement uncollectible: %w", err)
	}

	return statement, nil
}
