package client

import (
	"context"
	"fmt"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// CustomersClient implements payrex.CustomersClient.
type CustomersClient struct {
	httpClient *payrexhttp.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *payrexhttp.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// Create implements payrex.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *payrex.CustomerCreateRequest) (*payrex.Customer, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	customer, err := createResource[payrex.Customer](ctx, c.httpClient, "/customers", request)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return customer, nil
}

// Get implements payrex.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) (*payrex.Customer, error) {
	customer, err := getResource[payrex.Customer](ctx, c.httpClient, "/customers/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return customer, nil
}

// Update implements payrex.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, request *payrex.CustomerUpdateRequest) (*payrex.Customer, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "update request is required")
	}

	customer, err := patchResource[payrex.Customer](ctx, c.httpClient, "/customers/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return customer, nil
}

// List implements payrex.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *payrex.CustomerListParams) (*payrex.List[payrex.Customer], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.Customer](ctx, c.httpClient, "/customers", query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return list, nil
}

// Delete implements payrex.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) error {
	if err := deleteResource(ctx, c.httpClient, "/customers/"+id); err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}
