package client

import (
	"context"
	"fmt"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// RefundsClient implements payrex.RefundsClient.
type RefundsClient struct {
	httpClient *payrexhttp.Client
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *payrexhttp.Client) *RefundsClient {
	return &RefundsClient{httpClient: httpClient}
}

// Create implements payrex.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, request *payrex.RefundCreateRequest) (*payrex.Refund, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	refund, err := createResource[payrex.Refund](ctx, c.httpClient, "/refunds", request)
	if err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	return refund, nil
}

// Get implements payrex.RefundsClient.Get.
func (c *RefundsClient) Get(ctx context.Context, id string) (*payrex.Refund, error) {
	refund, err := getResource[payrex.Refund](ctx, c.httpClient, "/refunds/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting refund: %w", err)
	}

	return refund, nil
}

// Update implements payrex.RefundsClient.Update.
func (c *RefundsClient) Update(ctx context.Context, id string, request *payrex.RefundUpdateRequest) (*payrex.Refund, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "update request is required")
	}

	refund, err := putResource[payrex.Refund](ctx, c.httpClient, "/refunds/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating refund: %w", err)
	}

	return refund, nil
}
