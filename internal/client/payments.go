package client

import (
	"context"
	"fmt"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// PaymentsClient implements payrex.PaymentsClient.
type PaymentsClient struct {
	httpClient *payrexhttp.Client
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *payrexhttp.Client) *PaymentsClient {
	return &PaymentsClient{httpClient: httpClient}
}

// Get implements payrex.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id string) (*payrex.Payment, error) {
	payment, err := getResource[payrex.Payment](ctx, c.httpClient, "/payments/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return payment, nil
}

// Update implements payrex.PaymentsClient.Update.
func (c *PaymentsClient) Update(ctx context.Context, id string, request *payrex.PaymentUpdateRequest) (*payrex.Payment, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "update request is required")
	}

	payment, err := patchResource[payrex.Payment](ctx, c.httpClient, "/payments/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	return payment, nil
}

// List implements payrex.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context, params *payrex.PaymentListParams) (*payrex.List[payrex.Payment], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.Payment](ctx, c.httpClient, "/payments", query)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return list, nil
}
