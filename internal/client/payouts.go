package client

import (
	"context"
	"fmt"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// PayoutsClient implements payrex.PayoutsClient.
type PayoutsClient struct {
	httpClient *payrexhttp.Client
}

// NewPayoutsClient creates a new payouts client.
func NewPayoutsClient(httpClient *payrexhttp.Client) *PayoutsClient {
	return &PayoutsClient{httpClient: httpClient}
}

// Get implements payrex.PayoutsClient.Get.
func (c *PayoutsClient) Get(ctx context.Context, id string) (*payrex.Payout, error) {
	payout, err := getResource[payrex.Payout](ctx, c.httpClient, "/payouts/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting payout: %w", err)
	}

	return payout, nil
}

// List implements payrex.PayoutsClient.List.
func (c *PayoutsClient) List(ctx context.Context, params *payrex.ListParams) (*payrex.List[payrex.Payout], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.Payout](ctx, c.httpClient, "/payouts", query)
	if err != nil {
		return nil, fmt.Errorf("listing payouts: %w", err)
	}

	return list, nil
}

// ListTransactions implements payrex.PayoutsClient.ListTransactions.
func (c *PayoutsClient) ListTransactions(ctx context.Context, id string, params *payrex.ListParams) (*payrex.List[payrex.PayoutTransaction], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.PayoutTransaction](ctx, c.httpClient, "/payouts/"+id+"/transactions", query)
	if err != nil {
		return nil, fmt.Errorf("listing payout transactions: %w", err)
	}

	return list, nil
}
