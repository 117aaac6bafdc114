package client

import (
	"context"
	"fmt"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// CheckoutSessionsClient implements payrex.CheckoutSessionsClient.
type CheckoutSessionsClient struct {
	httpClient *payrexhttp.Client
}

// NewCheckoutSessionsClient creates a new checkout sessions client.
func NewCheckoutSessionsClient(httpClient *payrexhttp.Client) *CheckoutSessionsClient {
	return &CheckoutSessionsClient{httpClient: httpClient}
}

// Create implements payrex.CheckoutSessionsClient.Create.
func (c *CheckoutSessionsClient) Create(ctx context.Context, request *payrex.CheckoutSessionCreateRequest) (*payrex.CheckoutSession, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	session, err := createResource[payrex.CheckoutSession](ctx, c.httpClient, "/checkout_sessions", request)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	return session, nil
}

// Get implements payrex.CheckoutSessionsClient.Get.
func (c *CheckoutSessionsClient) Get(ctx context.Context, id string) (*payrex.CheckoutSession, error) {
	session, err := getResource[payrex.CheckoutSession](ctx, c.httpClient, "/checkout_sessions/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting checkout session: %w", err)
	}

	return session, nil
}

// Expire implements payrex.CheckoutSessionsClient.Expire. An expired session
// no longer accepts payments through its hosted page.
func (c *CheckoutSessionsClient) Expire(ctx context.Context, id string) (*payrex.CheckoutSession, error) {
	session, err := createResource[payrex.CheckoutSession](ctx, c.httpClient, "/checkout_sessions/"+id+"/expire", nil)
	if err != nil {
		return nil, fmt.Errorf("expiring checkout session: %w", err)
	}

	return session, nil
}
