package client

import (
	"context"
	"fmt"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// PaymentIntentsClient implements payrex.PaymentIntentsClient.
type PaymentIntentsClient struct {
	httpClient *payrexhttp.Client
}

// NewPaymentIntentsClient creates a new payment intents client.
func NewPaymentIntentsClient(httpClient *payrexhttp.Client) *PaymentIntentsClient {
	return &PaymentIntentsClient{httpClient: httpClient}
}

// Create implements payrex.PaymentIntentsClient.Create.
func (c *PaymentIntentsClient) Create(ctx context.Context, request *payrex.PaymentIntentCreateRequest) (*payrex.PaymentIntent, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	intent, err := createResource[payrex.PaymentIntent](ctx, c.httpClient, "/payment_intents", request)
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}

	return intent, nil
}

// Get implements payrex.PaymentIntentsClient.Get.
func (c *PaymentIntentsClient) Get(ctx context.Context, id string) (*payrex.PaymentIntent, error) {
	intent, err := getResource[payrex.PaymentIntent](ctx, c.httpClient, "/payment_intents/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting payment intent: %w", err)
	}

	return intent, nil
}

// Cancel implements payrex.PaymentIntentsClient.Cancel. A cancelled intent
// can no longer be paid by the customer.
func (c *PaymentIntentsClient) Cancel(ctx context.Context, id string) (*payrex.PaymentIntent, error) {
	intent, err := createResource[payrex.PaymentIntent](ctx, c.httpClient, "/payment_intents/"+id+"/cancel", nil)
	if err != nil {
		return nil, fmt.Errorf("cancelling payment intent: %w", err)
	}

	return intent, nil
}

// Capture implements payrex.PaymentIntentsClient.Capture.
func (c *PaymentIntentsClient) Capture(ctx context.Context, id string, request *payrex.PaymentIntentCaptureRequest) (*payrex.PaymentIntent, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "capture request is required")
	}

	intent, err := createResource[payrex.PaymentIntent](ctx, c.httpClient, "/payment_intents/"+id+"/capture", request)
	if err != nil {
		return nil, fmt.Errorf("capturing payment intent: %w", err)
	}

	return intent, nil
}
