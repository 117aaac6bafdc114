package client

import (
	"context"
	"fmt"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// WebhooksClient implements payrex.WebhooksClient.
type WebhooksClient struct {
	httpClient *payrexhttp.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *payrexhttp.Client) *WebhooksClient {
	return &WebhooksClient{httpClient: httpClient}
}

// Create implements payrex.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, request *payrex.WebhookCreateRequest) (*payrex.Webhook, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "create request is required")
	}

	webhook, err := createResource[payrex.Webhook](ctx, c.httpClient, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return webhook, nil
}

// Get implements payrex.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, id string) (*payrex.Webhook, error) {
	webhook, err := getResource[payrex.Webhook](ctx, c.httpClient, "/webhooks/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return webhook, nil
}

// Update implements payrex.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, id string, request *payrex.WebhookUpdateRequest) (*payrex.Webhook, error) {
	if request == nil {
		return nil, payrex.NewError(payrex.ErrorKindValidation, "update request is required")
	}

	webhook, err := putResource[payrex.Webhook](ctx, c.httpClient, "/webhooks/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	return webhook, nil
}

// List implements payrex.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, params *payrex.WebhookListParams) (*payrex.List[payrex.Webhook], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.Webhook](ctx, c.httpClient, "/webhooks", query)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return list, nil
}

// Delete implements payrex.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, id string) error {
	if err := deleteResource(ctx, c.httpClient, "/webhooks/"+id); err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}

// Enable implements payrex.WebhooksClient.Enable.
func (c *WebhooksClient) Enable(ctx context.Context, id string) (*payrex.Webhook, error) {
	webhook, err := createResource[payrex.Webhook](ctx, c.httpClient, "/webhooks/"+id+"/enable", nil)
	if err != nil {
		return nil, fmt.Errorf("enabling webhook: %w", err)
	}

	return webhook, nil
}

// Disable implements payrex.WebhooksClient.Disable.
func (c *WebhooksClient) Disable(ctx context.Context, id string) (*payrex.Webhook, error) {
	webhook, err := createResource[payrex.Webhook](ctx, c.httpClient, "/webhooks/"+id+"/disable", nil)
	if err != nil {
		return nil, fmt.Errorf("disabling webhook: %w", err)
	}

	return webhook, nil
}
