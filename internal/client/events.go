package client

import (
	"context"
	"fmt"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// EventsClient implements payrex.EventsClient.
type EventsClient struct {
	httpClient *payrexhttp.Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *payrexhttp.Client) *EventsClient {
	return &EventsClient{httpClient: httpClient}
}

// Get implements payrex.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, id string) (*payrex.Event, error) {
	event, err := getResource[payrex.Event](ctx, c.httpClient, "/events/"+id)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}

	return event, nil
}

// List implements payrex.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, params *payrex.EventListParams) (*payrex.List[payrex.Event], error) {
	var query url.Values

	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}

		query = params.ToValues()
	}

	list, err := listResource[payrex.Event](ctx, c.httpClient, "/events", query)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	return list, nil
}
