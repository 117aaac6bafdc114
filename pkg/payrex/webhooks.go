package payrex

import "net/url"

// WebhookStatus represents whether a webhook endpoint receives deliveries.
type WebhookStatus string

// Webhook statuses.
const (
	WebhookStatusEnabled  WebhookStatus = "enabled"
	WebhookStatusDisabled WebhookStatus = "disabled"
)

// Webhook is an endpoint registered to receive event notifications.
type Webhook struct {
	// ID is the unique identifier, prefixed with "wh_".
	ID string `json:"id" yaml:"id"`
	// SecretKey signs deliveries so you can verify their origin. Returned
	// only on creation.
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
	// Status is "enabled" or "disabled".
	Status WebhookStatus `json:"status" yaml:"status"`
	// Description is an arbitrary string attached to the webhook.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// URL receiving the event deliveries.
	URL string `json:"url" yaml:"url"`
	// Events lists the event types delivered to the endpoint.
	Events []EventType `json:"events" yaml:"events"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// WebhookCreateRequest represents a request to register a webhook endpoint.
type WebhookCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	URL         string      `json:"url"                   yaml:"url"`
	Events      []EventType `json:"events"                yaml:"events"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewWebhookCreate builds a create request with the required fields.
func NewWebhookCreate(url string, events ...EventType) *WebhookCreateRequest {
	return &WebhookCreateRequest{
		URL:    url,
		Events: events,
	}
}

// WithDescription sets the description.
func (r *WebhookCreateRequest) WithDescription(description string) *WebhookCreateRequest {
	r.Description = description

	return r
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *WebhookCreateRequest) WithIdempotencyKey(key string) *WebhookCreateRequest {
	r.IdempotencyKey = key

	return r
}

// Validate checks required fields before any request is sent.
func (r *WebhookCreateRequest) Validate() error {
	if r.URL == "" {
		return NewError(ErrorKindValidation, "url is required")
	}

	if len(r.Events) == 0 {
		return NewError(ErrorKindValidation, "at least one event type is required")
	}

	return nil
}

// WebhookUpdateRequest represents a request to update a webhook endpoint.
// Nil fields leave the attribute unchanged.
type WebhookUpdateRequest struct {
	URL         *string     `json:"url,omitempty"         yaml:"url,omitempty"`
	Events      []EventType `json:"events,omitempty"      yaml:"events,omitempty"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewWebhookUpdate builds an empty update request.
func NewWebhookUpdate() *WebhookUpdateRequest {
	return &WebhookUpdateRequest{}
}

// WithURL updates the delivery URL.
func (r *WebhookUpdateRequest) WithURL(url string) *WebhookUpdateRequest {
	r.URL = &url

	return r
}

// WithEvents replaces the subscribed event types.
func (r *WebhookUpdateRequest) WithEvents(events ...EventType) *WebhookUpdateRequest {
	r.Events = events

	return r
}

// WithDescription updates the description.
func (r *WebhookUpdateRequest) WithDescription(description string) *WebhookUpdateRequest {
	r.Description = &description

	return r
}

// WebhookListParams filters a webhook listing.
type WebhookListParams struct {
	ListParams

	// URL restricts results to endpoints with the given delivery URL.
	URL string

	// Description restricts results to endpoints with the given description.
	Description string
}

// ToValues encodes the filters as query parameters.
func (p WebhookListParams) ToValues() url.Values {
	values := p.ListParams.ToValues()

	if p.URL != "" {
		values.Set("url", p.URL)
	}

	if p.Description != "" {
		values.Set("description", p.Description)
	}

	return values
}
