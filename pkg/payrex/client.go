package payrex

import (
	"context"
)

// PaymentIntentsClient provides access to payment intent operations.
type PaymentIntentsClient interface {
	Create(ctx context.Context, request *PaymentIntentCreateRequest) (*PaymentIntent, error)
	Get(ctx context.Context, id string) (*PaymentIntent, error)
	Cancel(ctx context.Context, id string) (*PaymentIntent, error)
	Capture(ctx context.Context, id string, request *PaymentIntentCaptureRequest) (*PaymentIntent, error)
}

// CustomersClient provides access to customer operations.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreateRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, request *CustomerUpdateRequest) (*Customer, error)
	List(ctx context.Context, params *CustomerListParams) (*List[Customer], error)
	Delete(ctx context.Context, id string) error
}

// PaymentsClient provides access to payment operations.
type PaymentsClient interface {
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, id string, request *PaymentUpdateRequest) (*Payment, error)
	List(ctx context.Context, params *PaymentListParams) (*List[Payment], error)
}

// RefundsClient provides access to refund operations.
type RefundsClient interface {
	Create(ctx context.Context, request *RefundCreateRequest) (*Refund, error)
	Get(ctx context.Context, id string) (*Refund, error)
	Update(ctx context.Context, id string, request *RefundUpdateRequest) (*Refund, error)
}

// CheckoutSessionsClient provides access to checkout session operations.
type CheckoutSessionsClient interface {
	Create(ctx context.Context, request *CheckoutSessionCreateRequest) (*CheckoutSession, error)
	Get(ctx context.Context, id string) (*CheckoutSession, error)
	Expire(ctx context.Context, id string) (*CheckoutSession, error)
}

// WebhooksClient provides access to webhook endpoint operations.
type WebhooksClient interface {
	Create(ctx context.Context, request *WebhookCreateRequest) (*Webhook, error)
	Get(ctx context.Context, id string) (*Webhook, error)
	Update(ctx context.Context, id string, request *WebhookUpdateRequest) (*Webhook, error)
	List(ctx context.Context, params *WebhookListParams) (*List[Webhook], error)
	Delete(ctx context.Context, id string) error
	Enable(ctx context.Context, id string) (*Webhook, error)
	Disable(ctx context.Context, id string) (*Webhook, error)
}

// BillingStatementsClient provides access to billing statement operations.
type BillingStatementsClient interface {
	Create(ctx context.Context, request *BillingStatementCreateRequest) (*BillingStatement, error)
	Get(ctx context.Context, id string) (*BillingStatement, error)
	Update(ctx context.Context, id string, request *BillingStatementUpdateRequest) (*BillingStatement, error)
	List(ctx context.Context, params *ListParams) (*List[BillingStatement], error)
	Delete(ctx context.Context, id string) error
	Finalize(ctx context.Context, id string) (*BillingStatement, error)
	Send(ctx context.Context, id string) (*BillingStatement, error)
	Void(ctx context.Context, id string) (*BillingStatement, error)
	MarkUncollectible(ctx context.Context, id string) (*BillingStatement, error)
}

// BillingStatementLineItemsClient provides access to billing statement line
// item operations.
type BillingStatementLineItemsClient interface {
	Create(ctx context.Context, request *BillingStatementLineItemCreateRequest) (*BillingStatementLineItem, error)
	Update(ctx context.Context, id string, request *BillingStatementLineItemUpdateRequest) (*BillingStatementLineItem, error)
	Delete(ctx context.Context, id string) error
}

// PayoutsClient provides access to payout operations.
type PayoutsClient interface {
	Get(ctx context.Context, id string) (*Payout, error)
	List(ctx context.Context, params *ListParams) (*List[Payout], error)
	ListTransactions(ctx context.Context, id string, params *ListParams) (*List[PayoutTransaction], error)
}

// EventsClient provides access to event operations.
type EventsClient interface {
	Get(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params *EventListParams) (*List[Event], error)
}

// Client is the top-level API client. Implementations are safe for
// concurrent use.
type Client interface {
	PaymentIntents() PaymentIntentsClient
	Customers() CustomersClient
	Payments() PaymentsClient
	Refunds() RefundsClient
	CheckoutSessions() CheckoutSessionsClient
	Webhooks() WebhooksClient
	BillingStatements() BillingStatementsClient
	BillingStatementLineItems() BillingStatementLineItemsClient
	Payouts() PayoutsClient
	Events() EventsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
