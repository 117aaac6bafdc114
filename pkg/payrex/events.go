package payrex

import (
	"encoding/json"
	"net/url"
)

// EventType identifies what happened to a resource, in the form
// "resource.action".
type EventType string

// Event types.
const (
	EventBillingStatementCreated             EventType = "billing_statement.created"
	EventBillingStatementUpdated             EventType = "billing_statement.updated"
	EventBillingStatementDeleted             EventType = "billing_statement.deleted"
	EventBillingStatementFinalized           EventType = "billing_statement.finalized"
	EventBillingStatementSent                EventType = "billing_statement.sent"
	EventBillingStatementMarkedUncollectible EventType = "billing_statement.marked_uncollectible"
	EventBillingStatementVoided              EventType = "billing_statement.voided"
	EventBillingStatementPaid                EventType = "billing_statement.paid"
	EventBillingStatementWillBeDue           EventType = "billing_statement.will_be_due"
	EventBillingStatementOverdue             EventType = "billing_statement.overdue"
	EventBillingStatementLineItemCreated     EventType = "billing_statement_line_item.created"
	EventBillingStatementLineItemUpdated     EventType = "billing_statement_line_item.updated"
	EventBillingStatementLineItemDeleted     EventType = "billing_statement_line_item.deleted"
	EventCheckoutSessionExpired              EventType = "checkout_session.expired"
	EventPaymentIntentAwaitingCapture        EventType = "payment_intent.awaiting_capture"
	EventPaymentIntentSucceeded              EventType = "payment_intent.succeeded"
	EventPayoutDeposited                     EventType = "payout.deposited"
	EventRefundCreated                       EventType = "refund.created"
	EventRefundUpdated                       EventType = "refund.updated"
)

// Event records a change to a resource in your account. The Data payload is
// the affected resource at the time of the event.
type Event struct {
	// ID is the unique identifier, prefixed with "evt_".
	ID string `json:"id" yaml:"id"`
	// Data is the resource affected by the event, as raw JSON.
	Data json.RawMessage `json:"data" yaml:"data"`
	// Type is the event type, e.g. "payment_intent.succeeded".
	Type EventType `json:"type" yaml:"type"`
	// PendingWebhooks counts deliveries not yet acknowledged.
	PendingWebhooks int64 `json:"pending_webhooks,omitempty" yaml:"pending_webhooks,omitempty"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// PreviousAttributes holds the prior values of changed fields, as raw JSON.
	PreviousAttributes json.RawMessage `json:"previous_attributes,omitempty" yaml:"previous_attributes,omitempty"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// UnmarshalData decodes the event payload into the given resource value.
func (e *Event) UnmarshalData(v interface{}) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return WrapError(ErrorKindDecoding, "parsing event data", err)
	}

	return nil
}

// EventListParams filters an event listing.
type EventListParams struct {
	ListParams

	// Type restricts results to events of the given type.
	Type EventType
}

// ToValues encodes the filters as query parameters.
func (p EventListParams) ToValues() url.Values {
	values := p.ListParams.ToValues()

	if p.Type != "" {
		values.Set("type", string(p.Type))
	}

	return values
}
