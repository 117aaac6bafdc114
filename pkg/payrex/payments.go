package payrex

import "net/url"

// PaymentStatus represents the outcome of a payment transaction.
type PaymentStatus string

// Payment statuses.
const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

// Payment represents an individual attempt to move money into your merchant
// account balance. A Payment exists once the customer successfully completed
// a transaction.
type Payment struct {
	// ID is the unique identifier, prefixed with "pay_".
	ID string `json:"id" yaml:"id"`
	// Amount transferred to the merchant account, in centavos.
	Amount int64 `json:"amount" yaml:"amount"`
	// AmountRefunded totals the successful refund attempts against the payment.
	AmountRefunded int64 `json:"amount_refunded" yaml:"amount_refunded"`
	// Billing holds the customer's billing information.
	Billing *Billing `json:"billing,omitempty" yaml:"billing,omitempty"`
	// Currency is a three-letter ISO code in uppercase.
	Currency Currency `json:"currency" yaml:"currency"`
	// Description is an arbitrary string attached to the payment.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Fee deducted from the payment amount, in centavos.
	Fee int64 `json:"fee" yaml:"fee"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// Metadata holds key-value pairs attached to the payment.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// NetAmount is the final amount transferred to the merchant's bank account.
	NetAmount int64 `json:"net_amount" yaml:"net_amount"`
	// PaymentIntentID is the payment intent that generated the payment.
	PaymentIntentID string `json:"payment_intent_id" yaml:"payment_intent_id"`
	// Status is "paid" or "failed".
	Status PaymentStatus `json:"status" yaml:"status"`
	// Customer related to the payment, if any.
	Customer *Customer `json:"customer,omitempty" yaml:"customer,omitempty"`
	// PaymentMethod holds the details of the method used.
	PaymentMethod PaymentMethodDetails `json:"payment_method" yaml:"payment_method"`
	// Refunded is true when the payment is partially or fully refunded.
	Refunded bool `json:"refunded" yaml:"refunded"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// Billing contains the billing information of the customer.
type Billing struct {
	Name    string  `json:"name"            yaml:"name"`
	Email   string  `json:"email"           yaml:"email"`
	Phone   string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address Address `json:"address"         yaml:"address"`
}

// Address contains the billing address of the customer.
type Address struct {
	Line1      string `json:"line1,omitempty"       yaml:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"       yaml:"line2,omitempty"`
	City       string `json:"city,omitempty"        yaml:"city,omitempty"`
	State      string `json:"state,omitempty"       yaml:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"     yaml:"country,omitempty"`
}

// PaymentMethodDetails describes the payment method used, with extra card
// metadata when the type is card.
type PaymentMethodDetails struct {
	Type PaymentMethodType  `json:"type"           yaml:"type"`
	Card *CardDetails `json:"card,omitempty" yaml:"card,omitempty"`
}

// CardDetails is visible only when the payment method type is card.
type CardDetails struct {
	// First6 is the first 6 digits of the card.
	First6 string `json:"first6" yaml:"first6"`
	// Last4 is the last 4 digits of the card.
	Last4 string `json:"last4" yaml:"last4"`
	// Brand of the card used to complete the payment.
	Brand string `json:"brand" yaml:"brand"`
}

// PaymentUpdateRequest represents a request to update a payment.
type PaymentUpdateRequest struct {
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// NewPaymentUpdate builds an empty update request.
func NewPaymentUpdate() *PaymentUpdateRequest {
	return &PaymentUpdateRequest{}
}

// WithDescription updates the description.
func (r *PaymentUpdateRequest) WithDescription(description string) *PaymentUpdateRequest {
	r.Description = &description

	return r
}

// WithMetadata updates the metadata.
func (r *PaymentUpdateRequest) WithMetadata(metadata Metadata) *PaymentUpdateRequest {
	r.Metadata = metadata

	return r
}

// PaymentListParams filters a payment listing.
type PaymentListParams struct {
	ListParams

	// PaymentIntentID restricts results to payments created by the given
	// payment intent.
	PaymentIntentID string
}

// ToValues encodes the filters as query parameters.
func (p PaymentListParams) ToValues() url.Values {
	values := p.ListParams.ToValues()

	if p.PaymentIntentID != "" {
		values.Set("payment_intent_id", p.PaymentIntentID)
	}

	return values
}
