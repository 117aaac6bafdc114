package payrex

import (
	"fmt"

	"github.com/payrex-community/payrex-go/internal/constants"
)

// PaymentIntentStatus describes the current state of the payment process.
type PaymentIntentStatus string

// Payment intent statuses.
const (
	PaymentIntentStatusAwaitingPaymentMethod PaymentIntentStatus = "awaiting_payment_method"
	PaymentIntentStatusAwaitingNextAction    PaymentIntentStatus = "awaiting_next_action"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
	PaymentIntentStatusCancelled             PaymentIntentStatus = "cancelled"
)

// PaymentIntent tracks a customer's payment lifecycle, recording failed
// attempts and ensuring the customer is charged at most once. Create one
// whenever a customer arrives at your checkout page.
type PaymentIntent struct {
	// ID is the unique identifier, prefixed with "pi_".
	ID string `json:"id" yaml:"id"`
	// Amount to collect, in the smallest currency unit (centavos).
	Amount int64 `json:"amount" yaml:"amount"`
	// AmountReceived is the amount already collected.
	AmountReceived int64 `json:"amount_received" yaml:"amount_received"`
	// AmountCapturable is the authorized amount still available for capture.
	AmountCapturable int64 `json:"amount_capturable" yaml:"amount_capturable"`
	// ClientSecret completes the payment from a client application using a
	// public API key.
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	// Currency is a three-letter ISO code in uppercase.
	Currency Currency `json:"currency" yaml:"currency"`
	// Description is an arbitrary string attached to the payment intent.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// Metadata holds key-value pairs propagated to resources the intent creates.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// LatestPayment is the ID of the latest successful payment.
	LatestPayment string `json:"latest_payment,omitempty" yaml:"latest_payment,omitempty"`
	// LastPaymentError holds the error from the latest failed attempt.
	LastPaymentError *PaymentError `json:"last_payment_error,omitempty" yaml:"last_payment_error,omitempty"`
	// PaymentMethodID is the latest payment method attached to the intent.
	PaymentMethodID string `json:"payment_method_id,omitempty" yaml:"payment_method_id,omitempty"`
	// PaymentMethods lists the payment methods the intent accepts.
	PaymentMethods []string `json:"payment_methods" yaml:"payment_methods"`
	// PaymentMethodOptions modifies the behavior of the attached payment method.
	PaymentMethodOptions *PaymentMethodOptions `json:"payment_method_options,omitempty" yaml:"payment_method_options,omitempty"`
	// StatementDescriptor appears on the customer's bank statement.
	StatementDescriptor string `json:"statement_descriptor" yaml:"statement_descriptor"`
	// Status is the latest lifecycle state.
	Status PaymentIntentStatus `json:"status" yaml:"status"`
	// NextAction tells you what the customer must do to complete the payment.
	NextAction *NextAction `json:"next_action,omitempty" yaml:"next_action,omitempty"`
	// ReturnURL is where the customer is redirected after authentication.
	ReturnURL string `json:"return_url,omitempty" yaml:"return_url,omitempty"`
	// CaptureBeforeAt is the deadline for capturing before cancellation.
	CaptureBeforeAt *Timestamp `json:"capture_before_at,omitempty" yaml:"capture_before_at,omitempty"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// PaymentError is the error recorded for a failed payment attempt.
type PaymentError struct {
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Param   string `json:"param,omitempty"   yaml:"param,omitempty"`
}

// NextAction tells you what actions are needed so the customer can complete
// a payment with the selected method.
type NextAction struct {
	// Type is the kind of action to perform. The possible value is "redirect".
	Type string `json:"type" yaml:"type"`
	// RedirectURL authenticates the payment by redirecting the customer.
	RedirectURL string `json:"redirect_url,omitempty" yaml:"redirect_url,omitempty"`
}

// PaymentMethodOptions modifies the behavior of the payment method attached
// to a payment intent or checkout session.
type PaymentMethodOptions struct {
	Card *CardOptions `json:"card,omitempty" yaml:"card,omitempty"`
}

// CardOptions configures the card payment method.
type CardOptions struct {
	// CaptureType selects the hold-then-capture flow for card payments.
	CaptureType CaptureMethod `json:"capture_type,omitempty" yaml:"capture_type,omitempty"`
	// AllowedBins restricts the card BINs accepted for the payment.
	AllowedBins []string `json:"allowed_bins,omitempty" yaml:"allowed_bins,omitempty"`
	// AllowedFunding restricts the card funding types accepted for the payment.
	AllowedFunding []string `json:"allowed_funding,omitempty" yaml:"allowed_funding,omitempty"`
}

// PaymentIntentCreateRequest represents a request to create a payment intent.
type PaymentIntentCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	// Amount to collect in centavos, between 2000 and 5999999999.
	Amount int64 `json:"amount" yaml:"amount"`
	// Currency is a three-letter ISO code in uppercase.
	Currency Currency `json:"currency" yaml:"currency"`
	// PaymentMethods lists the methods the intent accepts.
	PaymentMethods []PaymentMethodType `json:"payment_methods" yaml:"payment_methods"`
	// Description attaches an arbitrary string; nil semantics via omitempty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Metadata sets key-value pairs on the intent and resources it creates.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// CaptureMethod selects automatic or manual capture for card payments.
	CaptureMethod CaptureMethod `json:"capture_method,omitempty" yaml:"capture_method,omitempty"`
	// PaymentMethodOptions modifies attached payment method behavior.
	PaymentMethodOptions *PaymentMethodOptions `json:"payment_method_options,omitempty" yaml:"payment_method_options,omitempty"`
	// StatementDescriptor overrides the merchant trade name on statements.
	StatementDescriptor string `json:"statement_descriptor,omitempty" yaml:"statement_descriptor,omitempty"`
	// ReturnURL is where the customer is redirected after authentication.
	ReturnURL string `json:"return_url,omitempty" yaml:"return_url,omitempty"`
}

// NewPaymentIntentCreate builds a create request with the required fields.
func NewPaymentIntentCreate(amount int64, currency Currency, methods ...PaymentMethodType) *PaymentIntentCreateRequest {
	return &PaymentIntentCreateRequest{
		Amount:         amount,
		Currency:       currency,
		PaymentMethods: methods,
	}
}

// WithDescription sets the description.
func (r *PaymentIntentCreateRequest) WithDescription(description string) *PaymentIntentCreateRequest {
	r.Description = description

	return r
}

// WithMetadata sets the metadata.
func (r *PaymentIntentCreateRequest) WithMetadata(metadata Metadata) *PaymentIntentCreateRequest {
	r.Metadata = metadata

	return r
}

// WithCaptureMethod sets the capture method.
func (r *PaymentIntentCreateRequest) WithCaptureMethod(method CaptureMethod) *PaymentIntentCreateRequest {
	r.CaptureMethod = method

	return r
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *PaymentIntentCreateRequest) WithIdempotencyKey(key string) *PaymentIntentCreateRequest {
	r.IdempotencyKey = key

	return r
}

// WithPaymentMethodOptions sets the payment method options.
func (r *PaymentIntentCreateRequest) WithPaymentMethodOptions(options *PaymentMethodOptions) *PaymentIntentCreateRequest {
	r.PaymentMethodOptions = options

	return r
}

// WithStatementDescriptor sets the statement descriptor.
func (r *PaymentIntentCreateRequest) WithStatementDescriptor(descriptor string) *PaymentIntentCreateRequest {
	r.StatementDescriptor = descriptor

	return r
}

// WithReturnURL sets the return URL.
func (r *PaymentIntentCreateRequest) WithReturnURL(url string) *PaymentIntentCreateRequest {
	r.ReturnURL = url

	return r
}

// Validate checks required fields and amount bounds before any request is
// sent.
func (r *PaymentIntentCreateRequest) Validate() error {
	if err := validateAmount(r.Amount); err != nil {
		return err
	}

	if r.Currency == "" {
		return NewError(ErrorKindValidation, "currency is required")
	}

	if len(r.PaymentMethods) == 0 {
		return NewError(ErrorKindValidation, "at least one payment method is required")
	}

	return nil
}

// PaymentIntentCaptureRequest represents a request to capture an authorized
// payment intent.
type PaymentIntentCaptureRequest struct {
	// Amount to capture in centavos; must not exceed the authorized amount.
	Amount int64 `json:"amount" yaml:"amount"`
}

// NewPaymentIntentCapture builds a capture request for the given amount.
func NewPaymentIntentCapture(amount int64) *PaymentIntentCaptureRequest {
	return &PaymentIntentCaptureRequest{Amount: amount}
}

// Validate checks the capture amount bounds.
func (r *PaymentIntentCaptureRequest) Validate() error {
	return validateAmount(r.Amount)
}

func validateAmount(amount int64) error {
	if amount < constants.MinAmount || amount > constants.MaxAmount {
		return NewError(ErrorKindValidation,
			fmt.Sprintf("amount must be between %d and %d centavos", constants.MinAmount, constants.MaxAmount))
	}

	return nil
}
