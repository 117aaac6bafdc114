package payrex

// RefundStatus represents the state of a refund.
type RefundStatus string

// Refund statuses.
const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusSucceeded RefundStatus = "succeeded"
	RefundStatusFailed    RefundStatus = "failed"
)

// RefundReason categorizes why a refund was issued.
type RefundReason string

// Refund reasons.
const (
	RefundReasonFraudulent           RefundReason = "fraudulent"
	RefundReasonRequestedByCustomer  RefundReason = "requested_by_customer"
	RefundReasonProductOutOfStock    RefundReason = "product_out_of_stock"
	RefundReasonProductWasDamaged    RefundReason = "product_was_damaged"
	RefundReasonServiceNotProvided   RefundReason = "service_not_provided"
	RefundReasonServiceMisaligned    RefundReason = "service_misaligned"
	RefundReasonWrongProductReceived RefundReason = "wrong_product_received"
	RefundReasonOthers               RefundReason = "others"
)

// Refund returns money to a customer against a previously successful payment.
type Refund struct {
	// ID is the unique identifier, prefixed with "ref_".
	ID string `json:"id" yaml:"id"`
	// Amount refunded, in centavos.
	Amount int64 `json:"amount" yaml:"amount"`
	// Currency is a three-letter ISO code in uppercase.
	Currency Currency `json:"currency" yaml:"currency"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// Status is "pending", "succeeded" or "failed".
	Status RefundStatus `json:"status" yaml:"status"`
	// Description is an arbitrary string attached to the refund.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Reason categorizes the refund.
	Reason RefundReason `json:"reason" yaml:"reason"`
	// Remarks holds free-form notes about the refund.
	Remarks string `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	// PaymentID is the payment being refunded.
	PaymentID string `json:"payment_id" yaml:"payment_id"`
	// Metadata holds key-value pairs attached to the refund.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// RefundCreateRequest represents a request to create a refund.
type RefundCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	PaymentID   string       `json:"payment_id"            yaml:"payment_id"`
	Amount      int64        `json:"amount"                yaml:"amount"`
	Currency    Currency     `json:"currency"              yaml:"currency"`
	Reason      RefundReason `json:"reason"                yaml:"reason"`
	Metadata    Metadata     `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	Remarks     string       `json:"remarks,omitempty"     yaml:"remarks,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewRefundCreate builds a create request with the required fields.
func NewRefundCreate(paymentID string, amount int64, currency Currency, reason RefundReason) *RefundCreateRequest {
	return &RefundCreateRequest{
		PaymentID: paymentID,
		Amount:    amount,
		Currency:  currency,
		Reason:    reason,
	}
}

// WithMetadata sets the metadata.
func (r *RefundCreateRequest) WithMetadata(metadata Metadata) *RefundCreateRequest {
	r.Metadata = metadata

	return r
}

// WithRemarks sets free-form notes.
func (r *RefundCreateRequest) WithRemarks(remarks string) *RefundCreateRequest {
	r.Remarks = remarks

	return r
}

// WithDescription sets the description.
func (r *RefundCreateRequest) WithDescription(description string) *RefundCreateRequest {
	r.Description = description

	return r
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *RefundCreateRequest) WithIdempotencyKey(key string) *RefundCreateRequest {
	r.IdempotencyKey = key

	return r
}

// Validate checks required fields before any request is sent.
func (r *RefundCreateRequest) Validate() error {
	if r.PaymentID == "" {
		return NewError(ErrorKindValidation, "payment_id is required")
	}

	if r.Amount <= 0 {
		return NewError(ErrorKindValidation, "amount must be greater than zero")
	}

	if r.Currency == "" {
		return NewError(ErrorKindValidation, "currency is required")
	}

	if r.Reason == "" {
		return NewError(ErrorKindValidation, "reason is required")
	}

	return nil
}

// RefundUpdateRequest represents a request to update a refund.
type RefundUpdateRequest struct {
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewRefundUpdate builds an empty update request.
func NewRefundUpdate() *RefundUpdateRequest {
	return &RefundUpdateRequest{}
}

// WithMetadata updates the metadata.
func (r *RefundUpdateRequest) WithMetadata(metadata Metadata) *RefundUpdateRequest {
	r.Metadata = metadata

	return r
}
