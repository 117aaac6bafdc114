package payrex

// BillingStatementStatus represents the state of a billing statement.
type BillingStatementStatus string

// Billing statement statuses.
const (
	BillingStatementStatusDraft         BillingStatementStatus = "draft"
	BillingStatementStatusOpen          BillingStatementStatus = "open"
	BillingStatementStatusPaid          BillingStatementStatus = "paid"
	BillingStatementStatusVoid          BillingStatementStatus = "void"
	BillingStatementStatusUncollectible BillingStatementStatus = "uncollectible"
)

// PaymentSettings selects the payment methods a billing statement accepts.
type PaymentSettings struct {
	PaymentMethods []PaymentMethodType `json:"payment_methods" yaml:"payment_methods"`
}

// BillingStatement is a one-time payment link carrying customer information,
// a due date and an itemized list of products or services. Its amount is
// derived from the sum of line item quantity times unit price.
type BillingStatement struct {
	// ID is the unique identifier, prefixed with "bstm_".
	ID string `json:"id" yaml:"id"`
	// Amount to collect, in centavos, derived from the line items.
	Amount int64 `json:"amount" yaml:"amount"`
	// BillingDetailsCollection controls whether billing fields always show.
	BillingDetailsCollection string `json:"billing_details_collection,omitempty" yaml:"billing_details_collection,omitempty"`
	// Currency is a three-letter ISO code in uppercase, derived from the
	// associated customer.
	Currency Currency `json:"currency" yaml:"currency"`
	// CustomerID is the customer being billed.
	CustomerID string `json:"customer_id" yaml:"customer_id"`
	// Description is an arbitrary string copied to the payment intent.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// DueAt is when the statement is expected to be paid, in Unix seconds.
	// A past due date does not block payment while the statement is open.
	DueAt *Timestamp `json:"due_at,omitempty" yaml:"due_at,omitempty"`
	// FinalizedAt is when the statement was finalized, in Unix seconds.
	FinalizedAt *Timestamp `json:"finalized_at,omitempty" yaml:"finalized_at,omitempty"`
	// MerchantName shown on the statement.
	MerchantName string `json:"billing_statement_merchant_name,omitempty" yaml:"billing_statement_merchant_name,omitempty"`
	// Number is the human-readable statement number.
	Number string `json:"billing_statement_number,omitempty" yaml:"billing_statement_number,omitempty"`
	// URL is the page the customer visits to pay. Only present while the
	// statement is open.
	URL string `json:"billing_statement_url,omitempty" yaml:"billing_statement_url,omitempty"`
	// LineItems itemize the statement.
	LineItems []BillingStatementLineItem `json:"line_items,omitempty" yaml:"line_items,omitempty"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// Metadata holds key-value pairs copied to the payment intent on
	// finalization.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// PaymentIntent created for the statement, when expanded.
	PaymentIntent *PaymentIntent `json:"payment_intent,omitempty" yaml:"payment_intent,omitempty"`
	// SetupFutureUsage marks the payment method for reuse.
	SetupFutureUsage string `json:"setup_future_usage,omitempty" yaml:"setup_future_usage,omitempty"`
	// StatementDescriptor overrides the merchant trade name on statements.
	StatementDescriptor string `json:"statement_descriptor,omitempty" yaml:"statement_descriptor,omitempty"`
	// Status is "draft", "open", "paid", "void" or "uncollectible".
	Status BillingStatementStatus `json:"status" yaml:"status"`
	// PaymentSettings selects the accepted payment methods.
	PaymentSettings PaymentSettings `json:"payment_settings" yaml:"payment_settings"`
	// Customer resource, when expanded.
	Customer *Customer `json:"customer,omitempty" yaml:"customer,omitempty"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// BillingStatementCreateRequest represents a request to create a billing
// statement. Statements start in draft and collect line items before being
// finalized.
type BillingStatementCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	CustomerID               string           `json:"customer_id"                          yaml:"customer_id"`
	Currency                 Currency         `json:"currency"                             yaml:"currency"`
	PaymentSettings          *PaymentSettings `json:"payment_settings,omitempty"           yaml:"payment_settings,omitempty"`
	BillingDetailsCollection string           `json:"billing_details_collection,omitempty" yaml:"billing_details_collection,omitempty"`
	Description              string           `json:"description,omitempty"                yaml:"description,omitempty"`
	Metadata                 Metadata         `json:"metadata,omitempty"                   yaml:"metadata,omitempty"`
}

// NewBillingStatementCreate builds a create request with the required fields.
func NewBillingStatementCreate(customerID string, currency Currency) *BillingStatementCreateRequest {
	return &BillingStatementCreateRequest{
		CustomerID: customerID,
		Currency:   currency,
	}
}

// WithPaymentSettings sets the accepted payment methods.
func (r *BillingStatementCreateRequest) WithPaymentSettings(settings PaymentSettings) *BillingStatementCreateRequest {
	r.PaymentSettings = &settings

	return r
}

// WithBillingDetailsCollection sets the billing details collection mode.
func (r *BillingStatementCreateRequest) WithBillingDetailsCollection(collection string) *BillingStatementCreateRequest {
	r.BillingDetailsCollection = collection

	return r
}

// WithDescription sets the description.
func (r *BillingStatementCreateRequest) WithDescription(description string) *BillingStatementCreateRequest {
	r.Description = description

	return r
}

// WithMetadata sets the metadata.
func (r *BillingStatementCreateRequest) WithMetadata(metadata Metadata) *BillingStatementCreateRequest {
	r.Metadata = metadata

	return r
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *BillingStatementCreateRequest) WithIdempotencyKey(key string) *BillingStatementCreateRequest {
	r.IdempotencyKey = key

	return r
}

// Validate checks required fields before any request is sent.
func (r *BillingStatementCreateRequest) Validate() error {
	if r.CustomerID == "" {
		return NewError(ErrorKindValidation, "customer_id is required")
	}

	if r.Currency == "" {
		return NewError(ErrorKindValidation, "currency is required")
	}

	return nil
}

// BillingStatementUpdateRequest represents a request to update a billing
// statement. Only draft statements can be reassigned to another customer.
type BillingStatementUpdateRequest struct {
	CustomerID               string           `json:"customer_id,omitempty"                yaml:"customer_id,omitempty"`
	PaymentSettings          *PaymentSettings `json:"payment_settings,omitempty"           yaml:"payment_settings,omitempty"`
	BillingDetailsCollection string           `json:"billing_details_collection,omitempty" yaml:"billing_details_collection,omitempty"`
	Description              string           `json:"description,omitempty"                yaml:"description,omitempty"`
	Metadata                 Metadata         `json:"metadata,omitempty"                   yaml:"metadata,omitempty"`
	DueAt                    *Timestamp       `json:"due_at,omitempty"                     yaml:"due_at,omitempty"`
}

// NewBillingStatementUpdate builds an empty update request.
func NewBillingStatementUpdate() *BillingStatementUpdateRequest {
	return &BillingStatementUpdateRequest{}
}

// WithCustomerID reassigns the statement to another customer.
func (r *BillingStatementUpdateRequest) WithCustomerID(customerID string) *BillingStatementUpdateRequest {
	r.CustomerID = customerID

	return r
}

// WithPaymentSettings updates the accepted payment methods.
func (r *BillingStatementUpdateRequest) WithPaymentSettings(settings PaymentSettings) *BillingStatementUpdateRequest {
	r.PaymentSettings = &settings

	return r
}

// WithDescription updates the description.
func (r *BillingStatementUpdateRequest) WithDescription(description string) *BillingStatementUpdateRequest {
	r.Description = description

	return r
}

// WithMetadata updates the metadata.
func (r *BillingStatementUpdateRequest) WithMetadata(metadata Metadata) *BillingStatementUpdateRequest {
	r.Metadata = metadata

	return r
}

// WithDueAt updates the due date.
func (r *BillingStatementUpdateRequest) WithDueAt(dueAt Timestamp) *BillingStatementUpdateRequest {
	r.DueAt = &dueAt

	return r
}
