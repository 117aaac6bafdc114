package payrex

// CheckoutSessionStatus represents the state of a checkout session.
type CheckoutSessionStatus string

// Checkout session statuses.
const (
	CheckoutSessionStatusActive    CheckoutSessionStatus = "active"
	CheckoutSessionStatusCompleted CheckoutSessionStatus = "completed"
	CheckoutSessionStatusExpired   CheckoutSessionStatus = "expired"
)

// CheckoutSession is a hosted payment page for collecting a payment.
type CheckoutSession struct {
	// ID is the unique identifier, prefixed with "cs_".
	ID string `json:"id" yaml:"id"`
	// Amount is the total of the line items, in centavos.
	Amount int64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	// CustomerReferenceID ties the session to a customer record of yours.
	CustomerReferenceID string `json:"customer_reference_id,omitempty" yaml:"customer_reference_id,omitempty"`
	// BillingDetailsCollection controls whether billing details are collected.
	BillingDetailsCollection string `json:"billing_details_collection,omitempty" yaml:"billing_details_collection,omitempty"`
	// ClientSecret completes the session from a client application.
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	// Status is "active", "completed" or "expired".
	Status CheckoutSessionStatus `json:"status" yaml:"status"`
	// Currency is a three-letter ISO code in uppercase.
	Currency Currency `json:"currency" yaml:"currency"`
	// LineItems are the goods or services being purchased.
	LineItems []LineItem `json:"line_items" yaml:"line_items"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// URL is the hosted payment page to redirect the customer to.
	URL string `json:"url" yaml:"url"`
	// PaymentIntent is the intent backing the session.
	PaymentIntent *PaymentIntent `json:"payment_intent,omitempty" yaml:"payment_intent,omitempty"`
	// Metadata holds key-value pairs attached to the session.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// SuccessURL is where the customer lands after a successful payment.
	SuccessURL string `json:"success_url,omitempty" yaml:"success_url,omitempty"`
	// CancelURL is where the customer lands after cancelling.
	CancelURL string `json:"cancel_url,omitempty" yaml:"cancel_url,omitempty"`
	// PaymentMethods lists the methods the session accepts.
	PaymentMethods []PaymentMethodType `json:"payment_methods,omitempty" yaml:"payment_methods,omitempty"`
	// PaymentMethodOptions modifies attached payment method behavior.
	PaymentMethodOptions *PaymentMethodOptions `json:"payment_method_options,omitempty" yaml:"payment_method_options,omitempty"`
	// Description is an arbitrary string attached to the session.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// SubmitType customizes the text of the pay button.
	SubmitType string `json:"submit_type,omitempty" yaml:"submit_type,omitempty"`
	// StatementDescriptor appears on the customer's bank statement.
	StatementDescriptor string `json:"statement_descriptor,omitempty" yaml:"statement_descriptor,omitempty"`
	// ExpiresAt is when the hosted page stops accepting payments.
	ExpiresAt *Timestamp `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
}

// LineItem is a single good or service sold through a checkout session.
type LineItem struct {
	// ID is the unique identifier, prefixed with "csli_". Empty on requests.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Name of the item shown on the hosted page.
	Name string `json:"name" yaml:"name"`
	// Amount is the unit price in centavos.
	Amount int64 `json:"amount" yaml:"amount"`
	// Quantity of the item.
	Quantity int64 `json:"quantity" yaml:"quantity"`
	// Description shown under the item name.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Image is a URL of an image shown next to the item.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// CheckoutSessionCreateRequest represents a request to create a checkout
// session.
type CheckoutSessionCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	CustomerReferenceID      string                `json:"customer_reference_id,omitempty"      yaml:"customer_reference_id,omitempty"`
	Currency                 Currency              `json:"currency"                             yaml:"currency"`
	LineItems                []LineItem            `json:"line_items"                           yaml:"line_items"`
	SuccessURL               string                `json:"success_url"                          yaml:"success_url"`
	CancelURL                string                `json:"cancel_url"                           yaml:"cancel_url"`
	PaymentMethods           []PaymentMethodType   `json:"payment_methods"                      yaml:"payment_methods"`
	PaymentMethodOptions     *PaymentMethodOptions `json:"payment_method_options,omitempty"     yaml:"payment_method_options,omitempty"`
	ExpiresAt                *Timestamp            `json:"expires_at,omitempty"                 yaml:"expires_at,omitempty"`
	BillingDetailsCollection string                `json:"billing_details_collection,omitempty" yaml:"billing_details_collection,omitempty"`
	SubmitType               string                `json:"submit_type,omitempty"                yaml:"submit_type,omitempty"`
	Description              string                `json:"description,omitempty"                yaml:"description,omitempty"`
	Metadata                 Metadata              `json:"metadata,omitempty"                   yaml:"metadata,omitempty"`
}

// NewCheckoutSessionCreate builds a create request with the required fields.
func NewCheckoutSessionCreate(currency Currency, lineItems []LineItem, successURL, cancelURL string, methods ...PaymentMethodType) *CheckoutSessionCreateRequest {
	return &CheckoutSessionCreateRequest{
		Currency:       currency,
		LineItems:      lineItems,
		SuccessURL:     successURL,
		CancelURL:      cancelURL,
		PaymentMethods: methods,
	}
}

// WithCustomerReferenceID sets your own customer reference.
func (r *CheckoutSessionCreateRequest) WithCustomerReferenceID(id string) *CheckoutSessionCreateRequest {
	r.CustomerReferenceID = id

	return r
}

// WithExpiresAt sets the session expiry.
func (r *CheckoutSessionCreateRequest) WithExpiresAt(expiresAt Timestamp) *CheckoutSessionCreateRequest {
	r.ExpiresAt = &expiresAt

	return r
}

// WithPaymentMethodOptions sets the payment method options.
func (r *CheckoutSessionCreateRequest) WithPaymentMethodOptions(options *PaymentMethodOptions) *CheckoutSessionCreateRequest {
	r.PaymentMethodOptions = options

	return r
}

// WithBillingDetailsCollection controls billing details collection.
func (r *CheckoutSessionCreateRequest) WithBillingDetailsCollection(collection string) *CheckoutSessionCreateRequest {
	r.BillingDetailsCollection = collection

	return r
}

// WithSubmitType customizes the pay button text.
func (r *CheckoutSessionCreateRequest) WithSubmitType(submitType string) *CheckoutSessionCreateRequest {
	r.SubmitType = submitType

	return r
}

// WithDescription sets the description.
func (r *CheckoutSessionCreateRequest) WithDescription(description string) *CheckoutSessionCreateRequest {
	r.Description = description

	return r
}

// WithMetadata sets the metadata.
func (r *CheckoutSessionCreateRequest) WithMetadata(metadata Metadata) *CheckoutSessionCreateRequest {
	r.Metadata = metadata

	return r
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *CheckoutSessionCreateRequest) WithIdempotencyKey(key string) *CheckoutSessionCreateRequest {
	r.IdempotencyKey = key

	return r
}

// Validate checks required fields before any request is sent.
func (r *CheckoutSessionCreateRequest) Validate() error {
	if r.Currency == "" {
		return NewError(ErrorKindValidation, "currency is required")
	}

	if len(r.LineItems) == 0 {
		return NewError(ErrorKindValidation, "at least one line item is required")
	}

	for _, item := range r.LineItems {
		if item.Name == "" {
			return NewError(ErrorKindValidation, "line item name is required")
		}

		if item.Amount <= 0 {
			return NewError(ErrorKindValidation, "line item amount must be greater than zero")
		}

		if item.Quantity <= 0 {
			return NewError(ErrorKindValidation, "line item quantity must be greater than zero")
		}
	}

	if r.SuccessURL == "" || r.CancelURL == "" {
		return NewError(ErrorKindValidation, "success_url and cancel_url are required")
	}

	if len(r.PaymentMethods) == 0 {
		return NewError(ErrorKindValidation, "at least one payment method is required")
	}

	return nil
}
