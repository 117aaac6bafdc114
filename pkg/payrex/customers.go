package payrex

import "net/url"

// Customer represents a customer of your business, used to track multiple
// payments and billing information.
type Customer struct {
	// ID is the unique identifier, prefixed with "cus_".
	ID string `json:"id" yaml:"id"`
	// BillingStatementPrefix prefixes billing statement numbers for the customer.
	BillingStatementPrefix string `json:"billing_statement_prefix,omitempty" yaml:"billing_statement_prefix,omitempty"`
	// Currency is the customer's default currency.
	Currency Currency `json:"currency,omitempty" yaml:"currency,omitempty"`
	// Email is the customer's email address.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// Name is the customer's full name or business name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Metadata holds key-value pairs attached to the customer.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// NextBillingStatementSequenceNumber is the sequence used for the next
	// billing statement.
	NextBillingStatementSequenceNumber int64 `json:"next_billing_statement_sequence_number,omitempty" yaml:"next_billing_statement_sequence_number,omitempty"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// CustomerCreateRequest represents a request to create a customer.
type CustomerCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	BillingStatementPrefix string   `json:"billing_statement_prefix,omitempty" yaml:"billing_statement_prefix,omitempty"`
	Currency               Currency `json:"currency,omitempty"                 yaml:"currency,omitempty"`
	Email                  string   `json:"email,omitempty"                    yaml:"email,omitempty"`
	Name                   string   `json:"name,omitempty"                     yaml:"name,omitempty"`
	Metadata               Metadata `json:"metadata,omitempty"                 yaml:"metadata,omitempty"`
}

// NewCustomerCreate builds an empty create request.
func NewCustomerCreate() *CustomerCreateRequest {
	return &CustomerCreateRequest{}
}

// WithName sets the customer name.
func (r *CustomerCreateRequest) WithName(name string) *CustomerCreateRequest {
	r.Name = name

	return r
}

// WithEmail sets the customer email.
func (r *CustomerCreateRequest) WithEmail(email string) *CustomerCreateRequest {
	r.Email = email

	return r
}

// WithCurrency sets the customer's default currency.
func (r *CustomerCreateRequest) WithCurrency(currency Currency) *CustomerCreateRequest {
	r.Currency = currency

	return r
}

// WithBillingStatementPrefix sets the billing statement prefix.
func (r *CustomerCreateRequest) WithBillingStatementPrefix(prefix string) *CustomerCreateRequest {
	r.BillingStatementPrefix = prefix

	return r
}

// WithMetadata sets the metadata.
func (r *CustomerCreateRequest) WithMetadata(metadata Metadata) *CustomerCreateRequest {
	r.Metadata = metadata

	return r
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *CustomerCreateRequest) WithIdempotencyKey(key string) *CustomerCreateRequest {
	r.IdempotencyKey = key

	return r
}

// Validate checks that at least one attribute is provided.
func (r *CustomerCreateRequest) Validate() error {
	if r.Name == "" && r.Email == "" {
		return NewError(ErrorKindValidation, "name or email is required")
	}

	return nil
}

// CustomerUpdateRequest represents a request to update a customer. Nil
// fields leave the attribute unchanged.
type CustomerUpdateRequest struct {
	BillingStatementPrefix *string   `json:"billing_statement_prefix,omitempty" yaml:"billing_statement_prefix,omitempty"`
	Currency               *Currency `json:"currency,omitempty"                 yaml:"currency,omitempty"`
	Email                  *string   `json:"email,omitempty"                    yaml:"email,omitempty"`
	Name                   *string   `json:"name,omitempty"                     yaml:"name,omitempty"`
	Metadata               Metadata  `json:"metadata,omitempty"                 yaml:"metadata,omitempty"`
}

// NewCustomerUpdate builds an empty update request.
func NewCustomerUpdate() *CustomerUpdateRequest {
	return &CustomerUpdateRequest{}
}

// WithName updates the customer name.
func (r *CustomerUpdateRequest) WithName(name string) *CustomerUpdateRequest {
	r.Name = &name

	return r
}

// WithEmail updates the customer email.
func (r *CustomerUpdateRequest) WithEmail(email string) *CustomerUpdateRequest {
	r.Email = &email

	return r
}

// WithCurrency updates the default currency.
func (r *CustomerUpdateRequest) WithCurrency(currency Currency) *CustomerUpdateRequest {
	r.Currency = &currency

	return r
}

// WithBillingStatementPrefix updates the billing statement prefix.
func (r *CustomerUpdateRequest) WithBillingStatementPrefix(prefix string) *CustomerUpdateRequest {
	r.BillingStatementPrefix = &prefix

	return r
}

// WithMetadata updates the metadata.
func (r *CustomerUpdateRequest) WithMetadata(metadata Metadata) *CustomerUpdateRequest {
	r.Metadata = metadata

	return r
}

// CustomerListParams filters a customer listing.
type CustomerListParams struct {
	ListParams

	// Email restricts results to customers with the given email address.
	Email string
}

// ToValues encodes the filters as query parameters.
func (p CustomerListParams) ToValues() url.Values {
	values := p.ListParams.ToValues()

	if p.Email != "" {
		values.Set("email", p.Email)
	}

	return values
}
