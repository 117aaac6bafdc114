package payrex

// BillingStatementLineItem is one product or service on a billing statement.
// The statement's amount is the sum of quantity times unit price over its
// line items.
type BillingStatementLineItem struct {
	// ID is the unique identifier, prefixed with "bstm_li_".
	ID string `json:"id" yaml:"id"`
	// Description of the product or service.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// UnitPrice in centavos.
	UnitPrice int64 `json:"unit_price" yaml:"unit_price"`
	// Quantity of units billed.
	Quantity int64 `json:"quantity" yaml:"quantity"`
	// BillingStatementID is the statement the item belongs to.
	BillingStatementID string `json:"billing_statement_id" yaml:"billing_statement_id"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// BillingStatementLineItemCreateRequest represents a request to add a line
// item to a draft billing statement.
type BillingStatementLineItemCreateRequest struct {
	IdempotencyParams `json:"-" yaml:"-"`

	BillingStatementID string `json:"billing_statement_id" yaml:"billing_statement_id"`
	Description        string `json:"description"          yaml:"description"`
	UnitPrice          int64  `json:"unit_price"           yaml:"unit_price"`
	Quantity           int64  `json:"quantity"             yaml:"quantity"`
}

// NewBillingStatementLineItemCreate builds a create request with the
// required fields.
func NewBillingStatementLineItemCreate(billingStatementID, description string, unitPrice, quantity int64) *BillingStatementLineItemCreateRequest {
	return &BillingStatementLineItemCreateRequest{
		BillingStatementID: billingStatementID,
		Description:        description,
		UnitPrice:          unitPrice,
		Quantity:           quantity,
	}
}

// WithIdempotencyKey pins the Idempotency-Key header of the create call.
func (r *BillingStatementLineItemCreateRequest) WithIdempotencyKey(key string) *BillingStatementLineItemCreateRequest {
	r.IdempotencyKey = key

	return r
}

// Validate checks required fields before any request is sent.
func (r *BillingStatementLineItemCreateRequest) Validate() error {
	if r.BillingStatementID == "" {
		return NewError(ErrorKindValidation, "billing_statement_id is required")
	}

	if r.Description == "" {
		return NewError(ErrorKindValidation, "description is required")
	}

	if r.UnitPrice <= 0 {
		return NewError(ErrorKindValidation, "unit_price must be greater than zero")
	}

	if r.Quantity <= 0 {
		return NewError(ErrorKindValidation, "quantity must be greater than zero")
	}

	return nil
}

// BillingStatementLineItemUpdateRequest represents a request to update a
// line item on a draft billing statement.
type BillingStatementLineItemUpdateRequest struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	UnitPrice   int64  `json:"unit_price,omitempty"  yaml:"unit_price,omitempty"`
	Quantity    int64  `json:"quantity,omitempty"    yaml:"quantity,omitempty"`
}

// NewBillingStatementLineItemUpdate builds an empty update request.
func NewBillingStatementLineItemUpdate() *BillingStatementLineItemUpdateRequest {
	return &BillingStatementLineItemUpdateRequest{}
}

// WithDescription updates the description.
func (r *BillingStatementLineItemUpdateRequest) WithDescription(description string) *BillingStatementLineItemUpdateRequest {
	r.Description = description

	return r
}

// WithUnitPrice updates the unit price.
func (r *BillingStatementLineItemUpdateRequest) WithUnitPrice(unitPrice int64) *BillingStatementLineItemUpdateRequest {
	r.UnitPrice = unitPrice

	return r
}

// WithQuantity updates the quantity.
func (r *BillingStatementLineItemUpdateRequest) WithQuantity(quantity int64) *BillingStatementLineItemUpdateRequest {
	r.Quantity = quantity

	return r
}
