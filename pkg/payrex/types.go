package payrex

import (
	"net/url"
	"strconv"
	"time"

	"github.com/payrex-community/payrex-go/internal/constants"
)

// Currency is an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	CurrencyPHP Currency = "PHP"
)

// PaymentMethodType identifies a supported payment instrument.
type PaymentMethodType string

// Supported payment method types.
const (
	PaymentMethodCard  PaymentMethodType = "card"
	PaymentMethodGCash PaymentMethodType = "gcash"
	PaymentMethodMaya  PaymentMethodType = "maya"
	PaymentMethodQRPH  PaymentMethodType = "qrph"
)

// CaptureMethod controls whether authorized funds are captured immediately
// or held for a later capture call.
type CaptureMethod string

// Capture methods.
const (
	CaptureMethodAutomatic CaptureMethod = "automatic"
	CaptureMethodManual    CaptureMethod = "manual"
)

// Metadata carries arbitrary key/value pairs attached to a resource.
type Metadata map[string]string

// IdempotencyParams is embedded by create requests so callers can pin the
// Idempotency-Key header of the call. When the key is empty the dispatcher
// generates one per logical request. The key travels as a header, never in
// the encoded body.
type IdempotencyParams struct {
	IdempotencyKey string `json:"-" yaml:"-"`
}

// GetIdempotencyKey returns the caller-supplied idempotency key, if any.
func (p IdempotencyParams) GetIdempotencyKey() string {
	return p.IdempotencyKey
}

// Timestamp is a point in time serialized as Unix seconds, matching the API
// wire format.
type Timestamp int64

// Time converts the timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// NewTimestamp builds a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// List is a single page of resources together with cursor state for
// iterating the collection.
type List[T any] struct {
	Object     string `json:"object"`
	Data       []T    `json:"data"`
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page,omitempty"`
	TotalCount int    `json:"total_count,omitempty"`
}

// ListParams are the standard pagination controls accepted by every list
// operation. Zero values are omitted from the query string.
type ListParams struct {
	// Limit is the page size, between 1 and 100.
	Limit int

	// StartingAfter is an object ID cursor; the page begins immediately
	// after it.
	StartingAfter string

	// EndingBefore is an object ID cursor; the page ends immediately
	// before it.
	EndingBefore string
}

// ToValues encodes the pagination controls as query parameters.
func (p ListParams) ToValues() url.Values {
	values := url.Values{}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.StartingAfter != "" {
		values.Set("starting_after", p.StartingAfter)
	}

	if p.EndingBefore != "" {
		values.Set("ending_before", p.EndingBefore)
	}

	return values
}

// Validate checks the pagination bounds.
func (p ListParams) Validate() error {
	if p.Limit != 0 && (p.Limit < constants.MinPageLimit || p.Limit > constants.MaxPageLimit) {
		return NewError(ErrorKindValidation, "limit must be between 1 and 100")
	}

	return nil
}
