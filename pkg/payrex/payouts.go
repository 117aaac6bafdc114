package payrex

// PayoutStatus represents the state of a payout.
type PayoutStatus string

// Payout statuses.
const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusInTransit PayoutStatus = "in_transit"
	PayoutStatusFailed    PayoutStatus = "failed"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)

// Payout represents a transfer of funds to your bank account.
type Payout struct {
	// ID is the unique identifier, prefixed with "po_".
	ID string `json:"id" yaml:"id"`
	// Amount transferred, in centavos.
	Amount int64 `json:"amount" yaml:"amount"`
	// Destination is the receiving bank account.
	Destination *PayoutDestination `json:"destination,omitempty" yaml:"destination,omitempty"`
	// Livemode is true when the resource exists in live mode.
	Livemode bool `json:"livemode" yaml:"livemode"`
	// NetAmount is the amount after fees, in centavos.
	NetAmount int64 `json:"net_amount,omitempty" yaml:"net_amount,omitempty"`
	// Status is "pending", "in_transit", "failed" or "cancelled".
	Status PayoutStatus `json:"status" yaml:"status"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// PayoutDestination is the bank account receiving a payout.
type PayoutDestination struct {
	AccountName   string `json:"account_name"   yaml:"account_name"`
	AccountNumber string `json:"account_number" yaml:"account_number"`
	BankName      string `json:"bank_name"      yaml:"bank_name"`
}

// PayoutTransactionType categorizes a balance movement inside a payout.
type PayoutTransactionType string

// Payout transaction types.
const (
	PayoutTransactionPayment    PayoutTransactionType = "payment"
	PayoutTransactionRefund     PayoutTransactionType = "refund"
	PayoutTransactionAdjustment PayoutTransactionType = "adjustment"
)

// PayoutTransaction is a single balance movement included in a payout.
type PayoutTransaction struct {
	// ID is the unique identifier, prefixed with "pot_".
	ID string `json:"id" yaml:"id"`
	// Amount of the movement, in centavos.
	Amount int64 `json:"amount" yaml:"amount"`
	// NetAmount is the amount after fees, in centavos.
	NetAmount int64 `json:"net_amount" yaml:"net_amount"`
	// TransactionID is the payment, refund or adjustment behind the movement.
	TransactionID string `json:"transaction_id" yaml:"transaction_id"`
	// TransactionType is "payment", "refund" or "adjustment".
	TransactionType PayoutTransactionType `json:"transaction_type" yaml:"transaction_type"`
	// CreatedAt is the creation time in Unix seconds.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	// UpdatedAt is the last update time in Unix seconds.
	UpdatedAt *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}
