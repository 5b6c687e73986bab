package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes balance conversions from withdrawals.
type TransactionKind string

const (
	KindConversion TransactionKind = "conversion"
	KindWithdrawal TransactionKind = "withdrawal"
)

// TransactionStatus is the lifecycle state of a submitted transaction.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

// Terminal reports whether no further transitions are accepted.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Destination identifies where a withdrawal pays out.
type Destination struct {
	Method     string `json:"method"`          // payout network/method, e.g. "TRC20"
	AccountRef string `json:"account_ref"`     // address or account identifier
	Label      string `json:"label,omitempty"` // user-given nickname
}

// TransactionRequest is the frozen, signed unit of submission. ID is
// generated exactly once per confirm action and reused verbatim on a retry
// of the same attempt; it is the idempotency key downstream.
type TransactionRequest struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"kind"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Destination  *Destination    `json:"destination,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TransactionRecord is the authoritative lifecycle object. At most one
// record may be in a non-terminal state per actor. Output and fee are the
// locally computed quote at confirm time; the terminal event only confirms
// finality and supplies the external reference.
type TransactionRecord struct {
	Request        TransactionRequest `json:"request"`
	Status         TransactionStatus  `json:"status"`
	ComputedOutput decimal.Decimal    `json:"computed_output"`
	FeeCharged     decimal.Decimal    `json:"fee_charged"`
	ExternalRef    string             `json:"external_ref,omitempty"`
	ErrorReason    ErrorKind          `json:"error_reason,omitempty"`
	SubmittedAt    time.Time          `json:"submitted_at"`
	LastUpdatedAt  time.Time          `json:"last_updated_at"`
	TerminalAt     *time.Time         `json:"terminal_at,omitempty"`
}

// StatusEvent is a lifecycle update pushed by the status channel. Delivery
// is at-least-once: duplicates and reordering must be tolerated by the
// consumer.
type StatusEvent struct {
	ID          string            `json:"id"`
	Status      TransactionStatus `json:"status"`
	ExternalRef string            `json:"external_ref,omitempty"`
	Message     string            `json:"message,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// SignatureTriple is the tamper-evidence attached to every submission:
// a digest of the canonical payload, an HMAC over the same payload, and
// the signing timestamp.
type SignatureTriple struct {
	Hash      string `json:"hash"`
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

// SubmissionResult is the endpoint's definitive answer to a submission.
type SubmissionResult struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}
