package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the closed set of lifecycle states a Payment can occupy.
type PaymentStatus string

const (
	StatusInit            PaymentStatus = "INIT"
	StatusNew             PaymentStatus = "NEW"
	StatusFormShowed      PaymentStatus = "FORM_SHOWED"
	StatusOneChooseVision PaymentStatus = "ONECHOOSEVISION"
	StatusFinishAuthorize PaymentStatus = "FINISHAUTHORIZE"
	StatusAuthorizing     PaymentStatus = "AUTHORIZING"
	StatusAuthorized      PaymentStatus = "AUTHORIZED"
	StatusAuthFail        PaymentStatus = "AUTH_FAIL"
	StatusConfirm         PaymentStatus = "CONFIRM"
	StatusConfirming      PaymentStatus = "CONFIRMING"
	StatusConfirmed       PaymentStatus = "CONFIRMED"
	StatusCancel          PaymentStatus = "CANCEL"
	StatusCancelling      PaymentStatus = "CANCELLING"
	StatusCancelled       PaymentStatus = "CANCELLED"
	StatusReversing       PaymentStatus = "REVERSING"
	StatusReversed        PaymentStatus = "REVERSED"
	StatusRefunding       PaymentStatus = "REFUNDING"
	StatusRefunded        PaymentStatus = "REFUNDED"
	StatusPartialRefunded PaymentStatus = "PARTIAL_REFUNDED"
	StatusRejected        PaymentStatus = "REJECTED"
	StatusExpired         PaymentStatus = "EXPIRED"
	StatusDeadlineExpired PaymentStatus = "DEADLINE_EXPIRED"
)

// terminalStatuses holds the statuses from which no further non-rollback
// transition is permitted. CONFIRMED is conditionally terminal: the
// transition table still allows CONFIRMED -> REFUNDING/PARTIAL_REFUNDED,
// so it is deliberately absent from this set and checked separately.
var terminalStatuses = map[PaymentStatus]bool{
	StatusCancelled:       true,
	StatusReversed:        true,
	StatusRefunded:        true,
	StatusRejected:        true,
	StatusExpired:         true,
	StatusDeadlineExpired: true,
}

// IsTerminal reports whether no further non-rollback transition may be
// recorded for a payment in this status.
func (s PaymentStatus) IsTerminal() bool {
	return terminalStatuses[s]
}

// failureStatuses holds the statuses that represent the payment not
// succeeding, as opposed to terminal-but-successful outcomes like
// CONFIRMED/REFUNDED.
var failureStatuses = map[PaymentStatus]bool{
	StatusAuthFail:        true,
	StatusRejected:        true,
	StatusExpired:         true,
	StatusDeadlineExpired: true,
}

// IsFailure reports whether this status represents a failed payment outcome.
func (s PaymentStatus) IsFailure() bool {
	return failureStatuses[s]
}

// Payment is the aggregate root: one merchant-initiated monetary intent.
type Payment struct {
	ID        uuid.UUID `json:"id"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	TeamID    uuid.UUID `json:"team_id"`
	TeamSlug  string    `json:"team_slug"`

	Amount         int64  `json:"amount"` // minor units
	Currency       string `json:"currency"`
	RefundedAmount int64  `json:"refunded_amount"`
	RefundCount    int    `json:"refund_count"`

	Status PaymentStatus `json:"status"`

	InitializedAt *time.Time `json:"initialized_at,omitempty"`
	AuthorizedAt  *time.Time `json:"authorized_at,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty"`
	ExpiredAt     *time.Time `json:"expired_at,omitempty"`

	ExpiresAt             time.Time `json:"expires_at"`
	AuthorizationAttempts int       `json:"authorization_attempts"`
	MaxAllowedAttempts    int       `json:"max_allowed_attempts"`

	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	PaymentURL string `json:"payment_url,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
	Items    []PaymentItem     `json:"items,omitempty"`
	Receipt  []byte            `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentItem is an opaque receipt line item; the gateway never
// interprets its contents beyond persistence and echo-back.
type PaymentItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"`
}

// IsTerminal reports whether the payment has reached a status from which
// no further non-rollback transition is permitted.
func (p *Payment) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// IsExpired reports whether the payment's deadline has passed, regardless
// of whether EXPIRED has been recorded yet. The expiry sweep is the
// authoritative writer of StatusExpired; this is a read-only check used
// by business predicates.
func (p *Payment) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// RefundableAmount returns the amount still available to refund.
func (p *Payment) RefundableAmount() int64 {
	return p.Amount - p.RefundedAmount
}

// EntityID and EntityType implement the auditable-entity contract consumed
// by the audit service (DESIGN NOTES §9: "dynamic dispatch over entity
// type" replaced by a small interface implemented per entity).
func (p *Payment) EntityID() string   { return p.PaymentID }
func (p *Payment) EntityType() string { return "payment" }
