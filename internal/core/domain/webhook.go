package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookStatus represents the delivery state of a webhook.
type WebhookStatus string

const (
	WebhookStatusPending   WebhookStatus = "PENDING"
	WebhookStatusDelivered WebhookStatus = "DELIVERED"
	WebhookStatusFailed    WebhookStatus = "FAILED"
)

// WebhookDeliveryLog records each attempt to notify a team's configured
// webhook URL of a payment status change (spec.md §4.7). Delivery is
// asynchronous, so Attempt/NextRetryAt double as both the audit trail and
// the retry bookkeeping the notifications sweep reads to pick up due
// deliveries.
type WebhookDeliveryLog struct {
	ID         uuid.UUID     `json:"id"`
	PaymentID  uuid.UUID     `json:"payment_id"`
	TeamID     uuid.UUID     `json:"team_id"`
	WebhookURL string        `json:"webhook_url"`
	Payload    string        `json:"payload"` // JSON string
	Signature  string        `json:"signature"`
	HTTPStatus *int          `json:"http_status,omitempty"`
	Attempt    int           `json:"attempt"`
	Status     WebhookStatus `json:"status"`

	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	LastError   *string    `json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDelivered reports whether the webhook was successfully accepted by the
// receiving endpoint (2xx HTTP status).
func (w *WebhookDeliveryLog) IsDelivered() bool {
	return w.Status == WebhookStatusDelivered
}
