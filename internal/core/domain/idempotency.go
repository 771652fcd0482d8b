package domain

import (
	"time"

	"github.com/google/uuid"
)

// InitLog caches the init response for a (teamId, orderId) pair so a
// duplicate initialize call can be answered without a second write. This
// supplies the Redis fast-path / Postgres fallback idempotency pattern
// spec.md §4.9 implies for order uniqueness but does not spell out; it is
// the same two-layer shape the teacher uses for payment idempotency.
type InitLog struct {
	Key          string    `json:"key"` // Format: "team_id:order_id"
	PaymentID    uuid.UUID `json:"payment_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildInitKey constructs the standard (teamId, orderId) uniqueness key.
func BuildInitKey(teamID uuid.UUID, orderID string) string {
	return teamID.String() + ":" + orderID
}
