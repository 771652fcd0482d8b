package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransitionRecord is one row per state transition. For a given payment the
// ordered sequence of transition records reproduces its status history:
// fromStatus of record i+1 equals toStatus of record i (or INIT for the
// first record).
type TransitionRecord struct {
	TransitionID   uuid.UUID         `json:"transition_id"`
	PaymentID      uuid.UUID         `json:"payment_id"`
	FromStatus     PaymentStatus     `json:"from_status"`
	ToStatus       PaymentStatus     `json:"to_status"`
	TransitionedAt time.Time         `json:"transitioned_at"`
	UserID         string            `json:"user_id,omitempty"` // "system" if absent
	Reason         string            `json:"reason,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
	IsRollback     bool              `json:"is_rollback"`
	RollbackOf     *uuid.UUID        `json:"rollback_of,omitempty"`
}

// SystemUser is recorded as UserID when a transition is caused by a
// background task rather than a merchant-authenticated call.
const SystemUser = "system"
