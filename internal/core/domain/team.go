package domain

import (
	"time"

	"github.com/google/uuid"
)

// TeamStatus represents the state of a merchant team account.
type TeamStatus string

const (
	TeamStatusActive      TeamStatus = "ACTIVE"
	TeamStatusSuspended   TeamStatus = "SUSPENDED"
	TeamStatusDeactivated TeamStatus = "DEACTIVATED"
)

// Team is a merchant account. Only the fields relevant to the core (auth,
// lockout, per-team limits, currencies, webhook) are modeled here; the
// rest of onboarding is an external collaborator (spec.md §1 Non-goals).
type Team struct {
	ID           uuid.UUID  `json:"id"`
	TeamSlug     string     `json:"team_slug"`
	PasswordHash string     `json:"-"` // Argon2id, used only for dashboard login
	Status       TeamStatus `json:"status"`

	// APISecretEncrypted is the team's request-signing password (spec.md
	// §4.4), AES-256-GCM encrypted at rest. Unlike PasswordHash it must be
	// recoverable: the canonical-hash token scheme recomputes the expected
	// token from the plaintext secret, which an irreversible hash cannot
	// supply.
	APISecretEncrypted string `json:"-"`

	FailedAuthCount int        `json:"failed_auth_count"`
	LockedUntil     *time.Time `json:"locked_until,omitempty"`

	MinPaymentAmount int64    `json:"min_payment_amount"`
	MaxPaymentAmount int64    `json:"max_payment_amount"`
	DailyLimit       int64    `json:"daily_limit"`
	SupportedCurrencies []string `json:"supported_currencies"`

	WebhookURL             *string `json:"webhook_url,omitempty"`
	WebhookSecretEncrypted string  `json:"-"` // AES-256-GCM, never exposed

	EnableRetries       bool `json:"enable_retries"`
	EnableFraudChecks   bool `json:"enable_fraud_checks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive reports whether the team account may submit payments.
func (t *Team) IsActive() bool {
	return t.Status == TeamStatusActive
}

// IsLocked reports whether the team is currently locked out from
// authenticating, per spec.md §4.4 (5 failures within policy locks the
// team for 30 minutes).
func (t *Team) IsLocked(now time.Time) bool {
	return t.LockedUntil != nil && now.Before(*t.LockedUntil)
}

// EntityID implements Auditable.
func (t *Team) EntityID() string { return t.ID.String() }

// EntityType implements Auditable.
func (t *Team) EntityType() string { return "team" }

// SupportsCurrency reports whether the team accepts the given ISO-4217 code.
func (t *Team) SupportsCurrency(currency string) bool {
	if len(t.SupportedCurrencies) == 0 {
		return true
	}
	for _, c := range t.SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}
