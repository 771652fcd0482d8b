package ports

import (
	"context"
	"time"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
)

// --- Cross-cutting infrastructure services ---

// EncryptionService handles AES-256-GCM encryption/decryption, used for
// webhook secrets and other at-rest sensitive fields.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification of outbound
// webhook payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing (Argon2id) for team credentials.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SessionTokenService issues and validates JWTs for the merchant dashboard.
type SessionTokenService interface {
	Generate(teamID uuid.UUID, teamSlug string) (string, time.Time, error)
	Validate(tokenString string) (*SessionClaims, error)
}

// SessionClaims holds the parsed dashboard session JWT claims.
type SessionClaims struct {
	TeamID   uuid.UUID
	TeamSlug string
}

// TokenAuthenticator implements the canonical-hash request authentication
// scheme (spec.md §4.4): sort scalar request parameters by key, concatenate
// their values with the team password, SHA-256 the result, and compare to
// the caller-supplied Token field in constant time. Distinct from
// SessionTokenService's JWT scheme, which only guards the dashboard.
type TokenAuthenticator interface {
	// BuildToken computes the expected token for the given scalar params
	// (already filtered to top-level string/number/bool fields) and the
	// team's password.
	BuildToken(params map[string]string, teamPassword string) string
	// Verify reports whether suppliedToken matches the token computed from
	// params and the team's password, using a constant-time comparison.
	Verify(params map[string]string, teamPassword string, suppliedToken string) bool
}

// IdempotencyCache is the Redis-layer fast path for init-idempotency checks.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil if absent
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, teamSlug string, nonce string, ttl time.Duration) (bool, error)
}

// LockManager grants named, expiring, single-owner leases used to
// serialize concurrent operations on the same payment (spec.md §4.1).
type LockManager interface {
	// Acquire attempts to obtain the named lock for ownerID, holding it for
	// ttl. Returns false if another owner currently holds it.
	Acquire(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error)
	// Release drops the lock if and only if ownerID currently holds it.
	Release(ctx context.Context, name string, ownerID string) error
	// Extend refreshes the TTL of a lock still held by ownerID.
	Extend(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error)
}

// --- Domain service ports ---

// PaymentLifecycleService drives every payment-state operation through the
// state machine (spec.md §4.1-§4.3).
type PaymentLifecycleService interface {
	Init(ctx context.Context, req InitRequest) (*domain.Payment, error)
	Authorize(ctx context.Context, paymentID string, req AuthorizeRequest) (*domain.Payment, error)
	Confirm(ctx context.Context, paymentID string) (*domain.Payment, error)
	Cancel(ctx context.Context, paymentID string, reason string) (*domain.Payment, error)
	Refund(ctx context.Context, paymentID string, amount *int64, reason string) (*domain.Payment, error)
	GetState(ctx context.Context, paymentID string) (*domain.Payment, error)
	// Expire idempotently advances a payment past its deadline into a
	// terminal expired status; a no-op on a payment that is already
	// terminal or has not yet reached its deadline. Driven by the
	// background expiry sweep.
	Expire(ctx context.Context, paymentID string) (*domain.Payment, error)
	// GetActivePayments lists a team's non-terminal payments.
	GetActivePayments(ctx context.Context, teamID uuid.UUID) ([]domain.Payment, error)
	// Fail records errorCode/errorMessage on the payment and transitions it
	// to CANCELLED (spec.md §4.3).
	Fail(ctx context.Context, paymentID string, errorCode string, errorMessage string) (*domain.Payment, error)
	// Rollback reverses a previously recorded transition: it only succeeds
	// if the payment's current status equals the named transition's
	// toStatus, the payment is non-terminal, and a table-permitted path
	// exists back to the transition's fromStatus (spec.md §4.2).
	Rollback(ctx context.Context, paymentID string, transitionID uuid.UUID, userID string) (*domain.Payment, error)
}

// InitRequest holds validated input to initialize a new payment.
type InitRequest struct {
	TeamID     uuid.UUID
	OrderID    string
	Amount     int64
	Currency   string
	Metadata   map[string]string
	Items      []domain.PaymentItem
	RequestID  string
	ClientIP   string
}

// AuthorizeRequest holds validated input to authorize an initialized payment.
type AuthorizeRequest struct {
	RequestID string
	ClientIP  string
}

// RetryService schedules and executes retries of failed payment operations
// (spec.md §4.5).
type RetryService interface {
	Schedule(ctx context.Context, paymentID uuid.UUID, operation domain.PaymentStatus, attemptNum int, lastErr error) (*domain.RetryAttempt, error)
	RunDue(ctx context.Context, limit int) (int, error)
}

// RuleEngineService evaluates business rules before a payment operation is
// admitted (spec.md §4.2, §4.6).
type RuleEngineService interface {
	// Evaluate runs every effective rule of ruleType for teamID in ascending
	// priority order, short-circuiting on the first DENY. WARN-triggering
	// rules accumulate in the verdict without blocking.
	Evaluate(ctx context.Context, teamID uuid.UUID, ruleType domain.BusinessRuleType, amount int64, currency string) (*RuleVerdict, error)
}

// RuleVerdict is the composite outcome of a rule engine evaluation
// (spec.md §4.6: "{isAllowed, isWarning, violations[]}").
type RuleVerdict struct {
	IsAllowed  bool
	IsWarning  bool
	Violations []RuleViolation
}

// RuleViolation is one rule that triggered during evaluation, in the order
// it was encountered (ascending priority).
type RuleViolation struct {
	Rule   domain.BusinessRule
	Action domain.BusinessRuleAction
}

// AuthService defines team authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, teamSlug, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for team registration.
type RegisterRequest struct {
	TeamSlug   string
	Password   string
	WebhookURL *string
}

// RegisterResponse holds the registration result.
type RegisterResponse struct {
	TeamID uuid.UUID
}

// TeamManagementService defines team profile self-service operations
// exposed on the dashboard (spec.md §4.4, §4.9).
type TeamManagementService interface {
	GetProfile(ctx context.Context, teamID uuid.UUID) (*TeamProfile, error)
	UpdateWebhookURL(ctx context.Context, teamID uuid.UUID, webhookURL *string) error
	RotateWebhookSecret(ctx context.Context, teamID uuid.UUID) (string, error) // returns new plaintext secret
}

// TeamProfile is the dashboard-facing view of a team.
type TeamProfile struct {
	ID         uuid.UUID
	TeamSlug   string
	Status     domain.TeamStatus
	WebhookURL *string
	CreatedAt  string
}

// ReportingService defines dashboard/reporting business logic.
type ReportingService interface {
	GetDashboardStats(ctx context.Context, teamID uuid.UUID, period string) (*PaymentStats, error)
	ListPayments(ctx context.Context, params PaymentListParams) ([]domain.Payment, int64, error)
}

// WebhookService defines async webhook delivery, queued onto asynq.
type WebhookService interface {
	EnqueueWebhook(ctx context.Context, payment *domain.Payment) error
	Dispatch(ctx context.Context, deliveryID uuid.UUID) error
}

// AuditService records audited actions with integrity sealing and
// correlation propagation (spec.md §4.8).
type AuditService interface {
	Record(ctx context.Context, entity domain.Auditable, action domain.AuditAction, userID string, details map[string]any, before, after any) error
	VerifyIntegrity(ctx context.Context, entityID, entityType string) (bool, error)
}

// CorrelationService issues and tracks correlation IDs that thread a
// logical operation through its fan-out of audit events.
type CorrelationService interface {
	Begin(rootEntityID, rootEntityType string) string
	Touch(correlationID string)
	Evict(now time.Time)
}
