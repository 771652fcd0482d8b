package ports

import (
	"context"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TeamRepository defines persistence operations for merchant teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	GetBySlug(ctx context.Context, teamSlug string) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	IncrementFailedAuth(ctx context.Context, id uuid.UUID, lockedUntil *int64) error
	ResetFailedAuth(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines persistence operations for payments.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking of the aggregate row during a state transition.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, teamID uuid.UUID, orderID string) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error)
	Update(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	ListExpirable(ctx context.Context, before int64, limit int) ([]domain.Payment, error)
	// ListByStatus fetches, across all teams, up to limit payments currently
	// in status -- used by the reconciliation sweep to find candidates to
	// compare against the external processor.
	ListByStatus(ctx context.Context, status domain.PaymentStatus, limit int) ([]domain.Payment, error)
	// ListActive fetches every non-terminal payment owned by teamID.
	ListActive(ctx context.Context, teamID uuid.UUID) ([]domain.Payment, error)

	List(ctx context.Context, params PaymentListParams) ([]domain.Payment, int64, error)
	GetStats(ctx context.Context, teamID uuid.UUID, periodStart *int64) (*PaymentStats, error)
	SumAmountSince(ctx context.Context, teamID uuid.UUID, since int64) (int64, error)
}

// MetricsRepository aggregates payment counters into queryable period
// records (spec.md §4.7 metrics rollup).
type MetricsRepository interface {
	RollupPeriod(ctx context.Context, periodStart, periodEnd int64) error
}

// MaintenanceRunner performs store-level housekeeping (spec.md §4.7
// maintenance timer) -- reclaiming space and refreshing planner statistics
// on the tables the payment lifecycle writes most.
type MaintenanceRunner interface {
	RunMaintenance(ctx context.Context) error
}

// Reconciler compares a non-terminal payment against an external payment
// processor's record of the same payment and proposes a transition to
// converge the two, or nil if they already agree (spec.md §4.7
// reconciliation).
type Reconciler interface {
	Reconcile(ctx context.Context, payment *domain.Payment) (*domain.PaymentStatus, error)
}

// PaymentListParams holds filter + pagination for listing payments.
type PaymentListParams struct {
	TeamID   uuid.UUID
	Status   *domain.PaymentStatus
	From     *int64 // Unix timestamp
	To       *int64 // Unix timestamp
	Page     int
	PageSize int
}

// PaymentStats holds aggregated statistics for dashboard/reporting use.
type PaymentStats struct {
	TotalPayments int64
	Authorized    int64
	Confirmed     int64
	Cancelled     int64
	Refunded      int64
	Rejected      int64
	TotalRevenue  int64 // sum of CONFIRMED amounts
	TotalRefunded int64
}

// TransitionRepository persists the append-only state transition history.
type TransitionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.TransitionRecord) error
	ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.TransitionRecord, error)
	// GetByID fetches one transition record, used by rollback to recover
	// the original fromStatus/toStatus pair being reversed.
	GetByID(ctx context.Context, transitionID uuid.UUID) (*domain.TransitionRecord, error)
}

// RetryAttemptRepository persists scheduled retry attempts (spec.md §4.5).
type RetryAttemptRepository interface {
	Create(ctx context.Context, attempt *domain.RetryAttempt) error
	Update(ctx context.Context, attempt *domain.RetryAttempt) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RetryAttempt, error)
	ListDue(ctx context.Context, before int64, limit int) ([]domain.RetryAttempt, error)
	ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.RetryAttempt, error)
}

// AuditRepository persists audit entries and supports the archival sweep.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListByEntity(ctx context.Context, entityID string, entityType string) ([]domain.AuditEntry, error)
	ListByCorrelationID(ctx context.Context, correlationID string) ([]domain.AuditEntry, error)
	ArchiveOlderThan(ctx context.Context, before int64, limit int) (int64, error)
}

// BusinessRuleRepository persists the per-team/global rule engine config.
type BusinessRuleRepository interface {
	Create(ctx context.Context, rule *domain.BusinessRule) error
	Update(ctx context.Context, rule *domain.BusinessRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BusinessRule, error)
	ListEffective(ctx context.Context, teamID uuid.UUID, ruleType domain.BusinessRuleType) ([]domain.BusinessRule, error)
}

// InitLogRepository is the Postgres fallback layer of the init-idempotency
// cache (the Redis fast path is IdempotencyCache in services.go).
type InitLogRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.InitLog) error
	Get(ctx context.Context, key string) (*domain.InitLog, error)
}

// WebhookDeliveryRepository persists webhook dispatch attempts.
type WebhookDeliveryRepository interface {
	Create(ctx context.Context, log *domain.WebhookDeliveryLog) error
	Update(ctx context.Context, log *domain.WebhookDeliveryLog) error
	ListPendingRetries(ctx context.Context, before int64, limit int) ([]domain.WebhookDeliveryLog, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
