package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

const paymentColumns = `id, payment_id, order_id, team_id, team_slug, amount, currency, refunded_amount,
	refund_count, status, initialized_at, authorized_at, confirmed_at, cancelled_at, refunded_at, expired_at,
	expires_at, authorization_attempts, max_allowed_attempts, error_code, error_message, payment_url,
	metadata, receipt, created_at, updated_at`

// Create inserts a new payment within a database transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.PaymentID, p.OrderID, p.TeamID, p.TeamSlug, p.Amount, p.Currency, p.RefundedAmount,
		p.RefundCount, p.Status, p.InitializedAt, p.AuthorizedAt, p.ConfirmedAt, p.CancelledAt, p.RefundedAt, p.ExpiredAt,
		p.ExpiresAt, p.AuthorizationAttempts, p.MaxAllowedAttempts, p.ErrorCode, p.ErrorMessage, p.PaymentURL,
		p.Metadata, p.Receipt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches a payment by its UUID (non-locking read).
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanPayment(r.pool.QueryRow(ctx, query, id))
}

// GetByPaymentID fetches a payment by its external PaymentID.
func (r *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`
	return r.scanPayment(r.pool.QueryRow(ctx, query, paymentID))
}

// GetByOrderID fetches a payment by team ID and merchant order ID, used to
// enforce per-team order uniqueness (spec.md PAY_002).
func (r *PaymentRepo) GetByOrderID(ctx context.Context, teamID uuid.UUID, orderID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE team_id = $1 AND order_id = $2`
	return r.scanPayment(r.pool.QueryRow(ctx, query, teamID, orderID))
}

// GetByIDForUpdate fetches a payment by ID with pessimistic locking. This
// MUST be called within a transaction; it is the row-lock the lifecycle
// service takes before validating and writing a state transition.
func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`
	return r.scanPayment(tx.QueryRow(ctx, query, id))
}

// Update persists a payment's full mutable state within a transaction.
func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `UPDATE payments SET
		amount=$1, currency=$2, refunded_amount=$3, refund_count=$4, status=$5,
		initialized_at=$6, authorized_at=$7, confirmed_at=$8, cancelled_at=$9, refunded_at=$10, expired_at=$11,
		expires_at=$12, authorization_attempts=$13, max_allowed_attempts=$14,
		error_code=$15, error_message=$16, payment_url=$17, metadata=$18, receipt=$19, updated_at=NOW()
		WHERE id=$20`

	tag, err := tx.Exec(ctx, query,
		p.Amount, p.Currency, p.RefundedAmount, p.RefundCount, p.Status,
		p.InitializedAt, p.AuthorizedAt, p.ConfirmedAt, p.CancelledAt, p.RefundedAt, p.ExpiredAt,
		p.ExpiresAt, p.AuthorizationAttempts, p.MaxAllowedAttempts,
		p.ErrorCode, p.ErrorMessage, p.PaymentURL, p.Metadata, p.Receipt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	return nil
}

// ListExpirable fetches non-terminal payments whose ExpiresAt has passed
// before the given cutoff, for the expiry sweep (spec.md §4.3).
func (r *PaymentRepo) ListExpirable(ctx context.Context, before int64, limit int) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE expires_at <= to_timestamp($1)
			AND status NOT IN ('CANCELLED','REVERSED','REFUNDED','REJECTED','EXPIRED','DEADLINE_EXPIRED')
		ORDER BY expires_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list expirable payments: %w", err)
	}
	defer rows.Close()
	return r.scanPayments(rows)
}

// ListByStatus fetches, across all teams, up to limit payments currently in
// status, oldest first -- used by the reconciliation sweep.
func (r *PaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus, limit int) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE status = $1
		ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments by status: %w", err)
	}
	defer rows.Close()
	return r.scanPayments(rows)
}

// ListActive fetches every non-terminal payment owned by teamID, for
// getActivePayments (spec.md §4.3).
func (r *PaymentRepo) ListActive(ctx context.Context, teamID uuid.UUID) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE team_id = $1
			AND status NOT IN ('CANCELLED','REVERSED','REFUNDED','REJECTED','EXPIRED','DEADLINE_EXPIRED')
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list active payments: %w", err)
	}
	defer rows.Close()
	return r.scanPayments(rows)
}

// List fetches payments with filtering and pagination.
func (r *PaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("team_id = $%d", argIdx))
	args = append(args, params.TeamID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payments %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	dataQuery := fmt.Sprintf(`SELECT %s FROM payments %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		paymentColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments, err := r.scanPayments(rows)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// GetStats retrieves aggregated payment statistics for a team.
func (r *PaymentRepo) GetStats(ctx context.Context, teamID uuid.UUID, periodStart *int64) (*ports.PaymentStats, error) {
	var args []any
	argIdx := 1

	condition := fmt.Sprintf("team_id = $%d", argIdx)
	args = append(args, teamID)
	argIdx++

	if periodStart != nil {
		condition += fmt.Sprintf(" AND created_at >= to_timestamp($%d)", argIdx)
		args = append(args, *periodStart)
	}

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'AUTHORIZED') AS authorized,
		COUNT(*) FILTER (WHERE status = 'CONFIRMED') AS confirmed,
		COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled,
		COUNT(*) FILTER (WHERE status IN ('REFUNDED','PARTIAL_REFUNDED')) AS refunded,
		COUNT(*) FILTER (WHERE status = 'REJECTED') AS rejected,
		COALESCE(SUM(amount) FILTER (WHERE status = 'CONFIRMED'), 0) AS revenue,
		COALESCE(SUM(refunded_amount), 0) AS total_refunded
		FROM payments WHERE %s`, condition)

	stats := &ports.PaymentStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalPayments, &stats.Authorized, &stats.Confirmed, &stats.Cancelled,
		&stats.Refunded, &stats.Rejected, &stats.TotalRevenue, &stats.TotalRefunded,
	)
	if err != nil {
		return nil, fmt.Errorf("get payment stats: %w", err)
	}
	return stats, nil
}

// SumAmountSince sums a team's CONFIRMED payment amounts since a cutoff,
// used by the rule engine's daily-limit evaluation (spec.md PAY_007).
func (r *PaymentRepo) SumAmountSince(ctx context.Context, teamID uuid.UUID, since int64) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE team_id = $1 AND status = 'CONFIRMED' AND created_at >= to_timestamp($2)`

	var total int64
	if err := r.pool.QueryRow(ctx, query, teamID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum payment amount since: %w", err)
	}
	return total, nil
}

func (r *PaymentRepo) scanPayment(row pgx.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(
		&p.ID, &p.PaymentID, &p.OrderID, &p.TeamID, &p.TeamSlug, &p.Amount, &p.Currency, &p.RefundedAmount,
		&p.RefundCount, &p.Status, &p.InitializedAt, &p.AuthorizedAt, &p.ConfirmedAt, &p.CancelledAt, &p.RefundedAt, &p.ExpiredAt,
		&p.ExpiresAt, &p.AuthorizationAttempts, &p.MaxAllowedAttempts, &p.ErrorCode, &p.ErrorMessage, &p.PaymentURL,
		&p.Metadata, &p.Receipt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepo) scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p := domain.Payment{}
		err := rows.Scan(
			&p.ID, &p.PaymentID, &p.OrderID, &p.TeamID, &p.TeamSlug, &p.Amount, &p.Currency, &p.RefundedAmount,
			&p.RefundCount, &p.Status, &p.InitializedAt, &p.AuthorizedAt, &p.ConfirmedAt, &p.CancelledAt, &p.RefundedAt, &p.ExpiredAt,
			&p.ExpiresAt, &p.AuthorizationAttempts, &p.MaxAllowedAttempts, &p.ErrorCode, &p.ErrorMessage, &p.PaymentURL,
			&p.Metadata, &p.Receipt, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}
	return payments, nil
}
