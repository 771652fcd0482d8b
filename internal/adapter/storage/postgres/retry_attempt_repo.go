package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RetryAttemptRepo implements ports.RetryAttemptRepository.
type RetryAttemptRepo struct {
	pool Pool
}

// NewRetryAttemptRepo creates a new RetryAttemptRepo.
func NewRetryAttemptRepo(pool Pool) *RetryAttemptRepo {
	return &RetryAttemptRepo{pool: pool}
}

const retryAttemptColumns = `id, payment_id, operation, attempt_num, max_attempts, policy_name, status,
	scheduled_at, started_at, completed_at, last_error, backoff_seconds, created_at, updated_at`

// Create inserts a new scheduled retry attempt.
func (r *RetryAttemptRepo) Create(ctx context.Context, attempt *domain.RetryAttempt) error {
	query := `INSERT INTO retry_attempts (` + retryAttemptColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

	_, err := r.pool.Exec(ctx, query,
		attempt.ID, attempt.PaymentID, attempt.Operation, attempt.AttemptNum, attempt.MaxAttempts, attempt.PolicyName, attempt.Status,
		attempt.ScheduledAt, attempt.StartedAt, attempt.CompletedAt, attempt.LastError, attempt.BackoffSeconds,
		attempt.CreatedAt, attempt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert retry attempt: %w", err)
	}
	return nil
}

// Update persists a retry attempt's mutable fields (status, timestamps, error).
func (r *RetryAttemptRepo) Update(ctx context.Context, attempt *domain.RetryAttempt) error {
	query := `UPDATE retry_attempts SET status=$1, started_at=$2, completed_at=$3, last_error=$4, updated_at=NOW()
		WHERE id=$5`

	tag, err := r.pool.Exec(ctx, query, attempt.Status, attempt.StartedAt, attempt.CompletedAt, attempt.LastError, attempt.ID)
	if err != nil {
		return fmt.Errorf("update retry attempt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("retry attempt not found: %s", attempt.ID)
	}
	return nil
}

// GetByID fetches a retry attempt by its UUID.
func (r *RetryAttemptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RetryAttempt, error) {
	query := `SELECT ` + retryAttemptColumns + ` FROM retry_attempts WHERE id = $1`
	return r.scanAttempt(r.pool.QueryRow(ctx, query, id))
}

// ListDue fetches retry attempts scheduled at or before the cutoff,
// earliest first, for the retry scheduler to drive.
func (r *RetryAttemptRepo) ListDue(ctx context.Context, before int64, limit int) ([]domain.RetryAttempt, error) {
	query := `SELECT ` + retryAttemptColumns + ` FROM retry_attempts
		WHERE status = 'SCHEDULED' AND scheduled_at <= to_timestamp($1)
		ORDER BY scheduled_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list due retry attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.RetryAttempt
	for rows.Next() {
		a := domain.RetryAttempt{}
		if err := rows.Scan(
			&a.ID, &a.PaymentID, &a.Operation, &a.AttemptNum, &a.MaxAttempts, &a.PolicyName, &a.Status,
			&a.ScheduledAt, &a.StartedAt, &a.CompletedAt, &a.LastError, &a.BackoffSeconds,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan retry attempt row: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retry attempt rows: %w", err)
	}
	return attempts, nil
}

// ListByPaymentID returns every retry attempt recorded for a payment.
func (r *RetryAttemptRepo) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.RetryAttempt, error) {
	query := `SELECT ` + retryAttemptColumns + ` FROM retry_attempts WHERE payment_id = $1 ORDER BY attempt_num ASC`

	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list retry attempts by payment: %w", err)
	}
	defer rows.Close()

	var attempts []domain.RetryAttempt
	for rows.Next() {
		a := domain.RetryAttempt{}
		if err := rows.Scan(
			&a.ID, &a.PaymentID, &a.Operation, &a.AttemptNum, &a.MaxAttempts, &a.PolicyName, &a.Status,
			&a.ScheduledAt, &a.StartedAt, &a.CompletedAt, &a.LastError, &a.BackoffSeconds,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan retry attempt row: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retry attempt rows: %w", err)
	}
	return attempts, nil
}

func (r *RetryAttemptRepo) scanAttempt(row pgx.Row) (*domain.RetryAttempt, error) {
	a := &domain.RetryAttempt{}
	err := row.Scan(
		&a.ID, &a.PaymentID, &a.Operation, &a.AttemptNum, &a.MaxAttempts, &a.PolicyName, &a.Status,
		&a.ScheduledAt, &a.StartedAt, &a.CompletedAt, &a.LastError, &a.BackoffSeconds,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan retry attempt: %w", err)
	}
	return a, nil
}
