package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransitionRepo implements ports.TransitionRepository, the append-only
// state transition history behind a payment's status.
type TransitionRepo struct {
	pool Pool
}

// NewTransitionRepo creates a new TransitionRepo.
func NewTransitionRepo(pool Pool) *TransitionRepo {
	return &TransitionRepo{pool: pool}
}

// Create inserts a transition record within the same transaction as the
// payment row it describes.
func (r *TransitionRepo) Create(ctx context.Context, tx pgx.Tx, record *domain.TransitionRecord) error {
	query := `INSERT INTO transition_records
		(transition_id, payment_id, from_status, to_status, transitioned_at, user_id, reason, context, is_rollback, rollback_of)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := tx.Exec(ctx, query,
		record.TransitionID, record.PaymentID, record.FromStatus, record.ToStatus,
		record.TransitionedAt, record.UserID, record.Reason, record.Context,
		record.IsRollback, record.RollbackOf,
	)
	if err != nil {
		return fmt.Errorf("insert transition record: %w", err)
	}
	return nil
}

// GetByID fetches one transition record by its TransitionID, used by
// rollback to recover the transition being reversed.
func (r *TransitionRepo) GetByID(ctx context.Context, transitionID uuid.UUID) (*domain.TransitionRecord, error) {
	query := `SELECT transition_id, payment_id, from_status, to_status, transitioned_at, user_id, reason, context, is_rollback, rollback_of
		FROM transition_records WHERE transition_id = $1`

	rec := &domain.TransitionRecord{}
	err := r.pool.QueryRow(ctx, query, transitionID).Scan(
		&rec.TransitionID, &rec.PaymentID, &rec.FromStatus, &rec.ToStatus,
		&rec.TransitionedAt, &rec.UserID, &rec.Reason, &rec.Context,
		&rec.IsRollback, &rec.RollbackOf,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transition record: %w", err)
	}
	return rec, nil
}

// ListByPaymentID returns the ordered transition history for one payment.
func (r *TransitionRepo) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.TransitionRecord, error) {
	query := `SELECT transition_id, payment_id, from_status, to_status, transitioned_at, user_id, reason, context, is_rollback, rollback_of
		FROM transition_records WHERE payment_id = $1 ORDER BY transitioned_at ASC`

	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list transition records: %w", err)
	}
	defer rows.Close()

	var records []domain.TransitionRecord
	for rows.Next() {
		rec := domain.TransitionRecord{}
		if err := rows.Scan(
			&rec.TransitionID, &rec.PaymentID, &rec.FromStatus, &rec.ToStatus,
			&rec.TransitionedAt, &rec.UserID, &rec.Reason, &rec.Context,
			&rec.IsRollback, &rec.RollbackOf,
		); err != nil {
			return nil, fmt.Errorf("scan transition record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transition records: %w", err)
	}
	return records, nil
}
