package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// InitLogRepo implements ports.InitLogRepository, the Postgres fallback
// layer behind the init-idempotency cache's Redis fast path.
type InitLogRepo struct {
	pool Pool
}

// NewInitLogRepo creates a new InitLogRepo.
func NewInitLogRepo(pool Pool) *InitLogRepo {
	return &InitLogRepo{pool: pool}
}

// Create inserts an init log within a database transaction.
func (r *InitLogRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.InitLog) error {
	query := `INSERT INTO init_logs (key, payment_id, response_json, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, log.Key, log.PaymentID, log.ResponseJSON, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert init log: %w", err)
	}
	return nil
}

// Get fetches an init log by its (teamId, orderId) key.
func (r *InitLogRepo) Get(ctx context.Context, key string) (*domain.InitLog, error) {
	query := `SELECT key, payment_id, response_json, created_at FROM init_logs WHERE key = $1`

	log := &domain.InitLog{}
	err := r.pool.QueryRow(ctx, query, key).Scan(&log.Key, &log.PaymentID, &log.ResponseJSON, &log.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get init log: %w", err)
	}
	return log, nil
}
