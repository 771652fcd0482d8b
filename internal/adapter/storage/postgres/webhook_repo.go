package postgres

import (
	"context"
	"fmt"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
)

// WebhookRepo implements ports.WebhookDeliveryRepository.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepository creates a new WebhookRepo.
func NewWebhookRepository(pool Pool) ports.WebhookDeliveryRepository {
	return &WebhookRepo{pool: pool}
}

const webhookColumns = `id, payment_id, team_id, webhook_url, payload, signature,
	http_status, attempt, status, next_retry_at, last_error, created_at, updated_at`

// Create inserts a new PENDING webhook delivery log row.
func (r *WebhookRepo) Create(ctx context.Context, log *domain.WebhookDeliveryLog) error {
	query := `INSERT INTO webhook_delivery_logs (` + webhookColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.PaymentID, log.TeamID, log.WebhookURL, log.Payload, log.Signature,
		log.HTTPStatus, log.Attempt, log.Status, log.NextRetryAt, log.LastError, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook delivery log: %w", err)
	}
	return nil
}

// Update persists the outcome of one dispatch attempt.
func (r *WebhookRepo) Update(ctx context.Context, log *domain.WebhookDeliveryLog) error {
	query := `UPDATE webhook_delivery_logs
		SET http_status=$1, attempt=$2, status=$3, next_retry_at=$4, last_error=$5, updated_at=NOW()
		WHERE id=$6`

	tag, err := r.pool.Exec(ctx, query, log.HTTPStatus, log.Attempt, log.Status, log.NextRetryAt, log.LastError, log.ID)
	if err != nil {
		return fmt.Errorf("update webhook delivery log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook delivery log not found: %s", log.ID)
	}
	return nil
}

// ListPendingRetries fetches PENDING deliveries due at or before the
// cutoff, for the worker's dispatch sweep.
func (r *WebhookRepo) ListPendingRetries(ctx context.Context, before int64, limit int) ([]domain.WebhookDeliveryLog, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhook_delivery_logs
		WHERE status = 'PENDING' AND (next_retry_at IS NULL OR next_retry_at <= to_timestamp($1))
		ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending webhook retries: %w", err)
	}
	defer rows.Close()

	var logs []domain.WebhookDeliveryLog
	for rows.Next() {
		l := domain.WebhookDeliveryLog{}
		if err := rows.Scan(
			&l.ID, &l.PaymentID, &l.TeamID, &l.WebhookURL, &l.Payload, &l.Signature,
			&l.HTTPStatus, &l.Attempt, &l.Status, &l.NextRetryAt, &l.LastError, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook delivery log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook delivery logs: %w", err)
	}
	return logs, nil
}
