package postgres

import (
	"context"
	"fmt"

	"payment-gateway-core/internal/core/ports"
)

// MetricsRepo implements ports.MetricsRepository, aggregating payment
// counters into a queryable period record (spec.md §4.7 metrics rollup).
type MetricsRepo struct {
	pool Pool
}

// NewMetricsRepo creates a new MetricsRepo.
func NewMetricsRepo(pool Pool) ports.MetricsRepository {
	return &MetricsRepo{pool: pool}
}

// RollupPeriod aggregates per-team payment counters for [periodStart,
// periodEnd) into payment_metrics_period, one row per team touched in the
// window. Re-running for the same window replaces the prior rollup.
func (r *MetricsRepo) RollupPeriod(ctx context.Context, periodStart, periodEnd int64) error {
	query := `INSERT INTO payment_metrics_period
		(team_id, period_start, period_end, total_payments, authorized, confirmed, cancelled, refunded, rejected, revenue, total_refunded)
		SELECT
			team_id,
			to_timestamp($1),
			to_timestamp($2),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'AUTHORIZED'),
			COUNT(*) FILTER (WHERE status = 'CONFIRMED'),
			COUNT(*) FILTER (WHERE status = 'CANCELLED'),
			COUNT(*) FILTER (WHERE status IN ('REFUNDED','PARTIAL_REFUNDED')),
			COUNT(*) FILTER (WHERE status = 'REJECTED'),
			COALESCE(SUM(amount) FILTER (WHERE status = 'CONFIRMED'), 0),
			COALESCE(SUM(refunded_amount), 0)
		FROM payments
		WHERE created_at >= to_timestamp($1) AND created_at < to_timestamp($2)
		GROUP BY team_id
		ON CONFLICT (team_id, period_start, period_end) DO UPDATE SET
			total_payments = EXCLUDED.total_payments,
			authorized     = EXCLUDED.authorized,
			confirmed      = EXCLUDED.confirmed,
			cancelled      = EXCLUDED.cancelled,
			refunded       = EXCLUDED.refunded,
			rejected       = EXCLUDED.rejected,
			revenue        = EXCLUDED.revenue,
			total_refunded = EXCLUDED.total_refunded`

	if _, err := r.pool.Exec(ctx, query, periodStart, periodEnd); err != nil {
		return fmt.Errorf("rollup payment metrics: %w", err)
	}
	return nil
}
