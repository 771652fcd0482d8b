package worker

import (
	"context"
	"fmt"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
)

const (
	expirySweepBatchSize    = 200
	retryDueBatchSize       = 100
	reconciliationBatchSize = 100
	auditCleanupBatchSize   = 1000
	notificationsBatchSize  = 50
)

// expirySweep scans non-terminal payments past their deadline and moves
// each one through the idempotent Expire operation (spec.md §4.7, "expiry
// sweep").
func (o *Orchestrator) expirySweep(ctx context.Context) error {
	due, err := o.deps.PaymentRepo.ListExpirable(ctx, time.Now().UTC().Unix(), expirySweepBatchSize)
	if err != nil {
		return fmt.Errorf("list expirable payments: %w", err)
	}

	for _, payment := range due {
		if _, err := o.deps.Lifecycle.Expire(ctx, payment.PaymentID); err != nil {
			o.deps.Log.Warn().Err(err).Str("payment_id", payment.PaymentID).Msg("expire sweep: payment")
		}
	}
	o.deps.Log.Debug().Int("count", len(due)).Msg("expiry sweep")
	return nil
}

// retryDue runs due scheduled retries of failed payment operations
// (spec.md §4.5, driven by the same timer cadence as the expiry sweep).
func (o *Orchestrator) retryDue(ctx context.Context) error {
	if o.deps.Retry == nil {
		return nil
	}
	n, err := o.deps.Retry.RunDue(ctx, retryDueBatchSize)
	if err != nil {
		return fmt.Errorf("run due retries: %w", err)
	}
	o.deps.Log.Debug().Int("count", n).Msg("retry sweep")
	return nil
}

// reconciliation compares NEW and AUTHORIZED payments against the
// configured external-processor Reconciler and applies any proposed
// transition (spec.md §4.7, "reconciliation").
func (o *Orchestrator) reconciliation(ctx context.Context) error {
	if o.deps.Reconciler == nil {
		return nil
	}

	checked := 0
	for _, status := range []domain.PaymentStatus{domain.StatusNew, domain.StatusAuthorized} {
		payments, err := o.deps.PaymentRepo.ListByStatus(ctx, status, reconciliationBatchSize)
		if err != nil {
			return fmt.Errorf("list payments by status %s: %w", status, err)
		}
		for i := range payments {
			payment := &payments[i]
			proposed, err := o.deps.Reconciler.Reconcile(ctx, payment)
			if err != nil {
				o.deps.Log.Warn().Err(err).Str("payment_id", payment.PaymentID).Msg("reconciliation: payment")
				continue
			}
			checked++
			if proposed == nil {
				continue
			}
			if err := o.applyReconciledStatus(ctx, payment, *proposed); err != nil {
				o.deps.Log.Warn().Err(err).Str("payment_id", payment.PaymentID).Str("proposed", string(*proposed)).
					Msg("reconciliation: apply proposed transition")
			}
		}
	}
	o.deps.Log.Debug().Int("checked", checked).Msg("reconciliation sweep")
	return nil
}

// applyReconciledStatus maps a reconciler's proposed status onto the
// lifecycle operation that actually drives it through the state machine --
// the reconciler names a destination, not a verb, so this translates.
func (o *Orchestrator) applyReconciledStatus(ctx context.Context, payment *domain.Payment, proposed domain.PaymentStatus) error {
	switch proposed {
	case domain.StatusAuthorized:
		_, err := o.deps.Lifecycle.Authorize(ctx, payment.PaymentID, ports.AuthorizeRequest{RequestID: "reconciliation-sweep"})
		return err
	case domain.StatusConfirmed:
		_, err := o.deps.Lifecycle.Confirm(ctx, payment.PaymentID)
		return err
	case domain.StatusCancelled:
		_, err := o.deps.Lifecycle.Cancel(ctx, payment.PaymentID, "reconciliation: processor reports cancelled")
		return err
	case domain.StatusExpired, domain.StatusDeadlineExpired:
		_, err := o.deps.Lifecycle.Expire(ctx, payment.PaymentID)
		return err
	default:
		return nil
	}
}

// auditCleanup marks audit rows older than the retention window archived
// (spec.md §4.7, "audit cleanup").
func (o *Orchestrator) auditCleanup(ctx context.Context) error {
	if o.deps.AuditRepo == nil {
		return nil
	}
	cutoff := time.Now().UTC().Add(-o.deps.AuditRetention).Unix()
	n, err := o.deps.AuditRepo.ArchiveOlderThan(ctx, cutoff, auditCleanupBatchSize)
	if err != nil {
		return fmt.Errorf("archive audit entries: %w", err)
	}
	o.deps.Log.Debug().Int64("archived", n).Msg("audit cleanup sweep")
	return nil
}

// metricsRollup aggregates the last rollup interval's payment counters into
// period records (spec.md §4.7, "metrics rollup").
func (o *Orchestrator) metricsRollup(ctx context.Context) error {
	if o.deps.Metrics == nil {
		return nil
	}
	now := time.Now().UTC()
	periodEnd := now.Truncate(15 * time.Minute)
	periodStart := periodEnd.Add(-15 * time.Minute)

	if err := o.deps.Metrics.RollupPeriod(ctx, periodStart.Unix(), periodEnd.Unix()); err != nil {
		return fmt.Errorf("rollup metrics: %w", err)
	}
	o.deps.Log.Debug().Time("period_start", periodStart).Time("period_end", periodEnd).Msg("metrics rollup")
	return nil
}

// notifications drains the pending webhook queue, dispatching each
// delivery through its own retry budget (spec.md §4.7, "notifications").
func (o *Orchestrator) notifications(ctx context.Context) error {
	if o.deps.WebhookRepo == nil || o.deps.WebhookSvc == nil {
		return nil
	}
	pending, err := o.deps.WebhookRepo.ListPendingRetries(ctx, time.Now().UTC().Unix(), notificationsBatchSize)
	if err != nil {
		return fmt.Errorf("list pending webhook deliveries: %w", err)
	}

	for _, delivery := range pending {
		if err := o.deps.WebhookSvc.Dispatch(ctx, delivery.ID); err != nil {
			o.deps.Log.Warn().Err(err).Str("delivery_id", delivery.ID.String()).Msg("notifications: dispatch")
		}
	}
	o.deps.Log.Debug().Int("count", len(pending)).Msg("notifications sweep")
	return nil
}

// maintenance runs store-level housekeeping against the hottest payment
// tables (spec.md §4.7, "maintenance").
func (o *Orchestrator) maintenance(ctx context.Context) error {
	if o.deps.Maintenance == nil {
		return nil
	}
	if err := o.deps.Maintenance.RunMaintenance(ctx); err != nil {
		return fmt.Errorf("run maintenance: %w", err)
	}
	o.deps.Log.Debug().Msg("maintenance sweep")
	return nil
}

// lockSweep purges expired leases from an in-process lock manager. A
// Redis-backed lock store relies on native key TTL and has no sweeper, so
// this is a no-op when LockSweeper is nil (spec.md §4.7, "lock sweep").
func (o *Orchestrator) lockSweep(ctx context.Context) error {
	if o.deps.LockSweeper == nil {
		return nil
	}
	removed := o.deps.LockSweeper.Sweep(time.Now().UTC())
	o.deps.Log.Debug().Int("removed", removed).Msg("lock sweep")
	return nil
}
