// Package worker implements the single background orchestrator that owns
// every periodic task named in spec.md §4.7: expiry sweep, reconciliation,
// audit cleanup, metrics rollup, maintenance, notification dispatch and
// lock sweep. Each task runs on its own robfig/cron/v3 schedule, wrapped in
// cron.SkipIfStillRunning so a slow tick never overlaps the next one for
// the same task, mirroring the reentrancy-safe scheduler idiom the teacher
// pack uses for its own background jobs.
package worker

import (
	"context"
	"time"

	"payment-gateway-core/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// LockSweeper is satisfied by in-process lock managers that accumulate
// expired leases in memory and need a periodic purge. Redis-backed lock
// stores rely on native key TTL and have nothing to sweep, so this
// dependency is optional.
type LockSweeper interface {
	Sweep(now time.Time) int
}

// Deps bundles every dependency the orchestrator's scheduled tasks touch.
// Reconciler, Metrics and LockSweeper are optional: a nil value disables
// that task's effect for the tick (the timer still fires and logs).
type Deps struct {
	PaymentRepo    ports.PaymentRepository
	Lifecycle      ports.PaymentLifecycleService
	Retry          ports.RetryService
	AuditRepo      ports.AuditRepository
	WebhookRepo    ports.WebhookDeliveryRepository
	WebhookSvc     ports.WebhookService
	Metrics        ports.MetricsRepository
	Reconciler     ports.Reconciler
	Maintenance    ports.MaintenanceRunner
	LockSweeper    LockSweeper
	AuditRetention time.Duration
	Log            zerolog.Logger
}

// Orchestrator owns the cron scheduler and the tick handlers for every
// timer in the background-worker timer table.
type Orchestrator struct {
	cron *cron.Cron
	deps Deps
}

// New creates an Orchestrator. Call Start to register timers and begin
// running them.
func New(deps Deps) *Orchestrator {
	if deps.AuditRetention == 0 {
		deps.AuditRetention = 90 * 24 * time.Hour
	}
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	return &Orchestrator{cron: c, deps: deps}
}

type scheduledTask struct {
	spec string
	name string
	fn   func(context.Context) error
}

func (o *Orchestrator) tasks() []scheduledTask {
	return []scheduledTask{
		{"@every 1m", "expiry_sweep", o.expirySweep},
		{"@every 1m", "retry_due", o.retryDue},
		{"@every 5m", "reconciliation", o.reconciliation},
		{"@every 1h", "audit_cleanup", o.auditCleanup},
		{"@every 15m", "metrics_rollup", o.metricsRollup},
		{"@every 6h", "maintenance", o.maintenance},
		{"@every 30s", "notifications", o.notifications},
		{"@every 1m", "lock_sweep", o.lockSweep},
	}
}

// Start registers every background task on its schedule and begins running
// the cron scheduler. Call Stop to shut it down.
func (o *Orchestrator) Start() error {
	for _, task := range o.tasks() {
		task := task
		if _, err := o.cron.AddFunc(task.spec, o.wrap(task.name, task.fn)); err != nil {
			return err
		}
	}
	o.cron.Start()
	o.deps.Log.Info().Int("tasks", len(o.tasks())).Msg("background orchestrator started")
	return nil
}

// wrap turns a task function into a cron job that logs failure without
// propagating it -- a failing task never stops the scheduler (spec.md
// §4.7).
func (o *Orchestrator) wrap(name string, fn func(context.Context) error) func() {
	return func() {
		start := time.Now()
		if err := fn(context.Background()); err != nil {
			o.deps.Log.Error().Err(err).Str("task", name).Msg("background task failed")
			return
		}
		o.deps.Log.Debug().Str("task", name).Dur("took", time.Since(start)).Msg("background task complete")
	}
}

// Stop halts the scheduler and blocks until any in-flight tick finishes or
// ctx is done, whichever comes first.
func (o *Orchestrator) Stop(ctx context.Context) {
	stopped := o.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
}
