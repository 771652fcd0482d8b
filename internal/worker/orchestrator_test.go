package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrchestrator(t *testing.T) (*Orchestrator, *gomock.Controller, Deps) {
	ctrl := gomock.NewController(t)
	deps := Deps{
		PaymentRepo: mocks.NewMockPaymentRepository(ctrl),
		Lifecycle:   mocks.NewMockPaymentLifecycleService(ctrl),
		Retry:       mocks.NewMockRetryService(ctrl),
		AuditRepo:   mocks.NewMockAuditRepository(ctrl),
		WebhookRepo: mocks.NewMockWebhookDeliveryRepository(ctrl),
		WebhookSvc:  mocks.NewMockWebhookService(ctrl),
		Metrics:     mocks.NewMockMetricsRepository(ctrl),
		Reconciler:  mocks.NewMockReconciler(ctrl),
		Maintenance: mocks.NewMockMaintenanceRunner(ctrl),
		LockSweeper: &fakeLockSweeper{},
		Log:         zerolog.Nop(),
	}
	return New(deps), ctrl, deps
}

func TestExpirySweep_CallsExpireOnEachDuePayment(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	due := []domain.Payment{
		{PaymentID: "pid_1"},
		{PaymentID: "pid_2"},
	}

	paymentRepo := deps.PaymentRepo.(*mocks.MockPaymentRepository)
	lifecycle := deps.Lifecycle.(*mocks.MockPaymentLifecycleService)

	paymentRepo.EXPECT().ListExpirable(gomock.Any(), gomock.Any(), expirySweepBatchSize).Return(due, nil)
	lifecycle.EXPECT().Expire(gomock.Any(), "pid_1").Return(&domain.Payment{}, nil)
	lifecycle.EXPECT().Expire(gomock.Any(), "pid_2").Return(&domain.Payment{}, nil)

	require.NoError(t, o.expirySweep(ctx))
}

func TestExpirySweep_OneFailureDoesNotAbortTheRest(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	due := []domain.Payment{{PaymentID: "pid_1"}, {PaymentID: "pid_2"}}

	paymentRepo := deps.PaymentRepo.(*mocks.MockPaymentRepository)
	lifecycle := deps.Lifecycle.(*mocks.MockPaymentLifecycleService)

	paymentRepo.EXPECT().ListExpirable(gomock.Any(), gomock.Any(), expirySweepBatchSize).Return(due, nil)
	lifecycle.EXPECT().Expire(gomock.Any(), "pid_1").Return(nil, errors.New("boom"))
	lifecycle.EXPECT().Expire(gomock.Any(), "pid_2").Return(&domain.Payment{}, nil)

	require.NoError(t, o.expirySweep(ctx))
}

func TestRetryDue_NilRetryServiceIsNoop(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()
	deps.Retry = nil
	o.deps = deps

	require.NoError(t, o.retryDue(context.Background()))
}

func TestRetryDue_RunsDueRetries(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	retry := deps.Retry.(*mocks.MockRetryService)
	retry.EXPECT().RunDue(gomock.Any(), retryDueBatchSize).Return(3, nil)

	require.NoError(t, o.retryDue(context.Background()))
}

func TestReconciliation_AppliesProposedExpiry(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	paymentRepo := deps.PaymentRepo.(*mocks.MockPaymentRepository)
	reconciler := deps.Reconciler.(*mocks.MockReconciler)
	lifecycle := deps.Lifecycle.(*mocks.MockPaymentLifecycleService)

	stale := domain.Payment{PaymentID: "pid_stale", Status: domain.StatusNew}
	expired := domain.StatusExpired

	paymentRepo.EXPECT().ListByStatus(gomock.Any(), domain.StatusNew, reconciliationBatchSize).Return([]domain.Payment{stale}, nil)
	paymentRepo.EXPECT().ListByStatus(gomock.Any(), domain.StatusAuthorized, reconciliationBatchSize).Return(nil, nil)
	reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(&expired, nil)
	lifecycle.EXPECT().Expire(gomock.Any(), "pid_stale").Return(&domain.Payment{}, nil)

	require.NoError(t, o.reconciliation(context.Background()))
}

func TestReconciliation_NilReconcilerIsNoop(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()
	deps.Reconciler = nil
	o.deps = deps

	require.NoError(t, o.reconciliation(context.Background()))
}

func TestAuditCleanup_ArchivesOlderThanRetention(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	auditRepo := deps.AuditRepo.(*mocks.MockAuditRepository)
	auditRepo.EXPECT().ArchiveOlderThan(gomock.Any(), gomock.Any(), auditCleanupBatchSize).Return(int64(5), nil)

	require.NoError(t, o.auditCleanup(context.Background()))
}

func TestMetricsRollup_RollsUpLastPeriod(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	metrics := deps.Metrics.(*mocks.MockMetricsRepository)
	metrics.EXPECT().RollupPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, o.metricsRollup(context.Background()))
}

func TestNotifications_DispatchesEachPendingDelivery(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	id1, id2 := uuid.New(), uuid.New()
	webhookRepo := deps.WebhookRepo.(*mocks.MockWebhookDeliveryRepository)
	webhookSvc := deps.WebhookSvc.(*mocks.MockWebhookService)

	webhookRepo.EXPECT().ListPendingRetries(gomock.Any(), gomock.Any(), notificationsBatchSize).
		Return([]domain.WebhookDeliveryLog{{ID: id1}, {ID: id2}}, nil)
	webhookSvc.EXPECT().Dispatch(gomock.Any(), id1).Return(nil)
	webhookSvc.EXPECT().Dispatch(gomock.Any(), id2).Return(errors.New("unreachable"))

	require.NoError(t, o.notifications(context.Background()))
}

func TestMaintenance_RunsHousekeeping(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	maint := deps.Maintenance.(*mocks.MockMaintenanceRunner)
	maint.EXPECT().RunMaintenance(gomock.Any()).Return(nil)

	require.NoError(t, o.maintenance(context.Background()))
}

func TestMaintenance_NilRunnerIsNoop(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()
	deps.Maintenance = nil
	o.deps = deps

	require.NoError(t, o.maintenance(context.Background()))
}

type fakeLockSweeper struct{ removed int }

func (f *fakeLockSweeper) Sweep(now time.Time) int { return f.removed }

func TestLockSweep_DelegatesToSweeper(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()

	sweeper := &fakeLockSweeper{removed: 2}
	deps.LockSweeper = sweeper
	o.deps = deps

	require.NoError(t, o.lockSweep(context.Background()))
}

func TestLockSweep_NilSweeperIsNoop(t *testing.T) {
	o, ctrl, deps := newTestOrchestrator(t)
	defer ctrl.Finish()
	deps.LockSweeper = nil
	o.deps = deps

	require.NoError(t, o.lockSweep(context.Background()))
}

func TestNew_DefaultsAuditRetentionTo90Days(t *testing.T) {
	o := New(Deps{Log: zerolog.Nop()})
	assert.Equal(t, 90*24*time.Hour, o.deps.AuditRetention)
}

func TestStart_RegistersEveryTimer(t *testing.T) {
	o, ctrl, _ := newTestOrchestrator(t)
	defer ctrl.Finish()

	require.NoError(t, o.Start())
	o.Stop(context.Background())
}
