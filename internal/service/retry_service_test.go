package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRetryService(t *testing.T) (ports.RetryService, *mocks.MockRetryAttemptRepository, *mocks.MockPaymentRepository, *mocks.MockPaymentLifecycleService, *mocks.MockLockManager, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	retryRepo := mocks.NewMockRetryAttemptRepository(ctrl)
	paymentRepo := mocks.NewMockPaymentRepository(ctrl)
	lifecycle := mocks.NewMockPaymentLifecycleService(ctrl)
	lockMgr := mocks.NewMockLockManager(ctrl)
	svc := NewRetryService(retryRepo, paymentRepo, lifecycle, lockMgr, newTestLogger())
	return svc, retryRepo, paymentRepo, lifecycle, lockMgr, ctrl
}

func TestRetryService_Schedule_Success(t *testing.T) {
	svc, retryRepo, paymentRepo, _, _, ctrl := setupRetryService(t)
	defer ctrl.Finish()

	paymentID := uuid.New()
	paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(&domain.Payment{ID: paymentID, Amount: 100_000}, nil)
	retryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, attempt *domain.RetryAttempt) error {
			assert.Equal(t, domain.RetryStatusScheduled, attempt.Status)
			assert.Equal(t, paymentID, attempt.PaymentID)
			assert.Equal(t, domain.RetryPolicyDefault.Name, attempt.PolicyName)
			assert.True(t, attempt.ScheduledAt.After(time.Now()))
			return nil
		},
	)

	attempt, err := svc.Schedule(context.Background(), paymentID, domain.StatusAuthorized, 1, errors.New("timeout"))
	require.NoError(t, err)
	assert.Equal(t, "timeout", attempt.LastError)
}

func TestRetryService_Schedule_ExhaustedAttempt_IsAbandoned(t *testing.T) {
	svc, retryRepo, paymentRepo, _, _, ctrl := setupRetryService(t)
	defer ctrl.Finish()

	paymentID := uuid.New()
	paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(&domain.Payment{ID: paymentID, Amount: 100_000}, nil)
	retryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, attempt *domain.RetryAttempt) error {
			assert.Equal(t, domain.RetryStatusAbandoned, attempt.Status)
			return nil
		},
	)

	_, err := svc.Schedule(context.Background(), paymentID, domain.StatusAuthorized, domain.RetryPolicyDefault.MaxAttempts, nil)
	require.NoError(t, err)
}

func TestRetryService_RunDue_SuccessfulRetry(t *testing.T) {
	svc, retryRepo, paymentRepo, lifecycle, lockMgr, ctrl := setupRetryService(t)
	defer ctrl.Finish()

	paymentID := uuid.New()
	attempt := domain.RetryAttempt{
		ID:          uuid.New(),
		PaymentID:   paymentID,
		Operation:   domain.StatusConfirmed,
		AttemptNum:  1,
		MaxAttempts: domain.RetryPolicyDefault.MaxAttempts,
		PolicyName:  domain.RetryPolicyDefault.Name,
		Status:      domain.RetryStatusScheduled,
	}
	payment := &domain.Payment{ID: paymentID, PaymentID: "pid_retry", Status: domain.StatusAuthFail, Amount: 1000, CreatedAt: time.Now().UTC()}

	retryRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]domain.RetryAttempt{attempt}, nil)
	retryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2) // running, then succeeded
	paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(payment, nil)
	lockMgr.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	lockMgr.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	lifecycle.EXPECT().Confirm(gomock.Any(), "pid_retry").Return(payment, nil)

	processed, err := svc.RunDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestRetryService_RunDue_FailureSchedulesNextAttempt(t *testing.T) {
	svc, retryRepo, paymentRepo, lifecycle, lockMgr, ctrl := setupRetryService(t)
	defer ctrl.Finish()

	paymentID := uuid.New()
	attempt := domain.RetryAttempt{
		ID:          uuid.New(),
		PaymentID:   paymentID,
		Operation:   domain.StatusAuthorized,
		AttemptNum:  1,
		MaxAttempts: domain.RetryPolicyDefault.MaxAttempts,
		PolicyName:  domain.RetryPolicyDefault.Name,
		Status:      domain.RetryStatusScheduled,
	}
	payment := &domain.Payment{ID: paymentID, PaymentID: "pid_fail", Status: domain.StatusAuthFail, Amount: 1000, CreatedAt: time.Now().UTC()}

	retryRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]domain.RetryAttempt{attempt}, nil)
	retryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2) // running, then failed
	retryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)          // next attempt scheduled
	paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(payment, nil).Times(2) // runOne + Schedule's policy lookup
	lockMgr.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	lockMgr.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	lifecycle.EXPECT().Authorize(gomock.Any(), "pid_fail", gomock.Any()).Return(nil, errors.New("processor unavailable"))

	processed, err := svc.RunDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestRetryService_RunDue_ExhaustedAttemptIsAbandonedWithoutRunning(t *testing.T) {
	svc, retryRepo, _, _, _, ctrl := setupRetryService(t)
	defer ctrl.Finish()

	attempt := domain.RetryAttempt{
		ID:          uuid.New(),
		PaymentID:   uuid.New(),
		Operation:   domain.StatusAuthorized,
		AttemptNum:  domain.RetryPolicyDefault.MaxAttempts,
		MaxAttempts: domain.RetryPolicyDefault.MaxAttempts,
		PolicyName:  domain.RetryPolicyDefault.Name,
		Status:      domain.RetryStatusScheduled,
	}

	retryRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), 5).Return([]domain.RetryAttempt{attempt}, nil)
	retryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, a *domain.RetryAttempt) error {
			assert.Equal(t, domain.RetryStatusAbandoned, a.Status)
			return nil
		},
	)

	processed, err := svc.RunDue(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
}

func TestRetryService_RunDue_NonRetryableErrorIsAbandoned(t *testing.T) {
	svc, retryRepo, paymentRepo, _, lockMgr, ctrl := setupRetryService(t)
	defer ctrl.Finish()

	paymentID := uuid.New()
	attempt := domain.RetryAttempt{
		ID:          uuid.New(),
		PaymentID:   paymentID,
		Operation:   domain.StatusAuthorized,
		AttemptNum:  1,
		MaxAttempts: domain.RetryPolicyDefault.MaxAttempts,
		PolicyName:  domain.RetryPolicyDefault.Name,
		Status:      domain.RetryStatusScheduled,
	}
	payment := &domain.Payment{
		ID: paymentID, PaymentID: "pid_norisk", Status: domain.StatusAuthFail,
		Amount: 1000, CreatedAt: time.Now().UTC(), ErrorCode: "PAY_006",
	}

	retryRepo.EXPECT().ListDue(gomock.Any(), gomock.Any(), 10).Return([]domain.RetryAttempt{attempt}, nil)
	paymentRepo.EXPECT().GetByID(gomock.Any(), paymentID).Return(payment, nil)
	lockMgr.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	lockMgr.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	retryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, a *domain.RetryAttempt) error {
			assert.Equal(t, domain.RetryStatusAbandoned, a.Status)
			return nil
		},
	)

	processed, err := svc.RunDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}
