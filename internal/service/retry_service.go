package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/lockmgr"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	retryLockTTL = 30 * time.Second
	retryMaxAge  = 24 * time.Hour
)

// retryService implements ports.RetryService, scheduling re-attempts of a
// failed payment operation under one of the named policies and re-driving
// due ones through the lifecycle service (spec.md §4.5). Policy selection
// is deterministic by amount band; execution of a due attempt is guarded
// by a dedicated `payment:retry:{id}` lock distinct from the lifecycle
// service's own payment lock, so a retry and a concurrent lifecycle
// operation never interleave unexpectedly.
type retryService struct {
	retryRepo   ports.RetryAttemptRepository
	paymentRepo ports.PaymentRepository
	lifecycle   ports.PaymentLifecycleService
	lockMgr     ports.LockManager
	log         zerolog.Logger
}

// NewRetryService creates a new retry service.
func NewRetryService(
	retryRepo ports.RetryAttemptRepository,
	paymentRepo ports.PaymentRepository,
	lifecycle ports.PaymentLifecycleService,
	lockMgr ports.LockManager,
	log zerolog.Logger,
) ports.RetryService {
	return &retryService{
		retryRepo:   retryRepo,
		paymentRepo: paymentRepo,
		lifecycle:   lifecycle,
		lockMgr:     lockMgr,
		log:         log,
	}
}

// Schedule records a new retry attempt for operation on paymentID, due
// after the backoff computed from the policy selected for this payment's
// amount (spec.md §4.5). Schedule never fails a caller for a policy's own
// refusal to retry further -- an attempt beyond the policy's MaxAttempts,
// or against a payment already too old, is persisted as ABANDONED rather
// than rejected, so callers can always inspect what happened.
func (s *retryService) Schedule(ctx context.Context, paymentID uuid.UUID, operation domain.PaymentStatus, attemptNum int, lastErr error) (*domain.RetryAttempt, error) {
	policy := domain.RetryPolicyDefault
	if payment, err := s.paymentRepo.GetByID(ctx, paymentID); err == nil && payment != nil {
		policy = domain.SelectRetryPolicy(payment.Amount)
	}

	now := time.Now().UTC()
	backoff := policy.Backoff(attemptNum)

	attempt := &domain.RetryAttempt{
		ID:             uuid.New(),
		PaymentID:      paymentID,
		Operation:      operation,
		AttemptNum:     attemptNum,
		MaxAttempts:    policy.MaxAttempts,
		PolicyName:     policy.Name,
		Status:         domain.RetryStatusScheduled,
		ScheduledAt:    now.Add(backoff),
		BackoffSeconds: int(backoff.Seconds()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if lastErr != nil {
		attempt.LastError = lastErr.Error()
	}

	if attempt.Exhausted() || !policy.IsRetryable(errorCode(lastErr)) {
		attempt.Status = domain.RetryStatusAbandoned
	}

	if err := s.retryRepo.Create(ctx, attempt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist retry attempt: %w", err))
	}

	return attempt, nil
}

// RunDue executes every retry attempt whose ScheduledAt has passed, up to
// limit, re-driving the payment's target operation through the lifecycle
// service. Failures in one scheduled retry never prevent the others in
// the batch from running (spec.md §4.5). It returns how many attempts it
// processed.
func (s *retryService) RunDue(ctx context.Context, limit int) (int, error) {
	due, err := s.retryRepo.ListDue(ctx, time.Now().Unix(), limit)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list due retry attempts: %w", err))
	}

	processed := 0
	for i := range due {
		attempt := &due[i]
		if attempt.Exhausted() {
			attempt.Status = domain.RetryStatusAbandoned
			if err := s.retryRepo.Update(ctx, attempt); err != nil {
				s.log.Warn().Err(err).Str("retry_id", attempt.ID.String()).Msg("retry: failed to mark abandoned")
			}
			continue
		}

		s.runOne(ctx, attempt)
		processed++
	}

	return processed, nil
}

// runOne acquires the payment's retry lock, re-verifies the attempt is
// still eligible (non-terminal-success status, under the 24h age ceiling,
// retryable error code per the attempt's own policy), and delegates the
// attempt's target operation to the lifecycle service.
func (s *retryService) runOne(ctx context.Context, attempt *domain.RetryAttempt) {
	payment, err := s.paymentRepo.GetByID(ctx, attempt.PaymentID)
	if err != nil || payment == nil {
		s.failAttempt(ctx, attempt, apperror.ErrNotFound("payment"))
		return
	}

	lockName := lockmgr.RetryLockName(payment.PaymentID)
	lockOwner := uuid.New().String()
	acquired, err := s.lockMgr.Acquire(ctx, lockName, lockOwner, retryLockTTL)
	if err != nil || !acquired {
		s.log.Warn().Str("payment_id", payment.PaymentID).Msg("retry: could not acquire retry lock, leaving scheduled")
		return
	}
	defer s.lockMgr.Release(ctx, lockName, lockOwner) //nolint:errcheck

	policy, ok := domain.RetryPolicyByName(attempt.PolicyName)
	if !ok {
		policy = domain.SelectRetryPolicy(payment.Amount)
	}

	if payment.Status == domain.StatusConfirmed || payment.Status == domain.StatusRefunded {
		s.abandonAttempt(ctx, attempt, "payment already in a terminal success state")
		return
	}
	if payment.CreatedAt.Add(retryMaxAge).Before(time.Now().UTC()) {
		s.abandonAttempt(ctx, attempt, "payment older than the 24h retry ceiling")
		return
	}
	if !policy.IsRetryable(payment.ErrorCode) {
		s.abandonAttempt(ctx, attempt, fmt.Sprintf("error code %s is not retryable under policy %s", payment.ErrorCode, policy.Name))
		return
	}

	now := time.Now().UTC()
	attempt.Status = domain.RetryStatusRunning
	attempt.StartedAt = &now
	if err := s.retryRepo.Update(ctx, attempt); err != nil {
		s.log.Warn().Err(err).Str("retry_id", attempt.ID.String()).Msg("retry: failed to mark running")
	}

	var opErr error
	switch attempt.Operation {
	case domain.StatusAuthorized:
		_, opErr = s.lifecycle.Authorize(ctx, payment.PaymentID, ports.AuthorizeRequest{RequestID: domain.SystemUser})
	case domain.StatusConfirmed:
		_, opErr = s.lifecycle.Confirm(ctx, payment.PaymentID)
	case domain.StatusCancelled:
		_, opErr = s.lifecycle.Cancel(ctx, payment.PaymentID, "retry")
	case domain.StatusRefunded, domain.StatusPartialRefunded:
		_, opErr = s.lifecycle.Refund(ctx, payment.PaymentID, nil, "retry")
	default:
		opErr = fmt.Errorf("unsupported retry operation %s", attempt.Operation)
	}

	completed := time.Now().UTC()
	if opErr != nil {
		s.failAttempt(ctx, attempt, opErr)
		return
	}

	attempt.Status = domain.RetryStatusSucceeded
	attempt.CompletedAt = &completed
	if err := s.retryRepo.Update(ctx, attempt); err != nil {
		s.log.Warn().Err(err).Str("retry_id", attempt.ID.String()).Msg("retry: failed to mark succeeded")
	}
}

// abandonAttempt marks attempt ABANDONED without scheduling a follow-up --
// used when eligibility checks (age, terminal status, non-retryable code)
// rule out any further retries, as opposed to failAttempt's rescheduling.
func (s *retryService) abandonAttempt(ctx context.Context, attempt *domain.RetryAttempt, reason string) {
	completed := time.Now().UTC()
	attempt.Status = domain.RetryStatusAbandoned
	attempt.CompletedAt = &completed
	attempt.LastError = reason
	if err := s.retryRepo.Update(ctx, attempt); err != nil {
		s.log.Warn().Err(err).Str("retry_id", attempt.ID.String()).Msg("retry: failed to mark abandoned")
	}
}

func (s *retryService) failAttempt(ctx context.Context, attempt *domain.RetryAttempt, cause error) {
	completed := time.Now().UTC()
	attempt.Status = domain.RetryStatusFailed
	attempt.CompletedAt = &completed
	attempt.LastError = cause.Error()
	if err := s.retryRepo.Update(ctx, attempt); err != nil {
		s.log.Warn().Err(err).Str("retry_id", attempt.ID.String()).Msg("retry: failed to mark failed")
	}

	if _, err := s.Schedule(ctx, attempt.PaymentID, attempt.Operation, attempt.AttemptNum+1, cause); err != nil {
		s.log.Warn().Err(err).Str("payment_id", attempt.PaymentID.String()).Msg("retry: failed to schedule next attempt")
	}
}

// errorCode extracts the apperror.AppError code from err, if any, so
// policy retryable-code gating can key off the structured code rather
// than a free-text error string.
func errorCode(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
