package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/internal/lockmgr"
	"payment-gateway-core/internal/metrics"
	"payment-gateway-core/internal/statemachine"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	initIdempotencyTTL = 24 * time.Hour
	paymentFormTTL     = 15 * time.Minute
	lockTTL            = 10 * time.Second
	defaultMaxAttempts = 3
)

// PaymentLifecycleServiceImpl implements ports.PaymentLifecycleService,
// driving every state change through the state machine and serializing
// concurrent operations on one payment with the lock manager -- the same
// pessimistic-locking-plus-two-layer-idempotency shape the teacher uses
// for wallet balance mutation, translated to a payment status mutation.
type PaymentLifecycleServiceImpl struct {
	paymentRepo    ports.PaymentRepository
	transitionRepo ports.TransitionRepository
	initLogRepo    ports.InitLogRepository
	idempCache     ports.IdempotencyCache
	lockMgr        ports.LockManager
	transactor     ports.DBTransactor
	sm             *statemachine.StateMachine
	ruleEngine     ports.RuleEngineService // nil = no business-rule evaluation on Init
	log            zerolog.Logger
}

// NewPaymentLifecycleService creates a new PaymentLifecycleServiceImpl.
// sm should already carry any transition-table predicates the caller
// wants enforced beyond what statemachine.New provides. ruleEngine may be
// nil, in which case Init skips rule evaluation entirely.
func NewPaymentLifecycleService(
	paymentRepo ports.PaymentRepository,
	transitionRepo ports.TransitionRepository,
	initLogRepo ports.InitLogRepository,
	idempCache ports.IdempotencyCache,
	lockMgr ports.LockManager,
	transactor ports.DBTransactor,
	sm *statemachine.StateMachine,
	ruleEngine ports.RuleEngineService,
	log zerolog.Logger,
) *PaymentLifecycleServiceImpl {
	return &PaymentLifecycleServiceImpl{
		paymentRepo:    paymentRepo,
		transitionRepo: transitionRepo,
		initLogRepo:    initLogRepo,
		idempCache:     idempCache,
		lockMgr:        lockMgr,
		transactor:     transactor,
		sm:             sm,
		ruleEngine:     ruleEngine,
		log:            log,
	}
}

// Init creates a new payment, idempotent per (teamId, orderId) pair using
// the Redis fast-path / Postgres fallback two-layer cache.
func (s *PaymentLifecycleServiceImpl) Init(ctx context.Context, req ports.InitRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	if s.ruleEngine != nil {
		verdict, err := s.ruleEngine.Evaluate(ctx, req.TeamID, domain.RuleTypeAmountLimit, req.Amount, req.Currency)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("evaluate business rules: %w", err))
		}
		if !verdict.IsAllowed {
			s.log.Warn().Str("team_id", req.TeamID.String()).Interface("violations", verdict.Violations).Msg("payment init denied by business rule")
			return nil, apperror.ErrRuleDenied()
		}
		if verdict.IsWarning {
			s.log.Warn().Str("team_id", req.TeamID.String()).Interface("violations", verdict.Violations).Msg("payment init triggered business rule warning")
		}
	}

	idempKey := domain.BuildInitKey(req.TeamID, req.OrderID)

	if cached, err := s.idempCache.Get(ctx, idempKey); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to db")
	} else if cached != nil {
		return unmarshalCachedPayment(cached)
	}

	if initLog, err := s.initLogRepo.Get(ctx, idempKey); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	} else if initLog != nil {
		return unmarshalCachedPayment(initLog.ResponseJSON)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	paymentID, err := generatePaymentID()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate payment id: %w", err))
	}

	payment := &domain.Payment{
		ID:                 uuid.New(),
		PaymentID:          paymentID,
		OrderID:            req.OrderID,
		TeamID:             req.TeamID,
		Amount:             req.Amount,
		Currency:           req.Currency,
		Status:             domain.StatusNew,
		InitializedAt:      &now,
		ExpiresAt:          now.Add(paymentFormTTL),
		MaxAllowedAttempts: defaultMaxAttempts,
		Metadata:           req.Metadata,
		Items:              req.Items,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.paymentRepo.Create(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	if err := s.transitionRepo.Create(ctx, dbTx, &domain.TransitionRecord{
		TransitionID:   uuid.New(),
		PaymentID:      payment.ID,
		FromStatus:     domain.StatusInit,
		ToStatus:       domain.StatusNew,
		TransitionedAt: now,
		UserID:         requestUserID(req.RequestID),
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record transition: %w", err))
	}

	respJSON, err := json.Marshal(payment)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}

	initLogEntry := &domain.InitLog{
		Key:          idempKey,
		PaymentID:    payment.ID,
		ResponseJSON: respJSON,
		CreatedAt:    now,
	}
	if err := s.initLogRepo.Create(ctx, dbTx, initLogEntry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.idempCache.Set(ctx, idempKey, respJSON, initIdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache init response in redis")
	}

	s.log.Info().
		Str("payment_id", payment.PaymentID).
		Str("team_id", req.TeamID.String()).
		Int64("amount", req.Amount).
		Msg("payment initialized")

	return payment, nil
}

// Authorize drives a payment to AUTHORIZED, first moving it into
// AUTHORIZING (via FORM_SHOWED from NEW) when it is not already there. The
// attempt is counted against the payment's MaxAllowedAttempts: exceeding
// it ends in AUTH_FAIL, and a payment past ExpiresAt ends in
// DEADLINE_EXPIRED (spec.md §4.3).
func (s *PaymentLifecycleServiceImpl) Authorize(ctx context.Context, paymentID string, req ports.AuthorizeRequest) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, req.RequestID, func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		if payment.Status != domain.StatusAuthorizing {
			if payment.Status == domain.StatusNew {
				if err := s.applyTransition(ctx, dbTx, payment, domain.StatusFormShowed, req.RequestID, now); err != nil {
					return "", err
				}
			}
			if err := s.applyTransition(ctx, dbTx, payment, domain.StatusAuthorizing, req.RequestID, now); err != nil {
				return "", err
			}
		}

		payment.AuthorizationAttempts++
		if payment.AuthorizationAttempts > payment.MaxAllowedAttempts {
			return domain.StatusAuthFail, nil
		}
		if payment.IsExpired(now) {
			return domain.StatusDeadlineExpired, nil
		}
		return domain.StatusAuthorized, nil
	})
}

// Confirm captures a previously authorized payment.
func (s *PaymentLifecycleServiceImpl) Confirm(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, "", func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		if payment.Status != domain.StatusConfirming {
			if err := s.applyTransition(ctx, dbTx, payment, domain.StatusConfirming, "", now); err != nil {
				return "", err
			}
		}
		return domain.StatusConfirmed, nil
	})
}

// Cancel voids a payment that has not been captured, from any status whose
// table entry permits CANCELLED (NEW and FORM_SHOWED included). CANCELLED is
// reachable directly from every non-terminal pre-capture status (spec.md
// §4.2), so this never routes through an intermediate CANCELLING hop --
// that status exists only for the explicit CANCEL/CANCELLING pair in the
// table, not as a mandatory staging step for every cancellation.
func (s *PaymentLifecycleServiceImpl) Cancel(ctx context.Context, paymentID string, reason string) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, "", func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		return domain.StatusCancelled, nil
	})
}

// Fail marks a payment as failed with the given error code/message and
// moves it to CANCELLED, populating the previously write-only
// Payment.ErrorCode/ErrorMessage fields for diagnostics and retry
// policy's retryable-code lookup.
func (s *PaymentLifecycleServiceImpl) Fail(ctx context.Context, paymentID string, errorCode string, errorMessage string) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, "", func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		payment.ErrorCode = errorCode
		payment.ErrorMessage = errorMessage
		if payment.Status != domain.StatusAuthFail {
			if s.sm.CanTransition(payment.Status, domain.StatusAuthFail) {
				if err := s.applyTransition(ctx, dbTx, payment, domain.StatusAuthFail, "", now); err != nil {
					return "", err
				}
			}
		}
		return domain.StatusCancelled, nil
	})
}

// GetActivePayments returns every non-terminal payment belonging to a
// team, used by the admin dashboard and reconciliation sweeps to find
// payments still in flight.
func (s *PaymentLifecycleServiceImpl) GetActivePayments(ctx context.Context, teamID uuid.UUID) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListActive(ctx, teamID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list active payments: %w", err))
	}
	return payments, nil
}

// Refund reverses a confirmed payment, fully or partially. amount nil
// means a full refund of the remaining refundable balance.
func (s *PaymentLifecycleServiceImpl) Refund(ctx context.Context, paymentID string, amount *int64, reason string) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, "", func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		refundAmount := payment.RefundableAmount()
		if amount != nil {
			if *amount <= 0 {
				return "", apperror.ErrInvalidAmount()
			}
			if *amount > payment.RefundableAmount() {
				return "", apperror.ErrRefundExceedsRefundable()
			}
			refundAmount = *amount
		}

		if payment.Status != domain.StatusRefunding {
			if err := s.applyTransition(ctx, dbTx, payment, domain.StatusRefunding, reason, now); err != nil {
				return "", err
			}
		}

		payment.RefundedAmount += refundAmount
		payment.RefundCount++

		if payment.RefundedAmount >= payment.Amount {
			return domain.StatusRefunded, nil
		}
		return domain.StatusPartialRefunded, nil
	})
}

// GetState returns the current persisted state of a payment without
// taking any lock, for read-only status queries.
func (s *PaymentLifecycleServiceImpl) GetState(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	return payment, nil
}

// preAuthorizationStatuses are the statuses for which the transition table
// routes a timeout to DEADLINE_EXPIRED rather than EXPIRED.
var preAuthorizationStatuses = map[domain.PaymentStatus]bool{
	domain.StatusNew:             true,
	domain.StatusFormShowed:      true,
	domain.StatusOneChooseVision: true,
	domain.StatusFinishAuthorize: true,
	domain.StatusAuthorizing:     true,
}

// Expire idempotently moves a payment past its deadline into EXPIRED (from
// AUTHORIZED) or DEADLINE_EXPIRED (from any pre-authorization status),
// driven by the background expiry sweep. A no-op, returning the payment
// unchanged, on a payment that is already terminal or has not yet reached
// ExpiresAt -- terminality is deliberately checked before transition()'s
// own lock-and-load so that call never reaches transition()'s hard
// terminal-state error for what is, for Expire, a legitimate no-op.
func (s *PaymentLifecycleServiceImpl) Expire(ctx context.Context, paymentID string) (*domain.Payment, error) {
	current, err := s.paymentRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup payment: %w", err))
	}
	if current == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	if current.IsTerminal() || !current.IsExpired(time.Now().UTC()) {
		return current, nil
	}

	target := domain.PaymentStatus("")
	switch {
	case preAuthorizationStatuses[current.Status]:
		target = domain.StatusDeadlineExpired
	case current.Status == domain.StatusAuthorized:
		target = domain.StatusExpired
	default:
		return current, nil
	}

	return s.transition(ctx, paymentID, "system", func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		return target, nil
	})
}

// Rollback reverses a previously recorded transition, moving the payment
// back to that transition's FromStatus. It only succeeds if the payment's
// current status equals the named transition's ToStatus, the payment is
// non-terminal, and the table admits a (possibly multi-hop) path back to
// FromStatus -- unlike a normal transition(), rollback does not require a
// direct table edge, so it bypasses applyTransition's sm.Validate call in
// favor of sm.PathExists (spec.md §4.2).
func (s *PaymentLifecycleServiceImpl) Rollback(ctx context.Context, paymentID string, transitionID uuid.UUID, userID string) (*domain.Payment, error) {
	record, err := s.transitionRepo.GetByID(ctx, transitionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup transition: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("transition")
	}

	return s.transition(ctx, paymentID, userID, func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error) {
		if payment.ID != record.PaymentID {
			return "", apperror.ErrRollbackNotAllowed("transition does not belong to this payment")
		}
		if payment.Status != record.ToStatus {
			return "", apperror.ErrRollbackNotAllowed(fmt.Sprintf("payment is in %s, not %s", payment.Status, record.ToStatus))
		}
		if !s.sm.PathExists(payment.Status, record.FromStatus) {
			return "", apperror.ErrRollbackNotAllowed(fmt.Sprintf("no path from %s back to %s", payment.Status, record.FromStatus))
		}

		if err := s.applyRollback(ctx, dbTx, payment, record, userID, now); err != nil {
			return "", err
		}
		return "", nil
	})
}

// applyRollback records the reversing TransitionRecord (flagged
// IsRollback, pointing back at transitionID via RollbackOf) and mutates
// payment.Status directly, bypassing the state machine's single-hop edge
// check that applyTransition enforces for forward transitions.
func (s *PaymentLifecycleServiceImpl) applyRollback(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, record *domain.TransitionRecord, userID string, now time.Time) error {
	from := payment.Status
	rollbackOf := record.TransitionID

	if err := s.transitionRepo.Create(ctx, dbTx, &domain.TransitionRecord{
		TransitionID:   uuid.New(),
		PaymentID:      payment.ID,
		FromStatus:     from,
		ToStatus:       record.FromStatus,
		TransitionedAt: now,
		UserID:         requestUserID(userID),
		IsRollback:     true,
		RollbackOf:     &rollbackOf,
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("record rollback transition: %w", err))
	}

	payment.Status = record.FromStatus
	return nil
}

// transitionFunc computes the final target status for one lifecycle
// operation, applying any intermediate transitions itself via
// applyTransition before returning the terminal target for this call.
type transitionFunc func(dbTx pgx.Tx, payment *domain.Payment, now time.Time) (domain.PaymentStatus, error)

// transition locks the payment, loads it for update inside a DB
// transaction, runs fn to compute and apply the target status, then
// commits. The lock is released once the DB transaction has settled.
// requestID attributes the resulting TransitionRecord(s) to a caller
// ("system" if empty) and is unrelated to the lock's own ownership token.
func (s *PaymentLifecycleServiceImpl) transition(ctx context.Context, paymentID string, requestID string, fn transitionFunc) (*domain.Payment, error) {
	lookup, err := s.paymentRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup payment: %w", err))
	}
	if lookup == nil {
		return nil, apperror.ErrNotFound("payment")
	}

	lockName := lockmgr.PaymentLockName(lookup.ID.String())
	lockOwner := uuid.New().String()
	acquired, err := s.lockMgr.Acquire(ctx, lockName, lockOwner, lockTTL)
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	if !acquired {
		return nil, apperror.ErrLockTimeout(fmt.Errorf("payment %s is locked by another operation", paymentID))
	}
	defer s.lockMgr.Release(ctx, lockName, lockOwner) //nolint:errcheck

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByIDForUpdate(ctx, dbTx, lookup.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment row: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("payment")
	}
	if payment.IsTerminal() {
		return nil, apperror.ErrInvalidTransition(string(payment.Status), "any")
	}

	now := time.Now().UTC()
	target, err := fn(dbTx, payment, now)
	if err != nil {
		return nil, err
	}
	if target != "" {
		if err := s.applyTransition(ctx, dbTx, payment, target, requestID, now); err != nil {
			return nil, err
		}
	}

	payment.UpdatedAt = now
	if err := s.paymentRepo.Update(ctx, dbTx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("payment_id", payment.PaymentID).
		Str("status", string(payment.Status)).
		Msg("payment transitioned")

	metrics.PaymentTransitionsTotal.WithLabelValues(string(payment.Status)).Inc()

	return payment, nil
}

// applyTransition validates the candidate transition against the state
// machine, stamps the lifecycle timestamp field for the target status,
// records the TransitionRecord, and mutates payment.Status in place.
func (s *PaymentLifecycleServiceImpl) applyTransition(ctx context.Context, dbTx pgx.Tx, payment *domain.Payment, to domain.PaymentStatus, userID string, now time.Time) error {
	from := payment.Status
	if err := s.sm.Validate(payment, to); err != nil {
		return err
	}

	if err := s.transitionRepo.Create(ctx, dbTx, &domain.TransitionRecord{
		TransitionID:   uuid.New(),
		PaymentID:      payment.ID,
		FromStatus:     from,
		ToStatus:       to,
		TransitionedAt: now,
		UserID:         requestUserID(userID),
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("record transition: %w", err))
	}

	payment.Status = to
	switch to {
	case domain.StatusAuthorized:
		payment.AuthorizedAt = &now
	case domain.StatusConfirmed:
		payment.ConfirmedAt = &now
	case domain.StatusCancelled:
		payment.CancelledAt = &now
	case domain.StatusRefunded, domain.StatusPartialRefunded:
		payment.RefundedAt = &now
	case domain.StatusExpired, domain.StatusDeadlineExpired:
		payment.ExpiredAt = &now
	}

	return nil
}

func requestUserID(requestID string) string {
	if requestID == "" {
		return domain.SystemUser
	}
	return requestID
}

func unmarshalCachedPayment(data []byte) (*domain.Payment, error) {
	payment := &domain.Payment{}
	if err := json.Unmarshal(data, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached payment: %w", err))
	}
	return payment, nil
}

func generatePaymentID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "pid_" + hex.EncodeToString(b), nil
}
