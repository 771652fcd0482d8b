// Package mocks holds hand-authored gomock doubles for the ports
// interfaces. These mirror what `mockgen -source=ports/*.go` would emit;
// they are maintained by hand here so the mock surface stays in lockstep
// with the interfaces without requiring code generation at build time.
package mocks

import (
	"context"
	"reflect"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// ---- TeamRepository ----

type MockTeamRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTeamRepositoryMockRecorder
}

type MockTeamRepositoryMockRecorder struct{ mock *MockTeamRepository }

func NewMockTeamRepository(ctrl *gomock.Controller) *MockTeamRepository {
	m := &MockTeamRepository{ctrl: ctrl}
	m.recorder = &MockTeamRepositoryMockRecorder{m}
	return m
}

func (m *MockTeamRepository) EXPECT() *MockTeamRepositoryMockRecorder { return m.recorder }

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, team)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTeamRepositoryMockRecorder) Create(ctx, team interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTeamRepository)(nil).Create), ctx, team)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTeamRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTeamRepository)(nil).GetByID), ctx, id)
}

func (m *MockTeamRepository) GetBySlug(ctx context.Context, teamSlug string) (*domain.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBySlug", ctx, teamSlug)
	ret0, _ := ret[0].(*domain.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTeamRepositoryMockRecorder) GetBySlug(ctx, teamSlug interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBySlug", reflect.TypeOf((*MockTeamRepository)(nil).GetBySlug), ctx, teamSlug)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, team)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTeamRepositoryMockRecorder) Update(ctx, team interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTeamRepository)(nil).Update), ctx, team)
}

func (m *MockTeamRepository) IncrementFailedAuth(ctx context.Context, id uuid.UUID, lockedUntil *int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementFailedAuth", ctx, id, lockedUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTeamRepositoryMockRecorder) IncrementFailedAuth(ctx, id, lockedUntil interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementFailedAuth", reflect.TypeOf((*MockTeamRepository)(nil).IncrementFailedAuth), ctx, id, lockedUntil)
}

func (m *MockTeamRepository) ResetFailedAuth(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResetFailedAuth", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTeamRepositoryMockRecorder) ResetFailedAuth(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetFailedAuth", reflect.TypeOf((*MockTeamRepository)(nil).ResetFailedAuth), ctx, id)
}

// ---- PaymentRepository ----

type MockPaymentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentRepositoryMockRecorder
}

type MockPaymentRepositoryMockRecorder struct{ mock *MockPaymentRepository }

func NewMockPaymentRepository(ctrl *gomock.Controller) *MockPaymentRepository {
	m := &MockPaymentRepository{ctrl: ctrl}
	m.recorder = &MockPaymentRepositoryMockRecorder{m}
	return m
}

func (m *MockPaymentRepository) EXPECT() *MockPaymentRepositoryMockRecorder { return m.recorder }

func (m *MockPaymentRepository) Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, payment)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPaymentRepositoryMockRecorder) Create(ctx, tx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPaymentRepository)(nil).Create), ctx, tx, payment)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPaymentRepository)(nil).GetByID), ctx, id)
}

func (m *MockPaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPaymentID", ctx, paymentID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByPaymentID(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPaymentID", reflect.TypeOf((*MockPaymentRepository)(nil).GetByPaymentID), ctx, paymentID)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, teamID uuid.UUID, orderID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByOrderID", ctx, teamID, orderID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByOrderID(ctx, teamID, orderID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByOrderID", reflect.TypeOf((*MockPaymentRepository)(nil).GetByOrderID), ctx, teamID, orderID)
}

func (m *MockPaymentRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetByIDForUpdate(ctx, tx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDForUpdate", reflect.TypeOf((*MockPaymentRepository)(nil).GetByIDForUpdate), ctx, tx, id)
}

func (m *MockPaymentRepository) Update(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, tx, payment)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPaymentRepositoryMockRecorder) Update(ctx, tx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockPaymentRepository)(nil).Update), ctx, tx, payment)
}

func (m *MockPaymentRepository) ListExpirable(ctx context.Context, before int64, limit int) ([]domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListExpirable", ctx, before, limit)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) ListExpirable(ctx, before, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListExpirable", reflect.TypeOf((*MockPaymentRepository)(nil).ListExpirable), ctx, before, limit)
}

func (m *MockPaymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus, limit int) ([]domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByStatus", ctx, status, limit)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) ListByStatus(ctx, status, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByStatus", reflect.TypeOf((*MockPaymentRepository)(nil).ListByStatus), ctx, status, limit)
}

func (m *MockPaymentRepository) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockPaymentRepositoryMockRecorder) List(ctx, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPaymentRepository)(nil).List), ctx, params)
}

func (m *MockPaymentRepository) GetStats(ctx context.Context, teamID uuid.UUID, periodStart *int64) (*ports.PaymentStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx, teamID, periodStart)
	ret0, _ := ret[0].(*ports.PaymentStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) GetStats(ctx, teamID, periodStart interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockPaymentRepository)(nil).GetStats), ctx, teamID, periodStart)
}

func (m *MockPaymentRepository) SumAmountSince(ctx context.Context, teamID uuid.UUID, since int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumAmountSince", ctx, teamID, since)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) SumAmountSince(ctx, teamID, since interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumAmountSince", reflect.TypeOf((*MockPaymentRepository)(nil).SumAmountSince), ctx, teamID, since)
}

func (m *MockPaymentRepository) ListActive(ctx context.Context, teamID uuid.UUID) ([]domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActive", ctx, teamID)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentRepositoryMockRecorder) ListActive(ctx, teamID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActive", reflect.TypeOf((*MockPaymentRepository)(nil).ListActive), ctx, teamID)
}

// ---- TransitionRepository ----

type MockTransitionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTransitionRepositoryMockRecorder
}

type MockTransitionRepositoryMockRecorder struct{ mock *MockTransitionRepository }

func NewMockTransitionRepository(ctrl *gomock.Controller) *MockTransitionRepository {
	m := &MockTransitionRepository{ctrl: ctrl}
	m.recorder = &MockTransitionRepositoryMockRecorder{m}
	return m
}

func (m *MockTransitionRepository) EXPECT() *MockTransitionRepositoryMockRecorder { return m.recorder }

func (m *MockTransitionRepository) Create(ctx context.Context, tx pgx.Tx, record *domain.TransitionRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTransitionRepositoryMockRecorder) Create(ctx, tx, record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransitionRepository)(nil).Create), ctx, tx, record)
}

func (m *MockTransitionRepository) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.TransitionRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByPaymentID", ctx, paymentID)
	ret0, _ := ret[0].([]domain.TransitionRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransitionRepositoryMockRecorder) ListByPaymentID(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByPaymentID", reflect.TypeOf((*MockTransitionRepository)(nil).ListByPaymentID), ctx, paymentID)
}

func (m *MockTransitionRepository) GetByID(ctx context.Context, transitionID uuid.UUID) (*domain.TransitionRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, transitionID)
	ret0, _ := ret[0].(*domain.TransitionRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTransitionRepositoryMockRecorder) GetByID(ctx, transitionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransitionRepository)(nil).GetByID), ctx, transitionID)
}

// ---- RetryAttemptRepository ----

type MockRetryAttemptRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRetryAttemptRepositoryMockRecorder
}

type MockRetryAttemptRepositoryMockRecorder struct{ mock *MockRetryAttemptRepository }

func NewMockRetryAttemptRepository(ctrl *gomock.Controller) *MockRetryAttemptRepository {
	m := &MockRetryAttemptRepository{ctrl: ctrl}
	m.recorder = &MockRetryAttemptRepositoryMockRecorder{m}
	return m
}

func (m *MockRetryAttemptRepository) EXPECT() *MockRetryAttemptRepositoryMockRecorder { return m.recorder }

func (m *MockRetryAttemptRepository) Create(ctx context.Context, attempt *domain.RetryAttempt) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, attempt)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockRetryAttemptRepositoryMockRecorder) Create(ctx, attempt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRetryAttemptRepository)(nil).Create), ctx, attempt)
}

func (m *MockRetryAttemptRepository) Update(ctx context.Context, attempt *domain.RetryAttempt) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, attempt)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockRetryAttemptRepositoryMockRecorder) Update(ctx, attempt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRetryAttemptRepository)(nil).Update), ctx, attempt)
}

func (m *MockRetryAttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RetryAttempt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.RetryAttempt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRetryAttemptRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRetryAttemptRepository)(nil).GetByID), ctx, id)
}

func (m *MockRetryAttemptRepository) ListDue(ctx context.Context, before int64, limit int) ([]domain.RetryAttempt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListDue", ctx, before, limit)
	ret0, _ := ret[0].([]domain.RetryAttempt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRetryAttemptRepositoryMockRecorder) ListDue(ctx, before, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDue", reflect.TypeOf((*MockRetryAttemptRepository)(nil).ListDue), ctx, before, limit)
}

func (m *MockRetryAttemptRepository) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.RetryAttempt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByPaymentID", ctx, paymentID)
	ret0, _ := ret[0].([]domain.RetryAttempt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRetryAttemptRepositoryMockRecorder) ListByPaymentID(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByPaymentID", reflect.TypeOf((*MockRetryAttemptRepository)(nil).ListByPaymentID), ctx, paymentID)
}

// ---- AuditRepository ----

type MockAuditRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuditRepositoryMockRecorder
}

type MockAuditRepositoryMockRecorder struct{ mock *MockAuditRepository }

func NewMockAuditRepository(ctrl *gomock.Controller) *MockAuditRepository {
	m := &MockAuditRepository{ctrl: ctrl}
	m.recorder = &MockAuditRepositoryMockRecorder{m}
	return m
}

func (m *MockAuditRepository) EXPECT() *MockAuditRepositoryMockRecorder { return m.recorder }

func (m *MockAuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAuditRepositoryMockRecorder) Create(ctx, entry interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditRepository)(nil).Create), ctx, entry)
}

func (m *MockAuditRepository) ListByEntity(ctx context.Context, entityID string, entityType string) ([]domain.AuditEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByEntity", ctx, entityID, entityType)
	ret0, _ := ret[0].([]domain.AuditEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuditRepositoryMockRecorder) ListByEntity(ctx, entityID, entityType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByEntity", reflect.TypeOf((*MockAuditRepository)(nil).ListByEntity), ctx, entityID, entityType)
}

func (m *MockAuditRepository) ListByCorrelationID(ctx context.Context, correlationID string) ([]domain.AuditEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByCorrelationID", ctx, correlationID)
	ret0, _ := ret[0].([]domain.AuditEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuditRepositoryMockRecorder) ListByCorrelationID(ctx, correlationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByCorrelationID", reflect.TypeOf((*MockAuditRepository)(nil).ListByCorrelationID), ctx, correlationID)
}

func (m *MockAuditRepository) ArchiveOlderThan(ctx context.Context, before int64, limit int) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ArchiveOlderThan", ctx, before, limit)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuditRepositoryMockRecorder) ArchiveOlderThan(ctx, before, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ArchiveOlderThan", reflect.TypeOf((*MockAuditRepository)(nil).ArchiveOlderThan), ctx, before, limit)
}

// ---- BusinessRuleRepository ----

type MockBusinessRuleRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBusinessRuleRepositoryMockRecorder
}

type MockBusinessRuleRepositoryMockRecorder struct{ mock *MockBusinessRuleRepository }

func NewMockBusinessRuleRepository(ctrl *gomock.Controller) *MockBusinessRuleRepository {
	m := &MockBusinessRuleRepository{ctrl: ctrl}
	m.recorder = &MockBusinessRuleRepositoryMockRecorder{m}
	return m
}

func (m *MockBusinessRuleRepository) EXPECT() *MockBusinessRuleRepositoryMockRecorder { return m.recorder }

func (m *MockBusinessRuleRepository) Create(ctx context.Context, rule *domain.BusinessRule) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, rule)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockBusinessRuleRepositoryMockRecorder) Create(ctx, rule interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBusinessRuleRepository)(nil).Create), ctx, rule)
}

func (m *MockBusinessRuleRepository) Update(ctx context.Context, rule *domain.BusinessRule) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, rule)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockBusinessRuleRepositoryMockRecorder) Update(ctx, rule interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockBusinessRuleRepository)(nil).Update), ctx, rule)
}

func (m *MockBusinessRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockBusinessRuleRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockBusinessRuleRepository)(nil).Delete), ctx, id)
}

func (m *MockBusinessRuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BusinessRule, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.BusinessRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBusinessRuleRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockBusinessRuleRepository)(nil).GetByID), ctx, id)
}

func (m *MockBusinessRuleRepository) ListEffective(ctx context.Context, teamID uuid.UUID, ruleType domain.BusinessRuleType) ([]domain.BusinessRule, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEffective", ctx, teamID, ruleType)
	ret0, _ := ret[0].([]domain.BusinessRule)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockBusinessRuleRepositoryMockRecorder) ListEffective(ctx, teamID, ruleType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEffective", reflect.TypeOf((*MockBusinessRuleRepository)(nil).ListEffective), ctx, teamID, ruleType)
}

// ---- InitLogRepository ----

type MockInitLogRepository struct {
	ctrl     *gomock.Controller
	recorder *MockInitLogRepositoryMockRecorder
}

type MockInitLogRepositoryMockRecorder struct{ mock *MockInitLogRepository }

func NewMockInitLogRepository(ctrl *gomock.Controller) *MockInitLogRepository {
	m := &MockInitLogRepository{ctrl: ctrl}
	m.recorder = &MockInitLogRepositoryMockRecorder{m}
	return m
}

func (m *MockInitLogRepository) EXPECT() *MockInitLogRepositoryMockRecorder { return m.recorder }

func (m *MockInitLogRepository) Create(ctx context.Context, tx pgx.Tx, log *domain.InitLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockInitLogRepositoryMockRecorder) Create(ctx, tx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockInitLogRepository)(nil).Create), ctx, tx, log)
}

func (m *MockInitLogRepository) Get(ctx context.Context, key string) (*domain.InitLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].(*domain.InitLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockInitLogRepositoryMockRecorder) Get(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockInitLogRepository)(nil).Get), ctx, key)
}

// ---- WebhookDeliveryRepository ----

type MockWebhookDeliveryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookDeliveryRepositoryMockRecorder
}

type MockWebhookDeliveryRepositoryMockRecorder struct{ mock *MockWebhookDeliveryRepository }

func NewMockWebhookDeliveryRepository(ctrl *gomock.Controller) *MockWebhookDeliveryRepository {
	m := &MockWebhookDeliveryRepository{ctrl: ctrl}
	m.recorder = &MockWebhookDeliveryRepositoryMockRecorder{m}
	return m
}

func (m *MockWebhookDeliveryRepository) EXPECT() *MockWebhookDeliveryRepositoryMockRecorder { return m.recorder }

func (m *MockWebhookDeliveryRepository) Create(ctx context.Context, log *domain.WebhookDeliveryLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookDeliveryRepositoryMockRecorder) Create(ctx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockWebhookDeliveryRepository)(nil).Create), ctx, log)
}

func (m *MockWebhookDeliveryRepository) Update(ctx context.Context, log *domain.WebhookDeliveryLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookDeliveryRepositoryMockRecorder) Update(ctx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockWebhookDeliveryRepository)(nil).Update), ctx, log)
}

func (m *MockWebhookDeliveryRepository) ListPendingRetries(ctx context.Context, before int64, limit int) ([]domain.WebhookDeliveryLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPendingRetries", ctx, before, limit)
	ret0, _ := ret[0].([]domain.WebhookDeliveryLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockWebhookDeliveryRepositoryMockRecorder) ListPendingRetries(ctx, before, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPendingRetries", reflect.TypeOf((*MockWebhookDeliveryRepository)(nil).ListPendingRetries), ctx, before, limit)
}

// ---- DBTransactor ----

type MockDBTransactor struct {
	ctrl     *gomock.Controller
	recorder *MockDBTransactorMockRecorder
}

type MockDBTransactorMockRecorder struct{ mock *MockDBTransactor }

func NewMockDBTransactor(ctrl *gomock.Controller) *MockDBTransactor {
	m := &MockDBTransactor{ctrl: ctrl}
	m.recorder = &MockDBTransactorMockRecorder{m}
	return m
}

func (m *MockDBTransactor) EXPECT() *MockDBTransactorMockRecorder { return m.recorder }

func (m *MockDBTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(pgx.Tx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDBTransactorMockRecorder) Begin(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockDBTransactor)(nil).Begin), ctx)
}

// ---- EncryptionService ----

type MockEncryptionService struct {
	ctrl     *gomock.Controller
	recorder *MockEncryptionServiceMockRecorder
}

type MockEncryptionServiceMockRecorder struct{ mock *MockEncryptionService }

func NewMockEncryptionService(ctrl *gomock.Controller) *MockEncryptionService {
	m := &MockEncryptionService{ctrl: ctrl}
	m.recorder = &MockEncryptionServiceMockRecorder{m}
	return m
}

func (m *MockEncryptionService) EXPECT() *MockEncryptionServiceMockRecorder { return m.recorder }

func (m *MockEncryptionService) Encrypt(plaintext string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Encrypt", plaintext)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockEncryptionServiceMockRecorder) Encrypt(plaintext interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encrypt", reflect.TypeOf((*MockEncryptionService)(nil).Encrypt), plaintext)
}

func (m *MockEncryptionService) Decrypt(ciphertext string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decrypt", ciphertext)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockEncryptionServiceMockRecorder) Decrypt(ciphertext interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decrypt", reflect.TypeOf((*MockEncryptionService)(nil).Decrypt), ciphertext)
}

// ---- SignatureService ----

type MockSignatureService struct {
	ctrl     *gomock.Controller
	recorder *MockSignatureServiceMockRecorder
}

type MockSignatureServiceMockRecorder struct{ mock *MockSignatureService }

func NewMockSignatureService(ctrl *gomock.Controller) *MockSignatureService {
	m := &MockSignatureService{ctrl: ctrl}
	m.recorder = &MockSignatureServiceMockRecorder{m}
	return m
}

func (m *MockSignatureService) EXPECT() *MockSignatureServiceMockRecorder { return m.recorder }

func (m *MockSignatureService) Sign(secretKey string, payload string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sign", secretKey, payload)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockSignatureServiceMockRecorder) Sign(secretKey, payload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockSignatureService)(nil).Sign), secretKey, payload)
}

func (m *MockSignatureService) Verify(secretKey string, payload string, signature string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", secretKey, payload, signature)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockSignatureServiceMockRecorder) Verify(secretKey, payload, signature interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockSignatureService)(nil).Verify), secretKey, payload, signature)
}

// ---- HashService ----

type MockHashService struct {
	ctrl     *gomock.Controller
	recorder *MockHashServiceMockRecorder
}

type MockHashServiceMockRecorder struct{ mock *MockHashService }

func NewMockHashService(ctrl *gomock.Controller) *MockHashService {
	m := &MockHashService{ctrl: ctrl}
	m.recorder = &MockHashServiceMockRecorder{m}
	return m
}

func (m *MockHashService) EXPECT() *MockHashServiceMockRecorder { return m.recorder }

func (m *MockHashService) Hash(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hash", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHashServiceMockRecorder) Hash(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*MockHashService)(nil).Hash), password)
}

func (m *MockHashService) Verify(password string, hash string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", password, hash)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHashServiceMockRecorder) Verify(password, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockHashService)(nil).Verify), password, hash)
}

// ---- SessionTokenService ----

type MockSessionTokenService struct {
	ctrl     *gomock.Controller
	recorder *MockSessionTokenServiceMockRecorder
}

type MockSessionTokenServiceMockRecorder struct{ mock *MockSessionTokenService }

func NewMockSessionTokenService(ctrl *gomock.Controller) *MockSessionTokenService {
	m := &MockSessionTokenService{ctrl: ctrl}
	m.recorder = &MockSessionTokenServiceMockRecorder{m}
	return m
}

func (m *MockSessionTokenService) EXPECT() *MockSessionTokenServiceMockRecorder { return m.recorder }

func (m *MockSessionTokenService) Generate(teamID uuid.UUID, teamSlug string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate", teamID, teamSlug)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockSessionTokenServiceMockRecorder) Generate(teamID, teamSlug interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockSessionTokenService)(nil).Generate), teamID, teamSlug)
}

func (m *MockSessionTokenService) Validate(tokenString string) (*ports.SessionClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", tokenString)
	ret0, _ := ret[0].(*ports.SessionClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockSessionTokenServiceMockRecorder) Validate(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockSessionTokenService)(nil).Validate), tokenString)
}

// ---- TokenAuthenticator ----

type MockTokenAuthenticator struct {
	ctrl     *gomock.Controller
	recorder *MockTokenAuthenticatorMockRecorder
}

type MockTokenAuthenticatorMockRecorder struct{ mock *MockTokenAuthenticator }

func NewMockTokenAuthenticator(ctrl *gomock.Controller) *MockTokenAuthenticator {
	m := &MockTokenAuthenticator{ctrl: ctrl}
	m.recorder = &MockTokenAuthenticatorMockRecorder{m}
	return m
}

func (m *MockTokenAuthenticator) EXPECT() *MockTokenAuthenticatorMockRecorder { return m.recorder }

func (m *MockTokenAuthenticator) BuildToken(params map[string]string, teamPassword string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BuildToken", params, teamPassword)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockTokenAuthenticatorMockRecorder) BuildToken(params, teamPassword interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuildToken", reflect.TypeOf((*MockTokenAuthenticator)(nil).BuildToken), params, teamPassword)
}

func (m *MockTokenAuthenticator) Verify(params map[string]string, teamPassword string, suppliedToken string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", params, teamPassword, suppliedToken)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTokenAuthenticatorMockRecorder) Verify(params, teamPassword, suppliedToken interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockTokenAuthenticator)(nil).Verify), params, teamPassword, suppliedToken)
}

// ---- IdempotencyCache ----

type MockIdempotencyCache struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyCacheMockRecorder
}

type MockIdempotencyCacheMockRecorder struct{ mock *MockIdempotencyCache }

func NewMockIdempotencyCache(ctrl *gomock.Controller) *MockIdempotencyCache {
	m := &MockIdempotencyCache{ctrl: ctrl}
	m.recorder = &MockIdempotencyCacheMockRecorder{m}
	return m
}

func (m *MockIdempotencyCache) EXPECT() *MockIdempotencyCacheMockRecorder { return m.recorder }

func (m *MockIdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockIdempotencyCacheMockRecorder) Get(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdempotencyCache)(nil).Get), ctx, key)
}

func (m *MockIdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockIdempotencyCacheMockRecorder) Set(ctx, key, value, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockIdempotencyCache)(nil).Set), ctx, key, value, ttl)
}

// ---- NonceStore ----

type MockNonceStore struct {
	ctrl     *gomock.Controller
	recorder *MockNonceStoreMockRecorder
}

type MockNonceStoreMockRecorder struct{ mock *MockNonceStore }

func NewMockNonceStore(ctrl *gomock.Controller) *MockNonceStore {
	m := &MockNonceStore{ctrl: ctrl}
	m.recorder = &MockNonceStoreMockRecorder{m}
	return m
}

func (m *MockNonceStore) EXPECT() *MockNonceStoreMockRecorder { return m.recorder }

func (m *MockNonceStore) CheckAndSet(ctx context.Context, teamSlug string, nonce string, ttl time.Duration) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAndSet", ctx, teamSlug, nonce, ttl)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockNonceStoreMockRecorder) CheckAndSet(ctx, teamSlug, nonce, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAndSet", reflect.TypeOf((*MockNonceStore)(nil).CheckAndSet), ctx, teamSlug, nonce, ttl)
}

// ---- LockManager ----

type MockLockManager struct {
	ctrl     *gomock.Controller
	recorder *MockLockManagerMockRecorder
}

type MockLockManagerMockRecorder struct{ mock *MockLockManager }

func NewMockLockManager(ctrl *gomock.Controller) *MockLockManager {
	m := &MockLockManager{ctrl: ctrl}
	m.recorder = &MockLockManagerMockRecorder{m}
	return m
}

func (m *MockLockManager) EXPECT() *MockLockManagerMockRecorder { return m.recorder }

func (m *MockLockManager) Acquire(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Acquire", ctx, name, ownerID, ttl)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLockManagerMockRecorder) Acquire(ctx, name, ownerID, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Acquire", reflect.TypeOf((*MockLockManager)(nil).Acquire), ctx, name, ownerID, ttl)
}

func (m *MockLockManager) Release(ctx context.Context, name string, ownerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Release", ctx, name, ownerID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockLockManagerMockRecorder) Release(ctx, name, ownerID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockLockManager)(nil).Release), ctx, name, ownerID)
}

func (m *MockLockManager) Extend(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Extend", ctx, name, ownerID, ttl)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLockManagerMockRecorder) Extend(ctx, name, ownerID, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Extend", reflect.TypeOf((*MockLockManager)(nil).Extend), ctx, name, ownerID, ttl)
}

type MockPaymentLifecycleService struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentLifecycleServiceMockRecorder
}

type MockPaymentLifecycleServiceMockRecorder struct{ mock *MockPaymentLifecycleService }

func NewMockPaymentLifecycleService(ctrl *gomock.Controller) *MockPaymentLifecycleService {
	m := &MockPaymentLifecycleService{ctrl: ctrl}
	m.recorder = &MockPaymentLifecycleServiceMockRecorder{m}
	return m
}

func (m *MockPaymentLifecycleService) EXPECT() *MockPaymentLifecycleServiceMockRecorder { return m.recorder }

func (m *MockPaymentLifecycleService) Init(ctx context.Context, req ports.InitRequest) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Init", ctx, req)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Init(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Init", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Init), ctx, req)
}

func (m *MockPaymentLifecycleService) Authorize(ctx context.Context, paymentID string, req ports.AuthorizeRequest) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authorize", ctx, paymentID, req)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Authorize(ctx, paymentID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authorize", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Authorize), ctx, paymentID, req)
}

func (m *MockPaymentLifecycleService) Confirm(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Confirm", ctx, paymentID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Confirm(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Confirm", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Confirm), ctx, paymentID)
}

func (m *MockPaymentLifecycleService) Cancel(ctx context.Context, paymentID string, reason string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, paymentID, reason)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Cancel(ctx, paymentID, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Cancel), ctx, paymentID, reason)
}

func (m *MockPaymentLifecycleService) Refund(ctx context.Context, paymentID string, amount *int64, reason string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Refund", ctx, paymentID, amount, reason)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Refund(ctx, paymentID, amount, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Refund", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Refund), ctx, paymentID, amount, reason)
}

func (m *MockPaymentLifecycleService) GetState(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetState", ctx, paymentID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) GetState(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetState", reflect.TypeOf((*MockPaymentLifecycleService)(nil).GetState), ctx, paymentID)
}

func (m *MockPaymentLifecycleService) Expire(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Expire", ctx, paymentID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Expire(ctx, paymentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Expire", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Expire), ctx, paymentID)
}

func (m *MockPaymentLifecycleService) GetActivePayments(ctx context.Context, teamID uuid.UUID) ([]domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActivePayments", ctx, teamID)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) GetActivePayments(ctx, teamID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActivePayments", reflect.TypeOf((*MockPaymentLifecycleService)(nil).GetActivePayments), ctx, teamID)
}

func (m *MockPaymentLifecycleService) Fail(ctx context.Context, paymentID string, errorCode string, errorMessage string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Fail", ctx, paymentID, errorCode, errorMessage)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Fail(ctx, paymentID, errorCode, errorMessage interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Fail", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Fail), ctx, paymentID, errorCode, errorMessage)
}

func (m *MockPaymentLifecycleService) Rollback(ctx context.Context, paymentID string, transitionID uuid.UUID, userID string) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback", ctx, paymentID, transitionID, userID)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockPaymentLifecycleServiceMockRecorder) Rollback(ctx, paymentID, transitionID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockPaymentLifecycleService)(nil).Rollback), ctx, paymentID, transitionID, userID)
}

// ---- RetryService ----

type MockRetryService struct {
	ctrl     *gomock.Controller
	recorder *MockRetryServiceMockRecorder
}

type MockRetryServiceMockRecorder struct{ mock *MockRetryService }

func NewMockRetryService(ctrl *gomock.Controller) *MockRetryService {
	m := &MockRetryService{ctrl: ctrl}
	m.recorder = &MockRetryServiceMockRecorder{m}
	return m
}

func (m *MockRetryService) EXPECT() *MockRetryServiceMockRecorder { return m.recorder }

func (m *MockRetryService) Schedule(ctx context.Context, paymentID uuid.UUID, operation domain.PaymentStatus, attemptNum int, lastErr error) (*domain.RetryAttempt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Schedule", ctx, paymentID, operation, attemptNum, lastErr)
	ret0, _ := ret[0].(*domain.RetryAttempt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRetryServiceMockRecorder) Schedule(ctx, paymentID, operation, attemptNum, lastErr interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Schedule", reflect.TypeOf((*MockRetryService)(nil).Schedule), ctx, paymentID, operation, attemptNum, lastErr)
}

func (m *MockRetryService) RunDue(ctx context.Context, limit int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunDue", ctx, limit)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRetryServiceMockRecorder) RunDue(ctx, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunDue", reflect.TypeOf((*MockRetryService)(nil).RunDue), ctx, limit)
}

// ---- RuleEngineService ----

type MockRuleEngineService struct {
	ctrl     *gomock.Controller
	recorder *MockRuleEngineServiceMockRecorder
}

type MockRuleEngineServiceMockRecorder struct{ mock *MockRuleEngineService }

func NewMockRuleEngineService(ctrl *gomock.Controller) *MockRuleEngineService {
	m := &MockRuleEngineService{ctrl: ctrl}
	m.recorder = &MockRuleEngineServiceMockRecorder{m}
	return m
}

func (m *MockRuleEngineService) EXPECT() *MockRuleEngineServiceMockRecorder { return m.recorder }

func (m *MockRuleEngineService) Evaluate(ctx context.Context, teamID uuid.UUID, ruleType domain.BusinessRuleType, amount int64, currency string) (*ports.RuleVerdict, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Evaluate", ctx, teamID, ruleType, amount, currency)
	ret0, _ := ret[0].(*ports.RuleVerdict)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockRuleEngineServiceMockRecorder) Evaluate(ctx, teamID, ruleType, amount, currency interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockRuleEngineService)(nil).Evaluate), ctx, teamID, ruleType, amount, currency)
}

// ---- AuthService ----

type MockAuthService struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceMockRecorder
}

type MockAuthServiceMockRecorder struct{ mock *MockAuthService }

func NewMockAuthService(ctrl *gomock.Controller) *MockAuthService {
	m := &MockAuthService{ctrl: ctrl}
	m.recorder = &MockAuthServiceMockRecorder{m}
	return m
}

func (m *MockAuthService) EXPECT() *MockAuthServiceMockRecorder { return m.recorder }

func (m *MockAuthService) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", ctx, req)
	ret0, _ := ret[0].(*ports.RegisterResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuthServiceMockRecorder) Register(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthService)(nil).Register), ctx, req)
}

func (m *MockAuthService) Login(ctx context.Context, teamSlug string, password string) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, teamSlug, password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockAuthServiceMockRecorder) Login(ctx, teamSlug, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthService)(nil).Login), ctx, teamSlug, password)
}

// ---- TeamManagementService ----

type MockTeamManagementService struct {
	ctrl     *gomock.Controller
	recorder *MockTeamManagementServiceMockRecorder
}

type MockTeamManagementServiceMockRecorder struct{ mock *MockTeamManagementService }

func NewMockTeamManagementService(ctrl *gomock.Controller) *MockTeamManagementService {
	m := &MockTeamManagementService{ctrl: ctrl}
	m.recorder = &MockTeamManagementServiceMockRecorder{m}
	return m
}

func (m *MockTeamManagementService) EXPECT() *MockTeamManagementServiceMockRecorder { return m.recorder }

func (m *MockTeamManagementService) GetProfile(ctx context.Context, teamID uuid.UUID) (*ports.TeamProfile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", ctx, teamID)
	ret0, _ := ret[0].(*ports.TeamProfile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTeamManagementServiceMockRecorder) GetProfile(ctx, teamID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockTeamManagementService)(nil).GetProfile), ctx, teamID)
}

func (m *MockTeamManagementService) UpdateWebhookURL(ctx context.Context, teamID uuid.UUID, webhookURL *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateWebhookURL", ctx, teamID, webhookURL)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTeamManagementServiceMockRecorder) UpdateWebhookURL(ctx, teamID, webhookURL interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateWebhookURL", reflect.TypeOf((*MockTeamManagementService)(nil).UpdateWebhookURL), ctx, teamID, webhookURL)
}

func (m *MockTeamManagementService) RotateWebhookSecret(ctx context.Context, teamID uuid.UUID) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RotateWebhookSecret", ctx, teamID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTeamManagementServiceMockRecorder) RotateWebhookSecret(ctx, teamID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RotateWebhookSecret", reflect.TypeOf((*MockTeamManagementService)(nil).RotateWebhookSecret), ctx, teamID)
}

// ---- ReportingService ----

type MockReportingService struct {
	ctrl     *gomock.Controller
	recorder *MockReportingServiceMockRecorder
}

type MockReportingServiceMockRecorder struct{ mock *MockReportingService }

func NewMockReportingService(ctrl *gomock.Controller) *MockReportingService {
	m := &MockReportingService{ctrl: ctrl}
	m.recorder = &MockReportingServiceMockRecorder{m}
	return m
}

func (m *MockReportingService) EXPECT() *MockReportingServiceMockRecorder { return m.recorder }

func (m *MockReportingService) GetDashboardStats(ctx context.Context, teamID uuid.UUID, period string) (*ports.PaymentStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDashboardStats", ctx, teamID, period)
	ret0, _ := ret[0].(*ports.PaymentStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReportingServiceMockRecorder) GetDashboardStats(ctx, teamID, period interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDashboardStats", reflect.TypeOf((*MockReportingService)(nil).GetDashboardStats), ctx, teamID, period)
}

func (m *MockReportingService) ListPayments(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPayments", ctx, params)
	ret0, _ := ret[0].([]domain.Payment)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockReportingServiceMockRecorder) ListPayments(ctx, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPayments", reflect.TypeOf((*MockReportingService)(nil).ListPayments), ctx, params)
}

// ---- WebhookService ----

type MockWebhookService struct {
	ctrl     *gomock.Controller
	recorder *MockWebhookServiceMockRecorder
}

type MockWebhookServiceMockRecorder struct{ mock *MockWebhookService }

func NewMockWebhookService(ctrl *gomock.Controller) *MockWebhookService {
	m := &MockWebhookService{ctrl: ctrl}
	m.recorder = &MockWebhookServiceMockRecorder{m}
	return m
}

func (m *MockWebhookService) EXPECT() *MockWebhookServiceMockRecorder { return m.recorder }

func (m *MockWebhookService) EnqueueWebhook(ctx context.Context, payment *domain.Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnqueueWebhook", ctx, payment)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookServiceMockRecorder) EnqueueWebhook(ctx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnqueueWebhook", reflect.TypeOf((*MockWebhookService)(nil).EnqueueWebhook), ctx, payment)
}

func (m *MockWebhookService) Dispatch(ctx context.Context, deliveryID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Dispatch", ctx, deliveryID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockWebhookServiceMockRecorder) Dispatch(ctx, deliveryID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dispatch", reflect.TypeOf((*MockWebhookService)(nil).Dispatch), ctx, deliveryID)
}

// ---- AuditService ----

type MockAuditService struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceMockRecorder
}

type MockAuditServiceMockRecorder struct{ mock *MockAuditService }

func NewMockAuditService(ctrl *gomock.Controller) *MockAuditService {
	m := &MockAuditService{ctrl: ctrl}
	m.recorder = &MockAuditServiceMockRecorder{m}
	return m
}

func (m *MockAuditService) EXPECT() *MockAuditServiceMockRecorder { return m.recorder }

func (m *MockAuditService) Record(ctx context.Context, entity domain.Auditable, action domain.AuditAction, userID string, details map[string]any, before, after any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Record", ctx, entity, action, userID, details, before, after)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockAuditServiceMockRecorder) Record(ctx, entity, action, userID, details, before, after interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockAuditService)(nil).Record), ctx, entity, action, userID, details, before, after)
}

func (m *MockAuditService) VerifyIntegrity(ctx context.Context, entityID string, entityType string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyIntegrity", ctx, entityID, entityType)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockAuditServiceMockRecorder) VerifyIntegrity(ctx, entityID, entityType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyIntegrity", reflect.TypeOf((*MockAuditService)(nil).VerifyIntegrity), ctx, entityID, entityType)
}

// ---- CorrelationService ----

type MockCorrelationService struct {
	ctrl     *gomock.Controller
	recorder *MockCorrelationServiceMockRecorder
}

type MockCorrelationServiceMockRecorder struct{ mock *MockCorrelationService }

func NewMockCorrelationService(ctrl *gomock.Controller) *MockCorrelationService {
	m := &MockCorrelationService{ctrl: ctrl}
	m.recorder = &MockCorrelationServiceMockRecorder{m}
	return m
}

func (m *MockCorrelationService) EXPECT() *MockCorrelationServiceMockRecorder { return m.recorder }

func (m *MockCorrelationService) Begin(rootEntityID string, rootEntityType string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", rootEntityID, rootEntityType)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockCorrelationServiceMockRecorder) Begin(rootEntityID, rootEntityType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockCorrelationService)(nil).Begin), rootEntityID, rootEntityType)
}

func (m *MockCorrelationService) Touch(correlationID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Touch", correlationID)
}

func (mr *MockCorrelationServiceMockRecorder) Touch(correlationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Touch", reflect.TypeOf((*MockCorrelationService)(nil).Touch), correlationID)
}

func (m *MockCorrelationService) Evict(now time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Evict", now)
}

func (mr *MockCorrelationServiceMockRecorder) Evict(now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evict", reflect.TypeOf((*MockCorrelationService)(nil).Evict), now)
}

// ---- MetricsRepository ----

type MockMetricsRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRepositoryMockRecorder
}

type MockMetricsRepositoryMockRecorder struct{ mock *MockMetricsRepository }

func NewMockMetricsRepository(ctrl *gomock.Controller) *MockMetricsRepository {
	m := &MockMetricsRepository{ctrl: ctrl}
	m.recorder = &MockMetricsRepositoryMockRecorder{m}
	return m
}

func (m *MockMetricsRepository) EXPECT() *MockMetricsRepositoryMockRecorder { return m.recorder }

func (m *MockMetricsRepository) RollupPeriod(ctx context.Context, periodStart, periodEnd int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RollupPeriod", ctx, periodStart, periodEnd)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockMetricsRepositoryMockRecorder) RollupPeriod(ctx, periodStart, periodEnd interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RollupPeriod", reflect.TypeOf((*MockMetricsRepository)(nil).RollupPeriod), ctx, periodStart, periodEnd)
}

// ---- Reconciler ----

type MockReconciler struct {
	ctrl     *gomock.Controller
	recorder *MockReconcilerMockRecorder
}

type MockReconcilerMockRecorder struct{ mock *MockReconciler }

func NewMockReconciler(ctrl *gomock.Controller) *MockReconciler {
	m := &MockReconciler{ctrl: ctrl}
	m.recorder = &MockReconcilerMockRecorder{m}
	return m
}

func (m *MockReconciler) EXPECT() *MockReconcilerMockRecorder { return m.recorder }

func (m *MockReconciler) Reconcile(ctx context.Context, payment *domain.Payment) (*domain.PaymentStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reconcile", ctx, payment)
	ret0, _ := ret[0].(*domain.PaymentStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockReconcilerMockRecorder) Reconcile(ctx, payment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reconcile", reflect.TypeOf((*MockReconciler)(nil).Reconcile), ctx, payment)
}

// ---- MaintenanceRunner ----

type MockMaintenanceRunner struct {
	ctrl     *gomock.Controller
	recorder *MockMaintenanceRunnerMockRecorder
}

type MockMaintenanceRunnerMockRecorder struct{ mock *MockMaintenanceRunner }

func NewMockMaintenanceRunner(ctrl *gomock.Controller) *MockMaintenanceRunner {
	m := &MockMaintenanceRunner{ctrl: ctrl}
	m.recorder = &MockMaintenanceRunnerMockRecorder{m}
	return m
}

func (m *MockMaintenanceRunner) EXPECT() *MockMaintenanceRunnerMockRecorder { return m.recorder }

func (m *MockMaintenanceRunner) RunMaintenance(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunMaintenance", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockMaintenanceRunnerMockRecorder) RunMaintenance(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunMaintenance", reflect.TypeOf((*MockMaintenanceRunner)(nil).RunMaintenance), ctx)
}
