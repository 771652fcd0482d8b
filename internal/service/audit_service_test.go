package service

import (
	"context"
	"testing"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Record_PersistsSealedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, nil, newTestLogger())

	payment := &domain.Payment{PaymentID: "pid_abc123", Status: domain.StatusAuthorized}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditEntry) error {
			assert.Equal(t, domain.AuditActionPaymentAuthorize, entry.Action)
			assert.Equal(t, "pid_abc123", entry.EntityID)
			assert.Equal(t, "payment", entry.EntityType)
			assert.NotEmpty(t, entry.IntegrityHash)
			assert.True(t, entry.VerifyIntegrity())
			return nil
		},
	)

	err := svc.Record(context.Background(), payment, domain.AuditActionPaymentAuthorize, "team-1", map[string]any{"amount": 5000}, nil, payment)
	require.NoError(t, err)
}

func TestAuditService_Record_ClassifiesSensitiveAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, nil, newTestLogger())

	payment := &domain.Payment{PaymentID: "pid_lockout"}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditEntry) error {
			assert.Equal(t, domain.CategorySecurity, entry.Category)
			assert.Equal(t, domain.SeverityError, entry.Severity)
			assert.True(t, entry.IsSensitive)
			return nil
		},
	)

	err := svc.Record(context.Background(), payment, domain.AuditActionTeamLockout, "system", nil, nil, nil)
	require.NoError(t, err)
}

func TestAuditService_VerifyIntegrity_AllValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, nil, newTestLogger())

	entry := domain.AuditEntry{EntityID: "pid_1", EntityType: "payment", Action: domain.AuditActionPaymentConfirm}
	entry.Seal()

	mockRepo.EXPECT().ListByEntity(gomock.Any(), "pid_1", "payment").Return([]domain.AuditEntry{entry}, nil)

	ok, err := svc.VerifyIntegrity(context.Background(), "pid_1", "payment")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuditService_VerifyIntegrity_TamperedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, nil, newTestLogger())

	entry := domain.AuditEntry{EntityID: "pid_2", EntityType: "payment", Action: domain.AuditActionPaymentConfirm}
	entry.Seal()
	entry.UserID = "tampered-after-seal"

	mockRepo.EXPECT().ListByEntity(gomock.Any(), "pid_2", "payment").Return([]domain.AuditEntry{entry}, nil)

	ok, err := svc.VerifyIntegrity(context.Background(), "pid_2", "payment")
	require.Error(t, err)
	assert.False(t, ok)
}
