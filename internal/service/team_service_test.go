package service

import (
	"context"
	"errors"
	"testing"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTeamService_GetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	svc := NewTeamService(mockRepo, mockEnc)

	teamID := uuid.New()
	webhookURL := "https://example.com/webhook"
	mockRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(&domain.Team{
		ID:         teamID,
		TeamSlug:   "acme",
		WebhookURL: &webhookURL,
		Status:     domain.TeamStatusActive,
	}, nil)

	profile, err := svc.GetProfile(context.Background(), teamID)
	require.NoError(t, err)
	assert.Equal(t, teamID, profile.ID)
	assert.Equal(t, "acme", profile.TeamSlug)
	assert.Equal(t, &webhookURL, profile.WebhookURL)
}

func TestTeamService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	svc := NewTeamService(mockRepo, mockEnc)

	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestTeamService_UpdateWebhookURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	svc := NewTeamService(mockRepo, mockEnc)

	teamID := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(&domain.Team{
		ID: teamID,
	}, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	newURL := "https://new.example.com/hook"
	err := svc.UpdateWebhookURL(context.Background(), teamID, &newURL)
	assert.NoError(t, err)
}

func TestTeamService_RotateWebhookSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	svc := NewTeamService(mockRepo, mockEnc)

	teamID := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(&domain.Team{
		ID: teamID,
	}, nil)
	mockEnc.EXPECT().Encrypt(gomock.Any()).Return("encrypted-new-secret", nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	secret, err := svc.RotateWebhookSecret(context.Background(), teamID)
	require.NoError(t, err)
	assert.True(t, len(secret) > 10)
}

func TestTeamService_RotateWebhookSecret_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	svc := NewTeamService(mockRepo, mockEnc)

	teamID := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(&domain.Team{
		ID: teamID,
	}, nil)
	mockEnc.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("encrypt failed"))

	_, err := svc.RotateWebhookSecret(context.Background(), teamID)
	assert.Error(t, err)
}
