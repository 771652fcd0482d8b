package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
)

type teamService struct {
	teamRepo ports.TeamRepository
	encSvc   ports.EncryptionService
}

// NewTeamService creates a new team self-service management service.
func NewTeamService(
	teamRepo ports.TeamRepository,
	encSvc ports.EncryptionService,
) ports.TeamManagementService {
	return &teamService{
		teamRepo: teamRepo,
		encSvc:   encSvc,
	}
}

func (s *teamService) GetProfile(ctx context.Context, teamID uuid.UUID) (*ports.TeamProfile, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if team == nil {
		return nil, apperror.ErrNotFound("team")
	}

	return &ports.TeamProfile{
		ID:         team.ID,
		TeamSlug:   team.TeamSlug,
		Status:     team.Status,
		WebhookURL: team.WebhookURL,
		CreatedAt:  team.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *teamService) UpdateWebhookURL(ctx context.Context, teamID uuid.UUID, webhookURL *string) error {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if team == nil {
		return apperror.ErrNotFound("team")
	}

	team.WebhookURL = webhookURL
	team.UpdatedAt = time.Now()

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

func (s *teamService) RotateWebhookSecret(ctx context.Context, teamID uuid.UUID) (string, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	if team == nil {
		return "", apperror.ErrNotFound("team")
	}

	newSecret, err := generateSecret(32)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("generate webhook secret: %w", err))
	}

	encSecret, err := s.encSvc.Encrypt(newSecret)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("encrypt webhook secret: %w", err))
	}

	team.WebhookSecretEncrypted = encSecret
	team.UpdatedAt = time.Now()

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return "", apperror.InternalError(err)
	}

	return newSecret, nil
}

func generateSecret(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
