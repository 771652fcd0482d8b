package service

import (
	"context"
	"fmt"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
)

// Lockout policy: five consecutive failed logins locks the team out for
// thirty minutes (spec.md §4.4).
const (
	maxFailedAuthAttempts = 5
	teamLockoutDuration   = 30 * time.Minute
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	teamRepo ports.TeamRepository
	hashSvc  ports.HashService
	encSvc   ports.EncryptionService
	tokenSvc ports.SessionTokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	teamRepo ports.TeamRepository,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	tokenSvc ports.SessionTokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		teamRepo: teamRepo,
		hashSvc:  hashSvc,
		encSvc:   encSvc,
		tokenSvc: tokenSvc,
	}
}

// Register creates a new team account. The webhook secret is generated and
// encrypted at rest; its plaintext is only ever surfaced again through
// RotateWebhookSecret, never persisted outside the encrypted column.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	existing, err := s.teamRepo.GetBySlug(ctx, req.TeamSlug)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check team slug: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrTeamSlugExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	webhookSecret, err := generateSecret(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate webhook secret: %w", err))
	}
	webhookSecretEnc, err := s.encSvc.Encrypt(webhookSecret)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encrypt webhook secret: %w", err))
	}

	now := time.Now().UTC()
	team := &domain.Team{
		ID:                     uuid.New(),
		TeamSlug:               req.TeamSlug,
		PasswordHash:           passwordHash,
		Status:                 domain.TeamStatusActive,
		WebhookURL:             req.WebhookURL,
		WebhookSecretEncrypted: webhookSecretEnc,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create team: %w", err))
	}

	return &ports.RegisterResponse{TeamID: team.ID}, nil
}

// Login validates credentials and returns a dashboard session JWT. A team
// locked out by repeated authentication failures (spec.md §4.4) is
// rejected before its password is even checked.
func (s *AuthServiceImpl) Login(ctx context.Context, teamSlug, password string) (string, time.Time, error) {
	team, err := s.teamRepo.GetBySlug(ctx, teamSlug)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find team: %w", err))
	}
	if team == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	now := time.Now()
	if team.IsLocked(now) {
		return "", time.Time{}, apperror.ErrTeamLocked()
	}

	valid, err := s.hashSvc.Verify(password, team.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		var lockedUntil *int64
		if team.FailedAuthCount+1 >= maxFailedAuthAttempts {
			until := now.Add(teamLockoutDuration).Unix()
			lockedUntil = &until
		}
		if err := s.teamRepo.IncrementFailedAuth(ctx, team.ID, lockedUntil); err != nil {
			return "", time.Time{}, apperror.InternalError(fmt.Errorf("record failed auth: %w", err))
		}
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !team.IsActive() {
		return "", time.Time{}, apperror.ErrTeamSuspended()
	}

	if err := s.teamRepo.ResetFailedAuth(ctx, team.ID); err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("reset failed auth: %w", err))
	}

	token, expiry, err := s.tokenSvc.Generate(team.ID, team.TeamSlug)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
