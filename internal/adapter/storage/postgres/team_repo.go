package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TeamRepo implements ports.TeamRepository.
type TeamRepo struct {
	pool Pool
}

// NewTeamRepo creates a new TeamRepo.
func NewTeamRepo(pool Pool) *TeamRepo {
	return &TeamRepo{pool: pool}
}

// Create inserts a new team into the database.
func (r *TeamRepo) Create(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (id, team_slug, password_hash, api_secret_encrypted, status, failed_auth_count, locked_until,
		min_payment_amount, max_payment_amount, daily_limit, supported_currencies,
		webhook_url, webhook_secret_encrypted, enable_retries, enable_fraud_checks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.TeamSlug, t.PasswordHash, t.APISecretEncrypted, t.Status, t.FailedAuthCount, t.LockedUntil,
		t.MinPaymentAmount, t.MaxPaymentAmount, t.DailyLimit, t.SupportedCurrencies,
		t.WebhookURL, t.WebhookSecretEncrypted, t.EnableRetries, t.EnableFraudChecks,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// GetByID fetches a team by its UUID.
func (r *TeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	query := `SELECT id, team_slug, password_hash, api_secret_encrypted, status, failed_auth_count, locked_until,
		min_payment_amount, max_payment_amount, daily_limit, supported_currencies,
		webhook_url, webhook_secret_encrypted, enable_retries, enable_fraud_checks, created_at, updated_at
		FROM teams WHERE id = $1`

	return r.scanTeam(r.pool.QueryRow(ctx, query, id))
}

// GetBySlug fetches a team by its unique merchant slug.
func (r *TeamRepo) GetBySlug(ctx context.Context, teamSlug string) (*domain.Team, error) {
	query := `SELECT id, team_slug, password_hash, api_secret_encrypted, status, failed_auth_count, locked_until,
		min_payment_amount, max_payment_amount, daily_limit, supported_currencies,
		webhook_url, webhook_secret_encrypted, enable_retries, enable_fraud_checks, created_at, updated_at
		FROM teams WHERE team_slug = $1`

	return r.scanTeam(r.pool.QueryRow(ctx, query, teamSlug))
}

// Update updates a team's mutable fields.
func (r *TeamRepo) Update(ctx context.Context, t *domain.Team) error {
	query := `UPDATE teams
		SET status=$1, min_payment_amount=$2, max_payment_amount=$3, daily_limit=$4,
			supported_currencies=$5, webhook_url=$6, webhook_secret_encrypted=$7,
			enable_retries=$8, enable_fraud_checks=$9, updated_at=NOW()
		WHERE id=$10`
	_, err := r.pool.Exec(ctx, query,
		t.Status, t.MinPaymentAmount, t.MaxPaymentAmount, t.DailyLimit,
		t.SupportedCurrencies, t.WebhookURL, t.WebhookSecretEncrypted,
		t.EnableRetries, t.EnableFraudChecks, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return nil
}

// IncrementFailedAuth bumps the failed-auth counter and optionally records
// a lockout deadline, per spec.md §4.4's team-lockout policy.
func (r *TeamRepo) IncrementFailedAuth(ctx context.Context, id uuid.UUID, lockedUntil *int64) error {
	query := `UPDATE teams SET failed_auth_count = failed_auth_count + 1, locked_until = to_timestamp($1), updated_at = NOW() WHERE id = $2`
	_, err := r.pool.Exec(ctx, query, lockedUntil, id)
	if err != nil {
		return fmt.Errorf("increment failed auth: %w", err)
	}
	return nil
}

// ResetFailedAuth clears the failed-auth counter and lockout after a
// successful authentication.
func (r *TeamRepo) ResetFailedAuth(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE teams SET failed_auth_count = 0, locked_until = NULL, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("reset failed auth: %w", err)
	}
	return nil
}

func (r *TeamRepo) scanTeam(row pgx.Row) (*domain.Team, error) {
	t := &domain.Team{}
	err := row.Scan(
		&t.ID, &t.TeamSlug, &t.PasswordHash, &t.APISecretEncrypted, &t.Status, &t.FailedAuthCount, &t.LockedUntil,
		&t.MinPaymentAmount, &t.MaxPaymentAmount, &t.DailyLimit, &t.SupportedCurrencies,
		&t.WebhookURL, &t.WebhookSecretEncrypted, &t.EnableRetries, &t.EnableFraudChecks,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan team: %w", err)
	}
	return t, nil
}
