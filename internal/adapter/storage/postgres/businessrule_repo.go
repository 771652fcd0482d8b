package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BusinessRuleRepo implements ports.BusinessRuleRepository.
type BusinessRuleRepo struct {
	pool Pool
}

// NewBusinessRuleRepo creates a new BusinessRuleRepo.
func NewBusinessRuleRepo(pool Pool) *BusinessRuleRepo {
	return &BusinessRuleRepo{pool: pool}
}

const businessRuleColumns = `id, team_id, type, action, priority, valid_from, valid_to,
	parameters, allowed_currencies, enabled, created_at, updated_at`

// Create inserts a new business rule.
func (r *BusinessRuleRepo) Create(ctx context.Context, rule *domain.BusinessRule) error {
	query := `INSERT INTO business_rules (` + businessRuleColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`

	_, err := r.pool.Exec(ctx, query,
		rule.ID, rule.TeamID, rule.Type, rule.Action, rule.Priority, rule.ValidFrom, rule.ValidTo,
		rule.Parameters, rule.AllowedCurrencies, rule.Enabled, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert business rule: %w", err)
	}
	return nil
}

// Update persists a rule's mutable fields.
func (r *BusinessRuleRepo) Update(ctx context.Context, rule *domain.BusinessRule) error {
	query := `UPDATE business_rules
		SET action=$1, priority=$2, valid_from=$3, valid_to=$4, parameters=$5, allowed_currencies=$6, enabled=$7, updated_at=NOW()
		WHERE id=$8`

	tag, err := r.pool.Exec(ctx, query,
		rule.Action, rule.Priority, rule.ValidFrom, rule.ValidTo, rule.Parameters, rule.AllowedCurrencies, rule.Enabled, rule.ID,
	)
	if err != nil {
		return fmt.Errorf("update business rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("business rule not found: %s", rule.ID)
	}
	return nil
}

// Delete removes a business rule.
func (r *BusinessRuleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM business_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("business rule not found: %s", id)
	}
	return nil
}

// GetByID fetches a business rule by its UUID.
func (r *BusinessRuleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BusinessRule, error) {
	query := `SELECT ` + businessRuleColumns + ` FROM business_rules WHERE id = $1`
	return r.scanRule(r.pool.QueryRow(ctx, query, id))
}

// ListEffective fetches every rule of ruleType applying to teamID or
// globally (team_id IS NULL), ordered by descending priority number. The
// rule engine re-sorts the result ascending (lower number first) before
// evaluating it, so this order does not decide which rule wins.
func (r *BusinessRuleRepo) ListEffective(ctx context.Context, teamID uuid.UUID, ruleType domain.BusinessRuleType) ([]domain.BusinessRule, error) {
	query := `SELECT ` + businessRuleColumns + ` FROM business_rules
		WHERE type = $1 AND enabled = true AND (team_id = $2 OR team_id IS NULL)
		ORDER BY priority DESC`

	rows, err := r.pool.Query(ctx, query, ruleType, teamID)
	if err != nil {
		return nil, fmt.Errorf("list effective business rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.BusinessRule
	for rows.Next() {
		rule := domain.BusinessRule{}
		if err := rows.Scan(
			&rule.ID, &rule.TeamID, &rule.Type, &rule.Action, &rule.Priority, &rule.ValidFrom, &rule.ValidTo,
			&rule.Parameters, &rule.AllowedCurrencies, &rule.Enabled, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan business rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate business rules: %w", err)
	}
	return rules, nil
}

func (r *BusinessRuleRepo) scanRule(row pgx.Row) (*domain.BusinessRule, error) {
	rule := &domain.BusinessRule{}
	err := row.Scan(
		&rule.ID, &rule.TeamID, &rule.Type, &rule.Action, &rule.Priority, &rule.ValidFrom, &rule.ValidTo,
		&rule.Parameters, &rule.AllowedCurrencies, &rule.Enabled, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan business rule: %w", err)
	}
	return rule, nil
}
