package postgres

import (
	"context"
	"testing"
	"time"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBusinessRule(teamID *uuid.UUID) *domain.BusinessRule {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.BusinessRule{
		ID:         uuid.New(),
		TeamID:     teamID,
		Type:       domain.RuleTypeAmountLimit,
		Action:     domain.RuleActionDeny,
		Priority:   10,
		ValidFrom:  now,
		Parameters: map[string]string{"threshold": "1000000"},
		Enabled:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func businessRuleColumnNames() []string {
	return []string{"id", "team_id", "type", "action", "priority", "valid_from", "valid_to",
		"parameters", "allowed_currencies", "enabled", "created_at", "updated_at"}
}

func businessRuleRow(rule *domain.BusinessRule) *pgxmock.Rows {
	return pgxmock.NewRows(businessRuleColumnNames()).AddRow(
		rule.ID, rule.TeamID, rule.Type, rule.Action, rule.Priority, rule.ValidFrom, rule.ValidTo,
		rule.Parameters, rule.AllowedCurrencies, rule.Enabled, rule.CreatedAt, rule.UpdatedAt,
	)
}

func TestBusinessRuleRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRuleRepo(mock)
	rule := newTestBusinessRule(nil)

	mock.ExpectExec("INSERT INTO business_rules").
		WithArgs(
			rule.ID, rule.TeamID, rule.Type, rule.Action, rule.Priority, rule.ValidFrom, rule.ValidTo,
			rule.Parameters, rule.AllowedCurrencies, rule.Enabled, rule.CreatedAt, rule.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), rule)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRuleRepo_ListEffective(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRuleRepo(mock)
	teamID := uuid.New()
	rule := newTestBusinessRule(nil)

	mock.ExpectQuery("SELECT .+ FROM business_rules WHERE type").
		WithArgs(domain.RuleTypeAmountLimit, teamID).
		WillReturnRows(businessRuleRow(rule))

	result, err := repo.ListEffective(context.Background(), teamID, domain.RuleTypeAmountLimit)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, rule.Action, result[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRuleRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRuleRepo(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM business_rules").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
