package service

import (
	"context"
	"testing"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRuleEngineService_Evaluate_NoRules_Allows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockBusinessRuleRepository(ctrl)
	svc := NewRuleEngineService(ruleRepo)

	teamID := uuid.New()
	ruleRepo.EXPECT().ListEffective(gomock.Any(), teamID, domain.RuleTypeAmountLimit).Return(nil, nil)

	verdict, err := svc.Evaluate(context.Background(), teamID, domain.RuleTypeAmountLimit, 10000, "RUB")
	require.NoError(t, err)
	assert.True(t, verdict.IsAllowed)
	assert.False(t, verdict.IsWarning)
	assert.Empty(t, verdict.Violations)
}

func TestRuleEngineService_Evaluate_AmountLimit_Triggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockBusinessRuleRepository(ctrl)
	svc := NewRuleEngineService(ruleRepo)

	teamID := uuid.New()
	rules := []domain.BusinessRule{
		{
			ID:         uuid.New(),
			Type:       domain.RuleTypeAmountLimit,
			Action:     domain.RuleActionDeny,
			Priority:   10,
			Enabled:    true,
			Parameters: map[string]string{"max_amount": "5000"},
		},
	}
	ruleRepo.EXPECT().ListEffective(gomock.Any(), teamID, domain.RuleTypeAmountLimit).Return(rules, nil)

	verdict, err := svc.Evaluate(context.Background(), teamID, domain.RuleTypeAmountLimit, 10000, "RUB")
	require.NoError(t, err)
	assert.False(t, verdict.IsAllowed)
	require.Len(t, verdict.Violations, 1)
	assert.Equal(t, rules[0].ID, verdict.Violations[0].Rule.ID)
	assert.Equal(t, domain.RuleActionDeny, verdict.Violations[0].Action)
}

func TestRuleEngineService_Evaluate_AmountLimit_BelowThreshold_Allows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockBusinessRuleRepository(ctrl)
	svc := NewRuleEngineService(ruleRepo)

	teamID := uuid.New()
	rules := []domain.BusinessRule{
		{
			ID:         uuid.New(),
			Type:       domain.RuleTypeAmountLimit,
			Action:     domain.RuleActionDeny,
			Priority:   10,
			Enabled:    true,
			Parameters: map[string]string{"max_amount": "50000"},
		},
	}
	ruleRepo.EXPECT().ListEffective(gomock.Any(), teamID, domain.RuleTypeAmountLimit).Return(rules, nil)

	verdict, err := svc.Evaluate(context.Background(), teamID, domain.RuleTypeAmountLimit, 10000, "RUB")
	require.NoError(t, err)
	assert.True(t, verdict.IsAllowed)
	assert.Empty(t, verdict.Violations)
}

func TestRuleEngineService_Evaluate_CurrencyNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockBusinessRuleRepository(ctrl)
	svc := NewRuleEngineService(ruleRepo)

	teamID := uuid.New()
	rules := []domain.BusinessRule{
		{
			ID:                uuid.New(),
			Type:              domain.RuleTypeCurrencyAllow,
			Action:            domain.RuleActionDeny,
			Priority:          5,
			Enabled:           true,
			AllowedCurrencies: []string{"RUB", "USD"},
		},
	}
	ruleRepo.EXPECT().ListEffective(gomock.Any(), teamID, domain.RuleTypeCurrencyAllow).Return(rules, nil)

	verdict, err := svc.Evaluate(context.Background(), teamID, domain.RuleTypeCurrencyAllow, 1000, "EUR")
	require.NoError(t, err)
	assert.False(t, verdict.IsAllowed)
	require.Len(t, verdict.Violations, 1)
}

// TestRuleEngineService_Evaluate_PriorityOrder confirms rules run in
// ascending priority order and evaluation stops at the first DENY: the
// priority-1 rule (evaluated first) denies, so the priority-99 rule never
// gets a chance to contribute its own WARN.
func TestRuleEngineService_Evaluate_PriorityOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockBusinessRuleRepository(ctrl)
	svc := NewRuleEngineService(ruleRepo)

	teamID := uuid.New()
	lowPriority := domain.BusinessRule{
		ID:         uuid.New(),
		Type:       domain.RuleTypeAmountLimit,
		Action:     domain.RuleActionDeny,
		Priority:   1,
		Enabled:    true,
		Parameters: map[string]string{"max_amount": "100"},
	}
	highPriority := domain.BusinessRule{
		ID:         uuid.New(),
		Type:       domain.RuleTypeAmountLimit,
		Action:     domain.RuleActionRequireApproval,
		Priority:   99,
		Enabled:    true,
		Parameters: map[string]string{"max_amount": "100"},
	}
	ruleRepo.EXPECT().ListEffective(gomock.Any(), teamID, domain.RuleTypeAmountLimit).
		Return([]domain.BusinessRule{highPriority, lowPriority}, nil)

	verdict, err := svc.Evaluate(context.Background(), teamID, domain.RuleTypeAmountLimit, 1000, "RUB")
	require.NoError(t, err)
	assert.False(t, verdict.IsAllowed)
	require.Len(t, verdict.Violations, 1)
	assert.Equal(t, lowPriority.ID, verdict.Violations[0].Rule.ID)
}

// TestRuleEngineService_Evaluate_WarnAccumulatesWithoutBlocking confirms a
// WARN-triggering rule sets IsWarning and records a violation while
// leaving IsAllowed true, distinguishing WARN from DENY.
func TestRuleEngineService_Evaluate_WarnAccumulatesWithoutBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ruleRepo := mocks.NewMockBusinessRuleRepository(ctrl)
	svc := NewRuleEngineService(ruleRepo)

	teamID := uuid.New()
	rules := []domain.BusinessRule{
		{
			ID:         uuid.New(),
			Type:       domain.RuleTypeAmountLimit,
			Action:     domain.RuleActionWarn,
			Priority:   1,
			Enabled:    true,
			Parameters: map[string]string{"max_amount": "100"},
		},
	}
	ruleRepo.EXPECT().ListEffective(gomock.Any(), teamID, domain.RuleTypeAmountLimit).Return(rules, nil)

	verdict, err := svc.Evaluate(context.Background(), teamID, domain.RuleTypeAmountLimit, 1000, "RUB")
	require.NoError(t, err)
	assert.True(t, verdict.IsAllowed)
	assert.True(t, verdict.IsWarning)
	require.Len(t, verdict.Violations, 1)
}
