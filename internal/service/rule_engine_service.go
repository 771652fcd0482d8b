package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
)

// ruleEngineService implements ports.RuleEngineService, consulting the
// per-team/global business rule table before a payment operation is
// admitted (spec.md §4.2, §4.6).
type ruleEngineService struct {
	ruleRepo ports.BusinessRuleRepository
}

// NewRuleEngineService creates a new rule engine service.
func NewRuleEngineService(ruleRepo ports.BusinessRuleRepository) ports.RuleEngineService {
	return &ruleEngineService{ruleRepo: ruleRepo}
}

// Evaluate runs every effective rule of ruleType for teamID, in ascending
// Priority order (lower priority number first, per BusinessRule's own
// ordering contract), accumulating every triggering rule into the
// returned verdict. Evaluation short-circuits the moment a DENY fires,
// since nothing a lower-priority rule decides afterward could admit an
// operation a higher-priority rule already refused. WARN (and any other
// non-DENY, non-ALLOW action) accumulates without blocking -- the
// operation stays allowed but IsWarning is set and the violation is
// recorded (spec.md §4.6).
func (s *ruleEngineService) Evaluate(ctx context.Context, teamID uuid.UUID, ruleType domain.BusinessRuleType, amount int64, currency string) (*ports.RuleVerdict, error) {
	rules, err := s.ruleRepo.ListEffective(ctx, teamID, ruleType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list business rules: %w", err))
	}

	now := time.Now()
	candidates := make([]domain.BusinessRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsEffective(now) && rule.AppliesToTeam(teamID) {
			candidates = append(candidates, rule)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})

	verdict := &ports.RuleVerdict{IsAllowed: true}
	for i := range candidates {
		rule := candidates[i]
		if !ruleTriggers(&rule, ruleType, amount, currency) {
			continue
		}

		verdict.Violations = append(verdict.Violations, ports.RuleViolation{Rule: rule, Action: rule.Action})

		switch rule.Action {
		case domain.RuleActionDeny:
			verdict.IsAllowed = false
			return verdict, nil
		case domain.RuleActionAllow:
			// explicit ALLOW does not override an earlier WARN/violation
		default:
			verdict.IsWarning = true
		}
	}

	return verdict, nil
}

// ruleTriggers evaluates a single rule's condition against the candidate
// operation. The engine aggregates no history: for DAILY_LIMIT and
// VELOCITY, as for AMOUNT_LIMIT, the amount argument is compared against
// the rule's own threshold parameter exactly as passed in.
func ruleTriggers(rule *domain.BusinessRule, ruleType domain.BusinessRuleType, amount int64, currency string) bool {
	switch ruleType {
	case domain.RuleTypeCurrencyAllow:
		if len(rule.AllowedCurrencies) == 0 {
			return false
		}
		for _, c := range rule.AllowedCurrencies {
			if c == currency {
				return false
			}
		}
		return true

	case domain.RuleTypeAmountLimit, domain.RuleTypeDailyLimit, domain.RuleTypeFraudThreshold:
		threshold, ok := ruleThreshold(rule)
		if !ok {
			return false
		}
		return amount > threshold

	case domain.RuleTypeVelocity, domain.RuleTypeRetryPolicy:
		// These rule types gate on request counts / attempt counts rather
		// than amount; a matching effective rule with no numeric threshold
		// configured simply applies its action unconditionally.
		if threshold, ok := ruleThreshold(rule); ok {
			return amount > threshold
		}
		return true

	default:
		return false
	}
}

func ruleThreshold(rule *domain.BusinessRule) (int64, bool) {
	raw, ok := rule.Parameters["threshold"]
	if !ok {
		raw, ok = rule.Parameters["max_amount"]
	}
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
