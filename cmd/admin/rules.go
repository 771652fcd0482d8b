package main

import (
	"context"
	"fmt"
	"time"

	pgStorage "payment-gateway-core/internal/adapter/storage/postgres"
	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage business rule engine overrides",
}

var rulesListCmd = &cobra.Command{
	Use:   "list <team-id>",
	Short: "List effective rules for a team and type",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesList,
}

var rulesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a business rule",
	RunE:  runRulesCreate,
}

var rulesDeleteCmd = &cobra.Command{
	Use:   "delete <rule-id>",
	Short: "Delete a business rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesDelete,
}

var (
	ruleType     string
	ruleAction   string
	rulePriority int
	ruleTeamID   string
	ruleParams   map[string]string
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd, rulesCreateCmd, rulesDeleteCmd)

	rulesListCmd.Flags().StringVar(&ruleType, "type", string(domain.RuleTypeAmountLimit), "rule type")

	rulesCreateCmd.Flags().StringVar(&ruleTeamID, "team", "", "team UUID (omit for a global rule)")
	rulesCreateCmd.Flags().StringVar(&ruleType, "type", string(domain.RuleTypeAmountLimit), "rule type")
	rulesCreateCmd.Flags().StringVar(&ruleAction, "action", string(domain.RuleActionDeny), "action taken when the rule matches")
	rulesCreateCmd.Flags().IntVar(&rulePriority, "priority", 0, "evaluation priority, lower numbers are evaluated first")
	rulesCreateCmd.Flags().StringToStringVar(&ruleParams, "param", nil, "rule parameter, repeatable (key=value)")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	teamID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid team id: %w", err)
	}

	ctx := context.Background()
	deps, err := connect(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	repo := pgStorage.NewBusinessRuleRepo(deps.pool)
	rules, err := repo.ListEffective(ctx, teamID, domain.BusinessRuleType(ruleType))
	if err != nil {
		return err
	}
	for _, r := range rules {
		fmt.Printf("%s\tpriority=%d\taction=%s\tparams=%v\n", r.ID, r.Priority, r.Action, r.Parameters)
	}
	if len(rules) == 0 {
		fmt.Println("no effective rules")
	}
	return nil
}

func runRulesCreate(cmd *cobra.Command, args []string) error {
	var teamID *uuid.UUID
	if ruleTeamID != "" {
		parsed, err := uuid.Parse(ruleTeamID)
		if err != nil {
			return fmt.Errorf("invalid team id: %w", err)
		}
		teamID = &parsed
	}

	now := time.Now().UTC()
	rule := &domain.BusinessRule{
		ID:         uuid.New(),
		TeamID:     teamID,
		Type:       domain.BusinessRuleType(ruleType),
		Action:     domain.BusinessRuleAction(ruleAction),
		Priority:   rulePriority,
		ValidFrom:  now,
		Parameters: ruleParams,
		Enabled:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	ctx := context.Background()
	deps, err := connect(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	repo := pgStorage.NewBusinessRuleRepo(deps.pool)
	if err := repo.Create(ctx, rule); err != nil {
		return err
	}
	fmt.Printf("created rule %s\n", rule.ID)
	return nil
}

func runRulesDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid rule id: %w", err)
	}

	ctx := context.Background()
	deps, err := connect(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	repo := pgStorage.NewBusinessRuleRepo(deps.pool)
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("deleted rule %s\n", id)
	return nil
}
