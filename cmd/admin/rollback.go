package main

import (
	"context"
	"fmt"

	pgStorage "payment-gateway-core/internal/adapter/storage/postgres"
	redisStorage "payment-gateway-core/internal/adapter/storage/redis"
	"payment-gateway-core/internal/service"
	"payment-gateway-core/internal/statemachine"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback <payment-id> <transition-id>",
	Short: "Reverse a previously recorded transition on a payment",
	Long:  "Undoes a single transition, restoring the payment to the fromStatus recorded for transition-id -- use when an operator action or a misbehaving webhook pushed a payment into the wrong state and a table-permitted path back exists.",
	Args:  cobra.ExactArgs(2),
	RunE:  runRollback,
}

func init() {
	rootCmd.AddCommand(rollbackCmd)
}

func runRollback(cmd *cobra.Command, args []string) error {
	paymentID := args[0]
	transitionID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("transition-id must be a UUID: %w", err)
	}

	ctx := context.Background()
	deps, err := connect(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	rdb, err := redisStorage.NewClient(ctx, deps.cfg.Redis, deps.log)
	if err != nil {
		return err
	}
	defer rdb.Close()

	paymentRepo := pgStorage.NewPaymentRepo(deps.pool)
	transitionRepo := pgStorage.NewTransitionRepo(deps.pool)
	initLogRepo := pgStorage.NewInitLogRepo(deps.pool)
	transactor := pgStorage.NewTransactor(deps.pool)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	lockStore := redisStorage.NewLockStore(rdb)

	lifecycle := service.NewPaymentLifecycleService(
		paymentRepo, transitionRepo, initLogRepo, idempotencyCache,
		lockStore, transactor, statemachine.New(), nil, deps.log,
	)

	payment, err := lifecycle.Rollback(ctx, paymentID, transitionID, "admin-cli")
	if err != nil {
		return err
	}
	fmt.Printf("payment %s rolled back to %s\n", payment.PaymentID, payment.Status)
	return nil
}
