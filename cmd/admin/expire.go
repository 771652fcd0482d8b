package main

import (
	"context"
	"fmt"

	pgStorage "payment-gateway-core/internal/adapter/storage/postgres"
	redisStorage "payment-gateway-core/internal/adapter/storage/redis"
	"payment-gateway-core/internal/service"
	"payment-gateway-core/internal/statemachine"

	"github.com/spf13/cobra"
)

var expireCmd = &cobra.Command{
	Use:   "expire <payment-id>",
	Short: "Expire a single payment whose deadline has passed",
	Long:  "Runs the expiry step for one payment without waiting for the background expiry sweep. A payment that is terminal or has not yet reached its deadline is left unchanged and its current status is printed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpire,
}

func init() {
	rootCmd.AddCommand(expireCmd)
}

func runExpire(cmd *cobra.Command, args []string) error {
	paymentID := args[0]

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

	payment, err := lifecycle.Expire(ctx, paymentID)
	if err != nil {
		return err
	}
	fmt.Printf("payment %s is now %s\n", payment.PaymentID, payment.Status)
	return nil
}
