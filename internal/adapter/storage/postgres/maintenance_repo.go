package postgres

import (
	"context"
	"fmt"

	"payment-gateway-core/internal/core/ports"
)

// maintenanceTables are refreshed on the §4.7 maintenance timer -- the
// hottest write paths in the schema.
var maintenanceTables = []string{
	"payments",
	"transition_records",
	"init_logs",
	"audit_entries",
	"webhook_delivery_logs",
	"retry_attempts",
}

// MaintenanceRepo implements ports.MaintenanceRunner, running planner
// statistics refreshes against the tables the payment lifecycle writes most
// (spec.md §4.7 maintenance timer).
type MaintenanceRepo struct {
	pool Pool
}

// NewMaintenanceRepo creates a new MaintenanceRepo.
func NewMaintenanceRepo(pool Pool) ports.MaintenanceRunner {
	return &MaintenanceRepo{pool: pool}
}

// RunMaintenance runs ANALYZE against each hot table in turn so a failure on
// one does not abort the rest.
func (r *MaintenanceRepo) RunMaintenance(ctx context.Context) error {
	var firstErr error
	for _, table := range maintenanceTables {
		if _, err := r.pool.Exec(ctx, "ANALYZE "+table); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("analyze %s: %w", table, err)
			}
		}
	}
	return firstErr
}
