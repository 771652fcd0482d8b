package postgres

import (
	"context"
	"fmt"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepository creates a new AuditRepo.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &AuditRepo{pool: pool}
}

const auditColumns = `id, entity_id, entity_type, action, user_id, team_slug, timestamp, details,
	category, severity, is_sensitive, correlation_id, request_id, session_id, ip_address, user_agent,
	risk_score, entity_snapshot_before, entity_snapshot_after, integrity_hash, is_archived, archived_at`

// Create inserts a sealed audit entry. Entries are append-only: there is
// no Update method, matching the tamper-evidence invariant (spec.md §8).
func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_entries (` + auditColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.EntityID, entry.EntityType, entry.Action, entry.UserID, entry.TeamSlug, entry.Timestamp, entry.Details,
		entry.Category, entry.Severity, entry.IsSensitive, entry.CorrelationID, entry.RequestID, entry.SessionID,
		entry.IPAddress, entry.UserAgent, entry.RiskScore, entry.EntitySnapshotBefore, entry.EntitySnapshotAfter,
		entry.IntegrityHash, entry.IsArchived, entry.ArchivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByEntity returns every audit entry recorded against one entity,
// oldest first, for the integrity-verification walk.
func (r *AuditRepo) ListByEntity(ctx context.Context, entityID string, entityType string) ([]domain.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_entries
		WHERE entity_id = $1 AND entity_type = $2 ORDER BY timestamp ASC`

	rows, err := r.pool.Query(ctx, query, entityID, entityType)
	if err != nil {
		return nil, fmt.Errorf("list audit entries by entity: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

// ListByCorrelationID returns every audit entry sharing a correlation ID,
// reconstructing the fan-out of one logical operation.
func (r *AuditRepo) ListByCorrelationID(ctx context.Context, correlationID string) ([]domain.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_entries
		WHERE correlation_id = $1 ORDER BY timestamp ASC`

	rows, err := r.pool.Query(ctx, query, correlationID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries by correlation: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

// ArchiveOlderThan marks up to limit entries older than the cutoff as
// archived, returning the number of rows affected.
func (r *AuditRepo) ArchiveOlderThan(ctx context.Context, before int64, limit int) (int64, error) {
	query := `UPDATE audit_entries SET is_archived = true, archived_at = NOW()
		WHERE id IN (SELECT id FROM audit_entries WHERE is_archived = false AND timestamp <= to_timestamp($1) LIMIT $2)`

	tag, err := r.pool.Exec(ctx, query, before, limit)
	if err != nil {
		return 0, fmt.Errorf("archive audit entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanAuditEntries(rows pgx.Rows) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	for rows.Next() {
		e := domain.AuditEntry{}
		if err := rows.Scan(
			&e.ID, &e.EntityID, &e.EntityType, &e.Action, &e.UserID, &e.TeamSlug, &e.Timestamp, &e.Details,
			&e.Category, &e.Severity, &e.IsSensitive, &e.CorrelationID, &e.RequestID, &e.SessionID,
			&e.IPAddress, &e.UserAgent, &e.RiskScore, &e.EntitySnapshotBefore, &e.EntitySnapshotAfter,
			&e.IntegrityHash, &e.IsArchived, &e.ArchivedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
