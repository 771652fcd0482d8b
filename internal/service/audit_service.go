package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// auditService implements ports.AuditService, writing tamper-evident
// entries and verifying their integrity hash on demand (spec.md §4.8).
type auditService struct {
	auditRepo ports.AuditRepository
	corrSvc   ports.CorrelationService
	log       zerolog.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo ports.AuditRepository, corrSvc ports.CorrelationService, log zerolog.Logger) ports.AuditService {
	return &auditService{auditRepo: auditRepo, corrSvc: corrSvc, log: log}
}

// Record seals and persists one audit entry for entity/action. before and
// after are marshalled into the entry's snapshot fields; a marshal failure
// on either is logged but does not block the write.
func (s *auditService) Record(ctx context.Context, entity domain.Auditable, action domain.AuditAction, userID string, details map[string]any, before, after any) error {
	category, severity, sensitive := domain.ClassifyAction(action)

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to marshal audit details")
		detailsJSON = []byte("{}")
	}

	entry := &domain.AuditEntry{
		ID:          uuid.New(),
		EntityID:    entity.EntityID(),
		EntityType:  entity.EntityType(),
		Action:      action,
		UserID:      userID,
		Timestamp:   time.Now().UTC(),
		Details:     string(detailsJSON),
		Category:    category,
		Severity:    severity,
		IsSensitive: sensitive,
	}

	if s.corrSvc != nil {
		entry.CorrelationID = s.corrSvc.Begin(entity.EntityID(), entity.EntityType())
	}

	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			entry.EntitySnapshotBefore = string(b)
		}
	}
	if after != nil {
		if a, err := json.Marshal(after); err == nil {
			entry.EntitySnapshotAfter = string(a)
		}
	}

	entry.Seal()

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("persist audit entry: %w", err))
	}

	s.log.Info().
		Str("action", string(action)).
		Str("entity_type", entity.EntityType()).
		Str("entity_id", entity.EntityID()).
		Str("correlation_id", entry.CorrelationID).
		Msg("audit entry recorded")

	return nil
}

// VerifyIntegrity recomputes the hash of every stored entry for the given
// entity and reports false at the first mismatch -- a sign the audit trail
// was tampered with after being written (spec.md §8).
func (s *auditService) VerifyIntegrity(ctx context.Context, entityID, entityType string) (bool, error) {
	entries, err := s.auditRepo.ListByEntity(ctx, entityID, entityType)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("list audit entries: %w", err))
	}

	for i := range entries {
		if !entries[i].VerifyIntegrity() {
			return false, apperror.ErrIntegrityViolation(fmt.Errorf("audit entry %s failed integrity check", entries[i].ID))
		}
	}

	return true, nil
}
