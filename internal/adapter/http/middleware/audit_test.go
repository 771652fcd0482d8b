package middleware

import (
	"context"
	"testing"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditAuthEvent_RecordsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	team := &domain.Team{ID: uuid.New(), TeamSlug: "acme"}

	mockAudit.EXPECT().Record(gomock.Any(), team, domain.AuditActionAuthFailure, team.ID.String(), gomock.Any(), nil, nil).
		DoAndReturn(func(_ context.Context, entity domain.Auditable, action domain.AuditAction, userID string, details map[string]any, before, after any) error {
			assert.Equal(t, "203.0.113.1", details["ip_address"])
			return nil
		})

	auditAuthEvent(context.Background(), mockAudit, team, domain.AuditActionAuthFailure, "203.0.113.1", nil, zerolog.Nop())
}

func TestAuditAuthEvent_NilServiceIsNoop(t *testing.T) {
	team := &domain.Team{ID: uuid.New(), TeamSlug: "acme"}
	// Must not panic with a nil AuditService.
	auditAuthEvent(context.Background(), nil, team, domain.AuditActionAuthFailure, "203.0.113.1", nil, zerolog.Nop())
}

func TestAuditAuthEvent_NilTeamIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations - Record must NOT be called when team is nil.
	auditAuthEvent(context.Background(), mockAudit, nil, domain.AuditActionAuthFailure, "203.0.113.1", nil, zerolog.Nop())
}
