package middleware

import (
	"context"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"

	"github.com/rs/zerolog"
)

// auditAuthEvent records an authentication-related event against a team.
// Payment-level auditing happens inside the lifecycle service in the same
// transaction as the payment write, so this middleware only covers token
// authentication events for a team already resolved from its TeamSlug:
// failed token verification and lockout. Successful verifications and
// requests naming no known team are not recorded.
func auditAuthEvent(ctx context.Context, auditSvc ports.AuditService, team *domain.Team, action domain.AuditAction, ipAddress string, details map[string]any, log zerolog.Logger) {
	if auditSvc == nil || team == nil {
		return
	}
	if details == nil {
		details = map[string]any{}
	}
	details["ip_address"] = ipAddress
	if err := auditSvc.Record(ctx, team, action, team.ID.String(), details, nil, nil); err != nil {
		log.Warn().Err(err).Str("team_id", team.ID.String()).Str("action", string(action)).Msg("failed to record audit entry")
	}
}
