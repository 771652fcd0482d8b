package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPaymentInit      AuditAction = "PAYMENT_INIT"
	AuditActionPaymentProcess   AuditAction = "PAYMENT_PROCESS"
	AuditActionPaymentAuthorize AuditAction = "PAYMENT_AUTHORIZE"
	AuditActionPaymentConfirm   AuditAction = "PAYMENT_CONFIRM"
	AuditActionPaymentCancel    AuditAction = "PAYMENT_CANCEL"
	AuditActionPaymentRefund    AuditAction = "PAYMENT_REFUND"
	AuditActionPaymentExpire    AuditAction = "PAYMENT_EXPIRE"
	AuditActionPaymentFail      AuditAction = "PAYMENT_FAIL"
	AuditActionTransition       AuditAction = "TRANSITION"
	AuditActionRollback         AuditAction = "ROLLBACK"
	AuditActionAuthSuccess      AuditAction = "AUTH_SUCCESS"
	AuditActionAuthFailure      AuditAction = "AUTH_FAILURE"
	AuditActionTeamLockout      AuditAction = "TEAM_LOCKOUT"
	AuditActionRuleCreate       AuditAction = "RULE_CREATE"
	AuditActionRuleUpdate       AuditAction = "RULE_UPDATE"
	AuditActionRuleDelete       AuditAction = "RULE_DELETE"
	AuditActionWebhookDispatch  AuditAction = "WEBHOOK_DISPATCH"
)

// AuditSeverity ranks the audit entry for alerting/query purposes.
type AuditSeverity string

const (
	SeverityDebug    AuditSeverity = "DEBUG"
	SeverityInfo     AuditSeverity = "INFO"
	SeverityWarning  AuditSeverity = "WARNING"
	SeverityError    AuditSeverity = "ERROR"
	SeverityCritical AuditSeverity = "CRITICAL"
)

// AuditCategory groups audit entries by subsystem.
type AuditCategory string

const (
	CategoryPayment        AuditCategory = "PAYMENT"
	CategorySecurity       AuditCategory = "SECURITY"
	CategoryAuthentication AuditCategory = "AUTHENTICATION"
	CategoryConfiguration  AuditCategory = "CONFIGURATION"
	CategorySystem         AuditCategory = "SYSTEM"
)

// securitySensitiveActions is consulted by classifyAction to assign
// severity/category per spec.md §4.8's write contract.
var securitySensitiveActions = map[AuditAction]bool{
	AuditActionAuthFailure: true,
	AuditActionTeamLockout: true,
}

var authActions = map[AuditAction]bool{
	AuditActionAuthSuccess: true,
	AuditActionAuthFailure: true,
	AuditActionTeamLockout: true,
}

var configActions = map[AuditAction]bool{
	AuditActionRuleCreate: true,
	AuditActionRuleUpdate: true,
	AuditActionRuleDelete: true,
}

// Auditable is implemented by any entity the audit service can snapshot,
// replacing the source's dynamic dispatch over entity type (DESIGN NOTES §9).
type Auditable interface {
	EntityID() string
	EntityType() string
}

// AuditEntry is an append-only record of one audited action.
type AuditEntry struct {
	ID           uuid.UUID     `json:"id"`
	EntityID     string        `json:"entity_id"`
	EntityType   string        `json:"entity_type"`
	Action       AuditAction   `json:"action"`
	UserID       string        `json:"user_id,omitempty"`
	TeamSlug     string        `json:"team_slug,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
	Details      string        `json:"details,omitempty"` // JSON string
	Category     AuditCategory `json:"category"`
	Severity     AuditSeverity `json:"severity"`
	IsSensitive  bool          `json:"is_sensitive"`

	CorrelationID string  `json:"correlation_id,omitempty"`
	RequestID     string  `json:"request_id,omitempty"`
	SessionID     string  `json:"session_id,omitempty"`
	IPAddress     string  `json:"ip_address,omitempty"`
	UserAgent     string  `json:"user_agent,omitempty"`
	RiskScore     float64 `json:"risk_score,omitempty"`

	EntitySnapshotBefore string `json:"entity_snapshot_before,omitempty"`
	EntitySnapshotAfter  string `json:"entity_snapshot_after,omitempty"`

	IntegrityHash string `json:"integrity_hash"`

	IsArchived bool       `json:"is_archived"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// ClassifyAction assigns category/severity/sensitivity for a new entry
// per spec.md §4.8: security-sensitive actions become critical/error;
// configuration/authentication actions get their own category.
func ClassifyAction(action AuditAction) (AuditCategory, AuditSeverity, bool) {
	switch {
	case securitySensitiveActions[action]:
		return CategorySecurity, SeverityError, true
	case authActions[action]:
		return CategoryAuthentication, SeverityInfo, false
	case configActions[action]:
		return CategoryConfiguration, SeverityInfo, false
	case action == AuditActionPaymentFail || action == AuditActionRollback:
		return CategoryPayment, SeverityWarning, false
	default:
		return CategoryPayment, SeverityInfo, false
	}
}

// ComputeIntegrityHash computes the deterministic SHA-256 digest over the
// canonical fields of the entry, per spec.md §3:
// entityId|entityType|action|userId|timestamp(ISO-8601)|details|snapshotAfter
func (e *AuditEntry) ComputeIntegrityHash() string {
	h := sha256.New()
	h.Write([]byte(e.EntityID))
	h.Write([]byte{'|'})
	h.Write([]byte(e.EntityType))
	h.Write([]byte{'|'})
	h.Write([]byte(e.Action))
	h.Write([]byte{'|'})
	h.Write([]byte(e.UserID))
	h.Write([]byte{'|'})
	h.Write([]byte(e.Timestamp.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{'|'})
	h.Write([]byte(e.Details))
	h.Write([]byte{'|'})
	h.Write([]byte(e.EntitySnapshotAfter))
	return hex.EncodeToString(h.Sum(nil))
}

// Seal stamps the entry's IntegrityHash from its current fields. Call after
// every field is set and before persisting.
func (e *AuditEntry) Seal() {
	e.IntegrityHash = e.ComputeIntegrityHash()
}

// VerifyIntegrity reports whether a fresh recomputation matches the stored
// hash; a mismatch flags tampering (spec.md §8 audit-integrity invariant).
func (e *AuditEntry) VerifyIntegrity() bool {
	return e.IntegrityHash == e.ComputeIntegrityHash()
}
