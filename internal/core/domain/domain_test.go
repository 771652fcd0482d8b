package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTeam_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status TeamStatus
		want   bool
	}{
		{"active", TeamStatusActive, true},
		{"suspended", TeamStatusSuspended, false},
		{"deactivated", TeamStatusDeactivated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := &Team{Status: tt.status}
			assert.Equal(t, tt.want, team.IsActive())
		})
	}
}

func TestTeam_IsLocked(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no lock", func(t *testing.T) {
		team := &Team{}
		assert.False(t, team.IsLocked(now))
	})

	t.Run("locked in future", func(t *testing.T) {
		future := now.Add(time.Minute)
		team := &Team{LockedUntil: &future}
		assert.True(t, team.IsLocked(now))
	})

	t.Run("lock expired", func(t *testing.T) {
		past := now.Add(-time.Minute)
		team := &Team{LockedUntil: &past}
		assert.False(t, team.IsLocked(now))
	})
}

func TestTeam_SupportsCurrency(t *testing.T) {
	t.Run("empty list allows all", func(t *testing.T) {
		team := &Team{}
		assert.True(t, team.SupportsCurrency("USD"))
	})

	t.Run("restricted list", func(t *testing.T) {
		team := &Team{SupportedCurrencies: []string{"USD", "EUR"}}
		assert.True(t, team.SupportsCurrency("EUR"))
		assert.False(t, team.SupportsCurrency("GBP"))
	})
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status PaymentStatus
		want   bool
	}{
		{"init", StatusInit, false},
		{"authorized", StatusAuthorized, false},
		{"confirmed not terminal", StatusConfirmed, false},
		{"cancelled", StatusCancelled, true},
		{"refunded", StatusRefunded, true},
		{"rejected", StatusRejected, true},
		{"expired", StatusExpired, true},
		{"deadline expired", StatusDeadlineExpired, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payment{Status: tt.status}
			assert.Equal(t, tt.want, p.IsTerminal())
		})
	}
}

func TestPayment_IsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	p := &Payment{ExpiresAt: now.Add(-time.Second)}
	assert.True(t, p.IsExpired(now))

	p2 := &Payment{ExpiresAt: now.Add(time.Second)}
	assert.False(t, p2.IsExpired(now))
}

func TestPayment_RefundableAmount(t *testing.T) {
	p := &Payment{Amount: 1000, RefundedAmount: 300}
	assert.Equal(t, int64(700), p.RefundableAmount())
}

func TestPayment_EntityIdentity(t *testing.T) {
	p := &Payment{PaymentID: "pay_123"}
	assert.Equal(t, "pay_123", p.EntityID())
	assert.Equal(t, "payment", p.EntityType())
}

func TestBuildInitKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	key := BuildInitKey(id, "ORD-001")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000:ORD-001", key)
}

func TestTeamStatus_Constants(t *testing.T) {
	assert.Equal(t, TeamStatus("ACTIVE"), TeamStatusActive)
	assert.Equal(t, TeamStatus("SUSPENDED"), TeamStatusSuspended)
	assert.Equal(t, TeamStatus("DEACTIVATED"), TeamStatusDeactivated)
}

func TestAuditEntry_IntegrityHash(t *testing.T) {
	ts := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := &AuditEntry{
		EntityID:   "pay_123",
		EntityType: "payment",
		Action:     AuditActionPaymentConfirm,
		UserID:     "user_1",
		Timestamp:  ts,
		Details:    `{"amount":1000}`,
	}
	e.Seal()
	assert.NotEmpty(t, e.IntegrityHash)
	assert.True(t, e.VerifyIntegrity())

	e.Details = `{"amount":9999}`
	assert.False(t, e.VerifyIntegrity())
}

func TestClassifyAction(t *testing.T) {
	cat, sev, sensitive := ClassifyAction(AuditActionAuthFailure)
	assert.Equal(t, CategorySecurity, cat)
	assert.Equal(t, SeverityError, sev)
	assert.True(t, sensitive)

	cat2, sev2, sensitive2 := ClassifyAction(AuditActionPaymentConfirm)
	assert.Equal(t, CategoryPayment, cat2)
	assert.Equal(t, SeverityInfo, sev2)
	assert.False(t, sensitive2)
}

func TestNextBackoff(t *testing.T) {
	base := time.Second
	cap := 30 * time.Second

	assert.Equal(t, time.Second, NextBackoff(1, base, cap))
	assert.Equal(t, 2*time.Second, NextBackoff(2, base, cap))
	assert.Equal(t, 4*time.Second, NextBackoff(3, base, cap))
	assert.Equal(t, cap, NextBackoff(10, base, cap))
}

func TestRetryAttempt_Exhausted(t *testing.T) {
	r := &RetryAttempt{AttemptNum: 3, MaxAttempts: 3}
	assert.True(t, r.Exhausted())

	r2 := &RetryAttempt{AttemptNum: 1, MaxAttempts: 3}
	assert.False(t, r2.Exhausted())
}

func TestLockLease_IsExpiredAndHeld(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lease := &LockLease{OwnerID: "worker-1", ExpiresAt: now.Add(time.Second)}

	assert.False(t, lease.IsExpired(now))
	assert.True(t, lease.IsHeldBy("worker-1", now))
	assert.False(t, lease.IsHeldBy("worker-2", now))

	expired := &LockLease{OwnerID: "worker-1", ExpiresAt: now.Add(-time.Second)}
	assert.True(t, expired.IsExpired(now))
	assert.False(t, expired.IsHeldBy("worker-1", now))
}

func TestBusinessRule_IsEffective(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("disabled", func(t *testing.T) {
		r := &BusinessRule{Enabled: false, ValidFrom: now.Add(-time.Hour)}
		assert.False(t, r.IsEffective(now))
	})

	t.Run("not yet valid", func(t *testing.T) {
		r := &BusinessRule{Enabled: true, ValidFrom: now.Add(time.Hour)}
		assert.False(t, r.IsEffective(now))
	})

	t.Run("expired", func(t *testing.T) {
		past := now.Add(-time.Minute)
		r := &BusinessRule{Enabled: true, ValidFrom: now.Add(-time.Hour), ValidTo: &past}
		assert.False(t, r.IsEffective(now))
	})

	t.Run("currently effective", func(t *testing.T) {
		r := &BusinessRule{Enabled: true, ValidFrom: now.Add(-time.Hour)}
		assert.True(t, r.IsEffective(now))
	})
}

func TestBusinessRule_AppliesToTeam(t *testing.T) {
	teamID := uuid.New()

	global := &BusinessRule{}
	assert.True(t, global.AppliesToTeam(teamID))

	scoped := &BusinessRule{TeamID: &teamID}
	assert.True(t, scoped.AppliesToTeam(teamID))
	assert.False(t, scoped.AppliesToTeam(uuid.New()))
}

func TestCorrelationContext_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := &CorrelationContext{LastTouchedAt: now.Add(-time.Minute)}

	assert.True(t, ctx.Expired(now, 30*time.Second))
	assert.False(t, ctx.Expired(now, 2*time.Minute))
}
