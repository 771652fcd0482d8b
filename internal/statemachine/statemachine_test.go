package statemachine

import (
	"errors"
	"testing"

	"payment-gateway-core/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	sm := New()

	assert.True(t, sm.CanTransition(domain.StatusInit, domain.StatusNew))
	assert.True(t, sm.CanTransition(domain.StatusAuthorized, domain.StatusConfirming))
	assert.False(t, sm.CanTransition(domain.StatusInit, domain.StatusConfirmed))
}

func TestCanTransition_TerminalRefuses(t *testing.T) {
	sm := New()
	assert.False(t, sm.CanTransition(domain.StatusRefunded, domain.StatusConfirmed))
}

func TestValidate_TableRefusal(t *testing.T) {
	sm := New()
	p := &domain.Payment{Status: domain.StatusInit}
	err := sm.Validate(p, domain.StatusConfirmed)
	assert.Error(t, err)
}

func TestValidate_PredicateRefusal(t *testing.T) {
	sm := New()
	sentinel := errors.New("amount exceeds refundable balance")
	sm.RegisterPredicate(domain.StatusRefunding, func(p *domain.Payment, to domain.PaymentStatus) error {
		if p.RefundableAmount() <= 0 {
			return sentinel
		}
		return nil
	})

	p := &domain.Payment{Status: domain.StatusConfirmed, Amount: 100, RefundedAmount: 100}
	err := sm.Validate(p, domain.StatusRefunding)
	assert.ErrorIs(t, err, sentinel)
}

func TestValidate_Success(t *testing.T) {
	sm := New()
	p := &domain.Payment{Status: domain.StatusAuthorized}
	assert.NoError(t, sm.Validate(p, domain.StatusConfirming))
}
