// Package statemachine enforces the payment lifecycle's transition table:
// a static map of permitted from/to status pairs plus a set of per-target
// business-rule predicates that must also hold before a transition commits.
package statemachine

import (
	"fmt"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/pkg/apperror"
)

// Predicate is an additional business-rule check run against the payment
// and the candidate target status, beyond the static table lookup. It
// returns a non-nil error if the transition must be refused.
type Predicate func(p *domain.Payment, to domain.PaymentStatus) error

// StateMachine holds the transition table and any predicates registered
// per target status.
type StateMachine struct {
	table      map[domain.PaymentStatus]map[domain.PaymentStatus]bool
	predicates map[domain.PaymentStatus][]Predicate
}

// New builds the state machine with the default payment lifecycle table.
func New() *StateMachine {
	sm := &StateMachine{
		table:      defaultTable(),
		predicates: make(map[domain.PaymentStatus][]Predicate),
	}
	return sm
}

// defaultTable encodes the payment lifecycle's permitted transitions,
// following spec.md §4.2's transition table literally. NEW and FORM_SHOWED
// (and the other pre-authorization statuses) route their timeout to
// DEADLINE_EXPIRED rather than EXPIRED -- the full terminal-status set
// distinguishes the two, so both are accepted targets for those sources
// alongside the table prose's generic "EXPIRED".
func defaultTable() map[domain.PaymentStatus]map[domain.PaymentStatus]bool {
	edges := []struct {
		from domain.PaymentStatus
		to   []domain.PaymentStatus
	}{
		{domain.StatusInit, []domain.PaymentStatus{domain.StatusNew, domain.StatusExpired}},
		{domain.StatusNew, []domain.PaymentStatus{domain.StatusFormShowed, domain.StatusAuthorizing, domain.StatusCancelled, domain.StatusExpired, domain.StatusDeadlineExpired}},
		{domain.StatusFormShowed, []domain.PaymentStatus{domain.StatusAuthorizing, domain.StatusCancelled, domain.StatusExpired, domain.StatusDeadlineExpired}},
		{domain.StatusOneChooseVision, []domain.PaymentStatus{domain.StatusFinishAuthorize, domain.StatusAuthFail, domain.StatusCancelled, domain.StatusDeadlineExpired}},
		{domain.StatusFinishAuthorize, []domain.PaymentStatus{domain.StatusAuthorizing, domain.StatusAuthFail, domain.StatusCancelled, domain.StatusDeadlineExpired}},
		{domain.StatusAuthorizing, []domain.PaymentStatus{domain.StatusAuthorized, domain.StatusAuthFail, domain.StatusCancelled, domain.StatusExpired, domain.StatusDeadlineExpired}},
		{domain.StatusAuthorized, []domain.PaymentStatus{domain.StatusConfirming, domain.StatusReversing, domain.StatusCancelled, domain.StatusExpired}},
		{domain.StatusAuthFail, []domain.PaymentStatus{domain.StatusAuthorizing, domain.StatusRejected, domain.StatusCancelled}},
		{domain.StatusConfirm, []domain.PaymentStatus{domain.StatusConfirming, domain.StatusCancelled}},
		{domain.StatusConfirming, []domain.PaymentStatus{domain.StatusConfirmed, domain.StatusAuthFail, domain.StatusCancelled}},
		{domain.StatusConfirmed, []domain.PaymentStatus{domain.StatusRefunding, domain.StatusPartialRefunded}},
		{domain.StatusCancel, []domain.PaymentStatus{domain.StatusCancelling}},
		{domain.StatusCancelling, []domain.PaymentStatus{domain.StatusCancelled, domain.StatusReversing}},
		{domain.StatusReversing, []domain.PaymentStatus{domain.StatusReversed, domain.StatusCancelled}},
		{domain.StatusRefunding, []domain.PaymentStatus{domain.StatusRefunded, domain.StatusPartialRefunded, domain.StatusConfirmed}},
		{domain.StatusPartialRefunded, []domain.PaymentStatus{domain.StatusRefunding, domain.StatusRefunded}},
	}

	table := make(map[domain.PaymentStatus]map[domain.PaymentStatus]bool)
	for _, e := range edges {
		if table[e.from] == nil {
			table[e.from] = make(map[domain.PaymentStatus]bool)
		}
		for _, to := range e.to {
			table[e.from][to] = true
		}
	}
	return table
}

// RegisterPredicate attaches an additional business-rule check that must
// pass whenever the state machine is asked to transition *to* the given
// status, regardless of the from status.
func (sm *StateMachine) RegisterPredicate(to domain.PaymentStatus, p Predicate) {
	sm.predicates[to] = append(sm.predicates[to], p)
}

// CanTransition reports whether the static table permits from -> to,
// without running any predicates.
func (sm *StateMachine) CanTransition(from, to domain.PaymentStatus) bool {
	if from.IsTerminal() {
		return false
	}
	targets, ok := sm.table[from]
	if !ok {
		return false
	}
	return targets[to]
}

// Validate checks both the static table and any registered predicates for
// the candidate transition, returning an *apperror.AppError on refusal.
func (sm *StateMachine) Validate(p *domain.Payment, to domain.PaymentStatus) error {
	if !sm.CanTransition(p.Status, to) {
		return apperror.ErrInvalidTransition(string(p.Status), string(to))
	}
	for _, pred := range sm.predicates[to] {
		if err := pred(p, to); err != nil {
			return fmt.Errorf("predicate for %s: %w", to, err)
		}
	}
	return nil
}

// PathExists reports whether the table admits a multi-hop path of zero or
// more edges from "from" to "to", ignoring per-target predicates and
// terminality of intermediate hops. rollback() uses this to confirm a
// structural way back to a transition's original source status -- unlike
// a single transition, a rollback is not required to be a direct table
// edge (spec.md §4.2).
func (sm *StateMachine) PathExists(from, to domain.PaymentStatus) bool {
	if from == to {
		return true
	}
	visited := map[domain.PaymentStatus]bool{from: true}
	queue := []domain.PaymentStatus{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range sm.table[cur] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
