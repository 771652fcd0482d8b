// Package lockmgr implements ports.LockManager: a named, expiring,
// single-owner lease manager used to serialize concurrent operations
// against the same payment aggregate (spec.md §4.1). The in-process
// implementation here satisfies the contract with a mutex-guarded map;
// the same ports.LockManager interface is designed so a Redis-backed
// implementation (SET NX PX / Lua release, mirroring the teacher's
// wallet row-locking idiom translated to a distributed store) can be
// substituted without touching callers.
package lockmgr

import (
	"context"
	"sync"
	"time"

	"payment-gateway-core/internal/core/domain"
)

// InMemory is a single-process LockManager backed by a mutex-guarded map
// of domain.LockLease. It is the correct choice for a single API/worker
// instance; a multi-instance deployment needs the Redis-backed sibling
// this package's contract was designed to admit.
type InMemory struct {
	mu     sync.Mutex
	leases map[string]domain.LockLease
}

// New creates an empty in-process lock manager.
func New() *InMemory {
	return &InMemory{
		leases: make(map[string]domain.LockLease),
	}
}

// Acquire grants the named lease to ownerID for ttl if unheld or expired.
func (m *InMemory) Acquire(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	existing, held := m.leases[name]
	if held && !existing.IsExpired(now) && existing.OwnerID != ownerID {
		return false, nil
	}

	m.leases[name] = domain.LockLease{
		Name:       name,
		OwnerID:    ownerID,
		AcquiredAt: now,
		ExpiresAt:  now.Add(ttl),
	}
	return true, nil
}

// Release drops the lease if ownerID currently holds it.
func (m *InMemory) Release(ctx context.Context, name string, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, held := m.leases[name]
	if !held {
		return nil
	}
	if existing.OwnerID != ownerID {
		return nil
	}
	delete(m.leases, name)
	return nil
}

// Extend refreshes the TTL of a lease still held by ownerID.
func (m *InMemory) Extend(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	existing, held := m.leases[name]
	if !held || existing.IsExpired(now) || existing.OwnerID != ownerID {
		return false, nil
	}
	existing.ExpiresAt = now.Add(ttl)
	m.leases[name] = existing
	return true, nil
}

// sweepExpired removes expired leases; exercised by the background worker
// orchestrator on a timer so the map does not grow unbounded under churn.
func (m *InMemory) sweepExpired(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for name, lease := range m.leases {
		if lease.IsExpired(now) {
			delete(m.leases, name)
			removed++
		}
	}
	return removed
}

// Sweep evicts expired leases and reports how many were removed.
func (m *InMemory) Sweep(now time.Time) int {
	return m.sweepExpired(now)
}

// PaymentLockName builds the canonical lease name for a payment aggregate.
func PaymentLockName(paymentID string) string {
	return "payment:" + paymentID
}

// RetryLockName builds the canonical lease name guarding one payment's
// retry execution (spec.md §4.5), distinct from PaymentLockName so a
// scheduled retry and a concurrent lifecycle operation on the same
// payment take separate leases.
func RetryLockName(paymentID string) string {
	return "payment:retry:" + paymentID
}
