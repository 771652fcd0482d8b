package domain

import (
	"math/rand"
	"time"
)

// RetryPolicy parameterizes how the retry service paces and gates
// re-attempts of a failed payment operation (spec.md §4.5). Policies are
// named and selected deterministically by amount band, never ad hoc.
type RetryPolicy struct {
	Name           string
	MaxAttempts    int
	InitialBackoff time.Duration
	Multiplier     float64
	MaxBackoff     time.Duration
	JitterFraction float64         // e.g. 0.1 for +/-10%; 0 disables jitter
	RetryableCodes map[string]bool // unknown codes default to non-retryable
}

// Backoff computes the delay before attemptNum under this policy: an
// exponential schedule from InitialBackoff, capped at MaxBackoff, with
// JitterFraction applied as a uniform +/- perturbation. The unjittered
// schedule reuses NextBackoff's doubling-style progression, generalized
// here to the policy's own multiplier.
func (p RetryPolicy) Backoff(attemptNum int) time.Duration {
	if attemptNum < 1 {
		attemptNum = 1
	}
	d := float64(p.InitialBackoff)
	capNanos := float64(p.MaxBackoff)
	for i := 1; i < attemptNum; i++ {
		d *= p.Multiplier
		if d >= capNanos {
			d = capNanos
			break
		}
	}
	if d > capNanos {
		d = capNanos
	}
	if p.JitterFraction > 0 {
		delta := d * p.JitterFraction
		d += (rand.Float64()*2 - 1) * delta
		if d < 0 {
			d = 0
		}
	}
	return time.Duration(d)
}

// IsRetryable reports whether errorCode may be retried under this policy.
// An empty code (no failure recorded yet) is treated as retryable; any
// other code not in RetryableCodes defaults to non-retryable.
func (p RetryPolicy) IsRetryable(errorCode string) bool {
	if errorCode == "" {
		return true
	}
	return p.RetryableCodes[errorCode]
}

// transientErrorCodes are the apperror.Code values considered transient
// infrastructure failures, eligible for retry under every named policy.
// Business-logic refusals (PAY_*, AUTH_*, SEC_*) are deliberately absent:
// retrying them would just reproduce the same refusal.
var transientErrorCodes = map[string]bool{
	"SYS_001": true, // database error
	"SYS_002": true, // lock acquisition timeout
	"SYS_003": true, // encryption service failure
	"RATE_001": true, // rate limit exceeded
}

// Named retry policies, per spec.md §4.5.
var (
	RetryPolicyDefault = RetryPolicy{
		Name:           "default",
		MaxAttempts:    3,
		InitialBackoff: time.Second,
		Multiplier:     2.0,
		MaxBackoff:     30 * time.Minute,
		JitterFraction: 0.1,
		RetryableCodes: transientErrorCodes,
	}
	RetryPolicyAggressive = RetryPolicy{
		Name:           "aggressive",
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		Multiplier:     1.5,
		MaxBackoff:     10 * time.Minute,
		RetryableCodes: transientErrorCodes,
	}
	RetryPolicyConservative = RetryPolicy{
		Name:           "conservative",
		MaxAttempts:    2,
		InitialBackoff: 5 * time.Second,
		Multiplier:     3.0,
		MaxBackoff:     time.Hour,
		RetryableCodes: transientErrorCodes,
	}
)

var retryPoliciesByName = map[string]RetryPolicy{
	RetryPolicyDefault.Name:      RetryPolicyDefault,
	RetryPolicyAggressive.Name:   RetryPolicyAggressive,
	RetryPolicyConservative.Name: RetryPolicyConservative,
}

// RetryPolicyByName resolves a persisted policy name back to its
// parameters, for re-deriving the policy used on a prior attempt.
func RetryPolicyByName(name string) (RetryPolicy, bool) {
	p, ok := retryPoliciesByName[name]
	return p, ok
}

// Amount-band thresholds (minor currency units) for deterministic policy
// selection (spec.md §4.5: "high-value -> conservative").
const (
	RetryHighValueThreshold = 10_000_00 // e.g. 10,000.00 in a 2-decimal currency
	RetryLowValueThreshold  = 500_00    // e.g. 500.00
)

// SelectRetryPolicy deterministically picks a named policy by amount
// band: high-value payments get fewer, slower, more conservative
// retries; low-value payments get a cheap, aggressive schedule; anything
// in between uses the default policy.
func SelectRetryPolicy(amount int64) RetryPolicy {
	switch {
	case amount >= RetryHighValueThreshold:
		return RetryPolicyConservative
	case amount <= RetryLowValueThreshold:
		return RetryPolicyAggressive
	default:
		return RetryPolicyDefault
	}
}
