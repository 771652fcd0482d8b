package domain

import (
	"time"

	"github.com/google/uuid"
)

// RetryStatus is the lifecycle state of a scheduled retry attempt.
type RetryStatus string

const (
	RetryStatusScheduled RetryStatus = "SCHEDULED"
	RetryStatusRunning   RetryStatus = "RUNNING"
	RetryStatusSucceeded RetryStatus = "SUCCEEDED"
	RetryStatusFailed    RetryStatus = "FAILED"
	RetryStatusAbandoned RetryStatus = "ABANDONED"
)

// RetryAttempt records one scheduled re-attempt of a previously failed
// payment operation (spec.md §4.5). The backoff schedule is computed by the
// retry service; this row is both the audit trail and the work item the
// scheduler reads back on restart.
type RetryAttempt struct {
	ID         uuid.UUID     `json:"id"`
	PaymentID  uuid.UUID     `json:"payment_id"`
	Operation  PaymentStatus `json:"operation"` // the target status being retried toward
	AttemptNum int           `json:"attempt_num"`
	MaxAttempts int          `json:"max_attempts"`
	PolicyName string        `json:"policy_name"` // the named RetryPolicy this attempt was scheduled under

	Status RetryStatus `json:"status"`

	ScheduledAt time.Time  `json:"scheduled_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	LastError string `json:"last_error,omitempty"`

	BackoffSeconds int `json:"backoff_seconds"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextBackoff computes the delay before the next attempt using an
// exponential schedule with a fixed cap, per spec.md §4.5 ("exponential
// backoff, capped"). base is the initial delay; cap bounds the maximum.
func NextBackoff(attemptNum int, base, cap time.Duration) time.Duration {
	if attemptNum < 1 {
		attemptNum = 1
	}
	d := base
	for i := 1; i < attemptNum; i++ {
		d *= 2
		if d >= cap {
			return cap
		}
	}
	if d > cap {
		return cap
	}
	return d
}

// Exhausted reports whether no further retry attempts are permitted.
func (r *RetryAttempt) Exhausted() bool {
	return r.AttemptNum >= r.MaxAttempts
}
