package domain

import (
	"time"
)

// CorrelationContext threads a single CorrelationID through a fan-out of
// audit events produced by one logical operation (e.g. a refund causing a
// transition record, an audit entry, and a webhook dispatch all to carry
// the same ID). Contexts are held in memory and evicted after GraceWindow
// has elapsed past LastTouchedAt, per spec.md §4.8.
type CorrelationContext struct {
	CorrelationID string    `json:"correlation_id"`
	RootEntityID  string    `json:"root_entity_id"`
	RootEntityType string   `json:"root_entity_type"`
	StartedAt     time.Time `json:"started_at"`
	LastTouchedAt time.Time `json:"last_touched_at"`
}

// Expired reports whether the context is past its grace window and
// eligible for eviction.
func (c *CorrelationContext) Expired(now time.Time, graceWindow time.Duration) bool {
	return now.Sub(c.LastTouchedAt) > graceWindow
}

// Touch refreshes LastTouchedAt so the context survives another grace
// window from now.
func (c *CorrelationContext) Touch(now time.Time) {
	c.LastTouchedAt = now
}
