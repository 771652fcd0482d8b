package service

import (
	"sync"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"

	"github.com/google/uuid"
)

// defaultCorrelationGraceWindow is how long a correlation context survives
// after its last touch before Evict drops it (spec.md §4.8).
const defaultCorrelationGraceWindow = 5 * time.Minute

// correlationService implements ports.CorrelationService as an in-memory,
// mutex-guarded registry -- the same shape as lockmgr.InMemory, since both
// are short-lived, single-process bookkeeping rather than durable state.
type correlationService struct {
	mu          sync.Mutex
	contexts    map[string]*domain.CorrelationContext
	graceWindow time.Duration
}

// NewCorrelationService creates a new in-memory correlation tracker.
func NewCorrelationService() ports.CorrelationService {
	return &correlationService{
		contexts:    make(map[string]*domain.CorrelationContext),
		graceWindow: defaultCorrelationGraceWindow,
	}
}

// Begin starts (or reuses, if rootEntityID already has an active context)
// a correlation and returns its ID for the caller to attach to every
// audit entry produced by the same logical operation.
func (s *correlationService) Begin(rootEntityID, rootEntityType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, ctx := range s.contexts {
		if ctx.RootEntityID == rootEntityID && ctx.RootEntityType == rootEntityType && !ctx.Expired(now, s.graceWindow) {
			ctx.Touch(now)
			return id
		}
	}

	id := uuid.New().String()
	s.contexts[id] = &domain.CorrelationContext{
		CorrelationID:  id,
		RootEntityID:   rootEntityID,
		RootEntityType: rootEntityType,
		StartedAt:      now,
		LastTouchedAt:  now,
	}
	return id
}

// Touch refreshes a correlation's last-activity timestamp so it survives
// another grace window.
func (s *correlationService) Touch(correlationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx, ok := s.contexts[correlationID]; ok {
		ctx.Touch(time.Now())
	}
}

// Evict drops every correlation context past its grace window as of now.
func (s *correlationService) Evict(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ctx := range s.contexts {
		if ctx.Expired(now, s.graceWindow) {
			delete(s.contexts, id)
		}
	}
}
