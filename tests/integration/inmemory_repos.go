package integration

import (
	"context"
	"sync"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// --- In-Memory Team Repo ---

type inMemoryTeamRepo struct {
	mu    sync.RWMutex
	teams map[uuid.UUID]*domain.Team
}

func newInMemoryTeamRepo() *inMemoryTeamRepo {
	return &inMemoryTeamRepo{teams: make(map[uuid.UUID]*domain.Team)}
}

func (r *inMemoryTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.teams[t.ID] = &cp
	return nil
}

func (r *inMemoryTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTeamRepo) GetBySlug(ctx context.Context, teamSlug string) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.teams {
		if t.TeamSlug == teamSlug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTeamRepo) Update(ctx context.Context, t *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[t.ID]; !ok {
		return nil
	}
	cp := *t
	r.teams[t.ID] = &cp
	return nil
}

func (r *inMemoryTeamRepo) IncrementFailedAuth(ctx context.Context, id uuid.UUID, lockedUntil *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok {
		return nil
	}
	t.FailedAuthCount++
	if lockedUntil != nil {
		until := unixToTime(*lockedUntil)
		t.LockedUntil = &until
	}
	return nil
}

func (r *inMemoryTeamRepo) ResetFailedAuth(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[id]
	if !ok {
		return nil
	}
	t.FailedAuthCount = 0
	t.LockedUntil = nil
	return nil
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.Payment
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{payments: make(map[uuid.UUID]*domain.Payment)}
}

func (r *inMemoryPaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.PaymentID == paymentID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentRepo) GetByOrderID(ctx context.Context, teamID uuid.UUID, orderID string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.TeamID == teamID && p.OrderID == orderID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; !ok {
		return nil
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) ListExpirable(ctx context.Context, before int64, limit int) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Payment
	for _, p := range r.payments {
		if p.IsTerminal() {
			continue
		}
		if p.ExpiresAt.Unix() < before {
			result = append(result, *p)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (r *inMemoryPaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus, limit int) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Payment
	for _, p := range r.payments {
		if p.Status == status {
			result = append(result, *p)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (r *inMemoryPaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Payment
	for _, p := range r.payments {
		if p.TeamID != params.TeamID {
			continue
		}
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		matched = append(matched, *p)
	}
	total := int64(len(matched))

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = len(matched)
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []domain.Payment{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryPaymentRepo) GetStats(ctx context.Context, teamID uuid.UUID, periodStart *int64) (*ports.PaymentStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.PaymentStats{}
	for _, p := range r.payments {
		if p.TeamID != teamID {
			continue
		}
		if periodStart != nil && p.CreatedAt.Unix() < *periodStart {
			continue
		}
		stats.TotalPayments++
		switch p.Status {
		case domain.StatusAuthorized:
			stats.Authorized++
		case domain.StatusConfirmed:
			stats.Confirmed++
			stats.TotalRevenue += p.Amount
		case domain.StatusCancelled:
			stats.Cancelled++
		case domain.StatusRefunded, domain.StatusPartialRefunded:
			stats.Refunded++
		case domain.StatusRejected:
			stats.Rejected++
		}
		stats.TotalRefunded += p.RefundedAmount
	}
	return stats, nil
}

func (r *inMemoryPaymentRepo) SumAmountSince(ctx context.Context, teamID uuid.UUID, since int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, p := range r.payments {
		if p.TeamID != teamID || p.CreatedAt.Unix() < since {
			continue
		}
		total += p.Amount
	}
	return total, nil
}

// --- In-Memory Transition Repo ---

type inMemoryTransitionRepo struct {
	mu      sync.RWMutex
	records []domain.TransitionRecord
}

func newInMemoryTransitionRepo() *inMemoryTransitionRepo {
	return &inMemoryTransitionRepo{}
}

func (r *inMemoryTransitionRepo) Create(ctx context.Context, tx pgx.Tx, record *domain.TransitionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *inMemoryTransitionRepo) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]domain.TransitionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.TransitionRecord
	for _, rec := range r.records {
		if rec.PaymentID == paymentID {
			result = append(result, rec)
		}
	}
	return result, nil
}

// --- In-Memory Init Log Repo ---

type inMemoryInitLogRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.InitLog
}

func newInMemoryInitLogRepo() *inMemoryInitLogRepo {
	return &inMemoryInitLogRepo{logs: make(map[string]*domain.InitLog)}
}

func (r *inMemoryInitLogRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.InitLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs[log.Key] = &cp
	return nil
}

func (r *inMemoryInitLogRepo) Get(ctx context.Context, key string) (*domain.InitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing -- the
// in-memory repos above apply writes directly, so the transaction itself
// has nothing to commit or roll back.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
