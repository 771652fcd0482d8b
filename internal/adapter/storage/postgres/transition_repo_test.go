package postgres

import (
	"context"
	"testing"
	"time"

	"payment-gateway-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransition(paymentID uuid.UUID) *domain.TransitionRecord {
	return &domain.TransitionRecord{
		TransitionID:   uuid.New(),
		PaymentID:      paymentID,
		FromStatus:     domain.StatusNew,
		ToStatus:       domain.StatusFormShowed,
		TransitionedAt: time.Now().UTC().Truncate(time.Microsecond),
		UserID:         domain.SystemUser,
		Reason:         "init",
		Context:        map[string]string{"client_ip": "10.0.0.1"},
	}
}

func transitionColumns() []string {
	return []string{"transition_id", "payment_id", "from_status", "to_status", "transitioned_at", "user_id", "reason", "context", "is_rollback", "rollback_of"}
}

func transitionRow(rec *domain.TransitionRecord) *pgxmock.Rows {
	return pgxmock.NewRows(transitionColumns()).AddRow(
		rec.TransitionID, rec.PaymentID, rec.FromStatus, rec.ToStatus,
		rec.TransitionedAt, rec.UserID, rec.Reason, rec.Context,
		rec.IsRollback, rec.RollbackOf,
	)
}

func TestTransitionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransitionRepo(mock)
	rec := newTestTransition(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transition_records").
		WithArgs(
			rec.TransitionID, rec.PaymentID, rec.FromStatus, rec.ToStatus,
			rec.TransitionedAt, rec.UserID, rec.Reason, rec.Context,
			rec.IsRollback, rec.RollbackOf,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionRepo_ListByPaymentID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransitionRepo(mock)
	paymentID := uuid.New()
	rec := newTestTransition(paymentID)

	mock.ExpectQuery("SELECT .+ FROM transition_records WHERE payment_id").
		WithArgs(paymentID).
		WillReturnRows(transitionRow(rec))

	result, err := repo.ListByPaymentID(context.Background(), paymentID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, rec.ToStatus, result[0].ToStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
