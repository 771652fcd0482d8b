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

func TestInitLogRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInitLogRepo(mock)
	log := &domain.InitLog{
		Key:          "team-id:ORDER-001",
		PaymentID:    uuid.New(),
		ResponseJSON: []byte(`{"status":"NEW"}`),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO init_logs").
		WithArgs(log.Key, log.PaymentID, log.ResponseJSON, log.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitLogRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInitLogRepo(mock)
	paymentID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM init_logs WHERE key").
		WithArgs("team-id:ORDER-001").
		WillReturnRows(pgxmock.NewRows([]string{"key", "payment_id", "response_json", "created_at"}).
			AddRow("team-id:ORDER-001", paymentID, []byte(`{"status":"NEW"}`), now))

	result, err := repo.Get(context.Background(), "team-id:ORDER-001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, paymentID, result.PaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitLogRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInitLogRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM init_logs WHERE key").
		WithArgs("nonexistent-key").
		WillReturnRows(pgxmock.NewRows([]string{"key", "payment_id", "response_json", "created_at"}))

	result, err := repo.Get(context.Background(), "nonexistent-key")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
