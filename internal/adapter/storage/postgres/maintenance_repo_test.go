package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceRepo_RunMaintenance_AnalyzesEveryTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMaintenanceRepo(mock)

	for _, table := range maintenanceTables {
		mock.ExpectExec("ANALYZE " + table).WillReturnResult(pgxmock.NewResult("ANALYZE", 0))
	}

	require.NoError(t, repo.RunMaintenance(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceRepo_RunMaintenance_OneFailureDoesNotAbortTheRest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMaintenanceRepo(mock)

	for i, table := range maintenanceTables {
		exp := mock.ExpectExec("ANALYZE " + table)
		if i == 0 {
			exp.WillReturnError(errors.New("lock timeout"))
		} else {
			exp.WillReturnResult(pgxmock.NewResult("ANALYZE", 0))
		}
	}

	err = repo.RunMaintenance(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), maintenanceTables[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
