package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consentvault/consentvault-backend/models"
)

func TestIsLedgerAppendOnlyError(t *testing.T) {
	assert.True(t, IsLedgerAppendOnlyError(&pgconn.PgError{
		Code:    "P0001",
		Message: "audit_entries is append-only",
	}))
	assert.False(t, IsLedgerAppendOnlyError(&pgconn.PgError{
		Code:    "P0001",
		Message: "some other raise",
	}))
	assert.False(t, IsLedgerAppendOnlyError(&pgconn.PgError{
		Code:    pgUniqueViolation,
		Message: "audit_entries is append-only",
	}))
	assert.False(t, IsLedgerAppendOnlyError(nil))
}

func TestExecBuilderTranslatesAppendOnlyTrigger(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM audit_entries").
		WillReturnError(&pgconn.PgError{
			Code:    "P0001",
			Message: "audit_entries is append-only",
		})

	err = ExecBuilder(context.Background(), mock,
		NewQueryBuilder().Delete("audit_entries"))
	assert.ErrorIs(t, err, models.ErrLedgerAppendOnly)
	assert.NoError(t, mock.ExpectationsWereMet())
}
