package commission

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db, mock
}

// A transition whose compare-and-set matches zero rows lost to a concurrent
// writer and must surface ErrConcurrentModification, never a silent
// double-apply.
func TestTransitionStatusConcurrentConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, StatusPending))
	mock.ExpectExec(`UPDATE "commissions"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.TransitionStatus(1, StatusApproved, "")
	require.ErrorIs(t, err, ErrConcurrentModification)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusApplies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, StatusPending))
	mock.ExpectExec(`UPDATE "commissions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, StatusApproved))

	c, err := repo.TransitionStatus(1, StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, c.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusRejectsIllegalBeforeWriting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, StatusPaid))

	_, err := repo.TransitionStatus(1, StatusApproved, "")
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.NoError(t, mock.ExpectationsWereMet())
}
