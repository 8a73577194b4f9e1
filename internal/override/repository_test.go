package override

import (
	"errors"
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

func TestApplyCountsTargetAndCascadedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "developers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "projects"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "project_categories"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "project_category_unit_types"`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	count, err := repo.Apply(ApplyDTO{
		Scope:   Scope{Level: LevelDeveloper, ID: 1},
		Rates:   Rates{ActualCommissionRate: f(3)},
		Cascade: Cascade{ToProjects: true, ToCategories: true, ToUnitTypes: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A cascade is all-or-nothing: a failure on any descendant table rolls back
// the target write too.
func TestApplyRollsBackWhenCascadeFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "developers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "projects"`).WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	count, err := repo.Apply(ApplyDTO{
		Scope:   Scope{Level: LevelDeveloper, ID: 1},
		Rates:   Rates{BrokerCommissionRate: f(2)},
		Cascade: Cascade{ToProjects: true},
	})
	require.Error(t, err)
	assert.Zero(t, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMissingTargetRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "project_categories"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	count, err := repo.Apply(ApplyDTO{
		Scope: Scope{Level: LevelCategory, ID: 99},
		Rates: Rates{ActualCommissionRate: f(4)},
	})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
