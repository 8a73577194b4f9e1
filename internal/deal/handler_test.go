package deal

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
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

func cancelRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/deals/"+id+"/status",
		strings.NewReader(`{"status":"CANCELLED"}`))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

// Cancelling a deal writes the deal row and its commission in one
// transaction. When the commission write fails, the deal update must roll
// back with it; a CANCELLED deal with a live PENDING commission would be
// unrecoverable because terminal deals accept no further status changes.
func TestUpdateStatusCancelRollsBackOnCommissionFailure(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewHandler(db)

	mock.ExpectQuery(`SELECT \* FROM "deals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "PENDING"))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deal_id", "status"}).AddRow(5, 1, "PENDING"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "deals"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deal_id", "status"}).AddRow(5, 1, "PENDING"))
	mock.ExpectExec(`UPDATE "commissions"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, cancelRequest("1"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCancelCommitsDealAndCommissionTogether(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewHandler(db)

	mock.ExpectQuery(`SELECT \* FROM "deals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "CONFIRMED"))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deal_id", "status"}).AddRow(5, 1, "PENDING"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "deals"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deal_id", "status"}).AddRow(5, 1, "PENDING"))
	mock.ExpectExec(`UPDATE "commissions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deal_id", "status"}).AddRow(5, 1, "CANCELLED"))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "deals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "CANCELLED"))
	mock.ExpectQuery(`SELECT \* FROM "commissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deal_id", "status"}).AddRow(5, 1, "CANCELLED"))

	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, cancelRequest("1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"CANCELLED"`)
	require.NoError(t, mock.ExpectationsWereMet())
}
