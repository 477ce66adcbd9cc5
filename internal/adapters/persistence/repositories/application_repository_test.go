package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestSetStatusIfNotFinalUpdatesRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `applications` SET `status`=? WHERE id = ? AND status NOT IN (?,?)",
	)).
		WithArgs(models.StatusShortlisted, 7, models.StatusSelected, models.StatusRejected).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.SetStatusIfNotFinal(context.Background(), 7, models.StatusShortlisted)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusIfNotFinalSkipsFinalRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)

	// A row already in a terminal state matches no row
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `applications` SET `status`=? WHERE id = ? AND status NOT IN (?,?)",
	)).
		WithArgs(models.StatusSelected, 7, models.StatusSelected, models.StatusRejected).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	updated, err := repo.SetStatusIfNotFinal(context.Background(), 7, models.StatusSelected)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByStudentAndJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM `applications` WHERE student_id = ? AND job_posting_id = ?",
	)).
		WithArgs(3, 5).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.ExistsByStudentAndJob(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
