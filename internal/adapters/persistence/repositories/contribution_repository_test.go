package repositories

import (
	"context"
	"testing"
	"time"

	"chamahub/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestContributionListByMemberYear(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContributionRepository(db)

	paymentDate := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "member_id", "amount", "payment_method", "week_number", "month", "year", "status", "payment_date"}).
		AddRow("c1", "asha", 100.0, "mpesa", 1, 1, 2025, "paid", paymentDate).
		AddRow("c2", "asha", 100.0, "cash", 3, 1, 2025, "paid", paymentDate)

	mock.ExpectQuery("SELECT \\* FROM `contributions` WHERE member_id = \\? AND year = \\? ORDER BY week_number ASC").
		WithArgs("asha", 2025).
		WillReturnRows(rows)

	got, err := repo.ListByMemberYear(context.Background(), "asha", 2025)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, 1, got[0].WeekNumber)
	assert.Equal(t, 3, got[1].WeekNumber)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionListByMember(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContributionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "member_id", "amount", "status"}).
		AddRow("c1", "asha", 100.0, "paid")

	mock.ExpectQuery("SELECT \\* FROM `contributions` WHERE member_id = \\? ORDER BY payment_date DESC").
		WithArgs("asha").
		WillReturnRows(rows)

	got, err := repo.ListByMember(context.Background(), "asha")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "asha", got[0].MemberID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionSumAmount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContributionRepository(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `contributions`").
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(SUM(amount), 0)"}).AddRow(1250.50))

	total, err := repo.SumAmount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1250.50, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContributionRepository(db)

	mock.ExpectExec("DELETE FROM `contributions` WHERE id = \\?").
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleReplaceForUserRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `user_roles` WHERE user_id = \\?").
		WithArgs("asha").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `user_roles`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceForUser(context.Background(), "asha", domain.RoleSet{domain.RoleAdmin})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
