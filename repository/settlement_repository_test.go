package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"payment-api/models"
	"payment-api/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSettlementAppend_WithAuthReference(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormSettlementRepository(gormDB)

	authID := uuid.New()
	settlement := &models.Settlement{
		SettlementID:     uuid.New(),
		OrderID:          "O1",
		AuthID:           &authID,
		SettledAmount:    100,
		SettlementStatus: models.SettlementStatusSettled,
		SettlementDate:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "settlements"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), settlement)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementAppend_NullAuthReference(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormSettlementRepository(gormDB)

	settlement := &models.Settlement{
		SettlementID:     uuid.New(),
		OrderID:          "O1",
		AuthID:           nil,
		SettledAmount:    50,
		SettlementStatus: models.SettlementStatusSettled,
		SettlementDate:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "settlements"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), settlement)
	assert.NoError(t, err)
}

func TestSettlementFindLatest_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormSettlementRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settlements"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	s, err := repo.FindLatestByOrderID(context.Background(), "O1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, s)
}

func TestSettlementSumSettled(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormSettlementRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE(SUM(settled_amount), 0)`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(350.75))

	total, err := repo.SumSettled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 350.75, total)
}

func TestSettlementSumSettled_EmptyLedger(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormSettlementRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE(SUM(settled_amount), 0)`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	total, err := repo.SumSettled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}
