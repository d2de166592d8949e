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

func TestAuthorizationAppend(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAuthorizationRepository(gormDB)

	auth := &models.Authorization{
		AuthID:     uuid.New(),
		OrderID:    "O1",
		ResponseID: "SUCCESS",
		AuthAmount: 100,
		Last4:      "0000",
		AuditDate:  time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "authorizations"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), auth)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorizationFindLatest_OrdersByAuditDateThenID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAuthorizationRepository(gormDB)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"auth_id", "order_id", "response_id", "auth_amount", "last_4", "audit_date"}).
		AddRow(id, "O1", "SUCCESS", 100.0, "0000", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY audit_date DESC, auth_id DESC`)).
		WillReturnRows(rows)

	a, err := repo.FindLatestByOrderID(context.Background(), "O1")
	assert.NoError(t, err)
	assert.Equal(t, id, a.AuthID)
	assert.Equal(t, "SUCCESS", a.ResponseID)
}

func TestAuthorizationFindLatest_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAuthorizationRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "authorizations"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	a, err := repo.FindLatestByOrderID(context.Background(), "O1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, a)
}

func TestAuthorizationFindByOrderID_Multiple(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormAuthorizationRepository(gormDB)

	rows := sqlmock.NewRows([]string{"auth_id", "order_id", "response_id", "auth_amount", "last_4", "audit_date"}).
		AddRow(uuid.New(), "O1", "SERVER_ERROR", 100.0, "0000", time.Now()).
		AddRow(uuid.New(), "O1", "SUCCESS", 100.0, "0000", time.Now().Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "authorizations"`)).
		WillReturnRows(rows)

	auths, err := repo.FindByOrderID(context.Background(), "O1")
	assert.NoError(t, err)
	assert.Len(t, auths, 2)
}
