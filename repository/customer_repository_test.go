package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"payment-api/models"
	"payment-api/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCustomerCreate_AssignsID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	customer := &models.Customer{Name: "Ada", Email: "ada@example.com"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), customer)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), customer.ID)
}

func TestCustomerFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	c, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, c)
}

func TestCustomerFindAll(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCustomerRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
		AddRow(2, "Grace", "grace@example.com", now).
		AddRow(1, "Ada", "ada@example.com", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(rows)

	customers, err := repo.FindAll(context.Background(), 100, 0)
	assert.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, "Grace", customers[0].Name)
}
