package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func supplierRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "company_name", "contact_name", "contact_number"}).
		AddRow("aaa11111", "Acme", "Dana", "0501234567").
		AddRow("bbb22222", "Beta", "Omri", "0527654321")
}

func TestSupplierRepo_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSupplierRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM suppliers").
		WillReturnRows(supplierRows())

	suppliers, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, suppliers, 2)
	assert.Equal(t, "Acme", suppliers[0].CompanyName)
	assert.Equal(t, "bbb22222", suppliers[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepo_GetByID(t *testing.T) {
	tests := []struct {
		name        string
		mockRows    *sqlmock.Rows
		mockError   error
		expectedNil bool
	}{
		{
			name: "found",
			mockRows: sqlmock.NewRows([]string{"id", "company_name", "contact_name", "contact_number"}).
				AddRow("aaa11111", "Acme", "Dana", "0501234567"),
		},
		{
			name:        "not found",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSupplierRepo(db)

			expect := mock.ExpectQuery("SELECT (.+) FROM suppliers WHERE id").WithArgs("aaa11111")
			if tt.mockError != nil {
				expect.WillReturnError(tt.mockError)
			} else {
				expect.WillReturnRows(tt.mockRows)
			}

			supplier, err := repo.GetByID("aaa11111")
			assert.NoError(t, err)
			if tt.expectedNil {
				assert.Nil(t, supplier)
			} else {
				assert.NotNil(t, supplier)
				assert.Equal(t, "Acme", supplier.CompanyName)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSupplierRepo_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSupplierRepo(db)

	mock.ExpectExec("INSERT INTO suppliers").
		WithArgs(sqlmock.AnyArg(), "Acme", "Dana", "0501234567").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Add("  Acme ", " Dana ", " 0501234567 ")
	assert.NoError(t, err)
	assert.Len(t, id, 8)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepo_NumberedList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSupplierRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM suppliers").
		WillReturnRows(supplierRows())

	numbered, err := repo.NumberedList()
	assert.NoError(t, err)
	assert.Len(t, numbered, 2)
	assert.Equal(t, 1, numbered[0].Number)
	assert.Equal(t, "Acme", numbered[0].Supplier.CompanyName)
	assert.Equal(t, 2, numbered[1].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}
