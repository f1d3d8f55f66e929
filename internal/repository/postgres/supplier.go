package postgres

import (
	"database/sql"
	"strings"

	"shopbot/internal/domain"

	"github.com/google/uuid"
)

// SupplierRepo implements repository.SupplierRepository
type SupplierRepo struct {
	db *sql.DB
}

// NewSupplierRepo creates a new supplier repository
func NewSupplierRepo(db *sql.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// GetAll returns all suppliers in insertion order
func (r *SupplierRepo) GetAll() ([]domain.Supplier, error) {
	query := `
		SELECT id, company_name, contact_name, contact_number
		FROM suppliers
		ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyName, &s.ContactName, &s.ContactNumber); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// GetByID returns a supplier, or nil if not found
func (r *SupplierRepo) GetByID(id string) (*domain.Supplier, error) {
	var s domain.Supplier
	query := `SELECT id, company_name, contact_name, contact_number FROM suppliers WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&s.ID, &s.CompanyName, &s.ContactName, &s.ContactNumber)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Add creates a supplier and returns its id
func (r *SupplierRepo) Add(company, contact, number string) (string, error) {
	// Short ids read better in chat than full uuids
	id := uuid.NewString()[:8]
	query := `
		INSERT INTO suppliers (id, company_name, contact_name, contact_number)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, id, strings.TrimSpace(company), strings.TrimSpace(contact), strings.TrimSpace(number))
	if err != nil {
		return "", err
	}
	return id, nil
}

// NumberedList returns suppliers paired with 1-based display positions
func (r *SupplierRepo) NumberedList() ([]domain.NumberedSupplier, error) {
	suppliers, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	numbered := make([]domain.NumberedSupplier, 0, len(suppliers))
	for i, s := range suppliers {
		numbered = append(numbered, domain.NumberedSupplier{Number: i + 1, Supplier: s})
	}
	return numbered, nil
}
