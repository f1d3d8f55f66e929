package postgres

import (
	"database/sql"

	"shopbot/internal/domain"
)

// ItemRepo implements repository.ItemRepository
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo creates a new item repository
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `name, supplier_id, type, quantity, required_quantity, last_updated, last_updated_by`

func scanItem(row interface{ Scan(...any) error }) (*domain.Item, error) {
	var it domain.Item
	var supplierID sql.NullString
	var lastUpdated sql.NullTime
	var lastUpdatedBy sql.NullString

	err := row.Scan(&it.Name, &supplierID, &it.Type, &it.Quantity, &it.RequiredQuantity, &lastUpdated, &lastUpdatedBy)
	if err != nil {
		return nil, err
	}

	if supplierID.Valid {
		it.SupplierID = supplierID.String
	}
	if lastUpdated.Valid {
		it.LastUpdated = &lastUpdated.Time
	}
	if lastUpdatedBy.Valid {
		it.LastUpdatedBy = lastUpdatedBy.String
	}
	return &it, nil
}

// nullable turns "" into NULL for supplier references
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// IsKnown checks if the item exists (case-insensitive)
func (r *ItemRepo) IsKnown(name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM items WHERE name_key = $1)`
	err := r.db.QueryRow(query, domain.NameKey(name)).Scan(&exists)
	return exists, err
}

// CanonicalName returns the stored display name, or "" if unknown
func (r *ItemRepo) CanonicalName(name string) (string, error) {
	var stored string
	query := `SELECT name FROM items WHERE name_key = $1`
	err := r.db.QueryRow(query, domain.NameKey(name)).Scan(&stored)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return stored, nil
}

// Get returns an item by name, or nil if unknown
func (r *ItemRepo) Get(name string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name_key = $1`
	it, err := scanItem(r.db.QueryRow(query, domain.NameKey(name)))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return it, err
}

// GetAll returns all items sorted by name
func (r *ItemRepo) GetAll() ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name_key`
	return r.queryItems(query)
}

// GetBySupplier returns all items of one supplier sorted by name
func (r *ItemRepo) GetBySupplier(supplierID string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE supplier_id = $1 ORDER BY name_key`
	return r.queryItems(query, supplierID)
}

func (r *ItemRepo) queryItems(query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// Add creates the item or accumulates quantity onto an existing one.
// Zero is a valid quantity (records the item without changing the count);
// negatives are floored at zero. Supplier and type are overwritten on
// conflict; the last-update columns are set only when actor is non-empty
// (logging paths).
func (r *ItemRepo) Add(name, supplierID string, itemType domain.ItemType, qty int, actor string) error {
	if qty < 0 {
		qty = 0
	}

	if actor != "" {
		query := `
			INSERT INTO items (name_key, name, supplier_id, type, quantity, last_updated, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, NOW(), $6)
			ON CONFLICT (name_key)
			DO UPDATE SET supplier_id = EXCLUDED.supplier_id,
				type = EXCLUDED.type,
				quantity = items.quantity + EXCLUDED.quantity,
				last_updated = NOW(),
				last_updated_by = EXCLUDED.last_updated_by
		`
		_, err := r.db.Exec(query, domain.NameKey(name), domain.TitleCase(name), nullable(supplierID), itemType, qty, domain.ActorDisplay(actor))
		return err
	}

	query := `
		INSERT INTO items (name_key, name, supplier_id, type, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name_key)
		DO UPDATE SET supplier_id = EXCLUDED.supplier_id,
			type = EXCLUDED.type,
			quantity = items.quantity + EXCLUDED.quantity
	`
	_, err := r.db.Exec(query, domain.NameKey(name), domain.TitleCase(name), nullable(supplierID), itemType, qty)
	return err
}

// SetRequiredQuantity sets required_quantity; returns false if unknown
func (r *ItemRepo) SetRequiredQuantity(name string, qty int) (bool, error) {
	if qty < 0 {
		qty = 0
	}
	query := `UPDATE items SET required_quantity = $2 WHERE name_key = $1`
	res, err := r.db.Exec(query, domain.NameKey(name), qty)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpdateSupplier reassigns the item's supplier without touching last-update
func (r *ItemRepo) UpdateSupplier(name, supplierID string) error {
	query := `UPDATE items SET supplier_id = $2 WHERE name_key = $1`
	_, err := r.db.Exec(query, domain.NameKey(name), nullable(supplierID))
	return err
}

// UpdateType sets the item type without touching last-update
func (r *ItemRepo) UpdateType(name string, itemType domain.ItemType) error {
	query := `UPDATE items SET type = $2 WHERE name_key = $1`
	_, err := r.db.Exec(query, domain.NameKey(name), itemType)
	return err
}

// Rename changes the item's name. Collision checks are the caller's job.
func (r *ItemRepo) Rename(oldName, newName string) error {
	query := `UPDATE items SET name_key = $2, name = $3 WHERE name_key = $1`
	_, err := r.db.Exec(query, domain.NameKey(oldName), domain.NameKey(newName), domain.TitleCase(newName))
	return err
}

// Delete removes an item; returns false if it did not exist
func (r *ItemRepo) Delete(name string) (bool, error) {
	query := `DELETE FROM items WHERE name_key = $1`
	res, err := r.db.Exec(query, domain.NameKey(name))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetDefaultPrepSupplierID returns the configured prep supplier id, or ""
func (r *ItemRepo) GetDefaultPrepSupplierID() (string, error) {
	var id sql.NullString
	query := `SELECT supplier_id FROM prep_config WHERE id = 1`
	err := r.db.QueryRow(query).Scan(&id)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !id.Valid {
		return "", nil
	}
	return id.String, nil
}

// SetDefaultPrepSupplierID persists the default prep supplier id
func (r *ItemRepo) SetDefaultPrepSupplierID(id string) error {
	query := `
		INSERT INTO prep_config (id, supplier_id)
		VALUES (1, $1)
		ON CONFLICT (id)
		DO UPDATE SET supplier_id = EXCLUDED.supplier_id
	`
	_, err := r.db.Exec(query, nullable(id))
	return err
}

// SetAllPrepItemsSupplier reassigns every Prep item to the supplier
func (r *ItemRepo) SetAllPrepItemsSupplier(id string) (int, error) {
	query := `UPDATE items SET supplier_id = $1 WHERE type = $2`
	res, err := r.db.Exec(query, nullable(id), domain.TypePrep)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
