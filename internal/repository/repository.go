package repository

import (
	"shopbot/internal/domain"
)

// ItemRepository defines item data operations
type ItemRepository interface {
	IsKnown(name string) (bool, error)
	// CanonicalName returns the stored display name for a case-insensitive
	// match, or "" when the item is unknown
	CanonicalName(name string) (string, error)
	Get(name string) (*domain.Item, error)
	GetAll() ([]domain.Item, error)
	GetBySupplier(supplierID string) ([]domain.Item, error)
	// Add creates the item or accumulates quantity onto an existing one.
	// A non-empty actor marks the last-update columns (logging paths only).
	Add(name, supplierID string, itemType domain.ItemType, qty int, actor string) error
	SetRequiredQuantity(name string, qty int) (bool, error)
	UpdateSupplier(name, supplierID string) error
	UpdateType(name string, itemType domain.ItemType) error
	Rename(oldName, newName string) error
	Delete(name string) (bool, error)
	GetDefaultPrepSupplierID() (string, error)
	SetDefaultPrepSupplierID(id string) error
	// SetAllPrepItemsSupplier reassigns every Prep item and returns the count
	SetAllPrepItemsSupplier(id string) (int, error)
}

// SupplierRepository defines supplier data operations
type SupplierRepository interface {
	GetAll() ([]domain.Supplier, error)
	GetByID(id string) (*domain.Supplier, error)
	Add(company, contact, number string) (string, error)
	NumberedList() ([]domain.NumberedSupplier, error)
}

// SenderRepository stores per-sender preferences keyed by phone
type SenderRepository interface {
	EnsureExists(phone string) error
	// GetLanguage returns "" when the sender has no stored preference
	GetLanguage(phone string) (string, error)
	SetLanguage(phone, lang string) error
}
