package service

import (
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/repository"

	"go.uber.org/zap"
)

// InventoryLog is the external spreadsheet log. Both calls may fail
// independently of the item store.
type InventoryLog interface {
	AppendRow(item string, qty int, sender, supplierName string, itemType domain.ItemType) error
	AppendRows(rows []domain.LogRow, sender string) error
}

// InventoryService owns the write paths: every logged quantity goes to both
// the item store and the external log. A log failure is reported to the
// caller but never blocks the item-store write.
type InventoryService struct {
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	log       InventoryLog
	logger    *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	log InventoryLog,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		items:     items,
		suppliers: suppliers,
		log:       log,
		logger:    logger,
	}
}

// LogItem accumulates quantity onto the item (creating it if new) and
// appends one row to the external log. The returned flag is false when the
// external append failed; the item-store write has still happened.
func (s *InventoryService) LogItem(name, supplierID string, itemType domain.ItemType, qty int, sender string) (bool, error) {
	if err := s.items.Add(name, supplierID, itemType, qty, sender); err != nil {
		return false, err
	}

	supplierName := s.supplierName(supplierID)
	if err := s.log.AppendRow(name, qty, sender, supplierName, itemType); err != nil {
		s.logger.Error("Failed to append log row",
			zap.String("item", name),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

// LogBatch writes one batched external-log append with each item's current
// supplier/type snapshot, then accumulates every quantity onto the store.
// Returns the rows written and whether the external append succeeded.
func (s *InventoryService) LogBatch(entries []domain.BatchEntry, sender string) ([]domain.LogRow, bool, error) {
	rows := make([]domain.LogRow, 0, len(entries))
	for _, e := range entries {
		item, err := s.items.Get(e.Name)
		if err != nil {
			return nil, false, err
		}

		row := domain.LogRow{Item: e.Name, Quantity: e.Quantity, Type: domain.TypeRaw}
		if item != nil {
			row.Item = item.Name
			row.Type = item.Type
			row.Supplier = s.supplierName(item.SupplierID)
		}
		rows = append(rows, row)
	}

	logged := true
	if err := s.log.AppendRows(rows, sender); err != nil {
		s.logger.Error("Failed to append log batch",
			zap.Int("rows", len(rows)),
			zap.Error(err),
		)
		logged = false
	}

	for i, e := range entries {
		item, err := s.items.Get(e.Name)

		supplierID := ""
		itemType := domain.TypeRaw
		if err == nil && item != nil {
			supplierID = item.SupplierID
			itemType = item.Type
		}
		if err := s.items.Add(rows[i].Item, supplierID, itemType, e.Quantity, sender); err != nil {
			return rows, logged, err
		}
	}

	return rows, logged, nil
}

// SetRequired sets an item's required quantity; false if the item is unknown
func (s *InventoryService) SetRequired(name string, qty int) (bool, error) {
	return s.items.SetRequiredQuantity(name, qty)
}

// ResolvePrepSupplier returns the default Prep supplier. A stale configured
// id falls back to a by-name lookup ("prep" / "הכנות") and repairs the
// config. Returns nil when no usable supplier exists.
func (s *InventoryService) ResolvePrepSupplier() (*domain.Supplier, error) {
	id, err := s.items.GetDefaultPrepSupplierID()
	if err != nil {
		return nil, err
	}
	if id != "" {
		supplier, err := s.suppliers.GetByID(id)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			return supplier, nil
		}
	}

	all, err := s.suppliers.GetAll()
	if err != nil {
		return nil, err
	}
	for _, sup := range all {
		name := strings.ToLower(sup.CompanyName)
		if strings.Contains(name, "prep") || strings.Contains(sup.CompanyName, "הכנות") {
			if err := s.items.SetDefaultPrepSupplierID(sup.ID); err != nil {
				s.logger.Warn("Failed to repair prep supplier config", zap.Error(err))
			}
			found := sup
			return &found, nil
		}
	}
	return nil, nil
}

func (s *InventoryService) supplierName(supplierID string) string {
	if supplierID == "" {
		return ""
	}
	supplier, err := s.suppliers.GetByID(supplierID)
	if err != nil || supplier == nil {
		return ""
	}
	return supplier.CompanyName
}
