// Package testutil provides in-memory fakes for the repository and log
// interfaces, mirroring the semantics of the postgres implementations
// closely enough for handler and service tests.
package testutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"shopbot/internal/domain"
)

// FakeItemRepo is an in-memory ItemRepository keyed case-insensitively
type FakeItemRepo struct {
	Items          map[string]*domain.Item // key: domain.NameKey
	PrepSupplierID string
	PrepConfigErr  error // returned from GetDefaultPrepSupplierID when set
}

// NewFakeItemRepo creates an empty fake item repository
func NewFakeItemRepo() *FakeItemRepo {
	return &FakeItemRepo{Items: make(map[string]*domain.Item)}
}

// Seed inserts an item directly, bypassing the Add accumulation
func (r *FakeItemRepo) Seed(item domain.Item) {
	copied := item
	r.Items[domain.NameKey(item.Name)] = &copied
}

func (r *FakeItemRepo) IsKnown(name string) (bool, error) {
	_, ok := r.Items[domain.NameKey(name)]
	return ok, nil
}

func (r *FakeItemRepo) CanonicalName(name string) (string, error) {
	if item, ok := r.Items[domain.NameKey(name)]; ok {
		return item.Name, nil
	}
	return "", nil
}

func (r *FakeItemRepo) Get(name string) (*domain.Item, error) {
	if item, ok := r.Items[domain.NameKey(name)]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, nil
}

func (r *FakeItemRepo) GetAll() ([]domain.Item, error) {
	keys := make([]string, 0, len(r.Items))
	for k := range r.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, *r.Items[k])
	}
	return out, nil
}

func (r *FakeItemRepo) GetBySupplier(supplierID string) ([]domain.Item, error) {
	all, _ := r.GetAll()
	var out []domain.Item
	for _, item := range all {
		if item.SupplierID == supplierID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *FakeItemRepo) Add(name, supplierID string, itemType domain.ItemType, qty int, actor string) error {
	if qty < 0 {
		qty = 0
	}
	key := domain.NameKey(name)
	item, ok := r.Items[key]
	if !ok {
		item = &domain.Item{Name: name, SupplierID: supplierID, Type: itemType}
		r.Items[key] = item
	}
	item.Quantity += qty
	if actor != "" {
		now := time.Now()
		item.LastUpdated = &now
		item.LastUpdatedBy = actor
	}
	return nil
}

func (r *FakeItemRepo) SetRequiredQuantity(name string, qty int) (bool, error) {
	item, ok := r.Items[domain.NameKey(name)]
	if !ok {
		return false, nil
	}
	item.RequiredQuantity = qty
	return true, nil
}

func (r *FakeItemRepo) UpdateSupplier(name, supplierID string) error {
	item, ok := r.Items[domain.NameKey(name)]
	if !ok {
		return errors.New("item not found")
	}
	item.SupplierID = supplierID
	return nil
}

func (r *FakeItemRepo) UpdateType(name string, itemType domain.ItemType) error {
	item, ok := r.Items[domain.NameKey(name)]
	if !ok {
		return errors.New("item not found")
	}
	item.Type = itemType
	return nil
}

func (r *FakeItemRepo) Rename(oldName, newName string) error {
	key := domain.NameKey(oldName)
	item, ok := r.Items[key]
	if !ok {
		return errors.New("item not found")
	}
	delete(r.Items, key)
	item.Name = newName
	r.Items[domain.NameKey(newName)] = item
	return nil
}

func (r *FakeItemRepo) Delete(name string) (bool, error) {
	key := domain.NameKey(name)
	if _, ok := r.Items[key]; !ok {
		return false, nil
	}
	delete(r.Items, key)
	return true, nil
}

func (r *FakeItemRepo) GetDefaultPrepSupplierID() (string, error) {
	if r.PrepConfigErr != nil {
		return "", r.PrepConfigErr
	}
	return r.PrepSupplierID, nil
}

func (r *FakeItemRepo) SetDefaultPrepSupplierID(id string) error {
	r.PrepSupplierID = id
	return nil
}

func (r *FakeItemRepo) SetAllPrepItemsSupplier(id string) (int, error) {
	count := 0
	for _, item := range r.Items {
		if item.Type == domain.TypePrep {
			item.SupplierID = id
			count++
		}
	}
	return count, nil
}

// FakeSupplierRepo is an in-memory SupplierRepository with insertion order
type FakeSupplierRepo struct {
	Suppliers []domain.Supplier
}

// NewFakeSupplierRepo creates an empty fake supplier repository
func NewFakeSupplierRepo() *FakeSupplierRepo {
	return &FakeSupplierRepo{}
}

// Seed appends a supplier with the given id
func (r *FakeSupplierRepo) Seed(sup domain.Supplier) {
	r.Suppliers = append(r.Suppliers, sup)
}

func (r *FakeSupplierRepo) GetAll() ([]domain.Supplier, error) {
	out := make([]domain.Supplier, len(r.Suppliers))
	copy(out, r.Suppliers)
	return out, nil
}

func (r *FakeSupplierRepo) GetByID(id string) (*domain.Supplier, error) {
	for _, sup := range r.Suppliers {
		if sup.ID == id {
			copied := sup
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeSupplierRepo) Add(company, contact, number string) (string, error) {
	id := fmt.Sprintf("sup-%d", len(r.Suppliers)+1)
	r.Suppliers = append(r.Suppliers, domain.Supplier{
		ID:            id,
		CompanyName:   company,
		ContactName:   contact,
		ContactNumber: number,
	})
	return id, nil
}

func (r *FakeSupplierRepo) NumberedList() ([]domain.NumberedSupplier, error) {
	out := make([]domain.NumberedSupplier, len(r.Suppliers))
	for i, sup := range r.Suppliers {
		out[i] = domain.NumberedSupplier{Number: i + 1, Supplier: sup}
	}
	return out, nil
}

// FakeSenderRepo is an in-memory SenderRepository
type FakeSenderRepo struct {
	Languages map[string]string
}

// NewFakeSenderRepo creates an empty fake sender repository
func NewFakeSenderRepo() *FakeSenderRepo {
	return &FakeSenderRepo{Languages: make(map[string]string)}
}

func (r *FakeSenderRepo) EnsureExists(phone string) error {
	if _, ok := r.Languages[phone]; !ok {
		r.Languages[phone] = ""
	}
	return nil
}

func (r *FakeSenderRepo) GetLanguage(phone string) (string, error) {
	return r.Languages[phone], nil
}

func (r *FakeSenderRepo) SetLanguage(phone, lang string) error {
	r.Languages[phone] = lang
	return nil
}

// RecorderLog records external-log appends and can simulate failures
type RecorderLog struct {
	Rows    []domain.LogRow
	Batches [][]domain.LogRow
	Senders []string
	Fail    bool
}

// NewRecorderLog creates an empty recorder
func NewRecorderLog() *RecorderLog {
	return &RecorderLog{}
}

func (l *RecorderLog) AppendRow(item string, qty int, sender, supplierName string, itemType domain.ItemType) error {
	if l.Fail {
		return errors.New("append failed")
	}
	l.Rows = append(l.Rows, domain.LogRow{Item: item, Quantity: qty, Supplier: supplierName, Type: itemType})
	l.Senders = append(l.Senders, sender)
	return nil
}

func (l *RecorderLog) AppendRows(rows []domain.LogRow, sender string) error {
	if l.Fail {
		return errors.New("append failed")
	}
	batch := make([]domain.LogRow, len(rows))
	copy(batch, rows)
	l.Batches = append(l.Batches, batch)
	l.Rows = append(l.Rows, batch...)
	l.Senders = append(l.Senders, sender)
	return nil
}

// ItemNames returns the recorded row names joined for quick asserts
func (l *RecorderLog) ItemNames() string {
	names := make([]string, len(l.Rows))
	for i, r := range l.Rows {
		names[i] = r.Item
	}
	return strings.Join(names, ",")
}
