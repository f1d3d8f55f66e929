package handler

import (
	"errors"
	"testing"

	"shopbot/internal/domain"

	"github.com/stretchr/testify/require"
)

func seedSupplier(f *fixture, id, company string) {
	f.suppliers.Seed(domain.Supplier{ID: id, CompanyName: company, ContactName: "Contact", ContactNumber: "0501234567"})
}

func TestKnownItemAppendsWithoutWorkflow(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")
	f.items.Seed(domain.Item{Name: "Milk", SupplierID: "sup-1", Type: domain.TypeRaw})

	reply := f.send(t, "Milk 3")
	require.Contains(t, reply, "Added Milk (3)")
	f.requireNoWorkflow(t)

	item, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 3, item.Quantity)
	require.Len(t, f.log.Rows, 1)
	require.Equal(t, "Acme", f.log.Rows[0].Supplier)
}

func TestKnownItemCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Egg Salad", Type: domain.TypePrep})

	reply := f.send(t, "egg salad")
	require.Contains(t, reply, "Added Egg Salad (1)")
	f.requireNoWorkflow(t)
}

func TestUnknownItemAsksConfirmation(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "Butter 2")
	require.Contains(t, reply, "Butter is not in the list")
	require.Contains(t, reply, "(yes/no)")

	wf := f.workflow(t)
	require.NotNil(t, wf)
	require.Equal(t, domain.WorkflowNewItemConfirm, wf.Kind)
	require.Equal(t, "Butter", wf.Item)
	require.Equal(t, 2, wf.Quantity)
}

func TestConfirmNoDiscards(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Butter")
	reply := f.send(t, "no")
	require.Contains(t, reply, "Cancelled")
	f.requireNoWorkflow(t)

	known, err := f.items.IsKnown("Butter")
	require.NoError(t, err)
	require.False(t, known)
	require.Empty(t, f.log.Rows)
}

func TestConfirmGarbageReprompts(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Butter")
	reply := f.send(t, "maybe")
	require.Contains(t, reply, "yes or no")
	require.Equal(t, domain.WorkflowNewItemConfirm, f.workflow(t).Kind)
}

func TestConfirmYesGoesToTypeSelect(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Butter")
	reply := f.send(t, "yes")
	require.Contains(t, reply, "Type for Butter")

	require.Equal(t, domain.WorkflowTypeSelect, f.workflow(t).Kind)
}

func TestExplicitLowSkipsConfirmation(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "Low Butter 2")
	require.Contains(t, reply, "Type for Butter")
	require.Equal(t, domain.WorkflowTypeSelect, f.workflow(t).Kind)
}

func TestTypeRawWithSuppliersSelects(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")
	seedSupplier(f, "sup-2", "Beta")

	f.send(t, "Low Butter 2")
	reply := f.send(t, "1")
	require.Contains(t, reply, "Supplier for Butter")
	require.Contains(t, reply, "1. Acme")
	require.Contains(t, reply, "2. Beta")
	require.Equal(t, domain.WorkflowSupplierSelect, f.workflow(t).Kind)

	reply = f.send(t, "2")
	require.Contains(t, reply, "Added Butter (2)")
	f.requireNoWorkflow(t)

	item, err := f.items.Get("Butter")
	require.NoError(t, err)
	require.Equal(t, "sup-2", item.SupplierID)
	require.Equal(t, domain.TypeRaw, item.Type)
}

func TestTypeRawWithoutSuppliersAppendsDirectly(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Low Butter")
	reply := f.send(t, "1")
	require.Contains(t, reply, "Added Butter (1)")
	f.requireNoWorkflow(t)

	item, err := f.items.Get("Butter")
	require.NoError(t, err)
	require.Empty(t, item.SupplierID)
}

func TestTypePrepUsesDefaultSupplier(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")
	seedSupplier(f, "sup-2", "Prep Kitchen")
	f.items.PrepSupplierID = "sup-2"

	f.send(t, "Low Butter")
	reply := f.send(t, "2")
	require.Contains(t, reply, "Added Butter (1)")

	item, err := f.items.Get("Butter")
	require.NoError(t, err)
	require.Equal(t, "sup-2", item.SupplierID)
	require.Equal(t, domain.TypePrep, item.Type)
}

func TestTypeSelectReprompts(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Low Butter")
	reply := f.send(t, "7")
	require.Contains(t, reply, "number 1-2")
	require.Equal(t, domain.WorkflowTypeSelect, f.workflow(t).Kind)
}

func TestSupplierSelectBackReturnsToType(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")

	f.send(t, "Low Butter")
	f.send(t, "1")
	require.Equal(t, domain.WorkflowSupplierSelect, f.workflow(t).Kind)

	reply := f.send(t, "back")
	require.Contains(t, reply, "Type for Butter")
	require.Equal(t, domain.WorkflowTypeSelect, f.workflow(t).Kind)
}

func TestLogFailureStillWritesStore(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw})
	f.log.Fail = true

	reply := f.send(t, "Milk 2")
	require.Contains(t, reply, "Could not add")

	item, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 2, item.Quantity)
}

func TestZeroQuantityAppendsKnownItem(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw, Quantity: 5})

	reply := f.send(t, "Milk 0")
	require.Contains(t, reply, "Added Milk (0)")
	f.requireNoWorkflow(t)

	item, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)
	require.Len(t, f.log.Rows, 1)
	require.Equal(t, 0, f.log.Rows[0].Quantity)
}

func TestZeroQuantityUnknownItemAsksConfirmation(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "Butter 0")
	require.Contains(t, reply, "Butter is not in the list")

	wf := f.workflow(t)
	require.Equal(t, "Butter", wf.Item)
	require.Equal(t, 0, wf.Quantity)
}

func TestTypePrepResolveFailureKeepsFlow(t *testing.T) {
	f := newFixture(t)
	f.items.PrepConfigErr = errors.New("store unavailable")

	f.send(t, "Low Butter")
	reply := f.send(t, "2")
	require.Contains(t, reply, "Something went wrong")
	require.Equal(t, domain.WorkflowTypeSelect, f.workflow(t).Kind)

	f.items.PrepConfigErr = nil
	reply = f.send(t, "2")
	require.Contains(t, reply, "Added Butter (1)")
	f.requireNoWorkflow(t)
}

func TestSupplierSelectSurvivesEmptiedList(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")

	f.send(t, "Low Butter")
	f.send(t, "1")
	require.Equal(t, domain.WorkflowSupplierSelect, f.workflow(t).Kind)

	f.suppliers.Suppliers = nil
	reply := f.send(t, "1")
	require.Contains(t, reply, "Added Butter (1)")
	f.requireNoWorkflow(t)

	item, err := f.items.Get("Butter")
	require.NoError(t, err)
	require.Empty(t, item.SupplierID)
}

func TestHebrewExplicitLowMarker(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.senders.SetLanguage(testSender, "he"))

	reply := f.send(t, "פריט חמאה")
	require.Contains(t, reply, "סוג עבור")
	require.Equal(t, domain.WorkflowTypeSelect, f.workflow(t).Kind)
}
