package handler

import (
	"testing"

	"shopbot/internal/domain"

	"github.com/stretchr/testify/require"
)

func seedAcmeItems(f *fixture) {
	seedSupplier(f, "sup-1", "Acme Dairy")
	f.items.Seed(domain.Item{Name: "Milk", SupplierID: "sup-1", Type: domain.TypeRaw})
	f.items.Seed(domain.Item{Name: "Butter", SupplierID: "sup-1", Type: domain.TypeRaw})
	f.items.Seed(domain.Item{Name: "Yogurt", SupplierID: "sup-1", Type: domain.TypeRaw})
}

func TestNeedSetsRequiredQuantity(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw})

	reply := f.send(t, "Need Milk 6")
	require.Contains(t, reply, "Required quantity for Milk set to 6")
	f.requireNoWorkflow(t)

	item, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 6, item.RequiredQuantity)
}

func TestNeedUnknownItem(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "Need Caviar 6")
	require.Contains(t, reply, "Caviar is not in the list")
	f.requireNoWorkflow(t)
}

func TestNeedPatternStartsFill(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	reply := f.send(t, "Need acme")
	require.Contains(t, reply, "Required quantity? (1/3)")

	wf := f.workflow(t)
	require.Equal(t, domain.WorkflowNeedFill, wf.Kind)
	require.Len(t, wf.FillItems, 3)
}

func TestNeedFillWritesZeroesThrough(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	f.send(t, "Need acme")
	f.send(t, "5")
	f.send(t, "")
	reply := f.send(t, "2")

	require.Contains(t, reply, "Updated required quantities")
	f.requireNoWorkflow(t)

	first, err := f.items.Get("Butter")
	require.NoError(t, err)
	require.Equal(t, 5, first.RequiredQuantity)

	second, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 0, second.RequiredQuantity, "blank reply is an explicit zero requirement")

	third, err := f.items.Get("Yogurt")
	require.NoError(t, err)
	require.Equal(t, 2, third.RequiredQuantity)
}

func TestLowsFillSkipsZeroes(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	reply := f.send(t, "Lows acme")
	require.Contains(t, reply, "Quantity? (1/3")

	f.send(t, "")
	f.send(t, "3")
	reply = f.send(t, "0")

	require.Contains(t, reply, "Added:")
	require.Contains(t, reply, "• Milk (3)")
	require.NotContains(t, reply, "Butter")
	f.requireNoWorkflow(t)

	milk, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 3, milk.Quantity)

	butter, err := f.items.Get("Butter")
	require.NoError(t, err)
	require.Equal(t, 0, butter.Quantity, "skipped items get no quantity")
	require.Len(t, f.log.Batches, 1)
	require.Len(t, f.log.Batches[0], 1)
}

func TestLowsFillAllSkipped(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	f.send(t, "Lows acme")
	f.send(t, "")
	f.send(t, "nope")
	reply := f.send(t, "-2")

	require.Contains(t, reply, "No items added")
	f.requireNoWorkflow(t)
	require.Empty(t, f.log.Batches)
}

func TestFillInvalidPattern(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	reply := f.send(t, "Lows [unclosed")
	require.Contains(t, reply, "Invalid pattern")
	f.requireNoWorkflow(t)
}

func TestFillNoMatch(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	reply := f.send(t, "Lows nomatch")
	require.Contains(t, reply, "No supplier items match")
	f.requireNoWorkflow(t)
}

func TestFillBackCancels(t *testing.T) {
	f := newFixture(t)
	seedAcmeItems(f)

	f.send(t, "Lows acme")
	f.send(t, "3")
	reply := f.send(t, "back")
	require.Contains(t, reply, "Cancelled")
	f.requireNoWorkflow(t)
	require.Empty(t, f.log.Batches)
}
