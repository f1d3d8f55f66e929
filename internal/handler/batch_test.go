package handler

import (
	"testing"

	"shopbot/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestBareLowsStartsEmptyBatch(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "Lows")
	require.Contains(t, reply, "Multi-item mode")

	wf := f.workflow(t)
	require.Equal(t, domain.WorkflowMultiBatch, wf.Kind)
	require.Empty(t, wf.Collected)
}

func TestLowsWithKnownItemSeedsBatch(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw})

	reply := f.send(t, "Lows Milk 4")
	require.Contains(t, reply, "Multi-item mode")
	require.Contains(t, reply, "Milk (4) noted")

	wf := f.workflow(t)
	require.Equal(t, domain.WorkflowMultiBatch, wf.Kind)
	require.Equal(t, []domain.BatchEntry{{Name: "Milk", Quantity: 4}}, wf.Collected)
}

func TestBatchCollectsKnownItems(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw})
	f.items.Seed(domain.Item{Name: "Eggs", Type: domain.TypeRaw})

	f.send(t, "Lows")
	reply := f.send(t, "milk 2")
	require.Contains(t, reply, "Milk (2) noted")
	reply = f.send(t, "Eggs")
	require.Contains(t, reply, "Eggs (1) noted")

	require.Len(t, f.workflow(t).Collected, 2)
	require.Empty(t, f.log.Rows, "nothing written before the batch is finished")
}

func TestBatchRejectsUnknownItems(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw})

	f.send(t, "Lows")
	reply := f.send(t, "Caviar 2")
	require.Contains(t, reply, "Caviar is not in the list")

	require.Empty(t, f.workflow(t).Collected)
	f.requireNoWorkflowKind(t, domain.WorkflowNewItemConfirm)
}

func TestBatchCommit(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")
	f.items.Seed(domain.Item{Name: "Milk", SupplierID: "sup-1", Type: domain.TypeRaw})
	f.items.Seed(domain.Item{Name: "Eggs", Type: domain.TypePrep})

	f.send(t, "Lows")
	f.send(t, "Milk 2")
	f.send(t, "Eggs 5")
	reply := f.send(t, "!")

	require.Contains(t, reply, "Added:")
	require.Contains(t, reply, "• Milk (2)")
	require.Contains(t, reply, "• Eggs (5)")
	f.requireNoWorkflow(t)

	require.Len(t, f.log.Batches, 1)
	require.Len(t, f.log.Batches[0], 2)
	require.Equal(t, "Acme", f.log.Batches[0][0].Supplier)

	milk, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, 2, milk.Quantity)
}

func TestEmptyBatchCommit(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Lows")
	reply := f.send(t, "!")
	require.Contains(t, reply, "Nothing added")
	f.requireNoWorkflow(t)
	require.Empty(t, f.log.Batches)
}

func TestBatchBackDiscards(t *testing.T) {
	f := newFixture(t)
	f.items.Seed(domain.Item{Name: "Milk", Type: domain.TypeRaw})

	f.send(t, "Lows")
	f.send(t, "Milk 2")
	reply := f.send(t, "back")
	require.Contains(t, reply, "Cancelled")
	f.requireNoWorkflow(t)
	require.Empty(t, f.log.Rows)
}

// requireNoWorkflowKind asserts the pending workflow, if any, is not kind
func (f *fixture) requireNoWorkflowKind(t *testing.T, kind domain.WorkflowKind) {
	t.Helper()
	wf := f.workflow(t)
	if wf != nil {
		require.NotEqual(t, kind, wf.Kind)
	}
}
