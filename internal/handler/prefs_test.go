package handler

import (
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"github.com/stretchr/testify/require"
)

func TestPrefMenu(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "Pref")
	require.Contains(t, reply, "1. Language")
	require.Contains(t, reply, "2. Default Prep supplier")
	require.Equal(t, domain.WorkflowPreferences, f.workflow(t).Kind)
}

func TestPrefMenuInvalidChoice(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Pref")
	reply := f.send(t, "3")
	require.Contains(t, reply, "number 1-2")
	require.Equal(t, domain.PrefMenu, f.workflow(t).PrefStep)
}

func TestLanguageSwitch(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Pref")
	reply := f.send(t, "1")
	require.Contains(t, reply, "1. English")
	require.Contains(t, reply, "2. עברית")

	// Pick Hebrew; the confirmation arrives in Hebrew
	reply = f.send(t, "2")
	require.Contains(t, reply, "עברית")
	f.requireNoWorkflow(t)
	require.Equal(t, i18n.LangHebrew, f.senders.Languages[testSender])

	// Hebrew aliases now work
	reply = f.send(t, "מלאי")
	require.Contains(t, reply, "אין פריטים")
}

func TestLangCommandJumpsToLanguages(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, "lang")
	require.Contains(t, reply, "1. English")
	require.Equal(t, domain.PrefLanguage, f.workflow(t).PrefStep)
}

func TestHebrewPrefAlias(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.senders.SetLanguage(testSender, i18n.LangHebrew))

	reply := f.send(t, "שפה")
	require.Contains(t, reply, "1. שפה")
	require.Equal(t, domain.PrefMenu, f.workflow(t).PrefStep)
}

func TestPrepSupplierSelection(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")
	seedSupplier(f, "sup-2", "Prep Kitchen")
	f.items.Seed(domain.Item{Name: "Salad", SupplierID: "sup-1", Type: domain.TypePrep})
	f.items.Seed(domain.Item{Name: "Soup", SupplierID: "sup-1", Type: domain.TypePrep})
	f.items.Seed(domain.Item{Name: "Milk", SupplierID: "sup-1", Type: domain.TypeRaw})

	f.send(t, "Pref")
	reply := f.send(t, "2")
	require.Contains(t, reply, "1. Acme")
	require.Contains(t, reply, "2. Prep Kitchen")

	reply = f.send(t, "2")
	require.Contains(t, reply, "Prep Kitchen")
	require.Contains(t, reply, "2 Prep items updated")
	f.requireNoWorkflow(t)

	require.Equal(t, "sup-2", f.items.PrepSupplierID)
	salad, err := f.items.Get("Salad")
	require.NoError(t, err)
	require.Equal(t, "sup-2", salad.SupplierID)

	milk, err := f.items.Get("Milk")
	require.NoError(t, err)
	require.Equal(t, "sup-1", milk.SupplierID, "raw items keep their supplier")
}

func TestPrepSupplierListEmptiedMidFlow(t *testing.T) {
	f := newFixture(t)
	seedSupplier(f, "sup-1", "Acme")

	f.send(t, "Pref")
	f.send(t, "2")
	require.Equal(t, domain.PrefPrepSupplier, f.workflow(t).PrefStep)

	f.suppliers.Suppliers = nil
	reply := f.send(t, "1")
	require.Contains(t, reply, "No suppliers yet")
	f.requireNoWorkflow(t)
}

func TestPrefBackNavigation(t *testing.T) {
	f := newFixture(t)

	f.send(t, "Pref")
	f.send(t, "1")
	require.Equal(t, domain.PrefLanguage, f.workflow(t).PrefStep)

	reply := f.send(t, "back")
	require.Contains(t, reply, "1. Language")
	require.Equal(t, domain.PrefMenu, f.workflow(t).PrefStep)

	reply = f.send(t, "back")
	require.Contains(t, reply, "Cancelled")
	f.requireNoWorkflow(t)
}
