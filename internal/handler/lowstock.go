package handler

import (
	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// logSingleItem is the fallback logging path: "<item> [qty]" with an
// optional explicit Low prefix. Known items append immediately with their
// stored supplier and type; unknown items enter confirmation, or go straight
// to type selection when the explicit prefix was used.
func (h *Handler) logSingleItem(sender, lang, text string) string {
	name, qty := domain.ParseItemQuantity(text)
	if name == domain.UnknownItem {
		return h.t(lang, "invalid_item", nil)
	}

	canonical, err := h.items.CanonicalName(name)
	if err != nil {
		h.logger.Error("Failed to look up item", zap.String("item", name), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}

	if canonical != "" {
		item, err := h.items.Get(canonical)
		if err != nil || item == nil {
			h.logger.Error("Failed to load item", zap.String("item", canonical), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		return h.appendItem(sender, lang, item.Name, item.SupplierID, item.Type, qty)
	}

	if domain.HasExplicitLow(text) {
		return h.startTypeSelect(sender, lang, name, qty)
	}

	h.setWorkflow(sender, &domain.Workflow{
		Kind:     domain.WorkflowNewItemConfirm,
		Item:     name,
		Quantity: qty,
	})
	return h.t(lang, "new_item_confirm", i18n.Params{"item": name})
}

func (h *Handler) startTypeSelect(sender, lang, item string, qty int) string {
	h.setWorkflow(sender, &domain.Workflow{
		Kind:     domain.WorkflowTypeSelect,
		Item:     item,
		Quantity: qty,
	})
	return h.t(lang, "choose_type", i18n.Params{"item": item})
}

func (h *Handler) stepNewItemConfirm(sender, lang string, wf *domain.Workflow, text string) string {
	switch {
	case isYes(text):
		return h.startTypeSelect(sender, lang, wf.Item, wf.Quantity)
	case isNo(text):
		h.clearWorkflow(sender)
		return h.t(lang, "cancelled", nil)
	}
	return h.t(lang, "confirm_yes_no", nil)
}

func (h *Handler) stepTypeSelect(sender, lang string, wf *domain.Workflow, text string) string {
	choice, ok := menuChoice(text, 2)
	if !ok {
		return h.t(lang, "choose_number", i18n.Params{"max": "2"})
	}

	if choice == 2 {
		supplierID := ""
		prep, err := h.inventory.ResolvePrepSupplier()
		if err != nil {
			h.logger.Error("Failed to resolve prep supplier", zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		if prep != nil {
			supplierID = prep.ID
		}
		h.clearWorkflow(sender)
		return h.appendItem(sender, lang, wf.Item, supplierID, domain.TypePrep, wf.Quantity)
	}

	numbered, err := h.suppliers.NumberedList()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if len(numbered) == 0 {
		h.clearWorkflow(sender)
		return h.appendItem(sender, lang, wf.Item, "", domain.TypeRaw, wf.Quantity)
	}

	wf.Kind = domain.WorkflowSupplierSelect
	h.setWorkflow(sender, wf)
	return h.t(lang, "choose_supplier", i18n.Params{
		"item": wf.Item,
		"list": supplierLines(numbered),
	})
}

func (h *Handler) stepSupplierSelect(sender, lang string, wf *domain.Workflow, text string) string {
	numbered, err := h.suppliers.NumberedList()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if len(numbered) == 0 {
		// Supplier list emptied since the menu was shown; append without one.
		h.clearWorkflow(sender)
		return h.appendItem(sender, lang, wf.Item, "", domain.TypeRaw, wf.Quantity)
	}

	choice, ok := menuChoice(text, len(numbered))
	if !ok {
		return h.t(lang, "choose_number", i18n.Params{"max": itoa(len(numbered))})
	}

	h.clearWorkflow(sender)
	return h.appendItem(sender, lang, wf.Item, numbered[choice-1].Supplier.ID, domain.TypeRaw, wf.Quantity)
}

// appendItem performs the two-sided append (item store plus external log)
// and renders the outcome. An external-log failure gets the distinct
// "could not add" reply; the store write has still happened.
func (h *Handler) appendItem(sender, lang, name, supplierID string, itemType domain.ItemType, qty int) string {
	logged, err := h.inventory.LogItem(name, supplierID, itemType, qty, sender)
	if err != nil {
		h.logger.Error("Failed to record item", zap.String("item", name), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if !logged {
		return h.t(lang, "item_add_failed", i18n.Params{"item": name})
	}
	return h.t(lang, "item_added", i18n.Params{"item": name, "qty": itoa(qty)})
}
