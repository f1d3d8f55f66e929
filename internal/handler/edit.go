package handler

import (
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// startEdit opens the item editor for an existing item. Unknown items get
// an error and no workflow.
func (h *Handler) startEdit(sender, lang, arg string) string {
	name := domain.TitleCase(arg)
	canonical, err := h.items.CanonicalName(name)
	if err != nil {
		h.logger.Error("Failed to look up item", zap.String("item", name), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if canonical == "" {
		return h.t(lang, "unknown_item", i18n.Params{"item": name})
	}

	h.setWorkflow(sender, &domain.Workflow{
		Kind:     domain.WorkflowEdit,
		Item:     canonical,
		EditStep: domain.EditMenu,
	})
	return h.t(lang, "edit_menu", i18n.Params{"item": canonical})
}

func (h *Handler) editStep(sender, lang string, wf *domain.Workflow, text string) string {
	switch wf.EditStep {
	case domain.EditMenu:
		return h.editMenuStep(sender, lang, wf, text)
	case domain.EditSupplier:
		return h.editSupplierStep(sender, lang, wf, text)
	case domain.EditType:
		return h.editTypeStep(sender, lang, wf, text)
	case domain.EditTypeRawSupplier:
		return h.editTypeRawSupplierStep(sender, lang, wf, text)
	case domain.EditRename:
		return h.editRenameStep(sender, lang, wf, text)
	case domain.EditDeleteConfirm:
		return h.editDeleteStep(sender, lang, wf, text)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "error_generic", nil)
}

func (h *Handler) editMenuStep(sender, lang string, wf *domain.Workflow, text string) string {
	choice, ok := menuChoice(text, 4)
	if !ok {
		return h.t(lang, "edit_menu_invalid", nil)
	}

	switch choice {
	case 1:
		numbered, err := h.suppliers.NumberedList()
		if err != nil {
			h.logger.Error("Failed to list suppliers", zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		if len(numbered) == 0 {
			h.clearWorkflow(sender)
			return h.t(lang, "edit_no_suppliers", nil)
		}
		wf.EditStep = domain.EditSupplier
		h.setWorkflow(sender, wf)
		return h.t(lang, "choose_supplier", i18n.Params{
			"item": wf.Item,
			"list": supplierLines(numbered),
		})
	case 2:
		wf.EditStep = domain.EditType
		h.setWorkflow(sender, wf)
		return h.t(lang, "edit_choose_type", i18n.Params{"item": wf.Item})
	case 3:
		wf.EditStep = domain.EditRename
		h.setWorkflow(sender, wf)
		return h.t(lang, "edit_rename_prompt", i18n.Params{"item": wf.Item})
	default:
		wf.EditStep = domain.EditDeleteConfirm
		h.setWorkflow(sender, wf)
		return h.t(lang, "edit_delete_confirm", i18n.Params{"item": wf.Item})
	}
}

func (h *Handler) editSupplierStep(sender, lang string, wf *domain.Workflow, text string) string {
	numbered, err := h.suppliers.NumberedList()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if len(numbered) == 0 {
		// List emptied while the menu was pending
		h.clearWorkflow(sender)
		return h.t(lang, "edit_no_suppliers", nil)
	}

	choice, ok := menuChoice(text, len(numbered))
	if !ok {
		return h.t(lang, "choose_number", i18n.Params{"max": itoa(len(numbered))})
	}

	chosen := numbered[choice-1].Supplier
	if err := h.items.UpdateSupplier(wf.Item, chosen.ID); err != nil {
		h.logger.Error("Failed to update supplier", zap.String("item", wf.Item), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "edit_supplier_set", i18n.Params{
		"item":     wf.Item,
		"supplier": chosen.CompanyName,
	})
}

func (h *Handler) editTypeStep(sender, lang string, wf *domain.Workflow, text string) string {
	choice, ok := menuChoice(text, 2)
	if !ok {
		return h.t(lang, "choose_number", i18n.Params{"max": "2"})
	}

	item, err := h.items.Get(wf.Item)
	if err != nil || item == nil {
		h.logger.Error("Failed to load item", zap.String("item", wf.Item), zap.Error(err))
		h.clearWorkflow(sender)
		return h.t(lang, "error_generic", nil)
	}

	if choice == 2 {
		prep, err := h.inventory.ResolvePrepSupplier()
		if err != nil {
			h.logger.Error("Failed to resolve prep supplier", zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		supplierName := h.t(lang, "list_no_supplier", nil)
		if prep != nil {
			if err := h.items.UpdateSupplier(wf.Item, prep.ID); err != nil {
				h.logger.Error("Failed to update supplier", zap.String("item", wf.Item), zap.Error(err))
				return h.t(lang, "error_generic", nil)
			}
			supplierName = prep.CompanyName
		}
		if err := h.items.UpdateType(wf.Item, domain.TypePrep); err != nil {
			h.logger.Error("Failed to update type", zap.String("item", wf.Item), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		h.clearWorkflow(sender)
		return h.t(lang, "edit_type_prep_set", i18n.Params{
			"item":     wf.Item,
			"supplier": supplierName,
		})
	}

	// Raw for a Prep item with a supplier needs a supplier other than the
	// Prep one; otherwise just flip the type.
	if item.Type == domain.TypePrep && item.SupplierID != "" {
		others, err := h.suppliersExcept(item.SupplierID)
		if err != nil {
			return h.t(lang, "error_generic", nil)
		}
		if len(others) == 0 {
			h.clearWorkflow(sender)
			return h.t(lang, "edit_no_other_supplier", nil)
		}
		wf.EditStep = domain.EditTypeRawSupplier
		h.setWorkflow(sender, wf)
		return h.t(lang, "edit_raw_choose_supplier", i18n.Params{
			"item": wf.Item,
			"list": supplierLines(others),
		})
	}

	if err := h.items.UpdateType(wf.Item, domain.TypeRaw); err != nil {
		h.logger.Error("Failed to update type", zap.String("item", wf.Item), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "edit_type_raw_set", i18n.Params{"item": wf.Item})
}

func (h *Handler) editTypeRawSupplierStep(sender, lang string, wf *domain.Workflow, text string) string {
	item, err := h.items.Get(wf.Item)
	if err != nil || item == nil {
		h.logger.Error("Failed to load item", zap.String("item", wf.Item), zap.Error(err))
		h.clearWorkflow(sender)
		return h.t(lang, "error_generic", nil)
	}

	others, err := h.suppliersExcept(item.SupplierID)
	if err != nil {
		return h.t(lang, "error_generic", nil)
	}
	if len(others) == 0 {
		h.clearWorkflow(sender)
		return h.t(lang, "edit_no_other_supplier", nil)
	}

	choice, ok := menuChoice(text, len(others))
	if !ok {
		return h.t(lang, "choose_number", i18n.Params{"max": itoa(len(others))})
	}

	chosen := others[choice-1].Supplier
	if err := h.items.UpdateSupplier(wf.Item, chosen.ID); err != nil {
		h.logger.Error("Failed to update supplier", zap.String("item", wf.Item), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if err := h.items.UpdateType(wf.Item, domain.TypeRaw); err != nil {
		h.logger.Error("Failed to update type", zap.String("item", wf.Item), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "edit_type_raw_supplier_set", i18n.Params{
		"item":     wf.Item,
		"supplier": chosen.CompanyName,
	})
}

func (h *Handler) editRenameStep(sender, lang string, wf *domain.Workflow, text string) string {
	if strings.TrimSpace(text) == "" {
		return h.t(lang, "edit_rename_empty", nil)
	}

	newName := domain.TitleCase(text)
	if domain.NameKey(newName) != domain.NameKey(wf.Item) {
		existing, err := h.items.CanonicalName(newName)
		if err != nil {
			h.logger.Error("Failed to look up item", zap.String("item", newName), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		if existing != "" {
			return h.t(lang, "edit_rename_exists", i18n.Params{"name": newName})
		}
	}

	if err := h.items.Rename(wf.Item, newName); err != nil {
		h.logger.Error("Failed to rename item", zap.String("item", wf.Item), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "edit_renamed", i18n.Params{"old": wf.Item, "new": newName})
}

func (h *Handler) editDeleteStep(sender, lang string, wf *domain.Workflow, text string) string {
	switch {
	case isYes(text):
		if _, err := h.items.Delete(wf.Item); err != nil {
			h.logger.Error("Failed to delete item", zap.String("item", wf.Item), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		h.clearWorkflow(sender)
		return h.t(lang, "edit_deleted", i18n.Params{"item": wf.Item})
	case isNo(text):
		h.clearWorkflow(sender)
		return h.t(lang, "cancelled", nil)
	}
	return h.t(lang, "confirm_yes_no", nil)
}

// suppliersExcept returns the numbered supplier list without the given id,
// renumbered from 1.
func (h *Handler) suppliersExcept(excludeID string) ([]domain.NumberedSupplier, error) {
	all, err := h.suppliers.GetAll()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return nil, err
	}

	var numbered []domain.NumberedSupplier
	for _, sup := range all {
		if sup.ID == excludeID {
			continue
		}
		numbered = append(numbered, domain.NumberedSupplier{
			Number:   len(numbered) + 1,
			Supplier: sup,
		})
	}
	return numbered, nil
}
