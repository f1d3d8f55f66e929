package handler

import (
	"fmt"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// handlePref opens the preferences menu
func (h *Handler) handlePref(sender, lang string) string {
	h.setWorkflow(sender, &domain.Workflow{
		Kind:     domain.WorkflowPreferences,
		PrefStep: domain.PrefMenu,
	})
	return h.t(lang, "pref_menu", nil)
}

// startLangSelect jumps straight to the language sub-step (Lang command)
func (h *Handler) startLangSelect(sender, lang string) string {
	h.setWorkflow(sender, &domain.Workflow{
		Kind:     domain.WorkflowPreferences,
		PrefStep: domain.PrefLanguage,
	})
	return h.t(lang, "pref_langs", i18n.Params{"list": h.languageLines()})
}

func (h *Handler) prefStep(sender, lang string, wf *domain.Workflow, text string) string {
	switch wf.PrefStep {
	case domain.PrefMenu:
		choice, ok := menuChoice(text, 2)
		if !ok {
			return h.t(lang, "pref_invalid", nil)
		}
		if choice == 1 {
			wf.PrefStep = domain.PrefLanguage
			h.setWorkflow(sender, wf)
			return h.t(lang, "pref_langs", i18n.Params{"list": h.languageLines()})
		}

		numbered, err := h.suppliers.NumberedList()
		if err != nil {
			h.logger.Error("Failed to list suppliers", zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		if len(numbered) == 0 {
			h.clearWorkflow(sender)
			return h.t(lang, "sup_empty", nil)
		}
		wf.PrefStep = domain.PrefPrepSupplier
		h.setWorkflow(sender, wf)
		return h.t(lang, "pref_prep_list", i18n.Params{"list": supplierLines(numbered)})

	case domain.PrefLanguage:
		choice, ok := menuChoice(text, len(i18n.SupportedLangs))
		if !ok {
			return h.t(lang, "choose_number", i18n.Params{"max": itoa(len(i18n.SupportedLangs))})
		}
		newLang := i18n.SupportedLangs[choice-1]
		if err := h.senders.SetLanguage(sender, newLang); err != nil {
			h.logger.Error("Failed to set language", zap.String("sender", sender), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		h.clearWorkflow(sender)
		// Confirm in the newly selected language
		return h.t(newLang, "lang_set", i18n.Params{
			"lang": h.tr.LanguageName(newLang, newLang),
		})
	}

	numbered, err := h.suppliers.NumberedList()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if len(numbered) == 0 {
		// List emptied while the menu was pending
		h.clearWorkflow(sender)
		return h.t(lang, "sup_empty", nil)
	}
	choice, ok := menuChoice(text, len(numbered))
	if !ok {
		return h.t(lang, "choose_number", i18n.Params{"max": itoa(len(numbered))})
	}

	chosen := numbered[choice-1].Supplier
	if err := h.items.SetDefaultPrepSupplierID(chosen.ID); err != nil {
		h.logger.Error("Failed to persist prep supplier", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	count, err := h.items.SetAllPrepItemsSupplier(chosen.ID)
	if err != nil {
		h.logger.Error("Failed to reassign prep items", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "pref_prep_set", i18n.Params{
		"supplier": chosen.CompanyName,
		"count":    itoa(count),
	})
}

// languageLines renders the numbered language menu, each language named in
// itself so a sender stuck in the wrong language can still find their own.
func (h *Handler) languageLines() string {
	var b strings.Builder
	for i, code := range i18n.SupportedLangs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, h.tr.LanguageName(code, code))
	}
	return b.String()
}
