package handler

import (
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// cancelToken finishes a multi-item batch and cancels everything else
const cancelToken = "!"

// route is the top-level dispatcher. Checks run in fixed priority order:
// the reserved token, the back token, the sender's pending workflow, then
// top-level commands, reserved standalone words, and finally the implicit
// single-item logging fallback.
func (h *Handler) route(sender, lang, text string) string {
	wf, err := h.sessions.Get(sender)
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("sender", sender), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}

	if text == cancelToken {
		if wf != nil && wf.Kind == domain.WorkflowMultiBatch {
			return h.finishBatch(sender, lang, wf)
		}
		if wf != nil {
			h.clearWorkflow(sender)
			return h.t(lang, "cancelled", nil)
		}
		return h.t(lang, "reserved_token", nil)
	}

	if canonicalToken(text, lang) == cmdBack {
		return h.handleBack(sender, lang, wf)
	}

	if wf != nil {
		return h.stepWorkflow(sender, lang, wf, text)
	}

	if text == "" {
		return h.t(lang, "invalid_item", nil)
	}

	normalized := NormalizeAliases(text, lang)
	fields := strings.Fields(normalized)
	command := canonicalToken(fields[0], lang)
	arg := strings.TrimSpace(strings.TrimPrefix(normalized, fields[0]))

	switch command {
	case cmdLows:
		return h.startLows(sender, lang, arg)
	case cmdList:
		return h.handleList(lang, arg, false)
	case cmdListExt:
		return h.handleList(lang, arg, true)
	case cmdNeed:
		if arg != "" {
			return h.handleNeed(sender, lang, arg)
		}
	case cmdEdit:
		if arg != "" {
			return h.startEdit(sender, lang, arg)
		}
	case cmdSup:
		return h.handleSup(sender, lang)
	case cmdSupa:
		return h.startSupa(sender, lang)
	case cmdPref:
		return h.handlePref(sender, lang)
	case cmdLang:
		return h.startLangSelect(sender, lang)
	case cmdHelp:
		return h.handleHelp(lang, arg)
	}

	// Bare command words and bare yes/no tokens are never item names
	if len(fields) == 1 && (command != "" || isYes(text) || isNo(text)) {
		return h.t(lang, "reserved_word", i18n.Params{"word": fields[0]})
	}

	return h.logSingleItem(sender, lang, normalized)
}

// stepWorkflow feeds a message into the sender's pending workflow. Engines
// receive the raw trimmed text: inside a flow, alias words are answers, not
// commands.
func (h *Handler) stepWorkflow(sender, lang string, wf *domain.Workflow, text string) string {
	switch wf.Kind {
	case domain.WorkflowLowsFill, domain.WorkflowNeedFill:
		return h.fillStep(sender, lang, wf, text)
	case domain.WorkflowEdit:
		return h.editStep(sender, lang, wf, text)
	case domain.WorkflowAddSupplier:
		return h.stepAddSupplier(sender, lang, wf, text)
	case domain.WorkflowSupplierDetails:
		return h.stepSupplierDetails(sender, lang, wf, text)
	case domain.WorkflowTypeSelect:
		return h.stepTypeSelect(sender, lang, wf, text)
	case domain.WorkflowSupplierSelect:
		return h.stepSupplierSelect(sender, lang, wf, text)
	case domain.WorkflowNewItemConfirm:
		return h.stepNewItemConfirm(sender, lang, wf, text)
	case domain.WorkflowPreferences:
		return h.prefStep(sender, lang, wf, text)
	case domain.WorkflowMultiBatch:
		return h.batchStep(sender, lang, wf, text)
	}

	h.logger.Warn("Unknown workflow kind, clearing session",
		zap.String("sender", sender),
		zap.String("kind", string(wf.Kind)),
	)
	h.clearWorkflow(sender)
	return h.t(lang, "error_generic", nil)
}

// handleBack steps one level up in the pending workflow. What "up" means is
// workflow-specific; past the first step it cancels the flow.
func (h *Handler) handleBack(sender, lang string, wf *domain.Workflow) string {
	if wf == nil {
		return h.t(lang, "nothing_back", nil)
	}

	cancel := func() string {
		h.clearWorkflow(sender)
		return h.t(lang, "cancelled", nil)
	}

	switch wf.Kind {
	case domain.WorkflowSupplierSelect:
		wf.Kind = domain.WorkflowTypeSelect
		wf.SupplierID = ""
		h.setWorkflow(sender, wf)
		return h.t(lang, "choose_type", i18n.Params{"item": wf.Item})

	case domain.WorkflowAddSupplier:
		switch wf.Step {
		case domain.AddSupplierNumber:
			wf.Step = domain.AddSupplierContact
			h.setWorkflow(sender, wf)
			return h.t(lang, "supa_contact", nil)
		case domain.AddSupplierContact:
			wf.Step = domain.AddSupplierCompany
			h.setWorkflow(sender, wf)
			return h.t(lang, "supa_company", nil)
		}
		return cancel()

	case domain.WorkflowEdit:
		switch wf.EditStep {
		case domain.EditMenu:
			return cancel()
		case domain.EditTypeRawSupplier:
			wf.EditStep = domain.EditType
			h.setWorkflow(sender, wf)
			return h.t(lang, "edit_choose_type", i18n.Params{"item": wf.Item})
		}
		wf.EditStep = domain.EditMenu
		h.setWorkflow(sender, wf)
		return h.t(lang, "edit_menu", i18n.Params{"item": wf.Item})

	case domain.WorkflowPreferences:
		if wf.PrefStep == domain.PrefMenu {
			return cancel()
		}
		wf.PrefStep = domain.PrefMenu
		h.setWorkflow(sender, wf)
		return h.t(lang, "pref_menu", nil)
	}

	return cancel()
}

// menuChoice parses a numeric menu reply in the range 1..max
func menuChoice(text string, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
