package handler

import (
	"regexp"
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// handleNeed routes the Need command: "<item> <qty>" sets one item's
// required quantity, anything without a trailing integer is a supplier
// pattern that starts the required-quantity fill wizard.
func (h *Handler) handleNeed(sender, lang, arg string) string {
	if !domain.HasTrailingQuantity(arg) {
		return h.startFill(sender, lang, domain.WorkflowNeedFill, arg)
	}

	name, qty := domain.ParseItemQuantity(arg)
	canonical, err := h.items.CanonicalName(name)
	if err != nil {
		h.logger.Error("Failed to look up item", zap.String("item", name), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if canonical == "" {
		return h.t(lang, "unknown_item", i18n.Params{"item": name})
	}

	if _, err := h.inventory.SetRequired(canonical, qty); err != nil {
		h.logger.Error("Failed to set required quantity", zap.String("item", canonical), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	return h.t(lang, "need_set", i18n.Params{"item": canonical, "qty": itoa(qty)})
}

// startFill compiles the supplier pattern, collects the matching suppliers'
// items into an ordered worklist and prompts for the first quantity. No
// workflow is created when the pattern is invalid or matches nothing.
func (h *Handler) startFill(sender, lang string, kind domain.WorkflowKind, pattern string) string {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return h.t(lang, "invalid_regex", i18n.Params{"pattern": pattern})
	}

	suppliers, err := h.suppliers.GetAll()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}

	var worklist []string
	for _, sup := range suppliers {
		if !re.MatchString(sup.CompanyName) {
			continue
		}
		items, err := h.items.GetBySupplier(sup.ID)
		if err != nil {
			h.logger.Error("Failed to list supplier items", zap.String("supplier", sup.ID), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
		for _, item := range items {
			worklist = append(worklist, item.Name)
		}
	}
	if len(worklist) == 0 {
		return h.t(lang, "no_supplier_match", i18n.Params{"pattern": pattern})
	}

	h.setWorkflow(sender, &domain.Workflow{Kind: kind, FillItems: worklist})
	return h.fillPrompt(lang, kind, worklist[0], 1, len(worklist))
}

func (h *Handler) fillPrompt(lang string, kind domain.WorkflowKind, item string, pos, total int) string {
	key := "fill_prompt"
	if kind == domain.WorkflowNeedFill {
		key = "need_fill_prompt"
	}
	return h.t(lang, key, i18n.Params{
		"item":  item,
		"pos":   itoa(pos),
		"total": itoa(total),
	})
}

// fillStep records one quantity reply and advances the cursor. Blank,
// unparsable or negative input counts as zero: a low-stock fill skips
// zero entries, a required-quantity fill writes them through since zero
// is a valid explicit requirement.
func (h *Handler) fillStep(sender, lang string, wf *domain.Workflow, text string) string {
	qty, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || qty < 0 {
		qty = 0
	}

	current := wf.FillItems[wf.FillIndex]
	if wf.Kind == domain.WorkflowNeedFill || qty > 0 {
		wf.Collected = append(wf.Collected, domain.BatchEntry{Name: current, Quantity: qty})
	}

	wf.FillIndex++
	if wf.FillIndex < len(wf.FillItems) {
		h.setWorkflow(sender, wf)
		return h.fillPrompt(lang, wf.Kind, wf.FillItems[wf.FillIndex], wf.FillIndex+1, len(wf.FillItems))
	}

	h.clearWorkflow(sender)
	if wf.Kind == domain.WorkflowNeedFill {
		return h.finishNeedFill(lang, wf)
	}
	return h.finishLowsFill(sender, lang, wf)
}

func (h *Handler) finishLowsFill(sender, lang string, wf *domain.Workflow) string {
	if len(wf.Collected) == 0 {
		return h.t(lang, "fill_done_empty", nil)
	}

	rows, logged, err := h.inventory.LogBatch(wf.Collected, sender)
	if err != nil {
		h.logger.Error("Failed to commit fill batch", zap.Int("entries", len(wf.Collected)), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if !logged {
		return h.t(lang, "item_add_failed", i18n.Params{"item": joinRowNames(rows)})
	}
	return h.t(lang, "fill_done", i18n.Params{"list": rowLines(rows)})
}

func (h *Handler) finishNeedFill(lang string, wf *domain.Workflow) string {
	if len(wf.Collected) == 0 {
		return h.t(lang, "need_fill_done_empty", nil)
	}

	for _, e := range wf.Collected {
		if _, err := h.inventory.SetRequired(e.Name, e.Quantity); err != nil {
			h.logger.Error("Failed to set required quantity", zap.String("item", e.Name), zap.Error(err))
			return h.t(lang, "error_generic", nil)
		}
	}
	return h.t(lang, "need_fill_done", i18n.Params{"list": entryLines(wf.Collected)})
}
