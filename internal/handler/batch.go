package handler

import (
	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// startLows handles the Lows command: bare starts an empty multi-item
// batch, a known "item [qty]" argument seeds the batch with it, anything
// else is treated as a supplier pattern and starts a quantity-fill wizard.
func (h *Handler) startLows(sender, lang, arg string) string {
	if arg == "" {
		h.setWorkflow(sender, &domain.Workflow{Kind: domain.WorkflowMultiBatch})
		return h.t(lang, "multi_started", nil)
	}

	name, qty := domain.ParseItemQuantity(arg)
	canonical, err := h.items.CanonicalName(name)
	if err != nil {
		h.logger.Error("Failed to look up item", zap.String("item", name), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}

	if canonical != "" {
		h.setWorkflow(sender, &domain.Workflow{
			Kind:      domain.WorkflowMultiBatch,
			Collected: []domain.BatchEntry{{Name: canonical, Quantity: qty}},
		})
		return h.t(lang, "multi_started", nil) + "\n" +
			h.t(lang, "multi_added", i18n.Params{"item": canonical, "qty": itoa(qty)})
	}

	return h.startFill(sender, lang, domain.WorkflowLowsFill, arg)
}

// batchStep collects one "item [qty]" message into the running batch.
// Unknown items are rejected without side effects; a batch never spawns
// the new-item workflow.
func (h *Handler) batchStep(sender, lang string, wf *domain.Workflow, text string) string {
	name, qty := domain.ParseItemQuantity(text)
	if name == domain.UnknownItem {
		return h.t(lang, "invalid_item", nil)
	}

	canonical, err := h.items.CanonicalName(name)
	if err != nil {
		h.logger.Error("Failed to look up item", zap.String("item", name), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if canonical == "" {
		return h.t(lang, "multi_unknown", i18n.Params{"item": name})
	}

	wf.Collected = append(wf.Collected, domain.BatchEntry{Name: canonical, Quantity: qty})
	h.setWorkflow(sender, wf)
	return h.t(lang, "multi_added", i18n.Params{"item": canonical, "qty": itoa(qty)})
}

// finishBatch commits the collected entries: one batched external-log
// append, then per-item quantity accumulation.
func (h *Handler) finishBatch(sender, lang string, wf *domain.Workflow) string {
	h.clearWorkflow(sender)
	if len(wf.Collected) == 0 {
		return h.t(lang, "multi_done_empty", nil)
	}

	rows, logged, err := h.inventory.LogBatch(wf.Collected, sender)
	if err != nil {
		h.logger.Error("Failed to commit batch", zap.Int("entries", len(wf.Collected)), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if !logged {
		return h.t(lang, "item_add_failed", i18n.Params{"item": joinRowNames(rows)})
	}
	return h.t(lang, "multi_done", i18n.Params{"list": rowLines(rows)})
}

func rowLines(rows []domain.LogRow) string {
	entries := make([]domain.BatchEntry, len(rows))
	for i, r := range rows {
		entries[i] = domain.BatchEntry{Name: r.Item, Quantity: r.Quantity}
	}
	return entryLines(entries)
}

func joinRowNames(rows []domain.LogRow) string {
	out := ""
	for i, r := range rows {
		if i > 0 {
			out += ", "
		}
		out += r.Item
	}
	return out
}
