// Package handler implements the command router and workflow engines that
// turn inbound WhatsApp messages into inventory operations. Each message is
// a stateless request; the session store supplies the conversational state.
package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
	"shopbot/internal/repository"
	"shopbot/internal/service"
	"shopbot/internal/session"

	"go.uber.org/zap"
)

// Handler routes messages and drives the pending workflows
type Handler struct {
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	senders   repository.SenderRepository
	inventory *service.InventoryService
	sessions  session.Store
	tr        *i18n.Translator
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	senders repository.SenderRepository,
	inventory *service.InventoryService,
	sessions session.Store,
	tr *i18n.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		items:     items,
		suppliers: suppliers,
		senders:   senders,
		inventory: inventory,
		sessions:  sessions,
		tr:        tr,
		logger:    logger,
	}
}

// HandleMessage processes one inbound message and returns the reply strings.
// Every reachable branch produces a reply; errors never propagate to the
// transport layer.
func (h *Handler) HandleMessage(sender, body string) []string {
	if err := h.senders.EnsureExists(sender); err != nil {
		h.logger.Error("Failed to ensure sender exists", zap.Error(err))
	}
	lang := h.lang(sender)
	return []string{h.route(sender, lang, strings.TrimSpace(body))}
}

// lang returns the sender's configured language, or the default
func (h *Handler) lang(sender string) string {
	lang, err := h.senders.GetLanguage(sender)
	if err != nil {
		h.logger.Error("Failed to read sender language", zap.Error(err))
		return i18n.DefaultLang
	}
	if lang == "" {
		return i18n.DefaultLang
	}
	return lang
}

func (h *Handler) t(lang, key string, params i18n.Params) string {
	return h.tr.T(lang, key, params)
}

// setWorkflow stores the sender's pending workflow, logging store failures
func (h *Handler) setWorkflow(sender string, wf *domain.Workflow) {
	if err := h.sessions.Set(sender, wf); err != nil {
		h.logger.Error("Failed to store session", zap.String("sender", sender), zap.Error(err))
	}
}

// clearWorkflow removes the sender's pending workflow
func (h *Handler) clearWorkflow(sender string) {
	if err := h.sessions.Clear(sender); err != nil {
		h.logger.Error("Failed to clear session", zap.String("sender", sender), zap.Error(err))
	}
}

// typeName returns the localized display name for an item type
func (h *Handler) typeName(lang string, t domain.ItemType) string {
	if t == domain.TypePrep {
		return h.t(lang, "type_prep", nil)
	}
	return h.t(lang, "type_raw", nil)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// supplierLines renders a numbered supplier list for menus
func supplierLines(numbered []domain.NumberedSupplier) string {
	var b strings.Builder
	for i, ns := range numbered {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", ns.Number, ns.Supplier.CompanyName)
	}
	return b.String()
}

// entryLines renders collected (item, quantity) pairs for summaries
func entryLines(entries []domain.BatchEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s (%d)", e.Name, e.Quantity)
	}
	return b.String()
}
