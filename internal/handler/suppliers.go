package handler

import (
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"github.com/ttacon/libphonenumber"
	"go.uber.org/zap"
)

// defaultRegion is assumed for contact numbers stored without a country code
const defaultRegion = "IL"

// handleSup lists the suppliers and waits for a numeric pick for details
func (h *Handler) handleSup(sender, lang string) string {
	numbered, err := h.suppliers.NumberedList()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	if len(numbered) == 0 {
		return h.t(lang, "sup_empty", nil)
	}

	h.setWorkflow(sender, &domain.Workflow{Kind: domain.WorkflowSupplierDetails})
	return h.t(lang, "sup_list", i18n.Params{"list": supplierLines(numbered)})
}

func (h *Handler) stepSupplierDetails(sender, lang string, wf *domain.Workflow, text string) string {
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

	h.clearWorkflow(sender)
	sup := numbered[choice-1].Supplier
	return h.t(lang, "sup_details", i18n.Params{
		"company": sup.CompanyName,
		"contact": sup.ContactName,
		"number":  sup.ContactNumber,
		"link":    waLink(sup.ContactNumber),
	})
}

// startSupa begins the three-question add-supplier flow
func (h *Handler) startSupa(sender, lang string) string {
	h.setWorkflow(sender, &domain.Workflow{
		Kind: domain.WorkflowAddSupplier,
		Step: domain.AddSupplierCompany,
	})
	return h.t(lang, "supa_company", nil)
}

func (h *Handler) stepAddSupplier(sender, lang string, wf *domain.Workflow, text string) string {
	answer := strings.TrimSpace(text)

	switch wf.Step {
	case domain.AddSupplierCompany:
		if answer == "" {
			return h.t(lang, "supa_company", nil)
		}
		wf.Company = answer
		wf.Step = domain.AddSupplierContact
		h.setWorkflow(sender, wf)
		return h.t(lang, "supa_contact", nil)

	case domain.AddSupplierContact:
		if answer == "" {
			return h.t(lang, "supa_contact", nil)
		}
		wf.Contact = answer
		wf.Step = domain.AddSupplierNumber
		h.setWorkflow(sender, wf)
		return h.t(lang, "supa_number", nil)
	}

	if answer == "" {
		return h.t(lang, "supa_number", nil)
	}
	if _, err := h.suppliers.Add(wf.Company, wf.Contact, answer); err != nil {
		h.logger.Error("Failed to add supplier", zap.String("company", wf.Company), zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	h.clearWorkflow(sender)
	return h.t(lang, "supa_added", i18n.Params{"company": wf.Company})
}

// waLink builds a wa.me chat link from a stored contact number. Numbers
// that do not parse fall back to a digits-only strip.
func waLink(number string) string {
	num, err := libphonenumber.Parse(number, defaultRegion)
	if err == nil && libphonenumber.IsValidNumber(num) {
		e164 := libphonenumber.Format(num, libphonenumber.E164)
		return "https://wa.me/" + strings.TrimPrefix(e164, "+")
	}

	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}
