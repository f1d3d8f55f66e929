package handler

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
)

// handleList renders all items grouped by supplier. An optional pattern
// argument filters groups by supplier name; the extended form adds each
// item's last report time and reporter.
func (h *Handler) handleList(lang, pattern string, extended bool) string {
	items, err := h.items.GetAll()
	if err != nil {
		h.logger.Error("Failed to list items", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}

	var re *regexp.Regexp
	if pattern != "" {
		re, err = regexp.Compile("(?i)" + pattern)
		if err != nil {
			return h.t(lang, "invalid_regex", i18n.Params{"pattern": pattern})
		}
	}

	if len(items) == 0 {
		return h.t(lang, "list_empty", nil)
	}

	suppliers, err := h.suppliers.GetAll()
	if err != nil {
		h.logger.Error("Failed to list suppliers", zap.Error(err))
		return h.t(lang, "error_generic", nil)
	}
	names := make(map[string]string, len(suppliers))
	for _, sup := range suppliers {
		names[sup.ID] = sup.CompanyName
	}

	noSupplier := h.t(lang, "list_no_supplier", nil)
	groups := make(map[string][]domain.Item)
	for _, item := range items {
		group := names[item.SupplierID]
		if item.SupplierID == "" || group == "" {
			if re != nil {
				continue
			}
			group = noSupplier
		} else if re != nil && !re.MatchString(group) {
			continue
		}
		groups[group] = append(groups[group], item)
	}
	if len(groups) == 0 {
		return h.t(lang, "list_no_match", i18n.Params{"pattern": pattern})
	}

	// Alphabetical groups, no-supplier bucket last
	ordered := make([]string, 0, len(groups))
	for group := range groups {
		if group != noSupplier {
			ordered = append(ordered, group)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return strings.ToLower(ordered[i]) < strings.ToLower(ordered[j])
	})
	if _, ok := groups[noSupplier]; ok {
		ordered = append(ordered, noSupplier)
	}

	var b strings.Builder
	b.WriteString(h.t(lang, "list_header", nil))
	for _, group := range ordered {
		members := groups[group]
		sort.Slice(members, func(i, j int) bool {
			return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
		})

		fmt.Fprintf(&b, "\n\n%s:", group)
		for _, item := range members {
			fmt.Fprintf(&b, "\n• %s — %d/%d (%s)",
				item.Name, item.Quantity, item.RequiredQuantity, h.typeName(lang, item.Type))
			if extended && item.LastUpdated != nil {
				fmt.Fprintf(&b, " | %s | %s",
					item.LastUpdated.Format("2006-01-02 15:04"),
					domain.ActorDisplay(item.LastUpdatedBy))
			}
		}
	}
	return b.String()
}
