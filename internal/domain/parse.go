package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	lowPrefixRe   = regexp.MustCompile(`(?i)^low\s+(.+)$`)
	trailingQtyRe = regexp.MustCompile(`^(.*\S)\s+(\d+)$`)
)

// ParseItemQuantity extracts (name, quantity) from a message body.
// A leading "low" marker is stripped, a trailing integer becomes the
// quantity (default 1, zero is a valid explicit value), and the name is
// title-cased for display.
func ParseItemQuantity(body string) (string, int) {
	text := strings.TrimSpace(body)
	if text == "" {
		return UnknownItem, 1
	}

	if m := lowPrefixRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	qty := 1
	if m := trailingQtyRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil {
			text = strings.TrimSpace(m[1])
			qty = n
		}
	}

	if text == "" {
		return UnknownItem, 1
	}
	return TitleCase(text), qty
}

// HasTrailingQuantity reports whether the text ends in an explicit integer
// quantity. Commands that accept either "<item> <qty>" or a pattern argument
// use this to pick the form.
func HasTrailingQuantity(body string) bool {
	return trailingQtyRe.MatchString(strings.TrimSpace(body))
}

// HasExplicitLow reports whether the original body carried the explicit
// "low" marker. Items logged with the marker skip new-item confirmation.
func HasExplicitLow(body string) bool {
	return lowPrefixRe.MatchString(strings.TrimSpace(body))
}
