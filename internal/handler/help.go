package handler

import (
	"shopbot/internal/i18n"
)

// handleHelp shows the command overview, or per-command usage when an
// argument names a command. The router has already folded localized
// aliases in the argument to their canonical form.
func (h *Handler) handleHelp(lang, arg string) string {
	if arg == "" {
		return h.t(lang, "help", nil)
	}

	command := canonicalToken(arg, lang)
	if command == "" {
		return h.t(lang, "help_unknown", i18n.Params{"command": arg})
	}
	if command == cmdLang {
		command = cmdPref
	}
	return h.t(lang, "usage_"+command, nil)
}
