package handler

import (
	"strings"

	"shopbot/internal/i18n"
)

// Canonical command tokens. Alias tables fold localized spellings to these
// before any routing decision is made.
const (
	cmdLow     = "low"
	cmdLows    = "lows"
	cmdList    = "list"
	cmdListExt = "listext"
	cmdNeed    = "need"
	cmdEdit    = "edit"
	cmdSup     = "sup"
	cmdSupa    = "supa"
	cmdPref    = "pref"
	cmdLang    = "lang"
	cmdHelp    = "help"
	cmdBack    = "back"
)

// canonicalDisplay maps a canonical token to its display spelling, used
// when rewriting the command prefix of a message.
var canonicalDisplay = map[string]string{
	cmdLow:     "Low",
	cmdLows:    "Lows",
	cmdList:    "List",
	cmdListExt: "ListExt",
	cmdNeed:    "Need",
	cmdEdit:    "Edit",
	cmdSup:     "Sup",
	cmdSupa:    "Supa",
	cmdPref:    "Pref",
	cmdLang:    "Lang",
	cmdHelp:    "Help",
	cmdBack:    "Back",
}

// universalAliases apply regardless of the sender's language: the canonical
// English commands themselves (case-insensitive), their shortcuts, and the
// batch-list shortcut "s".
var universalAliases = map[string]string{
	"low":     cmdLow,
	"lows":    cmdLows,
	"s":       cmdLows,
	"list":    cmdList,
	"listext": cmdListExt,
	"ext":     cmdListExt,
	"need":    cmdNeed,
	"n":       cmdNeed,
	"edit":    cmdEdit,
	"e":       cmdEdit,
	"sup":     cmdSup,
	"supa":    cmdSupa,
	"pref":    cmdPref,
	"lang":    cmdLang,
	"help":    cmdHelp,
	"back":    cmdBack,
	"b":       cmdBack,
	"cancel":  cmdBack,
	"exit":    cmdBack,
	"quit":    cmdBack,
}

// hebrewAliases apply only when the sender's configured language is Hebrew
var hebrewAliases = map[string]string{
	"פריט":        cmdLow,
	"פם":          cmdLows,
	"ם":           cmdLows,
	"מלאי":        cmdList,
	"א":           cmdList,
	"אא":          cmdListExt,
	"מלאי מורחב":  cmdListExt,
	"צריך":        cmdNeed,
	"צ":           cmdNeed,
	"ערוך":        cmdEdit,
	"ער":          cmdEdit,
	"ספקים":       cmdSup,
	"ס":           cmdSup,
	"סח":          cmdSupa,
	"שפה":         cmdPref,
	"הגדרות":      cmdPref,
	"עזרה":        cmdHelp,
	"ע":           cmdHelp,
	"חזור":        cmdBack,
	"ח":           cmdBack,
	"ביטול":       cmdBack,
}

// Localized yes/no forms, accepted in any language wherever a confirmation
// is pending.
var (
	yesTokens = map[string]bool{"yes": true, "y": true, "ye": true, "כן": true, "כ": true}
	noTokens  = map[string]bool{"no": true, "n": true, "לא": true, "ל": true}
)

func isYes(text string) bool {
	return yesTokens[strings.ToLower(strings.TrimSpace(text))]
}

func isNo(text string) bool {
	return noTokens[strings.ToLower(strings.TrimSpace(text))]
}

// canonicalToken resolves a single token to its canonical command, or ""
func canonicalToken(token, lang string) string {
	key := strings.ToLower(strings.TrimSpace(token))
	if lang == i18n.LangHebrew {
		if canonical, ok := hebrewAliases[key]; ok {
			return canonical
		}
	}
	if canonical, ok := universalAliases[key]; ok {
		return canonical
	}
	return ""
}

// NormalizeAliases rewrites a localized command prefix to its canonical
// display form, leaving the rest of the line untouched. Text that matches
// no alias prefix is returned as-is. The localized "help <command>" form has
// its inner argument remapped too so help lookups work on canonical tokens.
func NormalizeAliases(text, lang string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return text
	}

	// Multi-word aliases first, so "מלאי מורחב" wins over "מלאי"
	canonical := ""
	consumed := 0
	if len(fields) >= 2 {
		if c := canonicalToken(fields[0]+" "+fields[1], lang); c != "" {
			canonical, consumed = c, 2
		}
	}
	if canonical == "" {
		if c := canonicalToken(fields[0], lang); c != "" {
			canonical, consumed = c, 1
		}
	}
	if canonical == "" {
		return text
	}

	rest := fields[consumed:]
	if canonical == cmdHelp && len(rest) > 0 {
		if inner := canonicalToken(strings.Join(rest, " "), lang); inner != "" {
			rest = []string{canonicalDisplay[inner]}
		} else if inner := canonicalToken(rest[0], lang); inner != "" {
			rest[0] = canonicalDisplay[inner]
		}
	}

	parts := append([]string{canonicalDisplay[canonical]}, rest...)
	return strings.Join(parts, " ")
}
