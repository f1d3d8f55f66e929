package i18n

var catalogEN = map[string]string{
	// Reserved tokens and routing
	"cancelled":     "❌ Cancelled.",
	"nothing_back":  "Nothing to go back from.",
	"reserved_token": "⚠️ ! is reserved, not an item.",
	"reserved_word": "⚠️ \"{word}\" is a reserved command word, not an item.",
	"invalid_item":  "⚠️ Invalid item. Send an item name, e.g. \"Low Milk 2\".",
	"error_generic": "⚠️ Something went wrong. Please try again.",

	// Single-item logging
	"item_added":       "✅ Added {item} ({qty}) to the shopping list.",
	"item_add_failed":  "⚠️ Could not add to list: {item}. Please try again later.",
	"new_item_confirm": "❓ {item} is not in the list. Add as a new item? (yes/no)",
	"confirm_yes_no":   "Please reply yes or no.",
	"choose_type":      "Type for {item}?\n1. Raw\n2. Prep\nReply with a number.",
	"choose_supplier":  "Supplier for {item}?\n{list}\nReply with a number.",
	"choose_number":    "Please reply with a number 1-{max}.",
	"type_raw":         "Raw",
	"type_prep":        "Prep",

	// Multi-item batch
	"multi_started":  "📋 Multi-item mode: send one item per message, finish with !",
	"multi_added":    "📝 {item} ({qty}) noted. Next item, or ! to finish.",
	"multi_unknown":  "❌ {item} is not in the list. Use \"Low {item}\" to add new items.",
	"multi_done":     "✅ Added:\n{list}",
	"multi_done_empty": "Nothing added.",

	// Fill wizards
	"fill_prompt":          "{item} — Quantity? ({pos}/{total}, empty = skip)",
	"fill_done":            "✅ Added:\n{list}",
	"fill_done_empty":      "No items added.",
	"need_fill_prompt":     "{item} — Required quantity? ({pos}/{total})",
	"need_fill_done":       "✅ Updated required quantities:\n{list}",
	"need_fill_done_empty": "No items updated.",
	"invalid_regex":        "⚠️ Invalid pattern: {pattern}",
	"no_supplier_match":    "No supplier items match \"{pattern}\".",

	// Need
	"need_set":     "✅ Required quantity for {item} set to {qty}.",
	"unknown_item": "❌ {item} is not in the list.",

	// List
	"list_header":      "📋 Items:",
	"list_empty":       "No items yet.",
	"list_no_match":    "No suppliers match \"{pattern}\".",
	"list_no_supplier": "No supplier",

	// Edit
	"edit_menu":              "✏️ Edit {item}:\n1. Change supplier\n2. Change type\n3. Rename\n4. Delete\nReply with a number.",
	"edit_menu_invalid":      "Please reply with a number 1-4.",
	"edit_supplier_set":      "✅ Supplier for {item} set to {supplier}.",
	"edit_choose_type":       "Type for {item}?\n1. Raw\n2. Prep\nReply with a number.",
	"edit_type_raw_set":      "✅ {item} type set to Raw.",
	"edit_type_prep_set":     "✅ {item} type set to Prep (supplier: {supplier}).",
	"edit_type_raw_supplier_set": "✅ {item} type set to Raw (supplier: {supplier}).",
	"edit_raw_choose_supplier": "Raw items need a supplier other than the Prep supplier. Supplier for {item}?\n{list}\nReply with a number.",
	"edit_no_other_supplier": "⚠️ No other supplier available. Add one with Supa first.",
	"edit_no_suppliers":      "No suppliers yet. Add one with Supa.",
	"edit_rename_prompt":     "New name for {item}?",
	"edit_rename_empty":      "⚠️ Name cannot be empty. Send a new name.",
	"edit_rename_exists":     "⚠️ {name} already exists. Send a different name.",
	"edit_renamed":           "✅ Renamed {old} to {new}.",
	"edit_delete_confirm":    "Delete {item}? (yes/no)",
	"edit_deleted":           "🗑️ {item} deleted.",

	// Suppliers
	"sup_empty":    "No suppliers yet. Add one with Supa.",
	"sup_list":     "📇 Suppliers:\n{list}\nReply with a number for details.",
	"sup_details":  "📇 {company}\nContact: {contact}\nPhone: {number}\nChat: {link}",
	"supa_company": "New supplier. Company name?",
	"supa_contact": "Contact name?",
	"supa_number":  "Contact number?",
	"supa_added":   "✅ Supplier {company} added.",

	// Preferences
	"pref_menu":      "⚙️ Preferences:\n1. Language\n2. Default Prep supplier\nReply with a number.",
	"pref_invalid":   "Please reply with a number 1-2.",
	"pref_langs":     "Supported languages:\n{list}\nReply with a number.",
	"lang_set":       "✅ Language set to {lang}.",
	"lang_name_en":   "English",
	"lang_name_he":   "Hebrew",
	"pref_prep_list": "Default Prep supplier?\n{list}\nReply with a number.",
	"pref_prep_set":  "✅ Default Prep supplier set to {supplier} ({count} Prep items updated).",

	// Help
	"help": "📖 Commands:\n" +
		"Low <item> [qty] — log a low-stock item\n" +
		"<item> [qty] — same as Low\n" +
		"Lows [supplier] — multi-item mode / fill by supplier\n" +
		"List [filter] — items grouped by supplier\n" +
		"ListExt [filter] — extended list with last report\n" +
		"Need <item> <qty> — set required quantity\n" +
		"Need <supplier> — fill required quantities\n" +
		"Edit <item> — edit an item\n" +
		"Sup — suppliers\n" +
		"Supa — add a supplier\n" +
		"Pref — preferences\n" +
		"Back — go back one step\n" +
		"! — cancel / finish\n" +
		"Help <command> — usage for one command",
	"help_unknown": "Unknown command: {command}",

	"usage_low":     "Usage: Low <item> [qty]\nExample: Low Milk 3\nLogs a low-stock item; new items ask for type and supplier.",
	"usage_lows":    "Usage: Lows [item qty | supplier]\nBare Lows starts multi-item mode (finish with !). With a supplier pattern it asks a quantity for each of that supplier's items.",
	"usage_list":    "Usage: List [supplier filter]\nShows all items grouped by supplier.",
	"usage_listext": "Usage: ListExt [supplier filter]\nLike List, with last report time and reporter.",
	"usage_need":    "Usage: Need <item> <qty> or Need <supplier>\nSets the required quantity for an item, or walks a supplier's items.",
	"usage_edit":    "Usage: Edit <item>\nChange supplier, type, name, or delete the item.",
	"usage_sup":     "Usage: Sup\nLists suppliers; reply with a number for contact details.",
	"usage_supa":    "Usage: Supa\nAdds a supplier (company, contact, number).",
	"usage_pref":    "Usage: Pref\nLanguage and default Prep supplier.",
	"usage_help":    "Usage: Help [command]",
	"usage_back":    "Usage: Back\nReturns to the previous step of the current flow.",
}
