package i18n

var catalogHE = map[string]string{
	// Reserved tokens and routing
	"cancelled":     "❌ בוטל.",
	"nothing_back":  "אין שלב לחזור ממנו.",
	"reserved_token": "⚠️ ! הוא תו שמור, לא פריט.",
	"reserved_word": "⚠️ \"{word}\" היא מילה שמורה, לא פריט.",
	"invalid_item":  "⚠️ פריט לא תקין. שלחו שם פריט, למשל \"פריט חלב 2\".",
	"error_generic": "⚠️ משהו השתבש. נסו שוב.",

	// Single-item logging
	"item_added":       "✅ {item} ({qty}) נוסף לרשימת הקניות.",
	"item_add_failed":  "⚠️ לא ניתן להוסיף לרשימה: {item}. נסו שוב מאוחר יותר.",
	"new_item_confirm": "❓ {item} לא נמצא ברשימה. להוסיף כפריט חדש? (כן/לא)",
	"confirm_yes_no":   "נא להשיב כן או לא.",
	"choose_type":      "סוג עבור {item}?\n1. גלם\n2. מוכן\nהשיבו במספר.",
	"choose_supplier":  "ספק עבור {item}?\n{list}\nהשיבו במספר.",
	"choose_number":    "נא להשיב במספר 1-{max}.",
	"type_raw":         "גלם",
	"type_prep":        "מוכן",

	// Multi-item batch
	"multi_started":  "📋 מצב ריבוי פריטים: שלחו פריט בכל הודעה, סיימו עם !",
	"multi_added":    "📝 {item} ({qty}) נרשם. פריט הבא, או ! לסיום.",
	"multi_unknown":  "❌ {item} לא נמצא ברשימה. השתמשו ב\"פריט {item}\" להוספת פריט חדש.",
	"multi_done":     "✅ נוספו:\n{list}",
	"multi_done_empty": "לא נוסף דבר.",

	// Fill wizards
	"fill_prompt":          "{item} — כמות? ({pos}/{total}, ריק = דילוג)",
	"fill_done":            "✅ נוספו:\n{list}",
	"fill_done_empty":      "לא נוספו פריטים.",
	"need_fill_prompt":     "{item} — כמות נדרשת? ({pos}/{total})",
	"need_fill_done":       "✅ עודכנו כמויות נדרשות:\n{list}",
	"need_fill_done_empty": "לא עודכנו פריטים.",
	"invalid_regex":        "⚠️ תבנית לא תקינה: {pattern}",
	"no_supplier_match":    "אין פריטי ספק שתואמים \"{pattern}\".",

	// Need
	"need_set":     "✅ כמות נדרשת עבור {item} הוגדרה ל-{qty}.",
	"unknown_item": "❌ {item} לא נמצא ברשימה.",

	// List
	"list_header":      "📋 פריטים:",
	"list_empty":       "אין פריטים עדיין.",
	"list_no_match":    "אין ספקים שתואמים \"{pattern}\".",
	"list_no_supplier": "ללא ספק",

	// Edit
	"edit_menu":              "✏️ עריכת {item}:\n1. שינוי ספק\n2. שינוי סוג\n3. שינוי שם\n4. מחק\nהשיבו במספר.",
	"edit_menu_invalid":      "נא להשיב במספר 1-4.",
	"edit_supplier_set":      "✅ הספק של {item} הוגדר ל-{supplier}.",
	"edit_choose_type":       "סוג עבור {item}?\n1. גלם\n2. מוכן\nהשיבו במספר.",
	"edit_type_raw_set":      "✅ הסוג של {item} הוגדר לגלם.",
	"edit_type_prep_set":     "✅ הסוג של {item} הוגדר למוכן (ספק: {supplier}).",
	"edit_type_raw_supplier_set": "✅ הסוג של {item} הוגדר לגלם (ספק: {supplier}).",
	"edit_raw_choose_supplier": "פריט גלם צריך ספק אחר מספק המוכנים. ספק עבור {item}?\n{list}\nהשיבו במספר.",
	"edit_no_other_supplier": "⚠️ אין ספק אחר זמין. הוסיפו אחד עם סח.",
	"edit_no_suppliers":      "אין ספקים עדיין. הוסיפו אחד עם סח.",
	"edit_rename_prompt":     "שם חדש עבור {item}?",
	"edit_rename_empty":      "⚠️ השם לא יכול להיות ריק. שלחו שם חדש.",
	"edit_rename_exists":     "⚠️ {name} כבר קיים. שלחו שם אחר.",
	"edit_renamed":           "✅ השם שונה מ-{old} ל-{new}.",
	"edit_delete_confirm":    "למחוק את {item}? (כן/לא)",
	"edit_deleted":           "🗑️ {item} נמחק.",

	// Suppliers
	"sup_empty":    "אין ספקים עדיין. הוסיפו אחד עם סח.",
	"sup_list":     "📇 ספקים:\n{list}\nהשיבו במספר לפרטים.",
	"sup_details":  "📇 {company}\nאיש קשר: {contact}\nטלפון: {number}\nצ'אט: {link}",
	"supa_company": "ספק חדש. שם החברה?",
	"supa_contact": "שם איש הקשר?",
	"supa_number":  "מספר טלפון?",
	"supa_added":   "✅ הספק {company} נוסף.",

	// Preferences
	"pref_menu":      "⚙️ הגדרות:\n1. שפה\n2. ספק מוכנים ברירת מחדל\nהשיבו במספר.",
	"pref_invalid":   "נא להשיב במספר 1-2.",
	"pref_langs":     "שפות נתמכות:\n{list}\nהשיבו במספר.",
	"lang_set":       "✅ השפה הוגדרה ל{lang}.",
	"lang_name_en":   "אנגלית",
	"lang_name_he":   "עברית",
	"pref_prep_list": "ספק מוכנים ברירת מחדל?\n{list}\nהשיבו במספר.",
	"pref_prep_set":  "✅ ספק המוכנים הוגדר ל-{supplier} ({count} פריטי מוכן עודכנו).",

	// Help
	"help": "📖 פקודות:\n" +
		"פריט <שם> [כמות] — דיווח על פריט חסר\n" +
		"<שם> [כמות] — כמו פריט\n" +
		"פם [ספק] — מצב ריבוי פריטים / מילוי לפי ספק\n" +
		"מלאי [סינון] — פריטים לפי ספק\n" +
		"אא [סינון] — מלאי מורחב עם דיווח אחרון\n" +
		"צריך <שם> <כמות> — הגדרת כמות נדרשת\n" +
		"צריך <ספק> — מילוי כמויות נדרשות\n" +
		"ערוך <שם> — עריכת פריט\n" +
		"ספקים — רשימת ספקים\n" +
		"סח — הוספת ספק\n" +
		"שפה — הגדרות\n" +
		"חזור — שלב אחד אחורה\n" +
		"! — ביטול / סיום\n" +
		"עזרה <פקודה> — שימוש בפקודה",
	"help_unknown": "פקודה לא ידועה: {command}",

	"usage_low":     "שימוש: פריט <שם> [כמות]\nלמשל: פריט חלב 3\nמדווח על פריט חסר; פריט חדש ישאל סוג וספק.",
	"usage_lows":    "שימוש: פם [שם כמות | ספק]\nפם לבד פותח מצב ריבוי פריטים (סיום עם !). עם תבנית ספק — שואל כמות לכל פריט של הספק.",
	"usage_list":    "שימוש: מלאי [סינון ספק]\nמציג את כל הפריטים לפי ספק.",
	"usage_listext": "שימוש: אא [סינון ספק]\nכמו מלאי, עם זמן דיווח אחרון והמדווח.",
	"usage_need":    "שימוש: צריך <שם> <כמות> או צריך <ספק>\nמגדיר כמות נדרשת לפריט, או עובר על פריטי ספק.",
	"usage_edit":    "שימוש: ערוך <שם>\nשינוי ספק, סוג, שם, או מחיקה.",
	"usage_sup":     "שימוש: ספקים\nרשימת ספקים; השיבו במספר לפרטי קשר.",
	"usage_supa":    "שימוש: סח\nהוספת ספק (חברה, איש קשר, מספר).",
	"usage_pref":    "שימוש: שפה\nשפה וספק מוכנים ברירת מחדל.",
	"usage_help":    "שימוש: עזרה [פקודה]",
	"usage_back":    "שימוש: חזור\nחוזר לשלב הקודם בתהליך הנוכחי.",
}
