package domain

import (
	"strings"
	"time"
)

// ItemType classifies an inventory item
type ItemType string

const (
	TypeRaw  ItemType = "Raw"
	TypePrep ItemType = "Prep"
)

// UnknownItem is the sentinel display name for unparseable input
const UnknownItem = "Unknown Item"

// Item represents an inventory item
type Item struct {
	Name             string
	SupplierID       string // empty = no supplier
	Type             ItemType
	Quantity         int
	RequiredQuantity int
	LastUpdated      *time.Time
	LastUpdatedBy    string
}

// LogRow is one row destined for the external inventory log
type LogRow struct {
	Item     string
	Quantity int
	Supplier string // company name snapshot, may be empty
	Type     ItemType
}

// NameKey returns the case-insensitive lookup key for an item name
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TitleCase normalizes an item name for display ("egg salad" -> "Egg Salad")
func TitleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// ActorDisplay returns the last 4 digits of a phone for display ("..4567")
func ActorDisplay(phone string) string {
	var digits []rune
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) >= 4 {
		return ".." + string(digits[len(digits)-4:])
	}
	return string(digits)
}
