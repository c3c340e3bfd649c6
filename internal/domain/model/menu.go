// Package model provides domain models for the catering service.
package model

// Category identifies the menu section an item belongs to.
type Category string

const (
	CategorySalads       Category = "salads"
	CategoryColdPlatters Category = "cold_platters"
	CategorySandwiches   Category = "sandwiches"
	CategoryDips         Category = "dips"
	CategoryMainCourses  Category = "main_courses"
	CategoryPastries     Category = "pastries"
	CategoryDesserts     Category = "desserts"
)

// Categories lists all recognized menu categories.
var Categories = []Category{
	CategorySalads,
	CategoryColdPlatters,
	CategorySandwiches,
	CategoryDips,
	CategoryMainCourses,
	CategoryPastries,
	CategoryDesserts,
}

// Valid reports whether the category is one of the recognized values.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// UnitType describes how a menu item is sold and how its serving
// capacity is interpreted for quantity suggestions.
type UnitType string

const (
	// UnitTray is a platter serving ServesMax guests.
	UnitTray UnitType = "tray"
	// UnitPiece is an individually portioned item (one per serving).
	UnitPiece UnitType = "unit"
	// UnitLiter is a volume item (dips, sauces) treated like a tray.
	UnitLiter UnitType = "liter"
	// UnitWeight is a by-weight item with no guest-driven scaling.
	UnitWeight UnitType = "weight"
)

// LocalizedText holds a display string in the primary storefront language
// plus an optional secondary-language variant.
type LocalizedText struct {
	Primary   string `bson:"primary" json:"primary"`
	Secondary string `bson:"secondary,omitempty" json:"secondary,omitempty"`
}

// MenuItem is a catalog entry. The catalog is owned by the menu store;
// the ordering core only reads it.
type MenuItem struct {
	ID             string          `bson:"_id" json:"id"`
	Category       Category        `bson:"category" json:"category"`
	Name           LocalizedText   `bson:"name" json:"name"`
	Description    LocalizedText   `bson:"description,omitempty" json:"description,omitempty"`
	Price          float64         `bson:"price" json:"price"`
	Unit           UnitType        `bson:"unit" json:"unit"`
	ServesMin      int             `bson:"serves_min,omitempty" json:"serves_min,omitempty"`
	ServesMax      int             `bson:"serves_max,omitempty" json:"serves_max,omitempty"`
	Premium        bool            `bson:"premium,omitempty" json:"premium,omitempty"`
	Available      bool            `bson:"available" json:"available"`
	Customizations []LocalizedText `bson:"customizations,omitempty" json:"customizations,omitempty"`
}

// Capacity returns the guest capacity used as the divisor in coverage-based
// quantity math. ServesMax wins when set; otherwise the configured default
// average capacity is used.
func (m MenuItem) Capacity(defaultCapacity int) int {
	if m.ServesMax > 0 {
		return m.ServesMax
	}
	if defaultCapacity > 0 {
		return defaultCapacity
	}
	return 1
}

// PortionedPerGuest reports whether the item scales one-per-guest rather
// than by tray coverage.
func (m MenuItem) PortionedPerGuest() bool {
	return m.Unit == UnitPiece &&
		(m.Category == CategorySandwiches || m.Category == CategoryPastries)
}

// CoverageBased reports whether the item scales by tray/liter coverage.
func (m MenuItem) CoverageBased() bool {
	return m.Unit == UnitTray || m.Unit == UnitLiter
}
