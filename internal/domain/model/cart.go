package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CartLine is one distinguishable entry in the order. Price and name are
// snapshotted at add time; category and unit follow the catalog item.
type CartLine struct {
	ID             string        `bson:"id" json:"id"`
	ItemID         string        `bson:"item_id" json:"item_id"`
	Name           LocalizedText `bson:"name" json:"name"`
	Category       Category      `bson:"category" json:"category"`
	Unit           UnitType      `bson:"unit" json:"unit"`
	Price          float64       `bson:"price" json:"price"`
	Quantity       int           `bson:"quantity" json:"quantity"`
	Notes          string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Customizations []string      `bson:"customizations,omitempty" json:"customizations,omitempty"`
	AddedAt        time.Time     `bson:"added_at" json:"added_at"`
}

// Subtotal returns price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// MatchesKey reports whether an addition with the given item id, notes and
// customization selection should merge into this line. Customizations are
// compared as a set: the stored order is display order only.
func (l CartLine) MatchesKey(itemID, notes string, customizations []string) bool {
	return l.ItemID == itemID && l.Notes == notes && equalLabelSets(l.Customizations, customizations)
}

// equalLabelSets compares two label lists order-independently.
func equalLabelSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	as := make([]string, len(a))
	bs := make([]string, len(b))
	copy(as, a)
	copy(bs, b)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// Cart holds the lines of one ordering session together with the customer
// and delivery state collected along the way.
type Cart struct {
	SessionID string                `bson:"_id" json:"session_id"`
	Lines     []CartLine            `bson:"lines" json:"lines"`
	Customer  CustomerDeliveryState `bson:"customer" json:"customer"`
	CreatedAt time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at" json:"updated_at"`
}

// NewCart creates an empty cart for the given session.
func NewCart(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		Lines:     []CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add merges the item into an existing line with an identical merge key
// (item id, notes, customization set) or appends a new line. Quantities
// below 1 are normalized to 1. Returns the affected line.
func (c *Cart) Add(item MenuItem, quantity int, notes string, customizations []string) *CartLine {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].MatchesKey(item.ID, notes, customizations) {
			c.Lines[i].Quantity += quantity
			c.UpdatedAt = time.Now()
			return &c.Lines[i]
		}
	}

	line := CartLine{
		ID:             uuid.New().String(),
		ItemID:         item.ID,
		Name:           item.Name,
		Category:       item.Category,
		Unit:           item.Unit,
		Price:          item.Price,
		Quantity:       quantity,
		Notes:          notes,
		Customizations: customizations,
		AddedAt:        time.Now(),
	}
	c.Lines = append(c.Lines, line)
	c.UpdatedAt = line.AddedAt
	return &c.Lines[len(c.Lines)-1]
}

// UpdateQuantity sets a line's quantity to the exact value given. A value
// of zero or less removes the line. Returns false if the line is absent.
func (c *Cart) UpdateQuantity(lineID string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(lineID)
	}
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Remove deletes the line if present. Removing an absent line is a no-op.
func (c *Cart) Remove(lineID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Clear empties all lines unconditionally.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
	c.UpdatedAt = time.Now()
}

// Total sums price times quantity over all lines. It is recomputed on
// every call so it is always consistent with the current line list.
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Lines {
		total += c.Lines[i].Subtotal()
	}
	return total
}

// LineCount returns the number of distinct lines, not the sum of
// quantities. Used for "items in cart" badges.
func (c *Cart) LineCount() int {
	return len(c.Lines)
}

// QuantityOf returns the total carted quantity of the given catalog item
// across all lines, regardless of notes or customizations.
func (c *Cart) QuantityOf(itemID string) int {
	var qty int
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			qty += c.Lines[i].Quantity
		}
	}
	return qty
}
