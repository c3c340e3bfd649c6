package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testItem(id string, price float64) MenuItem {
	return MenuItem{
		ID:        id,
		Category:  CategorySalads,
		Name:      LocalizedText{Primary: "Garden Salad", Secondary: "סלט ירקות"},
		Price:     price,
		Unit:      UnitTray,
		ServesMax: 10,
		Available: true,
	}
}

func TestCart_AddMergesIdenticalKeys(t *testing.T) {
	cart := NewCart("s1")
	item := testItem("salad-1", 120)

	cart.Add(item, 2, "", []string{"no onions", "extra feta"})
	cart.Add(item, 3, "", []string{"extra feta", "no onions"})

	assert.Equal(t, 1, cart.LineCount(), "identical merge keys must accumulate into one line")
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCart_AddDistinctKeys(t *testing.T) {
	cart := NewCart("s1")
	item := testItem("salad-1", 120)

	tests := []struct {
		name           string
		notes          string
		customizations []string
	}{
		{name: "plain", notes: "", customizations: nil},
		{name: "with notes", notes: "no onions", customizations: nil},
		{name: "with customization", notes: "", customizations: []string{"gluten free"}},
	}

	for _, tt := range tests {
		cart.Add(item, 1, tt.notes, tt.customizations)
	}

	assert.Equal(t, 3, cart.LineCount(), "differing notes or customizations create separate lines")
}

func TestCart_Total(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(testItem("a", 145), 2, "", nil)
	cart.Add(testItem("b", 14), 10, "", nil)

	assert.InDelta(t, 430.0, cart.Total(), 1e-9)
}

func TestCart_AddRemoveRoundTrip(t *testing.T) {
	cart := NewCart("s1")
	line := cart.Add(testItem("a", 145), 2, "", nil)

	assert.True(t, cart.Remove(line.ID))
	assert.Equal(t, 0, cart.LineCount())
	assert.Zero(t, cart.Total())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		newQuantity   int
		expectedLines int
		expectedQty   int
	}{
		{name: "absolute set", newQuantity: 7, expectedLines: 1, expectedQty: 7},
		{name: "zero removes line", newQuantity: 0, expectedLines: 0},
		{name: "negative removes line", newQuantity: -3, expectedLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart("s1")
			line := cart.Add(testItem("a", 50), 2, "", nil)

			cart.UpdateQuantity(line.ID, tt.newQuantity)
			assert.Equal(t, tt.expectedLines, cart.LineCount())
			if tt.expectedLines > 0 {
				assert.Equal(t, tt.expectedQty, cart.Lines[0].Quantity)
			}
		})
	}
}

func TestCart_RemoveAbsentLineIsNoop(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(testItem("a", 50), 1, "", nil)

	assert.False(t, cart.Remove("missing"))
	assert.Equal(t, 1, cart.LineCount())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("s1")
	cart.Add(testItem("a", 50), 1, "", nil)
	cart.Add(testItem("b", 60), 2, "with dip", nil)

	cart.Clear()
	assert.Equal(t, 0, cart.LineCount())
	assert.Zero(t, cart.Total())
}

func TestCart_AddNormalizesQuantity(t *testing.T) {
	cart := NewCart("s1")
	line := cart.Add(testItem("a", 50), -4, "", nil)

	assert.Equal(t, 1, line.Quantity, "quantities below 1 are normalized, never stored")
}

func TestCart_QuantityOf(t *testing.T) {
	cart := NewCart("s1")
	item := testItem("a", 50)
	cart.Add(item, 2, "", nil)
	cart.Add(item, 3, "no dressing", nil)
	cart.Add(testItem("b", 60), 4, "", nil)

	assert.Equal(t, 5, cart.QuantityOf("a"))
	assert.Equal(t, 0, cart.QuantityOf("missing"))
}

func TestEqualLabelSets(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{name: "both empty", a: nil, b: []string{}, expected: true},
		{name: "same order", a: []string{"x", "y"}, b: []string{"x", "y"}, expected: true},
		{name: "different order", a: []string{"y", "x"}, b: []string{"x", "y"}, expected: true},
		{name: "different length", a: []string{"x"}, b: []string{"x", "y"}, expected: false},
		{name: "different labels", a: []string{"x", "z"}, b: []string{"x", "y"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, equalLabelSets(tt.a, tt.b))
		})
	}
}
