package model

import "time"

// CategoryRatios holds the per-event-type coefficients for one event type.
// Per-guest ratios are units per guest; coverage ratios are the fraction of
// guests the category should collectively satisfy before dividing by tray
// capacity.
type CategoryRatios struct {
	SandwichesPerGuest float64 `bson:"sandwiches_per_guest" json:"sandwichesPerGuest"`
	PastriesPerGuest   float64 `bson:"pastries_per_guest" json:"pastriesPerGuest"`
	SaladsCoverage     float64 `bson:"salads_coverage" json:"saladsCoverage"`
	MainsCoverage      float64 `bson:"mains_coverage" json:"mainsCoverage"`
	PlattersCoverage   float64 `bson:"platters_coverage" json:"plattersCoverage"`
	DessertsCoverage   float64 `bson:"desserts_coverage" json:"dessertsCoverage"`
}

// HungerMultipliers is applied multiplicatively to every ratio.
type HungerMultipliers struct {
	Light  float64 `bson:"light" json:"light"`
	Medium float64 `bson:"medium" json:"medium"`
	Heavy  float64 `bson:"heavy" json:"heavy"`
}

// RatioTable is process-wide configuration mapping event types to ratios.
// It is editable through the admin surface; the suggestion engine reads the
// current value at suggestion time, never a snapshot.
type RatioTable struct {
	Events    map[EventType]CategoryRatios `bson:"events" json:"events"`
	Hunger    HungerMultipliers            `bson:"hunger" json:"hunger"`
	UpdatedAt time.Time                    `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy string                       `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// DefaultRatioTable returns the ratio configuration used when none has
// been stored yet.
func DefaultRatioTable() RatioTable {
	return RatioTable{
		Events: map[EventType]CategoryRatios{
			EventBrunch: {
				SandwichesPerGuest: 2.0,
				PastriesPerGuest:   1.5,
				SaladsCoverage:     1.0,
				MainsCoverage:      0.5,
				PlattersCoverage:   0.75,
				DessertsCoverage:   0.5,
			},
			EventDinner: {
				SandwichesPerGuest: 1.0,
				PastriesPerGuest:   0.5,
				SaladsCoverage:     1.0,
				MainsCoverage:      1.0,
				PlattersCoverage:   0.75,
				DessertsCoverage:   0.75,
			},
			EventCocktail: {
				SandwichesPerGuest: 1.5,
				PastriesPerGuest:   1.0,
				SaladsCoverage:     0.5,
				MainsCoverage:      0.25,
				PlattersCoverage:   1.0,
				DessertsCoverage:   0.5,
			},
			EventParty: {
				SandwichesPerGuest: 2.0,
				PastriesPerGuest:   1.0,
				SaladsCoverage:     0.75,
				MainsCoverage:      0.75,
				PlattersCoverage:   1.0,
				DessertsCoverage:   1.0,
			},
		},
		Hunger: HungerMultipliers{
			Light:  0.8,
			Medium: 1.0,
			Heavy:  1.25,
		},
	}
}

// RatioFor resolves the coefficient for an item category under the given
// event type. perGuest is true for categories sold one-per-guest. ok is
// false when the category has no defined ratio (dips, unknown categories):
// callers degrade to a minimum suggestion rather than failing.
func (t RatioTable) RatioFor(event EventType, category Category) (ratio float64, perGuest bool, ok bool) {
	ratios, found := t.Events[event]
	if !found {
		return 0, false, false
	}
	switch category {
	case CategorySandwiches:
		return ratios.SandwichesPerGuest, true, ratios.SandwichesPerGuest > 0
	case CategoryPastries:
		return ratios.PastriesPerGuest, true, ratios.PastriesPerGuest > 0
	case CategorySalads:
		return ratios.SaladsCoverage, false, ratios.SaladsCoverage > 0
	case CategoryMainCourses:
		return ratios.MainsCoverage, false, ratios.MainsCoverage > 0
	case CategoryColdPlatters:
		return ratios.PlattersCoverage, false, ratios.PlattersCoverage > 0
	case CategoryDesserts:
		return ratios.DessertsCoverage, false, ratios.DessertsCoverage > 0
	default:
		return 0, false, false
	}
}

// HungerMultiplier returns the multiplier for the given hunger level,
// defaulting to 1 for unknown or unset levels.
func (t RatioTable) HungerMultiplier(level HungerLevel) float64 {
	var m float64
	switch level {
	case HungerLight:
		m = t.Hunger.Light
	case HungerMedium:
		m = t.Hunger.Medium
	case HungerHeavy:
		m = t.Hunger.Heavy
	}
	if m <= 0 {
		return 1
	}
	return m
}
