package model

// EventType identifies the kind of gathering being catered. Each type has
// its own ratio row in the RatioTable.
type EventType string

const (
	EventBrunch   EventType = "brunch"
	EventDinner   EventType = "dinner"
	EventCocktail EventType = "cocktail"
	EventParty    EventType = "party"
)

// HungerLevel scales every ratio multiplicatively.
type HungerLevel string

const (
	HungerLight  HungerLevel = "light"
	HungerMedium HungerLevel = "medium"
	HungerHeavy  HungerLevel = "heavy"
)

// DefaultChildWeight discounts children relative to adults in quantity
// math when no explicit weight is configured.
const DefaultChildWeight = 0.5

// EventConfig is the guest composition and intent for one session. It is
// pure configuration: suggestions always recompute from current values.
type EventConfig struct {
	Adults      int         `bson:"adults" json:"adults"`
	Children    int         `bson:"children,omitempty" json:"children,omitempty"`
	ChildWeight float64     `bson:"child_weight,omitempty" json:"child_weight,omitempty"`
	EventType   EventType   `bson:"event_type" json:"event_type"`
	Hunger      HungerLevel `bson:"hunger" json:"hunger"`
}

// TotalGuests returns the headcount: adults plus children.
func (e EventConfig) TotalGuests() int {
	return e.Adults + e.Children
}

// EffectiveGuests returns the guest figure used for ratio application.
// Children count at ChildWeight (DefaultChildWeight when unset); weights
// above 1 are clamped so a child never counts for more than an adult.
func (e EventConfig) EffectiveGuests() float64 {
	weight := e.ChildWeight
	if weight <= 0 {
		weight = DefaultChildWeight
	}
	if weight > 1 {
		weight = 1
	}
	return float64(e.Adults) + float64(e.Children)*weight
}
