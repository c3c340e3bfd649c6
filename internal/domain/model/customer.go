package model

// CustomerDeliveryState holds the contact and location fields collected for
// checkout. Contact fields are required only at submit time, never for cart
// mutation.
//
// The distance field has a lock: once a resolution derived it from the
// address text, manual edits are rejected until the address text changes
// again. This keeps a stale hand-typed distance from overriding a fresh
// resolver result.
type CustomerDeliveryState struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	AddressText string `bson:"address_text,omitempty" json:"address_text,omitempty"`

	ResolvedName     string  `bson:"resolved_name,omitempty" json:"resolved_name,omitempty"`
	DistanceKm       float64 `bson:"distance_km,omitempty" json:"distance_km,omitempty"`
	DistanceResolved bool    `bson:"distance_resolved,omitempty" json:"distance_resolved,omitempty"`
	DistanceLocked   bool    `bson:"distance_locked,omitempty" json:"distance_locked,omitempty"`
}

// HasContact reports whether the contact fields required at checkout are
// present.
func (s *CustomerDeliveryState) HasContact() bool {
	return s.Name != "" && s.Phone != ""
}

// DistanceKnown reports whether any distance, resolved or manual, is set.
func (s *CustomerDeliveryState) DistanceKnown() bool {
	return s.DistanceResolved || s.DistanceKm > 0
}

// SetAddress records new address text. Editing the address unlocks the
// distance field and discards any previous resolution, since it no longer
// describes the current input.
func (s *CustomerDeliveryState) SetAddress(text string) {
	if text == s.AddressText {
		return
	}
	s.AddressText = text
	s.ResolvedName = ""
	s.DistanceKm = 0
	s.DistanceResolved = false
	s.DistanceLocked = false
}

// ApplyResolution records a resolver result and locks the distance field
// against manual edits.
func (s *CustomerDeliveryState) ApplyResolution(displayName string, distanceKm float64) {
	s.ResolvedName = displayName
	s.DistanceKm = distanceKm
	s.DistanceResolved = true
	s.DistanceLocked = true
}

// SetManualDistance records a hand-entered distance. Returns false without
// effect while the field is locked by a resolution.
func (s *CustomerDeliveryState) SetManualDistance(distanceKm float64) bool {
	if s.DistanceLocked {
		return false
	}
	if distanceKm < 0 {
		distanceKm = 0
	}
	s.DistanceKm = distanceKm
	s.DistanceResolved = false
	return true
}
