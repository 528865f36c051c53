package models

// Entities is the pre-extracted entity bundle for one turn. Extraction itself
// happens upstream; the engine only interprets what arrives here.
type Entities struct {
	Services []ServiceRef `json:"services,omitempty"`

	// Relative or named date phrases ("tomorrow", "next friday", "weekend").
	Dates []string `json:"dates,omitempty"`
	// Absolute date phrases ("oct 29th", "29/10/2026").
	DatesAbsolute []string `json:"datesAbsolute,omitempty"`

	// Clock time phrases ("4 pm", "16:30", "between 7 and 9").
	Times []string `json:"times,omitempty"`
	// Named day-part windows ("morning", "afternoon", "evening", "tonight").
	TimeWindows []string `json:"timeWindows,omitempty"`

	Durations []string `json:"durations,omitempty"`

	// Modifier words attached to dates ("next", "this", "early", "end of").
	RelativeModifiers []string `json:"relativeModifiers,omitempty"`

	// Marker words between two dates or times ("to", "until", "through").
	RangeMarkers []string `json:"rangeMarkers,omitempty"`

	BookingID string `json:"bookingId,omitempty"`

	// Original sentence, kept for wording-sensitive policy checks only.
	Sentence string `json:"sentence,omitempty"`

	// Set by the extractor when date tokens contradict each other
	// structurally (e.g. "next tomorrow").
	ConflictingStructure bool `json:"conflictingStructure,omitempty"`
}

// HasDates reports whether any date entity, relative or absolute, is present.
func (e *Entities) HasDates() bool {
	return e != nil && (len(e.Dates) > 0 || len(e.DatesAbsolute) > 0)
}

// HasTimes reports whether any time entity or window is present.
func (e *Entities) HasTimes() bool {
	return e != nil && (len(e.Times) > 0 || len(e.TimeWindows) > 0)
}

// MutableSlotsModified counts how many of the mutable slots (date, time,
// duration) this turn touches. Used by continuity policy to spot contextual
// updates like "actually make it 5pm".
func (e *Entities) MutableSlotsModified() int {
	if e == nil {
		return 0
	}
	count := 0
	if e.HasDates() {
		count++
	}
	if e.HasTimes() {
		count++
	}
	if len(e.Durations) > 0 {
		count++
	}
	return count
}
