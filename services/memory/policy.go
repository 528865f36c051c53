package memory

import (
	"strings"

	"bookwise/config"
	"bookwise/models"
)

// Confidence at or above this starts a new booking task even while another
// one is remembered.
const newTaskConfidence = 0.85

// IsNewTask decides whether the current turn starts a fresh task or
// continues the remembered one.
//
// Order matters: with no remembered state every turn is new; an explicit
// reset phrase always abandons the task; an UNKNOWN or low-confidence intent
// never abandons it; a confident booking intent starts over.
func IsNewTask(state *models.MemoryState, intent models.IntentResult, text string) bool {
	if state == nil {
		return true
	}
	if ContainsResetPhrase(text) {
		return true
	}
	if intent.Name == models.IntentUnknown || intent.Confidence < newTaskConfidence {
		return false
	}
	return intent.IsBookingIntent()
}

// ContainsResetPhrase reports explicit task-abandonment wording.
func ContainsResetPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range config.ResetPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ShouldClearMemory reports intents that end the task outright: once a
// booking is cancelled, confirmed or committed there is nothing to continue.
func ShouldClearMemory(intentName string) bool {
	switch intentName {
	case models.IntentCancelBooking, models.IntentConfirmBooking, models.IntentCommitBooking:
		return true
	}
	return false
}

// HasBookingVerb reports whether the turn asks for a booking in words,
// rather than just supplying a slot value.
func HasBookingVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, verb := range config.BookingVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// IsContextualUpdate spots turns like "actually make it 5pm": no service, no
// booking verb, at least one mutable slot changed, while a booking task is
// active. Such turns are treated as updates to the remembered booking and
// reported under its original intent.
func IsContextualUpdate(state *models.MemoryState, intent models.IntentResult, entities *models.Entities) bool {
	if state == nil || !state.HasActiveBooking() {
		return false
	}
	if intent.Name != models.IntentModifyBooking && intent.Name != models.IntentUnknown {
		return false
	}
	if entities == nil || entities.MutableSlotsModified() == 0 {
		return false
	}
	if len(entities.Services) > 0 {
		return false
	}
	return !HasBookingVerb(entities.Sentence)
}

// NextState computes the memory write for a finished turn. A RESOLVED
// verdict discards any partial state, force-clears the clarification and
// remembers the resolved booking; anything still open is remembered as
// PARTIAL with its pending clarification.
func NextState(intentName, bookingMode string, booking *models.ResolvedBooking, clarification *models.Clarification, status string) *models.MemoryState {
	if status == models.StatusResolved {
		return &models.MemoryState{
			Intent:       intentName,
			BookingMode:  bookingMode,
			BookingState: models.BookingStateResolved,
			Booking:      booking,
		}
	}
	return &models.MemoryState{
		Intent:        intentName,
		BookingMode:   bookingMode,
		BookingState:  models.BookingStatePartial,
		Booking:       booking,
		Clarification: clarification,
	}
}
