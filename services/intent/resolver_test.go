package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookwise/models"
)

func TestResolvePhraseMatch(t *testing.T) {
	r := NewDefaultIntentResolver(nil)
	result := r.Resolve("please cancel my booking", nil, models.BookingModeService)

	assert.Equal(t, models.IntentCancelBooking, result.Name)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestResolveCreateLocksToBookingMode(t *testing.T) {
	r := NewDefaultIntentResolver(nil)
	entities := &models.Entities{Services: []models.ServiceRef{{Text: "haircut"}}}

	appointment := r.Resolve("book a haircut", entities, models.BookingModeService)
	assert.Equal(t, models.IntentCreateAppointment, appointment.Name)

	entities = &models.Entities{Services: []models.ServiceRef{{Text: "room"}}}
	reservation := r.Resolve("book a room", entities, models.BookingModeReservation)
	assert.Equal(t, models.IntentCreateReservation, reservation.Name)
}

func TestResolvePriorityCancelBeatsCreate(t *testing.T) {
	// "cancel" outranks the creation bucket even when both could match.
	r := NewDefaultIntentResolver(nil)
	entities := &models.Entities{Services: []models.ServiceRef{{Text: "haircut"}}}
	result := r.Resolve("cancel my booking and book a haircut", entities, models.BookingModeService)

	assert.Equal(t, models.IntentCancelBooking, result.Name)
}

func TestResolveUnknown(t *testing.T) {
	r := NewDefaultIntentResolver(nil)
	result := r.Resolve("the weather is nice today", nil, models.BookingModeService)

	assert.Equal(t, models.IntentUnknown, result.Name)
	assert.Zero(t, result.Confidence)
}

func TestResolveRequiredSlotsGateMatch(t *testing.T) {
	r := NewDefaultIntentResolver(&SignalConfig{Intents: map[string][]Signal{
		"MODIFY_BOOKING": {
			{Phrase: "reschedule", RequiredSlots: []string{"booking_id"}},
		},
	}})

	without := r.Resolve("reschedule it", &models.Entities{}, models.BookingModeService)
	assert.Equal(t, models.IntentUnknown, without.Name)

	with := r.Resolve("reschedule it", &models.Entities{BookingID: "bk_9"}, models.BookingModeService)
	assert.Equal(t, models.IntentModifyBooking, with.Name)
}

func TestResolveTokenMatchConfidence(t *testing.T) {
	r := NewDefaultIntentResolver(&SignalConfig{Intents: map[string][]Signal{
		"AVAILABILITY": {
			{AllTokens: []string{"open", "tomorrow"}},
		},
	}})
	result := r.Resolve("are you open tomorrow?", nil, models.BookingModeService)

	assert.Equal(t, models.IntentAvailability, result.Name)
	assert.Equal(t, 0.75, result.Confidence)
}

func TestResolveOrderedTokenConfidence(t *testing.T) {
	r := NewDefaultIntentResolver(&SignalConfig{Intents: map[string][]Signal{
		"BOOKING_INQUIRY": {
			{OrderedTokens: []string{"when", "booking"}},
		},
	}})
	result := r.Resolve("when is my booking?", nil, models.BookingModeService)

	assert.Equal(t, models.IntentBookingInquiry, result.Name)
	assert.Equal(t, 0.85, result.Confidence)
}
