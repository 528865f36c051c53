// Package intent resolves conversational turns to intents with a rule-based
// signal matcher. Signals are phrases or token sets configured in YAML;
// priority order and confidence tiers are fixed.
package intent

import (
	"strings"

	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// Confidence tiers by match strength.
const (
	phraseConfidence  = 0.95
	orderedConfidence = 0.85
	tokenConfidence   = 0.75
)

// createBookingSignal is the generic creation bucket in the signal table; it
// locks to CREATE_APPOINTMENT or CREATE_RESERVATION by booking mode.
const createBookingSignal = "CREATE_BOOKING"

// intentPriority breaks ties when several intents match: the most specific
// wins. Lower index, higher priority.
var intentPriority = []string{
	models.IntentPayment,
	models.IntentCancelBooking,
	models.IntentModifyBooking,
	models.IntentBookingInquiry,
	models.IntentAvailability,
	createBookingSignal,
	models.IntentQuote,
	models.IntentDetails,
	models.IntentDiscovery,
	models.IntentRecommendation,
	models.IntentConfirmBooking,
	models.IntentPaymentStatus,
	models.IntentRejectOrChange,
}

// IntentResolver resolves the intent of one turn.
type IntentResolver interface {
	Resolve(text string, entities *models.Entities, bookingMode string) models.IntentResult
}

// DefaultIntentResolver matches against a configured signal table.
type DefaultIntentResolver struct {
	Signals *SignalConfig
}

// NewDefaultIntentResolver builds a resolver; a nil config falls back to the
// built-in table.
func NewDefaultIntentResolver(signals *SignalConfig) *DefaultIntentResolver {
	if signals == nil {
		signals = DefaultSignals()
	}
	return &DefaultIntentResolver{Signals: signals}
}

// Resolve walks intents in priority order and returns the first signal hit.
// Turns matching nothing are UNKNOWN with zero confidence.
func (r *DefaultIntentResolver) Resolve(text string, entities *models.Entities, bookingMode string) models.IntentResult {
	lower := strings.ToLower(text)
	tokens := strings.Fields(lower)

	for _, name := range intentPriority {
		signals, ok := r.Signals.Intents[name]
		if !ok {
			continue
		}
		for _, signal := range signals {
			confidence, matched, matchedOn := matchSignal(signal, lower, tokens)
			if !matched || !slotsPresent(signal.RequiredSlots, entities) {
				continue
			}
			result := models.IntentResult{
				Name:        lockBookingMode(name, bookingMode),
				Confidence:  confidence,
				BookingMode: bookingMode,
				MatchedOn:   matchedOn,
			}
			utils.GetLogger().Debug("intent matched",
				zap.String("intent", result.Name),
				zap.Float64("confidence", confidence),
				zap.String("signal", matchedOn),
			)
			return result
		}
	}

	return models.IntentResult{Name: models.IntentUnknown, BookingMode: bookingMode}
}

func matchSignal(signal Signal, lower string, tokens []string) (float64, bool, string) {
	switch {
	case signal.Phrase != "":
		if strings.Contains(lower, strings.ToLower(signal.Phrase)) {
			return phraseConfidence, true, signal.Phrase
		}
	case len(signal.OrderedTokens) > 0:
		if containsOrdered(tokens, signal.OrderedTokens) {
			return orderedConfidence, true, strings.Join(signal.OrderedTokens, " ")
		}
	case len(signal.AllTokens) > 0:
		if containsAllTokens(tokens, signal.AllTokens) {
			return tokenConfidence, true, strings.Join(signal.AllTokens, "+")
		}
	}
	return 0, false, ""
}

// lockBookingMode maps the generic creation signal to the intent the booking
// mode dictates: services make appointments, hospitality makes reservations.
func lockBookingMode(name, bookingMode string) string {
	if name != createBookingSignal {
		return name
	}
	if bookingMode == models.BookingModeReservation {
		return models.IntentCreateReservation
	}
	return models.IntentCreateAppointment
}

func slotsPresent(required []string, entities *models.Entities) bool {
	for _, slot := range required {
		switch slot {
		case "service":
			if entities == nil || len(entities.Services) == 0 {
				return false
			}
		case "date":
			if entities == nil || !entities.HasDates() {
				return false
			}
		case "time":
			if entities == nil || !entities.HasTimes() {
				return false
			}
		case "booking_id":
			if entities == nil || entities.BookingID == "" {
				return false
			}
		}
	}
	return true
}

func containsAllTokens(tokens, wanted []string) bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[strings.Trim(t, ".,!?")] = true
	}
	for _, w := range wanted {
		if !set[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

func containsOrdered(tokens, wanted []string) bool {
	idx := 0
	for _, t := range tokens {
		if strings.Trim(t, ".,!?") == strings.ToLower(wanted[idx]) {
			idx++
			if idx == len(wanted) {
				return true
			}
		}
	}
	return false
}
