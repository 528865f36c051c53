package intent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Signal is one way an intent can be recognized. Exactly one of Phrase,
// AllTokens or OrderedTokens should be set; RequiredSlots optionally gates
// the match on entity presence.
type Signal struct {
	Phrase        string   `yaml:"phrase,omitempty"`
	AllTokens     []string `yaml:"all_tokens,omitempty"`
	OrderedTokens []string `yaml:"ordered_tokens,omitempty"`
	RequiredSlots []string `yaml:"required_slots,omitempty"`
}

// SignalConfig is the full intent signal table, normally loaded from YAML.
type SignalConfig struct {
	Intents map[string][]Signal `yaml:"intents"`
}

// LoadSignals reads a signal table from a YAML file.
func LoadSignals(path string) (*SignalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intent: read signals: %w", err)
	}
	var cfg SignalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("intent: parse signals: %w", err)
	}
	if len(cfg.Intents) == 0 {
		return nil, fmt.Errorf("intent: signal table %s defines no intents", path)
	}
	return &cfg, nil
}

// DefaultSignals is the built-in signal table, used when no YAML file is
// configured. The YAML file has the same shape and fully replaces it.
func DefaultSignals() *SignalConfig {
	return &SignalConfig{Intents: map[string][]Signal{
		"PAYMENT": {
			{Phrase: "pay for"},
			{Phrase: "make a payment"},
			{AllTokens: []string{"pay", "booking"}},
		},
		"PAYMENT_STATUS": {
			{Phrase: "payment status"},
			{Phrase: "did my payment go through"},
		},
		"CANCEL_BOOKING": {
			{Phrase: "cancel my booking"},
			{Phrase: "cancel the booking"},
			{Phrase: "cancel my reservation"},
			{AllTokens: []string{"cancel", "appointment"}},
			{AllTokens: []string{"cancel", "reservation"}},
		},
		"MODIFY_BOOKING": {
			{Phrase: "reschedule"},
			{Phrase: "move my booking"},
			{Phrase: "change my booking"},
			{Phrase: "modify booking"},
			{AllTokens: []string{"change", "appointment"}},
			{AllTokens: []string{"move", "reservation"}},
		},
		"BOOKING_INQUIRY": {
			{Phrase: "when is my booking"},
			{Phrase: "my upcoming booking"},
			{AllTokens: []string{"booking", "details"}, RequiredSlots: []string{"booking_id"}},
		},
		"AVAILABILITY": {
			{Phrase: "do you have availability"},
			{Phrase: "are you open"},
			{Phrase: "any openings"},
			{AllTokens: []string{"available", "slots"}},
		},
		"CREATE_BOOKING": {
			{OrderedTokens: []string{"book", "a"}},
			{Phrase: "i'd like to book"},
			{Phrase: "i want to book"},
			{Phrase: "make an appointment"},
			{Phrase: "schedule an appointment"},
			{Phrase: "reserve a"},
			{Phrase: "book a room"},
			{AllTokens: []string{"book", "appointment"}},
			{AllTokens: []string{"reserve", "room"}},
		},
		"QUOTE": {
			{Phrase: "how much is"},
			{Phrase: "how much does"},
			{AllTokens: []string{"price", "of"}},
		},
		"DETAILS": {
			{Phrase: "tell me more about"},
			{AllTokens: []string{"what", "included"}},
		},
		"DISCOVERY": {
			{Phrase: "what services do you"},
			{Phrase: "what do you offer"},
		},
		"RECOMMENDATION": {
			{Phrase: "what do you recommend"},
			{Phrase: "which one should i"},
		},
		"CONFIRM_BOOKING": {
			{Phrase: "confirm my booking"},
			{Phrase: "yes, confirm"},
			{Phrase: "go ahead and book it"},
		},
		"REJECT_OR_CHANGE": {
			{Phrase: "not that one"},
			{Phrase: "something else"},
		},
	}}
}
