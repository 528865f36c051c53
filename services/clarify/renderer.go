// Package clarify renders clarification questions from reason codes. The
// template table is closed: every reason maps to exactly one template, and
// rendering is fully deterministic.
package clarify

import (
	"fmt"
	"regexp"
	"strings"

	"bookwise/models"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Template pairs the question text with the data fields it cannot render
// without.
type Template struct {
	Text           string
	RequiredFields []string
}

var templates = map[string]Template{
	models.ReasonAmbiguousTimeNoWindow: {
		Text:           "Do you mean {{time}}am or {{time}}pm?",
		RequiredFields: []string{"time"},
	},
	models.ReasonMissingTime: {
		Text:           "What time would you like the {{service}} appointment?",
		RequiredFields: []string{"service"},
	},
	models.ReasonMissingDate: {
		Text:           "What day should I book the {{service}} for?",
		RequiredFields: []string{"service"},
	},
	models.ReasonMissingService: {
		Text: "Which service would you like to book?",
	},
	models.ReasonLocaleAmbiguousDate: {
		Text:           "Just to confirm — is this {{date_text}}?",
		RequiredFields: []string{"date_text"},
	},
	models.ReasonVagueDateReference: {
		Text: "Do you have a specific day in mind, or should I check availability for the whole period?",
	},
	models.ReasonAmbiguousPluralWeekday: {
		Text: "Which specific day should I use?",
	},
	models.ReasonContextDependentDate: {
		Text: "Just to confirm — which date should I use?",
	},
	models.ReasonAmbiguousDateMultiple: {
		Text: "I found multiple dates. Which one should I use?",
	},
	models.ReasonConflictingSignals: {
		Text: "Could you specify the exact date you have in mind?",
	},
	models.ReasonMissingDateRange: {
		Text: "Which days should the booking cover?",
	},
	models.ReasonMissingDateForTimeConstraint: {
		Text: "What day should that be on?",
	},
	models.ReasonMultipleMatches: {
		Text: "I found more than one matching service. Which one did you mean?",
	},
	models.ReasonUnsupportedService: {
		Text: "That service isn't offered here. Would you like to pick another?",
	},
	models.ReasonMissingBookingReference: {
		Text: "Which booking is this about? A booking reference would help.",
	},
	models.ReasonMissingContext: {
		Text: "What would you like to change about the booking?",
	},
	models.ReasonMissingTimeFuzzy: {
		Text: "Could you give me an exact time?",
	},
	models.ReasonMissingStartDate: {
		Text: "What date should the stay start?",
	},
	models.ReasonMissingEndDate: {
		Text: "Until what date should I book it?",
	},
	models.ReasonPolicyTimeWindow: {
		Text: "Could you give me an exact time rather than a time of day?",
	},
	models.ReasonPolicyConstraintOnlyTime: {
		Text: "Could you give me an exact time?",
	},
}

// Render produces the question text for a clarification. It fails loudly on
// unknown reasons and missing required fields so a malformed clarification
// never reaches the user half-rendered.
func Render(c *models.Clarification) (string, error) {
	if c == nil {
		return "", fmt.Errorf("clarify: nil clarification")
	}
	tmpl, ok := templates[c.Reason]
	if !ok {
		return "", fmt.Errorf("clarify: no template for reason %q", c.Reason)
	}
	for _, field := range tmpl.RequiredFields {
		if _, present := c.Data[field]; !present {
			return "", fmt.Errorf("clarify: reason %q requires field %q", c.Reason, field)
		}
	}

	out := placeholderPattern.ReplaceAllStringFunc(tmpl.Text, func(match string) string {
		name := strings.Trim(match, "{}")
		if val, present := c.Data[name]; present {
			return stringify(val)
		}
		return match
	})
	return out, nil
}

// Reasons returns the reason codes the renderer knows, for validation.
func Reasons() []string {
	out := make([]string, 0, len(templates))
	for reason := range templates {
		out = append(out, reason)
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
