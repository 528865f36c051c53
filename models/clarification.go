package models

// Clarification reason codes. The set is closed: every clarification the
// engine emits carries exactly one of these, and the renderer has a template
// for each.
const (
	ReasonAmbiguousTimeNoWindow        = "AMBIGUOUS_TIME_NO_WINDOW"
	ReasonMissingTime                  = "MISSING_TIME"
	ReasonMissingDate                  = "MISSING_DATE"
	ReasonMissingService               = "MISSING_SERVICE"
	ReasonLocaleAmbiguousDate          = "LOCALE_AMBIGUOUS_DATE"
	ReasonVagueDateReference           = "VAGUE_DATE_REFERENCE"
	ReasonAmbiguousPluralWeekday       = "AMBIGUOUS_PLURAL_WEEKDAY"
	ReasonConflictingSignals           = "CONFLICTING_SIGNALS"
	ReasonAmbiguousDateMultiple        = "AMBIGUOUS_DATE_MULTIPLE"
	ReasonContextDependentDate         = "CONTEXT_DEPENDENT_DATE"
	ReasonMultipleMatches              = "MULTIPLE_MATCHES"
	ReasonMissingDateRange             = "MISSING_DATE_RANGE"
	ReasonMissingDateForTimeConstraint = "MISSING_DATE_FOR_TIME_CONSTRAINT"
	ReasonUnsupportedService           = "UNSUPPORTED_SERVICE"
	ReasonMissingBookingReference      = "MISSING_BOOKING_REFERENCE"
	ReasonMissingContext               = "MISSING_CONTEXT"
	ReasonMissingTimeFuzzy             = "MISSING_TIME_FUZZY"
	ReasonMissingStartDate             = "MISSING_START_DATE"
	ReasonMissingEndDate               = "MISSING_END_DATE"
	ReasonPolicyTimeWindow             = "POLICY_TIME_WINDOW"
	ReasonPolicyConstraintOnlyTime     = "POLICY_CONSTRAINT_ONLY_TIME"
)

// Clarification is a machine-readable question for the user: a reason code
// plus the data the renderer needs to fill its template. The engine never
// produces free-form question text.
type Clarification struct {
	Reason string         `json:"reason"`
	Data   map[string]any `json:"data,omitempty"`
}

// NewClarification builds a clarification with an initialized data map.
func NewClarification(reason string, data map[string]any) *Clarification {
	if data == nil {
		data = map[string]any{}
	}
	return &Clarification{Reason: reason, Data: data}
}
