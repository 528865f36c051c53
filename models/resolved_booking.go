package models

// Date resolution modes produced by the semantic resolver.
const (
	DateModeNone      = "none"
	DateModeSingleDay = "single_day"
	DateModeRange     = "range"
	DateModeFlexible  = "flexible"
)

// Time resolution modes produced by the semantic resolver.
const (
	TimeModeNone   = "none"
	TimeModeExact  = "exact"
	TimeModeRange  = "range"
	TimeModeWindow = "window"
)

// Booking modes. Appointments need a date plus a time; reservations need a
// start date plus an end date.
const (
	BookingModeService     = "service"
	BookingModeReservation = "reservation"
)

// ServiceRef is a service mention extracted from the utterance, optionally
// annotated with tenant resolution results.
type ServiceRef struct {
	Text            string `json:"text"`
	Canonical       string `json:"canonical,omitempty"`
	AnnotationType  string `json:"annotationType,omitempty"` // ALIAS, FAMILY or MODIFIER
	TenantServiceID string `json:"tenantServiceId,omitempty"`
	ResolvedAlias   string `json:"resolvedAlias,omitempty"`
}

// TimeConstraint captures deadline-style time phrases such as "by 4pm" or
// "before noon". Mode is one of exact, window or fuzzy.
type TimeConstraint struct {
	Mode  string `json:"mode"`
	Start string `json:"start,omitempty"` // "HH:MM"
	End   string `json:"end,omitempty"`   // "HH:MM"
	Label string `json:"label,omitempty"` // raw phrase, e.g. "by 4pm"
}

// TimeIssue records a time mention that could not be resolved without user
// input, such as "between 7 and 9" with no am/pm marker.
type TimeIssue struct {
	Kind       string   `json:"kind"`
	Raw        string   `json:"raw"`
	StartHour  int      `json:"startHour,omitempty"`
	EndHour    int      `json:"endHour,omitempty"`
	Reason     string   `json:"reason"`
	Candidates []string `json:"candidates,omitempty"`
}

// DateRange is a concrete calendar range in ISO-8601 dates (YYYY-MM-DD).
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// TimeRange is a clock-time range in 24h "HH:MM" values.
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DatetimeRange is a fully bound ISO-8601 local datetime range
// (YYYY-MM-DDTHH:MM:SS, no offset; the timezone is carried separately).
type DatetimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Duration is a requested appointment length.
type Duration struct {
	Minutes int    `json:"minutes"`
	Raw     string `json:"raw,omitempty"`
}

// ResolvedBooking is the semantic resolution of a single turn. The semantic
// fields (modes and refs) are produced by the semantic resolver; the bound
// fields (DateRange, TimeRange, DatetimeRange) are filled by the calendar
// binder against an injected clock and timezone.
type ResolvedBooking struct {
	Services []ServiceRef `json:"services"`

	DateMode string   `json:"dateMode"`
	DateRefs []string `json:"dateRefs"`

	TimeMode string   `json:"timeMode"`
	TimeRefs []string `json:"timeRefs"`
	// Day-part window names seen this turn, kept even when an exact time
	// outranked them: the binder needs them for meridiem bias.
	WindowRefs []string `json:"windowRefs,omitempty"`

	Duration       *Duration       `json:"duration,omitempty"`
	TimeConstraint *TimeConstraint `json:"timeConstraint,omitempty"`
	TimeIssues     []TimeIssue     `json:"timeIssues,omitempty"`

	BookingMode string `json:"bookingMode,omitempty"`

	// Set when multiple dates or times appeared without an explicit range
	// marker and the resolver picked one anyway.
	AmbiguousDates bool `json:"ambiguousDates,omitempty"`
	AmbiguousTimes bool `json:"ambiguousTimes,omitempty"`

	// Bound by the calendar binder.
	DateRange     *DateRange     `json:"dateRange,omitempty"`
	TimeRange     *TimeRange     `json:"timeRange,omitempty"`
	DatetimeRange *DatetimeRange `json:"datetimeRange,omitempty"`
}

// HasResolvedDate reports whether the booking carries a usable date, either
// semantic refs or a bound range.
func (b *ResolvedBooking) HasResolvedDate() bool {
	if b == nil {
		return false
	}
	if b.DateRange != nil {
		return true
	}
	return b.DateMode != DateModeNone && len(b.DateRefs) > 0
}

// HasResolvedTime reports whether the booking carries a usable time source.
func (b *ResolvedBooking) HasResolvedTime() bool {
	if b == nil {
		return false
	}
	if b.TimeConstraint != nil || b.TimeRange != nil {
		return true
	}
	return b.TimeMode != TimeModeNone && len(b.TimeRefs) > 0
}

// FullyResolved reports whether both date and time are usable, which is the
// bar for replacing a remembered booking wholesale during a merge.
func (b *ResolvedBooking) FullyResolved() bool {
	return b.HasResolvedDate() && b.HasResolvedTime()
}
