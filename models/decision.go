package models

// Decision statuses.
const (
	StatusResolved           = "RESOLVED"
	StatusNeedsClarification = "NEEDS_CLARIFICATION"
)

// Temporal shapes an intent may require.
const (
	TemporalShapeDatetimeRange = "datetime_range" // appointments: date + time
	TemporalShapeDateRange     = "date_range"     // reservations: start + end date
)

// EffectiveTime describes which time source the decision treated as binding.
// Mode is exact or window; Source is primary, constraint or window.
type EffectiveTime struct {
	Mode   string `json:"mode"`
	Source string `json:"source"`
}

// DecisionResult is the outcome of the policy layer for one turn.
type DecisionResult struct {
	Status        string         `json:"status"`
	Reason        string         `json:"reason,omitempty"`
	EffectiveTime *EffectiveTime `json:"effectiveTime,omitempty"`
}

// DecisionTrace records how the decision was reached, for diagnostics.
type DecisionTrace struct {
	State                 string                  `json:"state"`
	Reason                string                  `json:"reason,omitempty"`
	ExpectedTemporalShape string                  `json:"expectedTemporalShape,omitempty"`
	ActualTemporalShape   string                  `json:"actualTemporalShape,omitempty"`
	MissingSlots          []string                `json:"missingSlots"`
	TemporalShapeOK       bool                    `json:"temporalShapeSatisfied"`
	RuleEnforced          string                  `json:"ruleEnforced,omitempty"`
	ServiceResolution     *ServiceResolutionTrace `json:"serviceResolution,omitempty"`
}

// ServiceResolutionTrace records how (or why not) a service mention resolved
// to a tenant service id.
type ServiceResolutionTrace struct {
	TenantServiceID     string   `json:"resolvedTenantServiceId,omitempty"`
	ClarificationReason string   `json:"clarificationReason,omitempty"`
	Strategy            string   `json:"strategy,omitempty"`
	CanonicalFamilies   []string `json:"canonicalFamilies,omitempty"`
	Cardinality         int      `json:"cardinality"`
	Options             []string `json:"options,omitempty"`
}
