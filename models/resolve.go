package models

import "time"

// ResolveRequest is one conversational turn submitted to the engine.
type ResolveRequest struct {
	UserID   string    `json:"userId" binding:"required"`
	Text     string    `json:"text"`
	Entities Entities  `json:"entities"`
	Domain   string    `json:"domain,omitempty"`   // defaults to "service"
	Timezone string    `json:"timezone,omitempty"` // IANA name, defaults to config
	Now      time.Time `json:"now,omitempty"`      // test hook; zero means wall clock

	// Tenant service catalog context for the service resolution gate.
	TenantContext *TenantContext `json:"tenantContext,omitempty"`
}

// TenantContext carries the tenant's bookable service catalog. Aliases maps
// tenant service id to its canonical family, e.g. {"deluxe": "room"}.
type TenantContext struct {
	Aliases     map[string]string `json:"aliases,omitempty"`
	BookingMode string            `json:"bookingMode,omitempty"`
}

// ResolveResponse is the engine's answer for one turn.
type ResolveResponse struct {
	RequestID          string           `json:"requestId"`
	Intent             IntentResult     `json:"intent"`
	Status             string           `json:"status"`
	Booking            *ResolvedBooking `json:"booking,omitempty"`
	Clarification      *Clarification   `json:"clarification,omitempty"`
	ClarificationText  string           `json:"clarificationText,omitempty"`
	EffectiveTime      *EffectiveTime   `json:"effectiveTime,omitempty"`
	Trace              *DecisionTrace   `json:"trace,omitempty"`
	MemoryApplied      bool             `json:"memoryApplied"`
	ResolvedBookingKey string           `json:"resolvedBookingKey,omitempty"`
}

// ResolutionRecord is the archived form of a resolved booking, persisted by
// the history worker.
type ResolutionRecord struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	Domain    string           `bson:"domain" json:"domain"`
	Intent    string           `bson:"intent" json:"intent"`
	Booking   *ResolvedBooking `bson:"booking" json:"booking"`
	Timezone  string           `bson:"timezone" json:"timezone"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}
