// Package semantics turns raw extracted entities into a semantic booking:
// resolution modes and references, never calendar dates. Binding to the
// calendar happens downstream.
package semantics

import "bookwise/models"

// Result is the outcome of semantic resolution for one turn.
type Result struct {
	Booking       *models.ResolvedBooking `json:"booking"`
	Clarification *models.Clarification   `json:"clarification,omitempty"`
}

// NeedsClarification reports whether the turn cannot proceed without asking.
func (r Result) NeedsClarification() bool {
	return r.Clarification != nil
}

// SemanticResolver resolves entities into booking semantics.
type SemanticResolver interface {
	Resolve(entities *models.Entities, bookingMode string) Result
}

// DefaultSemanticResolver is the production resolver. It is stateless and
// pure: no clock, no I/O.
type DefaultSemanticResolver struct{}

// NewDefaultSemanticResolver returns the production semantic resolver.
func NewDefaultSemanticResolver() *DefaultSemanticResolver {
	return &DefaultSemanticResolver{}
}
