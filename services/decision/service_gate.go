package decision

import (
	"strings"

	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// normalizeCanonical expands a short canonical form ("haircut") to its full
// domain-qualified form. Reservations live under hospitality, everything
// else under beauty_and_wellness.
func normalizeCanonical(canonical, bookingMode string) string {
	if strings.Contains(canonical, ".") {
		return canonical
	}
	if bookingMode == models.BookingModeReservation {
		return "hospitality." + canonical
	}
	return "beauty_and_wellness." + canonical
}

// ResolveTenantServiceID enforces tenant-authoritative service resolution.
//
// Rules, in order:
//  1. A tenant_service_id or resolved_alias on any service wins immediately.
//  2. Otherwise canonical families map to tenant services via the tenant's
//     alias table.
//  3. Cardinality 0 means the service isn't offered; cardinality above 1 is
//     never auto-resolved; cardinality 1 resolves only when no family behind
//     it is itself one-to-many.
//
// Returns the resolved id, or a clarification reason when resolution failed.
func ResolveTenantServiceID(services []models.ServiceRef, tenantCtx *models.TenantContext, bookingMode string) (string, string, *models.ServiceResolutionTrace) {
	trace := &models.ServiceResolutionTrace{}

	// Modifiers describe services; they aren't services.
	var usable []models.ServiceRef
	for _, s := range services {
		if s.AnnotationType != "MODIFIER" {
			usable = append(usable, s)
		}
	}
	if len(usable) == 0 {
		trace.Strategy = "no_services"
		return "", models.ReasonMissingService, trace
	}

	for _, s := range usable {
		if s.TenantServiceID != "" {
			trace.Strategy = "tenant_service_id_authoritative"
			trace.TenantServiceID = s.TenantServiceID
			return s.TenantServiceID, "", trace
		}
		if s.ResolvedAlias != "" {
			trace.Strategy = "resolved_alias_authoritative"
			trace.TenantServiceID = s.ResolvedAlias
			return s.ResolvedAlias, "", trace
		}
	}

	var families []string
	seen := map[string]bool{}
	for _, s := range usable {
		if s.Canonical == "" {
			continue
		}
		family := normalizeCanonical(s.Canonical, bookingMode)
		if !seen[family] {
			seen[family] = true
			families = append(families, family)
		}
	}
	trace.CanonicalFamilies = families

	if len(families) == 0 {
		trace.Strategy = "no_canonical_families"
		return "", models.ReasonMissingService, trace
	}
	if tenantCtx == nil || tenantCtx.Aliases == nil {
		trace.Strategy = "no_tenant_context"
		return "", models.ReasonUnsupportedService, trace
	}

	// Reverse the alias table: canonical family -> tenant service ids.
	familyToTenant := map[string][]string{}
	for tenantID, family := range tenantCtx.Aliases {
		key := normalizeCanonical(family, bookingMode)
		familyToTenant[key] = append(familyToTenant[key], tenantID)
	}

	var matches []string
	matchSeen := map[string]bool{}
	for _, family := range families {
		for _, id := range familyToTenant[family] {
			if !matchSeen[id] {
				matchSeen[id] = true
				matches = append(matches, id)
			}
		}
	}
	trace.Cardinality = len(matches)

	switch {
	case len(matches) == 0:
		trace.Strategy = "cardinality_0"
		return "", models.ReasonUnsupportedService, trace
	case len(matches) > 1:
		trace.Strategy = "cardinality_gt1"
		trace.Options = matches
		return "", models.ReasonMultipleMatches, trace
	}

	// One match overall, but a family that fans out to several tenant
	// services still has to be asked about, never guessed.
	for _, family := range families {
		if options := familyToTenant[family]; len(options) > 1 {
			trace.Strategy = "family_maps_to_multiple_tenant_services"
			trace.Options = options
			utils.GetLogger().Warn("ambiguous service family",
				zap.String("family", family),
				zap.Strings("options", options),
			)
			return "", models.ReasonMultipleMatches, trace
		}
	}

	trace.Strategy = "cardinality_1_unique"
	trace.TenantServiceID = matches[0]
	return matches[0], "", trace
}
