package clarify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookwise/models"
)

func TestRenderAmbiguousTime(t *testing.T) {
	c := models.NewClarification(models.ReasonAmbiguousTimeNoWindow, map[string]any{"time": "5"})
	out, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, "Do you mean 5am or 5pm?", out)
}

func TestRenderMissingTime(t *testing.T) {
	c := models.NewClarification(models.ReasonMissingTime, map[string]any{"service": "haircut"})
	out, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, "What time would you like the haircut appointment?", out)
}

func TestRenderMissingDate(t *testing.T) {
	c := models.NewClarification(models.ReasonMissingDate, map[string]any{"service": "haircut"})
	out, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, "What day should I book the haircut for?", out)
}

func TestRenderLocaleAmbiguousDate(t *testing.T) {
	c := models.NewClarification(models.ReasonLocaleAmbiguousDate, map[string]any{"date_text": "07/12"})
	out, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, "Just to confirm — is this 07/12?", out)
}

func TestRenderUnknownReasonFailsLoudly(t *testing.T) {
	c := models.NewClarification("NOT_A_REASON", nil)
	_, err := Render(c)
	assert.Error(t, err)
}

func TestRenderMissingRequiredFieldFailsLoudly(t *testing.T) {
	c := models.NewClarification(models.ReasonMissingTime, nil)
	_, err := Render(c)
	assert.Error(t, err)
}

func TestRenderNilClarification(t *testing.T) {
	_, err := Render(nil)
	assert.Error(t, err)
}

func TestEveryReasonHasATemplate(t *testing.T) {
	// The reason set is closed; a reason without a template would make the
	// engine fail at answer time.
	known := map[string]bool{}
	for _, reason := range Reasons() {
		known[reason] = true
	}
	for _, reason := range []string{
		models.ReasonAmbiguousTimeNoWindow,
		models.ReasonMissingTime,
		models.ReasonMissingDate,
		models.ReasonMissingService,
		models.ReasonLocaleAmbiguousDate,
		models.ReasonVagueDateReference,
		models.ReasonAmbiguousPluralWeekday,
		models.ReasonConflictingSignals,
		models.ReasonAmbiguousDateMultiple,
		models.ReasonContextDependentDate,
		models.ReasonMultipleMatches,
		models.ReasonMissingDateRange,
		models.ReasonMissingDateForTimeConstraint,
		models.ReasonUnsupportedService,
		models.ReasonMissingBookingReference,
		models.ReasonMissingContext,
		models.ReasonMissingTimeFuzzy,
		models.ReasonMissingStartDate,
		models.ReasonMissingEndDate,
		models.ReasonPolicyTimeWindow,
		models.ReasonPolicyConstraintOnlyTime,
	} {
		assert.True(t, known[reason], "no template for %s", reason)
	}
}

func TestRenderDeterministic(t *testing.T) {
	c := models.NewClarification(models.ReasonMissingTime, map[string]any{"service": "haircut", "date": "tomorrow"})
	first, err := Render(c)
	require.NoError(t, err)
	second, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
