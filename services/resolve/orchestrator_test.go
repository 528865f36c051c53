package resolve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookwise/models"
	"bookwise/services/calendar"
	"bookwise/services/decision"
	"bookwise/services/intent"
	"bookwise/services/memory"
	"bookwise/services/semantics"
)

// fakeMemoryStore is a map-backed MemoryStore for pipeline tests.
type fakeMemoryStore struct {
	states map[string]*models.MemoryState
}

func newFakeMemoryStore() *fakeMemoryStore {
	return &fakeMemoryStore{states: map[string]*models.MemoryState{}}
}

func (f *fakeMemoryStore) Get(_ context.Context, domain, userID string) (*models.MemoryState, error) {
	return f.states[domain+"/"+userID], nil
}

func (f *fakeMemoryStore) Set(_ context.Context, domain, userID string, state *models.MemoryState) error {
	f.states[domain+"/"+userID] = state
	return nil
}

func (f *fakeMemoryStore) Clear(_ context.Context, domain, userID string) error {
	delete(f.states, domain+"/"+userID)
	return nil
}

// Wednesday, October 21 2026.
var testNow = time.Date(2026, time.October, 21, 10, 0, 0, 0, time.UTC)

func newTestService(store memory.MemoryStore) *DefaultResolveService {
	return NewDefaultResolveService(
		intent.NewDefaultIntentResolver(nil),
		semantics.NewDefaultSemanticResolver(),
		calendar.NewDefaultCalendarBinder(),
		store,
		nil,
		nil,
		decision.DefaultPolicy(),
	)
}

func serviceTenant() *models.TenantContext {
	return &models.TenantContext{
		Aliases:     map[string]string{"classic_cut": "haircut"},
		BookingMode: models.BookingModeService,
	}
}

func TestResolveSingleTurnFullySpecified(t *testing.T) {
	svc := newTestService(newFakeMemoryStore())
	resp, err := svc.Resolve(context.Background(), models.ResolveRequest{
		UserID: "u1",
		Text:   "book a haircut tomorrow at 4 pm",
		Entities: models.Entities{
			Services: []models.ServiceRef{{Text: "haircut", Canonical: "haircut"}},
			Dates:    []string{"tomorrow"},
			Times:    []string{"4 pm"},
		},
		Timezone:      "UTC",
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusResolved, resp.Status)
	assert.Equal(t, models.IntentCreateAppointment, resp.Intent.Name)
	assert.Nil(t, resp.Clarification)
	require.NotNil(t, resp.Booking.DatetimeRange)
	assert.Equal(t, "2026-10-22T16:00:00", resp.Booking.DatetimeRange.Start)
}

func TestResolveTwoTurnSlotFilling(t *testing.T) {
	store := newFakeMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, models.ResolveRequest{
		UserID: "u2",
		Text:   "book a haircut tomorrow",
		Entities: models.Entities{
			Services: []models.ServiceRef{{Text: "haircut", Canonical: "haircut"}},
			Dates:    []string{"tomorrow"},
		},
		Timezone:      "UTC",
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNeedsClarification, first.Status)
	require.NotNil(t, first.Clarification)
	assert.Equal(t, "What time would you like the haircut appointment?", first.ClarificationText)

	second, err := svc.Resolve(ctx, models.ResolveRequest{
		UserID: "u2",
		Text:   "5 pm works",
		Entities: models.Entities{
			Times: []string{"5 pm"},
		},
		Timezone:      "UTC",
		Now:           testNow.AddDate(0, 0, 0),
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusResolved, second.Status)
	assert.True(t, second.MemoryApplied)
	assert.Nil(t, second.Clarification)
	// The remembered creation intent is reported, not UNKNOWN.
	assert.Equal(t, models.IntentCreateAppointment, second.Intent.Name)
	require.NotNil(t, second.Booking.DatetimeRange)
	assert.Equal(t, "2026-10-22T17:00:00", second.Booking.DatetimeRange.Start)
	assert.Equal(t, "haircut", second.Booking.Services[0].Text)
}

func TestResolveResetPhraseAbandonsTask(t *testing.T) {
	store := newFakeMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, models.ResolveRequest{
		UserID: "u3",
		Domain: "service",
		Text:   "book a haircut tomorrow",
		Entities: models.Entities{
			Services: []models.ServiceRef{{Text: "haircut", Canonical: "haircut"}},
			Dates:    []string{"tomorrow"},
		},
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)
	require.NotNil(t, store.states["service/u3"])

	resp, err := svc.Resolve(ctx, models.ResolveRequest{
		UserID:        "u3",
		Domain:        "service",
		Text:          "never mind, forget that",
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)
	assert.False(t, resp.MemoryApplied)
}

func TestResolveCancelClearsMemory(t *testing.T) {
	store := newFakeMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, models.ResolveRequest{
		UserID: "u4",
		Domain: "service",
		Text:   "book a haircut tomorrow",
		Entities: models.Entities{
			Services: []models.ServiceRef{{Text: "haircut", Canonical: "haircut"}},
			Dates:    []string{"tomorrow"},
		},
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, models.ResolveRequest{
		UserID:        "u4",
		Domain:        "service",
		Text:          "cancel my booking, reference bk_12",
		Entities:      models.Entities{BookingID: "bk_12"},
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)
	assert.Nil(t, store.states["service/u4"])
}

func TestResolveUnsupportedServiceAsksToPickAnother(t *testing.T) {
	svc := newTestService(newFakeMemoryStore())
	resp, err := svc.Resolve(context.Background(), models.ResolveRequest{
		UserID: "u5",
		Text:   "book a massage tomorrow at 4 pm",
		Entities: models.Entities{
			Services: []models.ServiceRef{{Text: "massage", Canonical: "massage"}},
			Dates:    []string{"tomorrow"},
			Times:    []string{"4 pm"},
		},
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusNeedsClarification, resp.Status)
	require.NotNil(t, resp.Clarification)
	assert.Equal(t, models.ReasonUnsupportedService, resp.Clarification.Reason)
	assert.Equal(t, "That service isn't offered here. Would you like to pick another?", resp.ClarificationText)
}

func TestResolveStatelessWithoutMemory(t *testing.T) {
	svc := newTestService(nil)
	resp, err := svc.Resolve(context.Background(), models.ResolveRequest{
		UserID: "u6",
		Text:   "book a haircut tomorrow at 4 pm",
		Entities: models.Entities{
			Services: []models.ServiceRef{{Text: "haircut", Canonical: "haircut"}},
			Dates:    []string{"tomorrow"},
			Times:    []string{"4 pm"},
		},
		Now:           testNow,
		TenantContext: serviceTenant(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resp.Status)
	assert.Empty(t, resp.ResolvedBookingKey)
}
