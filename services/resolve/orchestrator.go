package resolve

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookwise/config"
	"bookwise/models"
	"bookwise/services/clarify"
	"bookwise/services/decision"
	"bookwise/services/memory"
	"bookwise/services/tasks"
	"bookwise/utils"
)

// Resolve runs the full pipeline for one turn.
func (s *DefaultResolveService) Resolve(ctx context.Context, req models.ResolveRequest) (*models.ResolveResponse, error) {
	logger := utils.GetLogger()

	domain := req.Domain
	if domain == "" {
		domain = config.AppConfig.DefaultDomain
	}
	tz := req.Timezone
	if tz == "" {
		tz = config.AppConfig.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", tz))
		loc = time.UTC
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	entities := req.Entities
	if entities.Sentence == "" {
		entities.Sentence = req.Text
	}

	// Continuity lookup. Reset phrases abandon the remembered task before
	// anything else looks at it.
	var state *models.MemoryState
	if s.Memory != nil {
		state, _ = s.Memory.Get(ctx, domain, req.UserID)
		if state != nil && memory.ContainsResetPhrase(req.Text) {
			_ = s.Memory.Clear(ctx, domain, req.UserID)
			state = nil
		}
	}

	bookingMode := ""
	if req.TenantContext != nil {
		bookingMode = req.TenantContext.BookingMode
	}
	if bookingMode == "" && state != nil {
		bookingMode = state.BookingMode
	}

	intentResult := s.Intents.Resolve(req.Text, &entities, bookingMode)

	// A slots-only turn ("actually make it 5pm") continues the remembered
	// booking and is reported under its original intent.
	effective := intentResult
	if memory.IsContextualUpdate(state, intentResult, &entities) {
		effective = models.IntentResult{
			Name:        state.Intent,
			Confidence:  intentResult.Confidence,
			BookingMode: state.BookingMode,
			MatchedOn:   "contextual_update",
		}
		if bookingMode == "" {
			bookingMode = state.BookingMode
		}
	}

	newTask := memory.IsNewTask(state, intentResult, req.Text)
	if newTask {
		state = nil
	}

	semantic := s.Semantics.Resolve(&entities, bookingMode)
	booking := semantic.Booking
	clarification := semantic.Clarification

	if bound := s.Binder.Bind(booking, clarification, effective.Name, now, loc); bound != nil {
		clarification = bound
	}

	turnClarification := clarification

	memoryApplied := false
	if state != nil {
		booking, clarification, memoryApplied = memory.MergeBookingState(state, booking, clarification)
	}

	result, trace := decision.Decide(booking, &entities, s.Policy, effective.Name, req.TenantContext)

	// The decision layer reports reasons; a clarification earlier in the
	// pipeline always carries more context, so it wins. A pending question
	// inherited from memory counts as answered once the turn resolves.
	if clarification == nil && result.Status == models.StatusNeedsClarification {
		clarification = clarificationFromDecision(result, trace, booking)
	}
	if result.Status == models.StatusResolved && turnClarification == nil {
		clarification = nil
	}

	status := result.Status
	if clarification != nil && status == models.StatusResolved {
		status = models.StatusNeedsClarification
		result.Reason = clarification.Reason
	}

	clarificationText := ""
	if clarification != nil {
		clarificationText, err = clarify.Render(clarification)
		if err != nil {
			return nil, fmt.Errorf("resolve: render clarification: %w", err)
		}
	}

	memoryKey := s.writeMemory(ctx, domain, req.UserID, effective, bookingMode, booking, clarification, status)

	response := &models.ResolveResponse{
		RequestID:          uuid.NewString(),
		Intent:             effective,
		Status:             status,
		Booking:            booking,
		Clarification:      clarification,
		ClarificationText:  clarificationText,
		EffectiveTime:      result.EffectiveTime,
		Trace:              trace,
		MemoryApplied:      memoryApplied,
		ResolvedBookingKey: memoryKey,
	}

	if status == models.StatusResolved {
		s.archive(req.UserID, domain, tz, effective.Name, booking)
	}

	logger.Debug("turn resolved",
		zap.String("userID", req.UserID),
		zap.String("intent", effective.Name),
		zap.String("status", status),
		zap.Bool("memoryApplied", memoryApplied))

	return response, nil
}

// writeMemory persists or clears continuity state for the turn and returns
// the memory key a remembered booking lives under, if any.
func (s *DefaultResolveService) writeMemory(ctx context.Context, domain, userID string, effective models.IntentResult, bookingMode string, booking *models.ResolvedBooking, clarification *models.Clarification, status string) string {
	if s.Memory == nil {
		return ""
	}
	if memory.ShouldClearMemory(effective.Name) {
		_ = s.Memory.Clear(ctx, domain, userID)
		return ""
	}
	if !config.BindingIntents[effective.Name] {
		return ""
	}
	next := memory.NextState(effective.Name, bookingMode, booking, clarification, status)
	_ = s.Memory.Set(ctx, domain, userID, next)
	return memory.Key(domain, userID)
}

// archive enqueues a write-behind history record for a resolved turn.
func (s *DefaultResolveService) archive(userID, domain, timezone, intentName string, booking *models.ResolvedBooking) {
	if s.Queue == nil {
		return
	}
	record := models.ResolutionRecord{
		UserID:   userID,
		Domain:   domain,
		Intent:   intentName,
		Booking:  booking,
		Timezone: timezone,
	}
	task, err := tasks.NewArchiveResolutionTask(record)
	if err != nil {
		utils.GetLogger().Error("failed to build archive task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Error("failed to enqueue archive task",
			zap.String("userID", userID), zap.Error(err))
	}
}

// clarificationFromDecision turns a decision reason into a renderable
// clarification, filling the data its template needs.
func clarificationFromDecision(result models.DecisionResult, trace *models.DecisionTrace, booking *models.ResolvedBooking) *models.Clarification {
	reason := result.Reason

	// Shape failures surface as a generic reason on the result; the trace
	// keeps the specific missing slot.
	if reason == "temporal_shape_not_satisfied" && trace != nil {
		reason = models.ReasonMissingTime
		for _, slot := range trace.MissingSlots {
			if slot == "date" {
				reason = models.ReasonMissingDate
			}
		}
	}

	data := map[string]any{}
	switch reason {
	case models.ReasonMissingTime, models.ReasonMissingDate:
		data["service"] = serviceText(booking)
		if booking != nil && booking.DateRange != nil && booking.DateRange.StartDate != "" {
			data["date"] = booking.DateRange.StartDate
		}
	case models.ReasonMultipleMatches:
		if trace != nil && trace.ServiceResolution != nil {
			data["options"] = trace.ServiceResolution.Options
		}
	}
	if trace != nil && len(trace.MissingSlots) > 0 {
		data["missing_slots"] = trace.MissingSlots
	}
	return models.NewClarification(reason, data)
}

func serviceText(booking *models.ResolvedBooking) string {
	if booking != nil && len(booking.Services) > 0 && booking.Services[0].Text != "" {
		return booking.Services[0].Text
	}
	return "appointment"
}
