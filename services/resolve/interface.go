// Package resolve orchestrates one conversational turn: continuity lookup,
// intent resolution, semantic resolution, calendar binding, memory merge, the
// decision layer and clarification rendering, in that order.
package resolve

import (
	"context"

	"github.com/hibiken/asynq"

	historyRepo "bookwise/database/repository/history"
	"bookwise/models"
	"bookwise/services/calendar"
	"bookwise/services/decision"
	"bookwise/services/intent"
	"bookwise/services/memory"
	"bookwise/services/semantics"
)

// ResolveService turns one user turn into a booking verdict.
type ResolveService interface {
	Resolve(ctx context.Context, req models.ResolveRequest) (*models.ResolveResponse, error)
}

// DefaultResolveService is the production pipeline with injected stages.
type DefaultResolveService struct {
	Intents   intent.IntentResolver
	Semantics semantics.SemanticResolver
	Binder    calendar.CalendarBinder
	Memory    memory.MemoryStore
	History   historyRepo.ResolutionHistoryRepository
	Queue     *asynq.Client
	Policy    decision.Policy
}

// NewDefaultResolveService wires the pipeline. Queue may be nil, in which
// case resolved turns are not archived.
func NewDefaultResolveService(
	intents intent.IntentResolver,
	sem semantics.SemanticResolver,
	binder calendar.CalendarBinder,
	store memory.MemoryStore,
	history historyRepo.ResolutionHistoryRepository,
	queue *asynq.Client,
	policy decision.Policy,
) *DefaultResolveService {
	return &DefaultResolveService{
		Intents:   intents,
		Semantics: sem,
		Binder:    binder,
		Memory:    store,
		History:   history,
		Queue:     queue,
		Policy:    policy,
	}
}
