package historyRepo

import (
	"bookwise/database"
	"bookwise/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// ResolutionHistoryRepository archives resolved bookings for audit and
// inspection.
type ResolutionHistoryRepository interface {
	Create(ctx context.Context, record models.ResolutionRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.ResolutionRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.ResolutionRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoHistoryRepo struct {
	coll *mongo.Collection
}

// NewMongoHistoryRepo returns a new ResolutionHistoryRepository instance using MongoDB.
func NewMongoHistoryRepo() ResolutionHistoryRepository {
	return &mongoHistoryRepo{
		coll: database.Collection("resolution_history"),
	}
}
