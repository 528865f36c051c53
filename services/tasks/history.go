package tasks

import (
	"bookwise/models"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeArchiveResolution = "history:archive"

// NewArchiveResolutionTask builds the write-behind task that archives a
// resolved booking.
func NewArchiveResolutionTask(record models.ResolutionRecord) (*asynq.Task, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeArchiveResolution, b), nil
}
