package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// ICheckpointRepository abstracts DynamoDB persistence for Checkpoint.

type ICheckpointRepository interface {
	Create(ctx context.Context, c entities.Checkpoint) (entities.Checkpoint, error)
	GetByID(ctx context.Context, id string) (entities.Checkpoint, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Checkpoint, error)
	// SetApproval writes the approval flag and returns the updated
	// checkpoint, zero value when the checkpoint does not exist.
	SetApproval(ctx context.Context, id string, approved bool) (entities.Checkpoint, error)
}
