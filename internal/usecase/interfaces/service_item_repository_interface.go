package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IServiceItemRepository abstracts DynamoDB persistence for the two billable
// item kinds nested under checkpoints.
//
// FinishOngoing is conditional on the item not yet being finished; a failed
// condition returns the zero value so races on the monotonic flag surface to
// the caller.

type IServiceItemRepository interface {
	CreateOngoing(ctx context.Context, it entities.OngoingItem) (entities.OngoingItem, error)
	GetOngoingByID(ctx context.Context, id string) (entities.OngoingItem, error)
	ListOngoingByCheckpointID(ctx context.Context, checkpointID string) ([]entities.OngoingItem, error)
	FinishOngoing(ctx context.Context, id string) (entities.OngoingItem, error)

	CreateAdditional(ctx context.Context, it entities.AdditionalItem) (entities.AdditionalItem, error)
	GetAdditionalByID(ctx context.Context, id string) (entities.AdditionalItem, error)
	ListAdditionalByCheckpointID(ctx context.Context, checkpointID string) ([]entities.AdditionalItem, error)
	SetAdditionalApproval(ctx context.Context, id string, approved bool) (entities.AdditionalItem, error)
	DeleteAdditional(ctx context.Context, id string) error
}
