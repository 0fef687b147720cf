package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// INotificationDispatcher delivers domain events to the notification service.
//
// Delivery is best-effort and fire-and-forget relative to the core
// transaction: usecases call it only after their writes commit, log failures
// and never propagate them.

type INotificationDispatcher interface {
	Dispatch(ctx context.Context, e entities.DomainEvent) error
}
