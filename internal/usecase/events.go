package usecase

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// dispatchEvents hands events collected during an operation to the
// notification dispatcher. It runs only after the repository writes have
// committed; failures are logged and never surfaced, so a broken notification
// sink cannot fail or roll back a core mutation.
func dispatchEvents(ctx context.Context, notifier interfaces.INotificationDispatcher, events []entities.DomainEvent) {
	if notifier == nil {
		return
	}
	for _, e := range events {
		if err := notifier.Dispatch(ctx, e); err != nil {
			log.Printf("[workflow][events] dispatch failed kind=%s receiver=%s err=%v", e.Kind, e.ReceiverID, err)
		}
	}
}
