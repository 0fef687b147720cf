package entities

// EventKind tags a DomainEvent for the notification service.
type EventKind string

const (
	EventRequestCreated         EventKind = "request_created"
	EventRequestStatusChanged   EventKind = "request_status_changed"
	EventCheckpointCreated      EventKind = "checkpoint_created"
	EventCheckpointDecision     EventKind = "checkpoint_decision"
	EventAdditionalItemProposed EventKind = "additional_item_proposed"
	EventAdditionalItemDecision EventKind = "additional_item_decision"
	EventAdditionalItemRemoved  EventKind = "additional_item_removed"
	EventRequestCompleted       EventKind = "request_completed"
)

// DomainEvent is an ephemeral notification emitted by the workflow usecases.
//
// Events are collected while a usecase runs and handed to the dispatcher only
// after the repository writes succeed (outbox style). They are never
// persisted by the core and their delivery is best-effort: a dispatch failure
// is logged and never rolled back into the originating mutation.

type DomainEvent struct {
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Kind       EventKind `json:"kind"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
}
