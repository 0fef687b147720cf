package usecase

import (
	"context"
	"fmt"
	"strings"

	"oficina_xpto/internal/domain/authorization"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CheckpointWithItems is a ledger entry: one checkpoint plus the billable
// items nested under it.
type CheckpointWithItems struct {
	Checkpoint      entities.Checkpoint      `json:"checkpoint"`
	OngoingItems    []entities.OngoingItem   `json:"ongoing_items"`
	AdditionalItems []entities.AdditionalItem `json:"additional_items"`
}

// IStatusUpdateUseCase manages mechanic-authored checkpoints and their
// customer-approval gate.

type IStatusUpdateUseCase interface {
	AddCheckpoint(ctx context.Context, requestID string, actor entities.Actor, description string) (entities.Checkpoint, error)
	SetCheckpointApproval(ctx context.Context, checkpointID string, actor entities.Actor, approved bool) (entities.Checkpoint, error)
	ListByRequest(ctx context.Context, requestID string, actor entities.Actor) ([]CheckpointWithItems, error)
}

type StatusUpdateUseCase struct {
	checkpoints interfaces.ICheckpointRepository
	items       interfaces.IServiceItemRepository
	requests    interfaces.IServiceRequestRepository
	directory   interfaces.IDirectory
	notifier    interfaces.INotificationDispatcher
	clock       interfaces.IClock
}

var _ IStatusUpdateUseCase = (*StatusUpdateUseCase)(nil)

func NewStatusUpdateUseCase(
	checkpoints interfaces.ICheckpointRepository,
	items interfaces.IServiceItemRepository,
	requests interfaces.IServiceRequestRepository,
	directory interfaces.IDirectory,
	notifier interfaces.INotificationDispatcher,
	clock interfaces.IClock,
) *StatusUpdateUseCase {
	return &StatusUpdateUseCase{
		checkpoints: checkpoints,
		items:       items,
		requests:    requests,
		directory:   directory,
		notifier:    notifier,
		clock:       clock,
	}
}

func (u *StatusUpdateUseCase) AddCheckpoint(ctx context.Context, requestID string, actor entities.Actor, description string) (entities.Checkpoint, error) {
	requestID = strings.TrimSpace(requestID)
	description = strings.TrimSpace(description)
	if requestID == "" {
		return entities.Checkpoint{}, ErrInvalidID
	}
	if description == "" {
		return entities.Checkpoint{}, ErrInvalidDescription
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if req.ID == "" {
		return entities.Checkpoint{}, ErrRequestNotFound
	}
	if req.Status.IsTerminal() {
		return entities.Checkpoint{}, ErrRequestClosed
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if !authorization.Allowed(actor.Role, authorization.ActionCheckpointAdd, authorization.Relate(actor, ownership)) {
		return entities.Checkpoint{}, ErrActorNotAllowed
	}

	now := u.clock.Now().UTC()
	c := entities.Checkpoint{
		ID:               uuid.NewString(),
		ServiceRequestID: req.ID,
		MechanicID:       req.MechanicID,
		Description:      description,
		Approved:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.checkpoints.Create(ctx, c)
	if err != nil {
		return entities.Checkpoint{}, err
	}

	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: req.CustomerID,
		Kind:       entities.EventCheckpointCreated,
		Title:      "New status update",
		Message:    fmt.Sprintf("Your mechanic posted a status update on request %s awaiting your approval.", req.ID),
	}})
	return created, nil
}

func (u *StatusUpdateUseCase) SetCheckpointApproval(ctx context.Context, checkpointID string, actor entities.Actor, approved bool) (entities.Checkpoint, error) {
	checkpointID = strings.TrimSpace(checkpointID)
	if checkpointID == "" {
		return entities.Checkpoint{}, ErrInvalidID
	}

	cp, err := u.checkpoints.GetByID(ctx, checkpointID)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if cp.ID == "" {
		return entities.Checkpoint{}, ErrCheckpointNotFound
	}
	if cp.Final {
		return entities.Checkpoint{}, ErrCheckpointFinal
	}

	req, err := u.requests.GetByID(ctx, cp.ServiceRequestID)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if req.ID == "" {
		return entities.Checkpoint{}, ErrRequestNotFound
	}
	if req.Status.IsTerminal() {
		return entities.Checkpoint{}, ErrRequestClosed
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if !authorization.Allowed(actor.Role, authorization.ActionCheckpointApprove, authorization.Relate(actor, ownership)) {
		return entities.Checkpoint{}, ErrActorNotAllowed
	}

	updated, err := u.checkpoints.SetApproval(ctx, cp.ID, approved)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if updated.ID == "" {
		return entities.Checkpoint{}, ErrCheckpointNotFound
	}

	outcome := "approved"
	if !approved {
		outcome = "declined"
	}
	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: req.MechanicID,
		Kind:       entities.EventCheckpointDecision,
		Title:      "Status update " + outcome,
		Message:    fmt.Sprintf("The status update on request %s was %s.", req.ID, outcome),
	}})
	return updated, nil
}

func (u *StatusUpdateUseCase) ListByRequest(ctx context.Context, requestID string, actor entities.Actor) ([]CheckpointWithItems, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidID
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, ErrRequestNotFound
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return nil, err
	}
	if !authorization.Allowed(actor.Role, authorization.ActionRequestView, authorization.Relate(actor, ownership)) {
		return nil, ErrActorNotAllowed
	}

	cps, err := u.checkpoints.ListByRequestID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	out := make([]CheckpointWithItems, 0, len(cps))
	for _, cp := range cps {
		ongoing, err := u.items.ListOngoingByCheckpointID(ctx, cp.ID)
		if err != nil {
			return nil, err
		}
		additional, err := u.items.ListAdditionalByCheckpointID(ctx, cp.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CheckpointWithItems{Checkpoint: cp, OngoingItems: ongoing, AdditionalItems: additional})
	}
	return out, nil
}
