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

// IRequestLifecycleUseCase owns the request's top-level status state machine
// and mechanic assignment.
//
// Transition graph:
//   - PENDING    → ACCEPTED, CANCELLED
//   - ACCEPTED   → IN_PROGRESS, CANCELLED
//   - IN_PROGRESS → COMPLETED, CANCELLED
//   - COMPLETED / CANCELLED: terminal
//
// The COMPLETED edge is owned by the completion usecase (it settles the
// invoice); UpdateStatus refuses it. Cancelling drops the mechanic assignment
// so that an assignment exists only on ACCEPTED/IN_PROGRESS/COMPLETED requests.

type IRequestLifecycleUseCase interface {
	CreateRequest(ctx context.Context, actor entities.Actor, garageID, vehicleID string, coords entities.Coordinates) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, requestID string, actor entities.Actor, target entities.RequestStatus, mechanicID string) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, requestID string, actor entities.Actor) (entities.ServiceRequest, error)
}

type RequestLifecycleUseCase struct {
	requests  interfaces.IServiceRequestRepository
	directory interfaces.IDirectory
	notifier  interfaces.INotificationDispatcher
	clock     interfaces.IClock
}

var _ IRequestLifecycleUseCase = (*RequestLifecycleUseCase)(nil)

func NewRequestLifecycleUseCase(
	requests interfaces.IServiceRequestRepository,
	directory interfaces.IDirectory,
	notifier interfaces.INotificationDispatcher,
	clock interfaces.IClock,
) *RequestLifecycleUseCase {
	return &RequestLifecycleUseCase{requests: requests, directory: directory, notifier: notifier, clock: clock}
}

func (u *RequestLifecycleUseCase) CreateRequest(ctx context.Context, actor entities.Actor, garageID, vehicleID string, coords entities.Coordinates) (entities.ServiceRequest, error) {
	garageID = strings.TrimSpace(garageID)
	vehicleID = strings.TrimSpace(vehicleID)
	if garageID == "" || vehicleID == "" || strings.TrimSpace(actor.ID) == "" {
		return entities.ServiceRequest{}, ErrInvalidID
	}
	if !coords.Valid() {
		return entities.ServiceRequest{}, ErrInvalidCoordinates
	}

	// Creation precedes the request, so the ownership facts come from the
	// inputs: a customer may only open a request for themself.
	rel := authorization.Relate(actor, authorization.Ownership{CustomerID: actor.ID})
	if !authorization.Allowed(actor.Role, authorization.ActionRequestCreate, rel) {
		return entities.ServiceRequest{}, ErrActorNotAllowed
	}

	garage, err := u.directory.GetGarage(ctx, garageID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if garage.ID == "" || !garage.AcceptsRequests() {
		return entities.ServiceRequest{}, ErrGarageNotFound
	}

	vehicle, err := u.directory.GetVehicle(ctx, vehicleID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if vehicle.ID == "" {
		return entities.ServiceRequest{}, ErrVehicleNotFound
	}
	if vehicle.OwnerID != actor.ID {
		return entities.ServiceRequest{}, ErrVehicleNotOwned
	}

	// Enforce: 1 open request per vehicle. The lookup runs over an eventually
	// consistent GSI; two creates racing inside the propagation window can
	// both pass (accepted, see DESIGN.md).
	if open, err := u.requests.FindOpenByVehicleID(ctx, vehicleID); err != nil {
		return entities.ServiceRequest{}, err
	} else if open.ID != "" {
		return entities.ServiceRequest{}, ErrOpenRequestExists
	}

	now := u.clock.Now().UTC()
	r := entities.ServiceRequest{
		ID:          uuid.NewString(),
		CustomerID:  actor.ID,
		GarageID:    garageID,
		VehicleID:   vehicleID,
		Status:      entities.RequestStatusPending,
		Coordinates: coords,
		Version:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.requests.Create(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: garage.OwnerID,
		Kind:       entities.EventRequestCreated,
		Title:      "New service request",
		Message:    fmt.Sprintf("A new service request %s was opened for vehicle %s.", created.ID, vehicleID),
	}})
	return created, nil
}

func (u *RequestLifecycleUseCase) UpdateStatus(ctx context.Context, requestID string, actor entities.Actor, target entities.RequestStatus, mechanicID string) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidID
	}
	if !target.Valid() || target == entities.RequestStatusPending {
		return entities.ServiceRequest{}, ErrInvalidStatus
	}
	// Completion derives the final total and writes the audit checkpoint;
	// flipping the status directly would finalize with a zero invoice.
	if target == entities.RequestStatusCompleted {
		return entities.ServiceRequest{}, ErrCompletionViaStatus
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	rel := authorization.Relate(actor, ownership)
	if !authorization.Allowed(actor.Role, actionForTarget(target), rel) {
		return entities.ServiceRequest{}, ErrActorNotAllowed
	}

	if !req.Status.CanTransitionTo(target) {
		return entities.ServiceRequest{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, target)
	}

	assign := ""
	if target == entities.RequestStatusAccepted {
		assign, err = u.resolveAssignment(ctx, actor, req, mechanicID)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
	}
	// A cancelled request has no mechanic: the assignment is dropped together
	// with the status flip.
	clearMechanic := target == entities.RequestStatusCancelled

	updated, err := u.requests.UpdateStatus(ctx, req.ID, req.Version, target, assign, clearMechanic)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, ErrConcurrentUpdate
	}

	receiver := req.CustomerID
	if actor.Role == entities.RoleCustomer {
		// The customer triggered the change; tell the garage instead.
		g, gerr := u.directory.GetGarage(ctx, req.GarageID)
		if gerr == nil && g.OwnerID != "" {
			receiver = g.OwnerID
		}
	}
	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: receiver,
		Kind:       entities.EventRequestStatusChanged,
		Title:      "Service request updated",
		Message:    fmt.Sprintf("Service request %s is now %s.", updated.ID, updated.Status),
	}})
	return updated, nil
}

// resolveAssignment picks the mechanic written together with PENDING→ACCEPTED.
// A mechanic actor assigns themself; admins must name an approved mechanic of
// the request's garage.
func (u *RequestLifecycleUseCase) resolveAssignment(ctx context.Context, actor entities.Actor, req entities.ServiceRequest, mechanicID string) (string, error) {
	id := strings.TrimSpace(mechanicID)
	if actor.Role == entities.RoleMechanic {
		id = actor.ID
	}
	if id == "" {
		return "", ErrInvalidID
	}

	m, err := u.directory.GetMechanic(ctx, id)
	if err != nil {
		return "", err
	}
	if m.ID == "" {
		return "", ErrMechanicNotFound
	}
	if !m.Approved || m.GarageID != req.GarageID {
		return "", ErrMechanicInactive
	}
	return id, nil
}

func (u *RequestLifecycleUseCase) GetByID(ctx context.Context, requestID string, actor entities.Actor) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidID
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !authorization.Allowed(actor.Role, authorization.ActionRequestView, authorization.Relate(actor, ownership)) {
		return entities.ServiceRequest{}, ErrActorNotAllowed
	}
	return req, nil
}

// actionForTarget maps a target status to the matrix action guarding it.
// COMPLETED never reaches here; it is rejected before authorization.
func actionForTarget(target entities.RequestStatus) authorization.Action {
	switch target {
	case entities.RequestStatusAccepted:
		return authorization.ActionRequestAccept
	case entities.RequestStatusInProgress:
		return authorization.ActionRequestStart
	default:
		return authorization.ActionRequestCancel
	}
}
