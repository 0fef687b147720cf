package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/authorization"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IServiceItemUseCase manages the checkpoint-nested billable items: ongoing
// (pre-agreed) work and additional (newly discovered) work.

type IServiceItemUseCase interface {
	AddOngoingItem(ctx context.Context, checkpointID string, actor entities.Actor, catalogServiceID string, expectedDate time.Time, price float64) (entities.OngoingItem, error)
	FinishOngoingItem(ctx context.Context, itemID string, actor entities.Actor) (entities.OngoingItem, error)
	AddAdditionalItem(ctx context.Context, checkpointID string, actor entities.Actor, catalogServiceID string, price float64) (entities.AdditionalItem, error)
	SetAdditionalItemApproval(ctx context.Context, itemID string, actor entities.Actor, approved bool) (entities.AdditionalItem, error)
	RemoveAdditionalItem(ctx context.Context, itemID string, actor entities.Actor) error
}

type ServiceItemUseCase struct {
	items       interfaces.IServiceItemRepository
	checkpoints interfaces.ICheckpointRepository
	requests    interfaces.IServiceRequestRepository
	directory   interfaces.IDirectory
	catalog     interfaces.ICatalog
	notifier    interfaces.INotificationDispatcher
	clock       interfaces.IClock
}

var _ IServiceItemUseCase = (*ServiceItemUseCase)(nil)

func NewServiceItemUseCase(
	items interfaces.IServiceItemRepository,
	checkpoints interfaces.ICheckpointRepository,
	requests interfaces.IServiceRequestRepository,
	directory interfaces.IDirectory,
	catalog interfaces.ICatalog,
	notifier interfaces.INotificationDispatcher,
	clock interfaces.IClock,
) *ServiceItemUseCase {
	return &ServiceItemUseCase{
		items:       items,
		checkpoints: checkpoints,
		requests:    requests,
		directory:   directory,
		catalog:     catalog,
		notifier:    notifier,
		clock:       clock,
	}
}

// loadCheckpointRequest resolves a checkpoint and its owning, non-terminal
// request. Every item mutation starts here.
func (u *ServiceItemUseCase) loadCheckpointRequest(ctx context.Context, checkpointID string) (entities.Checkpoint, entities.ServiceRequest, error) {
	cp, err := u.checkpoints.GetByID(ctx, checkpointID)
	if err != nil {
		return entities.Checkpoint{}, entities.ServiceRequest{}, err
	}
	if cp.ID == "" {
		return entities.Checkpoint{}, entities.ServiceRequest{}, ErrCheckpointNotFound
	}

	req, err := u.requests.GetByID(ctx, cp.ServiceRequestID)
	if err != nil {
		return entities.Checkpoint{}, entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.Checkpoint{}, entities.ServiceRequest{}, ErrRequestNotFound
	}
	if req.Status.IsTerminal() {
		return entities.Checkpoint{}, entities.ServiceRequest{}, ErrRequestClosed
	}
	return cp, req, nil
}

func (u *ServiceItemUseCase) authorize(ctx context.Context, actor entities.Actor, req entities.ServiceRequest, action authorization.Action) error {
	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return err
	}
	if !authorization.Allowed(actor.Role, action, authorization.Relate(actor, ownership)) {
		return ErrActorNotAllowed
	}
	return nil
}

// snapshotPrice resolves the catalog entry and picks the price persisted on
// the item. A positive override wins (negotiated price); otherwise the
// current catalog price is snapshotted.
func (u *ServiceItemUseCase) snapshotPrice(ctx context.Context, catalogServiceID string, override float64) (entities.CatalogService, float64, error) {
	svc, err := u.catalog.GetService(ctx, catalogServiceID)
	if err != nil {
		return entities.CatalogService{}, 0, err
	}
	if svc.ID == "" {
		return entities.CatalogService{}, 0, ErrCatalogServiceNotFound
	}

	price := svc.Price
	if override > 0 {
		price = override
	}
	if price <= 0 {
		return entities.CatalogService{}, 0, ErrInvalidPrice
	}
	return svc, price, nil
}

func (u *ServiceItemUseCase) AddOngoingItem(ctx context.Context, checkpointID string, actor entities.Actor, catalogServiceID string, expectedDate time.Time, price float64) (entities.OngoingItem, error) {
	checkpointID = strings.TrimSpace(checkpointID)
	catalogServiceID = strings.TrimSpace(catalogServiceID)
	if checkpointID == "" || catalogServiceID == "" {
		return entities.OngoingItem{}, ErrInvalidID
	}
	if price < 0 {
		return entities.OngoingItem{}, ErrInvalidPrice
	}
	if expectedDate.IsZero() {
		return entities.OngoingItem{}, ErrInvalidDate
	}

	cp, req, err := u.loadCheckpointRequest(ctx, checkpointID)
	if err != nil {
		return entities.OngoingItem{}, err
	}
	if err := u.authorize(ctx, actor, req, authorization.ActionOngoingAdd); err != nil {
		return entities.OngoingItem{}, err
	}

	svc, snapshot, err := u.snapshotPrice(ctx, catalogServiceID, price)
	if err != nil {
		return entities.OngoingItem{}, err
	}

	now := u.clock.Now().UTC()
	it := entities.OngoingItem{
		ID:               uuid.NewString(),
		CheckpointID:     cp.ID,
		CatalogServiceID: svc.ID,
		Name:             svc.Name,
		PriceSnapshot:    snapshot,
		ExpectedDate:     expectedDate.UTC(),
		Finished:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.items.CreateOngoing(ctx, it)
}

func (u *ServiceItemUseCase) FinishOngoingItem(ctx context.Context, itemID string, actor entities.Actor) (entities.OngoingItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.OngoingItem{}, ErrInvalidID
	}

	it, err := u.items.GetOngoingByID(ctx, itemID)
	if err != nil {
		return entities.OngoingItem{}, err
	}
	if it.ID == "" {
		return entities.OngoingItem{}, ErrItemNotFound
	}

	_, req, err := u.loadCheckpointRequest(ctx, it.CheckpointID)
	if err != nil {
		return entities.OngoingItem{}, err
	}
	if err := u.authorize(ctx, actor, req, authorization.ActionOngoingFinish); err != nil {
		return entities.OngoingItem{}, err
	}
	if it.Finished {
		return entities.OngoingItem{}, ErrItemAlreadyFinished
	}

	// The repository write is conditional on finished=false, so a racing
	// second finish also lands here.
	updated, err := u.items.FinishOngoing(ctx, it.ID)
	if err != nil {
		return entities.OngoingItem{}, err
	}
	if updated.ID == "" {
		return entities.OngoingItem{}, ErrItemAlreadyFinished
	}
	return updated, nil
}

func (u *ServiceItemUseCase) AddAdditionalItem(ctx context.Context, checkpointID string, actor entities.Actor, catalogServiceID string, price float64) (entities.AdditionalItem, error) {
	checkpointID = strings.TrimSpace(checkpointID)
	catalogServiceID = strings.TrimSpace(catalogServiceID)
	if checkpointID == "" || catalogServiceID == "" {
		return entities.AdditionalItem{}, ErrInvalidID
	}
	if price < 0 {
		return entities.AdditionalItem{}, ErrInvalidPrice
	}

	cp, req, err := u.loadCheckpointRequest(ctx, checkpointID)
	if err != nil {
		return entities.AdditionalItem{}, err
	}
	if err := u.authorize(ctx, actor, req, authorization.ActionAdditionalAdd); err != nil {
		return entities.AdditionalItem{}, err
	}

	svc, snapshot, err := u.snapshotPrice(ctx, catalogServiceID, price)
	if err != nil {
		return entities.AdditionalItem{}, err
	}

	now := u.clock.Now().UTC()
	it := entities.AdditionalItem{
		ID:               uuid.NewString(),
		CheckpointID:     cp.ID,
		CatalogServiceID: svc.ID,
		Name:             svc.Name,
		PriceSnapshot:    snapshot,
		Approved:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.items.CreateAdditional(ctx, it)
	if err != nil {
		return entities.AdditionalItem{}, err
	}

	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: req.CustomerID,
		Kind:       entities.EventAdditionalItemProposed,
		Title:      "Additional service proposed",
		Message:    fmt.Sprintf("Your mechanic found additional work (%s, %.2f) on request %s awaiting your approval.", svc.Name, snapshot, req.ID),
	}})
	return created, nil
}

func (u *ServiceItemUseCase) SetAdditionalItemApproval(ctx context.Context, itemID string, actor entities.Actor, approved bool) (entities.AdditionalItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.AdditionalItem{}, ErrInvalidID
	}

	it, err := u.items.GetAdditionalByID(ctx, itemID)
	if err != nil {
		return entities.AdditionalItem{}, err
	}
	if it.ID == "" {
		return entities.AdditionalItem{}, ErrItemNotFound
	}

	_, req, err := u.loadCheckpointRequest(ctx, it.CheckpointID)
	if err != nil {
		return entities.AdditionalItem{}, err
	}
	if err := u.authorize(ctx, actor, req, authorization.ActionAdditionalApprove); err != nil {
		return entities.AdditionalItem{}, err
	}

	updated, err := u.items.SetAdditionalApproval(ctx, it.ID, approved)
	if err != nil {
		return entities.AdditionalItem{}, err
	}
	if updated.ID == "" {
		return entities.AdditionalItem{}, ErrItemNotFound
	}

	var title, message string
	if approved {
		title = "Additional service approved"
		message = fmt.Sprintf("The additional service %s (%.2f) on request %s was approved.", it.Name, it.PriceSnapshot, req.ID)
	} else {
		title = "Additional service declined"
		message = fmt.Sprintf("The additional service %s on request %s was declined by the customer.", it.Name, req.ID)
	}
	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: req.MechanicID,
		Kind:       entities.EventAdditionalItemDecision,
		Title:      title,
		Message:    message,
	}})
	return updated, nil
}

func (u *ServiceItemUseCase) RemoveAdditionalItem(ctx context.Context, itemID string, actor entities.Actor) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidID
	}

	it, err := u.items.GetAdditionalByID(ctx, itemID)
	if err != nil {
		return err
	}
	if it.ID == "" {
		return ErrItemNotFound
	}

	_, req, err := u.loadCheckpointRequest(ctx, it.CheckpointID)
	if err != nil {
		return err
	}
	if err := u.authorize(ctx, actor, req, authorization.ActionAdditionalRemove); err != nil {
		return err
	}

	// A committed charge cannot be retracted unilaterally.
	if it.Approved {
		return ErrItemAlreadyApproved
	}

	if err := u.items.DeleteAdditional(ctx, it.ID); err != nil {
		return err
	}

	dispatchEvents(ctx, u.notifier, []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: req.CustomerID,
		Kind:       entities.EventAdditionalItemRemoved,
		Title:      "Additional service withdrawn",
		Message:    fmt.Sprintf("The proposed additional service %s on request %s was withdrawn.", it.Name, req.ID),
	}})
	return nil
}
