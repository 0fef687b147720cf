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

// InvoiceLine is one billable entry of the final invoice.
type InvoiceLine struct {
	ItemID           string  `json:"item_id"`
	CheckpointID     string  `json:"checkpoint_id"`
	CatalogServiceID string  `json:"catalog_service_id"`
	Name             string  `json:"name"`
	Kind             string  `json:"kind"` // "ongoing" | "additional"
	Price            float64 `json:"price"`
}

// InvoiceSummary is the itemized breakdown of the approved subtree.
type InvoiceSummary struct {
	RequestID string        `json:"request_id"`
	Lines     []InvoiceLine `json:"lines"`
	Subtotal  float64       `json:"subtotal"`
}

// CompletionResult is what Complete returns after the atomic completion
// write: the finalized request plus the server-derived totals.
type CompletionResult struct {
	Request           entities.ServiceRequest `json:"request"`
	Summary           InvoiceSummary          `json:"summary"`
	AdditionalCharges float64                 `json:"additional_charges"`
	Discount          float64                 `json:"discount"`
	FinalTotal        float64                 `json:"final_total"`
}

// ICompletionUseCase aggregates approved items into a final invoice and
// finalizes the request.
//
// The subtotal is always re-derived from storage. A client-supplied total is
// never trusted, so a stale or tampered summary cannot change what gets
// billed.

type ICompletionUseCase interface {
	GetSummary(ctx context.Context, requestID string, actor entities.Actor) (InvoiceSummary, error)
	Complete(ctx context.Context, requestID string, actor entities.Actor, notes string, additionalCharges, discount float64) (CompletionResult, error)
}

type CompletionUseCase struct {
	requests    interfaces.IServiceRequestRepository
	checkpoints interfaces.ICheckpointRepository
	items       interfaces.IServiceItemRepository
	directory   interfaces.IDirectory
	notifier    interfaces.INotificationDispatcher
	clock       interfaces.IClock
}

var _ ICompletionUseCase = (*CompletionUseCase)(nil)

func NewCompletionUseCase(
	requests interfaces.IServiceRequestRepository,
	checkpoints interfaces.ICheckpointRepository,
	items interfaces.IServiceItemRepository,
	directory interfaces.IDirectory,
	notifier interfaces.INotificationDispatcher,
	clock interfaces.IClock,
) *CompletionUseCase {
	return &CompletionUseCase{
		requests:    requests,
		checkpoints: checkpoints,
		items:       items,
		directory:   directory,
		notifier:    notifier,
		clock:       clock,
	}
}

func (u *CompletionUseCase) GetSummary(ctx context.Context, requestID string, actor entities.Actor) (InvoiceSummary, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return InvoiceSummary{}, ErrInvalidID
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return InvoiceSummary{}, err
	}
	if req.ID == "" {
		return InvoiceSummary{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusAccepted && req.Status != entities.RequestStatusInProgress {
		return InvoiceSummary{}, ErrRequestNotBillable
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return InvoiceSummary{}, err
	}
	if !authorization.Allowed(actor.Role, authorization.ActionSummaryView, authorization.Relate(actor, ownership)) {
		return InvoiceSummary{}, ErrActorNotAllowed
	}

	return u.buildSummary(ctx, req)
}

// buildSummary walks the request's checkpoints and sums the approved subtree:
// every ongoing item under an approved checkpoint, plus every approved
// additional item under an approved checkpoint. Nothing else counts.
func (u *CompletionUseCase) buildSummary(ctx context.Context, req entities.ServiceRequest) (InvoiceSummary, error) {
	cps, err := u.checkpoints.ListByRequestID(ctx, req.ID)
	if err != nil {
		return InvoiceSummary{}, err
	}

	summary := InvoiceSummary{RequestID: req.ID, Lines: []InvoiceLine{}}
	for _, cp := range cps {
		if !cp.Approved || cp.Final {
			continue
		}

		ongoing, err := u.items.ListOngoingByCheckpointID(ctx, cp.ID)
		if err != nil {
			return InvoiceSummary{}, err
		}
		for _, it := range ongoing {
			summary.Lines = append(summary.Lines, InvoiceLine{
				ItemID:           it.ID,
				CheckpointID:     cp.ID,
				CatalogServiceID: it.CatalogServiceID,
				Name:             it.Name,
				Kind:             "ongoing",
				Price:            it.PriceSnapshot,
			})
			summary.Subtotal += it.PriceSnapshot
		}

		additional, err := u.items.ListAdditionalByCheckpointID(ctx, cp.ID)
		if err != nil {
			return InvoiceSummary{}, err
		}
		for _, it := range additional {
			if !it.Approved {
				continue
			}
			summary.Lines = append(summary.Lines, InvoiceLine{
				ItemID:           it.ID,
				CheckpointID:     cp.ID,
				CatalogServiceID: it.CatalogServiceID,
				Name:             it.Name,
				Kind:             "additional",
				Price:            it.PriceSnapshot,
			})
			summary.Subtotal += it.PriceSnapshot
		}
	}
	return summary, nil
}

func (u *CompletionUseCase) Complete(ctx context.Context, requestID string, actor entities.Actor, notes string, additionalCharges, discount float64) (CompletionResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return CompletionResult{}, ErrInvalidID
	}
	if additionalCharges < 0 || discount < 0 {
		return CompletionResult{}, ErrInvalidCharges
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return CompletionResult{}, err
	}
	if req.ID == "" {
		return CompletionResult{}, ErrRequestNotFound
	}
	// A second completion lands here: COMPLETED is not billable.
	if req.Status != entities.RequestStatusAccepted && req.Status != entities.RequestStatusInProgress {
		return CompletionResult{}, ErrRequestNotBillable
	}

	ownership, err := resolveOwnership(ctx, u.directory, actor, req)
	if err != nil {
		return CompletionResult{}, err
	}
	if !authorization.Allowed(actor.Role, authorization.ActionRequestComplete, authorization.Relate(actor, ownership)) {
		return CompletionResult{}, ErrActorNotAllowed
	}

	summary, err := u.buildSummary(ctx, req)
	if err != nil {
		return CompletionResult{}, err
	}

	finalTotal := summary.Subtotal + additionalCharges - discount
	if finalTotal < 0 {
		return CompletionResult{}, ErrNegativeTotal
	}

	now := u.clock.Now().UTC()
	description := fmt.Sprintf(
		"Service completed. Subtotal %.2f, additional charges %.2f, discount %.2f, final total %.2f.",
		summary.Subtotal, additionalCharges, discount, finalTotal,
	)
	if notes = strings.TrimSpace(notes); notes != "" {
		description += " Notes: " + notes
	}

	// Audit record, not an approval gate: written pre-approved together with
	// the status flip in one transaction.
	finalCheckpoint := entities.Checkpoint{
		ID:               uuid.NewString(),
		ServiceRequestID: req.ID,
		MechanicID:       req.MechanicID,
		Description:      description,
		Approved:         true,
		Final:            true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	updated, err := u.requests.Complete(ctx, interfaces.CompletionWrite{
		RequestID:       req.ID,
		ExpectedVersion: req.Version,
		FinalTotal:      finalTotal,
		FinalCheckpoint: finalCheckpoint,
	})
	if err != nil {
		return CompletionResult{}, err
	}
	if updated.ID == "" {
		return CompletionResult{}, ErrConcurrentUpdate
	}

	events := []entities.DomainEvent{{
		SenderID:   actor.ID,
		ReceiverID: req.CustomerID,
		Kind:       entities.EventRequestCompleted,
		Title:      "Service completed",
		Message:    fmt.Sprintf("Service request %s was completed. Final total: %.2f.", req.ID, finalTotal),
	}}
	if g, gerr := u.directory.GetGarage(ctx, req.GarageID); gerr == nil && g.OwnerID != "" {
		events = append(events, entities.DomainEvent{
			SenderID:   actor.ID,
			ReceiverID: g.OwnerID,
			Kind:       entities.EventRequestCompleted,
			Title:      "Service completed",
			Message:    fmt.Sprintf("Service request %s at your garage was completed. Final total: %.2f.", req.ID, finalTotal),
		})
	}
	dispatchEvents(ctx, u.notifier, events)

	return CompletionResult{
		Request:           updated,
		Summary:           summary,
		AdditionalCharges: additionalCharges,
		Discount:          discount,
		FinalTotal:        finalTotal,
	}, nil
}
