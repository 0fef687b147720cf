package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type completionMocks struct {
	requests    *mock_interfaces.MockIServiceRequestRepository
	checkpoints *mock_interfaces.MockICheckpointRepository
	items       *mock_interfaces.MockIServiceItemRepository
	directory   *mock_interfaces.MockIDirectory
	notifier    *mock_interfaces.MockINotificationDispatcher
	clock       *mock_interfaces.MockIClock
}

func newCompletionUseCase(t *testing.T) (*CompletionUseCase, completionMocks) {
	ctrl := gomock.NewController(t)
	m := completionMocks{
		requests:    mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		checkpoints: mock_interfaces.NewMockICheckpointRepository(ctrl),
		items:       mock_interfaces.NewMockIServiceItemRepository(ctrl),
		directory:   mock_interfaces.NewMockIDirectory(ctrl),
		notifier:    mock_interfaces.NewMockINotificationDispatcher(ctrl),
		clock:       mock_interfaces.NewMockIClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	uc := NewCompletionUseCase(m.requests, m.checkpoints, m.items, m.directory, m.notifier, m.clock)
	return uc, m
}

var completionRequest = entities.ServiceRequest{
	ID: "req-1", CustomerID: "cust-1", GarageID: "gar-1", MechanicID: "mech-1",
	Status: entities.RequestStatusInProgress, Version: 3,
}

// expectApprovedSubtree wires a request with two checkpoints: one approved
// holding an ongoing item (100), an approved additional (50) and a declined
// additional (40), and one unapproved holding an ongoing item (30). Only the
// approved subtree bills, so the subtotal is 150.
func expectApprovedSubtree(m completionMocks) {
	m.checkpoints.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Checkpoint{
		{ID: "cp-1", ServiceRequestID: "req-1", Approved: true},
		{ID: "cp-2", ServiceRequestID: "req-1", Approved: false},
	}, nil)
	m.items.EXPECT().ListOngoingByCheckpointID(gomock.Any(), "cp-1").Return([]entities.OngoingItem{
		{ID: "it-1", CheckpointID: "cp-1", Name: "Oil change", PriceSnapshot: 100},
	}, nil)
	m.items.EXPECT().ListAdditionalByCheckpointID(gomock.Any(), "cp-1").Return([]entities.AdditionalItem{
		{ID: "it-2", CheckpointID: "cp-1", Name: "Brake pads", PriceSnapshot: 50, Approved: true},
		{ID: "it-3", CheckpointID: "cp-1", Name: "Wipers", PriceSnapshot: 40, Approved: false},
	}, nil)
}

func TestCompletionUseCase_GetSummary(t *testing.T) {
	mechanic := entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}

	t.Run("not billable after completion", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		done := completionRequest
		done.Status = entities.RequestStatusCompleted
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(done, nil)

		_, err := uc.GetSummary(context.Background(), "req-1", mechanic)
		if !errors.Is(err, ErrRequestNotBillable) {
			t.Fatalf("expected ErrRequestNotBillable, got %v", err)
		}
	})

	t.Run("sums only the approved subtree", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completionRequest, nil)
		expectApprovedSubtree(m)

		summary, err := uc.GetSummary(context.Background(), "req-1", mechanic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Subtotal != 150 {
			t.Fatalf("expected subtotal 150, got %v", summary.Subtotal)
		}
		if len(summary.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %+v", summary.Lines)
		}
		if summary.Lines[0].Kind != "ongoing" || summary.Lines[1].Kind != "additional" {
			t.Fatalf("unexpected line kinds: %+v", summary.Lines)
		}
	})

	t.Run("unassigned mechanic denied", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completionRequest, nil)
		m.directory.EXPECT().GetMechanic(gomock.Any(), "mech-9").Return(entities.Mechanic{ID: "mech-9", GarageID: "gar-9"}, nil)

		_, err := uc.GetSummary(context.Background(), "req-1", entities.Actor{ID: "mech-9", Role: entities.RoleMechanic})
		if !errors.Is(err, ErrActorNotAllowed) {
			t.Fatalf("expected ErrActorNotAllowed, got %v", err)
		}
	})
}

func TestCompletionUseCase_Complete(t *testing.T) {
	mechanic := entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}

	t.Run("negative charges", func(t *testing.T) {
		uc, _ := newCompletionUseCase(t)
		_, err := uc.Complete(context.Background(), "req-1", mechanic, "", -1, 0)
		if !errors.Is(err, ErrInvalidCharges) {
			t.Fatalf("expected ErrInvalidCharges, got %v", err)
		}
	})

	t.Run("double completion", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		done := completionRequest
		done.Status = entities.RequestStatusCompleted
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(done, nil)

		_, err := uc.Complete(context.Background(), "req-1", mechanic, "", 0, 0)
		if !errors.Is(err, ErrRequestNotBillable) {
			t.Fatalf("expected ErrRequestNotBillable, got %v", err)
		}
	})

	t.Run("discount exceeding the total", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completionRequest, nil)
		expectApprovedSubtree(m)

		_, err := uc.Complete(context.Background(), "req-1", mechanic, "", 0, 200)
		if !errors.Is(err, ErrNegativeTotal) {
			t.Fatalf("expected ErrNegativeTotal, got %v", err)
		}
	})

	t.Run("version race loses the transaction", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completionRequest, nil)
		expectApprovedSubtree(m)
		m.requests.EXPECT().Complete(gomock.Any(), gomock.AssignableToTypeOf(interfaces.CompletionWrite{})).Return(entities.ServiceRequest{}, nil)

		_, err := uc.Complete(context.Background(), "req-1", mechanic, "", 0, 0)
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("finalizes with derived total and audit checkpoint", func(t *testing.T) {
		uc, m := newCompletionUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completionRequest, nil)
		expectApprovedSubtree(m)
		m.requests.EXPECT().Complete(gomock.Any(), gomock.AssignableToTypeOf(interfaces.CompletionWrite{})).DoAndReturn(
			func(_ context.Context, w interfaces.CompletionWrite) (entities.ServiceRequest, error) {
				if w.RequestID != "req-1" || w.ExpectedVersion != 3 {
					t.Fatalf("unexpected write target: %+v", w)
				}
				if w.FinalTotal != 160 {
					t.Fatalf("expected final total 160, got %v", w.FinalTotal)
				}
				cp := w.FinalCheckpoint
				if !cp.Approved || !cp.Final || cp.ServiceRequestID != "req-1" || cp.MechanicID != "mech-1" {
					t.Fatalf("unexpected final checkpoint: %+v", cp)
				}
				done := completionRequest
				done.Status = entities.RequestStatusCompleted
				done.FinalTotal = w.FinalTotal
				done.Version = w.ExpectedVersion + 1
				return done, nil
			},
		)
		m.directory.EXPECT().GetGarage(gomock.Any(), "gar-1").Return(entities.Garage{ID: "gar-1", OwnerID: "admin-1"}, nil)

		res, err := uc.Complete(context.Background(), "req-1", mechanic, "all good", 20, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FinalTotal != 160 || res.Summary.Subtotal != 150 {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if res.Request.Status != entities.RequestStatusCompleted {
			t.Fatalf("expected completed request, got %+v", res.Request)
		}
	})
}
