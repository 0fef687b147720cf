package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type serviceItemMocks struct {
	items       *mock_interfaces.MockIServiceItemRepository
	checkpoints *mock_interfaces.MockICheckpointRepository
	requests    *mock_interfaces.MockIServiceRequestRepository
	directory   *mock_interfaces.MockIDirectory
	catalog     *mock_interfaces.MockICatalog
	notifier    *mock_interfaces.MockINotificationDispatcher
	clock       *mock_interfaces.MockIClock
}

func newServiceItemUseCase(t *testing.T) (*ServiceItemUseCase, serviceItemMocks) {
	ctrl := gomock.NewController(t)
	m := serviceItemMocks{
		items:       mock_interfaces.NewMockIServiceItemRepository(ctrl),
		checkpoints: mock_interfaces.NewMockICheckpointRepository(ctrl),
		requests:    mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		directory:   mock_interfaces.NewMockIDirectory(ctrl),
		catalog:     mock_interfaces.NewMockICatalog(ctrl),
		notifier:    mock_interfaces.NewMockINotificationDispatcher(ctrl),
		clock:       mock_interfaces.NewMockIClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	m.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	uc := NewServiceItemUseCase(m.items, m.checkpoints, m.requests, m.directory, m.catalog, m.notifier, m.clock)
	return uc, m
}

var (
	itemRequest = entities.ServiceRequest{
		ID: "req-1", CustomerID: "cust-1", GarageID: "gar-1", MechanicID: "mech-1",
		Status: entities.RequestStatusInProgress, Version: 2,
	}
	itemCheckpoint = entities.Checkpoint{ID: "cp-1", ServiceRequestID: "req-1", MechanicID: "mech-1"}
	itemMechanic   = entities.Actor{ID: "mech-1", Role: entities.RoleMechanic}
	itemCustomer   = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	itemDate       = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

func TestServiceItemUseCase_AddOngoingItem(t *testing.T) {
	t.Run("negative price override", func(t *testing.T) {
		uc, _ := newServiceItemUseCase(t)
		_, err := uc.AddOngoingItem(context.Background(), "cp-1", itemMechanic, "svc-1", itemDate, -1)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("missing expected date", func(t *testing.T) {
		uc, _ := newServiceItemUseCase(t)
		_, err := uc.AddOngoingItem(context.Background(), "cp-1", itemMechanic, "svc-1", time.Time{}, 0)
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("terminal request", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		done := itemRequest
		done.Status = entities.RequestStatusCompleted
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(done, nil)

		_, err := uc.AddOngoingItem(context.Background(), "cp-1", itemMechanic, "svc-1", itemDate, 0)
		if !errors.Is(err, ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("unknown catalog service", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-9").Return(entities.CatalogService{}, nil)

		_, err := uc.AddOngoingItem(context.Background(), "cp-1", itemMechanic, "svc-9", itemDate, 0)
		if !errors.Is(err, ErrCatalogServiceNotFound) {
			t.Fatalf("expected ErrCatalogServiceNotFound, got %v", err)
		}
	})

	t.Run("snapshots catalog price", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(entities.CatalogService{ID: "svc-1", Name: "Oil change", Price: 80}, nil)
		m.items.EXPECT().CreateOngoing(gomock.Any(), gomock.AssignableToTypeOf(entities.OngoingItem{})).DoAndReturn(
			func(_ context.Context, it entities.OngoingItem) (entities.OngoingItem, error) {
				if it.PriceSnapshot != 80 || it.Name != "Oil change" || it.Finished {
					t.Fatalf("unexpected item: %+v", it)
				}
				return it, nil
			},
		)

		res, err := uc.AddOngoingItem(context.Background(), "cp-1", itemMechanic, "svc-1", itemDate, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CheckpointID != "cp-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("positive override wins over catalog price", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(entities.CatalogService{ID: "svc-1", Name: "Oil change", Price: 80}, nil)
		m.items.EXPECT().CreateOngoing(gomock.Any(), gomock.AssignableToTypeOf(entities.OngoingItem{})).DoAndReturn(
			func(_ context.Context, it entities.OngoingItem) (entities.OngoingItem, error) {
				if it.PriceSnapshot != 65.5 {
					t.Fatalf("expected negotiated price, got %+v", it)
				}
				return it, nil
			},
		)

		if _, err := uc.AddOngoingItem(context.Background(), "cp-1", itemMechanic, "svc-1", itemDate, 65.5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceItemUseCase_FinishOngoingItem(t *testing.T) {
	item := entities.OngoingItem{ID: "it-1", CheckpointID: "cp-1", Name: "Oil change", PriceSnapshot: 80}

	t.Run("already finished", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		finished := item
		finished.Finished = true
		m.items.EXPECT().GetOngoingByID(gomock.Any(), "it-1").Return(finished, nil)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)

		_, err := uc.FinishOngoingItem(context.Background(), "it-1", itemMechanic)
		if !errors.Is(err, ErrItemAlreadyFinished) {
			t.Fatalf("expected ErrItemAlreadyFinished, got %v", err)
		}
	})

	t.Run("racing finish loses the conditional write", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.items.EXPECT().GetOngoingByID(gomock.Any(), "it-1").Return(item, nil)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.items.EXPECT().FinishOngoing(gomock.Any(), "it-1").Return(entities.OngoingItem{}, nil)

		_, err := uc.FinishOngoingItem(context.Background(), "it-1", itemMechanic)
		if !errors.Is(err, ErrItemAlreadyFinished) {
			t.Fatalf("expected ErrItemAlreadyFinished, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.items.EXPECT().GetOngoingByID(gomock.Any(), "it-1").Return(item, nil)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		finished := item
		finished.Finished = true
		m.items.EXPECT().FinishOngoing(gomock.Any(), "it-1").Return(finished, nil)

		res, err := uc.FinishOngoingItem(context.Background(), "it-1", itemMechanic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Finished {
			t.Fatalf("expected finished item, got %+v", res)
		}
	})
}

func TestServiceItemUseCase_AdditionalItems(t *testing.T) {
	item := entities.AdditionalItem{ID: "it-1", CheckpointID: "cp-1", Name: "Brake pads", PriceSnapshot: 120}

	t.Run("customer cannot propose", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)

		_, err := uc.AddAdditionalItem(context.Background(), "cp-1", itemCustomer, "svc-2", 0)
		if !errors.Is(err, ErrActorNotAllowed) {
			t.Fatalf("expected ErrActorNotAllowed, got %v", err)
		}
	})

	t.Run("mechanic proposes unapproved item", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-2").Return(entities.CatalogService{ID: "svc-2", Name: "Brake pads", Price: 120}, nil)
		m.items.EXPECT().CreateAdditional(gomock.Any(), gomock.AssignableToTypeOf(entities.AdditionalItem{})).DoAndReturn(
			func(_ context.Context, it entities.AdditionalItem) (entities.AdditionalItem, error) {
				if it.Approved {
					t.Fatalf("additional item must start unapproved: %+v", it)
				}
				return it, nil
			},
		)

		res, err := uc.AddAdditionalItem(context.Background(), "cp-1", itemMechanic, "svc-2", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PriceSnapshot != 120 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("foreign garage admin cannot approve", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.items.EXPECT().GetAdditionalByID(gomock.Any(), "it-1").Return(item, nil)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.directory.EXPECT().GetGarage(gomock.Any(), "gar-1").Return(entities.Garage{ID: "gar-1", OwnerID: "admin-1"}, nil)

		_, err := uc.SetAdditionalItemApproval(context.Background(), "it-1", entities.Actor{ID: "admin-2", Role: entities.RoleGarageAdmin}, true)
		if !errors.Is(err, ErrActorNotAllowed) {
			t.Fatalf("expected ErrActorNotAllowed, got %v", err)
		}
	})

	t.Run("customer approves and declines", func(t *testing.T) {
		for _, approved := range []bool{true, false} {
			uc, m := newServiceItemUseCase(t)
			m.items.EXPECT().GetAdditionalByID(gomock.Any(), "it-1").Return(item, nil)
			m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
			m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
			updated := item
			updated.Approved = approved
			m.items.EXPECT().SetAdditionalApproval(gomock.Any(), "it-1", approved).Return(updated, nil)

			res, err := uc.SetAdditionalItemApproval(context.Background(), "it-1", itemCustomer, approved)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Approved != approved {
				t.Fatalf("expected approved=%v, got %+v", approved, res)
			}
		}
	})

	t.Run("remove approved item refused", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		approved := item
		approved.Approved = true
		m.items.EXPECT().GetAdditionalByID(gomock.Any(), "it-1").Return(approved, nil)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)

		err := uc.RemoveAdditionalItem(context.Background(), "it-1", itemMechanic)
		if !errors.Is(err, ErrItemAlreadyApproved) {
			t.Fatalf("expected ErrItemAlreadyApproved, got %v", err)
		}
	})

	t.Run("remove unapproved item", func(t *testing.T) {
		uc, m := newServiceItemUseCase(t)
		m.items.EXPECT().GetAdditionalByID(gomock.Any(), "it-1").Return(item, nil)
		m.checkpoints.EXPECT().GetByID(gomock.Any(), "cp-1").Return(itemCheckpoint, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(itemRequest, nil)
		m.items.EXPECT().DeleteAdditional(gomock.Any(), "it-1").Return(nil)

		if err := uc.RemoveAdditionalItem(context.Background(), "it-1", itemMechanic); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
