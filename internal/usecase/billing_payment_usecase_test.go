package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type billingPaymentMocks struct {
	payments *mock_interfaces.MockIBillingPaymentRepository
	requests *mock_interfaces.MockIServiceRequestRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	clock    *mock_interfaces.MockIClock
}

func newBillingPaymentUseCase(t *testing.T) (*BillingPaymentUseCase, billingPaymentMocks) {
	ctrl := gomock.NewController(t)
	m := billingPaymentMocks{
		payments: mock_interfaces.NewMockIBillingPaymentRepository(ctrl),
		requests: mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		clock:    mock_interfaces.NewMockIClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	return NewBillingPaymentUseCase(m.payments, m.requests, m.gateway, m.clock), m
}

func TestBillingPaymentUseCase_ChargeInvoice(t *testing.T) {
	completed := entities.ServiceRequest{
		ID: "req-1", CustomerID: "cust-1", GarageID: "gar-1", MechanicID: "mech-1",
		Status: entities.RequestStatusCompleted, FinalTotal: 160, Version: 4,
	}
	payload := json.RawMessage(`{"token":"card-token","payer":{"email":"c@x.com"}}`)

	t.Run("invalid payload", func(t *testing.T) {
		uc, _ := newBillingPaymentUseCase(t)
		_, err := uc.ChargeInvoice(context.Background(), "req-1", json.RawMessage(`{broken`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("request not completed", func(t *testing.T) {
		uc, m := newBillingPaymentUseCase(t)
		open := completed
		open.Status = entities.RequestStatusInProgress
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(open, nil)

		_, err := uc.ChargeInvoice(context.Background(), "req-1", payload)
		if !errors.Is(err, ErrRequestNotCompleted) {
			t.Fatalf("expected ErrRequestNotCompleted, got %v", err)
		}
	})

	t.Run("amount forced to the stored final total", func(t *testing.T) {
		uc, m := newBillingPaymentUseCase(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completed, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var sent map[string]any
				if err := json.Unmarshal(body, &sent); err != nil {
					t.Fatalf("gateway payload is not valid JSON: %v", err)
				}
				if sent["transaction_amount"] != float64(160) {
					t.Fatalf("expected transaction_amount 160, got %v", sent["transaction_amount"])
				}
				if sent["external_reference"] != "req-1" {
					t.Fatalf("expected external_reference req-1, got %v", sent["external_reference"])
				}
				if sent["token"] != "card-token" {
					t.Fatalf("caller payload fields must survive enrichment: %v", sent)
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)
		m.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
				if p.ID != "pay-1" || p.ServiceRequestID != "req-1" || p.Amount != 160 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved || !p.Date.Equal(testNow) {
					t.Fatalf("unexpected payment status/date: %+v", p)
				}
				return p, nil
			},
		)

		// The caller tries to pay 1; the stored invoice wins.
		tampered := json.RawMessage(`{"token":"card-token","transaction_amount":1}`)
		res, err := uc.ChargeInvoice(context.Background(), "req-1", tampered)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 160 {
			t.Fatalf("expected amount 160, got %+v", res)
		}
	})

	t.Run("gateway errors classified", func(t *testing.T) {
		cases := []struct {
			name string
			body string
			want error
		}{
			{"customer not found", `{"message":"Customer not found","code":2002}`, ErrPaymentGatewayCustomerNotFound},
			{"invalid users", `{"message":"Invalid users involved","code":2034}`, ErrPaymentGatewayInvalidUsers},
			{"unauthorized", `{"error":"unauthorized","status":401}`, ErrPaymentGatewayUnauthorized},
			{"bad request", `{"error":"bad_request","status":400}`, ErrPaymentGatewayBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, m := newBillingPaymentUseCase(t)
				m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completed, nil)
				m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(tc.body))

				_, err := uc.ChargeInvoice(context.Background(), "req-1", payload)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("unclassified gateway error passes through", func(t *testing.T) {
		uc, m := newBillingPaymentUseCase(t)
		boom := errors.New("connection reset")
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(completed, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, boom)

		_, err := uc.ChargeInvoice(context.Background(), "req-1", payload)
		if !errors.Is(err, boom) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_ListByServiceRequestID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newBillingPaymentUseCase(t)
		_, err := uc.ListByServiceRequestID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		uc, m := newBillingPaymentUseCase(t)
		m.payments.EXPECT().ListByServiceRequestID(gomock.Any(), "req-1").Return([]entities.BillingPayment{{ID: "pay-1"}}, nil)

		out, err := uc.ListByServiceRequestID(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "pay-1" {
			t.Fatalf("unexpected payments: %+v", out)
		}
	})
}
