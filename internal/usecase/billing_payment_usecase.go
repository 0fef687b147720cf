package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidProviderPayload = fmt.Errorf("%w: invalid payment provider payload", ErrInvalidInput)
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")

	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase charges the final invoice of a completed request
// through the payment gateway and persists the approved payment.
//
// The charged amount is always the request's stored final total; whatever
// transaction amount the caller's payload carries is overwritten.

type IBillingPaymentUseCase interface {
	ChargeInvoice(ctx context.Context, requestID string, providerPayload json.RawMessage) (entities.BillingPayment, error)
	ListByServiceRequestID(ctx context.Context, requestID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	payments interfaces.IBillingPaymentRepository
	requests interfaces.IServiceRequestRepository
	gateway  interfaces.IPaymentGateway
	clock    interfaces.IClock
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	payments interfaces.IBillingPaymentRepository,
	requests interfaces.IServiceRequestRepository,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{payments: payments, requests: requests, gateway: gateway, clock: clock}
}

func (u *BillingPaymentUseCase) ChargeInvoice(ctx context.Context, requestID string, providerPayload json.RawMessage) (entities.BillingPayment, error) {
	log.Printf("[payment][usecase] charge-invoice start request_id=%q payload_len=%d", requestID, len(providerPayload))
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.BillingPayment{}, ErrInvalidID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.BillingPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrGatewayNotConfigured
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if req.ID == "" {
		return entities.BillingPayment{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusCompleted {
		log.Printf("[payment][usecase] request not completed request_id=%s status=%s", requestID, req.Status)
		return entities.BillingPayment{}, ErrRequestNotCompleted
	}

	// Enrich the payload with linkage fields; the source of truth for the
	// amount is the completed request in DB.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.BillingPayment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = req.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Service request %s", req.ID)
	}
	reqMap["transaction_amount"] = req.FinalTotal
	if b, err := json.Marshal(reqMap); err == nil {
		providerPayload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed request_id=%s err=%v", requestID, err)
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success request_id=%s provider_payment_id=%s provider_status=%s", requestID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed request_id=%s err=%v", requestID, err)
	}

	p := entities.BillingPayment{
		ID:                 providerPaymentID,
		ServiceRequestID:   req.ID,
		Amount:             req.FinalTotal,
		Date:               u.clock.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed request_id=%s payment_id=%s err=%v", requestID, p.ID, err)
		return entities.BillingPayment{}, err
	}
	log.Printf("[payment][usecase] charge-invoice success request_id=%s payment_id=%s status=%s", requestID, created.ID, created.Status)
	return created, nil
}

// classifyGatewayError translates well-known provider error bodies into
// stable sentinels. The provider SDK surfaces failures as raw JSON strings,
// so matching is by substring.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func (u *BillingPaymentUseCase) ListByServiceRequestID(ctx context.Context, requestID string) ([]entities.BillingPayment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidID
	}
	return u.payments.ListByServiceRequestID(ctx, requestID)
}
