package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for invoice payments.

type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// ChargeInvoice godoc
// @Summary      Charge the final invoice of a completed request
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request_id  path      string  true  "Service request ID"
// @Success      200         {object}  response.BillingPaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /v1/payments/{request_id} [post]
func (h *BillingPaymentHandler) ChargeInvoice(c *gin.Context) {
	requestID := c.Param("request_id")
	log.Printf("[payment][handler] charge start request_id=%s", requestID)
	mockMode := isPaymentGatewayMockEnabled()
	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload request_id=%s err=%v", requestID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload request_id=%s err=%v", requestID, err)
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.ChargeInvoice(c.Request.Context(), requestID, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] charge failed request_id=%s err=%v", requestID, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success request_id=%s payment_id=%s status=%s", requestID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPayment godoc
// @Summary      Fetch the latest payment of a request
// @Tags         payments
// @Produce      json
// @Param        request_id  path      string  true  "Service request ID"
// @Success      200         {object}  response.BillingPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/payments/{request_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	requestID := c.Param("request_id")
	log.Printf("[payment][handler] get start request_id=%s", requestID)

	payments, err := h.usecase.ListByServiceRequestID(c.Request.Context(), requestID)
	if err != nil {
		log.Printf("[payment][handler] get failed request_id=%s err=%v", requestID, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get not-found request_id=%s", requestID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get success request_id=%s payment_id=%s status=%s", requestID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this payment provider context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRequestNotCompleted):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_COMPLETED", "Service request not completed", http.StatusUnprocessableEntity)
	default:
		return mapWorkflowError(err)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
