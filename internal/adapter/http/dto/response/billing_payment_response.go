package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type BillingPaymentResponse struct {
	ID               string    `json:"id"`
	ServiceRequestID string    `json:"service_request_id"`
	Amount           float64   `json:"amount"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		ID:                 p.ID,
		ServiceRequestID:   p.ServiceRequestID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
