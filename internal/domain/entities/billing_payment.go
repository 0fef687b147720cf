package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// The workflow only ever persists an approved payment; the denied status
// exists for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is the payment charged for a completed request's final
// invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_request_id-index): service_request_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type BillingPayment struct {
	ID               string        `json:"id"`
	ServiceRequestID string        `json:"service_request_id"`
	Amount           float64       `json:"amount"`
	Date             time.Time     `json:"date"`
	Status           PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
