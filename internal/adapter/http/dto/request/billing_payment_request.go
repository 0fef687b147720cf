package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for charging a completed
// request's final invoice.
//
// `provider_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas.

type BillingPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
