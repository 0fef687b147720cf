package entities

import "time"

// Checkpoint is a mechanic-authored status update on a service request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_request_id-index): service_request_id
//
// Billing rule: items nested under a checkpoint only count toward the final
// invoice while Approved is true. The completion flow writes one last
// checkpoint with Final=true and Approved=true as an audit record; that one
// is not an approval gate.

type Checkpoint struct {
	ID               string    `json:"id"`
	ServiceRequestID string    `json:"service_request_id"`
	MechanicID       string    `json:"mechanic_id"`
	Description      string    `json:"description"`
	Approved         bool      `json:"approved"`
	Final            bool      `json:"final,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
