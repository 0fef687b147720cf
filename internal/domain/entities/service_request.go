package entities

import "time"

// RequestStatus represents the lifecycle of a service request (ordem de serviço).
//
// Domain notes:
//   - The workflow engine is the source of truth for request state.
//   - Transitions follow a fixed graph; there is no skipping of stages.

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusAccepted   RequestStatus = "ACCEPTED"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusCancelled  RequestStatus = "CANCELLED"
)

// statusGraph is the full transition graph. Terminal statuses have no
// outgoing edges.
var statusGraph = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusAccepted, RequestStatusCancelled},
	RequestStatusAccepted:   {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusCompleted:  {},
	RequestStatusCancelled:  {},
}

func (s RequestStatus) Valid() bool {
	_, ok := statusGraph[s]
	return ok
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, next := range statusGraph[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status forbids any further mutation of the
// request or its checkpoints/items.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// IsOpen reports whether the request still blocks a new request for the same
// vehicle (one open request per vehicle).
func (s RequestStatus) IsOpen() bool {
	return s == RequestStatusPending || s == RequestStatusAccepted || s == RequestStatusInProgress
}

// Coordinates is the customer-reported location of the vehicle at request
// creation time.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// ServiceRequest is the root aggregate of the fulfillment workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// Concurrency:
//   - Version is a monotonically increasing counter; every status write is
//     conditioned on the expected version so concurrent writers serialize
//     around the status field.
//
// Invariant: MechanicID is non-empty iff Status ∈ {ACCEPTED, IN_PROGRESS, COMPLETED}.

type ServiceRequest struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	GarageID    string        `json:"garage_id"`
	VehicleID   string        `json:"vehicle_id"`
	MechanicID  string        `json:"mechanic_id,omitempty"`
	Status      RequestStatus `json:"status"`
	Coordinates Coordinates   `json:"coordinates"`

	// FinalTotal is written once, by completion, and is the amount the
	// billing payment charges afterwards.
	FinalTotal float64 `json:"final_total,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
