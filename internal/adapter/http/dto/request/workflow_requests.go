package request

import "time"

// CreateServiceRequestRequest opens a new service request. Coordinates are
// plain fields (0 is a legal value); range validation happens in the usecase.
type CreateServiceRequestRequest struct {
	GarageID  string  `json:"garage_id" binding:"required"`
	VehicleID string  `json:"vehicle_id" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StatusUpdateRequest targets a new status. MechanicID is only read for
// admin-driven PENDING→ACCEPTED, where the admin names the mechanic.
type StatusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	MechanicID string `json:"mechanic_id"`
}

type CheckpointCreateRequest struct {
	Description string `json:"description" binding:"required"`
}

// ApprovalRequest carries an explicit boolean so that approve and revoke both
// travel through the same payload. A pointer distinguishes "absent" from
// "false".
type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type OngoingItemCreateRequest struct {
	CatalogServiceID string    `json:"catalog_service_id" binding:"required"`
	ExpectedDate     time.Time `json:"expected_date" binding:"required"`
	// Price overrides the catalog price when positive (negotiated price).
	Price float64 `json:"price"`
}

type AdditionalItemCreateRequest struct {
	CatalogServiceID string  `json:"catalog_service_id" binding:"required"`
	Price            float64 `json:"price"`
}

type CompletionRequest struct {
	Notes             string  `json:"notes"`
	AdditionalCharges float64 `json:"additional_charges"`
	Discount          float64 `json:"discount"`
}
