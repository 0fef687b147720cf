package entities

import "time"

// OngoingItem is a pre-agreed billable work unit attached to a checkpoint.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (checkpoint_id-index): checkpoint_id
//
// PriceSnapshot is the catalog price captured at creation time; later catalog
// price changes never affect it. Finished flips false→true exactly once.

type OngoingItem struct {
	ID               string    `json:"id"`
	CheckpointID     string    `json:"checkpoint_id"`
	CatalogServiceID string    `json:"catalog_service_id"`
	Name             string    `json:"name"`
	PriceSnapshot    float64   `json:"price_snapshot"`
	ExpectedDate     time.Time `json:"expected_date"`
	Finished         bool      `json:"finished"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AdditionalItem is newly discovered billable work. Unlike an OngoingItem it
// carries its own approval flag: the customer must accept the extra charge
// separately from the checkpoint approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (checkpoint_id-index): checkpoint_id

type AdditionalItem struct {
	ID               string    `json:"id"`
	CheckpointID     string    `json:"checkpoint_id"`
	CatalogServiceID string    `json:"catalog_service_id"`
	Name             string    `json:"name"`
	PriceSnapshot    float64   `json:"price_snapshot"`
	Approved         bool      `json:"approved"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
