package entities

// Read models for the garage/vehicle directory and the service catalog.
//
// The workflow engine never mutates these; they are resolved from external
// read-only tables and used as creation/authorization preconditions.

// Garage is a registered workshop.
type Garage struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Approved  bool   `json:"approved"`
	Available bool   `json:"available"`
	Removed   bool   `json:"removed"`
}

// AcceptsRequests reports whether a new service request may target the garage.
func (g Garage) AcceptsRequests() bool {
	return g.Approved && g.Available && !g.Removed
}

// Vehicle is a customer-owned vehicle.
type Vehicle struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// Mechanic is a garage employee allowed to work on requests.
type Mechanic struct {
	ID       string `json:"id"`
	GarageID string `json:"garage_id"`
	Approved bool   `json:"approved"`
}

// CatalogService resolves a catalogServiceId to its current name and price.
// The price copied onto an item at creation time is a snapshot; later catalog
// changes do not touch existing items.
type CatalogService struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
