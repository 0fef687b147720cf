package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IDirectory is the read-only garage/vehicle/mechanic directory.
//
// The workflow consults it for creation and authorization preconditions only;
// all CRUD on these records lives in another service. Lookups return the zero
// value when the id is unknown.

type IDirectory interface {
	GetGarage(ctx context.Context, id string) (entities.Garage, error)
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	GetMechanic(ctx context.Context, id string) (entities.Mechanic, error)
}
