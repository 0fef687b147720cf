package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// CompletionWrite is the single atomic write performed when a request is
// completed: the final audit checkpoint plus the status flip and final total,
// conditioned on the expected request version. Partial application is never
// observable.
type CompletionWrite struct {
	RequestID       string
	ExpectedVersion int64
	FinalTotal      float64
	FinalCheckpoint entities.Checkpoint
}

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Lookup methods return the zero value (ID == "") when nothing matches.
// Conditional writes return the zero value when the version condition fails;
// the caller decides whether that means NotFound or a concurrent-writer
// conflict.

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	// FindOpenByVehicleID returns the open (PENDING/ACCEPTED/IN_PROGRESS)
	// request for the vehicle, if any.
	FindOpenByVehicleID(ctx context.Context, vehicleID string) (entities.ServiceRequest, error)
	// UpdateStatus writes status conditioned on expectedVersion, bumping the
	// version. A non-empty mechanicID is written as the assignment;
	// clearMechanic removes any stored assignment instead (cancellation must
	// not leave a mechanic on the record).
	UpdateStatus(ctx context.Context, id string, expectedVersion int64, status entities.RequestStatus, mechanicID string, clearMechanic bool) (entities.ServiceRequest, error)
	// Complete applies the completion write as one transaction.
	Complete(ctx context.Context, w CompletionWrite) (entities.ServiceRequest, error)
}
