package usecase

import (
	"errors"
	"fmt"
)

// Error kinds of the workflow. Every operation error wraps exactly one of
// these so handlers can map to an HTTP status with errors.Is and callers
// always receive a kind plus message, never a silent partial success.
var (
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
)

var (
	ErrRequestNotFound        = fmt.Errorf("service request %w", ErrNotFound)
	ErrGarageNotFound         = fmt.Errorf("garage %w", ErrNotFound)
	ErrVehicleNotFound        = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrMechanicNotFound       = fmt.Errorf("mechanic %w", ErrNotFound)
	ErrCheckpointNotFound     = fmt.Errorf("checkpoint %w", ErrNotFound)
	ErrItemNotFound           = fmt.Errorf("service item %w", ErrNotFound)
	ErrCatalogServiceNotFound = fmt.Errorf("catalog service %w", ErrNotFound)
	ErrPaymentNotFound        = fmt.Errorf("billing payment %w", ErrNotFound)

	ErrActorNotAllowed  = fmt.Errorf("%w for this actor", ErrPermissionDenied)
	ErrVehicleNotOwned  = fmt.Errorf("vehicle belongs to another customer: %w", ErrPermissionDenied)
	ErrMechanicInactive = fmt.Errorf("mechanic not approved for this garage: %w", ErrPermissionDenied)

	ErrOpenRequestExists = fmt.Errorf("vehicle already has an open service request: %w", ErrConflict)
	ErrConcurrentUpdate  = fmt.Errorf("service request was modified concurrently: %w", ErrConflict)

	ErrRequestClosed       = fmt.Errorf("service request is terminal: %w", ErrInvalidState)
	ErrRequestNotBillable  = fmt.Errorf("service request not accepted or in progress: %w", ErrInvalidState)
	ErrRequestNotCompleted = fmt.Errorf("service request not completed: %w", ErrInvalidState)
	ErrItemAlreadyFinished = fmt.Errorf("ongoing item already finished: %w", ErrInvalidState)
	ErrItemAlreadyApproved = fmt.Errorf("additional item already approved: %w", ErrInvalidState)
	ErrCheckpointFinal     = fmt.Errorf("final checkpoint is an audit record: %w", ErrInvalidState)

	ErrInvalidID          = fmt.Errorf("%w: missing or blank id", ErrInvalidInput)
	ErrInvalidCoordinates = fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	ErrInvalidDescription = fmt.Errorf("%w: missing description", ErrInvalidInput)
	ErrInvalidPrice       = fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	ErrInvalidDate        = fmt.Errorf("%w: missing expected date", ErrInvalidInput)
	ErrInvalidCharges     = fmt.Errorf("%w: charges and discount must not be negative", ErrInvalidInput)
	ErrNegativeTotal      = fmt.Errorf("%w: discount exceeds invoice total", ErrInvalidInput)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown target status", ErrInvalidInput)

	ErrCompletionViaStatus = fmt.Errorf("%w: COMPLETED is reached through the completion operation", ErrInvalidTransition)
)
