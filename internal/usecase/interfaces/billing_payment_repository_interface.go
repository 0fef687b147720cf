package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByServiceRequestID(ctx context.Context, requestID string) ([]entities.BillingPayment, error)
}
