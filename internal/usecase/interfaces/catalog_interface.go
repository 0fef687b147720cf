package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// ICatalog resolves catalog service ids to their current name and price.
// The price is copied onto items as a snapshot at creation time.

type ICatalog interface {
	GetService(ctx context.Context, id string) (entities.CatalogService, error)
}
