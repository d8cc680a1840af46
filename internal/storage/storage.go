package storage

import (
	"context"

	"items-api/internal/models"
	"items-api/internal/transport/dto"
)

// ItemRepository defines the interface for item data operations.
// Every method is a single atomic store operation.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error)
	// Update applies only the fields set in req.
	Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error)
	// Delete returns the item as it was before removal.
	Delete(ctx context.Context, id int64) (*models.Item, error)
}
