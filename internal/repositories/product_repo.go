package repositories

import (
	"context"

	"shopapi/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns at most limit products in store order.
	List(ctx context.Context, limit int64) ([]models.Product, error)
	// GetByID returns store.ErrInvalidID for a malformed identifier without
	// touching the store, and store.ErrNotFound for an absent document.
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// Create persists a new product and returns its assigned identifier.
	Create(ctx context.Context, data models.ProductData) (string, error)
}
