package repositories

import (
	"context"

	"shopapi/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// only ever inserted, so there is no read side.
type OrderRepository interface {
	// Create persists a new order and returns its assigned identifier.
	Create(ctx context.Context, order *models.Order) (string, error)
}
