package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Create adds a new order and returns its assigned identifier.
func (r *MockOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = primitive.NewObjectID().Hex()
	r.orders = append(r.orders, *order)
	return order.ID, nil
}

// All returns every stored order, for test assertions.
func (r *MockOrderRepository) All() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}
