package repositories

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/internal/models"
	"shopapi/internal/store"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mints real ObjectID identifiers and keeps insertion order, so listing
// behaves like the store's unfiltered find.
type MockProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// List returns at most limit products in insertion order.
func (r *MockProductRepository) List(ctx context.Context, limit int64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := int64(len(r.products))
	if limit >= 0 && limit < n {
		n = limit
	}
	out := make([]models.Product, n)
	copy(out, r.products[:n])
	return out, nil
}

// GetByID returns a product by its identifier.
func (r *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if _, err := store.ParseID(id); err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
}

// Create adds a new product and returns its assigned identifier.
func (r *MockProductRepository) Create(ctx context.Context, data models.ProductData) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	r.products = append(r.products, models.Product{
		ID:          id,
		ProductData: data,
	})
	return id, nil
}
