package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shopapi/internal/models"
)

// orderDocument is the persisted shape of an order.
type orderDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// MongoOrderRepository is a MongoDB implementation of OrderRepository over
// the "order" collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new MongoOrderRepository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("order"),
	}
}

// Create persists a new order and returns the assigned identifier.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	now := time.Now().UTC()
	doc := orderDocument{
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Status:    order.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	order.ID = oid.Hex()
	return order.ID, nil
}
