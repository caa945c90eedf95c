package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopapi/internal/models"
	"shopapi/internal/store"
)

// productDocument is the persisted shape of a product. The timestamps are
// store-internal and never surface through the API.
type productDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	models.ProductData `bson:",inline"`
	CreatedAt          time.Time `bson:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

func (d productDocument) toModel() models.Product {
	return models.Product{
		ID:          d.ID.Hex(),
		ProductData: d.ProductData,
	}
}

// MongoProductRepository is a MongoDB implementation of ProductRepository
// over the "product" collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("product"),
	}
}

// List retrieves up to limit products with no filter, in store order.
func (r *MongoProductRepository) List(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

// GetByID retrieves a single product by its string identifier.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, err)
	}

	var doc productDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	product := doc.toModel()
	return &product, nil
}

// Create persists a new product and returns the assigned identifier.
func (r *MongoProductRepository) Create(ctx context.Context, data models.ProductData) (string, error) {
	now := time.Now().UTC()
	doc := productDocument{
		ProductData: data,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
