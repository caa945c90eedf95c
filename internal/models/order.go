package models

// OrderStatusPaid is the only status the mock checkout ever writes.
const OrderStatusPaid = "paid"

// Order represents a purchase intent created by checkout. Orders are
// insert-only: nothing in the API reads or updates them.
type Order struct {
	ID        string `json:"id" bson:"-"`
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	Status    string `json:"status" bson:"status"`
}
