package models

// CheckoutRequest is the body of POST /api/checkout. Quantity defaults to 1
// when absent; out-of-range values are rejected, not clamped.
type CheckoutRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1,max=10"`
}

// NewCheckoutRequest returns a CheckoutRequest with defaults applied.
func NewCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{Quantity: 1}
}

// CheckoutResponse is the success body of POST /api/checkout.
type CheckoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}
