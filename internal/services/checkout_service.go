package services

import (
	"context"
	"fmt"

	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/store"
)

// CheckoutService handles the mock checkout flow. There is no payment
// provider behind it: every successful checkout records an order with
// status "paid".
type CheckoutService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewCheckoutService creates a new CheckoutService. The repositories may be
// nil when no document store is configured.
func NewCheckoutService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Checkout verifies the referenced product exists and records an order.
// Repeated identical requests create distinct orders: there is no
// idempotency key and no inventory decrement.
func (s *CheckoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if s.orderRepo == nil || s.productRepo == nil {
		return nil, fmt.Errorf("cannot checkout: %w", store.ErrUnavailable)
	}

	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	order := &models.Order{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Status:    models.OrderStatusPaid,
	}
	orderID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &models.CheckoutResponse{
		Status:  "success",
		Message: "Payment processed (demo)",
		OrderID: orderID,
	}, nil
}
