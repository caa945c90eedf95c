package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/models"
	"shopapi/internal/services"
	"shopapi/internal/store"
)

// CheckoutHandler handles HTTP requests for the mock checkout flow.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// HandleCheckout validates the request, verifies the product exists, and
// records a paid order.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	req := models.NewCheckoutRequest()
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(validationErrors),
		})
	}

	resp, err := h.service.Checkout(c.Context(), req)
	if err != nil {
		log.Printf("Error processing checkout: %v", err)
		switch {
		case errors.Is(err, store.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid product_id",
			})
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		case errors.Is(err, store.ErrUnavailable):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Database not available",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not process checkout",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(resp)
}
