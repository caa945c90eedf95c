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

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Post("/products", h.HandleCreateProduct)
}

// HandleListProducts returns up to 100 products in store order.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		if errors.Is(err, store.ErrUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Database not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct validates the creation input, persists it, and
// returns only the newly assigned identifier.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input := models.NewProductData()
	if err := decodeStrict(c, &input); err != nil {
		if isUnknownFieldError(err) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(validationErrors),
		})
	}

	id, err := h.service.CreateProduct(c.Context(), input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		if errors.Is(err, store.ErrUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Database not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"id": id})
}
