package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"

	"shopapi/internal/handlers"
	"shopapi/internal/repositories"
	"shopapi/internal/services"
	"shopapi/internal/store"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("PORT", "8000")
	viper.AutomaticEnv()

	port := viper.GetString("PORT")
	dbURL := viper.GetString("DATABASE_URL")
	dbName := viper.GetString("DATABASE_NAME")

	// --- Document Store ---
	// The store is optional: the API keeps serving without it and the data
	// routes report the unavailable state instead of failing at startup.
	var storeClient *store.Client
	if dbURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := store.Connect(ctx, store.Config{URL: dbURL, Name: dbName})
		cancel()
		if err != nil {
			log.Printf("Document store unavailable, serving without it: %v", err)
		} else {
			storeClient = client
		}
	} else {
		log.Println("DATABASE_URL not set, serving without a document store")
	}

	// --- Initialize Repositories ---
	var productRepo repositories.ProductRepository
	var orderRepo repositories.OrderRepository
	if db := storeClient.Database(); db != nil {
		productRepo = repositories.NewMongoProductRepository(db)
		orderRepo = repositories.NewMongoOrderRepository(db)
	}

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo)
	checkoutService := services.NewCheckoutService(orderRepo, productRepo)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	// A typed nil pointer inside the interface would defeat the handler's
	// nil check, so only hand over a client that exists.
	var diagnosticsStore handlers.DiagnosticsStore
	if storeClient != nil {
		diagnosticsStore = storeClient
	}
	diagnosticsHandler := handlers.NewDiagnosticsHandler(diagnosticsStore)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	// A wildcard origin cannot be combined with credentials, so reflect
	// whatever origin the request carries instead.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// --- Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from the shop backend!"})
	})
	app.Get("/api/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from the backend API!"})
	})
	diagnosticsHandler.RegisterRoutes(app)

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	checkoutHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	if storeClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := storeClient.Disconnect(ctx); err != nil {
			log.Printf("Error closing store connection: %v", err)
		}
		cancel()
	}

	log.Println("Server gracefully stopped")
}
