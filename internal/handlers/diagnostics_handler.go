package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// DiagnosticsStore is the view of the document store the diagnostics route
// needs. A nil DiagnosticsStore means no store was configured at startup.
type DiagnosticsStore interface {
	// Initialized reports whether a database handle exists.
	Initialized() bool
	// Collections lists the collection names in the database.
	Collections(ctx context.Context) ([]string, error)
}

// DiagnosticsHandler reports backend and document store health. It never
// fails a request: every store error is folded into the response body.
type DiagnosticsHandler struct {
	store DiagnosticsStore
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler. store may be nil
// when no document store is configured.
func NewDiagnosticsHandler(store DiagnosticsStore) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store: store,
	}
}

// RegisterRoutes registers the diagnostics route with the Fiber app.
func (h *DiagnosticsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/test", h.HandleDiagnostics)
}

// HandleDiagnostics checks store connectivity and configuration presence.
func (h *DiagnosticsHandler) HandleDiagnostics(c *fiber.Ctx) error {
	resp := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	switch {
	case h.store == nil:
		resp["database"] = "not available (store not configured)"
	case !h.store.Initialized():
		resp["database"] = "available but not initialized"
	default:
		resp["database"] = "available"
		resp["connection_status"] = "connected"

		names, err := h.store.Collections(c.Context())
		if err != nil {
			resp["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "connected and working"
		}
	}

	// Presence only: the configured values are never revealed.
	if viper.GetString("DATABASE_URL") != "" {
		resp["database_url"] = "set"
	}
	if viper.GetString("DATABASE_NAME") != "" {
		resp["database_name"] = "set"
	}

	return c.JSON(resp)
}

// truncate shortens s to at most n characters, keeping multibyte runes
// intact.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
