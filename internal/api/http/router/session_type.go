package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tinysteps/session-service/internal/api/http/handler"
	"github.com/tinysteps/session-service/internal/api/http/middleware"
	pasetotoken "github.com/tinysteps/session-service/pkg/paseto"
)

func (r *Router) registerSessionTypeRoutes(
	api fiber.Router,
	h *handler.SessionTypeHandler,
	authRequired fiber.Handler,
) {
	types := api.Group("/session-types", authRequired)

	// Reads are open to any authenticated principal.
	types.Get("/", h.Search)
	types.Get("/exists", h.ExistsByName)
	types.Get("/statistics", h.Statistics)
	types.Get("/status/:status", h.ListByStatus)
	types.Get("/:id", h.GetByID)

	// Catalog management is an admin concern.
	adminOnly := middleware.RequireRole(pasetotoken.RoleAdmin)
	types.Post("/", adminOnly, h.Create)
	types.Patch("/:id", adminOnly, h.Update)
	types.Post("/:id/activate", adminOnly, h.Activate)
	types.Post("/:id/deactivate", adminOnly, h.Deactivate)
	types.Post("/:id/reactivate", adminOnly, h.Reactivate)
	types.Delete("/:id", adminOnly, h.Delete)
}
