package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tinysteps/session-service/internal/api/http/handler"
	"github.com/tinysteps/session-service/internal/api/http/middleware"
	pasetotoken "github.com/tinysteps/session-service/pkg/paseto"
)

func (r *Router) registerOfferingRoutes(
	api fiber.Router,
	h *handler.OfferingHandler,
	authRequired fiber.Handler,
) {
	offerings := api.Group("/session-offerings", authRequired)
	manage := middleware.RequireRole(pasetotoken.RoleAdmin, pasetotoken.RoleBranchManager)

	offerings.Get("/", h.Search)
	offerings.Get("/my-branch", h.MyBranchOfferings)
	offerings.Get("/doctor/:doctorId", h.ByDoctor)
	offerings.Get("/statistics", manage, h.AllBranchStatistics)
	offerings.Get("/statistics/my-branch", manage, h.MyBranchStatistics)
	offerings.Get("/statistics/branch/:branchId", manage, h.BranchStatistics)
	offerings.Get("/:id", h.GetByID)

	offerings.Post("/", manage, h.Create)
	offerings.Post("/bulk", manage, h.BulkCreate)
	offerings.Patch("/:id", manage, h.Update)
	offerings.Post("/:id/activate", manage, h.Activate)
	offerings.Post("/:id/deactivate", manage, h.Deactivate)
	offerings.Delete("/:id", manage, h.Delete)
}
