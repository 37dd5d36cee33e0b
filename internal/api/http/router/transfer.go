package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tinysteps/session-service/internal/api/http/handler"
	"github.com/tinysteps/session-service/internal/api/http/middleware"
	pasetotoken "github.com/tinysteps/session-service/pkg/paseto"
)

func (r *Router) registerTransferRoutes(
	api fiber.Router,
	h *handler.TransferHandler,
	authRequired fiber.Handler,
) {
	transfers := api.Group("/sessions/transfer", authRequired)

	manage := middleware.RequireRole(pasetotoken.RoleAdmin, pasetotoken.RoleBranchManager)
	adminOnly := middleware.RequireRole(pasetotoken.RoleAdmin)

	transfers.Post("/", manage, h.Transfer)
	transfers.Post("/by-date-range", manage, h.TransferByDateRange)
	transfers.Post("/by-ids", manage, h.TransferByIDs)
	transfers.Post("/emergency", adminOnly, h.EmergencyTransfer)

	transfers.Get("/status/:transferId", manage, h.Status)
	transfers.Get("/eligibility", manage, h.Eligibility)
}
