package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/usecase"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
)

type DashboardHandler struct {
	dashboard *usecase.DashboardUsecase
	auth      *middleware.AuthMiddleware
}

func NewDashboardHandler(dashboard *usecase.DashboardUsecase, auth *middleware.AuthMiddleware) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, auth: auth}
}

func (h *DashboardHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/dashboard/stats", h.auth.Protect(), h.Stats)
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.Context(), time.Now())
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(stats)
}
