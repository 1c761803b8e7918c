package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/dto"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/response"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
	"github.com/hafizhramadhan/company-profile-api/internal/validation"
	"gorm.io/gorm"
)

type ServiceHandler struct {
	services *repository.ServiceRepository
	auth     *middleware.AuthMiddleware
}

func NewServiceHandler(services *repository.ServiceRepository, auth *middleware.AuthMiddleware) *ServiceHandler {
	return &ServiceHandler{services: services, auth: auth}
}

func (h *ServiceHandler) RegisterRoutes(api fiber.Router) {
	services := api.Group("/services")
	services.Get("/", h.List)
	services.Get("/:id", h.Get)
	services.Post("/", h.auth.Protect(), h.Create)
	services.Put("/:id", h.auth.Protect(), h.Update)
	services.Delete("/:id", h.auth.Protect(), h.Delete)
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	page, limit := util.PageParams(c)
	services, total, err := h.services.List(page, limit)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(response.NewPaginated(services, total, page, limit))
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	service, err := h.services.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Service not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(service)
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	icon := in.Icon
	if icon == "" {
		icon = "code"
	}
	service := model.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        icon,
	}
	if err := h.services.Create(&service); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not create service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Icon != nil {
		updates["icon"] = *in.Icon
	}

	service, err := h.services.Update(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Service not found")
		}
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not update service", err)
	}
	return c.JSON(service)
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.services.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Service not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return util.MessageResponse(c, fiber.StatusOK, "Service deleted")
}
