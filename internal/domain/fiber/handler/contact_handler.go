package handler

import (
	"errors"
	"time"

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

type ContactHandler struct {
	contacts *repository.ContactRepository
	auth     *middleware.AuthMiddleware
}

func NewContactHandler(contacts *repository.ContactRepository, auth *middleware.AuthMiddleware) *ContactHandler {
	return &ContactHandler{contacts: contacts, auth: auth}
}

func (h *ContactHandler) RegisterRoutes(api fiber.Router) {
	contacts := api.Group("/contacts")
	contacts.Get("/", h.auth.Protect(), h.List)
	contacts.Get("/:id", h.auth.Protect(), h.Get)
	contacts.Post("/", middleware.RateLimiter(10, time.Minute), h.Create)
	contacts.Put("/:id", h.auth.Protect(), h.Update)
	contacts.Delete("/:id", h.auth.Protect(), h.Delete)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, limit := util.PageParams(c)
	contacts, total, err := h.contacts.List(page, limit)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(response.NewPaginated(contacts, total, page, limit))
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	contact, err := h.contacts.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Message not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(contact)
}

// Create is public: the contact form posts here.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	contact := model.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := h.contacts.Create(&contact); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not create message", err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Message != nil {
		updates["message"] = *in.Message
	}

	contact, err := h.contacts.Update(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Message not found")
		}
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not update message", err)
	}
	return c.JSON(contact)
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Message not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return util.MessageResponse(c, fiber.StatusOK, "Message deleted")
}
