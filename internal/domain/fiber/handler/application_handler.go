package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hafizhramadhan/company-profile-api/internal/dto"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/response"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
	"github.com/hafizhramadhan/company-profile-api/internal/validation"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	applications *repository.ApplicationRepository
	jobs         *repository.JobRepository
	auth         *middleware.AuthMiddleware
}

func NewApplicationHandler(applications *repository.ApplicationRepository, jobs *repository.JobRepository, auth *middleware.AuthMiddleware) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, jobs: jobs, auth: auth}
}

func (h *ApplicationHandler) RegisterRoutes(api fiber.Router) {
	applications := api.Group("/applications")
	applications.Get("/", h.auth.Protect(), h.List)
	applications.Get("/:id", h.auth.Protect(), h.Get)
	applications.Post("/", middleware.RateLimiter(10, time.Minute), h.Create)
	applications.Put("/:id/status", h.auth.Protect(), h.UpdateStatus)
	applications.Delete("/:id", h.auth.Protect(), h.Delete)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	page, limit := util.PageParams(c)
	applications, total, err := h.applications.List(page, limit)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(response.NewPaginated(applications, total, page, limit))
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	application, err := h.applications.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Application not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(application)
}

// Create is public: visitors apply to a job from the careers page.
// The parent job must resolve.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicationInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := h.jobs.FindByID(in.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusBadRequest, "Job not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}

	jobID, err := uuid.Parse(in.JobID)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "jobId must be a valid id")
	}

	application := model.Application{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Resume:      in.Resume,
		CoverLetter: in.CoverLetter,
		JobID:       jobID,
		Status:      model.ApplicationStatusPending,
	}
	if err := h.applications.Create(&application); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not create application", err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

// UpdateStatus touches only the status enum field.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateApplicationStatusInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	application, err := h.applications.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Application not found")
		}
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Could not update application", err)
	}
	return c.JSON(application)
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	if err := h.applications.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Application not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return util.MessageResponse(c, fiber.StatusOK, "Application deleted")
}
