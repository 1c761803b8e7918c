package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/config"
	"github.com/hafizhramadhan/company-profile-api/internal/dto"
	"github.com/hafizhramadhan/company-profile-api/internal/middleware"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
	"github.com/hafizhramadhan/company-profile-api/internal/validation"
	"gorm.io/gorm"
)

type AdminHandler struct {
	admins *repository.AdminRepository
	tokens *util.TokenManager
	auth   *middleware.AuthMiddleware
}

func NewAdminHandler(admins *repository.AdminRepository, tokens *util.TokenManager, auth *middleware.AuthMiddleware) *AdminHandler {
	return &AdminHandler{admins: admins, tokens: tokens, auth: auth}
}

func (h *AdminHandler) RegisterRoutes(api fiber.Router) {
	admin := api.Group("/admin")
	super := h.auth.RequireRoles(model.RoleSuperadmin)

	admin.Post("/setup", h.Setup)
	admin.Post("/login", h.Login)
	admin.Post("/logout", h.auth.Protect(), h.Logout)
	admin.Get("/profile", h.auth.Protect(), h.Profile)
	admin.Get("/all", h.auth.Protect(), super, h.GetAll)
	admin.Post("/create", h.auth.Protect(), super, h.Create)
	admin.Put("/:id", h.auth.Protect(), super, h.Update)
	admin.Delete("/:id", h.auth.Protect(), super, h.Delete)
}

// Setup creates the bootstrap superadmin. It refuses permanently once
// any admin row exists.
func (h *AdminHandler) Setup(c *fiber.Ctx) error {
	count, err := h.admins.Count()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin setup", err)
	}
	if count > 0 {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Admin setup already completed. Admin users already exist.")
	}

	var in dto.SetupAdminInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := util.HashPassword(in.Password)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin setup", err)
	}

	admin := model.Admin{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		Role:     model.RoleSuperadmin,
		IsActive: true,
	}
	if err := h.admins.Create(&admin); err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin setup", err)
	}

	token, err := h.tokens.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin setup", err)
	}
	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(dto.LoginResponse{
		Message: "Admin user created successfully",
		Token:   token,
		Admin:   toAdminDTO(&admin),
	})
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	admin, err := h.admins.FindActiveByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during login", err)
	}
	if !util.CheckPassword(admin.Password, in.Password) {
		return util.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	if err := h.admins.UpdateLastLogin(admin.ID.String(), now); err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during login", err)
	}
	admin.LastLogin = &now

	token, err := h.tokens.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during login", err)
	}
	h.setSessionCookie(c, token)

	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin:   toAdminDTO(admin),
	})
}

func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	cfg := config.LoadAuthConfig()
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return util.MessageResponse(c, fiber.StatusOK, "Logged out successfully")
}

func (h *AdminHandler) Profile(c *fiber.Ctx) error {
	admin := middleware.AdminFromCtx(c)
	if admin == nil {
		return util.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}
	return c.JSON(fiber.Map{"admin": toAdminDTO(admin)})
}

func (h *AdminHandler) GetAll(c *fiber.Ctx) error {
	admins, err := h.admins.GetAll()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	out := make([]dto.AdminDTO, 0, len(admins))
	for i := range admins {
		out = append(out, toAdminDTO(&admins[i]))
	}
	return c.JSON(fiber.Map{"count": len(out), "admins": out})
}

func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdminInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := h.admins.FindByUsernameOrEmail(in.Username, in.Email); err == nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Admin with this email or username already exists")
	}

	hash, err := util.HashPassword(in.Password)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin creation", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleAdmin
	}
	admin := model.Admin{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := h.admins.Create(&admin); err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin creation", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin user created successfully",
		"admin":   toAdminDTO(&admin),
	})
}

func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAdminInput
	if err := c.BodyParser(&in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validation.Struct(in); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	admin, err := h.admins.Update(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Admin not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin update", err)
	}

	return c.JSON(fiber.Map{
		"message": "Admin updated successfully",
		"admin":   toAdminDTO(admin),
	})
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	current := middleware.AdminFromCtx(c)
	id := c.Params("id")
	if current != nil && current.ID.String() == id {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	if err := h.admins.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Admin not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during admin deletion", err)
	}

	return util.MessageResponse(c, fiber.StatusOK, "Admin deleted successfully")
}

func (h *AdminHandler) setSessionCookie(c *fiber.Ctx, token string) {
	authCfg := config.LoadAuthConfig()
	c.Cookie(&fiber.Cookie{
		Name:     authCfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(authCfg.TokenExpiry),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   config.LoadAppConfig().Env == "production",
		Path:     "/",
	})
}

func toAdminDTO(admin *model.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      admin.Role,
		IsActive:  admin.IsActive,
		LastLogin: admin.LastLogin,
		CreatedAt: admin.CreatedAt,
	}
}
