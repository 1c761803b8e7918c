package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/config"
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"github.com/hafizhramadhan/company-profile-api/internal/util"
)

const adminLocalKey = "admin"

type AuthMiddleware struct {
	tokens     *util.TokenManager
	admins     *repository.AdminRepository
	cookieName string
}

func NewAuthMiddleware(tokens *util.TokenManager, admins *repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		admins:     admins,
		cookieName: config.LoadAuthConfig().CookieName,
	}
}

// Protect authenticates the request from the session cookie or a
// Bearer header and stores the admin in the request locals.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(m.cookieName)
		if token == "" {
			if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, no token")
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, token failed", err)
		}

		admin, err := m.admins.FindByID(claims.Subject)
		if err != nil {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, admin not found")
		}
		if !admin.IsActive {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, admin account is inactive")
		}

		c.Locals(adminLocalKey, admin)
		return c.Next()
	}
}

// RequireRoles rejects authenticated admins whose role is not in the
// allowed set.
func (m *AuthMiddleware) RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := AdminFromCtx(c)
		if admin == nil {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
		}
		for _, role := range roles {
			if admin.Role == role {
				return c.Next()
			}
		}
		return util.ErrorResponse(c, fiber.StatusForbidden,
			fmt.Sprintf("Access denied. Required roles: %s", strings.Join(roles, ", ")))
	}
}

// AdminFromCtx returns the admin stored by Protect, or nil.
func AdminFromCtx(c *fiber.Ctx) *model.Admin {
	admin, _ := c.Locals(adminLocalKey).(*model.Admin)
	return admin
}
