package util

import "github.com/gofiber/fiber/v2"

// PageParams reads page/limit query params, falling back to 1/10 for
// absent, non-numeric or non-positive values.
func PageParams(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
