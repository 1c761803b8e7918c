package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/hafizhramadhan/company-profile-api/internal/config"
)

type errorBody struct {
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

// ErrorResponse mengirim response JSON standar untuk error. Detail
// teknis hanya ikut terkirim di luar production.
func ErrorResponse(c *fiber.Ctx, code int, message string, errs ...error) error {
	body := errorBody{Message: message}
	if config.LoadAppConfig().Env != "production" && len(errs) > 0 && errs[0] != nil {
		body.DevMessage = errs[0].Error()
		body.Trace = string(debug.Stack())
	}
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}

// MessageResponse mengirim response sukses berisi pesan saja.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(messageBody{Message: message})
}
