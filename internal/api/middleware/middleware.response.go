package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"hr_center/internal/common"
)

// HandleErrorResponse trả về error response theo format chuẩn của API từ middleware.
// Middleware không đi qua BaseHandler nên cần helper riêng, cùng format envelope.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		c.Set("Content-Type", "application/json; charset=utf-8")
		_ = c.Status(customErr.StatusCode).JSON(fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}

	c.Set("Content-Type", "application/json; charset=utf-8")
	_ = c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
