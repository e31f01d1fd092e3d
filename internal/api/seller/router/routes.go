// Package router đăng ký các route thuộc domain seller.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"hr_center/internal/api/middleware"
	apirouter "hr_center/internal/api/router"
	sellerhdl "hr_center/internal/api/seller/handler"
)

// Register đăng ký các route seller lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sellerHandler, err := sellerhdl.NewSellerHandler()
	if err != nil {
		return fmt.Errorf("failed to create seller handler: %w", err)
	}

	syncMiddleware := []fiber.Handler{middleware.AuthMiddleware("Seller.Sync")}
	apirouter.RegisterRouteWithMiddleware(v1, "/seller", "POST", "/sync", syncMiddleware, sellerHandler.HandleSyncNow)

	// Seller do đồng bộ tự động tạo/cập nhật: không cho ghi trực tiếp, cho phép xóa
	r.RegisterCRUDRoutes(v1, "/seller", sellerHandler, apirouter.ReadDeleteConfig, "Seller")

	return nil
}
