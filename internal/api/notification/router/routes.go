// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"hr_center/internal/api/middleware"
	notifhdl "hr_center/internal/api/notification/handler"
	apirouter "hr_center/internal/api/router"
)

// Register đăng ký các route notification lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	ruleHandler, err := notifhdl.NewNotificationRuleHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification rule handler: %w", err)
	}
	notificationHandler, err := notifhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}

	// Quy tắc thông báo: CRUD quản trị + trigger thủ công để kiểm thử quy tắc
	ruleWrite := []fiber.Handler{middleware.AuthMiddleware("NotificationRule.Write")}
	apirouter.RegisterRouteWithMiddleware(v1, "/notification-rule", "POST", "/:id/trigger", ruleWrite, ruleHandler.HandleTriggerRule)
	r.RegisterCRUDRoutes(v1, "/notification-rule", ruleHandler, apirouter.ReadWriteConfig, "NotificationRule")

	// Thông báo của người đang đăng nhập: chỉ cần xác thực, không cần phân công
	authOnly := []fiber.Handler{middleware.AuthMiddleware("")}
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "GET", "/my", authOnly, notificationHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "GET", "/unread-count", authOnly, notificationHandler.HandleUnreadCount)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "POST", "/:id/mark-read", authOnly, notificationHandler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "POST", "/mark-all-read", authOnly, notificationHandler.HandleMarkAllRead)

	// Gửi trực tiếp và CRUD quản trị
	sendMiddleware := []fiber.Handler{middleware.AuthMiddleware("Notification.Send")}
	apirouter.RegisterRouteWithMiddleware(v1, "/notification", "POST", "/send", sendMiddleware, notificationHandler.HandleDirectSend)
	r.RegisterCRUDRoutes(v1, "/notification", notificationHandler, apirouter.ReadOnlyConfig, "Notification")

	return nil
}
