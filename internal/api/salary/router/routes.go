// Package router đăng ký các route thuộc domain salary.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"hr_center/internal/api/middleware"
	apirouter "hr_center/internal/api/router"
	salaryhdl "hr_center/internal/api/salary/handler"
)

// Register đăng ký các route salary lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	ruleHandler, err := salaryhdl.NewSalaryRuleHandler()
	if err != nil {
		return fmt.Errorf("failed to create salary rule handler: %w", err)
	}
	breakupHandler, err := salaryhdl.NewSalaryBreakupHandler()
	if err != nil {
		return fmt.Errorf("failed to create salary breakup handler: %w", err)
	}

	// Quy tắc lương: tạo/sửa đi qua handler riêng để validate nghiệp vụ và phát sự kiện
	ruleWrite := []fiber.Handler{middleware.AuthMiddleware("SalaryRule.Write")}
	apirouter.RegisterRouteWithMiddleware(v1, "/salary/rule", "POST", "/", ruleWrite, ruleHandler.HandleCreateRule)
	apirouter.RegisterRouteWithMiddleware(v1, "/salary/rule", "PUT", "/:id", ruleWrite, ruleHandler.HandleUpdateRule)

	ruleRead := []fiber.Handler{middleware.AuthMiddleware("SalaryRule.Read")}
	apirouter.RegisterRouteWithMiddleware(v1, "/salary/rule", "GET", "/by-role/:roleId", ruleRead, ruleHandler.HandleGetByRole)

	r.RegisterCRUDRoutes(v1, "/salary/rule", ruleHandler, apirouter.ReadOnlyConfig, "SalaryRule")

	// Bảng lương theo kỳ: tạo và thanh toán đi qua handler riêng, CRUD chỉ đọc
	breakupWrite := []fiber.Handler{middleware.AuthMiddleware("SalaryBreakup.Write")}
	apirouter.RegisterRouteWithMiddleware(v1, "/salary/breakup", "POST", "/", breakupWrite, breakupHandler.HandleCreateBreakup)
	apirouter.RegisterRouteWithMiddleware(v1, "/salary/breakup", "POST", "/:id/mark-paid", breakupWrite, breakupHandler.HandleMarkPaid)

	breakupRead := []fiber.Handler{middleware.AuthMiddleware("SalaryBreakup.Read")}
	apirouter.RegisterRouteWithMiddleware(v1, "/salary/breakup", "GET", "/history/:employeeId", breakupRead, breakupHandler.HandleEmployeeHistory)

	r.RegisterCRUDRoutes(v1, "/salary/breakup", breakupHandler, apirouter.ReadOnlyConfig, "SalaryBreakup")

	return nil
}
