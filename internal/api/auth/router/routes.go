// Package router đăng ký các route thuộc domain auth: System, Auth, Role, RoleAssignment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "hr_center/internal/api/auth/handler"
	basehdl "hr_center/internal/api/base/handler"
	"hr_center/internal/api/middleware"
	apirouter "hr_center/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, role, assignment) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerRoleRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAssignmentRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	employeeHandler, err := authhdl.NewEmployeeHandler()
	if err != nil {
		return fmt.Errorf("failed to create employee handler: %w", err)
	}

	// Route công khai: đăng ký và đăng nhập
	router.Post("/auth/register", employeeHandler.HandleRegister)
	router.Post("/auth/login", employeeHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, employeeHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, employeeHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/my-assignments", []fiber.Handler{authOnlyMiddleware}, employeeHandler.HandleGetMyAssignments)

	blockMiddleware := middleware.AuthMiddleware("Employee.Block")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/employee", "POST", "/block", []fiber.Handler{blockMiddleware}, employeeHandler.HandleBlock)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/employee", "POST", "/unblock", []fiber.Handler{blockMiddleware}, employeeHandler.HandleUnBlock)

	return nil
}

func registerRoleRoutes(router fiber.Router, r *apirouter.Router) error {
	roleHandler, err := authhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create role handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/role", roleHandler, apirouter.ReadWriteConfig, "Role")

	employeeHandler, err := authhdl.NewEmployeeHandler()
	if err != nil {
		return fmt.Errorf("failed to create employee handler: %w", err)
	}
	// Employee chỉ đọc qua CRUD; tạo mới đi qua /auth/register để hash mật khẩu
	r.RegisterCRUDRoutes(router, "/employee", employeeHandler, apirouter.ReadOnlyConfig, "Employee")

	return nil
}

func registerAssignmentRoutes(router fiber.Router, r *apirouter.Router) error {
	assignmentHandler, err := authhdl.NewRoleAssignmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create role assignment handler: %w", err)
	}

	grantMiddleware := middleware.AuthMiddleware("RoleAssignment.Grant")
	apirouter.RegisterRouteWithMiddleware(router, "/role-assignment", "POST", "/grant", []fiber.Handler{grantMiddleware}, assignmentHandler.HandleGrantRole)
	apirouter.RegisterRouteWithMiddleware(router, "/role-assignment", "POST", "/end/:id", []fiber.Handler{grantMiddleware}, assignmentHandler.HandleEndAssignment)

	readMiddleware := middleware.AuthMiddleware("RoleAssignment.Read")
	apirouter.RegisterRouteWithMiddleware(router, "/role-assignment", "GET", "/by-employee/:employeeId", []fiber.Handler{readMiddleware}, assignmentHandler.HandleListByEmployee)
	apirouter.RegisterRouteWithMiddleware(router, "/role-assignment", "GET", "/by-role/:roleId", []fiber.Handler{readMiddleware}, assignmentHandler.HandleListByRole)
	apirouter.RegisterRouteWithMiddleware(router, "/role-assignment", "GET", "/by-department/:department", []fiber.Handler{readMiddleware}, assignmentHandler.HandleListByDepartment)

	// CRUD chỉ đọc: phân công được tạo qua /grant và kết thúc qua /end, không xóa
	r.RegisterCRUDRoutes(router, "/role-assignment", assignmentHandler, apirouter.ReadOnlyConfig, "RoleAssignment")

	return nil
}
