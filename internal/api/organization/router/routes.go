// Package router đăng ký các route thuộc domain organization.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"hr_center/internal/api/middleware"
	orghdl "hr_center/internal/api/organization/handler"
	apirouter "hr_center/internal/api/router"
)

// Register đăng ký các route organization lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orgUnitHandler, err := orghdl.NewOrgUnitHandler()
	if err != nil {
		return fmt.Errorf("failed to create org unit handler: %w", err)
	}

	treeMiddleware := middleware.AuthMiddleware("OrgUnit.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/org-unit", "GET", "/tree", []fiber.Handler{treeMiddleware}, orgUnitHandler.HandleGetTree)

	r.RegisterCRUDRoutes(v1, "/org-unit", orgUnitHandler, apirouter.ReadWriteConfig, "OrgUnit")

	return nil
}
