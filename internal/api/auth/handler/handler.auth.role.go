package authhdl

import (
	"fmt"

	authdto "hr_center/internal/api/auth/dto"
	models "hr_center/internal/api/auth/models"
	authsvc "hr_center/internal/api/auth/service"
	basehdl "hr_center/internal/api/base/handler"
)

// RoleHandler xử lý các request quản lý vai trò
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput]
	roleService *authsvc.RoleService
}

// NewRoleHandler tạo instance mới của RoleHandler
func NewRoleHandler() (*RoleHandler, error) {
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput](roleService)
	return &RoleHandler{
		BaseHandler: baseHandler,
		roleService: roleService,
	}, nil
}
