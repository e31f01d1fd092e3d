package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "hr_center/internal/api/auth/dto"
	models "hr_center/internal/api/auth/models"
	authsvc "hr_center/internal/api/auth/service"
	basehdl "hr_center/internal/api/base/handler"
	"hr_center/internal/common"
	"hr_center/internal/utility"
)

// RoleAssignmentHandler xử lý các request quản lý phân công vai trò
type RoleAssignmentHandler struct {
	*basehdl.BaseHandler[models.RoleAssignment, authdto.RoleAssignmentCreateInput, authdto.RoleAssignmentUpdateInput]
	assignmentService *authsvc.RoleAssignmentService
}

// NewRoleAssignmentHandler tạo instance mới của RoleAssignmentHandler
func NewRoleAssignmentHandler() (*RoleAssignmentHandler, error) {
	assignmentService, err := authsvc.NewRoleAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role assignment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.RoleAssignment, authdto.RoleAssignmentCreateInput, authdto.RoleAssignmentUpdateInput](assignmentService)
	return &RoleAssignmentHandler{
		BaseHandler:       baseHandler,
		assignmentService: assignmentService,
	}, nil
}

// HandleGrantRole gán vai trò cho nhân viên
func (h *RoleAssignmentHandler) HandleGrantRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RoleAssignmentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu phân công không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		assignment, err := h.assignmentService.GrantRole(c.Context(), &input)
		h.HandleResponse(c, assignment, err)
		return nil
	})
}

// HandleEndAssignment kết thúc một phân công vai trò (không xóa, chỉ vô hiệu)
func (h *RoleAssignmentHandler) HandleEndAssignment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id), common.StatusBadRequest, nil))
			return nil
		}

		assignment, err := h.assignmentService.EndAssignment(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, assignment, err)
		return nil
	})
}

// HandleListByEmployee liệt kê phân công đang hiệu lực theo nhân viên
func (h *RoleAssignmentHandler) HandleListByEmployee(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("employeeId")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "employeeId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}
		assignments, err := h.assignmentService.FindValidByEmployee(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, assignments, err)
		return nil
	})
}

// HandleListByRole liệt kê phân công đang hiệu lực theo vai trò
func (h *RoleAssignmentHandler) HandleListByRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("roleId")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "roleId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}
		assignments, err := h.assignmentService.FindValidByRole(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, assignments, err)
		return nil
	})
}

// HandleListByDepartment liệt kê phân công đang hiệu lực theo phòng ban
func (h *RoleAssignmentHandler) HandleListByDepartment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		department := c.Params("department")
		if department == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "department không được để trống", common.StatusBadRequest, nil))
			return nil
		}
		assignments, err := h.assignmentService.FindValidByDepartment(c.Context(), department)
		h.HandleResponse(c, assignments, err)
		return nil
	})
}
