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
	"hr_center/internal/logger"
)

// EmployeeHandler xử lý các request xác thực và quản lý nhân viên
type EmployeeHandler struct {
	*basehdl.BaseHandler[models.Employee, authdto.EmployeeCreateInput, authdto.EmployeeUpdateInput]
	employeeService   *authsvc.EmployeeService
	assignmentService *authsvc.RoleAssignmentService
}

// NewEmployeeHandler tạo instance mới của EmployeeHandler
func NewEmployeeHandler() (*EmployeeHandler, error) {
	employeeService, err := authsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %v", err)
	}
	assignmentService, err := authsvc.NewRoleAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role assignment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Employee, authdto.EmployeeCreateInput, authdto.EmployeeUpdateInput](employeeService)
	baseHandler.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "salt", "token", "tokens"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return &EmployeeHandler{
		BaseHandler:       baseHandler,
		employeeService:   employeeService,
		assignmentService: assignmentService,
	}, nil
}

// HandleRegister xử lý đăng ký nhân viên mới
func (h *EmployeeHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.EmployeeCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu đăng ký không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employee, err := h.employeeService.Register(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employee.Password = ""
		h.HandleResponse(c, employee, nil)
		return nil
	})
}

// HandleLogin xử lý đăng nhập nhân viên, trả về employee kèm token mới
func (h *EmployeeHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.EmployeeLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu đăng nhập không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employee, err := h.employeeService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employee.Password = ""
		h.HandleResponse(c, employee, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất nhân viên
func (h *EmployeeHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employeeID := c.Locals("user_id")
		if employeeID == nil {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		var input authdto.EmployeeLogoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu đăng xuất không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(employeeID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nhân viên không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		err = h.employeeService.Logout(c.Context(), objID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của nhân viên đang đăng nhập
func (h *EmployeeHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employeeID := c.Locals("user_id")
		if employeeID == nil {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(employeeID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nhân viên không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		employee, err := h.employeeService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		employee.Password = ""
		employee.Tokens = nil
		h.HandleResponse(c, employee, nil)
		return nil
	})
}

// HandleGetMyAssignments lấy danh sách phân công đang hiệu lực của nhân viên đang đăng nhập
func (h *EmployeeHandler) HandleGetMyAssignments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employeeID := c.Locals("user_id")
		if employeeID == nil {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(employeeID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nhân viên không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		assignments, err := h.assignmentService.FindValidByEmployee(c.Context(), objID)
		h.HandleResponse(c, assignments, err)
		return nil
	})
}

// HandleBlock khóa tài khoản nhân viên
func (h *EmployeeHandler) HandleBlock(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.BlockEmployeeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		employee, err := h.employeeService.BlockEmployee(c.Context(), &input)
		if err == nil {
			logger.LogAction("employee_block", c, map[string]interface{}{
				"employee_id": employee.ID.Hex(),
				"note":        input.Note,
			})
		}
		h.HandleResponse(c, employee, err)
		return nil
	})
}

// HandleUnBlock mở khóa tài khoản nhân viên
func (h *EmployeeHandler) HandleUnBlock(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UnBlockEmployeeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		employee, err := h.employeeService.UnBlockEmployee(c.Context(), &input)
		if err == nil {
			logger.LogAction("employee_unblock", c, map[string]interface{}{
				"employee_id": employee.ID.Hex(),
			})
		}
		h.HandleResponse(c, employee, err)
		return nil
	})
}
