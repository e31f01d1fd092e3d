package salaryhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "hr_center/internal/api/base/handler"
	salarydto "hr_center/internal/api/salary/dto"
	models "hr_center/internal/api/salary/models"
	salarysvc "hr_center/internal/api/salary/service"
	"hr_center/internal/common"
	"hr_center/internal/utility"
)

// SalaryBreakupHandler xử lý các request quản lý bảng lương theo kỳ
type SalaryBreakupHandler struct {
	*basehdl.BaseHandler[models.BreakupFile, salarydto.BreakupCreateInput, salarydto.BreakupUpdateInput]
	breakupService *salarysvc.SalaryBreakupService
}

// NewSalaryBreakupHandler tạo instance mới của SalaryBreakupHandler
func NewSalaryBreakupHandler() (*SalaryBreakupHandler, error) {
	breakupService, err := salarysvc.NewSalaryBreakupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create salary breakup service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.BreakupFile, salarydto.BreakupCreateInput, salarydto.BreakupUpdateInput](breakupService)
	return &SalaryBreakupHandler{
		BaseHandler:    baseHandler,
		breakupService: breakupService,
	}, nil
}

// HandleCreateBreakup tính và lưu bảng lương cho một nhân viên trong một kỳ
func (h *SalaryBreakupHandler) HandleCreateBreakup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input salarydto.BreakupCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu bảng lương không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !primitive.IsValidObjectID(input.EmployeeID) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "employeeId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}

		breakup, err := h.breakupService.CreateBreakup(c.Context(), utility.String2ObjectID(input.EmployeeID), input.Month, input.Year)
		h.HandleResponse(c, breakup, err)
		return nil
	})
}

// HandleMarkPaid đánh dấu một bảng lương đã thanh toán
func (h *SalaryBreakupHandler) HandleMarkPaid(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id), common.StatusBadRequest, nil))
			return nil
		}

		breakup, err := h.breakupService.MarkPaid(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, breakup, err)
		return nil
	})
}

// HandleEmployeeHistory trả về lịch sử bảng lương của một nhân viên, kỳ mới nhất trước
func (h *SalaryBreakupHandler) HandleEmployeeHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("employeeId")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "employeeId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}

		history, err := h.breakupService.EmployeeHistory(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, history, err)
		return nil
	})
}
