// Package salaryhdl xử lý các request HTTP của domain salary.
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

// SalaryRuleHandler xử lý các request quản lý quy tắc lương
type SalaryRuleHandler struct {
	*basehdl.BaseHandler[models.SalaryRule, salarydto.SalaryRuleCreateInput, salarydto.SalaryRuleUpdateInput]
	ruleService *salarysvc.SalaryRuleService
}

// NewSalaryRuleHandler tạo instance mới của SalaryRuleHandler
func NewSalaryRuleHandler() (*SalaryRuleHandler, error) {
	ruleService, err := salarysvc.NewSalaryRuleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create salary rule service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.SalaryRule, salarydto.SalaryRuleCreateInput, salarydto.SalaryRuleUpdateInput](ruleService)
	return &SalaryRuleHandler{
		BaseHandler: baseHandler,
		ruleService: ruleService,
	}, nil
}

// HandleCreateRule tạo quy tắc lương mới cho một vai trò
func (h *SalaryRuleHandler) HandleCreateRule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input salarydto.SalaryRuleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu quy tắc lương không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rule, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.ruleService.CreateRule(c.Context(), rule)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleUpdateRule cập nhật quy tắc lương theo id
func (h *SalaryRuleHandler) HandleUpdateRule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id), common.StatusBadRequest, nil))
			return nil
		}

		var input salarydto.SalaryRuleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu quy tắc lương không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rule, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.ruleService.UpdateRule(c.Context(), utility.String2ObjectID(id), rule)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleGetByRole trả về quy tắc lương của một vai trò
func (h *SalaryRuleHandler) HandleGetByRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		roleID := c.Params("roleId")
		if !primitive.IsValidObjectID(roleID) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "roleId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
			return nil
		}

		rule, err := h.ruleService.FindByRole(c.Context(), utility.String2ObjectID(roleID))
		h.HandleResponse(c, rule, err)
		return nil
	})
}
