package salarysvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/api/events"
	models "hr_center/internal/api/salary/models"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// SalaryRuleService là cấu trúc chứa các phương thức liên quan đến quy tắc lương
type SalaryRuleService struct {
	*basesvc.BaseServiceMongoImpl[models.SalaryRule]
}

// NewSalaryRuleService tạo mới SalaryRuleService
func NewSalaryRuleService() (*SalaryRuleService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.SalaryRules)
	if !exist {
		return nil, fmt.Errorf("failed to get salary_rules collection: %v", common.ErrNotFound)
	}

	return &SalaryRuleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SalaryRule](collection),
	}, nil
}

// validateRule kiểm tra tính hợp lệ nghiệp vụ của một quy tắc lương.
func validateRule(rule *models.SalaryRule) error {
	if rule.BaseSalary <= 0 {
		return common.NewError(common.ErrCodeValidationInput, "Lương cơ bản phải lớn hơn 0", common.StatusBadRequest, nil)
	}
	if rule.SalaryType != models.SalaryTypeMonthly && rule.SalaryType != models.SalaryTypeHourly {
		return common.NewError(common.ErrCodeValidationInput, "Loại lương phải là monthly hoặc hourly", common.StatusBadRequest, nil)
	}
	for _, group := range [][]models.SalaryComponent{rule.Allowances, rule.Deductions, rule.TerminalBenefits} {
		for _, c := range group {
			if c.ValueType != models.ValueTypeFixed && c.ValueType != models.ValueTypePercentage {
				return common.NewError(common.ErrCodeValidationInput,
					fmt.Sprintf("Thành phần lương '%s' có loại giá trị không hợp lệ: %s", c.Name, c.ValueType),
					common.StatusBadRequest, nil)
			}
		}
	}
	return nil
}

// CreateRule tạo quy tắc lương mới cho một vai trò. Mỗi vai trò chỉ có một quy tắc.
func (s *SalaryRuleService) CreateRule(ctx context.Context, rule *models.SalaryRule) (models.SalaryRule, error) {
	if err := validateRule(rule); err != nil {
		return models.SalaryRule{}, err
	}

	exists, err := s.DocumentExists(ctx, bson.M{"roleId": rule.RoleID})
	if err != nil {
		return models.SalaryRule{}, err
	}
	if exists {
		return models.SalaryRule{}, common.NewError(common.ErrCodeBusinessState, "Vai trò này đã có quy tắc lương", common.StatusConflict, nil)
	}

	created, err := s.InsertOne(ctx, *rule)
	if err != nil {
		return models.SalaryRule{}, err
	}

	logrus.WithFields(logrus.Fields{
		"ruleId": created.ID.Hex(),
		"roleId": created.RoleID.Hex(),
	}).Info("✅ [SALARY] Đã tạo quy tắc lương mới")

	_ = events.Dispatch(ctx, events.Event{
		Type: events.EventSalaryRuleChanged,
		Payload: map[string]interface{}{
			"ruleId":     created.ID.Hex(),
			"roleId":     created.RoleID.Hex(),
			"baseSalary": created.BaseSalary,
			"action":     "created",
		},
	})

	return created, nil
}

// UpdateRule cập nhật quy tắc lương theo id và phát sự kiện thay đổi.
// Bảng lương đã tạo trước đó không bị ảnh hưởng vì đã snapshot quy tắc.
func (s *SalaryRuleService) UpdateRule(ctx context.Context, id primitive.ObjectID, rule *models.SalaryRule) (models.SalaryRule, error) {
	if err := validateRule(rule); err != nil {
		return models.SalaryRule{}, err
	}

	updated, err := s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: bson.M{
			"baseSalary":       rule.BaseSalary,
			"salaryType":       rule.SalaryType,
			"allowances":       rule.Allowances,
			"deductions":       rule.Deductions,
			"terminalBenefits": rule.TerminalBenefits,
		},
	})
	if err != nil {
		return models.SalaryRule{}, err
	}

	_ = events.Dispatch(ctx, events.Event{
		Type: events.EventSalaryRuleChanged,
		Payload: map[string]interface{}{
			"ruleId":     updated.ID.Hex(),
			"roleId":     updated.RoleID.Hex(),
			"baseSalary": updated.BaseSalary,
			"action":     "updated",
		},
	})

	return updated, nil
}

// FindByRole tìm quy tắc lương của một vai trò.
func (s *SalaryRuleService) FindByRole(ctx context.Context, roleID primitive.ObjectID) (models.SalaryRule, error) {
	return s.FindOne(ctx, bson.M{"roleId": roleID}, nil)
}
