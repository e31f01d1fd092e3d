package salarysvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "hr_center/internal/api/auth/models"
	authsvc "hr_center/internal/api/auth/service"
	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/api/events"
	models "hr_center/internal/api/salary/models"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// SalaryBreakupService là cấu trúc chứa các phương thức liên quan đến bảng lương theo kỳ
type SalaryBreakupService struct {
	*basesvc.BaseServiceMongoImpl[models.BreakupFile]
	ruleService       *SalaryRuleService
	employeeService   *basesvc.BaseServiceMongoImpl[authmodels.Employee]
	assignmentService *authsvc.RoleAssignmentService
}

// NewSalaryBreakupService tạo mới SalaryBreakupService
func NewSalaryBreakupService() (*SalaryBreakupService, error) {
	breakupCollection, exist := global.RegistryCollections.Get(global.ColNames.SalaryBreakups)
	if !exist {
		return nil, fmt.Errorf("failed to get salary_breakups collection: %v", common.ErrNotFound)
	}
	employeeCollection, exist := global.RegistryCollections.Get(global.ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}

	ruleService, err := NewSalaryRuleService()
	if err != nil {
		return nil, err
	}
	assignmentService, err := authsvc.NewRoleAssignmentService()
	if err != nil {
		return nil, err
	}

	return &SalaryBreakupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BreakupFile](breakupCollection),
		ruleService:          ruleService,
		employeeService:      basesvc.NewBaseServiceMongo[authmodels.Employee](employeeCollection),
		assignmentService:    assignmentService,
	}, nil
}

// CreateBreakup tính và lưu bảng lương cho một nhân viên trong một kỳ (tháng/năm).
// Quy tắc lương được lấy theo vai trò đang hiệu lực của nhân viên và snapshot vào bảng lương.
// Mỗi nhân viên chỉ có một bảng lương cho mỗi kỳ.
func (s *SalaryBreakupService) CreateBreakup(ctx context.Context, employeeID primitive.ObjectID, month, year int) (models.BreakupFile, error) {
	var zero models.BreakupFile

	if month < 1 || month > 12 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Tháng phải nằm trong khoảng 1-12", common.StatusBadRequest, nil)
	}
	if year < 2000 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Năm không hợp lệ", common.StatusBadRequest, nil)
	}

	employee, err := s.employeeService.FindOneById(ctx, employeeID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeBusinessState, "Nhân viên không tồn tại", common.StatusBadRequest, nil)
	}

	// Kỳ lương đã tồn tại: phân biệt đã thanh toán và đang xử lý
	existing, err := s.FindOne(ctx, bson.M{"employeeId": employeeID, "month": month, "year": year}, nil)
	if err == nil {
		return zero, duplicatePeriodError(existing)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	assignments, err := s.assignmentService.FindValidByEmployee(ctx, employeeID)
	if err != nil {
		return zero, err
	}
	if len(assignments) == 0 {
		return zero, common.NewError(common.ErrCodeBusinessState, "Nhân viên chưa được phân công vai trò đang hiệu lực", common.StatusBadRequest, nil)
	}
	assignment := primaryAssignment(assignments)

	rule, err := s.ruleService.FindByRole(ctx, assignment.RoleID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeBusinessState, "Vai trò của nhân viên chưa có quy tắc lương", common.StatusBadRequest, nil)
	}

	breakdown := ComputeBreakdown(rule)

	breakup := models.BreakupFile{
		EmployeeID:      employeeID,
		RoleID:          rule.RoleID,
		Month:           month,
		Year:            year,
		RuleSnapshot:    rule,
		Lines:           breakdown.Lines,
		TotalAllowances: breakdown.TotalAllowances,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,
		PaymentStatus:   models.PaymentStatusPending,
	}

	created, err := s.InsertOne(ctx, breakup)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"breakupId":  created.ID.Hex(),
		"employeeId": employeeID.Hex(),
		"month":      month,
		"year":       year,
		"netSalary":  created.NetSalary,
	}).Info("✅ [SALARY] Đã tạo bảng lương cho nhân viên")

	_ = events.Dispatch(ctx, events.Event{
		Type: events.EventSalaryBreakupCreated,
		Payload: map[string]interface{}{
			"breakupId":    created.ID.Hex(),
			"employeeId":   employeeID.Hex(),
			"employeeName": employee.Name,
			"department":   assignment.Department,
			"month":        fmt.Sprintf("%d", month),
			"year":         fmt.Sprintf("%d", year),
			"netSalary":    fmt.Sprintf("%.0f", created.NetSalary),
		},
	})

	return created, nil
}

// duplicatePeriodError phân biệt bảng lương trùng kỳ đã thanh toán và đang xử lý.
func duplicatePeriodError(existing models.BreakupFile) error {
	if existing.PaymentStatus == models.PaymentStatusPaid {
		return common.NewError(common.ErrCodeBusinessState, "Bảng lương kỳ này đã được thanh toán", common.StatusConflict, nil)
	}
	return common.NewError(common.ErrCodeBusinessState, "Bảng lương kỳ này đang được xử lý", common.StatusConflict, nil)
}

// primaryAssignment chọn phân công chính khi nhân viên có nhiều phân công
// hiệu lực cùng lúc: phân công có effectiveFrom sớm nhất.
func primaryAssignment(assignments []authmodels.RoleAssignment) authmodels.RoleAssignment {
	assignment := assignments[0]
	for i := 1; i < len(assignments); i++ {
		if assignments[i].EffectiveFrom < assignment.EffectiveFrom {
			assignment = assignments[i]
		}
	}
	return assignment
}

// MarkPaid đánh dấu bảng lương đã thanh toán và phát sự kiện.
func (s *SalaryBreakupService) MarkPaid(ctx context.Context, breakupID primitive.ObjectID) (models.BreakupFile, error) {
	var zero models.BreakupFile

	breakup, err := s.FindOneById(ctx, breakupID)
	if err != nil {
		return zero, err
	}
	if breakup.PaymentStatus == models.PaymentStatusPaid {
		return zero, common.NewError(common.ErrCodeBusinessState, "Bảng lương này đã được thanh toán trước đó", common.StatusConflict, nil)
	}

	updated, err := s.UpdateById(ctx, breakupID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"paymentStatus": models.PaymentStatusPaid,
			"paidAt":        time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"breakupId":  breakupID.Hex(),
		"employeeId": updated.EmployeeID.Hex(),
	}).Info("✅ [SALARY] Đã đánh dấu bảng lương đã thanh toán")

	_ = events.Dispatch(ctx, events.Event{
		Type: events.EventSalaryPaid,
		Payload: map[string]interface{}{
			"breakupId":  updated.ID.Hex(),
			"employeeId": updated.EmployeeID.Hex(),
			"month":      fmt.Sprintf("%d", updated.Month),
			"year":       fmt.Sprintf("%d", updated.Year),
			"netSalary":  fmt.Sprintf("%.0f", updated.NetSalary),
		},
	})

	return updated, nil
}

// EmployeeHistory trả về lịch sử bảng lương của một nhân viên, kỳ mới nhất trước.
func (s *SalaryBreakupService) EmployeeHistory(ctx context.Context, employeeID primitive.ObjectID) ([]models.BreakupFile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	return s.Find(ctx, bson.M{"employeeId": employeeID}, opts)
}
