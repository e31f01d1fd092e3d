// Package authsvc - service phân công vai trò (RoleAssignment).
package authsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "hr_center/internal/api/auth/dto"
	models "hr_center/internal/api/auth/models"
	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// RoleAssignmentService là cấu trúc chứa các phương thức liên quan đến phân công vai trò
type RoleAssignmentService struct {
	*basesvc.BaseServiceMongoImpl[models.RoleAssignment]
	roleService     *basesvc.BaseServiceMongoImpl[models.Role]
	employeeService *basesvc.BaseServiceMongoImpl[models.Employee]
}

// NewRoleAssignmentService tạo mới RoleAssignmentService
func NewRoleAssignmentService() (*RoleAssignmentService, error) {
	assignmentCollection, exist := global.RegistryCollections.Get(global.ColNames.RoleAssignments)
	if !exist {
		return nil, fmt.Errorf("failed to get role_assignments collection: %v", common.ErrNotFound)
	}
	roleCollection, exist := global.RegistryCollections.Get(global.ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}
	employeeCollection, exist := global.RegistryCollections.Get(global.ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}

	return &RoleAssignmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.RoleAssignment](assignmentCollection),
		roleService:          basesvc.NewBaseServiceMongo[models.Role](roleCollection),
		employeeService:      basesvc.NewBaseServiceMongo[models.Employee](employeeCollection),
	}, nil
}

// GrantRole gán vai trò cho nhân viên. Vai trò và nhân viên phải tồn tại.
// EffectiveFrom mặc định là thời điểm hiện tại nếu không truyền.
func (s *RoleAssignmentService) GrantRole(ctx context.Context, input *authdto.RoleAssignmentCreateInput) (*models.RoleAssignment, error) {
	employeeID, err := primitive.ObjectIDFromHex(input.EmployeeID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "employeeId không đúng định dạng ObjectID", common.StatusBadRequest, err)
	}
	roleID, err := primitive.ObjectIDFromHex(input.RoleID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "roleId không đúng định dạng ObjectID", common.StatusBadRequest, err)
	}

	if _, err := s.employeeService.FindOneById(ctx, employeeID); err != nil {
		return nil, common.NewError(common.ErrCodeBusinessState, "Nhân viên không tồn tại", common.StatusBadRequest, nil)
	}
	if _, err := s.roleService.FindOneById(ctx, roleID); err != nil {
		return nil, common.NewError(common.ErrCodeBusinessState, "Vai trò không tồn tại", common.StatusBadRequest, nil)
	}

	effectiveFrom := input.EffectiveFrom
	if effectiveFrom == 0 {
		effectiveFrom = time.Now().UnixMilli()
	}

	assignment := models.RoleAssignment{
		EmployeeID:     employeeID,
		RoleID:         roleID,
		Department:     input.Department,
		IsActive:       true,
		EffectiveFrom:  effectiveFrom,
		EffectiveUntil: input.EffectiveUntil,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, assignment)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"assignment_id": created.ID.Hex(),
		"employee_id":   employeeID.Hex(),
		"role_id":       roleID.Hex(),
		"department":    input.Department,
	}).Info("✅ [AUTH] Đã gán vai trò cho nhân viên")
	return &created, nil
}

// EndAssignment kết thúc một phân công: set isActive = false và chốt effectiveUntil.
// Phân công không bao giờ bị xóa để giữ lịch sử.
func (s *RoleAssignmentService) EndAssignment(ctx context.Context, assignmentID primitive.ObjectID) (*models.RoleAssignment, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isActive":       false,
			"effectiveUntil": time.Now().UnixMilli(),
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, assignmentID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"assignment_id": assignmentID.Hex(),
	}).Info("✅ [AUTH] Đã kết thúc phân công vai trò")
	return &updated, nil
}

// FindValidByEmployee trả về các phân công đang hiệu lực của một nhân viên
func (s *RoleAssignmentService) FindValidByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.RoleAssignment, error) {
	assignments, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"employeeId": employeeID, "isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	return filterCurrentlyValid(assignments), nil
}

// FindValidByRole trả về các phân công đang hiệu lực của một vai trò (mọi phòng ban)
func (s *RoleAssignmentService) FindValidByRole(ctx context.Context, roleID primitive.ObjectID) ([]models.RoleAssignment, error) {
	assignments, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"roleId": roleID, "isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	return filterCurrentlyValid(assignments), nil
}

// FindValidByRoleAndDepartment trả về các phân công đang hiệu lực của một vai trò trong một phòng ban
func (s *RoleAssignmentService) FindValidByRoleAndDepartment(ctx context.Context, roleID primitive.ObjectID, department string) ([]models.RoleAssignment, error) {
	assignments, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"roleId": roleID, "department": department, "isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	return filterCurrentlyValid(assignments), nil
}

// FindAllValid trả về toàn bộ phân công đang hiệu lực trong hệ thống (mọi phòng ban, mọi vai trò)
func (s *RoleAssignmentService) FindAllValid(ctx context.Context) ([]models.RoleAssignment, error) {
	assignments, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	return filterCurrentlyValid(assignments), nil
}

// FindValidByDepartment trả về các phân công đang hiệu lực trong một phòng ban
func (s *RoleAssignmentService) FindValidByDepartment(ctx context.Context, department string) ([]models.RoleAssignment, error) {
	assignments, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"department": department, "isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	return filterCurrentlyValid(assignments), nil
}

// filterCurrentlyValid lọc các phân công theo cửa sổ hiệu lực tại thời điểm hiện tại.
// Query DB chỉ lọc được isActive; cửa sổ thời gian (effectiveFrom/effectiveUntil) lọc tại đây.
func filterCurrentlyValid(assignments []models.RoleAssignment) []models.RoleAssignment {
	valid := make([]models.RoleAssignment, 0, len(assignments))
	for i := range assignments {
		if assignments[i].IsCurrentlyValid() {
			valid = append(valid, assignments[i])
		}
	}
	return valid
}
