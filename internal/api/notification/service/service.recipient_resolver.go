package notifsvc

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "hr_center/internal/api/auth/models"
	models "hr_center/internal/api/notification/models"
)

// assignmentFinder là phần giao diện của RoleAssignmentService mà resolver cần.
type assignmentFinder interface {
	FindValidByRole(ctx context.Context, roleID primitive.ObjectID) ([]authmodels.RoleAssignment, error)
	FindValidByRoleAndDepartment(ctx context.Context, roleID primitive.ObjectID, department string) ([]authmodels.RoleAssignment, error)
	FindValidByDepartment(ctx context.Context, department string) ([]authmodels.RoleAssignment, error)
	FindAllValid(ctx context.Context) ([]authmodels.RoleAssignment, error)
}

// roleFinder tra cứu vai trò theo tên.
type roleFinder interface {
	FindByName(ctx context.Context, name string) (*authmodels.Role, error)
}

// employeeFinder tra cứu hồ sơ nhân viên theo danh sách id.
type employeeFinder interface {
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]authmodels.Employee, error)
}

// RecipientResolver xác định danh sách người nhận của một quy tắc thông báo.
type RecipientResolver struct {
	assignments assignmentFinder
	roles       roleFinder
	employees   employeeFinder
}

// NewRecipientResolver tạo mới RecipientResolver.
func NewRecipientResolver(assignments assignmentFinder, roles roleFinder, employees employeeFinder) *RecipientResolver {
	return &RecipientResolver{
		assignments: assignments,
		roles:       roles,
		employees:   employees,
	}
}

// Resolve trả về danh sách người nhận (id, tên, email) theo chiến lược của
// quy tắc, đã khử trùng lặp theo employeeId và giữ thứ tự tìm thấy. Phòng ban
// luôn lấy từ departmentFilter của chính quy tắc; với department_all đây là
// trường bắt buộc, các chiến lược theo vai trò coi filter rỗng là mọi phòng ban.
//
// Quy ước an toàn: cấu hình không hợp lệ hoặc chiến lược không nhận diện được
// thì log cảnh báo và trả về danh sách rỗng thay vì lỗi - một quy tắc hỏng
// không được chặn việc phát hành của các quy tắc khác. Các tham chiếu không
// phân giải được (tên vai trò không tồn tại, nhân viên đã xóa) bị bỏ qua im lặng.
func (r *RecipientResolver) Resolve(ctx context.Context, rule *models.NotificationRule) ([]models.NotificationRecipient, error) {
	switch rule.TargetStrategy {
	case models.StrategyGlobalRoles:
		return r.resolveByRoles(ctx, rule, "")
	case models.StrategyDepartmentRoles:
		return r.resolveByRoles(ctx, rule, rule.DepartmentFilter)
	case models.StrategySpecificUsers:
		return r.resolveSpecificUsers(ctx, rule)
	case models.StrategyDepartmentAll:
		if rule.DepartmentFilter == "" {
			logrus.WithFields(logrus.Fields{
				"ruleId":   rule.ID.Hex(),
				"strategy": rule.TargetStrategy,
			}).Warn("⚠️ [NOTIFY] Chiến lược department_all thiếu departmentFilter, bỏ qua quy tắc")
			return []models.NotificationRecipient{}, nil
		}
		return r.resolveDepartmentAll(ctx, rule.DepartmentFilter)
	default:
		logrus.WithFields(logrus.Fields{
			"ruleId":   rule.ID.Hex(),
			"strategy": rule.TargetStrategy,
		}).Warn("⚠️ [NOTIFY] Chiến lược người nhận không nhận diện được, bỏ qua quy tắc")
		return []models.NotificationRecipient{}, nil
	}
}

// resolveByRoles tìm người nhận theo danh sách tên vai trò. department rỗng
// hoặc ALL nghĩa là mọi phòng ban. Tên vai trò không tồn tại bị bỏ qua;
// hierarchyLevelFilter > 0 thì chỉ xét các vai trò đúng cấp.
func (r *RecipientResolver) resolveByRoles(ctx context.Context, rule *models.NotificationRule, department string) ([]models.NotificationRecipient, error) {
	if len(rule.RoleNames) == 0 {
		logrus.WithFields(logrus.Fields{
			"ruleId":   rule.ID.Hex(),
			"strategy": rule.TargetStrategy,
		}).Warn("⚠️ [NOTIFY] Quy tắc theo vai trò nhưng không có roleNames, bỏ qua quy tắc")
		return []models.NotificationRecipient{}, nil
	}

	ids := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)

	for _, roleName := range rule.RoleNames {
		role, err := r.roles.FindByName(ctx, roleName)
		if err != nil {
			// Vai trò không tồn tại: bỏ qua, không chặn các vai trò còn lại
			continue
		}
		if rule.HierarchyLevelFilter > 0 && role.HierarchyLevel != rule.HierarchyLevelFilter {
			continue
		}

		var assignments []authmodels.RoleAssignment
		if department == "" || department == models.DepartmentAll {
			assignments, err = r.assignments.FindValidByRole(ctx, role.ID)
		} else {
			assignments, err = r.assignments.FindValidByRoleAndDepartment(ctx, role.ID, department)
		}
		if err != nil {
			return nil, err
		}

		for _, a := range assignments {
			if !seen[a.EmployeeID] {
				seen[a.EmployeeID] = true
				ids = append(ids, a.EmployeeID)
			}
		}
	}

	return r.toRecipients(ctx, ids)
}

// resolveSpecificUsers trả về các nhân viên chỉ định trực tiếp, không lọc
// theo cửa sổ hiệu lực của phân công.
func (r *RecipientResolver) resolveSpecificUsers(ctx context.Context, rule *models.NotificationRule) ([]models.NotificationRecipient, error) {
	if len(rule.UserIDs) == 0 {
		logrus.WithFields(logrus.Fields{
			"ruleId":   rule.ID.Hex(),
			"strategy": rule.TargetStrategy,
		}).Warn("⚠️ [NOTIFY] Quy tắc specific_users nhưng không có userIds, bỏ qua quy tắc")
		return []models.NotificationRecipient{}, nil
	}

	// Giữ thứ tự khai báo trong quy tắc, khử trùng lặp
	ids := make([]primitive.ObjectID, 0, len(rule.UserIDs))
	seen := make(map[primitive.ObjectID]bool)
	for _, id := range rule.UserIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return r.toRecipients(ctx, ids)
}

// resolveDepartmentAll trả về mọi nhân viên có phân công hiệu lực trong phòng ban.
// Phòng ban ALL nghĩa là toàn bộ nhân viên có phân công hiệu lực.
func (r *RecipientResolver) resolveDepartmentAll(ctx context.Context, department string) ([]models.NotificationRecipient, error) {
	var assignments []authmodels.RoleAssignment
	var err error
	if department == models.DepartmentAll {
		assignments, err = r.assignments.FindAllValid(ctx)
	} else {
		assignments, err = r.assignments.FindValidByDepartment(ctx, department)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(assignments))
	seen := make(map[primitive.ObjectID]bool)
	for _, a := range assignments {
		if !seen[a.EmployeeID] {
			seen[a.EmployeeID] = true
			ids = append(ids, a.EmployeeID)
		}
	}

	return r.toRecipients(ctx, ids)
}

// toRecipients chuyển danh sách employeeId thành snapshot người nhận (id, tên,
// email). Id không phân giải được thành hồ sơ nhân viên bị bỏ qua im lặng.
func (r *RecipientResolver) toRecipients(ctx context.Context, ids []primitive.ObjectID) ([]models.NotificationRecipient, error) {
	if len(ids) == 0 {
		return []models.NotificationRecipient{}, nil
	}

	employees, err := r.employees.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]authmodels.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	recipients := make([]models.NotificationRecipient, 0, len(ids))
	for _, id := range ids {
		employee, ok := byID[id]
		if !ok {
			continue
		}
		recipients = append(recipients, models.NotificationRecipient{
			EmployeeID: employee.ID,
			Name:       employee.Name,
			Email:      employee.Email,
		})
	}

	return recipients, nil
}
