// Package notifsvc - Test xác định người nhận theo các chiến lược của quy tắc thông báo.
package notifsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "hr_center/internal/api/auth/models"
	models "hr_center/internal/api/notification/models"
)

// fakeAssignments triển khai assignmentFinder trên dữ liệu trong bộ nhớ.
type fakeAssignments struct {
	byRole     map[primitive.ObjectID][]authmodels.RoleAssignment
	byRoleDept map[string][]authmodels.RoleAssignment
	byDept     map[string][]authmodels.RoleAssignment
	all        []authmodels.RoleAssignment
}

func (f *fakeAssignments) FindValidByRole(_ context.Context, roleID primitive.ObjectID) ([]authmodels.RoleAssignment, error) {
	return f.byRole[roleID], nil
}

func (f *fakeAssignments) FindValidByRoleAndDepartment(_ context.Context, roleID primitive.ObjectID, department string) ([]authmodels.RoleAssignment, error) {
	return f.byRoleDept[roleID.Hex()+"/"+department], nil
}

func (f *fakeAssignments) FindValidByDepartment(_ context.Context, department string) ([]authmodels.RoleAssignment, error) {
	return f.byDept[department], nil
}

func (f *fakeAssignments) FindAllValid(_ context.Context) ([]authmodels.RoleAssignment, error) {
	return f.all, nil
}

// fakeRoles triển khai roleFinder trên map tên → vai trò.
type fakeRoles struct {
	byName map[string]*authmodels.Role
}

func (f *fakeRoles) FindByName(_ context.Context, name string) (*authmodels.Role, error) {
	if r, ok := f.byName[name]; ok {
		return r, nil
	}
	return nil, assert.AnError
}

// fakeEmployees triển khai employeeFinder: mọi id đều phân giải thành một hồ sơ
// nhân viên, trừ các id khai báo trong missing.
type fakeEmployees struct {
	missing map[primitive.ObjectID]bool
}

func (f *fakeEmployees) FindManyByIds(_ context.Context, ids []primitive.ObjectID) ([]authmodels.Employee, error) {
	var found []authmodels.Employee
	for _, id := range ids {
		if f.missing[id] {
			continue
		}
		found = append(found, authmodels.Employee{ID: id, Name: "NV " + id.Hex()[:6], Email: id.Hex()[:6] + "@example.com"})
	}
	return found, nil
}

func assignment(employeeID primitive.ObjectID) authmodels.RoleAssignment {
	return authmodels.RoleAssignment{EmployeeID: employeeID, IsActive: true}
}

func recipientIDs(recipients []models.NotificationRecipient) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(recipients))
	for _, r := range recipients {
		ids = append(ids, r.EmployeeID)
	}
	return ids
}

func TestResolve_GlobalRoles_DedupesAcrossRoles(t *testing.T) {
	roleA := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Kế toán"}
	roleB := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Trưởng phòng"}
	emp1 := primitive.NewObjectID()
	emp2 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{byRole: map[primitive.ObjectID][]authmodels.RoleAssignment{
			roleA.ID: {assignment(emp1), assignment(emp2)},
			roleB.ID: {assignment(emp1)}, // emp1 giữ cả hai vai trò
		}},
		&fakeRoles{byName: map[string]*authmodels.Role{"Kế toán": roleA, "Trưởng phòng": roleB}},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy: models.StrategyGlobalRoles,
		RoleNames:      []string{"Kế toán", "Trưởng phòng"},
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1, emp2}, recipientIDs(recipients), "người nhận phải được khử trùng lặp, giữ thứ tự tìm thấy")
}

func TestResolve_RecipientsCarryNameAndEmail(t *testing.T) {
	role := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Kế toán"}
	emp1 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{byRole: map[primitive.ObjectID][]authmodels.RoleAssignment{
			role.ID: {assignment(emp1)},
		}},
		&fakeRoles{byName: map[string]*authmodels.Role{"Kế toán": role}},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy: models.StrategyGlobalRoles,
		RoleNames:      []string{"Kế toán"},
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, emp1, recipients[0].EmployeeID)
	assert.NotEmpty(t, recipients[0].Name, "người nhận phải kèm tên hiển thị")
	assert.NotEmpty(t, recipients[0].Email, "người nhận phải kèm địa chỉ liên hệ")
	assert.False(t, recipients[0].Read)
}

func TestResolve_GlobalRoles_UnknownRoleNameSkippedSilently(t *testing.T) {
	roleA := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Kế toán"}
	emp1 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{byRole: map[primitive.ObjectID][]authmodels.RoleAssignment{
			roleA.ID: {assignment(emp1)},
		}},
		&fakeRoles{byName: map[string]*authmodels.Role{"Kế toán": roleA}},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy: models.StrategyGlobalRoles,
		RoleNames:      []string{"Không tồn tại", "Kế toán"},
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1}, recipientIDs(recipients), "tên vai trò không tồn tại phải bị bỏ qua im lặng")
}

func TestResolve_GlobalRoles_HierarchyLevelFilter(t *testing.T) {
	manager := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Trưởng phòng", HierarchyLevel: 2}
	staff := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Nhân viên", HierarchyLevel: 5}
	emp1 := primitive.NewObjectID()
	emp2 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{byRole: map[primitive.ObjectID][]authmodels.RoleAssignment{
			manager.ID: {assignment(emp1)},
			staff.ID:   {assignment(emp2)},
		}},
		&fakeRoles{byName: map[string]*authmodels.Role{"Trưởng phòng": manager, "Nhân viên": staff}},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy:       models.StrategyGlobalRoles,
		RoleNames:            []string{"Trưởng phòng", "Nhân viên"},
		HierarchyLevelFilter: 2,
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1}, recipientIDs(recipients), "chỉ vai trò đúng cấp được xét khi có hierarchyLevelFilter")
}

func TestResolve_DepartmentRoles_MissingFilterMeansAllDepartments(t *testing.T) {
	role := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Kế toán"}
	emp1 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{byRole: map[primitive.ObjectID][]authmodels.RoleAssignment{
			role.ID: {assignment(emp1)},
		}},
		&fakeRoles{byName: map[string]*authmodels.Role{"Kế toán": role}},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy: models.StrategyDepartmentRoles,
		RoleNames:      []string{"Kế toán"},
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1}, recipientIDs(recipients), "departmentFilter rỗng thì lọc theo vai trò trên mọi phòng ban")
}

func TestResolve_DepartmentRoles_FiltersByDepartment(t *testing.T) {
	role := &authmodels.Role{ID: primitive.NewObjectID(), Name: "Kế toán"}
	emp1 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{byRoleDept: map[string][]authmodels.RoleAssignment{
			role.ID.Hex() + "/Tài chính": {assignment(emp1)},
		}},
		&fakeRoles{byName: map[string]*authmodels.Role{"Kế toán": role}},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy:   models.StrategyDepartmentRoles,
		RoleNames:        []string{"Kế toán"},
		DepartmentFilter: "Tài chính",
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1}, recipientIDs(recipients))

	rule.DepartmentFilter = "Nhân sự"
	recipients, err = resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Empty(t, recipients, "phòng ban không có phân công thì danh sách rỗng")
}

func TestResolve_SpecificUsers_DropsMissingEmployees(t *testing.T) {
	existing := primitive.NewObjectID()
	deleted := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{},
		&fakeRoles{},
		&fakeEmployees{missing: map[primitive.ObjectID]bool{deleted: true}},
	)

	rule := &models.NotificationRule{
		TargetStrategy: models.StrategySpecificUsers,
		UserIDs:        []primitive.ObjectID{deleted, existing, existing},
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{existing}, recipientIDs(recipients), "nhân viên không còn tồn tại bị bỏ im lặng, trùng lặp bị khử")
}

func TestResolve_DepartmentAll(t *testing.T) {
	emp1 := primitive.NewObjectID()
	emp2 := primitive.NewObjectID()

	resolver := NewRecipientResolver(
		&fakeAssignments{
			byDept: map[string][]authmodels.RoleAssignment{
				"Nhân sự": {assignment(emp1), assignment(emp1)},
			},
			all: []authmodels.RoleAssignment{assignment(emp1), assignment(emp2)},
		},
		&fakeRoles{},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{
		TargetStrategy:   models.StrategyDepartmentAll,
		DepartmentFilter: "Nhân sự",
	}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1}, recipientIDs(recipients))

	// Phòng ban ALL = toàn bộ nhân viên có phân công hiệu lực
	rule.DepartmentFilter = models.DepartmentAll
	recipients, err = resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{emp1, emp2}, recipientIDs(recipients))
}

func TestResolve_DepartmentAll_MissingFilterReturnsEmpty(t *testing.T) {
	emp1 := primitive.NewObjectID()

	// Có phân công hiệu lực trong hệ thống: thiếu filter vẫn không được phát cho ai
	resolver := NewRecipientResolver(
		&fakeAssignments{all: []authmodels.RoleAssignment{assignment(emp1)}},
		&fakeRoles{},
		&fakeEmployees{},
	)

	rule := &models.NotificationRule{TargetStrategy: models.StrategyDepartmentAll}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err, "thiếu departmentFilter là lỗi cấu hình, không phải lỗi runtime")
	assert.Empty(t, recipients, "department_all thiếu departmentFilter phải trả về danh sách rỗng")
}

func TestResolve_UnknownStrategyReturnsEmpty(t *testing.T) {
	resolver := NewRecipientResolver(&fakeAssignments{}, &fakeRoles{}, &fakeEmployees{})

	rule := &models.NotificationRule{TargetStrategy: "broadcast_to_everyone"}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err, "chiến lược lạ không phải lỗi, chỉ cảnh báo và bỏ qua")
	assert.Empty(t, recipients)
}

func TestResolve_RoleStrategyWithoutRoleNamesReturnsEmpty(t *testing.T) {
	resolver := NewRecipientResolver(&fakeAssignments{}, &fakeRoles{}, &fakeEmployees{})

	rule := &models.NotificationRule{TargetStrategy: models.StrategyGlobalRoles}

	recipients, err := resolver.Resolve(context.Background(), rule)
	require.NoError(t, err)
	assert.Empty(t, recipients)
}
