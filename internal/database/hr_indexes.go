// Package database - Index cho các collection HR (unique, compound) được tạo lúc khởi động.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hr_center/internal/global"
)

// CreateHrIndexes tạo các index cho các collection HR.
// Gọi một lần trong init chain sau khi đăng ký collections.
func CreateHrIndexes(ctx context.Context, db *mongo.Database) error {
	// auth_employees: email unique sparse — định danh đăng nhập
	employees := db.Collection(global.ColNames.Employees)
	if _, err := employees.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("employee_email_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_roles: name unique — tên vai trò là khóa nghiệp vụ
	roles := db.Collection(global.ColNames.Roles)
	if _, err := roles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("role_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_role_assignments: (employeeId, roleId, isActive) — resolver query chính
	assignments := db.Collection(global.ColNames.RoleAssignments)
	if _, err := assignments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "roleId", Value: 1},
			{Key: "isActive", Value: 1},
		},
		Options: options.Index().SetName("assignment_role_active"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	if _, err := assignments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "department", Value: 1},
			{Key: "isActive", Value: 1},
		},
		Options: options.Index().SetName("assignment_department_active"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	if _, err := assignments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetName("assignment_employee"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// org_units: parentId — build tree theo parent
	orgUnits := db.Collection(global.ColNames.OrgUnits)
	if _, err := orgUnits.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "parentId", Value: 1}},
		Options: options.Index().SetName("org_unit_parent").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// salary_rules: roleId unique — một quy tắc lương cho mỗi vai trò
	salaryRules := db.Collection(global.ColNames.SalaryRules)
	if _, err := salaryRules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "roleId", Value: 1}},
		Options: options.Index().SetName("salary_rule_role_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// salary_breakups: (employeeId, month, year) unique — một file phân rã cho mỗi kỳ lương
	breakups := db.Collection(global.ColNames.SalaryBreakups)
	if _, err := breakups.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "employeeId", Value: 1},
			{Key: "month", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().SetName("breakup_employee_period_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notification_rules: (eventType, isActive) — dispatch lookup
	notificationRules := db.Collection(global.ColNames.NotificationRules)
	if _, err := notificationRules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventType", Value: 1},
			{Key: "isActive", Value: 1},
		},
		Options: options.Index().SetName("notification_rule_event_active"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: recipients.employeeId multikey — truy vấn hộp thư theo nhân viên
	notifications := db.Collection(global.ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "recipients.employeeId", Value: 1}},
		Options: options.Index().SetName("notification_recipient"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sellers: externalId unique — upsert idempotent theo định danh bên ngoài
	sellers := db.Collection(global.ColNames.Sellers)
	if _, err := sellers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "externalId", Value: 1}},
		Options: options.Index().SetName("seller_external_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
