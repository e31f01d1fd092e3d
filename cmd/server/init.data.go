package main

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "hr_center/internal/api/auth/models"
	authsvc "hr_center/internal/api/auth/service"
	"hr_center/internal/api/events"
	notifmodels "hr_center/internal/api/notification/models"
	notifsvc "hr_center/internal/api/notification/service"
	"hr_center/internal/common"
	"hr_center/internal/logger"
)

// InitDefaultData seed dữ liệu mặc định cho hệ thống. Idempotent: chạy lại
// nhiều lần không tạo bản ghi trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.TODO()

	// 1. Tạo role Administrator (nếu chưa có)
	log.Info("🔄 [INIT] Step 1: Initializing Administrator role...")
	if err := initAdministratorRole(ctx); err != nil {
		log.Fatalf("Failed to initialize Administrator role: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Administrator role ready")

	// 2. Seed các quy tắc thông báo mặc định cho các sự kiện nghiệp vụ
	log.Info("🔄 [INIT] Step 2: Initializing default notification rules...")
	if err := initDefaultNotificationRules(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to initialize notification rules")
		log.Warnf("Failed to initialize notification rules: %v", err)
	} else {
		log.Info("✅ [INIT] Step 2: Default notification rules initialized")
	}

	// 3. Cấu hình phòng ban phụ trách theo loại sự kiện
	log.Info("🔄 [INIT] Step 3: Configuring event department mapping...")
	if err := initEventDepartments(); err != nil {
		log.Fatalf("Failed to configure event departments: %v", err)
	}
	log.Info("✅ [INIT] Step 3: Event department mapping configured")

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// initAdministratorRole đảm bảo role Administrator tồn tại.
// Nhân viên đầu tiên được gán role này bằng API phân công vai trò.
func initAdministratorRole(ctx context.Context) error {
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return err
	}

	_, err = roleService.FindByName(ctx, "Administrator")
	if err == nil {
		return nil // Đã tồn tại
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	_, err = roleService.InsertOne(ctx, authmodels.Role{
		Name:           "Administrator",
		Describe:       "Quản trị hệ thống, toàn quyền trên mọi phòng ban",
		HierarchyLevel: 1,
	})
	return err
}

// defaultNotificationRules là các quy tắc thông báo seed sẵn.
// Admin có thể sửa hoặc tắt qua API quản trị quy tắc.
func defaultNotificationRules() []notifmodels.NotificationRule {
	return []notifmodels.NotificationRule{
		{
			Name:            "Default - Salary breakup created",
			EventType:       string(events.EventSalaryBreakupCreated),
			TargetStrategy:  notifmodels.StrategyDepartmentRoles,
			RoleNames:       []string{"Manager"},
			TitleTemplate:   "Bảng lương mới: {{employeeName}}",
			MessageTemplate: "Bảng lương kỳ {{month}}/{{year}} của {{employeeName}} đã được tạo, lương thực nhận {{netSalary}}.",
			Priority:        notifmodels.PriorityNormal,
			IsActive:        true,
		},
		{
			Name:            "Default - Salary paid",
			EventType:       string(events.EventSalaryPaid),
			TargetStrategy:  notifmodels.StrategyDepartmentRoles,
			RoleNames:       []string{"Manager"},
			TitleTemplate:   "Đã thanh toán lương: {{employeeName}}",
			MessageTemplate: "Bảng lương kỳ {{month}}/{{year}} của {{employeeName}} đã được thanh toán.",
			Priority:        notifmodels.PriorityNormal,
			IsActive:        true,
		},
		{
			Name:             "Default - Salary rule changed",
			EventType:        string(events.EventSalaryRuleChanged),
			TargetStrategy:   notifmodels.StrategyGlobalRoles,
			RoleNames:        []string{"Administrator"},
			DepartmentFilter: notifmodels.DepartmentAll,
			TitleTemplate:    "Quy tắc lương thay đổi",
			MessageTemplate:  "Quy tắc lương của vai trò {{roleName}} vừa được {{action}}.",
			Priority:         notifmodels.PriorityHigh,
			IsActive:         true,
		},
		{
			Name:            "Default - Role granted",
			EventType:       string(events.EventRoleGranted),
			TargetStrategy:  notifmodels.StrategyDepartmentRoles,
			RoleNames:       []string{"Manager"},
			TitleTemplate:   "Phân công vai trò mới",
			MessageTemplate: "{{employeeName}} vừa được phân công vai trò {{roleName}}.",
			Priority:        notifmodels.PriorityNormal,
			IsActive:        true,
		},
		{
			Name:            "Default - Role ended",
			EventType:       string(events.EventRoleEnded),
			TargetStrategy:  notifmodels.StrategyDepartmentRoles,
			RoleNames:       []string{"Manager"},
			TitleTemplate:   "Kết thúc phân công vai trò",
			MessageTemplate: "Phân công vai trò {{roleName}} của {{employeeName}} đã kết thúc.",
			Priority:        notifmodels.PriorityNormal,
			IsActive:        true,
		},
		{
			Name:             "Default - Employee blocked",
			EventType:        string(events.EventEmployeeBlocked),
			TargetStrategy:   notifmodels.StrategyGlobalRoles,
			RoleNames:        []string{"Administrator"},
			DepartmentFilter: notifmodels.DepartmentAll,
			TitleTemplate:    "Nhân viên bị khóa",
			MessageTemplate:  "Tài khoản của {{employeeName}} đã bị khóa. Lý do: {{note}}",
			Priority:         notifmodels.PriorityHigh,
			IsActive:         true,
		},
		{
			Name:             "Default - Seller sync completed",
			EventType:        string(events.EventSellerSyncCompleted),
			TargetStrategy:   notifmodels.StrategyGlobalRoles,
			RoleNames:        []string{"Administrator"},
			DepartmentFilter: notifmodels.DepartmentAll,
			TitleTemplate:    "Đồng bộ seller hoàn tất",
			MessageTemplate:  "Đồng bộ seller {{runId}} hoàn tất: {{fetched}} bản ghi, {{created}} tạo mới, {{updated}} cập nhật.",
			Priority:         notifmodels.PriorityLow,
			IsActive:         false, // Tắt mặc định, chỉ bật khi cần theo dõi
		},
		{
			Name:             "Default - Seller sync failed",
			EventType:        string(events.EventSellerSyncFailed),
			TargetStrategy:   notifmodels.StrategyGlobalRoles,
			RoleNames:        []string{"Administrator"},
			DepartmentFilter: notifmodels.DepartmentAll,
			TitleTemplate:    "Đồng bộ seller thất bại",
			MessageTemplate:  "Đồng bộ seller {{runId}} thất bại: {{error}}",
			Priority:         notifmodels.PriorityUrgent,
			IsActive:         true,
		},
	}
}

// initDefaultNotificationRules seed các quy tắc thông báo mặc định theo tên.
// Quy tắc đã tồn tại (kể cả đã bị admin sửa) sẽ được giữ nguyên.
func initDefaultNotificationRules(ctx context.Context) error {
	log := logger.GetAppLogger()

	ruleService, err := notifsvc.NewNotificationRuleService()
	if err != nil {
		return err
	}

	for _, rule := range defaultNotificationRules() {
		exists, err := ruleService.DocumentExists(ctx, bson.M{"name": rule.Name})
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if _, err := ruleService.InsertOne(ctx, rule); err != nil {
			return err
		}
		log.Infof("Seeded notification rule: %s", rule.Name)
	}

	return nil
}

// initEventDepartments cấu hình phòng ban phụ trách cho từng loại sự kiện.
// Dùng làm mức fallback khi quy tắc không chỉ định phòng ban.
func initEventDepartments() error {
	dispatcher, err := notifsvc.GetDispatcher()
	if err != nil {
		return err
	}

	dispatcher.SetEventDepartment(string(events.EventSalaryBreakupCreated), "HR")
	dispatcher.SetEventDepartment(string(events.EventSalaryPaid), "HR")
	dispatcher.SetEventDepartment(string(events.EventSalaryRuleChanged), "HR")
	dispatcher.SetEventDepartment(string(events.EventSellerSyncCompleted), "IT")
	dispatcher.SetEventDepartment(string(events.EventSellerSyncFailed), "IT")

	return nil
}
