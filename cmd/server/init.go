package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"hr_center/config"
	"hr_center/internal/database"
	"hr_center/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Auth Collections
	global.ColNames.Employees = "auth_employees"
	global.ColNames.Roles = "auth_roles"
	global.ColNames.RoleAssignments = "auth_role_assignments"

	// Organization Collections
	global.ColNames.OrgUnits = "org_units"

	// Salary Collections
	global.ColNames.SalaryRules = "salary_rules"
	global.ColNames.SalaryBreakups = "salary_breakups"

	// Notification Collections
	global.ColNames.NotificationRules = "notification_rules"
	global.ColNames.Notifications = "notifications"

	// Seller Collections
	global.ColNames.Sellers = "sellers"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index cho các collection HR (unique, compound)
	dbName := global.ServerConfig.MongoDB_DBName
	if err := database.CreateHrIndexes(context.TODO(), global.MongoDB_Session.Database(dbName)); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured database indexes")
}
