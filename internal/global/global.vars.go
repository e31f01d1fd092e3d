package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"hr_center/config"
	"hr_center/internal/registry"
)

// HR_CollectionName chứa tên các collection trong MongoDB
type HR_CollectionName struct {
	// Auth Collections
	Employees       string // Tên collection cho nhân viên
	Roles           string // Tên collection cho vai trò
	RoleAssignments string // Tên collection cho phân công vai trò (có hiệu lực theo thời gian)

	// Organization Collections
	OrgUnits string // Tên collection cho đơn vị tổ chức

	// Salary Collections
	SalaryRules    string // Tên collection cho quy tắc lương theo vai trò
	SalaryBreakups string // Tên collection cho file phân rã lương theo kỳ

	// Notification Collections
	NotificationRules string // Tên collection cho quy tắc thông báo theo sự kiện
	Notifications     string // Tên collection cho thông báo đã phát hành

	// Seller Collections
	Sellers string // Tên collection cho người bán đồng bộ từ API bên ngoài
}

// Các biến toàn cục
var Validate *validator.Validate              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration        // Cấu hình của server
var ColNames HR_CollectionName = *new(HR_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
