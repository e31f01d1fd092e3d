package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "hr_center/internal/api/auth/models"
	authsvc "hr_center/internal/api/auth/service"
	"hr_center/internal/common"
	"hr_center/internal/global"
	"hr_center/internal/logger"
	"hr_center/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền nhân viên
type AuthManager struct {
	EmployeeCRUD   *authsvc.EmployeeService
	RoleCRUD       *authsvc.RoleService
	AssignmentCRUD *authsvc.RoleAssignmentService
	Cache          *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	employeeService, err := authsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %v", err)
	}
	newManager.EmployeeCRUD = employeeService

	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	newManager.RoleCRUD = roleService

	assignmentService, err := authsvc.NewRoleAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role assignment service: %v", err)
	}
	newManager.AssignmentCRUD = assignmentService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// getValidAssignments lấy danh sách phân công đang hiệu lực của nhân viên từ cache hoặc database
func (am *AuthManager) getValidAssignments(ctx context.Context, employeeIDHex string) ([]models.RoleAssignment, error) {
	cacheKey := "employee_assignments:" + employeeIDHex

	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.([]models.RoleAssignment), nil
	}

	assignments, err := am.AssignmentCRUD.FindValidByEmployee(ctx, utility.String2ObjectID(employeeIDHex))
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, assignments)
	return assignments, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập; khác rỗng thì nhân viên
// phải có ít nhất một phân công vai trò đang hiệu lực.
func AuthMiddleware(requirePermission string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Kiểm tra chữ ký của JWT trước khi tra cứu database
		if _, err := utility.VerifyToken(global.ServerConfig.JwtSecret, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Invalid or expired token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm nhân viên có token
		// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
		// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
		var employee models.Employee
		var err error

		employee, err = authManager.EmployeeCRUD.FindOne(c.Context(), bson.M{"token": token}, nil)
		if err != nil {
			employee, err = authManager.EmployeeCRUD.FindOne(c.Context(), bson.M{"tokens.jwtToken": token}, nil)
		}

		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra nhân viên có bị khóa không
		if employee.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+employee.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin nhân viên vào context
		c.Locals("user_id", employee.ID.Hex())
		c.Locals("user", employee)

		// Nếu không yêu cầu permission cụ thể, cho phép truy cập ngay
		// (endpoint như /auth/profile chỉ cần xác thực)
		if requirePermission == "" {
			return c.Next()
		}

		// Route yêu cầu permission: nhân viên phải có ít nhất một phân công vai trò đang hiệu lực
		assignments, err := authManager.getValidAssignments(c.Context(), employee.ID.Hex())
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"employee_id": employee.ID.Hex(),
				"error":       err.Error(),
				"path":        c.Path(),
			}).Error("❌ [AUTH] Failed to get employee assignments")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không thể kiểm tra quyền truy cập",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		if len(assignments) == 0 {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"employee_id": employee.ID.Hex(),
				"email":       employee.Email,
				"path":        c.Path(),
				"permission":  requirePermission,
			}).Warn("❌ [AUTH] Employee has no valid role assignments, denying access")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Nhân viên chưa được gán vai trò đang hiệu lực. Vui lòng liên hệ quản trị viên để được cấp quyền truy cập.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu danh sách phòng ban và permission name vào context để handler sử dụng
		departments := make([]string, 0, len(assignments))
		for _, a := range assignments {
			departments = append(departments, a.Department)
		}
		c.Locals("departments", utility.Unique(departments))
		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}
