// Package authsvc - service nhân viên (Employee).
package authsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "hr_center/internal/api/auth/dto"
	models "hr_center/internal/api/auth/models"
	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/common"
	"hr_center/internal/global"
	"hr_center/internal/utility"
)

// EmployeeService là cấu trúc chứa các phương thức liên quan đến nhân viên
type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[models.Employee]
}

// NewEmployeeService tạo mới EmployeeService
func NewEmployeeService() (*EmployeeService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}

	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Employee](collection),
	}, nil
}

// Register tạo mới nhân viên với mật khẩu đã hash bằng bcrypt
func (s *EmployeeService) Register(ctx context.Context, input *authdto.EmployeeCreateInput) (*models.Employee, error) {
	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo tài khoản", common.StatusInternalServerError, err)
	}

	employee := models.Employee{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Tokens:   []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, employee)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": created.ID.Hex(),
		"email":       created.Email,
	}).Info("✅ [AUTH] Đăng ký nhân viên thành công")
	return &created, nil
}

// Login xác thực email/mật khẩu và cấp JWT token theo thiết bị (hwid).
// Token mới nhất được lưu vào field `token`, token theo thiết bị lưu trong mảng `tokens`.
func (s *EmployeeService) Login(ctx context.Context, input *authdto.EmployeeLoginInput) (*models.Employee, error) {
	employee, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": input.Email,
		}).Warn("❌ [AUTH] Đăng nhập thất bại: không tìm thấy nhân viên")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email hoặc mật khẩu không đúng", common.StatusUnauthorized, nil)
	}

	if !utility.ComparePasswords(employee.Password, input.Password) {
		logrus.WithFields(logrus.Fields{
			"employee_id": employee.ID.Hex(),
		}).Warn("❌ [AUTH] Đăng nhập thất bại: sai mật khẩu")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email hoặc mật khẩu không đúng", common.StatusUnauthorized, nil)
	}

	if employee.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+employee.BlockNote, common.StatusForbidden, nil)
	}

	// Sinh token mới: thời điểm + số ngẫu nhiên đảm bảo token khác nhau mỗi lần login
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.ServerConfig.JwtSecret, employee.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	employee.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range employee.Tokens {
		if t.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		employee.Tokens = append(employee.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		employee.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  employee.Token,
			"tokens": employee.Tokens,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, employee.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"employee_id": employee.ID.Hex(),
			"error":       err.Error(),
		}).Error("❌ [AUTH] Lỗi khi cập nhật token vào nhân viên")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": updated.ID.Hex(),
		"email":       updated.Email,
	}).Info("✅ [AUTH] Đăng nhập thành công")
	return &updated, nil
}

// Logout đăng xuất nhân viên (xóa token theo hwid)
func (s *EmployeeService) Logout(ctx context.Context, employeeID primitive.ObjectID, input *authdto.EmployeeLogoutInput) error {
	employee, err := s.BaseServiceMongoImpl.FindOneById(ctx, employeeID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range employee.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, employeeID, updateData)
	return err
}

// BlockEmployee khóa tài khoản nhân viên theo email, kèm ghi chú lý do
func (s *EmployeeService) BlockEmployee(ctx context.Context, input *authdto.BlockEmployeeInput) (*models.Employee, error) {
	employee, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Note,
			"token":     "",
			"tokens":    []models.Token{},
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, employee.ID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": updated.ID.Hex(),
		"note":        input.Note,
	}).Warn("🔒 [AUTH] Đã khóa tài khoản nhân viên")
	return &updated, nil
}

// UnBlockEmployee mở khóa tài khoản nhân viên theo email
func (s *EmployeeService) UnBlockEmployee(ctx context.Context, input *authdto.UnBlockEmployeeInput) (*models.Employee, error) {
	employee, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		},
	}
	return s.updateAndReturn(ctx, employee.ID, updateData)
}

func (s *EmployeeService) updateAndReturn(ctx context.Context, id primitive.ObjectID, data *basesvc.UpdateData) (*models.Employee, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
