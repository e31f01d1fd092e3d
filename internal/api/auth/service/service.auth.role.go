// Package authsvc - service vai trò (Role).
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "hr_center/internal/api/auth/models"
	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// RoleService là cấu trúc chứa các phương thức liên quan đến vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}

	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](collection),
	}, nil
}

// FindByName tìm vai trò theo tên (tên là khóa nghiệp vụ, unique)
func (s *RoleService) FindByName(ctx context.Context, name string) (*models.Role, error) {
	role, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": name}, nil)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByDepartment liệt kê các vai trò thuộc một phòng ban
func (s *RoleService) FindByDepartment(ctx context.Context, department string) ([]models.Role, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"department": department}, nil)
}
