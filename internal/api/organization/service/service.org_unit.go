// Package orgsvc - service đơn vị tổ chức (OrgUnit).
package orgsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "hr_center/internal/api/organization/models"
	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// OrgUnitService là cấu trúc chứa các phương thức liên quan đến đơn vị tổ chức
type OrgUnitService struct {
	*basesvc.BaseServiceMongoImpl[models.OrgUnit]
}

// NewOrgUnitService tạo mới OrgUnitService
func NewOrgUnitService() (*OrgUnitService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.OrgUnits)
	if !exist {
		return nil, fmt.Errorf("failed to get org_units collection: %v", common.ErrNotFound)
	}

	return &OrgUnitService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OrgUnit](collection),
	}, nil
}

// GetTree tải toàn bộ đơn vị và dựng cây từ parentID (zero = từ gốc).
// Đơn vị được sort theo createdAt để thứ tự con ổn định giữa các lần gọi.
func (s *OrgUnitService) GetTree(ctx context.Context, parentID primitive.ObjectID) ([]*models.OrgUnitNode, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	units, err := s.BaseServiceMongoImpl.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	return BuildTree(units, parentID)
}

// ValidateParent kiểm tra parentId (nếu có) trỏ tới một đơn vị tồn tại
func (s *OrgUnitService) ValidateParent(ctx context.Context, parentID primitive.ObjectID) error {
	if parentID.IsZero() {
		return nil
	}
	if _, err := s.BaseServiceMongoImpl.FindOneById(ctx, parentID); err != nil {
		return common.NewError(common.ErrCodeBusinessState, "Đơn vị cha không tồn tại", common.StatusBadRequest, nil)
	}
	return nil
}
