package notifsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "hr_center/internal/api/base/service"
	models "hr_center/internal/api/notification/models"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// NotificationRuleService là cấu trúc chứa các phương thức liên quan đến quy tắc thông báo
type NotificationRuleService struct {
	*basesvc.BaseServiceMongoImpl[models.NotificationRule]
}

// NewNotificationRuleService tạo mới NotificationRuleService
func NewNotificationRuleService() (*NotificationRuleService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.NotificationRules)
	if !exist {
		return nil, fmt.Errorf("failed to get notification_rules collection: %v", common.ErrNotFound)
	}

	return &NotificationRuleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.NotificationRule](collection),
	}, nil
}

// FindActiveByEvent trả về các quy tắc đang bật cho một loại sự kiện,
// theo thứ tự tạo để việc phát hành ổn định giữa các lần chạy.
func (s *NotificationRuleService) FindActiveByEvent(ctx context.Context, eventType string) ([]models.NotificationRule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, bson.M{"eventType": eventType, "isActive": true}, opts)
}

// FindByIdActive trả về quy tắc theo id nếu đang bật.
func (s *NotificationRuleService) FindByIdActive(ctx context.Context, id primitive.ObjectID) (models.NotificationRule, error) {
	rule, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.NotificationRule{}, err
	}
	if !rule.IsActive {
		return models.NotificationRule{}, common.NewError(common.ErrCodeBusinessState, "Quy tắc thông báo đang tắt", common.StatusBadRequest, nil)
	}
	return rule, nil
}
