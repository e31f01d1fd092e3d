package notifsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "hr_center/internal/api/base/models"
	basesvc "hr_center/internal/api/base/service"
	models "hr_center/internal/api/notification/models"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến thông báo đã phát hành
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](collection),
	}, nil
}

// ListByRecipient trả về thông báo có một người nhận cụ thể, mới nhất trước, có phân trang.
func (s *NotificationService) ListByRecipient(ctx context.Context, recipientID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Notification], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"recipients.employeeId": recipientID}, page, limit, opts)
}

// MarkRead đánh dấu một thông báo đã đọc cho một người nhận. Chỉ người có mặt
// trong danh sách người nhận mới được đánh dấu, và chỉ cờ read của riêng họ thay đổi.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, recipientID primitive.ObjectID) (models.Notification, error) {
	updated, err := s.UpdateOne(ctx,
		bson.M{
			"_id":        notificationID,
			"recipients": bson.M{"$elemMatch": bson.M{"employeeId": recipientID, "read": false}},
		},
		&basesvc.UpdateData{Set: map[string]interface{}{
			"recipients.$.read":   true,
			"recipients.$.readAt": time.Now().UnixMilli(),
		}},
		nil,
	)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Notification{}, err
	}

	// Không khớp bản ghi chưa đọc: hoặc đã đọc trước đó (trả về nguyên trạng),
	// hoặc người gọi không nằm trong danh sách người nhận (not found).
	return s.FindOne(ctx, bson.M{"_id": notificationID, "recipients.employeeId": recipientID}, nil)
}

// MarkAllRead đánh dấu toàn bộ thông báo chưa đọc của một người nhận là đã đọc.
// Trả về số thông báo được cập nhật.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	filter := bson.M{"recipients": bson.M{"$elemMatch": bson.M{"employeeId": recipientID, "read": false}}}
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"recipients.$[elem].read":   true,
		"recipients.$[elem].readAt": time.Now().UnixMilli(),
	}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem.employeeId": recipientID, "elem.read": false}},
	})
	return s.UpdateMany(ctx, filter, update, opts)
}

// UnreadCount trả về số thông báo chưa đọc của một người nhận.
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{
		"recipients": bson.M{"$elemMatch": bson.M{"employeeId": recipientID, "read": false}},
	})
}
