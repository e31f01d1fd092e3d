package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái phát hành của thông báo.
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// NotificationRecipient một người nhận trong thông báo, kèm trạng thái đã đọc.
// Danh sách người nhận là snapshot tại thời điểm phát hành: thay đổi phân công
// vai trò sau đó không làm thay đổi người đã nhận.
type NotificationRecipient struct {
	EmployeeID primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	Read       bool               `json:"read" bson:"read"`
	ReadAt     int64              `json:"readAt,omitempty" bson:"readAt,omitempty"`
}

// Notification một thông báo đã phát hành. Mỗi lần một quy tắc khớp sự kiện
// tạo đúng một bản ghi, chứa toàn bộ người nhận.
type Notification struct {
	ID         primitive.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`
	EventType  string                  `json:"eventType,omitempty" bson:"eventType,omitempty"`
	Title      string                  `json:"title" bson:"title"`
	Message    string                  `json:"message" bson:"message"`
	Department string                  `json:"department,omitempty" bson:"department,omitempty"`
	Recipients []NotificationRecipient `json:"recipients" bson:"recipients"`
	Priority   string                  `json:"priority" bson:"priority"`
	ActionURL  string                  `json:"actionUrl,omitempty" bson:"actionUrl,omitempty"`
	Metadata   map[string]interface{}  `json:"metadata,omitempty" bson:"metadata,omitempty"`
	RuleID     primitive.ObjectID      `json:"ruleId,omitempty" bson:"ruleId,omitempty"`
	Status     string                  `json:"status" bson:"status"`
	CreatedAt  int64                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                   `json:"updatedAt" bson:"updatedAt"`
}
