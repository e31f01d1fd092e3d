// Package models - model quy tắc thông báo và thông báo đã phát hành.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các chiến lược xác định người nhận thông báo.
const (
	StrategyGlobalRoles     = "global_roles"     // Mọi nhân viên giữ các vai trò chỉ định, mọi phòng ban
	StrategyDepartmentRoles = "department_roles" // Nhân viên giữ các vai trò chỉ định trong một phòng ban
	StrategySpecificUsers   = "specific_users"   // Danh sách nhân viên chỉ định trực tiếp
	StrategyDepartmentAll   = "department_all"   // Toàn bộ nhân viên trong một phòng ban
)

// Các mức độ ưu tiên của thông báo.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// DepartmentAll là giá trị phòng ban đặc biệt: áp dụng cho mọi phòng ban.
const DepartmentAll = "ALL"

// NotificationRule quy tắc phát hành thông báo khi một sự kiện nghiệp vụ xảy ra.
// Template hỗ trợ placeholder dạng {{key}} thay bằng giá trị trong payload sự kiện.
// HierarchyLevelFilter = 0 nghĩa là không lọc theo cấp vai trò.
type NotificationRule struct {
	ID                   primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name                 string               `json:"name" bson:"name"`
	EventType            string               `json:"eventType" bson:"eventType" index:"single:1"`
	TargetStrategy       string               `json:"targetStrategy" bson:"targetStrategy"`
	RoleNames            []string             `json:"roleNames,omitempty" bson:"roleNames,omitempty"`
	UserIDs              []primitive.ObjectID `json:"userIds,omitempty" bson:"userIds,omitempty"`
	DepartmentFilter     string               `json:"departmentFilter,omitempty" bson:"departmentFilter,omitempty"`
	HierarchyLevelFilter int                  `json:"hierarchyLevelFilter,omitempty" bson:"hierarchyLevelFilter,omitempty"`
	TitleTemplate        string               `json:"titleTemplate" bson:"titleTemplate"`
	MessageTemplate      string               `json:"messageTemplate" bson:"messageTemplate"`
	Priority             string               `json:"priority" bson:"priority"`
	ActionURL            string               `json:"actionUrl,omitempty" bson:"actionUrl,omitempty"`
	IsActive             bool                 `json:"isActive" bson:"isActive"`
	CreatedAt            int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt            int64                `json:"updatedAt" bson:"updatedAt"`
}
