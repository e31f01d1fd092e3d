// Package notifdto chứa các cấu trúc đầu vào của domain notification.
package notifdto

// NotificationRuleCreateInput đầu vào tạo quy tắc thông báo.
type NotificationRuleCreateInput struct {
	Name                 string   `json:"name" bson:"name" validate:"required,no_xss"`
	EventType            string   `json:"eventType" bson:"eventType" validate:"required"`
	TargetStrategy       string   `json:"targetStrategy" bson:"targetStrategy" validate:"required,oneof=global_roles department_roles specific_users department_all"`
	RoleNames            []string `json:"roleNames,omitempty" bson:"roleNames,omitempty"`
	UserIDs              []string `json:"userIds,omitempty" bson:"userIds,omitempty" transform:"str_objectid_slice"`
	DepartmentFilter     string   `json:"departmentFilter,omitempty" bson:"departmentFilter,omitempty"`
	HierarchyLevelFilter int      `json:"hierarchyLevelFilter,omitempty" bson:"hierarchyLevelFilter,omitempty" validate:"omitempty,min=1"`
	TitleTemplate        string   `json:"titleTemplate" bson:"titleTemplate" validate:"required"`
	MessageTemplate      string   `json:"messageTemplate" bson:"messageTemplate" validate:"required"`
	Priority             string   `json:"priority,omitempty" bson:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	ActionURL            string   `json:"actionUrl,omitempty" bson:"actionUrl,omitempty" validate:"omitempty,url"`
	IsActive             bool     `json:"isActive" bson:"isActive"`
}

// NotificationRuleUpdateInput đầu vào cập nhật quy tắc thông báo.
type NotificationRuleUpdateInput struct {
	Name                 string   `json:"name" bson:"name,omitempty" validate:"omitempty,no_xss"`
	EventType            string   `json:"eventType" bson:"eventType,omitempty"`
	TargetStrategy       string   `json:"targetStrategy" bson:"targetStrategy,omitempty" validate:"omitempty,oneof=global_roles department_roles specific_users department_all"`
	RoleNames            []string `json:"roleNames" bson:"roleNames,omitempty"`
	UserIDs              []string `json:"userIds" bson:"userIds,omitempty" transform:"str_objectid_slice"`
	DepartmentFilter     string   `json:"departmentFilter" bson:"departmentFilter,omitempty"`
	HierarchyLevelFilter int      `json:"hierarchyLevelFilter" bson:"hierarchyLevelFilter,omitempty" validate:"omitempty,min=1"`
	TitleTemplate        string   `json:"titleTemplate" bson:"titleTemplate,omitempty"`
	MessageTemplate      string   `json:"messageTemplate" bson:"messageTemplate,omitempty"`
	Priority             string   `json:"priority" bson:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	ActionURL            string   `json:"actionUrl" bson:"actionUrl,omitempty" validate:"omitempty,url"`
	IsActive             bool     `json:"isActive" bson:"isActive,omitempty"`
}

// TriggerRuleInput payload tùy ý để phát hành thủ công một quy tắc.
type TriggerRuleInput struct {
	Payload map[string]interface{} `json:"payload" bson:"payload"`
}

// Các loại đích gửi trực tiếp.
const (
	SendTargetEmployee       = "employee"
	SendTargetRole           = "role"
	SendTargetDepartmentRole = "department_role"
	SendTargetDepartment     = "department"
)

// DirectSendInput đầu vào gửi thông báo trực tiếp, không qua quy tắc.
type DirectSendInput struct {
	Target     string `json:"target" bson:"target" validate:"required,oneof=employee role department_role department"`
	EmployeeID string `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	RoleName   string `json:"roleName,omitempty" bson:"roleName,omitempty"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
	Title      string `json:"title" bson:"title" validate:"required"`
	Message    string `json:"message" bson:"message" validate:"required"`
}

// NotificationCreateInput đầu vào tạo thông báo qua CRUD quản trị.
// Luồng nghiệp vụ bình thường tạo thông báo qua dispatcher, không qua CRUD.
type NotificationCreateInput struct {
	Title      string `json:"title" bson:"title" validate:"required"`
	Message    string `json:"message" bson:"message" validate:"required"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
	Priority   string `json:"priority,omitempty" bson:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	Status     string `json:"status" bson:"status" validate:"omitempty,oneof=pending sent failed"`
}

// NotificationUpdateInput đầu vào cập nhật thông báo qua CRUD - chỉ trạng thái phát hành.
// Đánh dấu đã đọc của chính mình đi qua endpoint riêng.
type NotificationUpdateInput struct {
	Status string `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=pending sent failed"`
}
