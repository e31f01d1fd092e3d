package notifsvc

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "hr_center/internal/api/auth/models"
	authsvc "hr_center/internal/api/auth/service"
	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/api/events"
	models "hr_center/internal/api/notification/models"
	"hr_center/internal/common"
	"hr_center/internal/global"
)

// ruleStore là phần giao diện của NotificationRuleService mà dispatcher cần.
type ruleStore interface {
	FindActiveByEvent(ctx context.Context, eventType string) ([]models.NotificationRule, error)
	FindByIdActive(ctx context.Context, id primitive.ObjectID) (models.NotificationRule, error)
}

// notificationStore lưu thông báo đã phát hành.
type notificationStore interface {
	InsertOne(ctx context.Context, data models.Notification) (models.Notification, error)
}

// recipientResolver xác định người nhận cho một quy tắc.
type recipientResolver interface {
	Resolve(ctx context.Context, rule *models.NotificationRule) ([]models.NotificationRecipient, error)
}

// NotificationDispatcher phát hành thông báo theo quy tắc khi sự kiện nghiệp vụ xảy ra.
type NotificationDispatcher struct {
	rules         ruleStore
	notifications notificationStore
	resolver      recipientResolver

	// eventDepartments ánh xạ tĩnh loại sự kiện → phòng ban phụ trách,
	// dùng khi quy tắc không chỉ định phòng ban.
	mu               sync.RWMutex
	eventDepartments map[string]string
}

var (
	dispatcherInstance *NotificationDispatcher
	dispatcherOnce     sync.Once
	dispatcherErr      error
)

// GetDispatcher trả về instance dùng chung của NotificationDispatcher.
func GetDispatcher() (*NotificationDispatcher, error) {
	dispatcherOnce.Do(func() {
		dispatcherInstance, dispatcherErr = newNotificationDispatcher()
	})
	return dispatcherInstance, dispatcherErr
}

func newNotificationDispatcher() (*NotificationDispatcher, error) {
	ruleService, err := NewNotificationRuleService()
	if err != nil {
		return nil, err
	}
	notificationService, err := NewNotificationService()
	if err != nil {
		return nil, err
	}
	assignmentService, err := authsvc.NewRoleAssignmentService()
	if err != nil {
		return nil, err
	}
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, err
	}
	employeeCollection, exist := global.RegistryCollections.Get(global.ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}
	employeeService := basesvc.NewBaseServiceMongo[authmodels.Employee](employeeCollection)

	return &NotificationDispatcher{
		rules:            ruleService,
		notifications:    notificationService,
		resolver:         NewRecipientResolver(assignmentService, roleService, employeeService),
		eventDepartments: make(map[string]string),
	}, nil
}

// SetEventDepartment cấu hình phòng ban phụ trách cho một loại sự kiện.
// Gọi lúc khởi động khi seed dữ liệu mặc định.
func (d *NotificationDispatcher) SetEventDepartment(eventType, department string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.eventDepartments[eventType] = department
}

// resolveDepartment xác định phòng ban ghi trên bản ghi thông báo theo chuỗi
// ưu tiên: departmentFilter của quy tắc → ánh xạ tĩnh sự kiện → ALL.
// Chỉ dùng cho trường department hiển thị; việc xác định người nhận luôn dựa
// trên departmentFilter của chính quy tắc (xem RecipientResolver).
func (d *NotificationDispatcher) resolveDepartment(rule *models.NotificationRule, e events.Event) string {
	if rule.DepartmentFilter != "" {
		return rule.DepartmentFilter
	}
	d.mu.RLock()
	dept := d.eventDepartments[string(e.Type)]
	d.mu.RUnlock()
	if dept != "" {
		return dept
	}
	return models.DepartmentAll
}

// HandleEvent xử lý một sự kiện nghiệp vụ: tìm các quy tắc đang bật cho sự kiện
// và phát hành thông báo theo từng quy tắc. Lỗi của một quy tắc được log và
// không chặn các quy tắc còn lại.
func (d *NotificationDispatcher) HandleEvent(ctx context.Context, e events.Event) error {
	rules, err := d.rules.FindActiveByEvent(ctx, string(e.Type))
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		logrus.WithField("event_type", string(e.Type)).Debug("Không có quy tắc thông báo nào cho sự kiện")
		return nil
	}

	for i := range rules {
		if err := d.dispatchRule(ctx, &rules[i], e); err != nil {
			logrus.WithFields(logrus.Fields{
				"ruleId":     rules[i].ID.Hex(),
				"event_type": string(e.Type),
				"error":      err.Error(),
			}).Error("❌ [NOTIFY] Lỗi phát hành thông báo theo quy tắc")
		}
	}

	return nil
}

// dispatchRule phát hành thông báo cho một quy tắc: xác định người nhận,
// render template và lưu đúng một bản ghi thông báo chứa toàn bộ người nhận.
// Không có người nhận thì bỏ qua im lặng, không tạo bản ghi.
func (d *NotificationDispatcher) dispatchRule(ctx context.Context, rule *models.NotificationRule, e events.Event) error {
	recipients, err := d.resolver.Resolve(ctx, rule)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		logrus.WithFields(logrus.Fields{
			"ruleId":     rule.ID.Hex(),
			"event_type": string(e.Type),
		}).Info("Quy tắc không có người nhận, bỏ qua")
		return nil
	}

	title := RenderTemplate(rule.TitleTemplate, e.Payload)
	message := RenderTemplate(rule.MessageTemplate, e.Payload)
	department := d.resolveDepartment(rule, e)

	_, err = d.notifications.InsertOne(ctx, models.Notification{
		EventType:  string(e.Type),
		Title:      title,
		Message:    message,
		Department: department,
		Recipients: recipients,
		Priority:   priorityOrDefault(rule.Priority),
		ActionURL:  rule.ActionURL,
		Metadata:   e.Payload,
		RuleID:     rule.ID,
		Status:     models.NotificationStatusSent,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"ruleId":     rule.ID.Hex(),
		"event_type": string(e.Type),
		"recipients": len(recipients),
	}).Info("✅ [NOTIFY] Đã phát hành thông báo theo quy tắc")
	return nil
}

func priorityOrDefault(priority string) string {
	if priority == "" {
		return models.PriorityNormal
	}
	return priority
}

// TriggerRule phát hành thủ công một quy tắc với payload tùy ý (kiểm thử quy tắc).
func (d *NotificationDispatcher) TriggerRule(ctx context.Context, ruleID primitive.ObjectID, payload map[string]interface{}) error {
	rule, err := d.rules.FindByIdActive(ctx, ruleID)
	if err != nil {
		return err
	}
	return d.dispatchRule(ctx, &rule, events.Event{Type: events.EventType(rule.EventType), Payload: payload})
}

// NotifyEmployee gửi thông báo trực tiếp cho một nhân viên, không qua quy tắc.
func (d *NotificationDispatcher) NotifyEmployee(ctx context.Context, employeeID primitive.ObjectID, title, message string) error {
	rule := models.NotificationRule{
		TargetStrategy: models.StrategySpecificUsers,
		UserIDs:        []primitive.ObjectID{employeeID},
	}
	return d.notifyResolved(ctx, &rule, "", title, message)
}

// NotifyRole gửi thông báo trực tiếp cho mọi nhân viên giữ một vai trò (mọi phòng ban).
func (d *NotificationDispatcher) NotifyRole(ctx context.Context, roleName, title, message string) error {
	rule := models.NotificationRule{
		TargetStrategy: models.StrategyGlobalRoles,
		RoleNames:      []string{roleName},
	}
	return d.notifyResolved(ctx, &rule, "", title, message)
}

// NotifyDepartmentRole gửi thông báo trực tiếp cho nhân viên giữ một vai trò trong một phòng ban.
func (d *NotificationDispatcher) NotifyDepartmentRole(ctx context.Context, roleName, department, title, message string) error {
	rule := models.NotificationRule{
		TargetStrategy:   models.StrategyDepartmentRoles,
		RoleNames:        []string{roleName},
		DepartmentFilter: department,
	}
	return d.notifyResolved(ctx, &rule, department, title, message)
}

// NotifyDepartment gửi thông báo trực tiếp cho toàn bộ nhân viên một phòng ban.
func (d *NotificationDispatcher) NotifyDepartment(ctx context.Context, department, title, message string) error {
	rule := models.NotificationRule{
		TargetStrategy:   models.StrategyDepartmentAll,
		DepartmentFilter: department,
	}
	return d.notifyResolved(ctx, &rule, department, title, message)
}

// notifyResolved phát hành thông báo trực tiếp: cùng đường resolve→persist
// như dispatchRule nhưng nhận title/message có sẵn thay vì render template,
// và không tra cứu quy tắc trong kho.
func (d *NotificationDispatcher) notifyResolved(ctx context.Context, rule *models.NotificationRule, department, title, message string) error {
	recipients, err := d.resolver.Resolve(ctx, rule)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	_, err = d.notifications.InsertOne(ctx, models.Notification{
		Title:      title,
		Message:    message,
		Department: department,
		Recipients: recipients,
		Priority:   models.PriorityNormal,
		Status:     models.NotificationStatusSent,
	})
	return err
}

// RegisterEventHandlers đăng ký dispatcher cho toàn bộ sự kiện nghiệp vụ.
// Gọi một lần lúc khởi động, sau khi registry collections đã sẵn sàng.
func (d *NotificationDispatcher) RegisterEventHandlers(registry *events.Registry) {
	for _, eventType := range []events.EventType{
		events.EventSalaryBreakupCreated,
		events.EventSalaryPaid,
		events.EventSalaryRuleChanged,
		events.EventRoleGranted,
		events.EventRoleEnded,
		events.EventEmployeeBlocked,
		events.EventSellerSyncCompleted,
		events.EventSellerSyncFailed,
	} {
		registry.Register(eventType, d.HandleEvent)
	}
}
