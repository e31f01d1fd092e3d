// Package notifsvc - Test chuỗi ưu tiên xác định phòng ban của dispatcher.
package notifsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "hr_center/internal/api/auth/models"
	"hr_center/internal/api/events"
	models "hr_center/internal/api/notification/models"
)

func TestResolveDepartment_RuleFilterWinsFirst(t *testing.T) {
	d := &NotificationDispatcher{eventDepartments: map[string]string{
		string(events.EventSalaryPaid): "Tài chính",
	}}

	rule := &models.NotificationRule{DepartmentFilter: "Nhân sự"}
	e := events.Event{Type: events.EventSalaryPaid, Payload: map[string]interface{}{}}

	assert.Equal(t, "Nhân sự", d.resolveDepartment(rule, e), "departmentFilter của quy tắc có ưu tiên cao nhất")
}

func TestResolveDepartment_EventMapSecond(t *testing.T) {
	d := &NotificationDispatcher{eventDepartments: map[string]string{
		string(events.EventSalaryPaid): "Tài chính",
	}}

	rule := &models.NotificationRule{}
	e := events.Event{Type: events.EventSalaryPaid, Payload: map[string]interface{}{}}

	assert.Equal(t, "Tài chính", d.resolveDepartment(rule, e))
}

func TestResolveDepartment_FallsBackToAll(t *testing.T) {
	d := &NotificationDispatcher{eventDepartments: map[string]string{}}

	rule := &models.NotificationRule{}
	e := events.Event{Type: events.EventRoleGranted, Payload: map[string]interface{}{}}

	assert.Equal(t, models.DepartmentAll, d.resolveDepartment(rule, e), "không có nguồn nào chỉ định thì áp dụng mọi phòng ban")
}

func TestPriorityOrDefault(t *testing.T) {
	assert.Equal(t, models.PriorityNormal, priorityOrDefault(""))
	assert.Equal(t, models.PriorityUrgent, priorityOrDefault(models.PriorityUrgent))
}

type fakeRuleStore struct {
	rules []models.NotificationRule
}

func (f *fakeRuleStore) FindActiveByEvent(_ context.Context, eventType string) ([]models.NotificationRule, error) {
	var out []models.NotificationRule
	for _, r := range f.rules {
		if r.EventType == eventType && r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRuleStore) FindByIdActive(_ context.Context, id primitive.ObjectID) (models.NotificationRule, error) {
	for _, r := range f.rules {
		if r.ID == id && r.IsActive {
			return r, nil
		}
	}
	return models.NotificationRule{}, nil
}

type fakeNotificationStore struct {
	inserted []models.Notification
}

func (f *fakeNotificationStore) InsertOne(_ context.Context, data models.Notification) (models.Notification, error) {
	f.inserted = append(f.inserted, data)
	return data, nil
}

// fakeResolver trả về người nhận theo ID của quy tắc.
type fakeResolver struct {
	byRule map[primitive.ObjectID][]models.NotificationRecipient
}

func (f *fakeResolver) Resolve(_ context.Context, rule *models.NotificationRule) ([]models.NotificationRecipient, error) {
	return f.byRule[rule.ID], nil
}

// Hai quy tắc đang bật cho cùng sự kiện, một quy tắc không có người nhận:
// chỉ lưu đúng một bản ghi thông báo.
func TestHandleEvent_SkipsRuleWithoutRecipients(t *testing.T) {
	matched := primitive.NewObjectID()
	empty := primitive.NewObjectID()
	employee := primitive.NewObjectID()

	store := &fakeNotificationStore{}
	d := &NotificationDispatcher{
		rules: &fakeRuleStore{rules: []models.NotificationRule{
			{
				ID:              matched,
				EventType:       string(events.EventSalaryPaid),
				TitleTemplate:   "Đã thanh toán lương: {{employeeName}}",
				MessageTemplate: "Kỳ {{month}}/{{year}}",
				Priority:        models.PriorityHigh,
				IsActive:        true,
			},
			{
				ID:        empty,
				EventType: string(events.EventSalaryPaid),
				IsActive:  true,
			},
		}},
		notifications: store,
		resolver: &fakeResolver{byRule: map[primitive.ObjectID][]models.NotificationRecipient{
			matched: {{EmployeeID: employee, Name: "Nguyễn Văn A", Email: "a@example.com"}},
		}},
		eventDepartments: map[string]string{string(events.EventSalaryPaid): "HR"},
	}

	err := d.HandleEvent(context.Background(), events.Event{
		Type: events.EventSalaryPaid,
		Payload: map[string]interface{}{
			"employeeName": "Nguyễn Văn A",
			"month":        7,
			"year":         2026,
		},
	})
	require.NoError(t, err)

	require.Len(t, store.inserted, 1, "quy tắc không có người nhận không tạo bản ghi")
	n := store.inserted[0]
	assert.Equal(t, matched, n.RuleID)
	assert.Equal(t, "Đã thanh toán lương: Nguyễn Văn A", n.Title)
	assert.Equal(t, "Kỳ 7/2026", n.Message)
	assert.Equal(t, "HR", n.Department)
	assert.Equal(t, models.PriorityHigh, n.Priority)
	assert.Equal(t, models.NotificationStatusSent, n.Status)
	require.Len(t, n.Recipients, 1)
	assert.Equal(t, employee, n.Recipients[0].EmployeeID)
	assert.Equal(t, "a@example.com", n.Recipients[0].Email)
}

// Quy tắc department_all thiếu departmentFilter là lỗi cấu hình: không được
// phát rộng cho toàn công ty, không tạo bản ghi thông báo nào.
func TestHandleEvent_DepartmentAllWithoutFilterPersistsNothing(t *testing.T) {
	emp1 := primitive.NewObjectID()
	emp2 := primitive.NewObjectID()

	store := &fakeNotificationStore{}
	d := &NotificationDispatcher{
		rules: &fakeRuleStore{rules: []models.NotificationRule{
			{
				ID:              primitive.NewObjectID(),
				EventType:       string(events.EventSalaryPaid),
				TargetStrategy:  models.StrategyDepartmentAll,
				TitleTemplate:   "Đã thanh toán lương",
				MessageTemplate: "Kỳ {{month}}/{{year}}",
				IsActive:        true,
			},
		}},
		notifications: store,
		resolver: NewRecipientResolver(
			&fakeAssignments{all: []authmodels.RoleAssignment{assignment(emp1), assignment(emp2)}},
			&fakeRoles{},
			&fakeEmployees{},
		),
		eventDepartments: map[string]string{},
	}

	err := d.HandleEvent(context.Background(), events.Event{
		Type:    events.EventSalaryPaid,
		Payload: map[string]interface{}{"month": 7, "year": 2026},
	})
	require.NoError(t, err)
	assert.Empty(t, store.inserted, "quy tắc cấu hình sai phải suy biến về không người nhận, không phát rộng")
}

// NotifyEmployee đi qua cùng đường resolve→persist với quy tắc specific_users tạm.
func TestNotifyEmployee_PersistsSnapshotRecipient(t *testing.T) {
	employee := primitive.NewObjectID()
	store := &fakeNotificationStore{}
	d := &NotificationDispatcher{
		notifications: store,
		resolver: &fakeResolver{byRule: map[primitive.ObjectID][]models.NotificationRecipient{
			primitive.NilObjectID: {{EmployeeID: employee, Name: "Trần B", Email: "b@example.com"}},
		}},
		eventDepartments: map[string]string{},
	}

	err := d.NotifyEmployee(context.Background(), employee, "Tiêu đề", "Nội dung")
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	n := store.inserted[0]
	assert.Equal(t, "Tiêu đề", n.Title)
	assert.Equal(t, models.PriorityNormal, n.Priority)
	require.Len(t, n.Recipients, 1)
	assert.Equal(t, "Trần B", n.Recipients[0].Name)
}
