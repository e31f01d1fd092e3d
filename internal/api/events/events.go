// Package events cung cấp registry sự kiện nghiệp vụ trung tâm.
// Handler được đăng ký tường minh theo từng loại sự kiện lúc khởi động;
// Dispatch chạy đồng bộ để caller biết chắc notification đã được phát hành
// trước khi response trả về. Panic của một handler không ảnh hưởng handler khác.
package events

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"hr_center/internal/logger"
)

// EventType định danh loại sự kiện nghiệp vụ.
type EventType string

// Các sự kiện nghiệp vụ của hệ thống.
const (
	EventSalaryBreakupCreated EventType = "SALARY_BREAKUP_CREATED"
	EventSalaryPaid           EventType = "SALARY_PAID"
	EventSalaryRuleChanged    EventType = "SALARY_RULE_CHANGED"
	EventRoleGranted          EventType = "ROLE_GRANTED"
	EventRoleEnded            EventType = "ROLE_ENDED"
	EventEmployeeBlocked      EventType = "EMPLOYEE_BLOCKED"
	EventSellerSyncCompleted  EventType = "SELLER_SYNC_COMPLETED"
	EventSellerSyncFailed     EventType = "SELLER_SYNC_FAILED"
)

// Event là một sự kiện nghiệp vụ kèm payload (dữ liệu thay thế template và metadata).
type Event struct {
	Type    EventType
	Payload map[string]interface{}
}

// Handler xử lý một sự kiện nghiệp vụ.
type Handler func(ctx context.Context, e Event) error

// Registry quản lý đăng ký handler theo loại sự kiện.
type Registry struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewRegistry tạo mới một Registry rỗng.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[EventType][]Handler),
	}
}

// defaultRegistry là registry dùng chung của app, khởi tạo trong init chain.
var defaultRegistry = NewRegistry()

// Default trả về registry dùng chung của app.
func Default() *Registry {
	return defaultRegistry
}

// Register đăng ký handler cho một loại sự kiện. Gọi lúc khởi động.
func (r *Registry) Register(eventType EventType, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], h)
}

// Dispatch phát sự kiện đồng bộ tới tất cả handler đã đăng ký cho loại sự kiện đó.
// Lỗi hoặc panic của một handler được log và không chặn các handler còn lại;
// lỗi đầu tiên được trả về cho caller tham khảo.
func (r *Registry) Dispatch(ctx context.Context, e Event) error {
	r.mu.RLock()
	list := make([]Handler, len(r.handlers[e.Type]))
	copy(list, r.handlers[e.Type])
	r.mu.RUnlock()

	var firstErr error
	for _, h := range list {
		if err := r.dispatchOne(ctx, h, e); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Registry) dispatchOne(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"event_type": string(e.Type),
				"panic":      rec,
			}).Error("❌ [EVENTS] Handler panic khi xử lý sự kiện")
			err = nil // panic đã được log, không coi là lỗi của dispatch
		}
	}()

	if err := h(ctx, e); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"event_type": string(e.Type),
			"error":      err.Error(),
		}).Error("❌ [EVENTS] Handler trả về lỗi khi xử lý sự kiện")
		return err
	}
	return nil
}

// Register đăng ký handler vào registry dùng chung.
func Register(eventType EventType, h Handler) {
	defaultRegistry.Register(eventType, h)
}

// Dispatch phát sự kiện qua registry dùng chung.
func Dispatch(ctx context.Context, e Event) error {
	return defaultRegistry.Dispatch(ctx, e)
}
