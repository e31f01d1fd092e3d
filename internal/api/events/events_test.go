// Package events - Test registry sự kiện: dispatch đồng bộ, cách ly lỗi và panic.
package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_CallsAllHandlersInOrder(t *testing.T) {
	r := NewRegistry()
	var calls []string

	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := r.Dispatch(context.Background(), Event{Type: EventSalaryPaid})
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls, "handler chạy đồng bộ theo thứ tự đăng ký")
}

func TestDispatch_HandlerErrorDoesNotBlockOthers(t *testing.T) {
	r := NewRegistry()
	wantErr := errors.New("handler hỏng")
	var secondCalled bool

	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error { return wantErr })
	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error {
		secondCalled = true
		return nil
	})

	err := r.Dispatch(context.Background(), Event{Type: EventSalaryPaid})
	assert.Equal(t, wantErr, err, "lỗi đầu tiên được trả về cho caller")
	assert.True(t, secondCalled, "handler lỗi không được chặn handler còn lại")
}

func TestDispatch_HandlerPanicIsIsolated(t *testing.T) {
	r := NewRegistry()
	var secondCalled bool

	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error { panic("nổ") })
	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error {
		secondCalled = true
		return nil
	})

	err := r.Dispatch(context.Background(), Event{Type: EventSalaryPaid})
	assert.NoError(t, err, "panic được log, không coi là lỗi của dispatch")
	assert.True(t, secondCalled)
}

func TestDispatch_NoHandlersIsNoop(t *testing.T) {
	r := NewRegistry()
	err := r.Dispatch(context.Background(), Event{Type: EventRoleGranted})
	assert.NoError(t, err)
}

func TestDispatch_OnlyMatchingEventType(t *testing.T) {
	r := NewRegistry()
	var called bool

	r.Register(EventSalaryPaid, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	_ = r.Dispatch(context.Background(), Event{Type: EventRoleGranted})
	assert.False(t, called, "handler chỉ nhận sự kiện đúng loại đã đăng ký")
}
