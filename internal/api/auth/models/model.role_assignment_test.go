// Package models - Test cửa sổ hiệu lực của phân công vai trò.
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleAssignment_IsValidAt(t *testing.T) {
	now := time.Now().UnixMilli()
	hour := int64(3600 * 1000)

	tests := []struct {
		name       string
		assignment RoleAssignment
		at         int64
		want       bool
	}{
		{
			name:       "đang hiệu lực, không có ngày kết thúc",
			assignment: RoleAssignment{IsActive: true, EffectiveFrom: now - hour},
			at:         now,
			want:       true,
		},
		{
			name:       "đang hiệu lực, trong cửa sổ thời gian",
			assignment: RoleAssignment{IsActive: true, EffectiveFrom: now - hour, EffectiveUntil: now + hour},
			at:         now,
			want:       true,
		},
		{
			name:       "chưa đến ngày hiệu lực",
			assignment: RoleAssignment{IsActive: true, EffectiveFrom: now + hour},
			at:         now,
			want:       false,
		},
		{
			name:       "đã hết hiệu lực",
			assignment: RoleAssignment{IsActive: true, EffectiveFrom: now - 2*hour, EffectiveUntil: now - hour},
			at:         now,
			want:       false,
		},
		{
			name:       "bị vô hiệu hóa dù trong cửa sổ thời gian",
			assignment: RoleAssignment{IsActive: false, EffectiveFrom: now - hour, EffectiveUntil: now + hour},
			at:         now,
			want:       false,
		},
		{
			name:       "hiệu lực đúng tại biên effectiveFrom",
			assignment: RoleAssignment{IsActive: true, EffectiveFrom: now},
			at:         now,
			want:       true,
		},
		{
			name:       "hiệu lực đúng tại biên effectiveUntil",
			assignment: RoleAssignment{IsActive: true, EffectiveFrom: now - hour, EffectiveUntil: now},
			at:         now,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.assignment.IsValidAt(tt.at))
		})
	}
}
