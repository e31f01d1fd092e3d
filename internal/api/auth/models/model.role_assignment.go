// Package models - RoleAssignment thuộc domain auth.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAssignment phân công vai trò cho nhân viên theo phòng ban, có hiệu lực theo thời gian.
// Phân công không bao giờ bị xóa: khi kết thúc chỉ set IsActive = false hoặc để cửa sổ
// hiệu lực tự hết hạn. EffectiveUntil = 0 nghĩa là không giới hạn.
type RoleAssignment struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID     primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"single:1"`
	RoleID         primitive.ObjectID `json:"roleId" bson:"roleId" index:"single:1"`
	Department     string             `json:"department" bson:"department" index:"single:1"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	EffectiveFrom  int64              `json:"effectiveFrom" bson:"effectiveFrom"`
	EffectiveUntil int64              `json:"effectiveUntil" bson:"effectiveUntil"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsCurrentlyValid kiểm tra phân công có đang hiệu lực tại thời điểm hiện tại hay không:
// IsActive = true, EffectiveFrom đã tới và EffectiveUntil chưa qua (0 = không giới hạn).
func (a *RoleAssignment) IsCurrentlyValid() bool {
	return a.IsValidAt(time.Now().UnixMilli())
}

// IsValidAt kiểm tra phân công có hiệu lực tại thời điểm at (UnixMilli) hay không
func (a *RoleAssignment) IsValidAt(at int64) bool {
	if !a.IsActive {
		return false
	}
	if a.EffectiveFrom > 0 && at < a.EffectiveFrom {
		return false
	}
	if a.EffectiveUntil > 0 && at > a.EffectiveUntil {
		return false
	}
	return true
}
