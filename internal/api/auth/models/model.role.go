// Package models - Role thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role vai trò trong hệ thống.
// HierarchyLevel càng nhỏ thì cấp càng cao (1 = cấp cao nhất).
// Department là mã phòng ban sở hữu vai trò (rỗng = vai trò toàn công ty).
type Role struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Describe       string             `json:"describe" bson:"describe"`
	HierarchyLevel int                `json:"hierarchyLevel" bson:"hierarchyLevel"`
	Department     string             `json:"department,omitempty" bson:"department,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
