// Package models - model đơn vị tổ chức (OrgUnit) thuộc domain organization.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrgUnit một đơn vị trong cây tổ chức.
// ParentID là zero ObjectID với đơn vị gốc. RoleID (tùy chọn) liên kết đơn vị
// với vai trò đứng đầu đơn vị đó.
type OrgUnit struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	ParentID  primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty" index:"single:1,sparse"`
	RoleID    primitive.ObjectID `json:"roleId,omitempty" bson:"roleId,omitempty"`
	Describe  string             `json:"describe,omitempty" bson:"describe,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrgUnitNode một node trong cây tổ chức đã dựng, chứa đơn vị và các con theo thứ tự đầu vào.
type OrgUnitNode struct {
	Unit     OrgUnit        `json:"unit"`
	Children []*OrgUnitNode `json:"children"`
}
