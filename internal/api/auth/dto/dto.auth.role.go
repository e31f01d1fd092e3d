package authdto

// RoleCreateInput dùng cho tạo vai trò.
type RoleCreateInput struct {
	Name           string `json:"name" bson:"name" validate:"required,no_xss"`
	Describe       string `json:"describe,omitempty" bson:"describe,omitempty"`
	HierarchyLevel int    `json:"hierarchyLevel" bson:"hierarchyLevel" validate:"required,min=1"`
	Department     string `json:"department,omitempty" bson:"department,omitempty"`
}

// RoleUpdateInput dùng cho cập nhật vai trò.
type RoleUpdateInput struct {
	Name           string `json:"name" bson:"name,omitempty"`
	Describe       string `json:"describe" bson:"describe,omitempty"`
	HierarchyLevel int    `json:"hierarchyLevel" bson:"hierarchyLevel,omitempty" validate:"omitempty,min=1"`
	Department     string `json:"department" bson:"department,omitempty"`
}
