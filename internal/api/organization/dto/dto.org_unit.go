package orgdto

// OrgUnitCreateInput đầu vào tạo đơn vị tổ chức.
type OrgUnitCreateInput struct {
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	ParentID string `json:"parentId,omitempty" bson:"parentId,omitempty" transform:"str_objectid,optional"`
	RoleID   string `json:"roleId,omitempty" bson:"roleId,omitempty" transform:"str_objectid,optional"`
	Describe string `json:"describe,omitempty" bson:"describe,omitempty"`
}

// OrgUnitUpdateInput đầu vào cập nhật đơn vị tổ chức.
type OrgUnitUpdateInput struct {
	Name     string `json:"name" bson:"name,omitempty" validate:"omitempty,no_xss"`
	ParentID string `json:"parentId" bson:"parentId,omitempty" transform:"str_objectid,optional"`
	RoleID   string `json:"roleId" bson:"roleId,omitempty" transform:"str_objectid,optional"`
	Describe string `json:"describe" bson:"describe,omitempty"`
}
