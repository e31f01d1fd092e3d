package authdto

// RoleAssignmentCreateInput đầu vào gán vai trò cho nhân viên.
// EffectiveFrom/EffectiveUntil là UnixMilli; EffectiveUntil = 0 nghĩa là không giới hạn.
type RoleAssignmentCreateInput struct {
	EmployeeID     string `json:"employeeId" bson:"employeeId" validate:"required" transform:"str_objectid"`
	RoleID         string `json:"roleId" bson:"roleId" validate:"required" transform:"str_objectid"`
	Department     string `json:"department" bson:"department" validate:"required"`
	EffectiveFrom  int64  `json:"effectiveFrom,omitempty" bson:"effectiveFrom,omitempty"`
	EffectiveUntil int64  `json:"effectiveUntil,omitempty" bson:"effectiveUntil,omitempty"`
}

// RoleAssignmentUpdateInput đầu vào cập nhật phân công vai trò.
type RoleAssignmentUpdateInput struct {
	Department     string `json:"department" bson:"department,omitempty"`
	EffectiveUntil int64  `json:"effectiveUntil" bson:"effectiveUntil,omitempty"`
}
