package authdto

// EmployeeCreateInput đầu vào tạo nhân viên (CRUD).
type EmployeeCreateInput struct {
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Password string `json:"password" bson:"password" validate:"required,strong_password"`
}

// EmployeeUpdateInput đầu vào cập nhật thông tin nhân viên.
type EmployeeUpdateInput struct {
	Name  string `json:"name" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// EmployeeLoginInput đầu vào đăng nhập nhân viên.
type EmployeeLoginInput struct {
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Password string `json:"password" bson:"password" validate:"required"`
	Hwid     string `json:"hwid" bson:"hwid" validate:"required"`
}

// EmployeeLogoutInput đầu vào đăng xuất nhân viên.
type EmployeeLogoutInput struct {
	Hwid string `json:"hwid" bson:"hwid" validate:"required"`
}

// BlockEmployeeInput đầu vào khóa nhân viên.
type BlockEmployeeInput struct {
	Email string `json:"email" bson:"email" validate:"required,email"`
	Note  string `json:"note" bson:"note" validate:"required"`
}

// UnBlockEmployeeInput đầu vào mở khóa nhân viên.
type UnBlockEmployeeInput struct {
	Email string `json:"email" bson:"email" validate:"required,email"`
}
