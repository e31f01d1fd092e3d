// Package salarydto chứa các cấu trúc đầu vào của domain salary.
package salarydto

// SalaryComponentInput một thành phần lương trong đầu vào quy tắc.
type SalaryComponentInput struct {
	Name      string  `json:"name" bson:"name" validate:"required,no_xss"`
	ValueType string  `json:"valueType" bson:"valueType" validate:"required,oneof=fixed percentage"`
	Value     float64 `json:"value" bson:"value" validate:"required"`
}

// SalaryRuleCreateInput đầu vào tạo quy tắc lương cho một vai trò.
type SalaryRuleCreateInput struct {
	RoleID           string                 `json:"roleId" bson:"roleId" validate:"required" transform:"str_objectid"`
	BaseSalary       float64                `json:"baseSalary" bson:"baseSalary" validate:"required,gt=0"`
	SalaryType       string                 `json:"salaryType" bson:"salaryType" validate:"required,oneof=monthly hourly"`
	Allowances       []SalaryComponentInput `json:"allowances" bson:"allowances" validate:"omitempty,dive"`
	Deductions       []SalaryComponentInput `json:"deductions" bson:"deductions" validate:"omitempty,dive"`
	TerminalBenefits []SalaryComponentInput `json:"terminalBenefits" bson:"terminalBenefits" validate:"omitempty,dive"`
}

// SalaryRuleUpdateInput đầu vào cập nhật quy tắc lương - thay thế toàn bộ
// định nghĩa quy tắc (không cập nhật từng phần). RoleID không được đổi.
type SalaryRuleUpdateInput struct {
	BaseSalary       float64                `json:"baseSalary" bson:"baseSalary" validate:"required,gt=0"`
	SalaryType       string                 `json:"salaryType" bson:"salaryType" validate:"required,oneof=monthly hourly"`
	Allowances       []SalaryComponentInput `json:"allowances" bson:"allowances" validate:"omitempty,dive"`
	Deductions       []SalaryComponentInput `json:"deductions" bson:"deductions" validate:"omitempty,dive"`
	TerminalBenefits []SalaryComponentInput `json:"terminalBenefits" bson:"terminalBenefits" validate:"omitempty,dive"`
}

// BreakupCreateInput đầu vào tính bảng lương cho một nhân viên trong một kỳ.
type BreakupCreateInput struct {
	EmployeeID string `json:"employeeId" bson:"employeeId" validate:"required" transform:"str_objectid"`
	Month      int    `json:"month" bson:"month" validate:"required,min=1,max=12"`
	Year       int    `json:"year" bson:"year" validate:"required,min=2000"`
}

// BreakupUpdateInput đầu vào cập nhật bảng lương qua CRUD - chỉ cho phép ghi chú trạng thái.
// Việc đánh dấu đã thanh toán đi qua endpoint riêng để phát sự kiện.
type BreakupUpdateInput struct {
	PaymentStatus string `json:"paymentStatus" bson:"paymentStatus,omitempty" validate:"omitempty,oneof=pending"`
}
