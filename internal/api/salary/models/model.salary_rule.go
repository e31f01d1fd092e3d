// Package models - model quy tắc lương (SalaryRule) thuộc domain salary.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại giá trị của thành phần lương.
const (
	ValueTypeFixed      = "fixed"      // Giá trị cố định, lấy nguyên giá trị
	ValueTypePercentage = "percentage" // Phần trăm của lương cơ bản
)

// Các loại lương.
const (
	SalaryTypeMonthly = "monthly"
	SalaryTypeHourly  = "hourly"
)

// SalaryComponent một thành phần lương trong quy tắc (phụ cấp, khấu trừ hoặc phúc lợi thôi việc).
type SalaryComponent struct {
	Name      string  `json:"name" bson:"name"`
	ValueType string  `json:"valueType" bson:"valueType"`
	Value     float64 `json:"value" bson:"value"`
}

// SalaryRule quy tắc lương gắn với một vai trò (mỗi vai trò một quy tắc).
// Thứ tự các thành phần trong từng danh sách được giữ nguyên khi tính toán.
type SalaryRule struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RoleID           primitive.ObjectID `json:"roleId" bson:"roleId" index:"unique"`
	BaseSalary       float64            `json:"baseSalary" bson:"baseSalary"`
	SalaryType       string             `json:"salaryType" bson:"salaryType"`
	Allowances       []SalaryComponent  `json:"allowances" bson:"allowances"`
	Deductions       []SalaryComponent  `json:"deductions" bson:"deductions"`
	TerminalBenefits []SalaryComponent  `json:"terminalBenefits" bson:"terminalBenefits"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
