package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại thành phần trong bảng lương.
const (
	CategoryBase            = "base"
	CategoryAllowance       = "allowance"
	CategoryDeduction       = "deduction"
	CategoryTerminalBenefit = "terminal_benefit"
)

// Trạng thái thanh toán của bảng lương.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// BreakupLine một dòng đã tính trong bảng lương.
// ExcludeFromTotals đánh dấu dòng chỉ mang tính thông tin,
// không cộng vào tổng thu nhập/khấu trừ (phúc lợi thôi việc).
type BreakupLine struct {
	Name              string  `json:"name" bson:"name"`
	Category          string  `json:"category" bson:"category"`
	Computed          float64 `json:"computed" bson:"computed"`
	ExcludeFromTotals bool    `json:"excludeFromTotals" bson:"excludeFromTotals"`
}

// BreakupFile bảng lương của một nhân viên cho một kỳ (tháng/năm).
// Quy tắc lương được snapshot lại tại thời điểm tính để bảng lương
// không bị thay đổi khi quy tắc đổi sau này.
type BreakupFile struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID      primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"single:1"`
	RoleID          primitive.ObjectID `json:"roleId" bson:"roleId"`
	Month           int                `json:"month" bson:"month"`
	Year            int                `json:"year" bson:"year"`
	RuleSnapshot    SalaryRule         `json:"ruleSnapshot" bson:"ruleSnapshot"`
	Lines           []BreakupLine      `json:"lines" bson:"lines"`
	TotalAllowances float64            `json:"totalAllowances" bson:"totalAllowances"`
	TotalDeductions float64            `json:"totalDeductions" bson:"totalDeductions"`
	NetSalary       float64            `json:"netSalary" bson:"netSalary"`
	PaymentStatus   string             `json:"paymentStatus" bson:"paymentStatus"`
	PaidAt          int64              `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
