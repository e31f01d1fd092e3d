// Package salarysvc - Test tính bảng lương thuần túy từ quy tắc lương.
package salarysvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "hr_center/internal/api/salary/models"
)

func TestComputeBreakdown_PercentageRoundHalfUp(t *testing.T) {
	rule := models.SalaryRule{
		BaseSalary: 1001,
		SalaryType: models.SalaryTypeMonthly,
		Allowances: []models.SalaryComponent{
			// 1001 * 12.5% = 125.125 -> 125
			{Name: "Phụ cấp ăn trưa", ValueType: models.ValueTypePercentage, Value: 12.5},
			// 1001 * 0.05% = 0.5005 -> 1 (nửa lên)
			{Name: "Phụ cấp nhỏ", ValueType: models.ValueTypePercentage, Value: 0.05},
		},
	}

	b := ComputeBreakdown(rule)

	require.Len(t, b.Lines, 3)
	assert.Equal(t, 125.0, b.Lines[1].Computed, "thành phần phần trăm phải làm tròn nửa lên tại từng dòng")
	assert.Equal(t, 1.0, b.Lines[2].Computed, "0.5005 phải làm tròn lên 1")
	assert.Equal(t, 126.0, b.TotalAllowances)
	assert.Equal(t, 1127.0, b.NetSalary)
}

func TestComputeBreakdown_FixedComponentsKeptAsIs(t *testing.T) {
	rule := models.SalaryRule{
		BaseSalary: 10000,
		SalaryType: models.SalaryTypeMonthly,
		Allowances: []models.SalaryComponent{
			{Name: "Xăng xe", ValueType: models.ValueTypeFixed, Value: 500.5},
		},
		Deductions: []models.SalaryComponent{
			{Name: "Bảo hiểm", ValueType: models.ValueTypePercentage, Value: 10},
			{Name: "Công đoàn", ValueType: models.ValueTypeFixed, Value: 50},
		},
	}

	b := ComputeBreakdown(rule)

	assert.Equal(t, 500.5, b.TotalAllowances, "thành phần cố định giữ nguyên giá trị, không làm tròn")
	assert.Equal(t, 1050.0, b.TotalDeductions)
	assert.Equal(t, 10000+500.5-1050.0, b.NetSalary)
}

func TestComputeBreakdown_TerminalBenefitsExcludedFromTotals(t *testing.T) {
	rule := models.SalaryRule{
		BaseSalary: 20000,
		SalaryType: models.SalaryTypeMonthly,
		Allowances: []models.SalaryComponent{
			{Name: "Nhà ở", ValueType: models.ValueTypeFixed, Value: 2000},
		},
		TerminalBenefits: []models.SalaryComponent{
			{Name: "Trợ cấp thôi việc", ValueType: models.ValueTypePercentage, Value: 50},
		},
	}

	b := ComputeBreakdown(rule)

	require.Len(t, b.Lines, 3)
	terminal := b.Lines[2]
	assert.Equal(t, models.CategoryTerminalBenefit, terminal.Category)
	assert.True(t, terminal.ExcludeFromTotals, "phúc lợi thôi việc phải được đánh dấu excludeFromTotals")
	assert.Equal(t, 10000.0, terminal.Computed, "phúc lợi thôi việc vẫn được tính giá trị để hiển thị")
	assert.Equal(t, 2000.0, b.TotalAllowances, "phúc lợi thôi việc không cộng vào tổng phụ cấp")
	assert.Equal(t, 22000.0, b.NetSalary, "phúc lợi thôi việc không ảnh hưởng lương thực nhận")
}

func TestComputeBreakdown_LineOrderFollowsRule(t *testing.T) {
	rule := models.SalaryRule{
		BaseSalary: 5000,
		SalaryType: models.SalaryTypeMonthly,
		Allowances: []models.SalaryComponent{
			{Name: "A1", ValueType: models.ValueTypeFixed, Value: 1},
			{Name: "A2", ValueType: models.ValueTypeFixed, Value: 2},
		},
		Deductions: []models.SalaryComponent{
			{Name: "D1", ValueType: models.ValueTypeFixed, Value: 3},
		},
	}

	b := ComputeBreakdown(rule)

	require.Len(t, b.Lines, 4)
	assert.Equal(t, models.CategoryBase, b.Lines[0].Category, "dòng đầu tiên luôn là lương cơ bản")
	assert.Equal(t, "A1", b.Lines[1].Name)
	assert.Equal(t, "A2", b.Lines[2].Name)
	assert.Equal(t, "D1", b.Lines[3].Name)
}

func TestComputeBreakdown_EmptyComponents(t *testing.T) {
	rule := models.SalaryRule{BaseSalary: 7000, SalaryType: models.SalaryTypeMonthly}

	b := ComputeBreakdown(rule)

	require.Len(t, b.Lines, 1)
	assert.Equal(t, 0.0, b.TotalAllowances)
	assert.Equal(t, 0.0, b.TotalDeductions)
	assert.Equal(t, 7000.0, b.NetSalary, "không có thành phần nào thì lương thực nhận bằng lương cơ bản")
}
