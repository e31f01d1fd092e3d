// Package salarysvc - service lương: tính bảng lương, quản lý quy tắc lương.
package salarysvc

import (
	"math"

	models "hr_center/internal/api/salary/models"
)

// Breakdown kết quả tính lương thuần túy, chưa gắn với nhân viên hay kỳ lương.
type Breakdown struct {
	Lines           []models.BreakupLine
	TotalAllowances float64
	TotalDeductions float64
	NetSalary       float64
}

// roundHalfUp làm tròn nửa lên: 0.5 luôn được làm tròn lên.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// computeComponent tính giá trị một thành phần lương theo loại giá trị.
// Thành phần phần trăm được tính trên lương cơ bản và làm tròn nửa lên
// ngay tại từng thành phần (không làm tròn dồn ở tổng).
func computeComponent(baseSalary float64, c models.SalaryComponent) float64 {
	if c.ValueType == models.ValueTypePercentage {
		return roundHalfUp(baseSalary * c.Value / 100)
	}
	return c.Value
}

// ComputeBreakdown tính bảng lương từ một quy tắc lương.
// Thứ tự dòng: lương cơ bản, phụ cấp, khấu trừ, phúc lợi thôi việc -
// mỗi nhóm giữ nguyên thứ tự khai báo trong quy tắc.
// Phúc lợi thôi việc chỉ hiển thị, không cộng vào tổng nào.
// NetSalary = lương cơ bản + tổng phụ cấp - tổng khấu trừ.
func ComputeBreakdown(rule models.SalaryRule) Breakdown {
	lines := make([]models.BreakupLine, 0, 1+len(rule.Allowances)+len(rule.Deductions)+len(rule.TerminalBenefits))

	lines = append(lines, models.BreakupLine{
		Name:     "Lương cơ bản",
		Category: models.CategoryBase,
		Computed: rule.BaseSalary,
	})

	var totalAllowances float64
	for _, c := range rule.Allowances {
		computed := computeComponent(rule.BaseSalary, c)
		totalAllowances += computed
		lines = append(lines, models.BreakupLine{
			Name:     c.Name,
			Category: models.CategoryAllowance,
			Computed: computed,
		})
	}

	var totalDeductions float64
	for _, c := range rule.Deductions {
		computed := computeComponent(rule.BaseSalary, c)
		totalDeductions += computed
		lines = append(lines, models.BreakupLine{
			Name:     c.Name,
			Category: models.CategoryDeduction,
			Computed: computed,
		})
	}

	for _, c := range rule.TerminalBenefits {
		lines = append(lines, models.BreakupLine{
			Name:              c.Name,
			Category:          models.CategoryTerminalBenefit,
			Computed:          computeComponent(rule.BaseSalary, c),
			ExcludeFromTotals: true,
		})
	}

	return Breakdown{
		Lines:           lines,
		TotalAllowances: totalAllowances,
		TotalDeductions: totalDeductions,
		NetSalary:       rule.BaseSalary + totalAllowances - totalDeductions,
	}
}
