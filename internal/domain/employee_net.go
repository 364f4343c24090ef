package domain

import "github.com/shopspring/decimal"

// EmployeeNet holds an employee's salary and debt after deductions.
type EmployeeNet struct {
	BaseSalary            decimal.Decimal
	SalaryDeductionsTotal decimal.Decimal
	DebtDeductionsTotal   decimal.Decimal
	SalaryToDebtTotal     decimal.Decimal
	TotalDebtExposure     decimal.Decimal
	CurrentSalary         decimal.Decimal
	CurrentDebt           decimal.Decimal
}

// BuildEmployeeNet nets an employee's deductions against salary and debt.
//
// A salary_to_debt deduction lowers the current salary and raises the current
// debt by the same amount. Debt exposure is the full amount of every debt
// item; debt deductions are only netted at the employee level. Types are
// read the same way the collector books them.
func BuildEmployeeNet(employeeID string, baseSalary decimal.Decimal, deductions []Deduction, debts []Debt) EmployeeNet {
	net := EmployeeNet{
		BaseSalary:            baseSalary,
		SalaryDeductionsTotal: decimal.Zero,
		DebtDeductionsTotal:   decimal.Zero,
		SalaryToDebtTotal:     decimal.Zero,
		TotalDebtExposure:     decimal.Zero,
	}

	for _, d := range deductions {
		if d.EmployeeID != employeeID {
			continue
		}
		amount := amountOf(d.Amount)
		switch NormalizeDeductionType(string(d.DeductionType)) {
		case DeductionTypeDebt:
			net.DebtDeductionsTotal = net.DebtDeductionsTotal.Add(amount)
		case DeductionTypeSalaryToDebt:
			net.SalaryToDebtTotal = net.SalaryToDebtTotal.Add(amount)
		default:
			net.SalaryDeductionsTotal = net.SalaryDeductionsTotal.Add(amount)
		}
	}

	for _, debt := range debts {
		if debt.DebtorID != employeeID {
			continue
		}
		net.TotalDebtExposure = net.TotalDebtExposure.Add(debt.Exposure())
	}

	net.CurrentSalary = baseSalary.Sub(net.SalaryDeductionsTotal).Sub(net.SalaryToDebtTotal)
	net.CurrentDebt = net.TotalDebtExposure.Sub(net.DebtDeductionsTotal).Add(net.SalaryToDebtTotal)

	return net
}
