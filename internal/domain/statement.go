package domain

import "time"

// BuildStatement collects the holder's movements from sources and builds
// its ledger.
func BuildStatement(holder *AccountHolder, sources Sources, now time.Time) Ledger {
	return BuildLedger(holder.OpeningBalance, CollectMovements(holder.ID, sources, now))
}

// BuildStatementNet computes the employee figures for holder from sources.
func BuildStatementNet(holder *AccountHolder, sources Sources) EmployeeNet {
	return BuildEmployeeNet(holder.ID, holder.BaseSalary(), sources.Deductions, sources.Debts)
}
