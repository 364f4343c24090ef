package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalanceDescription labels the synthetic first row of every ledger.
const OpeningBalanceDescription = "Opening balance"

// LedgerEntry is a movement together with the balance after applying it.
// The opening row is not a real movement and has Opening set.
type LedgerEntry struct {
	Movement            Movement
	RunningBalanceAfter decimal.Decimal
	Opening             bool
}

// Totals summarizes a ledger.
type Totals struct {
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Closing decimal.Decimal
}

// Ledger is the chronologically ordered statement of one account holder.
type Ledger struct {
	OpeningBalance decimal.Decimal
	Entries        []LedgerEntry
	Totals         Totals
}

// BuildLedger sorts movements by date and folds them over the opening
// balance. Movements with equal dates keep their input order, so repeated
// builds over the same input produce the same statement. The input slice is
// not modified.
func BuildLedger(openingBalance decimal.Decimal, movements []Movement) Ledger {
	sorted := make([]Movement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return fold(openingBalance, time.Time{}, sorted)
}

// fold walks already sorted movements. openingDate only dates the synthetic row.
func fold(openingBalance decimal.Decimal, openingDate time.Time, sorted []Movement) Ledger {
	entries := make([]LedgerEntry, 0, len(sorted)+1)
	entries = append(entries, LedgerEntry{
		Movement: Movement{
			Date:        openingDate,
			Description: OpeningBalanceDescription,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		},
		RunningBalanceAfter: openingBalance,
		Opening:             true,
	})

	balance := openingBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, m := range sorted {
		balance = balance.Add(m.Debit).Sub(m.Credit)
		totalDebit = totalDebit.Add(m.Debit)
		totalCredit = totalCredit.Add(m.Credit)

		entries = append(entries, LedgerEntry{
			Movement:            m,
			RunningBalanceAfter: balance,
		})
	}

	return Ledger{
		OpeningBalance: openingBalance,
		Entries:        entries,
		Totals: Totals{
			Debit:   totalDebit,
			Credit:  totalCredit,
			Closing: openingBalance.Add(totalDebit).Sub(totalCredit),
		},
	}
}

// Movements returns the ledger's movements in statement order, without the
// opening row.
func (l Ledger) Movements() []Movement {
	movements := make([]Movement, 0, len(l.Entries))
	for _, e := range l.Entries {
		if e.Opening {
			continue
		}
		movements = append(movements, e.Movement)
	}
	return movements
}

// Between restricts the ledger to movements dated within [from, to]. A zero
// bound is open. Movements before from are carried into the opening balance,
// so running balances inside the window are unchanged.
func (l Ledger) Between(from, to time.Time) Ledger {
	broughtForward := l.OpeningBalance
	window := make([]Movement, 0, len(l.Entries))

	for _, m := range l.Movements() {
		if !from.IsZero() && m.Date.Before(from) {
			broughtForward = broughtForward.Add(m.Net())
			continue
		}
		if !to.IsZero() && m.Date.After(to) {
			continue
		}
		window = append(window, m)
	}

	return fold(broughtForward, from, window)
}

// ExceedsCreditLimit reports whether the closing balance is above limit.
// A nil limit never is.
func (l Ledger) ExceedsCreditLimit(limit *decimal.Decimal) bool {
	if limit == nil {
		return false
	}
	return l.Totals.Closing.GreaterThan(*limit)
}

// Drift is the difference between a cached balance and the recomputed
// closing balance.
func (l Ledger) Drift(cached decimal.Decimal) decimal.Decimal {
	return cached.Sub(l.Totals.Closing)
}
