package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/erpledger/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

func TestBuildLedger_SortsAndFolds(t *testing.T) {
	t.Parallel()

	movements := []domain.Movement{
		{ID: "sale-1", Date: day("2025-01-05"), Debit: dec(500), Credit: decimal.Zero},
		{ID: "rcpt-1", Date: day("2025-01-01"), Debit: decimal.Zero, Credit: dec(200)},
	}

	ledger := domain.BuildLedger(dec(1000), movements)

	require.Len(t, ledger.Entries, 3)
	assert.True(t, ledger.Entries[0].Opening)
	assert.True(t, ledger.Entries[0].RunningBalanceAfter.Equal(dec(1000)))

	assert.Equal(t, "rcpt-1", ledger.Entries[1].Movement.ID)
	assert.True(t, ledger.Entries[1].RunningBalanceAfter.Equal(dec(800)))

	assert.Equal(t, "sale-1", ledger.Entries[2].Movement.ID)
	assert.True(t, ledger.Entries[2].RunningBalanceAfter.Equal(dec(1300)))

	assert.True(t, ledger.Totals.Debit.Equal(dec(500)))
	assert.True(t, ledger.Totals.Credit.Equal(dec(200)))
	assert.True(t, ledger.Totals.Closing.Equal(dec(1300)))

	// input order untouched
	assert.Equal(t, "sale-1", movements[0].ID)
}

func TestBuildLedger_NoMovements(t *testing.T) {
	t.Parallel()

	ledger := domain.BuildLedger(dec(250), nil)

	require.Len(t, ledger.Entries, 1)
	assert.True(t, ledger.Entries[0].Opening)
	assert.Equal(t, domain.OpeningBalanceDescription, ledger.Entries[0].Movement.Description)
	assert.True(t, ledger.Entries[0].RunningBalanceAfter.Equal(dec(250)))
	assert.True(t, ledger.Totals.Closing.Equal(dec(250)))
	assert.True(t, ledger.Totals.Debit.IsZero())
	assert.True(t, ledger.Totals.Credit.IsZero())
}

func TestBuildLedger_StableForEqualDates(t *testing.T) {
	t.Parallel()

	same := day("2025-03-01")
	movements := []domain.Movement{
		{ID: "c", Date: day("2025-03-02"), Debit: dec(1), Credit: decimal.Zero},
		{ID: "a", Date: same, Debit: dec(10), Credit: decimal.Zero},
		{ID: "b", Date: same, Debit: decimal.Zero, Credit: dec(4)},
		{ID: "d", Date: same, Debit: dec(7), Credit: decimal.Zero},
	}

	ids := func(l domain.Ledger) []string {
		var out []string
		for _, m := range l.Movements() {
			out = append(out, m.ID)
		}
		return out
	}

	first := domain.BuildLedger(decimal.Zero, movements)
	for i := 0; i < 20; i++ {
		again := domain.BuildLedger(decimal.Zero, movements)
		require.Equal(t, []string{"a", "b", "d", "c"}, ids(again))
		require.Equal(t, first, again)
	}
}

func TestBuildLedger_ClosingMatchesLastRunningBalance(t *testing.T) {
	t.Parallel()

	opening := decimal.RequireFromString("-42.50")
	movements := []domain.Movement{
		{Date: day("2025-02-01"), Debit: decimal.RequireFromString("10.10"), Credit: decimal.Zero},
		{Date: day("2025-01-15"), Debit: decimal.Zero, Credit: decimal.RequireFromString("3.33")},
		{Date: day("2025-02-01"), Debit: decimal.RequireFromString("0.01"), Credit: decimal.Zero},
		{Date: day("2024-12-31"), Debit: decimal.Zero, Credit: decimal.RequireFromString("100")},
	}

	ledger := domain.BuildLedger(opening, movements)

	last := ledger.Entries[len(ledger.Entries)-1]
	expected := opening.Add(ledger.Totals.Debit).Sub(ledger.Totals.Credit)
	assert.True(t, ledger.Totals.Closing.Equal(expected))
	assert.True(t, last.RunningBalanceAfter.Equal(ledger.Totals.Closing))
	assert.Equal(t, "-135.72", ledger.Totals.Closing.StringFixed(2))
}

func TestLedger_Between(t *testing.T) {
	t.Parallel()

	movements := []domain.Movement{
		{ID: "m1", Date: day("2025-01-01"), Debit: dec(100), Credit: decimal.Zero},
		{ID: "m2", Date: day("2025-02-01"), Debit: decimal.Zero, Credit: dec(30)},
		{ID: "m3", Date: day("2025-03-01"), Debit: dec(50), Credit: decimal.Zero},
		{ID: "m4", Date: day("2025-04-01"), Debit: dec(5), Credit: decimal.Zero},
	}
	full := domain.BuildLedger(dec(10), movements)

	window := full.Between(day("2025-02-01"), day("2025-03-31"))

	require.Len(t, window.Entries, 3)
	assert.True(t, window.OpeningBalance.Equal(dec(110)))
	assert.True(t, window.Entries[0].Opening)
	assert.Equal(t, day("2025-02-01"), window.Entries[0].Movement.Date)
	assert.Equal(t, "m2", window.Entries[1].Movement.ID)
	assert.True(t, window.Entries[1].RunningBalanceAfter.Equal(full.Entries[2].RunningBalanceAfter))
	assert.True(t, window.Entries[2].RunningBalanceAfter.Equal(full.Entries[3].RunningBalanceAfter))
	assert.True(t, window.Totals.Debit.Equal(dec(50)))
	assert.True(t, window.Totals.Credit.Equal(dec(30)))
	assert.True(t, window.Totals.Closing.Equal(dec(130)))

	unbounded := full.Between(time.Time{}, time.Time{})
	assert.Equal(t, full, unbounded)
}

func TestLedger_ExceedsCreditLimit(t *testing.T) {
	t.Parallel()

	ledger := domain.BuildLedger(dec(100), []domain.Movement{
		{Date: day("2025-01-01"), Debit: dec(50), Credit: decimal.Zero},
	})

	limit := dec(120)
	assert.True(t, ledger.ExceedsCreditLimit(&limit))

	limit = dec(150)
	assert.False(t, ledger.ExceedsCreditLimit(&limit))
	assert.False(t, ledger.ExceedsCreditLimit(nil))
}

func TestLedger_Drift(t *testing.T) {
	t.Parallel()

	ledger := domain.BuildLedger(dec(100), []domain.Movement{
		{Date: day("2025-01-01"), Debit: dec(50), Credit: decimal.Zero},
	})

	assert.True(t, ledger.Drift(dec(150)).IsZero())
	assert.True(t, ledger.Drift(dec(160)).Equal(dec(10)))
}
